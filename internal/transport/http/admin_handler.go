package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/attendance-backend/internal/service"
	"github.com/classtrack/attendance-backend/internal/util"
)

// adminID stands in for an authenticated instructor identity, which is out
// of scope for this surface.
const adminID = "admin"

type AdminHandler struct {
	attendance *service.AttendanceService
	students   *service.StudentService
}

func RegisterAdmin(e *echo.Echo, attendance *service.AttendanceService, students *service.StudentService) {
	handler := &AdminHandler{attendance: attendance, students: students}

	group := e.Group("/api/admin")
	group.POST("/generate-token", handler.generateToken)
	group.GET("/sessions", handler.listSessions)
	group.GET("/sessions/:token/check-ins", handler.listCheckIns)
	group.GET("/students", handler.listStudents)
	group.OPTIONS("/generate-token", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func (h *AdminHandler) generateToken(c echo.Context) error {
	section := strings.TrimSpace(c.QueryParam("section"))
	sessionName := strings.TrimSpace(c.QueryParam("sessionName"))
	if section == "" || sessionName == "" {
		return c.JSON(http.StatusBadRequest, util.Error("section and sessionName are required"))
	}

	result, err := h.attendance.GenerateToken(c.Request().Context(), adminID, section, sessionName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not create session"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) listSessions(c echo.Context) error {
	sessions, err := h.attendance.ListSessions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not list sessions"))
	}
	return c.JSON(http.StatusOK, sessions)
}

func (h *AdminHandler) listCheckIns(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	records, err := h.attendance.CheckInRecords(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not list check-ins"))
	}
	return c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) listStudents(c echo.Context) error {
	section := strings.TrimSpace(c.QueryParam("section"))
	if section == "" {
		return c.JSON(http.StatusBadRequest, util.Error("section is required"))
	}

	students, err := h.students.ListBySection(c.Request().Context(), section)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not list students"))
	}
	return c.JSON(http.StatusOK, students)
}
