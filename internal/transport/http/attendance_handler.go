package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/attendance-backend/internal/service"
	"github.com/classtrack/attendance-backend/internal/util"
)

type AttendanceHandler struct {
	attendance *service.AttendanceService
	identity   Identity
}

func RegisterAttendance(e *echo.Echo, attendance *service.AttendanceService, identity Identity) {
	handler := &AttendanceHandler{attendance: attendance, identity: identity}

	group := e.Group("/api/attendance")
	group.POST("/check-in", handler.checkIn)
	group.OPTIONS("/check-in", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func (h *AttendanceHandler) checkIn(c echo.Context) error {
	userID, ok := h.identity.Resolve(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Message("User must be logged in to check attendance."))
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("token is required"))
	}

	result, err := h.attendance.CheckIn(c.Request().Context(), req.Token, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, util.Message("Invalid or unknown session token."))
		case errors.Is(err, service.ErrSessionExpired):
			return c.JSON(http.StatusForbidden, util.Message("Session has expired."))
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, util.Message("User not found."))
		case errors.Is(err, service.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, util.Message("No attendance record found for this session."))
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			return c.JSON(http.StatusConflict, util.Message("You have already checked in."))
		case errors.Is(err, service.ErrUpdateFailed):
			return c.JSON(http.StatusInternalServerError, util.Message("Could not update attendance record. Try again."))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("check-in failed"))
		}
	}

	return c.JSON(http.StatusOK, util.Message("Attendance recorded successfully for "+result.SessionName))
}
