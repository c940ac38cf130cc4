package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/attendance-backend/internal/service"
	"github.com/classtrack/attendance-backend/internal/util"
)

type StudentHandler struct {
	students *service.StudentService
	identity Identity
}

func RegisterStudents(e *echo.Echo, students *service.StudentService, identity Identity) {
	handler := &StudentHandler{students: students, identity: identity}

	group := e.Group("/api/students")
	group.POST("", handler.register)
	group.GET("/me", handler.profile)
}

func (h *StudentHandler) register(c echo.Context) error {
	var req struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Section  string `json:"section"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	student, err := h.students.Register(c.Request().Context(), service.RegisterInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Section:  req.Section,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentValidation):
			return c.JSON(http.StatusBadRequest, util.Error("id, name, section, a valid email and a password of at least 8 characters are required"))
		case errors.Is(err, service.ErrStudentExists):
			return c.JSON(http.StatusConflict, util.Error("student id or email already registered"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not register student"))
		}
	}

	return c.JSON(http.StatusCreated, util.Data("student", student))
}

func (h *StudentHandler) profile(c echo.Context) error {
	userID, ok := h.identity.Resolve(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("identity header required"))
	}

	student, err := h.students.Profile(c.Request().Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, util.Error("student not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not load profile"))
		}
	}
	return c.JSON(http.StatusOK, util.Data("student", student))
}
