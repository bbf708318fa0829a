package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	subjects ports.SubjectService
}

func NewSubjectHandler(subjects ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

type newSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type newSubjectResponse struct {
	OK         bool            `json:"ok"`
	Message    string          `json:"message"`
	NewSubject *domain.Subject `json:"newSubject"`
}

// Create registers a new subject. Admin only.
//
// @Summary      Create a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Param        body  body      newSubjectRequest  true  "Subject details"
// @Success      201   {object}  newSubjectResponse
// @Failure      422   {object}  map[string]string
// @Router       /api/subjects/new-subject [post]
func (h *SubjectHandler) Create(c echo.Context) error {
	var req newSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subject, err := h.subjects.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newSubjectResponse{OK: true, Message: "Subject created", NewSubject: subject})
}
