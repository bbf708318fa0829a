package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/api/metrics"
	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// EnrollmentHandler handles student-subject registration endpoints.
type EnrollmentHandler struct {
	enrollments ports.EnrollmentService
}

func NewEnrollmentHandler(enrollments ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

type registerStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
}

type registerStudentResponse struct {
	OK                 bool               `json:"ok"`
	Message            string             `json:"message"`
	StudentsOnSubjects *domain.Enrollment `json:"studentsOnSubjects"`
}

// Register enrolls a student in a subject. Admin only.
//
// @Summary      Register a student in a subject
// @Tags         students-on-subjects
// @Accept       json
// @Produce      json
// @Param        body  body      registerStudentRequest  true  "Student and subject ids"
// @Success      201   {object}  registerStudentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/students-on-subjects/register-student [post]
func (h *EnrollmentHandler) Register(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	enrollment, err := h.enrollments.Register(c.Request().Context(), req.StudentID, req.SubjectID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyEnrolled):
			metrics.EnrollmentsRejectedTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrSubjectLimit):
			metrics.EnrollmentsRejectedTotal.WithLabelValues("subject_limit").Inc()
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrSubjectNotFound):
			metrics.EnrollmentsRejectedTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.EnrollmentsTotal.Inc()
	return c.JSON(http.StatusCreated, registerStudentResponse{
		OK:                 true,
		Message:            "Student successfully registered in the subject",
		StudentsOnSubjects: enrollment,
	})
}
