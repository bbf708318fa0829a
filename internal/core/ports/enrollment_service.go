package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// EnrollmentService defines student-subject registration use cases.
type EnrollmentService interface {
	// Register enrolls a student in a subject after checking that both
	// exist, that the pair is not already registered, and that the
	// student's subject cap is not reached.
	Register(ctx context.Context, studentID, subjectID string) (*domain.Enrollment, error)
}
