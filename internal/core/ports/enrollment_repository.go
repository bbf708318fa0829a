package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for student-subject
// registrations.
type EnrollmentRepository interface {
	// Create inserts the enrollment. A (student, subject) pair that
	// already exists returns domain.ErrAlreadyEnrolled.
	Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	Exists(ctx context.Context, studentID, subjectID string) (bool, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
}
