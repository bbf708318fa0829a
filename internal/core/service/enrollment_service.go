package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

type enrollmentService struct {
	enrollments ports.EnrollmentRepository
	users       ports.UserRepository
	subjects    ports.SubjectRepository
	log         zerolog.Logger
}

// NewEnrollmentService returns a ports.EnrollmentService implementation.
func NewEnrollmentService(
	enrollments ports.EnrollmentRepository,
	users ports.UserRepository,
	subjects ports.SubjectRepository,
	log zerolog.Logger,
) ports.EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		users:       users,
		subjects:    subjects,
		log:         log,
	}
}

// Register enrolls a student in a subject. The duplicate check is backed by
// a unique index, so concurrent registrations of the same pair cannot both
// commit. The subject cap is check-then-act against the store and can be
// exceeded by concurrent requests; an accepted limitation.
func (s *enrollmentService) Register(ctx context.Context, studentID, subjectID string) (*domain.Enrollment, error) {
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.subjects.FindByID(ctx, subjectID); err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, subjectID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	count, err := s.enrollments.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxSubjectsPerStudent {
		return nil, domain.ErrSubjectLimit
	}

	created, err := s.enrollments.Create(ctx, &domain.Enrollment{
		StudentID: studentID,
		SubjectID: subjectID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("student_id", studentID).Str("subject_id", subjectID).Msg("student registered in subject")
	return created, nil
}
