package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

func enrollmentFixture(t *testing.T) (*stubUserRepo, *stubSubjectRepo, *stubEnrollmentRepo, *domain.User, *domain.Subject) {
	t.Helper()
	users := newStubUserRepo()
	subjects := newStubSubjectRepo()
	student := users.add(&domain.User{Email: "a@example.com", Role: domain.RoleStudent})
	subject, err := subjects.Create(context.Background(), &domain.Subject{Name: "Mathematics"})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return users, subjects, &stubEnrollmentRepo{}, student, subject
}

func TestEnrollmentService_Register_Success(t *testing.T) {
	users, subjects, enrollments, student, subject := enrollmentFixture(t)
	svc := NewEnrollmentService(enrollments, users, subjects, testLog)

	created, err := svc.Register(context.Background(), student.ID, subject.ID)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.StudentID != student.ID || created.SubjectID != subject.ID {
		t.Fatalf("unexpected enrollment: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}

func TestEnrollmentService_Register_UnknownStudent(t *testing.T) {
	users, subjects, enrollments, _, subject := enrollmentFixture(t)
	svc := NewEnrollmentService(enrollments, users, subjects, testLog)

	if _, err := svc.Register(context.Background(), "missing", subject.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEnrollmentService_Register_UnknownSubject(t *testing.T) {
	users, subjects, enrollments, student, _ := enrollmentFixture(t)
	svc := NewEnrollmentService(enrollments, users, subjects, testLog)

	if _, err := svc.Register(context.Background(), student.ID, "missing"); err != domain.ErrSubjectNotFound {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestEnrollmentService_Register_Duplicate(t *testing.T) {
	users, subjects, enrollments, student, subject := enrollmentFixture(t)
	svc := NewEnrollmentService(enrollments, users, subjects, testLog)

	if _, err := svc.Register(context.Background(), student.ID, subject.ID); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), student.ID, subject.ID); err != domain.ErrAlreadyEnrolled {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollmentService_Register_SubjectCap(t *testing.T) {
	users, subjects, enrollments, student, _ := enrollmentFixture(t)
	svc := NewEnrollmentService(enrollments, users, subjects, testLog)

	for i := 0; i < domain.MaxSubjectsPerStudent; i++ {
		subject, err := subjects.Create(context.Background(), &domain.Subject{Name: fmt.Sprintf("Subject %d", i)})
		if err != nil {
			t.Fatalf("create subject: %v", err)
		}
		if _, err := svc.Register(context.Background(), student.ID, subject.ID); err != nil {
			t.Fatalf("Register %d returned error: %v", i, err)
		}
	}

	extra, err := subjects.Create(context.Background(), &domain.Subject{Name: "One Too Many"})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if _, err := svc.Register(context.Background(), student.ID, extra.ID); err != domain.ErrSubjectLimit {
		t.Fatalf("expected ErrSubjectLimit, got %v", err)
	}
}
