package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

func signUpInput(email string) ports.SignUpInput {
	return ports.SignUpInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		DNI:       "12345678",
		Phone:     "5551234567",
		Password:  "password123",
		Role:      domain.RoleStudent,
		BirthDate: time.Date(2000, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, &stubEvidenceRepo{}, testLog)

	user, err := svc.SignUp(context.Background(), signUpInput("alice@example.com"))
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestUserService_SignUp_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, &stubEvidenceRepo{}, testLog)

	if _, err := svc.SignUp(context.Background(), signUpInput("alice@example.com")); err != nil {
		t.Fatalf("first SignUp returned error: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), signUpInput("alice@example.com")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_SignUp_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubEvidenceRepo{}, testLog)

	input := signUpInput("alice@example.com")
	input.Role = "superuser"
	if _, err := svc.SignUp(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, &stubEvidenceRepo{}, testLog)

	created, err := svc.SignUp(context.Background(), signUpInput("alice@example.com"))
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	user, err := svc.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %s", user.ID)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, &stubEvidenceRepo{}, testLog)

	if _, err := svc.SignUp(context.Background(), signUpInput("alice@example.com")); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubEvidenceRepo{}, testLog)

	if _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_NumberOfStudents(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{Email: "a@example.com", Role: domain.RoleStudent})
	users.add(&domain.User{Email: "b@example.com", Role: domain.RoleStudent})
	users.add(&domain.User{Email: "c@example.com", Role: domain.RoleAdmin})
	svc := NewUserService(users, &stubEvidenceRepo{}, testLog)

	n, err := svc.NumberOfStudents(context.Background())
	if err != nil {
		t.Fatalf("NumberOfStudents returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 students, got %d", n)
	}
}

func TestUserService_TopStudents(t *testing.T) {
	users := newStubUserRepo()
	alice := users.add(&domain.User{FirstName: "Alice", Email: "a@example.com", Role: domain.RoleStudent})
	bob := users.add(&domain.User{FirstName: "Bob", Email: "b@example.com", Role: domain.RoleStudent})

	evidences := &stubEvidenceRepo{}
	for i := 0; i < 3; i++ {
		_, _ = evidences.Create(context.Background(), &domain.Evidence{UserID: alice.ID, FileName: "a.png", Format: domain.FormatPNG})
	}
	_, _ = evidences.Create(context.Background(), &domain.Evidence{UserID: bob.ID, FileName: "b.pdf", Format: domain.FormatPDF})

	svc := NewUserService(users, evidences, testLog)
	top, err := svc.TopStudents(context.Background())
	if err != nil {
		t.Fatalf("TopStudents returned error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 students, got %d", len(top))
	}
	if top[0].ID != alice.ID || top[0].NumberOfEvidences != 3 {
		t.Fatalf("expected alice first with 3 evidences, got %+v", top[0])
	}
	if top[1].ID != bob.ID || top[1].NumberOfEvidences != 1 {
		t.Fatalf("expected bob second with 1 evidence, got %+v", top[1])
	}
}

func TestUserService_TopStudents_SkipsDeletedUsers(t *testing.T) {
	users := newStubUserRepo()
	alice := users.add(&domain.User{FirstName: "Alice", Email: "a@example.com", Role: domain.RoleStudent})

	evidences := &stubEvidenceRepo{}
	_, _ = evidences.Create(context.Background(), &domain.Evidence{UserID: alice.ID, FileName: "a.png", Format: domain.FormatPNG})
	_, _ = evidences.Create(context.Background(), &domain.Evidence{UserID: "deleted-user", FileName: "x.pdf", Format: domain.FormatPDF})

	svc := NewUserService(users, evidences, testLog)
	top, err := svc.TopStudents(context.Background())
	if err != nil {
		t.Fatalf("TopStudents returned error: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 student, got %d", len(top))
	}
	if top[0].ID != alice.ID {
		t.Fatalf("unexpected student: %s", top[0].ID)
	}
}
