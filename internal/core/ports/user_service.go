package ports

import (
	"context"
	"time"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// SignUpInput carries all data needed to create a new account.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	DNI       string
	Phone     string
	Password  string
	Role      string
	BirthDate time.Time
}

// EvidenceSummary is the lightweight evidence view used in top-student
// responses.
type EvidenceSummary struct {
	ID       string        `json:"id"`
	FileName string        `json:"file_name"`
	Format   domain.Format `json:"format"`
}

// TopStudent is a student ranked by how many evidences they uploaded.
type TopStudent struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Email             string            `json:"email"`
	Evidences         []EvidenceSummary `json:"evidences"`
	NumberOfEvidences int               `json:"numberOfEvidences"`
}

// UserService defines account use cases.
type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	// Login verifies credentials and returns the matching user.
	// Unknown emails return domain.ErrUserNotFound; a wrong password
	// returns domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Students(ctx context.Context) ([]*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	NumberOfStudents(ctx context.Context) (int64, error)
	TopStudents(ctx context.Context) ([]TopStudent, error)
}
