package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Students returns all users with the student role, sorted by last
	// name ascending.
	Students(ctx context.Context) ([]*domain.User, error)
	CountStudents(ctx context.Context) (int64, error)
}
