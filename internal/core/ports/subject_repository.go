package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// SubjectRepository defines persistence operations for subjects.
type SubjectRepository interface {
	Create(ctx context.Context, subject *domain.Subject) (*domain.Subject, error)
	FindByID(ctx context.Context, id string) (*domain.Subject, error)
}
