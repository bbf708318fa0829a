package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// SubjectService defines subject use cases.
type SubjectService interface {
	Create(ctx context.Context, name string) (*domain.Subject, error)
}
