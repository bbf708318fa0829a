package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// SeedData is a full fixture set for the database.
type SeedData struct {
	Users       []*domain.User
	Subjects    []*domain.Subject
	Enrollments []*domain.Enrollment
	Evidences   []*domain.Evidence
}

// SeedRepository wipes and repopulates the persistence store in one pass.
type SeedRepository interface {
	Reset(ctx context.Context, data SeedData) error
}

// SeedService reloads the fixture data set.
type SeedService interface {
	Seed(ctx context.Context) error
}
