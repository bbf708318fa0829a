package ports

import (
	"context"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// FormatCount is the number of evidences stored for one file format.
type FormatCount struct {
	Format domain.Format
	Count  int64
}

// UserEvidenceGroup holds all evidences uploaded by a single user.
type UserEvidenceGroup struct {
	UserID    string
	Evidences []domain.Evidence
}

// EvidenceRepository defines persistence operations for evidence files.
type EvidenceRepository interface {
	Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error)
	CountByUserAndSubject(ctx context.Context, userID, subjectID string) (int64, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
	// All returns every evidence sorted by upload date ascending.
	All(ctx context.Context) ([]*domain.Evidence, error)
	// FormatCounts aggregates the stored evidences by file format.
	FormatCounts(ctx context.Context) ([]FormatCount, error)
	// GroupByUser returns up to limit users with their evidences, sorted
	// by evidence count descending.
	GroupByUser(ctx context.Context, limit int) ([]UserEvidenceGroup, error)
}
