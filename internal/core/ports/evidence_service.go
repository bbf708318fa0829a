package ports

import (
	"context"
	"io"

	"github.com/classtrack/academic-records-api/internal/core/domain"
)

// UploadEvidenceInput carries the metadata and content of one uploaded file.
type UploadEvidenceInput struct {
	UserID    string
	SubjectID string
	FileName  string
	MIMEType  string
	Size      int64
	Content   io.Reader
}

// FormatPercentage is the share of stored evidences using one file format.
type FormatPercentage struct {
	Format     domain.Format `json:"format"`
	Percentage string        `json:"percentage"`
}

// EvidenceService defines evidence use cases.
type EvidenceService interface {
	Upload(ctx context.Context, input UploadEvidenceInput) (*domain.Evidence, error)
	All(ctx context.Context) ([]*domain.Evidence, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
	PercentageByFileType(ctx context.Context) ([]FormatPercentage, error)
}
