package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// StatsCache abstracts the short-lived cache for aggregate stats (Redis).
type StatsCache interface {
	GetFormatPercentages(ctx context.Context) ([]ports.FormatPercentage, bool)
	SetFormatPercentages(ctx context.Context, stats []ports.FormatPercentage)
}

type evidenceService struct {
	evidences   ports.EvidenceRepository
	enrollments ports.EnrollmentRepository
	store       ports.FileStore
	cache       StatsCache
	log         zerolog.Logger
}

// NewEvidenceService returns a ports.EvidenceService implementation. The
// cache may be nil, disabling stats caching.
func NewEvidenceService(
	evidences ports.EvidenceRepository,
	enrollments ports.EnrollmentRepository,
	store ports.FileStore,
	cache StatsCache,
	log zerolog.Logger,
) ports.EvidenceService {
	return &evidenceService{
		evidences:   evidences,
		enrollments: enrollments,
		store:       store,
		cache:       cache,
		log:         log,
	}
}

// Upload validates the file against the business rules, persists its
// content through the file store and records the evidence. The per-subject
// cap is check-then-act against the store and can be exceeded by concurrent
// uploads; an accepted limitation.
func (s *evidenceService) Upload(ctx context.Context, input ports.UploadEvidenceInput) (*domain.Evidence, error) {
	if input.Content == nil {
		return nil, domain.ErrNoFile
	}

	enrolled, err := s.enrollments.Exists(ctx, input.UserID, input.SubjectID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, domain.ErrNotEnrolled
	}

	format, ok := domain.FormatFromMIME(input.MIMEType)
	if !ok {
		return nil, domain.ErrInvalidFormat
	}

	count, err := s.evidences.CountByUserAndSubject(ctx, input.UserID, input.SubjectID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxEvidencesPerSubject {
		return nil, domain.ErrEvidenceLimit
	}

	stored, err := s.store.Save(ctx, input.FileName, input.Content)
	if err != nil {
		return nil, fmt.Errorf("store evidence file: %w", err)
	}

	created, err := s.evidences.Create(ctx, &domain.Evidence{
		FileName:   input.FileName,
		Size:       stored.Size,
		Format:     format,
		UserID:     input.UserID,
		SubjectID:  input.SubjectID,
		StoredPath: stored.Path,
		UploadDate: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", input.UserID).
		Str("subject_id", input.SubjectID).
		Str("format", string(format)).
		Int64("size", stored.Size).
		Msg("evidence uploaded")
	return created, nil
}

func (s *evidenceService) All(ctx context.Context) ([]*domain.Evidence, error) {
	return s.evidences.All(ctx)
}

func (s *evidenceService) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	return s.evidences.CountBySubject(ctx, subjectID)
}

// PercentageByFileType aggregates stored evidences by file format into
// rounded integer percentages. Results are served from the stats cache when
// fresh.
func (s *evidenceService) PercentageByFileType(ctx context.Context) ([]ports.FormatPercentage, error) {
	if s.cache != nil {
		if stats, ok := s.cache.GetFormatPercentages(ctx); ok {
			return stats, nil
		}
	}

	counts, err := s.evidences.FormatCounts(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, fc := range counts {
		total += fc.Count
	}

	stats := make([]ports.FormatPercentage, 0, len(counts))
	for _, fc := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(fc.Count) / float64(total) * 100))
		}
		stats = append(stats, ports.FormatPercentage{
			Format:     fc.Format,
			Percentage: fmt.Sprintf("%d%%", pct),
		})
	}

	if s.cache != nil {
		s.cache.SetFormatPercentages(ctx, stats)
	}
	return stats, nil
}
