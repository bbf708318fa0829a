package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

type subjectService struct {
	subjects ports.SubjectRepository
	log      zerolog.Logger
}

// NewSubjectService returns a ports.SubjectService implementation.
func NewSubjectService(subjects ports.SubjectRepository, log zerolog.Logger) ports.SubjectService {
	return &subjectService{subjects: subjects, log: log}
}

func (s *subjectService) Create(ctx context.Context, name string) (*domain.Subject, error) {
	subject := &domain.Subject{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.subjects.Create(ctx, subject)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("subject_id", created.ID).Str("name", created.Name).Msg("subject created")
	return created, nil
}
