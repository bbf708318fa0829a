package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/auth"
	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

type seedService struct {
	repo ports.SeedRepository
	env  string
	log  zerolog.Logger
}

// NewSeedService returns a ports.SeedService implementation. Seeding is a
// no-op when env is "production".
func NewSeedService(repo ports.SeedRepository, env string, log zerolog.Logger) ports.SeedService {
	return &seedService{repo: repo, env: env, log: log}
}

// Seed wipes the database and loads the fixture data set.
func (s *seedService) Seed(ctx context.Context) error {
	if s.env == "production" {
		s.log.Warn().Msg("seed requested in production, skipping")
		return nil
	}

	data, err := fixtureData()
	if err != nil {
		return err
	}
	if err := s.repo.Reset(ctx, data); err != nil {
		return err
	}

	s.log.Info().
		Int("users", len(data.Users)).
		Int("subjects", len(data.Subjects)).
		Msg("database seeded")
	return nil
}

func fixtureData() (ports.SeedData, error) {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return ports.SeedData{}, err
	}

	now := time.Now().UTC()
	birth := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	users := []*domain.User{
		{
			ID: "000000000000000000000a01", FirstName: "Alma", LastName: "Alvarez",
			Email: "alma.alvarez@example.com", DNI: "40111222", Phone: "5550001111",
			PasswordHash: hash, Role: domain.RoleAdmin, BirthDate: birth(1985, 4, 12), CreatedAt: now,
		},
		{
			ID: "000000000000000000000b01", FirstName: "Bruno", LastName: "Benitez",
			Email: "bruno.benitez@example.com", DNI: "40333444", Phone: "5550002222",
			PasswordHash: hash, Role: domain.RoleStudent, BirthDate: birth(2001, 9, 3), CreatedAt: now,
		},
		{
			ID: "000000000000000000000b02", FirstName: "Carla", LastName: "Castro",
			Email: "carla.castro@example.com", DNI: "40555666", Phone: "5550003333",
			PasswordHash: hash, Role: domain.RoleStudent, BirthDate: birth(2000, 1, 25), CreatedAt: now,
		},
	}

	subjects := []*domain.Subject{
		{ID: "000000000000000000000f01", Name: "Mathematics", CreatedAt: now},
		{ID: "000000000000000000000f02", Name: "Biology", CreatedAt: now},
	}

	enrollments := []*domain.Enrollment{
		{StudentID: users[1].ID, SubjectID: subjects[0].ID, CreatedAt: now},
		{StudentID: users[2].ID, SubjectID: subjects[0].ID, CreatedAt: now},
		{StudentID: users[2].ID, SubjectID: subjects[1].ID, CreatedAt: now},
	}

	evidences := []*domain.Evidence{
		{
			FileName: "homework-1.pdf", Size: 1024, Format: domain.FormatPDF,
			UserID: users[1].ID, SubjectID: subjects[0].ID, UploadDate: now,
		},
		{
			FileName: "lab-notes.png", Size: 2048, Format: domain.FormatPNG,
			UserID: users[2].ID, SubjectID: subjects[1].ID, UploadDate: now,
		},
	}

	return ports.SeedData{
		Users:       users,
		Subjects:    subjects,
		Enrollments: enrollments,
		Evidences:   evidences,
	}, nil
}
