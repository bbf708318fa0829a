package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/auth"
	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

const topStudentsLimit = 10

type userService struct {
	users     ports.UserRepository
	evidences ports.EvidenceRepository
	log       zerolog.Logger
}

// NewUserService returns a ports.UserService implementation.
func NewUserService(users ports.UserRepository, evidences ports.EvidenceRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, evidences: evidences, log: log}
}

// SignUp registers a new account. The email must not be taken; the stored
// record carries a bcrypt hash, never the plaintext password.
func (s *userService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if !domain.IsValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		DNI:          input.DNI,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		BirthDate:    input.BirthDate,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Login verifies the credentials and returns the account.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) Students(ctx context.Context) ([]*domain.User, error) {
	return s.users.Students(ctx)
}

func (s *userService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) NumberOfStudents(ctx context.Context) (int64, error) {
	return s.users.CountStudents(ctx)
}

// TopStudents ranks students by how many evidences they uploaded. Groups
// whose user no longer exists are skipped.
func (s *userService) TopStudents(ctx context.Context) ([]ports.TopStudent, error) {
	groups, err := s.evidences.GroupByUser(ctx, topStudentsLimit)
	if err != nil {
		return nil, err
	}

	top := make([]ports.TopStudent, 0, len(groups))
	for _, g := range groups {
		user, err := s.users.FindByID(ctx, g.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}

		summaries := make([]ports.EvidenceSummary, 0, len(g.Evidences))
		for _, e := range g.Evidences {
			summaries = append(summaries, ports.EvidenceSummary{
				ID:       e.ID,
				FileName: e.FileName,
				Format:   e.Format,
			})
		}

		top = append(top, ports.TopStudent{
			ID:                user.ID,
			FirstName:         user.FirstName,
			LastName:          user.LastName,
			Email:             user.Email,
			Evidences:         summaries,
			NumberOfEvidences: len(summaries),
		})
	}
	return top, nil
}
