package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

var testLog = zerolog.New(io.Discard)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *user
	return r.add(&clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Students(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleStudent {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (r *stubUserRepo) CountStudents(ctx context.Context) (int64, error) {
	students, _ := r.Students(ctx)
	return int64(len(students)), nil
}

type stubSubjectRepo struct {
	subjects map[string]*domain.Subject
	nextID   int
}

func newStubSubjectRepo() *stubSubjectRepo {
	return &stubSubjectRepo{subjects: make(map[string]*domain.Subject)}
}

func (r *stubSubjectRepo) Create(_ context.Context, subject *domain.Subject) (*domain.Subject, error) {
	clone := *subject
	r.nextID++
	clone.ID = fmt.Sprintf("subject-%d", r.nextID)
	r.subjects[clone.ID] = &clone
	return &clone, nil
}

func (r *stubSubjectRepo) FindByID(_ context.Context, id string) (*domain.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, domain.ErrSubjectNotFound
	}
	return s, nil
}

type stubEnrollmentRepo struct {
	enrollments []*domain.Enrollment
}

func (r *stubEnrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	exists, _ := r.Exists(ctx, e.StudentID, e.SubjectID)
	if exists {
		return nil, domain.ErrAlreadyEnrolled
	}
	clone := *e
	r.enrollments = append(r.enrollments, &clone)
	return &clone, nil
}

func (r *stubEnrollmentRepo) Exists(_ context.Context, studentID, subjectID string) (bool, error) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEnrollmentRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

type stubEvidenceRepo struct {
	evidences []*domain.Evidence
	nextID    int
}

func (r *stubEvidenceRepo) Create(_ context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	clone := *e
	r.nextID++
	clone.ID = fmt.Sprintf("evidence-%d", r.nextID)
	r.evidences = append(r.evidences, &clone)
	return &clone, nil
}

func (r *stubEvidenceRepo) CountByUserAndSubject(_ context.Context, userID, subjectID string) (int64, error) {
	var n int64
	for _, e := range r.evidences {
		if e.UserID == userID && e.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (r *stubEvidenceRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, e := range r.evidences {
		if e.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (r *stubEvidenceRepo) All(_ context.Context) ([]*domain.Evidence, error) {
	out := make([]*domain.Evidence, len(r.evidences))
	copy(out, r.evidences)
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.Before(out[j].UploadDate) })
	return out, nil
}

func (r *stubEvidenceRepo) FormatCounts(_ context.Context) ([]ports.FormatCount, error) {
	counts := make(map[domain.Format]int64)
	for _, e := range r.evidences {
		counts[e.Format]++
	}
	out := make([]ports.FormatCount, 0, len(counts))
	for f, n := range counts {
		out = append(out, ports.FormatCount{Format: f, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format < out[j].Format })
	return out, nil
}

func (r *stubEvidenceRepo) GroupByUser(_ context.Context, limit int) ([]ports.UserEvidenceGroup, error) {
	byUser := make(map[string][]domain.Evidence)
	for _, e := range r.evidences {
		byUser[e.UserID] = append(byUser[e.UserID], *e)
	}
	out := make([]ports.UserEvidenceGroup, 0, len(byUser))
	for id, evs := range byUser {
		out = append(out, ports.UserEvidenceGroup{UserID: id, Evidences: evs})
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i].Evidences) > len(out[j].Evidences) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubFileStore struct {
	saved []string
}

func (s *stubFileStore) Save(_ context.Context, fileName string, content io.Reader) (*ports.StoredFile, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return nil, err
	}
	s.saved = append(s.saved, fileName)
	return &ports.StoredFile{
		Path: "uploads/" + strings.ToLower(fileName),
		Size: int64(buf.Len()),
	}, nil
}

type stubStatsCache struct {
	stats []ports.FormatPercentage
	hits  int
	sets  int
}

func (c *stubStatsCache) GetFormatPercentages(_ context.Context) ([]ports.FormatPercentage, bool) {
	if c.stats == nil {
		return nil, false
	}
	c.hits++
	return c.stats, true
}

func (c *stubStatsCache) SetFormatPercentages(_ context.Context, stats []ports.FormatPercentage) {
	c.sets++
	c.stats = stats
}
