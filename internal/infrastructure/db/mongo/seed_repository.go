package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// SeedRepository wipes and repopulates all collections with fixture data.
type SeedRepository struct {
	db *mongo.Database
}

func NewSeedRepository(db *mongo.Database) *SeedRepository {
	return &SeedRepository{db: db}
}

// Reset deletes all documents and inserts the given data set.
func (r *SeedRepository) Reset(ctx context.Context, data ports.SeedData) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	for _, name := range []string{collectionEvidences, collectionEnrollments, collectionSubjects, collectionUsers} {
		if _, err := r.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("seed: wipe %s: %w", name, err)
		}
	}

	users := NewUserRepository(r.db)
	for _, u := range data.Users {
		if _, err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: insert user: %w", err)
		}
	}

	subjects := NewSubjectRepository(r.db)
	for _, s := range data.Subjects {
		if _, err := subjects.Create(ctx, s); err != nil {
			return fmt.Errorf("seed: insert subject: %w", err)
		}
	}

	enrollments := NewEnrollmentRepository(r.db)
	for _, e := range data.Enrollments {
		if _, err := enrollments.Create(ctx, e); err != nil {
			return fmt.Errorf("seed: insert enrollment: %w", err)
		}
	}

	evidences := NewEvidenceRepository(r.db)
	for _, e := range data.Evidences {
		if _, err := evidences.Create(ctx, e); err != nil {
			return fmt.Errorf("seed: insert evidence: %w", err)
		}
	}

	return nil
}
