package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

const collectionEvidences = "evidences"

type EvidenceRepository struct {
	col *mongo.Collection
}

func NewEvidenceRepository(db *mongo.Database) *EvidenceRepository {
	return &EvidenceRepository{col: db.Collection(collectionEvidences)}
}

type evidenceDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FileName   string             `bson:"file_name"`
	Size       int64              `bson:"size"`
	Format     string             `bson:"format"`
	UserID     string             `bson:"user_id"`
	SubjectID  string             `bson:"subject_id"`
	StoredPath string             `bson:"stored_path,omitempty"`
	UploadDate time.Time          `bson:"upload_date"`
}

func (d evidenceDoc) toDomain() domain.Evidence {
	return domain.Evidence{
		ID:         d.ID.Hex(),
		FileName:   d.FileName,
		Size:       d.Size,
		Format:     domain.Format(d.Format),
		UserID:     d.UserID,
		SubjectID:  d.SubjectID,
		StoredPath: d.StoredPath,
		UploadDate: d.UploadDate,
	}
}

func (r *EvidenceRepository) Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := evidenceDoc{
		FileName:   e.FileName,
		Size:       e.Size,
		Format:     string(e.Format),
		UserID:     e.UserID,
		SubjectID:  e.SubjectID,
		StoredPath: e.StoredPath,
		UploadDate: e.UploadDate,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert evidence: %w", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EvidenceRepository) CountByUserAndSubject(ctx context.Context, userID, subjectID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"user_id": userID, "subject_id": subjectID})
	if err != nil {
		return 0, fmt.Errorf("count evidences: %w", err)
	}
	return n, nil
}

func (r *EvidenceRepository) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"subject_id": subjectID})
	if err != nil {
		return 0, fmt.Errorf("count evidences by subject: %w", err)
	}
	return n, nil
}

func (r *EvidenceRepository) All(ctx context.Context) ([]*domain.Evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "upload_date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find evidences: %w", err)
	}
	defer cur.Close(ctx)

	var evidences []*domain.Evidence
	for cur.Next(ctx) {
		var doc evidenceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode evidence: %w", err)
		}
		e := doc.toDomain()
		evidences = append(evidences, &e)
	}
	return evidences, cur.Err()
}

// FormatCounts aggregates stored evidences by file format.
func (r *EvidenceRepository) FormatCounts(ctx context.Context) ([]ports.FormatCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$format"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate format counts: %w", err)
	}
	defer cur.Close(ctx)

	var counts []ports.FormatCount
	for cur.Next(ctx) {
		var row struct {
			Format string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode format count: %w", err)
		}
		counts = append(counts, ports.FormatCount{Format: domain.Format(row.Format), Count: row.Count})
	}
	return counts, cur.Err()
}

// GroupByUser returns up to limit users with their evidences, most
// evidences first.
func (r *EvidenceRepository) GroupByUser(ctx context.Context, limit int) ([]ports.UserEvidenceGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "evidences", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate evidences by user: %w", err)
	}
	defer cur.Close(ctx)

	var groups []ports.UserEvidenceGroup
	for cur.Next(ctx) {
		var row struct {
			UserID    string        `bson:"_id"`
			Evidences []evidenceDoc `bson:"evidences"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode evidence group: %w", err)
		}

		g := ports.UserEvidenceGroup{UserID: row.UserID, Evidences: make([]domain.Evidence, 0, len(row.Evidences))}
		for _, doc := range row.Evidences {
			g.Evidences = append(g.Evidences, doc.toDomain())
		}
		groups = append(groups, g)
	}
	return groups, cur.Err()
}

// EnsureIndexes creates the (user, subject) index backing the cap checks.
func (r *EvidenceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "subject_id", Value: 1}},
	})
	return err
}
