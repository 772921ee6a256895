package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

const accessLogsCollection = "access_logs"

// AuditRepository implements ports.AuditRepository on MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(accessLogsCollection)}
}

type mongoAccessLog struct {
	ID         string `bson:"_id"`
	Username   string `bson:"username"`
	ArtifactID int64  `bson:"artifact_id"`
	Action     string `bson:"action"`
	Timestamp  int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AccessLog) error {
	doc := mongoAccessLog{
		ID:         entry.ID,
		Username:   entry.Username,
		ArtifactID: entry.ArtifactID,
		Action:     string(entry.Action),
		Timestamp:  entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AccessLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AccessLog
	for cur.Next(ctx) {
		var ml mongoAccessLog
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode access log: %w", err)
		}
		entries = append(entries, &domain.AccessLog{
			ID:         ml.ID,
			Username:   ml.Username,
			ArtifactID: ml.ArtifactID,
			Action:     domain.AccessAction(ml.Action),
			Timestamp:  unixToTime(ml.Timestamp),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	return entries, nil
}
