package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

const artifactsCollection = "artifacts"

// ArtifactRepository implements ports.ArtifactRepository on MongoDB.
// Artifact ids are stable numeric values assigned at provisioning time and
// stored as _id, so catalog order is the ascending-id query order.
type ArtifactRepository struct {
	coll *mongo.Collection
}

func NewArtifactRepository(db *mongo.Database) *ArtifactRepository {
	return &ArtifactRepository{coll: db.Collection(artifactsCollection)}
}

type mongoArtifact struct {
	ID          int64    `bson:"_id"`
	Title       string   `bson:"title"`
	Content     string   `bson:"content"`
	Type        string   `bson:"type"`
	AccessLevel int      `bson:"access_level"`
	IsHROnly    bool     `bson:"is_hr_only"`
	Tags        []string `bson:"tags"`
	CreatedAt   int64    `bson:"created_at"`
}

func (r *ArtifactRepository) List(ctx context.Context) ([]*domain.Artifact, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer cur.Close(ctx)

	var artifacts []*domain.Artifact
	for cur.Next(ctx) {
		var ma mongoArtifact
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode artifact: %w", err)
		}
		artifacts = append(artifacts, toDomainArtifact(ma))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}

func (r *ArtifactRepository) FindByID(ctx context.Context, id int64) (*domain.Artifact, error) {
	var ma mongoArtifact
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("find artifact: %w", err)
	}
	return toDomainArtifact(ma), nil
}

func (r *ArtifactRepository) Create(ctx context.Context, artifact *domain.Artifact) error {
	doc := mongoArtifact{
		ID:          artifact.ID,
		Title:       artifact.Title,
		Content:     artifact.Content,
		Type:        string(artifact.Type),
		AccessLevel: artifact.AccessLevel,
		IsHROnly:    artifact.IsHROnly,
		Tags:        artifact.Tags,
		CreatedAt:   artifact.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	return nil
}

func toDomainArtifact(ma mongoArtifact) *domain.Artifact {
	return &domain.Artifact{
		ID:          ma.ID,
		Title:       ma.Title,
		Content:     ma.Content,
		Type:        domain.ArtifactType(ma.Type),
		AccessLevel: ma.AccessLevel,
		IsHROnly:    ma.IsHROnly,
		Tags:        ma.Tags,
		CreatedAt:   unixToTime(ma.CreatedAt),
	}
}
