package ports

import (
	"context"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ArtifactRepository is the catalog storage boundary. List preserves catalog
// insertion order; FindByID returns domain.ErrArtifactNotFound for unknown
// ids. Access control is not the repository's concern; it returns raw
// records and the service applies the visibility predicate.
type ArtifactRepository interface {
	List(ctx context.Context) ([]*domain.Artifact, error)
	FindByID(ctx context.Context, id int64) (*domain.Artifact, error)
	Create(ctx context.Context, artifact *domain.Artifact) error
}
