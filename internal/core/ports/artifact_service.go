package ports

import (
	"context"
	"time"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ArtifactView is the full artifact representation returned to an authorized
// requester.
type ArtifactView struct {
	ID          int64
	Title       string
	Content     string
	Type        string
	AccessLevel int
	IsHROnly    bool
	Tags        []string
	CreatedAt   time.Time
}

// ListArtifactsResult is returned by List.
type ListArtifactsResult struct {
	Items []ArtifactView
	Total int
}

// SearchResult is a single search hit. Content is capped at 200 characters
// with a truncation marker when longer. RelevanceScore is a constant
// placeholder, not a ranking signal; results stay in catalog order.
type SearchResult struct {
	ID             int64
	Title          string
	Content        string
	Type           string
	RelevanceScore float64
	Tags           []string
}

// SearchResultSet is returned by Search.
type SearchResultSet struct {
	Results []SearchResult
	Total   int
}

// ArtifactService exposes the requester-visible catalog. Every operation
// takes the verified session claims and applies the visibility predicate.
// List and Search silently omit denied artifacts; Get checks existence
// before authorization and distinguishes domain.ErrArtifactNotFound from
// domain.ErrForbidden.
type ArtifactService interface {
	List(ctx context.Context, claims domain.Claims) (*ListArtifactsResult, error)
	Get(ctx context.Context, id int64, claims domain.Claims) (*ArtifactView, error)
	Search(ctx context.Context, query string, claims domain.Claims) (*SearchResultSet, error)
}
