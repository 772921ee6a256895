package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/metrics"
)

// Search results return at most this many characters of content.
const searchSnippetLimit = 200

// relevanceScore is a fixed placeholder: search does not rank beyond the
// match/no-match boolean.
const relevanceScore = 0.95

// AuditRecorder accepts access-log entries for asynchronous persistence.
type AuditRecorder interface {
	Record(entry *domain.AccessLog)
}

// ArtifactService applies the visibility predicate over the catalog.
type ArtifactService struct {
	repo  ports.ArtifactRepository
	audit AuditRecorder
	log   zerolog.Logger
}

func NewArtifactService(repo ports.ArtifactRepository, audit AuditRecorder, log zerolog.Logger) *ArtifactService {
	return &ArtifactService{repo: repo, audit: audit, log: log}
}

// List returns every artifact visible to the claims, in catalog order.
// Denied artifacts are silently omitted.
func (s *ArtifactService) List(ctx context.Context, claims domain.Claims) (*ports.ListArtifactsResult, error) {
	artifacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ArtifactView, 0, len(artifacts))
	for _, a := range artifacts {
		if domain.Visible(a, claims) {
			items = append(items, toView(a))
		}
	}

	return &ports.ListArtifactsResult{Items: items, Total: len(items)}, nil
}

// Get returns a single artifact. Existence is checked before authorization,
// so an unknown id is ErrArtifactNotFound for every requester and a known
// but denied one is ErrForbidden.
func (s *ArtifactService) Get(ctx context.Context, id int64, claims domain.Claims) (*ports.ArtifactView, error) {
	artifact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Visible(artifact, claims) {
		metrics.AccessDeniedTotal.WithLabelValues(denyReason(artifact, claims)).Inc()
		s.log.Debug().Int64("artifact_id", id).Str("username", claims.Username).Msg("artifact access denied")
		return nil, domain.ErrForbidden
	}

	s.recordAccess(claims.Username, artifact.ID, domain.ActionView)
	view := toView(artifact)
	return &view, nil
}

// Search performs a case-insensitive substring match on title or content
// over the artifacts visible to the claims, in catalog order. An empty or
// whitespace-only query returns an empty result set, not the full catalog.
func (s *ArtifactService) Search(ctx context.Context, query string, claims domain.Claims) (*ports.SearchResultSet, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return &ports.SearchResultSet{Results: []ports.SearchResult{}, Total: 0}, nil
	}

	start := time.Now()
	artifacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ports.SearchResult, 0)
	for _, a := range artifacts {
		if !domain.Visible(a, claims) {
			continue
		}
		if !strings.Contains(strings.ToLower(a.Title), q) && !strings.Contains(strings.ToLower(a.Content), q) {
			continue
		}
		results = append(results, ports.SearchResult{
			ID:             a.ID,
			Title:          a.Title,
			Content:        truncate(a.Content, searchSnippetLimit),
			Type:           string(a.Type),
			RelevanceScore: relevanceScore,
			Tags:           a.Tags,
		})
		s.recordAccess(claims.Username, a.ID, domain.ActionSearch)
	}

	metrics.SearchesTotal.Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	return &ports.SearchResultSet{Results: results, Total: len(results)}, nil
}

func (s *ArtifactService) recordAccess(username string, artifactID int64, action domain.AccessAction) {
	if s.audit == nil {
		return
	}
	s.audit.Record(&domain.AccessLog{
		ID:         uuid.NewString(),
		Username:   username,
		ArtifactID: artifactID,
		Action:     action,
		Timestamp:  time.Now().UTC(),
	})
}

func denyReason(a *domain.Artifact, c domain.Claims) string {
	if a.IsHROnly && !c.IsHR {
		return "hr_only"
	}
	return "insufficient_level"
}

func toView(a *domain.Artifact) ports.ArtifactView {
	return ports.ArtifactView{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Type:        string(a.Type),
		AccessLevel: a.AccessLevel,
		IsHROnly:    a.IsHROnly,
		Tags:        a.Tags,
		CreatedAt:   a.CreatedAt,
	}
}

// truncate caps s at limit runes, appending a marker when content was cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
