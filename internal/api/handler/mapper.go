package handler

import (
	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
)

// --- Service result → HTTP response ---

func toArtifactResponse(v *ports.ArtifactView) artifactResponse {
	return artifactResponse{
		ID:          v.ID,
		Title:       v.Title,
		Content:     v.Content,
		Type:        v.Type,
		AccessLevel: v.AccessLevel,
		IsHROnly:    v.IsHROnly,
		Tags:        v.Tags,
		CreatedAt:   v.CreatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListArtifactsResult) listArtifactsResponse {
	items := make([]artifactResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toArtifactResponse(&r.Items[i])
	}
	return listArtifactsResponse{Artifacts: items, Total: r.Total}
}

func toSearchResponse(r *ports.SearchResultSet) searchResponse {
	results := make([]searchResultResponse, len(r.Results))
	for i, hit := range r.Results {
		results[i] = searchResultResponse{
			ID:             hit.ID,
			Title:          hit.Title,
			Content:        hit.Content,
			Type:           hit.Type,
			RelevanceScore: hit.RelevanceScore,
			Tags:           hit.Tags,
		}
	}
	return searchResponse{Results: results, Total: r.Total}
}

func toAccessLogsResponse(entries []*domain.AccessLog) listAccessLogsResponse {
	out := make([]accessLogResponse, len(entries))
	for i, e := range entries {
		out[i] = accessLogResponse{
			ID:         e.ID,
			Username:   e.Username,
			ArtifactID: e.ArtifactID,
			Action:     string(e.Action),
			Timestamp:  e.Timestamp.UTC(),
		}
	}
	return listAccessLogsResponse{Entries: out, Total: len(out)}
}
