package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubArtifactRepo struct {
	artifacts []*domain.Artifact
}

func (r *stubArtifactRepo) List(context.Context) ([]*domain.Artifact, error) {
	return r.artifacts, nil
}

func (r *stubArtifactRepo) FindByID(_ context.Context, id int64) (*domain.Artifact, error) {
	for _, a := range r.artifacts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrArtifactNotFound
}

func (r *stubArtifactRepo) Create(_ context.Context, a *domain.Artifact) error {
	a.ID = int64(len(r.artifacts) + 1)
	r.artifacts = append(r.artifacts, a)
	return nil
}

type stubAudit struct {
	entries []*domain.AccessLog
}

func (s *stubAudit) Record(entry *domain.AccessLog) {
	s.entries = append(s.entries, entry)
}

func testCatalog() []*domain.Artifact {
	return []*domain.Artifact{
		{ID: 1, Title: "Onboarding Guide", Content: "Welcome to the team.", Type: domain.TypeDocumentation, AccessLevel: 10},
		{ID: 2, Title: "Platform Architecture", Content: "Service boundaries and data flow.", Type: domain.TypeArchitectureDoc, AccessLevel: 40},
		{ID: 3, Title: "Five Year Strategy", Content: "Confidential growth strategy.", Type: domain.TypeStrategy, AccessLevel: 80},
		{ID: 4, Title: "Employee Benefits", Content: "Benefits overview for all staff.", Type: domain.TypeHRPolicy, AccessLevel: 0, IsHROnly: true},
	}
}

func newArtifactService(catalog []*domain.Artifact, audit *stubAudit) *ArtifactService {
	var rec AuditRecorder
	if audit != nil {
		rec = audit
	}
	return NewArtifactService(&stubArtifactRepo{artifacts: catalog}, rec, zerolog.Nop())
}

func claimsWith(level int, isHR bool) domain.Claims {
	return domain.Claims{Username: "tester", Role: domain.RoleEngineer, Level: level, IsHR: isHR}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestArtifactService_List_FiltersByVisibility(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	res, err := svc.List(context.Background(), claimsWith(40, false))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Total)
	}
	// Catalog order is preserved.
	if res.Items[0].ID != 1 || res.Items[1].ID != 2 {
		t.Errorf("unexpected order: %d, %d", res.Items[0].ID, res.Items[1].ID)
	}
}

func TestArtifactService_List_HRSeesHROnly(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	res, err := svc.List(context.Background(), claimsWith(20, true))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	ids := make([]int64, 0, len(res.Items))
	for _, it := range res.Items {
		ids = append(ids, it.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 4 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestArtifactService_List_EmptyForLowLevel(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	res, err := svc.List(context.Background(), claimsWith(5, false))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 0 || len(res.Items) != 0 {
		t.Fatalf("expected empty list, got %+v", res)
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestArtifactService_Get_Visible(t *testing.T) {
	audit := &stubAudit{}
	svc := newArtifactService(testCatalog(), audit)

	view, err := svc.Get(context.Background(), 1, claimsWith(10, false))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.Title != "Onboarding Guide" {
		t.Errorf("title = %q", view.Title)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(audit.entries))
	}
	if audit.entries[0].Action != domain.ActionView || audit.entries[0].ArtifactID != 1 {
		t.Errorf("unexpected audit entry: %+v", audit.entries[0])
	}
}

func TestArtifactService_Get_Forbidden(t *testing.T) {
	audit := &stubAudit{}
	svc := newArtifactService(testCatalog(), audit)

	if _, err := svc.Get(context.Background(), 3, claimsWith(40, false)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(audit.entries) != 0 {
		t.Errorf("denied access must not be audited as a view, got %d entries", len(audit.entries))
	}
}

func TestArtifactService_Get_NotFoundBeforeForbidden(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	// An id that does not exist is not-found even for a requester who could
	// not have seen it anyway.
	if _, err := svc.Get(context.Background(), 99, claimsWith(0, false)); !errors.Is(err, domain.ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestArtifactService_Search_MatchesOnlyVisible(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)
	claims := claimsWith(10, false)

	res, err := svc.Search(context.Background(), "guide", claims)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 1 || res.Results[0].ID != 1 {
		t.Fatalf("unexpected results: %+v", res)
	}

	// A level-10 reader cannot surface the strategy doc even on a direct hit.
	res, err = svc.Search(context.Background(), "strategy", claims)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("expected no results, got %+v", res)
	}
}

func TestArtifactService_Search_CaseInsensitiveTitleAndContent(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)
	claims := claimsWith(100, false)

	res, err := svc.Search(context.Background(), "ONBOARDING", claims)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 1 || res.Results[0].ID != 1 {
		t.Fatalf("title match failed: %+v", res)
	}

	res, err = svc.Search(context.Background(), "data flow", claims)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 1 || res.Results[0].ID != 2 {
		t.Fatalf("content match failed: %+v", res)
	}
}

func TestArtifactService_Search_EmptyQuery(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		res, err := svc.Search(context.Background(), q, claimsWith(100, true))
		if err != nil {
			t.Fatalf("search(%q) failed: %v", q, err)
		}
		if res.Total != 0 || len(res.Results) != 0 {
			t.Fatalf("search(%q): expected empty set, got %+v", q, res)
		}
	}
}

func TestArtifactService_Search_TruncatesContent(t *testing.T) {
	long := strings.Repeat("é", 300)
	catalog := []*domain.Artifact{
		{ID: 1, Title: "Long Doc", Content: long, Type: domain.TypeDocumentation, AccessLevel: 0},
	}
	svc := newArtifactService(catalog, nil)

	res, err := svc.Search(context.Background(), "long", claimsWith(0, false))
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	got := res.Results[0].Content
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation marker, got %q", got[len(got)-10:])
	}
	if n := len([]rune(got)); n != searchSnippetLimit+3 {
		t.Errorf("snippet length = %d runes, want %d", n, searchSnippetLimit+3)
	}

	if res.Results[0].RelevanceScore != relevanceScore {
		t.Errorf("relevance = %v, want %v", res.Results[0].RelevanceScore, relevanceScore)
	}
}

func TestArtifactService_Search_ShortContentNotTruncated(t *testing.T) {
	svc := newArtifactService(testCatalog(), nil)

	res, err := svc.Search(context.Background(), "welcome", claimsWith(10, false))
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if got := res.Results[0].Content; got != "Welcome to the team." {
		t.Errorf("content = %q", got)
	}
}

func TestArtifactService_Search_AuditsEachHit(t *testing.T) {
	audit := &stubAudit{}
	svc := newArtifactService(testCatalog(), audit)

	if _, err := svc.Search(context.Background(), "the", claimsWith(100, true)); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(audit.entries) == 0 {
		t.Fatal("expected audit entries for search hits")
	}
	for _, e := range audit.entries {
		if e.Action != domain.ActionSearch {
			t.Errorf("action = %q, want %q", e.Action, domain.ActionSearch)
		}
	}
}
