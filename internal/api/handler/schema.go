package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Level    int    `json:"level"`
	IsHR     bool   `json:"is_hr"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userSummary `json:"user"`
}

// --- Artifacts ---

// Response-only types owned by the transport layer. Intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type artifactResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	AccessLevel int       `json:"access_level"`
	IsHROnly    bool      `json:"is_hr_only"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

type listArtifactsResponse struct {
	Artifacts []artifactResponse `json:"artifacts"`
	Total     int                `json:"total"`
}

type searchResultResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Type           string   `json:"type"`
	RelevanceScore float64  `json:"relevance_score"`
	Tags           []string `json:"tags"`
}

type searchResponse struct {
	Results []searchResultResponse `json:"results"`
	Total   int                    `json:"total"`
}

// --- Audit ---

type accessLogResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	ArtifactID int64     `json:"artifact_id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

type listAccessLogsResponse struct {
	Entries []accessLogResponse `json:"entries"`
	Total   int                 `json:"total"`
}
