package domain

import "time"

// AccessAction identifies how an artifact was read.
type AccessAction string

const (
	ActionView   AccessAction = "view"
	ActionSearch AccessAction = "search"
)

// AccessLog records a single successful artifact read for the audit trail.
type AccessLog struct {
	ID         string       `json:"id"`
	Username   string       `json:"username"`
	ArtifactID int64        `json:"artifact_id"`
	Action     AccessAction `json:"action"`
	Timestamp  time.Time    `json:"timestamp"`
}
