package domain

import (
	"errors"
	"time"
)

// ArtifactType tags an artifact for display and filtering. Known values are
// listed below; unrecognized tags are preserved as-is since the catalog does
// not enforce the set.
type ArtifactType string

const (
	TypeDocumentation   ArtifactType = "DOCUMENTATION"
	TypeArchitectureDoc ArtifactType = "ARCHITECTURE_DOC"
	TypeStrategy        ArtifactType = "STRATEGY"
	TypeHRPolicy        ArtifactType = "HR_POLICY"
)

var ErrArtifactNotFound = errors.New("artifact not found")
var ErrForbidden = errors.New("access forbidden")

// Artifact is a catalog entry. AccessLevel and IsHROnly together form the
// artifact's access policy; everything else is display data. Artifacts are
// immutable once provisioned.
type Artifact struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Type        ArtifactType `json:"type"`
	AccessLevel int          `json:"access_level"`
	IsHROnly    bool         `json:"is_hr_only"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
}
