package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ModelID uniquely identifies a registered model.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ModelID uuid.UUID

// namePartRe constrains each part of a model name. Parts are lowercase
// alphanumeric with underscores and hyphens, starting with an alphanumeric.
var namePartRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// MaxNamePartLength is the maximum length of a single model name part.
const MaxNamePartLength = 63

// ModelName is the three-part name of a registered model: catalog, schema and
// name, rendered as "catalog.schema.name". Models are always addressed by
// their full three-part name.
type ModelName struct {
	Catalog string `json:"catalog"`
	Schema  string `json:"schema"`
	Name    string `json:"name"`
}

// ParseModelName parses a "catalog.schema.name" string into a ModelName.
// All three parts must be present and valid.
func ParseModelName(s string) (ModelName, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ModelName{}, fmt.Errorf("model name %q must have exactly three parts (catalog.schema.name)", s)
	}
	for _, p := range parts {
		if err := ValidateNamePart(p); err != nil {
			return ModelName{}, fmt.Errorf("invalid model name %q: %w", s, err)
		}
	}

	return ModelName{Catalog: parts[0], Schema: parts[1], Name: parts[2]}, nil
}

// ValidateNamePart checks a single name part (catalog, schema, model name or
// endpoint name) against the naming rules.
func ValidateNamePart(p string) error {
	if p == "" {
		return fmt.Errorf("name part must not be empty")
	}
	if len(p) > MaxNamePartLength {
		return fmt.Errorf("name part %q exceeds %d characters", p, MaxNamePartLength)
	}
	if !namePartRe.MatchString(p) {
		return fmt.Errorf("name part %q must be lowercase alphanumeric with '_' or '-'", p)
	}

	return nil
}

// Validate checks all three parts against the naming rules.
func (n ModelName) Validate() error {
	for _, p := range []string{n.Catalog, n.Schema, n.Name} {
		if err := ValidateNamePart(p); err != nil {
			return fmt.Errorf("invalid model name %q: %w", n, err)
		}
	}

	return nil
}

// String renders the full three-part name.
func (n ModelName) String() string {
	return n.Catalog + "." + n.Schema + "." + n.Name
}

// IsZero reports whether the name is unset.
func (n ModelName) IsZero() bool {
	return n.Catalog == "" && n.Schema == "" && n.Name == ""
}

// Model is a registered model: a named container for versions in the registry.
type Model struct {
	// ID is the unique identifier of the registered model.
	ID ModelID `json:"id"`
	// Name is the full three-part name under which the model is registered.
	Name ModelName `json:"name"`
	// Description is an optional free-form text describing the model.
	Description string `json:"description,omitempty"`

	// CreatedAt is the time when the model was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the model record was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// VersionStatus represents the lifecycle state of a model version.
type VersionStatus string

const (
	// VersionStatusPending indicates the version is being materialized from its source artifact.
	VersionStatusPending VersionStatus = "PENDING"
	// VersionStatusReady indicates the version artifact is stored and loadable.
	VersionStatusReady VersionStatus = "READY"
	// VersionStatusFailed indicates the version could not be materialized; see LastError.
	VersionStatusFailed VersionStatus = "FAILED"
)

// ModelVersion is a single immutable version of a registered model. Versions
// are numbered per model starting at 1.
type ModelVersion struct {
	// ID is the unique identifier of the version row.
	ID uuid.UUID `json:"id"`
	// ModelID references the registered model this version belongs to.
	ModelID ModelID `json:"modelId"`
	// Name is the full three-part name of the owning model.
	Name ModelName `json:"name"`
	// Version is the per-model sequence number of this version.
	Version int `json:"version"`

	// SourceURI is the artifact URI the version was created from, e.g.
	// "runs:/<run_id>/<artifact_path>".
	SourceURI string `json:"sourceUri"`
	// RunID is the run the source artifact belongs to, when the source is a run URI.
	RunID RunID `json:"runId,omitempty"`
	// ArtifactPath is the registry-local directory holding the copied model artifact.
	ArtifactPath string `json:"-"`
	// Description is an optional free-form text describing the version.
	Description string `json:"description,omitempty"`

	// Status is the current lifecycle state of the version.
	Status VersionStatus `json:"status"`
	// LastError stores the most recent materialization error, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the version was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the version was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
