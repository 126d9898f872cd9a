package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// URI schemes a model source may use.
const (
	SchemeRuns   = "runs"
	SchemeModels = "models"
)

// SourceURI is a parsed model source location. Only the fields of the parsed
// scheme are populated.
type SourceURI struct {
	Scheme string

	// RunID and Path address an artifact below a run (runs:/<run_id>/<path>).
	RunID domain.RunID
	Path  string

	// Name and Version address a registered version
	// (models:/<catalog.schema.name>/<version>).
	Name    domain.ModelName
	Version int
}

// RunsURI renders the canonical runs:/ URI for an artifact below a run.
func RunsURI(runID domain.RunID, path string) string {
	return fmt.Sprintf("%s:/%s/%s", SchemeRuns, uuid.UUID(runID), path)
}

// ModelsURI renders the canonical models:/ URI for a registered version.
func ModelsURI(name domain.ModelName, version int) string {
	return fmt.Sprintf("%s:/%s/%d", SchemeModels, name, version)
}

// ParseSourceURI classifies a source URI into one of the supported schemes.
// Both the single-slash (runs:/...) and double-slash (runs://...) spellings
// are accepted.
func ParseSourceURI(raw string) (SourceURI, error) {
	scheme, rest, ok := strings.Cut(raw, ":/")
	if !ok {
		return SourceURI{}, serrors.With(serrors.ErrInvalid, "source uri %q has no scheme", raw)
	}
	rest = strings.TrimPrefix(rest, "/")

	switch scheme {
	case SchemeRuns:
		idPart, path, ok := strings.Cut(rest, "/")
		if !ok || path == "" {
			return SourceURI{}, serrors.With(serrors.ErrInvalid, "runs uri %q has no artifact path", raw)
		}

		id, err := uuid.Parse(idPart)
		if err != nil {
			return SourceURI{}, serrors.Wrap(serrors.ErrInvalid, err, "runs uri %q has a bad run id", raw)
		}

		for _, seg := range strings.Split(path, "/") {
			if seg == "" || seg == "." || seg == ".." {
				return SourceURI{}, serrors.With(serrors.ErrInvalid, "runs uri %q has a bad artifact path", raw)
			}
		}

		return SourceURI{Scheme: SchemeRuns, RunID: domain.RunID(id), Path: path}, nil

	case SchemeModels:
		namePart, verPart, ok := strings.Cut(rest, "/")
		if !ok {
			return SourceURI{}, serrors.With(serrors.ErrInvalid, "models uri %q has no version", raw)
		}

		name, err := domain.ParseModelName(namePart)
		if err != nil {
			return SourceURI{}, serrors.Wrap(serrors.ErrInvalid, err, "models uri %q has a bad model name", raw)
		}

		version, err := strconv.Atoi(verPart)
		if err != nil || version < 1 {
			return SourceURI{}, serrors.With(serrors.ErrInvalid, "models uri %q has a bad version %q", raw, verPart)
		}

		return SourceURI{Scheme: SchemeModels, Name: name, Version: version}, nil

	default:
		return SourceURI{}, serrors.With(serrors.ErrInvalid, "unsupported source uri scheme %q", scheme)
	}
}
