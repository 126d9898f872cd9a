// Package registry implements the model registry: registered models addressed
// by three-part names, with numbered versions materialized from run artifacts
// into the registry artifact area.
package registry

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"ocrflow/internal/artifact"
	"ocrflow/internal/config"
	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
	"ocrflow/pkg/storage"
)

// versionInsertRetries bounds how often a version insert is retried when
// concurrent inserts race for the same version number.
const versionInsertRetries = 3

// Options configure how version artifacts are verified.
type Options struct {
	// OCRDataPath overrides the tesseract tessdata directory used when source
	// artifacts are load-checked.
	OCRDataPath string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OCRDataPath: cfg.OCR.DataPath,
	}
}

// registry is the concrete implementation of the Registry interface.
type registry struct {
	options   Options
	storage   storage.Storage
	artifacts *artifact.Store
}

// New creates a Registry service backed by the provided storage and artifact
// store.
func New(storage storage.Storage, artifacts *artifact.Store, options Options) Registry {
	return &registry{
		options:   options,
		storage:   storage,
		artifacts: artifacts,
	}
}

// CreateModel registers a new model under a three-part name. Registering a
// name that already exists yields a conflict error.
func (r *registry) CreateModel(ctx context.Context,
	name domain.ModelName,
	description string) (*domain.Model, error) {
	if err := name.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "invalid model name")
	}

	stored, err := r.storage.StoreModel(ctx, domain.Model{Name: name, Description: description})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "model %q already exists", name)
		}

		return nil, fmt.Errorf("could not store model: %w", err)
	}

	return stored, nil
}

// GetModel fetches a registered model by its full name.
func (r *registry) GetModel(ctx context.Context, name domain.ModelName) (*domain.Model, error) {
	stored, err := r.storage.ModelByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get model: %w", err)
	}
	if stored == nil {
		return nil, serrors.With(serrors.ErrNotFound, "model %q not found", name)
	}

	return stored, nil
}

// ListModels returns a page of registered models, optionally narrowed to a
// catalog or schema, with cursor-based pagination.
func (r *registry) ListModels(ctx context.Context, params ListModelsParams) ([]domain.Model, string, error) {
	var cursorTime time.Time
	if params.Cursor != "" {
		t, err := time.Parse(time.RFC3339, params.Cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrInvalid, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := r.storage.Models(ctx, storage.ModelFilter{
		Catalog: params.Catalog,
		Schema:  params.Schema,
		Cursor:  cursorTime,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not list models: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Models, next, nil
}

// CreateVersion materializes a new version of a registered model from a source
// artifact: the source is load-checked, the next version number is assigned,
// the artifact is copied into the registry area and the version is marked
// READY. A version that fails to materialize is kept with FAILED status and
// the error recorded.
func (r *registry) CreateVersion(ctx context.Context,
	name domain.ModelName,
	sourceURI string,
	description string) (*domain.ModelVersion, error) {
	owner, err := r.GetModel(ctx, name)
	if err != nil {
		return nil, err
	}

	src, err := model.ParseSourceURI(sourceURI)
	if err != nil {
		return nil, err
	}

	srcRel, err := r.resolveSourceRel(ctx, src)
	if err != nil {
		return nil, err
	}
	srcDir, err := r.artifacts.Resolve(srcRel)
	if err != nil {
		return nil, err
	}
	if _, err := model.Load(srcDir, r.engineOptions()); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "source is not a loadable model artifact")
	}

	created, err := r.insertVersion(ctx, domain.ModelVersion{
		ModelID:     owner.ID,
		Name:        owner.Name,
		SourceURI:   sourceURI,
		RunID:       src.RunID,
		Description: description,
		Status:      domain.VersionStatusPending,
	})
	if err != nil {
		return nil, err
	}

	dstRel := r.artifacts.VersionRoot(owner.ID, created.Version)
	if err := r.artifacts.CopyDir(srcRel, dstRel); err != nil {
		_ = r.artifacts.RemoveAll(dstRel)
		r.markVersionFailed(ctx, created.ID, err)

		return nil, fmt.Errorf("could not copy artifact into the registry: %w", err)
	}

	ready, err := r.storage.UpdateVersionByID(ctx, created.ID, storage.VersionUpdates{
		Status:       domain.VersionStatusReady,
		ArtifactPath: &dstRel,
	})
	if err != nil {
		return nil, fmt.Errorf("could not mark version ready: %w", err)
	}
	if ready == nil {
		return nil, serrors.With(serrors.ErrNotFound, "version disappeared while materializing")
	}

	return ready, nil
}

// insertVersion stores a version row, retrying when a concurrent insert takes
// the version number first. The number itself is assigned by storage.
func (r *registry) insertVersion(ctx context.Context, version domain.ModelVersion) (*domain.ModelVersion, error) {
	for attempt := 0; attempt < versionInsertRetries; attempt++ {
		created, err := r.storage.StoreVersion(ctx, version)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				continue
			}

			return nil, fmt.Errorf("could not store version: %w", err)
		}

		return created, nil
	}

	return nil, serrors.With(serrors.ErrConflict,
		"could not allocate a version number for %q after %d attempts", version.Name, versionInsertRetries)
}

// markVersionFailed records a materialization error on the version row. The
// returned row is ignored; the caller is already propagating the root cause.
func (r *registry) markVersionFailed(ctx context.Context, id uuid.UUID, cause error) {
	msg := cause.Error()
	_, _ = r.storage.UpdateVersionByID(ctx, id, storage.VersionUpdates{
		Status:    domain.VersionStatusFailed,
		LastError: &msg,
	})
}

// GetVersion fetches one version of a registered model.
func (r *registry) GetVersion(ctx context.Context,
	name domain.ModelName,
	version int) (*domain.ModelVersion, error) {
	owner, err := r.GetModel(ctx, name)
	if err != nil {
		return nil, err
	}

	stored, err := r.storage.VersionByNumber(ctx, owner.ID, version)
	if err != nil {
		return nil, fmt.Errorf("could not get version: %w", err)
	}
	if stored == nil {
		return nil, serrors.With(serrors.ErrNotFound, "model %q has no version %d", name, version)
	}

	return stored, nil
}

// ListVersions returns all versions of a registered model, newest first.
func (r *registry) ListVersions(ctx context.Context, name domain.ModelName) ([]domain.ModelVersion, error) {
	owner, err := r.GetModel(ctx, name)
	if err != nil {
		return nil, err
	}

	versions, err := r.storage.ModelVersions(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list versions: %w", err)
	}

	return versions, nil
}

// ResolveURI maps a "runs:/" or "models:/" URI to the artifact directory on
// disk. Model versions resolve only once they are READY.
func (r *registry) ResolveURI(ctx context.Context, uri string) (string, error) {
	src, err := model.ParseSourceURI(uri)
	if err != nil {
		return "", err
	}

	rel, err := r.resolveSourceRel(ctx, src)
	if err != nil {
		return "", err
	}

	return r.artifacts.Resolve(rel)
}

// resolveSourceRel maps a parsed source URI to a store-relative artifact
// directory, checking that the referenced run or version actually exists.
func (r *registry) resolveSourceRel(ctx context.Context, src model.SourceURI) (string, error) {
	switch src.Scheme {
	case model.SchemeRuns:
		run, err := r.storage.RunByID(ctx, src.RunID)
		if err != nil {
			return "", fmt.Errorf("could not get run: %w", err)
		}
		if run == nil {
			return "", serrors.With(serrors.ErrNotFound, "run %s not found", uuid.UUID(src.RunID))
		}

		rel := path.Join(run.ArtifactRoot, src.Path)
		exists, err := r.artifacts.DirExists(rel)
		if err != nil {
			return "", fmt.Errorf("could not check artifact dir: %w", err)
		}
		if !exists {
			return "", serrors.With(serrors.ErrNotFound, "run has no artifact at %q", src.Path)
		}

		return rel, nil

	case model.SchemeModels:
		version, err := r.GetVersion(ctx, src.Name, src.Version)
		if err != nil {
			return "", err
		}
		if version.Status != domain.VersionStatusReady {
			return "", serrors.With(serrors.ErrUnavailable,
				"version %d of %q is %s, not READY", src.Version, src.Name, version.Status)
		}

		return version.ArtifactPath, nil

	default:
		return "", serrors.With(serrors.ErrInvalid, "unsupported source uri scheme %q", src.Scheme)
	}
}

func (r *registry) engineOptions() model.EngineOptions {
	return model.EngineOptions{DataPath: r.options.OCRDataPath}
}
