// Package runs implements tracking runs: sessions under which model artifacts
// are logged to the local artifact store and addressed as
// "runs:/<run_id>/<artifact_path>".
package runs

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"ocrflow/internal/artifact"
	"ocrflow/internal/config"
	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
	"ocrflow/pkg/storage"
)

// Options configure how logged models are built and verified.
type Options struct {
	// OCRDataPath overrides the tesseract tessdata directory used when a
	// sample input is run during signature inference.
	OCRDataPath string
	// DefaultLanguages are recorded in a logged model config when the caller
	// does not pin any languages.
	DefaultLanguages []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OCRDataPath:      cfg.OCR.DataPath,
		DefaultLanguages: cfg.OCR.Languages,
	}
}

// runs is the concrete implementation of the Runs interface. It coordinates
// run rows in storage with artifact directories on the local filesystem.
type runs struct {
	options   Options
	storage   storage.Storage
	artifacts *artifact.Store
}

// New creates a Runs service backed by the provided storage and artifact store.
func New(storage storage.Storage, artifacts *artifact.Store, options Options) Runs {
	return &runs{
		options:   options,
		storage:   storage,
		artifacts: artifacts,
	}
}

// Create opens a new run in RUNNING state. The run ID is generated here so the
// artifact directory can be derived from it and persisted with the row.
func (r *runs) Create(ctx context.Context, userID domain.UserID, name string) (*domain.Run, error) {
	id := domain.RunID(uuid.New())
	root := r.artifacts.RunRoot(id)

	if _, err := r.artifacts.MkdirAll(root); err != nil {
		return nil, fmt.Errorf("could not create run artifact dir: %w", err)
	}

	run, err := r.storage.StoreRun(ctx, domain.Run{
		ID:           id,
		UserID:       userID,
		Name:         name,
		Status:       domain.RunStatusRunning,
		ArtifactRoot: root,
	})
	if err != nil {
		// drop the whole run dir, not just the artifacts leaf
		_ = r.artifacts.RemoveAll(path.Dir(root))

		return nil, fmt.Errorf("could not store run: %w", err)
	}

	return run, nil
}

// Get fetches a single run by ID. It returns a not-found error when no such
// run exists.
func (r *runs) Get(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	run, err := r.storage.RunByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get run: %w", err)
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}

	return run, nil
}

// LogModel writes a model artifact under the run and returns its
// "runs:/<run_id>/<artifact_path>" URI. When a sample input is provided the
// model is run on it once and the signature is inferred from the sample and
// its output; otherwise the default OCR signature is recorded.
func (r *runs) LogModel(ctx context.Context, id domain.RunID, params LogModelParams) (string, error) {
	run, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if run.Status != domain.RunStatusRunning {
		return "", serrors.With(serrors.ErrConflict, "run is %s, models can only be logged to a RUNNING run", run.Status)
	}

	if err := artifact.ValidateRelPath(params.ArtifactPath); err != nil {
		return "", serrors.Wrap(serrors.ErrInvalid, err, "invalid artifact path")
	}
	if len(params.Config.Languages) == 0 {
		params.Config.Languages = r.options.DefaultLanguages
	}
	if err := params.Config.Validate(); err != nil {
		return "", err
	}

	sig, err := r.inferSignature(ctx, params)
	if err != nil {
		return "", err
	}

	dir, err := r.artifacts.Resolve(path.Join(run.ArtifactRoot, params.ArtifactPath))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInvalid, err, "invalid artifact path")
	}
	if err := model.Save(dir, params.Config, sig); err != nil {
		return "", fmt.Errorf("could not save model artifact: %w", err)
	}

	return model.RunsURI(id, params.ArtifactPath), nil
}

// inferSignature runs the model once over the sample input, when present, so
// the recorded schema reflects what the model actually produces.
func (r *runs) inferSignature(ctx context.Context, params LogModelParams) (model.Signature, error) {
	if params.SampleInput == nil {
		return model.DefaultSignature(), nil
	}

	engine, err := model.NewEngine(params.Config, model.EngineOptions{DataPath: r.options.OCRDataPath})
	if err != nil {
		return model.Signature{}, err
	}

	predictor := model.NewPredictor(params.Config, model.Signature{}, engine)
	prediction, err := predictor.Predict(ctx, *params.SampleInput)
	if err != nil {
		return model.Signature{}, fmt.Errorf("could not run model on the sample input: %w", err)
	}

	return model.InferSignature(*params.SampleInput, prediction.Record())
}

// Finish transitions a RUNNING run to FINISHED or FAILED. Any other target
// status is rejected, and a run that is already closed stays closed.
func (r *runs) Finish(ctx context.Context, id domain.RunID, status domain.RunStatus) (*domain.Run, error) {
	if status != domain.RunStatusFinished && status != domain.RunStatusFailed {
		return nil, serrors.With(serrors.ErrInvalid, "runs can only be finished as FINISHED or FAILED, not %q", status)
	}

	var run *domain.Run
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.RunByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get run: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "run not found")
		}
		if current.Status != domain.RunStatusRunning {
			return serrors.With(serrors.ErrConflict, "run is already %s", current.Status)
		}

		run, err = tx.UpdateRunStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("could not update run status: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return run, nil
}

// ResolveArtifact maps a run artifact path to its directory on disk. It
// returns a not-found error when the run or the artifact does not exist.
func (r *runs) ResolveArtifact(ctx context.Context, id domain.RunID, artifactPath string) (string, error) {
	run, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := artifact.ValidateRelPath(artifactPath); err != nil {
		return "", serrors.Wrap(serrors.ErrInvalid, err, "invalid artifact path")
	}

	rel := path.Join(run.ArtifactRoot, artifactPath)
	exists, err := r.artifacts.DirExists(rel)
	if err != nil {
		return "", fmt.Errorf("could not check artifact dir: %w", err)
	}
	if !exists {
		return "", serrors.With(serrors.ErrNotFound, "run has no artifact at %q", artifactPath)
	}

	return r.artifacts.Resolve(rel)
}
