package runs

import (
	"context"

	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
)

// LogModelParams describe one model artifact to be written under a run.
type LogModelParams struct {
	// ArtifactPath is the run-relative directory the model is written to,
	// e.g. "ocr-model".
	ArtifactPath string
	// Config selects and tunes the OCR engine of the logged model.
	Config model.Config
	// SampleInput optionally provides a one-row example. The model is run on
	// it once to infer the signature; without a sample the default OCR
	// signature is recorded.
	SampleInput *model.Table
}

//go:generate mockgen -package mockruns -source=interface.go -destination=mock/mockruns.go *
type Runs interface {
	Create(ctx context.Context, userID domain.UserID, name string) (*domain.Run, error)
	Get(ctx context.Context, id domain.RunID) (*domain.Run, error)
	LogModel(ctx context.Context, id domain.RunID, params LogModelParams) (string, error)
	Finish(ctx context.Context, id domain.RunID, status domain.RunStatus) (*domain.Run, error)
	ResolveArtifact(ctx context.Context, id domain.RunID, artifactPath string) (string, error)
}
