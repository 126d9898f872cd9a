package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"ocrflow/internal/serving"
	"ocrflow/pkg/logger"
	"ocrflow/pkg/serrors"
)

// ProvisionerWorker is a River worker that makes serving endpoints READY. It
// reads the endpoint's current config at work time, loads every served model
// version into the serving cache and probes the OCR engine, then records the
// outcome.
//
// The worker never trusts the job to describe the desired config: an update
// that lands between enqueue and work simply means the job provisions the
// newer revision. The outcome update is guarded by the config revision that
// was provisioned, so an attempt that raced with a config change leaves the
// endpoint state to the follow-up job.
type ProvisionerWorker struct {
	river.WorkerDefaults[serving.ProvisionArgs]

	// serving loads models, probes engines and records provisioning outcomes.
	serving serving.Serving
	// provisionTimeout bounds a single provisioning attempt. Model artifact
	// copies and tesseract startup are the slow parts.
	provisionTimeout time.Duration
}

// NewProvisionerWorker constructs a ProvisionerWorker using the provided
// serving service.
func NewProvisionerWorker(servingSvc serving.Serving, provisionTimeout time.Duration) *ProvisionerWorker {
	return &ProvisionerWorker{
		serving:          servingSvc,
		provisionTimeout: provisionTimeout,
	}
}

// Work executes a single provisioning attempt. Failures are returned to River
// for backoff retries; the final failed attempt additionally marks the
// endpoint FAILED with the error recorded. A deleted endpoint cancels the job.
func (p *ProvisionerWorker) Work(ctx context.Context, job *river.Job[serving.ProvisionArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("endpoint", job.Args.EndpointName))

	endpoint, err := p.serving.GetEndpoint(ctx, job.Args.EndpointName)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			// the endpoint was deleted after the job was enqueued
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not get endpoint: %w", err)
	}

	provisionCtx, cancel := context.WithTimeout(ctx, p.provisionTimeout)
	defer cancel()

	if provisionErr := p.serving.Provision(provisionCtx, endpoint); provisionErr != nil {
		logger.Error(ctx, "error provisioning endpoint",
			zap.Int("attempt", job.Attempt),
			zap.Int("maxAttempts", job.MaxAttempts),
			zap.Error(provisionErr))

		if job.Attempt >= job.MaxAttempts {
			if _, err := p.serving.MarkProvisioned(ctx, endpoint.ID, endpoint.ConfigRevision, provisionErr); err != nil {
				return fmt.Errorf("could not mark endpoint failed: %w", err)
			}
		}

		return fmt.Errorf("could not provision endpoint: %w", provisionErr)
	}

	updated, err := p.serving.MarkProvisioned(ctx, endpoint.ID, endpoint.ConfigRevision, nil)
	if err != nil {
		return fmt.Errorf("could not mark endpoint ready: %w", err)
	}
	if updated == nil {
		logger.Info(ctx, "endpoint config changed during provisioning, leaving the outcome to the follow-up job")

		return nil
	}

	logger.Info(ctx, "endpoint provisioned", zap.Int("configRevision", updated.ConfigRevision))

	return nil
}
