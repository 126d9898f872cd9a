package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ocrflow/internal/artifact"
	"ocrflow/internal/config"
	"ocrflow/internal/model"
	"ocrflow/internal/registry"
	"ocrflow/internal/runs"
	"ocrflow/internal/serving"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/logger"
	"ocrflow/pkg/serrors"
)

// deployCommand constructs the 'deploy' subcommand that walks the full path
// from logging a model to a serving endpoint: it creates a run, logs the model
// under it, registers a version and creates (or reconfigures) an endpoint
// serving that version. Provisioning itself is picked up by the workers of a
// running 'serve' process.
func deployCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Logs a model, registers a version and creates a serving endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			modelName, _ := cmd.Flags().GetString("model")
			endpointName, _ := cmd.Flags().GetString("endpoint")
			artifactPath, _ := cmd.Flags().GetString("artifact-path")
			engine, _ := cmd.Flags().GetString("engine")
			languages, _ := cmd.Flags().GetStringSlice("languages")
			jpegQuality, _ := cmd.Flags().GetInt("jpeg-quality")
			samplePath, _ := cmd.Flags().GetString("sample")
			description, _ := cmd.Flags().GetString("description")

			name, err := domain.ParseModelName(modelName)
			if err != nil {
				logger.Fatal(ctx, "invalid model name", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			artifacts, err := artifact.NewStore(cfg.Artifacts.Root)
			if err != nil {
				logger.Fatal(ctx, "could not open artifact store", zap.Error(err))
			}

			registrySvc := registry.New(strg, artifacts, registry.NewOptions(cfg))
			runsSvc := runs.New(strg, artifacts, runs.NewOptions(cfg))
			servingSvc := serving.New(serving.NewOptions(cfg), strg, registrySvc)

			var sample *model.Table
			if samplePath != "" {
				raw, err := os.ReadFile(samplePath) //nolint: gosec
				if err != nil {
					logger.Fatal(ctx, "could not read sample image", zap.Error(err))
				}
				sample = &model.Table{
					Columns: []string{model.ImageColumn},
					Rows:    [][]any{{raw}},
				}
			}

			run, err := runsSvc.Create(ctx, domain.UserID{}, "deploy "+name.String())
			if err != nil {
				logger.Fatal(ctx, "could not create run", zap.Error(err))
			}

			uri, err := runsSvc.LogModel(ctx, run.ID, runs.LogModelParams{
				ArtifactPath: artifactPath,
				Config: model.Config{
					Engine:      engine,
					Languages:   languages,
					JPEGQuality: jpegQuality,
				},
				SampleInput: sample,
			})
			if err != nil {
				logger.Fatal(ctx, "could not log model", zap.Error(err))
			}
			if _, err := runsSvc.Finish(ctx, run.ID, domain.RunStatusFinished); err != nil {
				logger.Fatal(ctx, "could not finish run", zap.Error(err))
			}

			if _, err := registrySvc.CreateModel(ctx, name, description); err != nil {
				if !errors.Is(err, serrors.ErrConflict) {
					logger.Fatal(ctx, "could not register model", zap.Error(err))
				}
				logger.Info(ctx, "model already registered", zap.String("model", name.String()))
			}

			version, err := registrySvc.CreateVersion(ctx, name, uri, description)
			if err != nil {
				logger.Fatal(ctx, "could not register version", zap.Error(err))
			}

			endpointConfig := domain.EndpointConfig{
				ServedEntities: []domain.ServedEntity{{
					Name:          "main",
					EntityName:    name,
					EntityVersion: version.Version,
					WorkloadSize:  domain.WorkloadSizeSmall,
				}},
			}
			endpoint, err := servingSvc.CreateEndpoint(ctx, domain.UserID{}, endpointName, endpointConfig)
			if err != nil {
				if !errors.Is(err, serrors.ErrConflict) {
					logger.Fatal(ctx, "could not create endpoint", zap.Error(err))
				}
				endpoint, err = servingSvc.UpdateEndpointConfig(ctx, endpointName, endpointConfig)
				if err != nil {
					logger.Fatal(ctx, "could not update endpoint config", zap.Error(err))
				}
			}

			//nolint: forbidigo
			fmt.Printf("run:      %s\nmodel:    %s\nversion:  %d\nuri:      %s\nendpoint: %s (%s)\n",
				run.ID, name, version.Version, model.ModelsURI(name, version.Version),
				endpoint.Name, endpoint.State)
		},
	}

	cmd.Flags().String("model", "", "Full model name, catalog.schema.name")
	cmd.Flags().String("endpoint", "", "Serving endpoint name")
	cmd.Flags().String("artifact-path", "ocr-model", "Run-relative artifact directory")
	cmd.Flags().String("engine", model.EngineTesseract, "OCR engine (tesseract, noop)")
	cmd.Flags().StringSlice("languages", nil, "Recognition languages, e.g. eng,deu")
	cmd.Flags().Int("jpeg-quality", 0, "JPEG quality used for input normalization (0 = default)")
	cmd.Flags().String("sample", "", "Path to a sample image used to infer the model signature")
	cmd.Flags().String("description", "", "Model and version description")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}
