package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ocrflow/internal/artifact"
	"ocrflow/internal/config"
	"ocrflow/internal/model"
	"ocrflow/internal/registry"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/logger"
)

// predictCommand constructs the 'predict' subcommand that runs one image
// through a stored model without going through a serving endpoint. The model
// is addressed either by a source URI or by name and version.
func predictCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Runs OCR on an image using a logged or registered model",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			uri, _ := cmd.Flags().GetString("uri")
			modelName, _ := cmd.Flags().GetString("model")
			version, _ := cmd.Flags().GetInt("version")
			imagePath, _ := cmd.Flags().GetString("image")

			switch {
			case uri != "" && modelName != "":
				logger.Fatal(ctx, "either --uri or --model can be given, not both")
			case uri == "" && modelName == "":
				logger.Fatal(ctx, "one of --uri or --model is required")
			case modelName != "":
				name, err := domain.ParseModelName(modelName)
				if err != nil {
					logger.Fatal(ctx, "invalid model name", zap.Error(err))
				}
				uri = model.ModelsURI(name, version)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			artifacts, err := artifact.NewStore(cfg.Artifacts.Root)
			if err != nil {
				logger.Fatal(ctx, "could not open artifact store", zap.Error(err))
			}
			registrySvc := registry.New(strg, artifacts, registry.NewOptions(cfg))

			dir, err := registrySvc.ResolveURI(ctx, uri)
			if err != nil {
				logger.Fatal(ctx, "could not resolve model uri", zap.Error(err))
			}
			predictor, err := model.Load(dir, model.EngineOptions{DataPath: cfg.OCR.DataPath})
			if err != nil {
				logger.Fatal(ctx, "could not load model", zap.Error(err))
			}

			raw, err := os.ReadFile(imagePath) //nolint: gosec
			if err != nil {
				logger.Fatal(ctx, "could not read image", zap.Error(err))
			}

			prediction, err := predictor.Predict(ctx, model.Table{
				Columns: []string{model.ImageColumn},
				Rows:    [][]any{{raw}},
			})
			if err != nil {
				logger.Fatal(ctx, "prediction failed", zap.Error(err))
			}

			out, err := json.Marshal(prediction)
			if err != nil {
				logger.Fatal(ctx, "could not marshal prediction", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("uri", "", "Model source URI (runs:/... or models:/...)")
	cmd.Flags().String("model", "", "Full model name, catalog.schema.name")
	cmd.Flags().Int("version", 1, "Model version, used together with --model")
	cmd.Flags().String("image", "", "Path to the image file")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
