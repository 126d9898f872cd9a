package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

func TestParseSourceURI_Runs(t *testing.T) {
	t.Parallel()

	runID := domain.RunID(uuid.New())

	src, err := model.ParseSourceURI(model.RunsURI(runID, "ocr-model"))
	require.NoError(t, err)
	require.Equal(t, model.SchemeRuns, src.Scheme)
	require.Equal(t, runID, src.RunID)
	require.Equal(t, "ocr-model", src.Path)

	// nested artifact paths and the double-slash spelling
	src, err = model.ParseSourceURI("runs://" + uuid.UUID(runID).String() + "/nested/ocr-model")
	require.NoError(t, err)
	require.Equal(t, "nested/ocr-model", src.Path)
}

func TestParseSourceURI_Models(t *testing.T) {
	t.Parallel()

	src, err := model.ParseSourceURI("models:/prod.billing.receipts/3")
	require.NoError(t, err)
	require.Equal(t, model.SchemeModels, src.Scheme)
	require.Equal(t, domain.ModelName{Catalog: "prod", Schema: "billing", Name: "receipts"}, src.Name)
	require.Equal(t, 3, src.Version)

	require.Equal(t, "models:/prod.billing.receipts/3", model.ModelsURI(src.Name, src.Version))
}

func TestParseSourceURI_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  string
	}{
		{name: "no scheme", uri: "just-a-path"},
		{name: "unknown scheme", uri: "s3://bucket/key"},
		{name: "runs without path", uri: "runs:/" + uuid.NewString()},
		{name: "runs with bad id", uri: "runs:/not-a-uuid/model"},
		{name: "runs with traversal", uri: "runs:/" + uuid.NewString() + "/../escape"},
		{name: "runs with empty segment", uri: "runs:/" + uuid.NewString() + "/a//b"},
		{name: "models without version", uri: "models:/prod.billing.receipts"},
		{name: "models with bad version", uri: "models:/prod.billing.receipts/zero"},
		{name: "models with zero version", uri: "models:/prod.billing.receipts/0"},
		{name: "models with bad name", uri: "models:/receipts/1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := model.ParseSourceURI(tc.uri)
			require.Error(t, err)
			require.Equal(t, serrors.ErrInvalid, serrors.KindOf(err))
		})
	}
}
