package v1handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/api/handler/v1handler"
	"ocrflow/internal/model"
	"ocrflow/internal/runs"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

func TestCreateRun(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	ts.runs.EXPECT().
		Create(gomock.Any(), domain.UserID{}, "receipts-v2").
		Return(&domain.Run{
			ID:           id,
			Name:         "receipts-v2",
			Status:       domain.RunStatusRunning,
			ArtifactRoot: "/data/artifacts/runs/" + uuid.UUID(id).String(),
		}, nil)

	w := ts.do(t, http.MethodPost, "/v1/runs", v1handler.CreateRunRequest{Name: "receipts-v2"})
	require.Equal(t, http.StatusCreated, w.Code)

	var got v1handler.Run
	decode(t, w, &got)
	require.Equal(t, uuid.UUID(id), got.ID)
	require.Equal(t, string(domain.RunStatusRunning), got.Status)
	require.NotEmpty(t, got.ArtifactRoot)
	require.Empty(t, got.UserID)
}

func TestGetRun(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	ts.runs.EXPECT().
		Get(gomock.Any(), id).
		Return(&domain.Run{ID: id, Status: domain.RunStatusRunning}, nil)

	w := ts.do(t, http.MethodGet, "/v1/runs/"+uuid.UUID(id).String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetRun_InvalidID(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/v1/runs/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "invalid run id")
}

func TestLogModel(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	uri := "runs:/" + uuid.UUID(id).String() + "/ocr-model"
	ts.runs.EXPECT().
		LogModel(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RunID, params runs.LogModelParams) (string, error) {
			require.Equal(t, "ocr-model", params.ArtifactPath)
			require.Equal(t, model.EngineNoop, params.Config.Engine)
			require.Equal(t, []string{"eng", "deu"}, params.Config.Languages)
			require.Equal(t, 85, params.Config.JPEGQuality)
			require.NotNil(t, params.SampleInput)
			require.Equal(t, []string{model.ImageColumn}, params.SampleInput.Columns)

			return uri, nil
		})

	w := ts.do(t, http.MethodPost, "/v1/runs/"+uuid.UUID(id).String()+"/models", v1handler.LogModelRequest{
		ArtifactPath: "ocr-model",
		Engine:       model.EngineNoop,
		Languages:    []string{"eng", "deu"},
		JPEGQuality:  85,
		SampleInput: &model.Table{
			Columns: []string{model.ImageColumn},
			Rows:    [][]any{{"aGVsbG8="}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got v1handler.LogModelResponse
	decode(t, w, &got)
	require.Equal(t, uri, got.ModelURI)
}

func TestLogModel_RunClosed(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	ts.runs.EXPECT().
		LogModel(gomock.Any(), id, gomock.Any()).
		Return("", serrors.With(serrors.ErrConflict, "run is FINISHED, artifacts can only be logged to a RUNNING run"))

	w := ts.do(t, http.MethodPost, "/v1/runs/"+uuid.UUID(id).String()+"/models", v1handler.LogModelRequest{
		ArtifactPath: "ocr-model",
		Engine:       model.EngineNoop,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateRun(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	ts.runs.EXPECT().
		Finish(gomock.Any(), id, domain.RunStatusFinished).
		Return(&domain.Run{ID: id, Status: domain.RunStatusFinished}, nil)

	w := ts.do(t, http.MethodPatch, "/v1/runs/"+uuid.UUID(id).String(),
		v1handler.UpdateRunRequest{Status: "FINISHED"})
	require.Equal(t, http.StatusOK, w.Code)

	var got v1handler.Run
	decode(t, w, &got)
	require.Equal(t, string(domain.RunStatusFinished), got.Status)
}

func TestUpdateRun_BadStatus(t *testing.T) {
	ts := newTestServer(t, nil)

	id := domain.RunID(uuid.New())
	ts.runs.EXPECT().
		Finish(gomock.Any(), id, domain.RunStatus("PAUSED")).
		Return(nil, serrors.With(serrors.ErrInvalid, "runs can only be finished as FINISHED or FAILED, not \"PAUSED\""))

	w := ts.do(t, http.MethodPatch, "/v1/runs/"+uuid.UUID(id).String(),
		v1handler.UpdateRunRequest{Status: "PAUSED"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
