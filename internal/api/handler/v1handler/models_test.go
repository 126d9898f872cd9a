package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/api/handler/v1handler"
	"ocrflow/internal/registry"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

var receiptsName = domain.ModelName{Catalog: "prod", Schema: "billing", Name: "receipts"}

func sampleModel() *domain.Model {
	return &domain.Model{
		ID:          domain.ModelID(uuid.New()),
		Name:        receiptsName,
		Description: "receipt scans",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestCreateModel(t *testing.T) {
	ts := newTestServer(t, nil)

	m := sampleModel()
	ts.registry.EXPECT().
		CreateModel(gomock.Any(), receiptsName, "receipt scans").
		Return(m, nil)

	w := ts.do(t, http.MethodPost, "/v1/models", v1handler.CreateModelRequest{
		Name:        "prod.billing.receipts",
		Description: "receipt scans",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got v1handler.Model
	decode(t, w, &got)
	require.Equal(t, uuid.UUID(m.ID), got.ID)
	require.Equal(t, "prod.billing.receipts", got.Name)
	require.Equal(t, "receipt scans", got.Description)
}

func TestCreateModel_InvalidName(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodPost, "/v1/models", v1handler.CreateModelRequest{Name: "not-three-parts"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "invalid model name")
}

func TestCreateModel_Duplicate(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		CreateModel(gomock.Any(), receiptsName, "").
		Return(nil, serrors.With(serrors.ErrConflict, "model already exists"))

	w := ts.do(t, http.MethodPost, "/v1/models", v1handler.CreateModelRequest{Name: "prod.billing.receipts"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "model already exists", errorBody(t, w))
}

func TestGetModel(t *testing.T) {
	ts := newTestServer(t, nil)

	m := sampleModel()
	ts.registry.EXPECT().GetModel(gomock.Any(), receiptsName).Return(m, nil)

	w := ts.do(t, http.MethodGet, "/v1/models/prod.billing.receipts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got v1handler.Model
	decode(t, w, &got)
	require.Equal(t, "prod.billing.receipts", got.Name)
}

func TestGetModel_NotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		GetModel(gomock.Any(), receiptsName).
		Return(nil, serrors.With(serrors.ErrNotFound, "model not found"))

	w := ts.do(t, http.MethodGet, "/v1/models/prod.billing.receipts", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "model not found", errorBody(t, w))
}

func TestListModels(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		ListModels(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params registry.ListModelsParams) ([]domain.Model, string, error) {
			require.Equal(t, "prod", params.Catalog)
			require.Equal(t, "billing", params.Schema)
			require.Equal(t, uint(2), params.Limit)

			return []domain.Model{*sampleModel(), *sampleModel()}, "2024-05-01T10:00:00Z", nil
		})

	w := ts.do(t, http.MethodGet, "/v1/models?catalog=prod&schema=billing&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got v1handler.ModelList
	decode(t, w, &got)
	require.Len(t, got.Items, 2)
	require.Equal(t, "2024-05-01T10:00:00Z", got.NextCursor)
}

func TestListModels_DefaultLimit(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		ListModels(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params registry.ListModelsParams) ([]domain.Model, string, error) {
			require.Equal(t, uint(v1handler.DefaultLimit), params.Limit)

			return nil, "", nil
		})

	w := ts.do(t, http.MethodGet, "/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListModels_InvalidLimit(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/v1/models?limit=nope", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVersion(t *testing.T) {
	ts := newTestServer(t, nil)

	runID := domain.RunID(uuid.New())
	sourceURI := "runs:/" + uuid.UUID(runID).String() + "/ocr-model"
	ts.registry.EXPECT().
		CreateVersion(gomock.Any(), receiptsName, sourceURI, "first cut").
		Return(&domain.ModelVersion{
			ID:        uuid.New(),
			Name:      receiptsName,
			Version:   1,
			SourceURI: sourceURI,
			RunID:     runID,
			Status:    domain.VersionStatusReady,
		}, nil)

	w := ts.do(t, http.MethodPost, "/v1/models/prod.billing.receipts/versions", v1handler.CreateVersionRequest{
		Source:      sourceURI,
		Description: "first cut",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got v1handler.ModelVersion
	decode(t, w, &got)
	require.Equal(t, 1, got.Version)
	require.Equal(t, sourceURI, got.SourceURI)
	require.Equal(t, uuid.UUID(runID).String(), got.RunID)
	require.Equal(t, string(domain.VersionStatusReady), got.Status)
}

func TestGetVersion(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		GetVersion(gomock.Any(), receiptsName, 3).
		Return(&domain.ModelVersion{Name: receiptsName, Version: 3, Status: domain.VersionStatusReady}, nil)

	w := ts.do(t, http.MethodGet, "/v1/models/prod.billing.receipts/versions/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got v1handler.ModelVersion
	decode(t, w, &got)
	require.Equal(t, 3, got.Version)
	require.Empty(t, got.RunID)
}

func TestGetVersion_InvalidNumber(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/v1/models/prod.billing.receipts/versions/latest", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "invalid version number")
}

func TestListVersions(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.registry.EXPECT().
		ListVersions(gomock.Any(), receiptsName).
		Return([]domain.ModelVersion{
			{Name: receiptsName, Version: 2},
			{Name: receiptsName, Version: 1},
		}, nil)

	w := ts.do(t, http.MethodGet, "/v1/models/prod.billing.receipts/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got v1handler.ModelVersionList
	decode(t, w, &got)
	require.Len(t, got.Items, 2)
	require.Equal(t, 2, got.Items[0].Version)
}
