package v1handler_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/api/handler/v1handler"
	"ocrflow/internal/model"
	"ocrflow/pkg/serrors"
)

func TestInvoke_SplitOrientation(t *testing.T) {
	ts := newTestServer(t, nil)

	cell := base64.StdEncoding.EncodeToString([]byte("image-bytes"))
	ts.serving.EXPECT().
		Invoke(gomock.Any(), "receipts", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input model.Table) (*model.Prediction, error) {
			require.Equal(t, []string{model.ImageColumn}, input.Columns)
			require.Len(t, input.Rows, 1)
			require.Equal(t, cell, input.Rows[0][0])

			return &model.Prediction{Text: "TOTAL 12.50"}, nil
		})

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeSplit: &model.Table{
			Columns: []string{model.ImageColumn},
			Rows:    [][]any{{cell}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Prediction
	decode(t, w, &got)
	require.Equal(t, "TOTAL 12.50", got.Text)
}

func TestInvoke_RecordOrientation(t *testing.T) {
	ts := newTestServer(t, nil)

	cell := base64.StdEncoding.EncodeToString([]byte("image-bytes"))
	ts.serving.EXPECT().
		Invoke(gomock.Any(), "receipts", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input model.Table) (*model.Prediction, error) {
			require.Equal(t, []string{model.ImageColumn}, input.Columns)
			require.Equal(t, [][]any{{cell}}, input.Rows)

			return &model.Prediction{Text: "ok"}, nil
		})

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeRecords: []map[string]any{{model.ImageColumn: cell}},
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestInvoke_BothOrientations(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeSplit:   &model.Table{Columns: []string{model.ImageColumn}, Rows: [][]any{{"x"}}},
		DataframeRecords: []map[string]any{{model.ImageColumn: "x"}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "not both")
}

func TestInvoke_MissingInput(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoke_BadInputTable(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.serving.EXPECT().
		Invoke(gomock.Any(), "receipts", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInvalid, "input has no %q column", model.ImageColumn))

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeSplit: &model.Table{Columns: []string{"url"}, Rows: [][]any{{"https://example.com"}}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// failures carry an error field and never a text field
	var body map[string]any
	decode(t, w, &body)
	require.Contains(t, body["error"], "image")
	require.NotContains(t, body, "text")
}

func TestInvoke_NotReady(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.serving.EXPECT().
		Invoke(gomock.Any(), "receipts", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "endpoint is PENDING, not READY"))

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeRecords: []map[string]any{{model.ImageColumn: "aGk="}},
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, errorBody(t, w), "not READY")
}

func TestInvoke_EngineFailure(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.serving.EXPECT().
		Invoke(gomock.Any(), "receipts", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUpstream, "ocr engine failed"))

	w := ts.do(t, http.MethodPost, "/v1/endpoints/receipts/invocations", v1handler.InvokeRequest{
		DataframeRecords: []map[string]any{{model.ImageColumn: "aGk="}},
	})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "ocr engine failed", errorBody(t, w))
}

func TestInvoke_NotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.serving.EXPECT().
		Invoke(gomock.Any(), "missing", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "endpoint not found"))

	w := ts.do(t, http.MethodPost, "/v1/endpoints/missing/invocations", v1handler.InvokeRequest{
		DataframeRecords: []map[string]any{{model.ImageColumn: "aGk="}},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
