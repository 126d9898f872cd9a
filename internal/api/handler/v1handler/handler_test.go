package v1handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/api/handler/v1handler"
	mockregistry "ocrflow/internal/registry/mock"
	mockruns "ocrflow/internal/runs/mock"
	mockserving "ocrflow/internal/serving/mock"
	"ocrflow/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.EnvDev)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testServer bundles a v1 router with mocked services.
type testServer struct {
	runs     *mockruns.MockRuns
	registry *mockregistry.MockRegistry
	serving  *mockserving.MockServing
	engine   *gin.Engine
}

// newTestServer registers the v1 routes on a fresh engine. A nil sec handler
// means authentication is disabled.
func newTestServer(t *testing.T, sec *v1handler.SecHandler) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		runs:     mockruns.NewMockRuns(ctrl),
		registry: mockregistry.NewMockRegistry(ctrl),
		serving:  mockserving.NewMockServing(ctrl),
	}

	if sec == nil {
		var err error
		sec, err = v1handler.NewSecHandler(nil)
		require.NoError(t, err)
	}

	engine := gin.New()
	v1handler.New(v1handler.Deps{
		Runs:     ts.runs,
		Registry: ts.registry,
		Serving:  ts.serving,
	}).Register(engine.Group("/v1"), sec)
	ts.engine = engine

	return ts
}

// do serves one request against the test router, marshaling body to JSON.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)

	return w
}

// decode unmarshals a JSON response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// errorBody returns the error message of a JSON error response.
func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Error)

	return body.Error
}

func TestRegister_RejectsUnknownBody(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/models", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "invalid request body")
}
