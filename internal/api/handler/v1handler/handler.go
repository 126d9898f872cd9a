// Package v1handler implements the v1 HTTP API on top of the runs, registry
// and serving services. Handlers translate between wire types and domain
// types and map semantic errors to HTTP status codes.
package v1handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ocrflow/internal/registry"
	"ocrflow/internal/runs"
	"ocrflow/internal/serving"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// DefaultLimit is the page size used when a list request carries no limit.
const DefaultLimit = 20

// Deps bundles the services the v1 handlers depend on.
type Deps struct {
	Runs     runs.Runs
	Registry registry.Registry
	Serving  serving.Serving
}

// Handler carries the v1 route implementations.
type Handler struct {
	deps Deps
}

// New creates a v1 Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches all v1 routes to the given router group. Read routes are
// open; mutating and invocation routes go through the security handler.
func (h *Handler) Register(r *gin.RouterGroup, sec *SecHandler) {
	auth := sec.Middleware()

	models := r.Group("/models")
	{
		models.GET("", h.ListModels)
		models.GET("/:name", h.GetModel)
		models.GET("/:name/versions", h.ListVersions)
		models.GET("/:name/versions/:version", h.GetVersion)
		models.POST("", auth, h.CreateModel)
		models.POST("/:name/versions", auth, h.CreateVersion)
	}

	runGroup := r.Group("/runs")
	{
		runGroup.GET("/:id", h.GetRun)
		runGroup.POST("", auth, h.CreateRun)
		runGroup.POST("/:id/models", auth, h.LogModel)
		runGroup.PATCH("/:id", auth, h.UpdateRun)
	}

	endpoints := r.Group("/endpoints")
	{
		endpoints.GET("", h.ListEndpoints)
		endpoints.GET("/:name", h.GetEndpoint)
		endpoints.POST("", auth, h.CreateEndpoint)
		endpoints.PUT("/:name/config", auth, h.UpdateEndpointConfig)
		endpoints.DELETE("/:name", auth, h.DeleteEndpoint)
		endpoints.POST("/:name/invocations", auth, h.Invoke)
	}
}

// modelNameParam parses the dotted model name path parameter.
func modelNameParam(c *gin.Context) (domain.ModelName, error) {
	name, err := domain.ParseModelName(c.Param("name"))
	if err != nil {
		return domain.ModelName{}, serrors.Wrap(serrors.ErrInvalid, err, "invalid model name")
	}

	return name, nil
}

// runIDParam parses the run ID path parameter.
func runIDParam(c *gin.Context) (domain.RunID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.RunID{}, serrors.Wrap(serrors.ErrInvalid, err, "invalid run id")
	}

	return domain.RunID(id), nil
}

// limitQuery parses the limit query parameter, defaulting to DefaultLimit.
func limitQuery(c *gin.Context) (uint, error) {
	raw := c.Query("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, serrors.With(serrors.ErrInvalid, "invalid limit %q", raw)
	}

	return uint(n), nil
}
