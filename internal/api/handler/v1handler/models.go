package v1handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ocrflow/internal/registry"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// CreateModelRequest is the payload for registering a model.
type CreateModelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateModel registers a new model under its three-part name.
func (h *Handler) CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	name, err := domain.ParseModelName(req.Name)
	if err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid model name"))

		return
	}

	m, err := h.deps.Registry.CreateModel(c.Request.Context(), name, req.Description)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, DomainModelToV1(m))
}

// GetModel returns a registered model by its three-part name.
func (h *Handler) GetModel(c *gin.Context) {
	name, err := modelNameParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	m, err := h.deps.Registry.GetModel(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainModelToV1(m))
}

// ListModels returns a paginated list of registered models, optionally
// filtered by catalog and schema.
func (h *Handler) ListModels(c *gin.Context) {
	limit, err := limitQuery(c)
	if err != nil {
		respondError(c, err)

		return
	}

	models, nextCursor, err := h.deps.Registry.ListModels(c.Request.Context(), registry.ListModelsParams{
		Catalog: c.Query("catalog"),
		Schema:  c.Query("schema"),
		Cursor:  c.Query("cursor"),
		Limit:   limit,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	out := ModelList{
		Items:      make([]Model, 0, len(models)),
		NextCursor: nextCursor,
	}
	for i := range models {
		out.Items = append(out.Items, *DomainModelToV1(&models[i]))
	}

	c.JSON(http.StatusOK, out)
}

// CreateVersionRequest is the payload for registering a model version from a
// source artifact.
type CreateVersionRequest struct {
	Source      string `json:"source"`
	Description string `json:"description"`
}

// CreateVersion registers a new version of a model from a source artifact URI.
func (h *Handler) CreateVersion(c *gin.Context) {
	name, err := modelNameParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	v, err := h.deps.Registry.CreateVersion(c.Request.Context(), name, req.Source, req.Description)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, DomainVersionToV1(v))
}

// GetVersion returns one version of a model.
func (h *Handler) GetVersion(c *gin.Context) {
	name, err := modelNameParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	version, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid version number"))

		return
	}

	v, err := h.deps.Registry.GetVersion(c.Request.Context(), name, version)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainVersionToV1(v))
}

// ListVersions returns all versions of a model, newest first.
func (h *Handler) ListVersions(c *gin.Context) {
	name, err := modelNameParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	versions, err := h.deps.Registry.ListVersions(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)

		return
	}

	out := ModelVersionList{Items: make([]ModelVersion, 0, len(versions))}
	for i := range versions {
		out.Items = append(out.Items, *DomainVersionToV1(&versions[i]))
	}

	c.JSON(http.StatusOK, out)
}
