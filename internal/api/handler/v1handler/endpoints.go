package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// CreateEndpointRequest is the payload for creating a serving endpoint.
type CreateEndpointRequest struct {
	Name   string         `json:"name"`
	Config EndpointConfig `json:"config"`
}

// CreateEndpoint creates a serving endpoint and schedules its provisioning.
func (h *Handler) CreateEndpoint(c *gin.Context) {
	var req CreateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	config, err := V1EndpointConfigToDomain(req.Config)
	if err != nil {
		respondError(c, err)

		return
	}

	endpoint, err := h.deps.Serving.CreateEndpoint(c.Request.Context(), GetUserID(c), req.Name, config)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, DomainEndpointToV1(endpoint))
}

// GetEndpoint returns a serving endpoint by name.
func (h *Handler) GetEndpoint(c *gin.Context) {
	endpoint, err := h.deps.Serving.GetEndpoint(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainEndpointToV1(endpoint))
}

// ListEndpoints returns a paginated list of serving endpoints, optionally
// filtered by state.
func (h *Handler) ListEndpoints(c *gin.Context) {
	limit, err := limitQuery(c)
	if err != nil {
		respondError(c, err)

		return
	}

	endpoints, nextCursor, err := h.deps.Serving.ListEndpoints(c.Request.Context(),
		domain.EndpointState(c.Query("state")),
		c.Query("cursor"),
		limit)
	if err != nil {
		respondError(c, err)

		return
	}

	out := EndpointList{
		Items:      make([]Endpoint, 0, len(endpoints)),
		NextCursor: nextCursor,
	}
	for i := range endpoints {
		out.Items = append(out.Items, *DomainEndpointToV1(&endpoints[i]))
	}

	c.JSON(http.StatusOK, out)
}

// UpdateEndpointConfigRequest is the payload for replacing an endpoint's
// serving configuration.
type UpdateEndpointConfigRequest struct {
	Config EndpointConfig `json:"config"`
}

// UpdateEndpointConfig replaces the serving configuration of an endpoint and
// schedules a rollout of the new config.
func (h *Handler) UpdateEndpointConfig(c *gin.Context) {
	var req UpdateEndpointConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	config, err := V1EndpointConfigToDomain(req.Config)
	if err != nil {
		respondError(c, err)

		return
	}

	endpoint, err := h.deps.Serving.UpdateEndpointConfig(c.Request.Context(), c.Param("name"), config)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainEndpointToV1(endpoint))
}

// DeleteEndpoint deletes a serving endpoint.
func (h *Handler) DeleteEndpoint(c *gin.Context) {
	if err := h.deps.Serving.DeleteEndpoint(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
