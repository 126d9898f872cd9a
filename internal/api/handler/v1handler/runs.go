package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ocrflow/internal/model"
	"ocrflow/internal/runs"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// CreateRunRequest is the payload for starting a tracking run.
type CreateRunRequest struct {
	Name string `json:"name"`
}

// CreateRun starts a new tracking run for the authenticated user.
func (h *Handler) CreateRun(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	run, err := h.deps.Runs.Create(c.Request.Context(), GetUserID(c), req.Name)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, DomainRunToV1(run))
}

// GetRun returns a tracking run by ID.
func (h *Handler) GetRun(c *gin.Context) {
	id, err := runIDParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	run, err := h.deps.Runs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainRunToV1(run))
}

// LogModelRequest is the payload for logging an OCR model under a run.
type LogModelRequest struct {
	// ArtifactPath is the run-relative directory the model is written to.
	ArtifactPath string `json:"artifactPath"`
	// Engine selects the OCR engine of the logged model.
	Engine string `json:"engine"`
	// Languages are the recognition languages passed to the engine.
	Languages []string `json:"languages"`
	// JPEGQuality tunes input normalization, 0 means the default.
	JPEGQuality int `json:"jpegQuality"`
	// Variables are engine-specific tuning variables.
	Variables map[string]string `json:"variables"`
	// SampleInput optionally provides a one-row example used to infer the
	// model signature.
	SampleInput *model.Table `json:"sampleInput"`
}

// LogModelResponse returns the runs URI of the logged model.
type LogModelResponse struct {
	ModelURI string `json:"modelUri"`
}

// LogModel writes an OCR model artifact under a run and returns its URI.
func (h *Handler) LogModel(c *gin.Context) {
	id, err := runIDParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	var req LogModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	uri, err := h.deps.Runs.LogModel(c.Request.Context(), id, runs.LogModelParams{
		ArtifactPath: req.ArtifactPath,
		Config: model.Config{
			Engine:      req.Engine,
			Languages:   req.Languages,
			JPEGQuality: req.JPEGQuality,
			Variables:   req.Variables,
		},
		SampleInput: req.SampleInput,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, LogModelResponse{ModelURI: uri})
}

// UpdateRunRequest is the payload for closing a run.
type UpdateRunRequest struct {
	Status string `json:"status"`
}

// UpdateRun transitions a run to a terminal status.
func (h *Handler) UpdateRun(c *gin.Context) {
	id, err := runIDParam(c)
	if err != nil {
		respondError(c, err)

		return
	}

	var req UpdateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	run, err := h.deps.Runs.Finish(c.Request.Context(), id, domain.RunStatus(req.Status))
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainRunToV1(run))
}
