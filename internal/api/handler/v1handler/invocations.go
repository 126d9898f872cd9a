package v1handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ocrflow/internal/model"
	"ocrflow/pkg/serrors"
)

// InvokeRequest carries the inference input in one of two dataframe
// orientations. Exactly one of the two fields must be present.
type InvokeRequest struct {
	DataframeSplit   *model.Table     `json:"dataframe_split"`
	DataframeRecords []map[string]any `json:"dataframe_records"`
}

// Table normalizes the request payload into split orientation.
func (r InvokeRequest) Table() (model.Table, error) {
	switch {
	case r.DataframeSplit != nil && r.DataframeRecords != nil:
		return model.Table{}, serrors.With(serrors.ErrInvalid,
			"request must carry either dataframe_split or dataframe_records, not both")
	case r.DataframeSplit != nil:
		return *r.DataframeSplit, nil
	case r.DataframeRecords != nil:
		return recordsToTable(r.DataframeRecords), nil
	default:
		return model.Table{}, serrors.With(serrors.ErrInvalid,
			"request must carry dataframe_split or dataframe_records")
	}
}

// recordsToTable converts record-oriented rows into split orientation. The
// columns are the sorted union of all record keys, missing cells are nil.
func recordsToTable(records []map[string]any) model.Table {
	seen := make(map[string]struct{})
	columns := make([]string, 0)
	for _, rec := range records {
		for k := range rec {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}

	return model.Table{Columns: columns, Rows: rows}
}

// Invoke runs one inference request against a READY endpoint and returns the
// recognized text.
func (h *Handler) Invoke(c *gin.Context) {
	var req InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrInvalid, err, "invalid request body"))

		return
	}

	input, err := req.Table()
	if err != nil {
		respondError(c, err)

		return
	}

	prediction, err := h.deps.Serving.Invoke(c.Request.Context(), c.Param("name"), input)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, prediction)
}
