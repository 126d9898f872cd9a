package model

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"ocrflow/pkg/ocr"
	"ocrflow/pkg/serrors"
)

// Column names of the OCR model contract: one binary input column, one string
// output column.
const (
	ImageColumn = "image"
	TextColumn  = "text"
)

// Table is a single-table dataframe in split orientation: named columns and
// row-major data.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"data"`
}

// Column returns the index of a named column.
func (t Table) Column(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}

	return 0, false
}

// Prediction is the successful output of a predict call.
type Prediction struct {
	Text string `json:"text"`
}

// Record returns the prediction as an output record keyed by column name.
func (p Prediction) Record() map[string]any {
	return map[string]any{TextColumn: p.Text}
}

// Predictor binds a loaded model config to a concrete OCR engine.
type Predictor struct {
	config Config
	sig    Signature
	engine ocr.Engine
}

// NewPredictor wires a config and signature to an engine. Use Load to build
// one from a model directory.
func NewPredictor(config Config, sig Signature, engine ocr.Engine) *Predictor {
	return &Predictor{config: config, sig: sig, engine: engine}
}

// Load reads a model directory and binds it to a runnable predictor.
func Load(dir string, opts EngineOptions) (*Predictor, error) {
	config, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	sig, err := LoadSignature(dir)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(config, opts)
	if err != nil {
		return nil, err
	}

	return NewPredictor(config, sig, engine), nil
}

// Config returns the model config the predictor was loaded with.
func (p *Predictor) Config() Config { return p.config }

// Signature returns the schema the model was logged with.
func (p *Predictor) Signature() Signature { return p.sig }

// Engine exposes the underlying OCR engine, mainly for health probes.
func (p *Predictor) Engine() ocr.Engine { return p.engine }

// Predict runs the OCR pipeline over a single-row input table: extract the
// image cell, normalize it to JPEG, recognize, and return the trimmed text.
// Malformed input yields INVALID_REQUEST; an engine failure yields
// UPSTREAM_FAILED.
func (p *Predictor) Predict(ctx context.Context, input Table) (*Prediction, error) {
	idx, ok := input.Column(ImageColumn)
	if !ok {
		return nil, serrors.With(serrors.ErrInvalid, "input has no %q column", ImageColumn)
	}

	switch n := len(input.Rows); {
	case n == 0:
		return nil, serrors.With(serrors.ErrInvalid, "input has no rows")
	case n > 1:
		return nil, serrors.With(serrors.ErrInvalid, "expected exactly one input row, got %d", n)
	}

	row := input.Rows[0]
	if idx >= len(row) {
		return nil, serrors.With(serrors.ErrInvalid, "input row has no value in the %q column", ImageColumn)
	}

	raw, err := imageCell(row[idx])
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "bad %q cell", ImageColumn)
	}

	normalized, _, err := NormalizeJPEG(raw, p.config.JPEGQuality)
	if err != nil {
		return nil, err
	}

	res, err := p.engine.Recognize(ctx, ocr.Request{
		Image:     normalized,
		Languages: p.config.Languages,
		Variables: p.config.Variables,
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "ocr engine failed")
	}

	return &Prediction{Text: strings.TrimSpace(res.Text)}, nil
}

// imageCell coerces a table cell into raw image bytes. JSON clients send
// binary columns base64-encoded, so strings are tried as base64 first and
// fall back to their literal bytes.
func imageCell(v any) ([]byte, error) {
	switch cell := v.(type) {
	case []byte:
		return cell, nil
	case string:
		if decoded, err := base64.StdEncoding.DecodeString(cell); err == nil {
			return decoded, nil
		}

		return []byte(cell), nil
	default:
		return nil, fmt.Errorf("unsupported cell type %T", v)
	}
}
