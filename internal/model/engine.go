package model

import (
	"ocrflow/pkg/ocr"
	"ocrflow/pkg/ocr/tesseract"
	"ocrflow/pkg/serrors"
)

// Engine names a Config may select.
const (
	EngineTesseract = "tesseract"
	EngineNoop      = "noop"
)

// EngineOptions carry deployment-level engine settings that are not part of
// the model artifact, so one artifact can run unchanged on hosts with
// different tesseract installations.
type EngineOptions struct {
	// DataPath overrides the tesseract tessdata directory. Empty means the
	// system default.
	DataPath string
}

// NewEngine builds the OCR engine a config selects.
func NewEngine(config Config, opts EngineOptions) (ocr.Engine, error) {
	switch config.Engine {
	case EngineTesseract:
		return tesseract.New(tesseract.Options{
			Languages: config.Languages,
			DataPath:  opts.DataPath,
			Variables: config.Variables,
		}), nil
	case EngineNoop:
		return ocr.NewNoop(), nil
	default:
		return nil, serrors.With(serrors.ErrInvalid, "unknown ocr engine %q", config.Engine)
	}
}
