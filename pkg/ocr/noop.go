package ocr

import "context"

// noop is an Engine that recognizes nothing. It is useful for wiring tests
// and for environments where no OCR binary is installed.
type noop struct{}

// NewNoop returns an Engine that always succeeds with an empty result.
func NewNoop() Engine { return noop{} }

func (noop) Name() string { return "noop" }

func (noop) Recognize(_ context.Context, _ Request) (*Result, error) {
	return &Result{}, nil
}

func (noop) Probe(_ context.Context) (*Status, error) {
	return &Status{Version: "noop"}, nil
}
