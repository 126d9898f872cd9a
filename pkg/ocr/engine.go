// Package ocr defines the interface and data types used to run optical
// character recognition over raster images. Implementations wrap a concrete
// OCR engine (e.g. tesseract); the rest of the application only depends on
// the Engine interface.
package ocr

import (
	"context"
	"image"
	"strconv"
)

// Request describes a single recognition call. The image must be a fully
// encoded raster image (JPEG, PNG, ...); decoding is left to the engine.
type Request struct {
	// Image holds the encoded image bytes to recognize.
	Image []byte
	// Languages lists the recognition languages in priority order, using
	// engine-native codes (e.g. "eng", "deu"). Empty means engine default.
	Languages []string
	// Variables carries engine-specific tuning variables, applied verbatim.
	Variables map[string]string
}

// Option mutates a Request during construction with NewRequest.
type Option func(*Request)

// WithLanguages sets the recognition languages in priority order.
func WithLanguages(langs ...string) Option {
	return func(r *Request) {
		r.Languages = langs
	}
}

// WithVariable sets an engine-specific tuning variable.
func WithVariable(key, value string) Option {
	return func(r *Request) {
		if r.Variables == nil {
			r.Variables = make(map[string]string)
		}
		r.Variables[key] = value
	}
}

// WithPageSegMode sets the page segmentation mode (tesseract numbering).
func WithPageSegMode(mode int) Option {
	return WithVariable("tessedit_pageseg_mode", strconv.Itoa(mode))
}

// WithWhitelist restricts recognition to the given character set.
func WithWhitelist(chars string) Option {
	return WithVariable("tessedit_char_whitelist", chars)
}

// NewRequest builds a Request for the given image bytes and options.
func NewRequest(img []byte, opts ...Option) Request {
	r := Request{Image: img}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// Word is a single recognized word with its confidence and pixel bounding box.
type Word struct {
	// Text is the recognized word text.
	Text string `json:"text"`
	// Confidence is the engine's confidence for this word in the 0-100 range.
	Confidence float64 `json:"confidence"`
	// Box is the word's bounding rectangle in image pixel coordinates.
	Box image.Rectangle `json:"box"`
}

// Result is the outcome of a recognition call.
type Result struct {
	// Text is the full recognized text with the engine's own line breaks.
	Text string `json:"text"`
	// Words lists individual recognized words when the engine provides them.
	Words []Word `json:"words,omitempty"`
}

// Status reports engine availability details gathered by Probe.
type Status struct {
	// Version is the engine's self-reported version string.
	Version string `json:"version"`
	// Languages lists the language packs installed for the engine.
	Languages []string `json:"languages,omitempty"`
}

// Engine runs optical character recognition over encoded images.
//
//go:generate mockgen -package mockocr -source=engine.go -destination=mock/mockocr.go *
type Engine interface {
	// Name returns a stable identifier of the engine implementation.
	Name() string
	// Recognize extracts text from the image described by the request.
	Recognize(ctx context.Context, req Request) (*Result, error)
	// Probe verifies the engine is usable and reports version and language
	// availability. It is called during endpoint provisioning.
	Probe(ctx context.Context) (*Status, error)
}
