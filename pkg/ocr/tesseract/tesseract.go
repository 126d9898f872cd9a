// Package tesseract implements the ocr.Engine interface on top of the
// tesseract OCR engine through the gosseract CGO binding. A fresh gosseract
// client is created per call because the underlying API is not safe for
// concurrent use on a shared client.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"ocrflow/pkg/ocr"
)

// Options configure the tesseract engine.
type Options struct {
	// Languages are the default recognition languages applied when a request
	// does not set its own.
	Languages []string
	// DataPath overrides the tessdata directory (TESSDATA_PREFIX). Empty
	// means the system default.
	DataPath string
	// Variables are default engine variables applied to every call before
	// any request-level variables.
	Variables map[string]string
	// CollectWords enables per-word bounding box extraction. It costs an
	// extra pass over the recognition result.
	CollectWords bool
}

// Engine is the tesseract-backed ocr.Engine implementation.
type Engine struct {
	opts Options
}

var _ ocr.Engine = (*Engine)(nil)

// New creates a tesseract engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return "tesseract" }

// Recognize runs tesseract over the request image and returns the extracted
// text, optionally with word-level boxes.
func (e *Engine) Recognize(ctx context.Context, req ocr.Request) (*ocr.Result, error) {
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recognition canceled: %w", err)
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if e.opts.DataPath != "" {
		if err := client.SetTessdataPrefix(e.opts.DataPath); err != nil {
			return nil, fmt.Errorf("could not set tessdata prefix: %w", err)
		}
	}

	langs := req.Languages
	if len(langs) == 0 {
		langs = e.opts.Languages
	}
	if len(langs) > 0 {
		if err := client.SetLanguage(langs...); err != nil {
			return nil, fmt.Errorf("could not set languages: %w", err)
		}
	}

	for k, v := range e.opts.Variables {
		if err := client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return nil, fmt.Errorf("could not set variable %q: %w", k, err)
		}
	}
	for k, v := range req.Variables {
		if err := client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return nil, fmt.Errorf("could not set variable %q: %w", k, err)
		}
	}

	if err := client.SetImageFromBytes(req.Image); err != nil {
		return nil, fmt.Errorf("could not set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("could not extract text: %w", err)
	}

	res := &ocr.Result{Text: text}

	if e.opts.CollectWords {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("recognition canceled: %w", err)
		}

		boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
		if err != nil {
			return nil, fmt.Errorf("could not extract word boxes: %w", err)
		}
		res.Words = make([]ocr.Word, 0, len(boxes))
		for _, b := range boxes {
			res.Words = append(res.Words, ocr.Word{
				Text:       b.Word,
				Confidence: b.Confidence,
				Box:        b.Box,
			})
		}
	}

	return res, nil
}

// Probe reports the linked tesseract version and the installed language
// packs. It fails when the tesseract runtime is unusable.
func (e *Engine) Probe(_ context.Context) (*ocr.Status, error) {
	version := gosseract.Version()
	if version == "" {
		return nil, fmt.Errorf("tesseract runtime not available")
	}

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("could not list available languages: %w", err)
	}

	installed := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		installed[l] = struct{}{}
	}
	for _, l := range e.opts.Languages {
		if _, ok := installed[l]; !ok {
			return nil, fmt.Errorf("language %q is not installed (have %v)", l, langs)
		}
	}

	return &ocr.Status{Version: version, Languages: langs}, nil
}
