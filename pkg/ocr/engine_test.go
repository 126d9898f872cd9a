package ocr_test

import (
	"context"
	"testing"

	"ocrflow/pkg/ocr"
)

func TestNewRequestOptions(t *testing.T) {
	img := []byte{0xFF, 0xD8}

	req := ocr.NewRequest(img,
		ocr.WithLanguages("eng", "deu"),
		ocr.WithVariable("tessedit_char_whitelist", "0123456789"),
		ocr.WithVariable("user_defined_dpi", "300"),
	)

	if string(req.Image) != string(img) {
		t.Fatalf("image bytes not preserved")
	}
	if len(req.Languages) != 2 || req.Languages[0] != "eng" || req.Languages[1] != "deu" {
		t.Fatalf("unexpected languages: %v", req.Languages)
	}
	if req.Variables["tessedit_char_whitelist"] != "0123456789" {
		t.Fatalf("unexpected variables: %v", req.Variables)
	}
	if req.Variables["user_defined_dpi"] != "300" {
		t.Fatalf("unexpected variables: %v", req.Variables)
	}
}

func TestNoopEngine(t *testing.T) {
	e := ocr.NewNoop()

	if e.Name() != "noop" {
		t.Fatalf("unexpected name %q", e.Name())
	}

	res, err := e.Recognize(context.Background(), ocr.NewRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" || len(res.Words) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}

	status, err := e.Probe(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Version == "" {
		t.Fatalf("expected version to be set")
	}
}
