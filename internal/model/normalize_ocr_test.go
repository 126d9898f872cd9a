package model_test

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"ocrflow/internal/model"
	"ocrflow/pkg/ocr"
	"ocrflow/pkg/ocr/tesseract"
)

// renderTextImage draws text with a bitmap font on a white background and
// upscales it so the glyphs are large enough for reliable recognition.
func renderTextImage(t *testing.T, text string) []byte {
	t.Helper()

	w := 7*len(text) + 40
	img := image.NewRGBA(image.Rect(0, 0, w, 40))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(20, 24),
	}
	d.DrawString(text)

	big := imaging.Resize(img, w*6, 0, imaging.NearestNeighbor)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, big))

	return buf.Bytes()
}

// TestNormalizeJPEG_KeepsRecognizedText checks that the JPEG conversion step
// does not change what the engine reads: OCR over the original PNG and over
// its JPEG normalization must extract the same text.
func TestNormalizeJPEG_KeepsRecognizedText(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract binary not installed")
	}

	src := renderTextImage(t, "INVOICE 1234")
	engine := tesseract.New(tesseract.Options{Languages: []string{"eng"}})

	fromPNG, err := engine.Recognize(context.Background(), ocr.NewRequest(src))
	require.NoError(t, err)
	require.Contains(t, strings.ToUpper(fromPNG.Text), "INVOICE")

	normalized, format, err := model.NormalizeJPEG(src, model.DefaultJPEGQuality)
	require.NoError(t, err)
	require.Equal(t, "png", format)

	fromJPEG, err := engine.Recognize(context.Background(), ocr.NewRequest(normalized))
	require.NoError(t, err)

	require.Equal(t, strings.TrimSpace(fromPNG.Text), strings.TrimSpace(fromJPEG.Text))
}
