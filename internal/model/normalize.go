package model

import (
	"bytes"
	"image"

	// codecs understood by Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"ocrflow/pkg/serrors"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality is the re-encode quality used when the model config does
// not set one.
const DefaultJPEGQuality = 95

// formatJPEG is the format name image.Decode reports for JPEG input.
const formatJPEG = "jpeg"

// Decode parses encoded image bytes and reports the detected source format
// (jpeg, png, gif, bmp, tiff or webp). Undecodable input yields an
// INVALID_REQUEST error.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrInvalid, err, "could not decode image")
	}

	return img, format, nil
}

// NormalizeJPEG brings arbitrary image bytes into JPEG encoding, returning the
// detected source format. JPEG input passes through byte-identical; everything
// else is re-encoded at the given quality (DefaultJPEGQuality when quality is
// outside 1-100).
func NormalizeJPEG(data []byte, quality int) ([]byte, string, error) {
	img, format, err := Decode(data)
	if err != nil {
		return nil, "", err
	}
	if format == formatJPEG {
		return data, format, nil
	}

	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, "", serrors.Wrap(serrors.ErrInternal, err, "could not re-encode image as jpeg")
	}

	return buf.Bytes(), format, nil
}
