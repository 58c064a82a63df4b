// Package photo loads resume photos into data URIs and re-encodes them for
// print.
package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultJPEGQuality is the quality used when photos are prepared for export
const DefaultJPEGQuality = 98

// DefaultMaxSide bounds the longest side of an exported photo, in pixels
const DefaultMaxSide = 800

// MaxPixels bounds width*height of a photo accepted for decoding
const MaxPixels = 40_000_000

// Allowed file extensions, mapped to their MIME type
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Magic byte prefixes per MIME type
var magicBytes = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {[]byte("GIF87a"), []byte("GIF89a")},
	"image/webp": {[]byte("RIFF")},
}

// webpFourCC follows the RIFF chunk size in a WebP file
var webpFourCC = []byte("WEBP")

// Error represents a failure to load, decode or encode a photo
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("photo error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("photo error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LoadFile reads an image file and returns it as a data URI. Only jpg, jpeg,
// png, gif and webp files whose content matches the extension are accepted.
func LoadFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := allowedExtensions[ext]
	if !ok {
		return "", &Error{Message: fmt.Sprintf("unsupported photo extension %q", ext)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Message: "failed to read photo", Cause: err}
	}
	if !hasMagic(mime, data) {
		return "", &Error{Message: fmt.Sprintf("file content does not match %s", ext)}
	}
	return EncodeDataURI(mime, data), nil
}

func hasMagic(mime string, data []byte) bool {
	if mime == "image/webp" && (len(data) < 12 || !bytes.Equal(data[8:12], webpFourCC)) {
		return false
	}
	for _, prefix := range magicBytes[mime] {
		if bytes.HasPrefix(data, prefix) {
			return true
		}
	}
	return false
}

// EncodeDataURI builds a base64 data URI
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a base64 data URI into its MIME type and payload
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, &Error{Message: "not a data URI"}
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, &Error{Message: "data URI has no payload"}
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, &Error{Message: "data URI is not base64 encoded"}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, &Error{Message: "invalid base64 payload", Cause: err}
	}
	return mime, data, nil
}

// ToJPEG re-encodes a photo data URI as a JPEG data URI at the given quality.
// Images whose longest side exceeds maxSide are scaled down keeping the aspect
// ratio; maxSide <= 0 disables scaling. Transparent areas become white.
func ToJPEG(uri string, quality, maxSide int) (string, error) {
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	out, err := compress(data, quality, maxSide)
	if err != nil {
		return "", err
	}
	return EncodeDataURI("image/jpeg", out), nil
}

func compress(data []byte, quality, maxSide int) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Message: "failed to read image header", Cause: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, &Error{Message: fmt.Sprintf("%s image of %dx%d exceeds %d pixels", format, cfg.Width, cfg.Height, MaxPixels)}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to decode image (format: %s)", format), Cause: err}
	}

	bounds := img.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), maxSide)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, &Error{Message: "failed to encode image", Cause: err}
	}
	return buf.Bytes(), nil
}

func scaledSize(width, height, maxSide int) (int, int) {
	if maxSide <= 0 || (width <= maxSide && height <= maxSide) {
		return width, height
	}
	if width > height {
		return maxSide, max(1, int(float64(height)*float64(maxSide)/float64(width)))
	}
	return max(1, int(float64(width)*float64(maxSide)/float64(height))), maxSide
}
