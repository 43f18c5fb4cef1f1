package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

// ErrUnknownFormat is returned for output names without a supported extension.
var ErrUnknownFormat = errors.New("raster: unknown image format")

// Format identifies an image file encoding.
type Format int

const (
	FormatPPM Format = iota
	FormatPNG
	FormatWebP
	FormatTGA
)

var formatExts = map[string]Format{
	".ppm":  FormatPPM,
	".png":  FormatPNG,
	".webp": FormatWebP,
	".tga":  FormatTGA,
}

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatTGA:
		return "tga"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a name such as "png" or ".png" to a Format.
func ParseFormat(name string) (Format, error) {
	ext := strings.ToLower(name)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, ok := formatExts[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPPM:
		err = WritePPM(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %v: %w", f, err)
	}
	return nil
}

// Save encodes img to path, choosing the format from its extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("raster: create dir %s: %w", dir, err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Load decodes an image file, choosing the decoder from its extension.
func Load(path string) (image.Image, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer in.Close()

	img, err := Decode(in, f)
	if err != nil {
		return nil, fmt.Errorf("raster: %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image in format f. TGA carries no magic number, so the
// format is always named explicitly rather than sniffed.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var img image.Image
	var err error
	switch f {
	case FormatPPM:
		img, err = ReadPPM(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	case FormatTGA:
		img, err = tga.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", f, err)
	}
	return img, nil
}
