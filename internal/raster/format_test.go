package raster

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"whitted-renderer/internal/colour"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"ppm", FormatPPM},
		{".png", FormatPNG},
		{"WEBP", FormatWebP},
		{".tga", FormatTGA},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if _, err := FormatFromPath("out.jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func testCanvas() *Canvas {
	c := NewCanvas(4, 3, colour.New(0.2, 0.4, 0.6))
	c.WritePixel(0, 0, colour.White)
	c.WritePixel(3, 2, colour.Red)
	return c
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testCanvas().ToNRGBA()
	for _, f := range []Format{FormatPPM, FormatPNG, FormatWebP, FormatTGA} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatal(err)
			}
			img, err := Decode(&buf, f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
				t.Fatalf("Expected 4x3, got %v", img.Bounds())
			}
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					wr, wg, wb, _ := src.At(x, y).RGBA()
					b := img.Bounds()
					gr, gg, gb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
					if wr>>8 != gr>>8 || wg>>8 != gg>>8 || wb>>8 != gb>>8 {
						t.Errorf("(%d,%d): Expected %d,%d,%d got %d,%d,%d",
							x, y, wr>>8, wg>>8, wb>>8, gr>>8, gg>>8, gb>>8)
					}
				}
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	src := testCanvas().ToNRGBA()
	for _, name := range []string{"a.ppm", "sub/b.png", "c.webp", "d.tga"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if img.Bounds().Dx() != 4 {
			t.Errorf("%s: Expected width 4, got %d", name, img.Bounds().Dx())
		}
	}

	if err := Save(filepath.Join(dir, "x.bmp"), src); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
