package postprocess

import (
	"fmt"
	"image"
)

// DiffStats summarises the per-channel difference of two images on a 0..255 scale.
type DiffStats struct {
	Max      uint8
	Mean     float64
	Differ   int // pixels with any channel differing
	Pixels   int
	MaxPoint image.Point
}

// Diff compares the RGB channels of two images of equal size. Alpha is ignored.
func Diff(a, b image.Image) (DiffStats, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return DiffStats{}, fmt.Errorf("postprocess: size mismatch %dx%d vs %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	var s DiffStats
	var sum float64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			differs := false
			for _, d := range [3]uint8{absDiff8(ar, br), absDiff8(ag, bg), absDiff8(abl, bbl)} {
				sum += float64(d)
				if d > 0 {
					differs = true
				}
				if d > s.Max {
					s.Max = d
					s.MaxPoint = image.Pt(x, y)
				}
			}
			if differs {
				s.Differ++
			}
		}
	}
	s.Pixels = ab.Dx() * ab.Dy()
	if s.Pixels > 0 {
		s.Mean = sum / float64(s.Pixels*3)
	}
	return s, nil
}

func absDiff8(a, b uint32) uint8 {
	a, b = a>>8, b>>8
	if a > b {
		return uint8(a - b)
	}
	return uint8(b - a)
}
