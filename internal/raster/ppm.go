package raster

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

// ppmMaxLine is the longest line a plain PPM may contain.
const ppmMaxLine = 70

// WritePPM writes img as a plain-text (P3) PPM. No line exceeds 70
// characters and every pixel row ends with a newline.
func WritePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy())

	line := make([]byte, 0, ppmMaxLine+1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			for _, v := range [3]uint32{r >> 8, g >> 8, bl >> 8} {
				s := strconv.Itoa(int(v))
				if len(line) > 0 && len(line)+1+len(s) > ppmMaxLine {
					line = append(line, '\n')
					bw.Write(line)
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, s...)
			}
		}
		line = append(line, '\n')
		bw.Write(line)
		line = line[:0]
	}
	return bw.Flush()
}

// Limits on PPM headers read from disk.
const (
	ppmMaxSide   = 1 << 15
	ppmMaxPixels = 1 << 26
)

// ReadPPM decodes a plain (P3) or binary (P6) PPM with maxval up to 255.
// Header comments run from '#' to the end of the line.
func ReadPPM(r io.Reader) (*image.NRGBA, error) {
	sc := ppmScanner{br: bufio.NewReader(r)}
	magic, err := sc.token()
	if err != nil {
		return nil, fmt.Errorf("raster: ppm header: %w", err)
	}
	var hdr [3]int
	for i := range hdr {
		if hdr[i], err = sc.number(); err != nil {
			return nil, fmt.Errorf("raster: ppm header: %w", err)
		}
	}
	w, h, maxval := hdr[0], hdr[1], hdr[2]
	if (magic != "P3" && magic != "P6") || w <= 0 || h <= 0 || maxval <= 0 || maxval > 255 {
		return nil, fmt.Errorf("raster: unsupported ppm %s %dx%d maxval %d", magic, w, h, maxval)
	}
	if w > ppmMaxSide || h > ppmMaxSide || w*h > ppmMaxPixels {
		return nil, fmt.Errorf("raster: ppm %dx%d exceeds %d pixels", w, h, ppmMaxPixels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	scale := func(v int) uint8 { return uint8((v*255 + maxval/2) / maxval) }

	if magic == "P6" {
		// The whitespace byte after maxval was consumed with its token.
		buf := make([]byte, 3)
		for i := 0; i < w*h; i++ {
			if _, err := io.ReadFull(sc.br, buf); err != nil {
				return nil, fmt.Errorf("raster: ppm data: %w", err)
			}
			img.Pix[i*4] = scale(int(buf[0]))
			img.Pix[i*4+1] = scale(int(buf[1]))
			img.Pix[i*4+2] = scale(int(buf[2]))
			img.Pix[i*4+3] = 255
		}
		return img, nil
	}

	for i := 0; i < w*h; i++ {
		for c := 0; c < 3; c++ {
			v, err := sc.number()
			if err != nil {
				return nil, fmt.Errorf("raster: ppm pixel %d: %w", i, err)
			}
			if v < 0 || v > maxval {
				return nil, fmt.Errorf("raster: ppm pixel %d: sample %d out of range", i, v)
			}
			img.Pix[i*4+c] = scale(v)
		}
		img.Pix[i*4+3] = 255
	}
	return img, nil
}

type ppmScanner struct {
	br *bufio.Reader
}

// token skips whitespace and comments, then reads up to and including the
// next whitespace byte.
func (s *ppmScanner) token() (string, error) {
	var tok []byte
	for {
		c, err := s.br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := s.br.ReadString('\n'); err != nil {
				return "", io.ErrUnexpectedEOF
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			if len(tok) >= 16 {
				return "", fmt.Errorf("token %q... too long", tok)
			}
			tok = append(tok, c)
		}
	}
}

func (s *ppmScanner) number() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}
