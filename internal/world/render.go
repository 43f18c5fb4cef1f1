package world

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/raster"
)

// RenderOptions controls a render pass. The zero value renders with one
// worker per CPU and MaxDepth bounces.
type RenderOptions struct {
	Workers int
	Depth   int

	// Progress, if set, is called after each finished row with the number of
	// rows done so far. It is called from worker goroutines.
	Progress func(done, total int)
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Depth <= 0 {
		o.Depth = MaxDepth
	}
	return o
}

// Render traces every pixel of cam with default options.
func (w *World) Render(cam *Camera) *raster.Canvas {
	img, _ := w.RenderContext(context.Background(), cam, RenderOptions{})
	return img
}

// RenderContext traces every pixel of cam. Rows are shared out to a fixed
// pool of workers; the output does not depend on the worker count. If ctx is
// cancelled no further rows are started and ctx.Err() is returned along with
// the partially filled canvas.
func (w *World) RenderContext(ctx context.Context, cam *Camera, opts RenderOptions) (*raster.Canvas, error) {
	opts = opts.withDefaults()
	img := raster.NewCanvas(cam.HSize, cam.VSize, colour.Black)
	total := cam.VSize
	var processed atomic.Int64

	rowChan := make(chan int, opts.Workers*2)
	var wg sync.WaitGroup

	for n := 0; n < opts.Workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				// Each worker owns whole rows, so writes never overlap.
				for x := 0; x < cam.HSize; x++ {
					img.WritePixel(x, y, w.ColourAt(cam.RayForPixel(x, y), opts.Depth))
				}
				done := processed.Add(1)
				if opts.Progress != nil {
					opts.Progress(int(done), total)
				}
			}
		}()
	}

	var err error
send:
	for y := 0; y < total; y++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case rowChan <- y:
		}
	}
	close(rowChan)
	wg.Wait()

	return img, err
}
