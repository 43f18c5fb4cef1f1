package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"whitted-renderer/internal/postprocess"
	"whitted-renderer/internal/raster"
	"whitted-renderer/internal/scene"
	"whitted-renderer/internal/world"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      raster.Format
	Width       int // 0 keeps each scene's own camera size
	Height      int
	Supersample int
	MaxDepth    int
	Workers     int // row workers per scene
	Jobs        int // scenes rendered at once

	// Out receives progress lines; nil means stdout.
	Out io.Writer
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name     string
	Source   string
	Image    string
	Width    int
	Height   int
	Duration time.Duration
	Success  bool
	Error    string
}

type job struct {
	source string
	scene  *scene.Scene
	image  string
	err    error
}

// Run renders every scene (built-in name or JSON path) using a worker pool.
// A failing scene does not stop the others. Cancelling ctx abandons the
// remaining rows and scenes.
func Run(ctx context.Context, cfg Config, sources []string) []Result {
	cfg = withDefaults(cfg)
	p := message.NewPrinter(language.English)

	// Resolve first so the progress total is known and every scene owns
	// its output file before any worker starts writing.
	jobs := make([]job, len(sources))
	taken := make(map[string]bool)
	totalRows := 0
	for i, src := range sources {
		s, err := prepare(cfg, src)
		jobs[i] = job{source: src, scene: s, err: err}
		if err == nil {
			jobs[i].image = outputName(taken, s.Name, cfg.Format)
			totalRows += s.Camera.VSize
		}
	}

	results := make([]Result, len(jobs))
	var rows atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				n := rows.Load()
				if n > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(n) / elapsed
					p.Fprintf(cfg.Out, "  [%d/%d rows] %.1f rows/sec\n", n, totalRows, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Jobs*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(ctx, cfg, jobs[idx], &rows)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func withDefaults(cfg Config) Config {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = world.MaxDepth
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return cfg
}

// prepare resolves a scene and sizes its camera for the supersampled render.
func prepare(cfg Config, source string) (*scene.Scene, error) {
	s, err := scene.Resolve(source)
	if err != nil {
		return nil, err
	}
	w, h := s.Camera.HSize, s.Camera.VSize
	if cfg.Width > 0 && cfg.Height > 0 {
		w, h = cfg.Width, cfg.Height
	}
	if err := s.Resize(w*cfg.Supersample, h*cfg.Supersample); err != nil {
		return nil, err
	}
	return s, nil
}

// outputName returns name.ext, or name-2.ext, name-3.ext and so on when an
// earlier scene in the batch already claimed it.
func outputName(taken map[string]bool, name string, f raster.Format) string {
	file := name + "." + f.String()
	for n := 2; taken[file]; n++ {
		file = fmt.Sprintf("%s-%d.%s", name, n, f)
	}
	taken[file] = true
	return file
}

func processJob(ctx context.Context, cfg Config, j job, rows *atomic.Int64) Result {
	if j.err != nil {
		return Result{Name: j.source, Source: j.source, Error: j.err.Error()}
	}
	s := j.scene
	res := Result{Name: s.Name, Source: j.source}

	start := time.Now()
	canvas, err := s.World.RenderContext(ctx, s.Camera, world.RenderOptions{
		Workers:  cfg.Workers,
		Depth:    cfg.MaxDepth,
		Progress: func(int, int) { rows.Add(1) },
	})
	if err != nil {
		res.Error = fmt.Sprintf("render: %v", err)
		return res
	}

	img := canvas.ToNRGBA()

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, canvas.Width/cfg.Supersample, canvas.Height/cfg.Supersample)
	}
	res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()

	res.Image = j.image
	if err := raster.Save(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Duration = time.Since(start)
	res.Success = true
	return res
}

// Summary counts successful and failed results.
func Summary(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
