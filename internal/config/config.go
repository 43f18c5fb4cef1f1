package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"whitted-renderer/internal/raster"
	"whitted-renderer/internal/world"
)

// Config holds the scenes to render and the render settings.
type Config struct {
	// Paths
	BaseDir   string   `json:"base_dir"`
	Scenes    []string `json:"scenes"`
	OutputDir string   `json:"output_dir"`

	// Render settings
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	MaxDepth    int    `json:"max_depth"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. Relative paths in the
// file are resolved against the file's directory unless base_dir is set.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	cfg.Scenes = rebaseScenes(cfg.BaseDir, cfg.Scenes)

	return cfg, nil
}

// rebaseScenes joins dir onto relative scene files. Built-in names are left
// alone. Scenes given on the command line never pass through here, so they
// stay relative to the working directory.
func rebaseScenes(dir string, scenes []string) []string {
	out := make([]string, len(scenes))
	for i, s := range scenes {
		if strings.HasSuffix(strings.ToLower(s), ".json") && !filepath.IsAbs(s) {
			s = filepath.Join(dir, s)
		}
		out[i] = s
	}
	return out
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scenes      []string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	MaxDepth    int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if len(c.Scenes) == 0 {
		c.Scenes = []string{"default"}
	}
	if c.Format == "" {
		c.Format = "png"
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = world.MaxDepth
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if _, err := raster.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if (c.Width > 0) != (c.Height > 0) {
		return fmt.Errorf("config: width and height must be set together (got %dx%d)", c.Width, c.Height)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d too large (max 8)", c.Supersample)
	}
	return nil
}
