package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"sphere-stl/internal/preview"
	"sphere-stl/internal/sphere"
)

// Config holds output paths and mesh/preview settings.
type Config struct {
	// Mesh
	Level  *int   `json:"level"` // nil until set by the file, a flag or Resolve
	Levels []int  `json:"levels"`
	Format string `json:"format"` // "ascii" or "binary"

	// Paths
	OutputDir string `json:"output_dir"`
	Preview   string `json:"preview"` // preview image extension: "webp", "tga" or "" for none

	// Preview settings
	PreviewSize int      `json:"preview_size"`
	Supersample int      `json:"supersample"`
	Yaw         *float64 `json:"yaw"`
	Pitch       *float64 `json:"pitch"`

	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// A nil Level means the flag was not given.
type Flags struct {
	Level     *int
	Levels    []int
	Format    string
	OutputDir string
	Preview   string
	Workers   int
}

// Resolve applies CLI overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Level != nil {
		level := *flags.Level
		c.Level = &level
	}
	if len(flags.Levels) > 0 {
		c.Levels = flags.Levels
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	c.Format = strings.ToLower(c.Format)
	c.Preview = strings.TrimPrefix(strings.ToLower(c.Preview), ".")
	if c.Preview == "none" {
		c.Preview = ""
	}

	// An explicit level is kept as given, even when out of range; Validate reports it.
	if c.Level == nil {
		level := 3
		c.Level = &level
	}
	if len(c.Levels) == 0 {
		c.Levels = []int{*c.Level}
	}
	if c.Format == "" {
		c.Format = "binary"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	cam := preview.DefaultOptions()
	if c.Yaw == nil {
		c.Yaw = &cam.Yaw
	}
	if c.Pitch == nil {
		c.Pitch = &cam.Pitch
	}
}

// Camera returns the preview options for the resolved settings.
func (c *Config) Camera() preview.Options {
	opts := preview.DefaultOptions()
	opts.Size = c.PreviewSize
	opts.Supersample = c.Supersample
	if c.Yaw != nil {
		opts.Yaw = *c.Yaw
	}
	if c.Pitch != nil {
		opts.Pitch = *c.Pitch
	}
	return opts
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Format != "ascii" && c.Format != "binary" {
		return fmt.Errorf("config: unknown format %q (want ascii or binary)", c.Format)
	}
	if c.Preview != "" && c.Preview != "webp" && c.Preview != "tga" {
		return fmt.Errorf("config: unknown preview format %q (want webp, tga or none)", c.Preview)
	}
	if c.Level != nil {
		if err := checkLevel(*c.Level); err != nil {
			return err
		}
	}
	for _, l := range c.Levels {
		if err := checkLevel(l); err != nil {
			return err
		}
	}
	return nil
}

func checkLevel(l int) error {
	if l < 1 || l > sphere.MaxLevel {
		return fmt.Errorf("config: recursion level %d out of range 1..%d", l, sphere.MaxLevel)
	}
	return nil
}

// ParseLevels parses "3", "1,2,5" or "1-4" into a level list.
func ParseLevels(s string) ([]int, error) {
	var levels []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			var a, b int
			if _, err := fmt.Sscanf(lo+" "+hi, "%d %d", &a, &b); err != nil {
				return nil, fmt.Errorf("config: bad level range %q", part)
			}
			if a > b {
				return nil, fmt.Errorf("config: empty level range %q", part)
			}
			for l := a; l <= b; l++ {
				levels = append(levels, l)
			}
			continue
		}
		var l int
		if _, err := fmt.Sscanf(part, "%d", &l); err != nil {
			return nil, fmt.Errorf("config: bad level %q", part)
		}
		levels = append(levels, l)
	}
	return levels, nil
}
