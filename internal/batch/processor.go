package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-stl/internal/preview"
	"sphere-stl/internal/sphere"
	"sphere-stl/internal/stl"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // "ascii" or "binary"
	Preview   string // "webp", "tga" or "" for none
	Camera    preview.Options
	Workers   int
}

// Result holds the outcome of exporting one level.
type Result struct {
	Level     int
	Triangles int
	Vertices  int
	File      string
	Preview   string
	Success   bool
	Error     string
}

// Run exports every level using a worker pool. Results keep the order of levels.
func Run(cfg Config, levels []int) []Result {
	total := len(levels)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

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
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f levels/sec\n", p, total, rate)
				}
			}
		}
	}()

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processLevel(cfg, levels[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range levels {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processLevel(cfg Config, level int) Result {
	res := Result{Level: level}

	m, err := sphere.CreateUnitSphere(level)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Triangles = len(m.Triangles)
	res.Vertices = len(m.Vertices)
	faces := m.Faces()

	res.File = fmt.Sprintf("sphere_%d.stl", level)
	if err := WriteFile(filepath.Join(cfg.OutputDir, res.File), cfg.Format, faces); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Preview != "" {
		img, err := preview.Render(faces, cfg.Camera)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Preview = fmt.Sprintf("sphere_%d.%s", level, cfg.Preview)
		if err := preview.Save(filepath.Join(cfg.OutputDir, res.Preview), img); err != nil {
			res.Error = fmt.Sprintf("preview: %v", err)
			return res
		}
	}

	res.Success = true
	return res
}

// WriteFile writes faces to path as an ASCII or binary STL file.
// On failure no file is left behind.
func WriteFile(path, format string, faces []stl.Face) error {
	if format != "ascii" && format != "binary" {
		return fmt.Errorf("batch: unknown STL format %q", format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeSTL(f, format, faces); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func writeSTL(f *os.File, format string, faces []stl.Face) error {
	var w stl.MeshWriter
	var err error
	if format == "ascii" {
		w, err = stl.NewASCIIWriter(f)
	} else {
		w, err = stl.NewBinaryWriter(f)
	}
	if err != nil {
		return err
	}
	if err := w.AddFaces(faces); err != nil {
		return err
	}
	return w.Close()
}
