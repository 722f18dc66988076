package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sphere-stl/internal/batch"
	"sphere-stl/internal/config"
	"sphere-stl/internal/grid"
	"sphere-stl/internal/preview"
	"sphere-stl/internal/shapes"
	"sphere-stl/internal/sphere"
	"sphere-stl/internal/stl"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	shape := flag.String("shape", "sphere", "Mesh to export: sphere, cube or grid")
	level := flag.Int("level", 3, "Sphere recursion level, 1-10 (overrides config)")
	format := flag.String("format", "", "STL variant: ascii or binary (default: binary)")
	outPath := flag.String("out", "", "Output STL path (default: <output_dir>/<shape>.stl)")
	previewExt := flag.String("preview", "", "Also write a preview image: webp, tga or none")
	gridPath := flag.String("grid", "", "Grid file for -shape grid")
	iso := flag.Float64("iso", 0, "Iso level for -shape grid")
	cubeSize := flag.Float64("size", 3, "Edge length for -shape cube")
	verify := flag.Bool("verify", false, "Re-read a binary output and check its facet count")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		Format:  *format,
		Preview: *previewExt,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "level" {
			flags.Level = level
		}
	})
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var faces []stl.Face
	switch *shape {
	case "sphere":
		m, err := sphere.CreateUnitSphere(*cfg.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		faces = m.Faces()
		fmt.Printf("Sphere level %d: %d triangles, %d vertices\n", *cfg.Level, len(m.Triangles), len(m.Vertices))
	case "cube":
		faces = shapes.Cube(*cubeSize)
		fmt.Printf("Cube: %d quad faces\n", len(faces))
	case "grid":
		if *gridPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -shape grid needs -grid <file>")
			os.Exit(1)
		}
		g, err := grid.Load(*gridPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		faces = g.BoundaryFaces(*iso)
		d, b, ext := g.Dims(), g.Bounds(), g.Extent()
		fmt.Printf("Grid %dx%dx%d, iso %g: %d quad faces\n", d[0], d[1], d[2], *iso, len(faces))
		fmt.Printf("  bounds %v .. %v, extent %v\n", b.Min, b.Max, ext)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", *shape)
		os.Exit(1)
	}

	path := *outPath
	if path == "" {
		path = filepath.Join(cfg.OutputDir, *shape+".stl")
	}
	if err := batch.WriteFile(path, cfg.Format, faces); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("STL (%s): %s\n", cfg.Format, path)

	if *verify {
		if err := verifyBinary(path, faces); err != nil {
			fmt.Fprintf(os.Stderr, "Verify failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Verify: OK")
	}

	if cfg.Preview != "" {
		img, err := preview.Render(faces, cfg.Camera())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview: %v\n", err)
			return
		}
		imgPath := path[:len(path)-len(filepath.Ext(path))] + "." + cfg.Preview
		if err := preview.Save(imgPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview write failed: %v\n", err)
			return
		}
		fmt.Printf("Preview: %s\n", imgPath)
	}
}

func verifyBinary(path string, faces []stl.Face) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(data, []byte("solid ")) {
		return fmt.Errorf("%s is ASCII; -verify reads binary STL only", path)
	}
	_, tris, err := stl.ReadBinary(bytes.NewReader(data))
	if err != nil {
		return err
	}

	want := 0
	for _, f := range faces {
		split, err := stl.Triangulate(f)
		if err != nil {
			return err
		}
		want += len(split)
	}
	if len(tris) != want {
		return fmt.Errorf("read %d facets, wrote %d", len(tris), want)
	}
	return nil
}
