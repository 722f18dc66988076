package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"sphere-stl/internal/preview"
	"sphere-stl/internal/sphere"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"level": 4, "format": "ASCII", "preview": ".webp", "preview_size": 128, "yaw": 45}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})

	if *cfg.Level != 4 || cfg.Format != "ascii" || cfg.Preview != "webp" || cfg.PreviewSize != 128 || *cfg.Yaw != 45 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !slices.Equal(cfg.Levels, []int{4}) {
		t.Errorf("Levels = %v, want [4]", cfg.Levels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if *cfg.Level != 3 || cfg.Format != "binary" || cfg.OutputDir != "out" {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.PreviewSize != 256 || cfg.Supersample != 2 || cfg.Workers != runtime.NumCPU() {
		t.Errorf("preview/worker defaults: %+v", cfg)
	}
	if cfg.Preview != "" {
		t.Errorf("Preview = %q, want none", cfg.Preview)
	}
	if cam, def := cfg.Camera(), preview.DefaultOptions(); cam.Yaw != def.Yaw || cam.Pitch != def.Pitch {
		t.Errorf("camera = %+v, want default angles", cam)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Level: intPtr(2), Format: "ascii", OutputDir: "a", Workers: 1, Preview: "tga"}
	cfg.Resolve(Flags{Level: intPtr(5), Levels: []int{1, 2}, Format: "binary", OutputDir: "b", Workers: 7, Preview: "none"})

	if *cfg.Level != 5 || cfg.Format != "binary" || cfg.OutputDir != "b" || cfg.Workers != 7 {
		t.Errorf("override: %+v", cfg)
	}
	if !slices.Equal(cfg.Levels, []int{1, 2}) {
		t.Errorf("Levels = %v", cfg.Levels)
	}
	if cfg.Preview != "" {
		t.Errorf("Preview = %q, want disabled", cfg.Preview)
	}
}

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Format: "ascii", Levels: []int{1, 2}}},
		{name: "level_ok", cfg: Config{Format: "ascii", Level: intPtr(1), Levels: []int{1}}},
		{name: "level_zero", cfg: Config{Format: "ascii", Level: intPtr(0), Levels: []int{1}}, wantErr: true},
		{name: "level_negative", cfg: Config{Format: "ascii", Level: intPtr(-1), Levels: []int{1}}, wantErr: true},
		{name: "level_too_deep", cfg: Config{Format: "ascii", Levels: []int{sphere.MaxLevel + 1}}, wantErr: true},
		{name: "bad_format", cfg: Config{Format: "obj", Levels: []int{1}}, wantErr: true},
		{name: "bad_preview", cfg: Config{Format: "binary", Preview: "png", Levels: []int{1}}, wantErr: true},
		{name: "bad_level", cfg: Config{Format: "binary", Levels: []int{0}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevels(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{input: "3", want: []int{3}},
		{input: "1,2,5", want: []int{1, 2, 5}},
		{input: "1-4", want: []int{1, 2, 3, 4}},
		{input: "1-2, 6", want: []int{1, 2, 6}},
		{input: "", want: nil},
		{input: "x", wantErr: true},
		{input: "4-2", wantErr: true},
		{input: "1-y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevels(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("ParseLevels(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExplicitBadLevelIsKept(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		flags Flags
	}{
		{name: "flag_negative", flags: Flags{Level: intPtr(-1)}},
		{name: "flag_zero", flags: Flags{Level: intPtr(0)}},
		{name: "file_negative", file: `{"level": -1}`},
		{name: "file_zero", file: `{"level": 0}`},
		{name: "flag_too_deep", flags: Flags{Level: intPtr(40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if tt.file != "" {
				path := filepath.Join(t.TempDir(), "config.json")
				if err := os.WriteFile(path, []byte(tt.file), 0644); err != nil {
					t.Fatal(err)
				}
				var err error
				if cfg, err = Load(path); err != nil {
					t.Fatal(err)
				}
			}
			cfg.Resolve(tt.flags)
			if *cfg.Level == 3 {
				t.Errorf("explicit level replaced by the default")
			}
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted level %d", *cfg.Level)
			}
		})
	}
}

func TestCameraStraightOn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"yaw": 0, "pitch": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})

	cam := cfg.Camera()
	if cam.Yaw != 0 || cam.Pitch != 0 {
		t.Errorf("camera = (%v, %v), want (0, 0)", cam.Yaw, cam.Pitch)
	}
	if cam.Size != 256 || cam.Supersample != 2 {
		t.Errorf("camera size = %d x%d", cam.Size, cam.Supersample)
	}
}
