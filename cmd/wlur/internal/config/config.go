// Package config provides the configuration file for the wlur CLI.
//
// The file is YAML and lives under os.UserConfigDir()/wlur/:
//
//	~/Library/Application Support/wlur/config.yaml   (macOS)
//	~/.config/wlur/config.yaml                       (Linux)
//	%AppData%/wlur/config.yaml                       (Windows)
//
// WLUR_CONFIG_DIR overrides the directory. Every field is optional; command
// line flags take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/wlur/wlur"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "wlur"

	// DefaultConfigFile is the configuration file name.
	DefaultConfigFile = "config.yaml"

	// EnvConfigDir overrides the configuration directory.
	EnvConfigDir = "WLUR_CONFIG_DIR"

	// SliderMaxRadius is the largest radius the original slider offered.
	// It is a hint for front ends; the engine accepts radii up to
	// wlur.MaxRadius.
	SliderMaxRadius = 25
)

// Config holds CLI defaults.
type Config struct {
	// Radius is the default blur radius in pixels.
	Radius float64 `yaml:"radius"`

	// Workers is the number of goroutines per blur pass (0 = GOMAXPROCS).
	Workers int `yaml:"workers,omitempty"`

	// Format is the default output format when the output path has no
	// extension (png, jpeg, bmp, tiff).
	Format string `yaml:"format,omitempty"`

	// JPEGQuality is the JPEG encoder quality, 1-100. Zero selects the
	// encoder default.
	JPEGQuality int `yaml:"jpeg_quality,omitempty"`

	// OutputDir is where outputs go when no output path is given.
	OutputDir string `yaml:"output_dir,omitempty"`

	// KernelCacheSize is the number of kernels kept between blurs.
	KernelCacheSize int `yaml:"kernel_cache_size,omitempty"`

	// path is the file this config was loaded from or will be saved to.
	path string
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Format:      "png",
		JPEGQuality: 95,
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, DefaultConfigFile), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, DefaultConfigFile), nil
}

// Load reads the configuration from path, or from DefaultPath if path is
// empty. A missing default file yields the defaults; a missing explicit
// file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Radius < 0 || c.Radius > wlur.MaxRadius {
		return fmt.Errorf("radius must be in 0..%d, got %v", wlur.MaxRadius, c.Radius)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be 0 (default) or 1..100, got %d", c.JPEGQuality)
	}
	if c.KernelCacheSize < 0 {
		return fmt.Errorf("kernel_cache_size must be >= 0, got %d", c.KernelCacheSize)
	}
	return nil
}

// Path returns the file this configuration belongs to.
func (c *Config) Path() string {
	return c.path
}

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
