package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "marquee"

type Config struct {
	DataFile      string `koanf:"data_file"`      // TOML poster file; empty means built-in posters
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", or "none"
	LogFile       string `koanf:"log_file"`       // empty means $XDG_STATE_HOME/marquee/marquee.log
	LogLevel      string `koanf:"log_level"`      // "debug", "info", "warn", "error"

	Spring SpringConfig `koanf:"spring"`
	Deck   DeckConfig   `koanf:"deck"`
	Images ImagesConfig `koanf:"images"`
}

// SpringConfig tunes the active index animation.
type SpringConfig struct {
	FPS              int     `koanf:"fps"`               // frame rate (default: 60)
	Frequency        float64 `koanf:"frequency"`         // angular frequency (default: 15.17)
	Damping          float64 `koanf:"damping"`           // damping ratio, <1 overshoots (default: 0.725)
	RestDisplacement float64 `koanf:"rest_displacement"` // (default: 0.001)
	RestSpeed        float64 `koanf:"rest_speed"`        // (default: 0.001)
}

// DeckConfig controls how transforms map onto terminal cells.
type DeckConfig struct {
	PixelsPerCell  float64 `koanf:"pixels_per_cell"`  // layout pixels per terminal column (default: 4)
	CardWidthRatio float64 `koanf:"card_width_ratio"` // card width relative to the deck (default: 0.8)
}

// ImagesConfig controls poster image loading.
type ImagesConfig struct {
	TimeoutSeconds int    `koanf:"timeout_seconds"` // fetch timeout (default: 10)
	CacheDir       string `koanf:"cache_dir"`       // empty means the XDG cache directory
}

// Load reads configuration from the standard locations, then from
// explicitPath when it is not empty. Later files override earlier ones.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if explicitPath != "" {
		path := expandPath(explicitPath)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{
		ImageProtocol: "auto",
		LogLevel:      "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataFile = expandPath(cfg.DataFile)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Images.CacheDir = expandPath(cfg.Images.CacheDir)
	cfg.ImageProtocol = strings.ToLower(strings.TrimSpace(cfg.ImageProtocol))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/marquee/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns the log file location, creating its directory.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
			return "", err
		}
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// CacheDir returns the base directory for the poster image cache.
func (c *Config) CacheDir() string {
	if c.Images.CacheDir != "" {
		return c.Images.CacheDir
	}
	return xdg.CacheHome
}

// ImagesEnabled reports whether poster images should be loaded at all.
func (c *Config) ImagesEnabled() bool {
	return c.ImageProtocol != "none"
}

// GetSpringConfig returns the spring configuration with defaults applied.
func (c *Config) GetSpringConfig() SpringConfig {
	cfg := c.Spring

	if cfg.FPS <= 0 || cfg.FPS > 240 {
		cfg.FPS = 60
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = 15.17
	}
	if cfg.Damping <= 0 {
		cfg.Damping = 0.725
	}
	if cfg.RestDisplacement <= 0 {
		cfg.RestDisplacement = 0.001
	}
	if cfg.RestSpeed <= 0 {
		cfg.RestSpeed = 0.001
	}

	return cfg
}

// GetDeckConfig returns the deck configuration with defaults applied.
func (c *Config) GetDeckConfig() DeckConfig {
	cfg := c.Deck

	if cfg.PixelsPerCell <= 0 {
		cfg.PixelsPerCell = 4
	}
	if cfg.CardWidthRatio <= 0 || cfg.CardWidthRatio > 1 {
		cfg.CardWidthRatio = 0.8
	}

	return cfg
}

// GetImagesConfig returns the image configuration with defaults applied.
func (c *Config) GetImagesConfig() ImagesConfig {
	cfg := c.Images

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	cfg.CacheDir = c.CacheDir()

	return cfg
}
