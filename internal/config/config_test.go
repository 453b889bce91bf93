//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/posters",
			expected: filepath.Join(home, "posters"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/events/2020/posters.toml",
			expected: filepath.Join(home, "events", "2020", "posters.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/posters.toml",
			expected: "/srv/posters.toml",
		},
		{
			name:     "relative path unchanged",
			input:    "data/posters.toml",
			expected: "data/posters.toml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under a %q directory", paths[0], appName)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
data_file = "/srv/posters.toml"
icons = "nerd"
image_protocol = " Kitty "
log_level = "debug"

[spring]
fps = 30
damping = 1.0

[deck]
pixels_per_cell = 5

[images]
timeout_seconds = 3
cache_dir = "/tmp/marquee-cache"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataFile != "/srv/posters.toml" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want nerd", cfg.Icons)
	}
	if cfg.ImageProtocol != "kitty" {
		t.Errorf("ImageProtocol = %q, want kitty", cfg.ImageProtocol)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	spring := cfg.GetSpringConfig()
	if spring.FPS != 30 || spring.Damping != 1.0 {
		t.Errorf("spring = %+v, want fps 30 damping 1", spring)
	}
	if spring.Frequency != 15.17 {
		t.Errorf("spring.Frequency = %v, want default 15.17", spring.Frequency)
	}

	deck := cfg.GetDeckConfig()
	if deck.PixelsPerCell != 5 || deck.CardWidthRatio != 0.8 {
		t.Errorf("deck = %+v", deck)
	}

	images := cfg.GetImagesConfig()
	if images.TimeoutSeconds != 3 || images.CacheDir != "/tmp/marquee-cache" {
		t.Errorf("images = %+v", images)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Load() with a missing explicit file returned nil error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "icons = [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid TOML returned nil error")
	}
}

func TestGetSpringConfig_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		input   SpringConfig
		wantFPS int
	}{
		{"zero values", SpringConfig{}, 60},
		{"negative fps", SpringConfig{FPS: -1}, 60},
		{"absurd fps", SpringConfig{FPS: 1000}, 60},
		{"valid fps kept", SpringConfig{FPS: 120}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Spring: tt.input}
			got := c.GetSpringConfig()
			if got.FPS != tt.wantFPS {
				t.Errorf("FPS = %d, want %d", got.FPS, tt.wantFPS)
			}
			if got.Damping != 0.725 || got.RestDisplacement != 0.001 || got.RestSpeed != 0.001 {
				t.Errorf("defaults not applied: %+v", got)
			}
		})
	}
}

func TestGetDeckConfig_RejectsOversizedRatio(t *testing.T) {
	c := &Config{Deck: DeckConfig{CardWidthRatio: 1.5}}
	if got := c.GetDeckConfig().CardWidthRatio; got != 0.8 {
		t.Errorf("CardWidthRatio = %v, want 0.8", got)
	}
}

func TestImagesEnabled(t *testing.T) {
	tests := []struct {
		protocol string
		want     bool
	}{
		{"auto", true},
		{"kitty", true},
		{"sixel", true},
		{"none", false},
	}

	for _, tt := range tests {
		c := &Config{ImageProtocol: tt.protocol}
		if got := c.ImagesEnabled(); got != tt.want {
			t.Errorf("ImagesEnabled() with %q = %v, want %v", tt.protocol, got, tt.want)
		}
	}
}

func TestLogPath_Explicit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	c := &Config{LogFile: filepath.Join(dir, "m.log")}

	path, err := c.LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if path != filepath.Join(dir, "m.log") {
		t.Errorf("LogPath() = %q", path)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}
