package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/poster"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.HasPrefix(out, "marquee "+version) {
		t.Errorf("--version output = %q", out)
	}
}

func TestFramesCommand(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "[spring]\nfps = 60\n")

	out, _, err := execute(t, "frames", "--config", cfgPath, "--from", "1", "--target", "3")
	if err != nil {
		t.Fatalf("frames error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("frames printed %d lines, want a header and several frames", len(lines))
	}
	if !strings.Contains(lines[0], "active") {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); fields[0] != "0" || fields[1] != "1.0000" {
		t.Errorf("first frame = %q, want frame 0 at 1.0000", lines[1])
	}
	last := strings.Fields(lines[len(lines)-1])
	// At rest the target poster is centred at full size.
	if last[1] != "3.0000" || last[2] != "0.000" || last[3] != "1.0000" {
		t.Errorf("last frame = %q, want active 3 offset 0 scale 1", lines[len(lines)-1])
	}
}

func TestFramesCommand_BadConfig(t *testing.T) {
	_, _, err := execute(t, "frames", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("frames with a missing config should fail")
	}
	if !strings.HasPrefix(err.Error(), "Failed to load configuration") {
		t.Errorf("error = %q", err)
	}
}

func TestFramesCommand_BadData(t *testing.T) {
	data := writeFile(t, "posters.toml", "[[posters]]\nlocation = \"Mumbai, India\"\nimage = \"a.png\"\n")

	_, _, err := execute(t, "frames", "--data", data)
	var verr *poster.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a wrapped *poster.ValidationError", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to load posters") {
		t.Errorf("error = %q", err)
	}
}

func TestPrintFrames(t *testing.T) {
	spring := springConfig(&config.Config{})

	tests := []struct {
		name       string
		from       int
		target     int
		wantActive string
		wantFrames bool
	}{
		{"forward", 0, 2, "2.0000", true},
		{"backward", 6, 4, "4.0000", true},
		{"clamped target", 0, 99, "6.0000", true},
		{"already there", 3, 3, "3.0000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			frames := printFrames(&buf, spring, 7, tt.from, tt.target)

			if (frames > 0) != tt.wantFrames {
				t.Errorf("printFrames() = %d frames", frames)
			}
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(lines) != frames+2 {
				t.Errorf("printed %d lines for %d frames", len(lines), frames)
			}
			last := strings.Fields(lines[len(lines)-1])
			if last[1] != tt.wantActive {
				t.Errorf("final active = %s, want %s", last[1], tt.wantActive)
			}
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "data_file = \"/srv/posters.toml\"\nimage_protocol = \"kitty\"\n")

	cfg, err := loadConfig(&options{configPath: cfgPath, dataPath: "mine.toml", noImages: true})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.DataFile != "mine.toml" {
		t.Errorf("DataFile = %q, want the --data value", cfg.DataFile)
	}
	if cfg.ImagesEnabled() {
		t.Error("--no-images should disable images")
	}
}

func TestLoadPosters_Defaults(t *testing.T) {
	items, err := loadPosters(&config.Config{})
	if err != nil {
		t.Fatalf("loadPosters() error = %v", err)
	}
	if len(items) != len(poster.Defaults()) {
		t.Errorf("loadPosters() = %d posters, want the built-in set", len(items))
	}
}

func TestNewRenderer(t *testing.T) {
	t.Setenv("MARQUEE_IMAGE_PROTOCOL", "")

	off := newRenderer(t.Context(), &config.Config{ImageProtocol: "none"})
	if off == nil || off.Enabled() {
		t.Error("image_protocol none should give a disabled renderer")
	}

	on := newRenderer(t.Context(), &config.Config{
		ImageProtocol: "kitty",
		Images:        config.ImagesConfig{CacheDir: t.TempDir()},
	})
	if !on.Enabled() || on.ProtocolName() != "kitty" {
		t.Errorf("renderer protocol = %q, want kitty", on.ProtocolName())
	}
}

func TestFailed(t *testing.T) {
	if failed("load posters", nil) != nil {
		t.Error("failed(nil) should be nil")
	}

	cause := os.ErrNotExist
	err := failed("load posters", cause)
	if err.Error() != "Failed to load posters: file does not exist" {
		t.Errorf("Error() = %q", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("failed() should keep the cause")
	}
}
