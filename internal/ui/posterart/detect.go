package posterart

import (
	"os"
	"strings"
)

// EnvProtocol overrides protocol detection: "kitty", "sixel" or "none".
const EnvProtocol = "MARQUEE_IMAGE_PROTOCOL"

// Detect returns the image protocol to use, or nil when images are off.
// The environment variable wins over override (the config value); "auto"
// or an empty value means detecting from the terminal.
func Detect(override string) Protocol {
	if env := os.Getenv(EnvProtocol); env != "" {
		override = env
	}

	switch strings.ToLower(strings.TrimSpace(override)) {
	case "kitty":
		return Kitty{}
	case "sixel":
		return NewSixel()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return Kitty{}
	}
	if IsSixelSupported() {
		return NewSixel()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty, and inherits
	// variables like GHOSTTY_RESOURCES_DIR from the terminal it started in.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics arrived in 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	// xterm only has Sixel when built with it; TERM=xterm is the best hint
	// available once Kitty has been ruled out.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
