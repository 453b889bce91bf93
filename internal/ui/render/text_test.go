package render

import (
	"strings"
	"testing"
)

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "fits",
			input:    "Mumbai, India",
			maxWidth: 20,
			want:     "Mumbai, India",
		},
		{
			name:     "single character ellipsis",
			input:    "Summer festival",
			maxWidth: 8,
			want:     "Summer …",
		},
		{
			name:     "wide runes counted by cell",
			input:    "夏祭り",
			maxWidth: 5,
			want:     "夏祭…",
		},
		{
			name:     "zero width",
			input:    "Summer festival",
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateEllipsis(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		right   string
		width   int
		wantLen int
	}{
		{
			name:    "basic row",
			left:    "MARQUEE",
			right:   "3/7",
			width:   20,
			wantLen: 20,
		},
		{
			name:    "tight fit",
			left:    "MARQUEE",
			right:   "3/7",
			width:   9,
			wantLen: 11, // minimum gap of 1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			if len(got) < tt.wantLen {
				t.Errorf("Row(%q, %q, %d) length = %d, want >= %d", tt.left, tt.right, tt.width, len(got), tt.wantLen)
			}
			if !strings.HasPrefix(got, tt.left) {
				t.Errorf("Row(%q, %q, %d) should start with %q", tt.left, tt.right, tt.width, tt.left)
			}
			if !strings.HasSuffix(got, tt.right) {
				t.Errorf("Row(%q, %q, %d) should end with %q", tt.left, tt.right, tt.width, tt.right)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"even gap", "ab", 6, "  ab  "},
		{"odd gap puts extra space right", "ab", 5, " ab  "},
		{"truncates", "summer festival", 8, "summer …"},
		{"zero width", "ab", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Center(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "Beach House", "Beach House"},
		{"control characters removed", "Beach\x1b[31m House", "Beach[31m House"},
		{"newline removed", "Jungle\nParty", "JungleParty"},
		{"nbsp replaced", "4th\u00a0Of July", "4th Of July"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "ok\xffok", "okok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
