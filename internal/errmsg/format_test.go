//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPostersLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPostersLoad,
			err:      errors.New("poster 2: title: missing"),
			expected: "Failed to load posters: poster 2: title: missing",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load configuration: permission denied",
		},
		{
			name:     "image operation",
			op:       OpImageFetch,
			err:      errors.New("404 Not Found"),
			expected: "Failed to fetch poster image: 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImageDecode,
			context:  "Afro vibes",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImageDecode,
			context:  "",
			err:      errors.New("unknown format"),
			expected: "Failed to decode poster image: unknown format",
		},
		{
			name:     "includes context",
			op:       OpImageFetch,
			context:  "Jungle Party",
			err:      errors.New("timeout"),
			expected: "Failed to fetch poster image 'Jungle Party': timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
