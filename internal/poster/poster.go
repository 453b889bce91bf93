// Package poster defines the carousel's event posters and loads them.
package poster

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Item is one event poster. Items are immutable once loaded; an item's
// identity is its position in the sequence.
type Item struct {
	Title    string
	Location string
	Date     string
	Image    string // URI of the poster image: http(s), file, or a plain path
}

// ErrEmpty is returned when a poster sequence has no items.
var ErrEmpty = errors.New("no posters")

// ValidationError reports a malformed poster entry.
type ValidationError struct {
	Index int
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("poster %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var (
	errMissing        = errors.New("missing")
	errUnsupportedURI = errors.New("unsupported scheme")
	errNoHost         = errors.New("missing host")
	errFileURI        = errors.New("file URI needs an absolute path")
)

// Validate checks every item and returns the first problem found.
func Validate(items []Item) error {
	if len(items) == 0 {
		return ErrEmpty
	}
	for i, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			return &ValidationError{Index: i, Field: "title", Err: errMissing}
		}
		if err := validateImage(it.Image); err != nil {
			return &ValidationError{Index: i, Field: "image", Err: err}
		}
	}
	return nil
}

func validateImage(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errMissing
	}
	u, err := url.Parse(ref)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return errNoHost
		}
	case "file":
		// file:a.jpg and file://a.jpg carry the name outside the path.
		if u.Opaque != "" || u.Host != "" || u.Path == "" {
			return errFileURI
		}
	case "":
	default:
		return fmt.Errorf("%w %q", errUnsupportedURI, u.Scheme)
	}
	return nil
}
