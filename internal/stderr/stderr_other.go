//go:build !unix

package stderr

import "github.com/charmbracelet/log"

// Capture is a no-op on platforms without dup2.
type Capture struct{}

// Start does nothing and returns a capture whose Stop is a no-op.
func Start(*log.Logger) (*Capture, error) {
	return &Capture{}, nil
}

// Stop does nothing.
func (c *Capture) Stop() {}
