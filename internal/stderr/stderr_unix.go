//go:build unix

package stderr

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// Capture is an active redirection of stderr. Stop undoes it.
type Capture struct {
	orig int
	r, w *os.File
	done chan struct{}
}

// Start redirects stderr into logger. If it fails, stderr is left untouched
// and the program can carry on without capture.
func Start(logger *log.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())

	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, r: r, w: w, done: make(chan struct{})}
	go forward(r, logger, c.done)
	return c, nil
}

// Stop restores the original stderr and waits until everything captured so
// far has been logged.
func (c *Capture) Stop() {
	if c == nil {
		return
	}

	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)

	// The pipe's last writer is gone once fd 2 is restored.
	c.w.Close()
	<-c.done
	c.r.Close()
}
