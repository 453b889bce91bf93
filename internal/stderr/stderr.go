// Package stderr captures output written to file descriptor 2 while the TUI
// owns the terminal, so stray writes from libraries or the runtime end up in
// the log file instead of corrupting the screen.
package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// forward logs every non-empty line read from r until r is closed.
func forward(r io.Reader, logger *log.Logger, done chan<- struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn(line)
		}
	}
}
