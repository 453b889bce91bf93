package posterart

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// nextImageID is shared by all renderers so IDs never collide in the
// terminal's image memory.
var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// LoadedMsg is sent when a poster image finished loading, successfully or
// not.
type LoadedMsg struct {
	URI    string
	Width  int // cells
	Height int // cells
	Image  *ProcessedImage
	Cached bool
	Err    error
}

// Renderer loads poster images and tracks the one currently held by the
// terminal.
type Renderer struct {
	mu sync.RWMutex

	proto   Protocol
	fetcher *Fetcher
	cache   *Cache
	logger  *log.Logger

	currentURI    string
	currentWidth  int
	currentHeight int
	currentID     uint32
}

// New creates a renderer. A nil protocol disables images; a nil cache
// disables disk caching.
func New(proto Protocol, fetcher *Fetcher, cache *Cache, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if fetcher == nil {
		fetcher = NewFetcher(10*time.Second, "")
	}
	return &Renderer{
		proto:   proto,
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
	}
}

// Enabled reports whether images can be displayed at all.
func (r *Renderer) Enabled() bool {
	return r != nil && r.proto != nil
}

// ProtocolName returns the active protocol name, or "none".
func (r *Renderer) ProtocolName() string {
	if !r.Enabled() {
		return "none"
	}
	return r.proto.Name()
}

// Load returns a command that fetches, resizes and caches the image for uri
// to fill width x height cells. It returns nil when there is nothing to do.
func (r *Renderer) Load(uri string, width, height int) tea.Cmd {
	if !r.Enabled() || uri == "" || width <= 0 || height <= 0 {
		return nil
	}
	if r.Ready(uri, width, height) {
		return nil
	}

	pw, ph := r.proto.TargetPixelSize(width, height)

	return func() tea.Msg {
		msg := LoadedMsg{URI: uri, Width: width, Height: height}

		if data := r.cache.Get(uri, pw, ph); data != nil {
			msg.Image = &ProcessedImage{Data: data}
			msg.Cached = true
			return msg
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.fetcher.Timeout())
		defer cancel()

		start := time.Now()
		raw, err := r.fetcher.Fetch(ctx, uri)
		if err != nil {
			msg.Err = err
			return msg
		}

		img, err := Process(raw, pw, ph)
		if err != nil {
			msg.Err = err
			return msg
		}

		r.logger.Debug("poster image loaded",
			"uri", uri,
			"size", humanize.IBytes(uint64(len(raw))),
			"png", humanize.IBytes(uint64(len(img.Data))),
			"took", time.Since(start).Round(time.Millisecond))

		if err := r.cache.Put(uri, pw, ph, img.Data); err != nil {
			r.logger.Warn("cache poster image", "uri", uri, "err", err)
		}

		msg.Image = img
		return msg
	}
}

// Apply makes a loaded image current. It returns the terminal command that
// must be written once (freeing the previous image and transmitting the new
// one) and the load or encoding error, if any.
func (r *Renderer) Apply(msg LoadedMsg) (string, error) {
	if !r.Enabled() {
		return "", nil
	}
	if msg.Err != nil {
		return "", msg.Err
	}
	if msg.Image == nil || len(msg.Image.Data) == 0 {
		return "", errEmptyImage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out string
	if r.currentID > 0 {
		out = r.proto.Delete(r.currentID)
	}

	id := getNextImageID()
	transmit, err := r.proto.PrepareFromPNG(msg.Image.Data, id)
	if err != nil {
		r.resetLocked()
		return out, err
	}

	r.currentURI = msg.URI
	r.currentWidth = msg.Width
	r.currentHeight = msg.Height
	r.currentID = id

	return out + transmit, nil
}

// Ready reports whether the current image is uri at the given cell size.
func (r *Renderer) Ready(uri string, width, height int) bool {
	if !r.Enabled() {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.currentID > 0 && r.currentURI == uri &&
		r.currentWidth == width && r.currentHeight == height
}

// Placement returns the command that shows the current image at the 1-based
// terminal position (row, col).
func (r *Renderer) Placement(row, col int) string {
	if !r.Enabled() {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentID == 0 {
		return ""
	}
	return r.proto.Place(r.currentID, row, col, r.currentWidth, r.currentHeight)
}

// Hide returns the command that takes the current image off the screen.
func (r *Renderer) Hide() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentID == 0 {
		return ""
	}
	return r.proto.Hide(r.currentID)
}

// Clear frees the current image.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.currentID > 0 {
		cmd = r.proto.Delete(r.currentID)
	}
	r.resetLocked()
	return cmd
}

// PruneCache removes stale cache entries in the background.
func (r *Renderer) PruneCache(maxAge time.Duration) tea.Cmd {
	if r == nil || r.cache == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := r.cache.Prune(maxAge)
		if err != nil {
			r.logger.Warn("prune poster cache", "err", err)
		}
		if n > 0 {
			r.logger.Info("pruned poster cache", "removed", n, "dir", r.cache.Dir())
		}
		return nil
	}
}

func (r *Renderer) resetLocked() {
	r.currentURI = ""
	r.currentWidth = 0
	r.currentHeight = 0
	r.currentID = 0
}
