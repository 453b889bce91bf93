// internal/app/app.go
package app

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui/deck"
	"github.com/llehouerou/marquee/internal/ui/helpbindings"
	"github.com/llehouerou/marquee/internal/ui/labels"
	"github.com/llehouerou/marquee/internal/ui/posterart"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Options configures a new Model.
type Options struct {
	Items      []poster.Item
	Spring     carousel.SpringConfig
	Deck       deck.Config
	Art        *posterart.Renderer // nil disables poster images
	Logger     *log.Logger
	HideLabels bool
}

// Model is the root Bubble Tea model: one carousel, the deck and label panel
// that render it, and the optional poster art for the focused card.
type Model struct {
	Items    []poster.Item
	Carousel *carousel.Carousel
	Deck     deck.Model
	Labels   labels.Model
	Help     helpbindings.Model
	Art      *posterart.Renderer

	Width  int
	Height int

	keys   *keymap.Resolver
	footer help.Model
	logger *log.Logger

	showHelp   bool
	showLabels bool
	showImages bool

	// frameGen identifies the live tick chain; ticks from older chains are
	// dropped.
	frameGen  int
	animating bool

	artPending string // image transmission not yet written to the terminal
	artSeq     int
	status     string
}

// New creates the root model resting on the first poster.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := styles.T()
	footer := help.New()
	footer.ShortSeparator = " · "
	footer.Styles.ShortKey = t.S().Base.Bold(true)
	footer.Styles.ShortDesc = t.S().Muted
	footer.Styles.ShortSeparator = t.S().Subtle

	return Model{
		Items:      opts.Items,
		Carousel:   carousel.New(len(opts.Items), opts.Spring),
		Deck:       deck.New(opts.Items, opts.Deck),
		Labels:     labels.New(opts.Items),
		Help:       helpbindings.New("global", "carousel"),
		Art:        opts.Art,
		keys:       keymap.ForContexts("global", "carousel"),
		footer:     footer,
		logger:     logger,
		showLabels: !opts.HideLabels,
		showImages: opts.Art.Enabled(),
	}
}

// Init prunes the poster image cache in the background.
func (m Model) Init() tea.Cmd {
	return m.Art.PruneCache(posterart.DefaultMaxAge)
}

// Status returns the current status line message, if any.
func (m Model) Status() string {
	return m.status
}

// ShowingHelp reports whether the key help popup is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// ShowingLabels reports whether the label panel is visible.
func (m Model) ShowingLabels() bool {
	return m.showLabels
}

// ShowingImages reports whether poster images are requested.
func (m Model) ShowingImages() bool {
	return m.showImages
}

// Animating reports whether frame ticks are scheduled.
func (m Model) Animating() bool {
	return m.animating
}

// FrameGen returns the generation of the current tick chain.
func (m Model) FrameGen() int {
	return m.frameGen
}

// focused returns the poster the carousel is moving to or resting on.
func (m Model) focused() (poster.Item, bool) {
	i := m.Carousel.Index()
	if i < 0 || i >= len(m.Items) {
		return poster.Item{}, false
	}
	return m.Items[i], true
}
