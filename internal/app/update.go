// internal/app/update.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui"
	"github.com/llehouerou/marquee/internal/ui/deck"
	"github.com/llehouerou/marquee/internal/ui/headerbar"
	"github.com/llehouerou/marquee/internal/ui/helpbindings"
	"github.com/llehouerou/marquee/internal/ui/layout"
	"github.com/llehouerou/marquee/internal/ui/posterart"
)

// statusHeight is the line reserved for image and toggle messages.
const statusHeight = 1

const imagesUnavailable = "Poster images need a terminal with Kitty or Sixel graphics"

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, m.loadArt()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case posterart.LoadedMsg:
		return m.handleArtLoaded(msg)

	case ArtSentMsg:
		if msg.Seq == m.artSeq {
			m.artPending = ""
		}
		return m, nil

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Help.Reset()
		m.showHelp = true
		return m, nil
	case keymap.ActionToggleLabels:
		m.showLabels = !m.showLabels
		m.resize()
		return m, m.loadArt()
	case keymap.ActionToggleImages:
		if !m.Art.Enabled() {
			m.status = imagesUnavailable
			return m, nil
		}
		m.showImages = !m.showImages
		m.status = ""
		return m, m.loadArt()
	case keymap.ActionNext:
		return m.retarget(m.Carousel.Next())
	case keymap.ActionPrev:
		return m.retarget(m.Carousel.Prev())
	case keymap.ActionJumpStart:
		return m.retarget(m.Carousel.First())
	case keymap.ActionJumpEnd:
		return m.retarget(m.Carousel.Last())
	case keymap.ActionPageNext:
		return m.retarget(m.Carousel.SetTarget(m.Carousel.Index() + keymap.PageSize))
	case keymap.ActionPagePrev:
		return m.retarget(m.Carousel.SetTarget(m.Carousel.Index() - keymap.PageSize))
	}

	return m, nil
}

// retarget follows up a carousel move; changed is what the move reported.
func (m Model) retarget(changed bool) (tea.Model, tea.Cmd) {
	if !changed {
		return m, nil
	}
	m.status = ""
	return m, m.animate()
}

// animate starts a tick chain unless one is already running. A running chain
// picks up the new target on its next frame.
func (m *Model) animate() tea.Cmd {
	if m.animating || m.Carousel.Settled() {
		return nil
	}
	m.animating = true
	m.frameGen++
	return FrameCmd(m.Carousel.Driver().FrameInterval(), m.frameGen)
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.animating || msg.Gen != m.frameGen {
		return m, nil
	}

	if !m.Carousel.Step() {
		return m, FrameCmd(m.Carousel.Driver().FrameInterval(), m.frameGen)
	}

	m.animating = false
	m.logger.Debug("carousel settled", "index", m.Carousel.Index())
	return m, m.loadArt()
}

func (m Model) handleArtLoaded(msg posterart.LoadedMsg) (tea.Model, tea.Cmd) {
	rect, item, ok := m.artTarget()
	if !ok || item.Image != msg.URI || rect.Width != msg.Width || rect.Height != msg.Height {
		// Focus or size moved on while the image was loading.
		return m, nil
	}

	out, err := m.Art.Apply(msg)
	if out != "" {
		m.artPending += out
	}
	if err != nil {
		m.logger.Warn("poster image unavailable", "title", item.Title, "uri", msg.URI, "err", err)
		m.status = artErrorMessage(item, err)
	} else {
		m.logger.Debug("poster image ready", "title", item.Title, "cached", msg.Cached)
		m.status = ""
	}

	if m.artPending == "" {
		return m, nil
	}
	m.artSeq++
	return m, ArtSentCmd(m.artSeq)
}

// resize lays out the deck and label panel for the current window size.
func (m *Model) resize() {
	labelsHeight := layout.LabelsHeight(m.showLabels)

	deckHeight := layout.DeckHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: ui.FooterHeight,
		LabelsHeight: labelsHeight,
		StatusHeight: statusHeight,
	})

	m.Deck.SetSize(m.Width, deckHeight)
	m.Labels.SetSize(m.Width, labelsHeight)
	m.Labels.SetHidden(!m.showLabels)
	m.Help.SetSize(m.Width, max(m.Height-ui.BorderHeight, 0))
	m.footer.Width = m.Width
}

// loadArt requests the focused poster's image when the carousel is at rest.
func (m Model) loadArt() tea.Cmd {
	rect, item, ok := m.artTarget()
	if !ok {
		return nil
	}
	return m.Art.Load(item.Image, rect.Width, rect.Height)
}

// artTarget returns the focused poster and where its image goes. Images are
// only shown for a carousel at rest.
func (m Model) artTarget() (deck.Rect, poster.Item, bool) {
	if !m.showImages || !m.Art.Enabled() || !m.Carousel.Settled() {
		return deck.Rect{}, poster.Item{}, false
	}
	item, ok := m.focused()
	if !ok {
		return deck.Rect{}, poster.Item{}, false
	}
	rect, ok := m.Deck.ArtRect(m.Carousel.Layers(), m.Carousel.Index())
	if !ok {
		return deck.Rect{}, poster.Item{}, false
	}
	return rect, item, true
}

func artErrorMessage(item poster.Item, err error) string {
	op := errmsg.OpImageFetch
	if errors.Is(err, posterart.ErrDecode) {
		op = errmsg.OpImageDecode
	}
	return errmsg.FormatWith(op, item.Title, err)
}
