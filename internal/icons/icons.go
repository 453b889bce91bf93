package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Location string
	Date     string
	Poster   string
	Image    string
}

var (
	nerdIcons = Icons{
		Location: "\uf041 ", // nf-fa-map_marker
		Date:     "\uf073 ", // nf-fa-calendar
		Poster:   "\uf03e ", // nf-fa-image
		Image:    "\uf030",  // nf-fa-camera
	}

	unicodeIcons = Icons{
		Location: "📍 ",
		Date:     "📅 ",
		Poster:   "🎫 ",
		Image:    "🖼",
	}

	noneIcons = Icons{
		Location: "@ ",
		Date:     "",
		Poster:   "",
		Image:    "[img]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatLocation prefixes a location with the location pin.
func FormatLocation(name string) string {
	if name == "" {
		return ""
	}
	return current.Location + name
}

// FormatDate prefixes a date with the calendar icon.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	return current.Date + date
}

// FormatPoster prefixes a poster title with the poster icon.
func FormatPoster(title string) string {
	return current.Poster + title
}

// Image returns the marker shown while a poster image is displayed.
func Image() string {
	return current.Image
}
