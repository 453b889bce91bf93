package poster

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// entry is the on-disk shape of one poster in a data file:
//
//	[[posters]]
//	title = "Afro vibes"
//	location = "Mumbai, India"
//	date = "2020-11-17"
//	image = "https://example.com/afro.jpg"
type entry struct {
	Title    string `koanf:"title"`
	Location string `koanf:"location"`
	Date     any    `koanf:"date"` // display text, or an ISO date
	Image    string `koanf:"image"`
}

// Load reads a TOML poster data file and validates it.
func Load(path string) ([]Item, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []entry
	if err := k.Unmarshal("posters", &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			Title:    strings.TrimSpace(e.Title),
			Location: strings.TrimSpace(e.Location),
			Date:     FormatDate(e.Date),
			Image:    strings.TrimSpace(e.Image),
		}
	}

	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// FormatDate renders a poster date for display. ISO dates and TOML date
// values become "Nov 17th, 2020"; any other text is returned trimmed.
func FormatDate(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return displayDate(d)
	case string:
		s := strings.TrimSpace(d)
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return displayDate(t)
		}
		return s
	default:
		s := strings.TrimSpace(fmt.Sprint(d))
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return displayDate(t)
		}
		return s
	}
}

func displayDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Format("Jan"), humanize.Ordinal(t.Day()), t.Year())
}
