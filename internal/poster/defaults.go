package poster

const flyerBase = "https://www.creative-flyers.com/wp-content/uploads/"

var defaults = []Item{
	{
		Title:    "Afro vibes",
		Location: "Mumbai, India",
		Date:     "Nov 17th, 2020",
		Image:    flyerBase + "2020/07/Afro-vibes-flyer-template.jpg",
	},
	{
		Title:    "Jungle Party",
		Location: "Unknown",
		Date:     "Sept 3rd, 2020",
		Image:    flyerBase + "2019/11/Jungle-Party-Flyer-Template-1.jpg",
	},
	{
		Title:    "4th Of July",
		Location: "New York, USA",
		Date:     "Oct 11th, 2020",
		Image:    flyerBase + "2020/06/4th-Of-July-Invitation.jpg",
	},
	{
		Title:    "Summer festival",
		Location: "Bucharest, Romania",
		Date:     "Aug 17th, 2020",
		Image:    flyerBase + "2020/07/Summer-Music-Festival-Poster.jpg",
	},
	{
		Title:    "BBQ with friends",
		Location: "Prague, Czech Republic",
		Date:     "Sept 11th, 2020",
		Image:    flyerBase + "2020/06/BBQ-Flyer-Psd-Template.jpg",
	},
	{
		Title:    "Festival music",
		Location: "Berlin, Germany",
		Date:     "Apr 21th, 2021",
		Image:    flyerBase + "2020/06/Festival-Music-PSD-Template.jpg",
	},
	{
		Title:    "Beach House",
		Location: "Liboa, Portugal",
		Date:     "Aug 12th, 2020",
		Image:    flyerBase + "2020/06/Summer-Beach-House-Flyer.jpg",
	},
}

// Defaults returns a copy of the built-in poster sequence.
func Defaults() []Item {
	out := make([]Item, len(defaults))
	copy(out, defaults)
	return out
}
