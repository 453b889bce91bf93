package carousel

// Carousel owns the active index of one poster stack. Every screen that shows
// a stack holds its own Carousel; there is no shared instance.
type Carousel struct {
	count  int
	index  int
	driver *Driver
}

// New creates a carousel of count items resting on the first one.
func New(count int, spring SpringConfig) *Carousel {
	return &Carousel{
		count:  max(count, 0),
		driver: NewDriver(spring, 0),
	}
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return c.count
}

// Index returns the integer index the carousel is moving to or resting on.
func (c *Carousel) Index() int {
	return c.index
}

// Active returns the current animated value of the active index.
func (c *Carousel) Active() float64 {
	return c.driver.Value()
}

// Driver exposes the underlying spring driver.
func (c *Carousel) Driver() *Driver {
	return c.driver
}

// SetTarget focuses item i, clamped to the valid range, and reports whether
// the focused index changed.
func (c *Carousel) SetTarget(i int) bool {
	if c.count == 0 {
		return false
	}
	i = clamp(i, c.count-1)
	changed := i != c.index
	c.index = i
	c.driver.SetTarget(float64(i))
	return changed
}

// Next focuses the following item.
func (c *Carousel) Next() bool {
	return c.SetTarget(c.index + 1)
}

// Prev focuses the preceding item.
func (c *Carousel) Prev() bool {
	return c.SetTarget(c.index - 1)
}

// First focuses the first item.
func (c *Carousel) First() bool {
	return c.SetTarget(0)
}

// Last focuses the last item.
func (c *Carousel) Last() bool {
	return c.SetTarget(c.count - 1)
}

// Step advances the animation by one frame and reports whether it settled.
func (c *Carousel) Step() bool {
	c.driver.Step()
	return c.driver.Settled()
}

// Settled reports whether the animation is at rest.
func (c *Carousel) Settled() bool {
	return c.driver.Settled()
}

// Transform returns the current transform of item i.
func (c *Carousel) Transform(i int) Transform {
	return Map(c.driver.Value(), i, c.count)
}

// Layers returns the current transforms of all items in paint order.
func (c *Carousel) Layers() []Layer {
	return Layers(c.driver.Value(), c.count)
}

func clamp(v, upper int) int {
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}
