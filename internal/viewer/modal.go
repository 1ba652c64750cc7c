package viewer

import "backend-lumashare/internal/gallery"

// Viewport classifies the window shape: narrow viewports navigate the
// detail modal with vertical swipes, wide ones with horizontal swipes.
type Viewport int

const (
	ViewportWide Viewport = iota
	ViewportNarrow
)

// Key is the subset of keyboard input the modal reacts to.
type Key int

const (
	KeyArrowLeft Key = iota
	KeyArrowRight
	KeyTab
	KeyShiftTab
	KeyEscape
)

// swipeThreshold is the minimum gesture travel, in CSS pixels, that counts
// as a navigation swipe.
const swipeThreshold = 50.0

// Modal is one open detail modal over the currently loaded item list.
// Opening registers gesture and key listeners; Close must release exactly
// as many, so repeated opens cannot accumulate handlers.
type Modal struct {
	items      []gallery.Item
	index      int
	focusables int
	focus      int
	listeners  int
}

// Controller manages the open modals and routes input to the topmost one.
type Controller struct {
	viewport Viewport
	open     []*Modal
}

func NewController(viewport Viewport) *Controller {
	return &Controller{viewport: viewport}
}

// Open shows the detail modal for items[index]. The index is clamped into
// range, and focusables is the size of the modal's focus-trap ring. An
// empty item list opens nothing and returns nil.
func (c *Controller) Open(items []gallery.Item, index, focusables int) *Modal {
	if len(items) == 0 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(items)-1 {
		index = len(items) - 1
	}
	m := &Modal{
		items:      items,
		index:      index,
		focusables: focusables,
		listeners:  3, // key, touch, focus handler sets
	}
	c.open = append(c.open, m)
	return m
}

// Close tears down the topmost modal and releases its listeners.
func (c *Controller) Close() {
	if len(c.open) == 0 {
		return
	}
	top := c.open[len(c.open)-1]
	top.listeners = 0
	c.open = c.open[:len(c.open)-1]
}

// CloseAll is the Escape behavior: every open modal is closed.
func (c *Controller) CloseAll() {
	for len(c.open) > 0 {
		c.Close()
	}
}

// Top returns the modal input is routed to.
func (c *Controller) Top() *Modal {
	if len(c.open) == 0 {
		return nil
	}
	return c.open[len(c.open)-1]
}

func (c *Controller) OpenCount() int { return len(c.open) }

// ActiveListeners counts listener sets across open modals. It must drop to
// zero once everything is closed.
func (c *Controller) ActiveListeners() int {
	n := 0
	for _, m := range c.open {
		n += m.listeners
	}
	return n
}

// HandleKey routes a key press to the topmost modal.
func (c *Controller) HandleKey(key Key) {
	if key == KeyEscape {
		c.CloseAll()
		return
	}
	m := c.Top()
	if m == nil {
		return
	}
	switch key {
	case KeyArrowLeft:
		m.Prev()
	case KeyArrowRight:
		m.Next()
	case KeyTab:
		m.cycleFocus(1)
	case KeyShiftTab:
		m.cycleFocus(-1)
	}
}

// HandleSwipe maps a completed touch gesture to prev/next. The navigation
// axis depends on the viewport class; travel below the threshold is
// ignored.
func (c *Controller) HandleSwipe(dx, dy float64) {
	m := c.Top()
	if m == nil {
		return
	}

	delta := dx
	if c.viewport == ViewportNarrow {
		delta = dy
	}
	switch {
	case delta <= -swipeThreshold:
		m.Next()
	case delta >= swipeThreshold:
		m.Prev()
	}
}

// Next moves to the following item, clamped at the end of the list.
func (m *Modal) Next() {
	if m.index < len(m.items)-1 {
		m.index++
	}
}

// Prev moves to the preceding item, clamped at the start.
func (m *Modal) Prev() {
	if m.index > 0 {
		m.index--
	}
}

// Current returns the displayed item.
func (m *Modal) Current() (gallery.Item, bool) {
	if m.index < 0 || m.index >= len(m.items) {
		return gallery.Item{}, false
	}
	return m.items[m.index], true
}

func (m *Modal) Index() int { return m.index }

// FocusIndex is the position inside the focus-trap ring.
func (m *Modal) FocusIndex() int { return m.focus }

func (m *Modal) cycleFocus(step int) {
	if m.focusables == 0 {
		return
	}
	m.focus = (m.focus + step + m.focusables) % m.focusables
}
