package viewport

import (
	"errors"
	"fmt"
	"image"
)

// Pane is the capability set every window kind provides. Sizing only ever
// happens through Layout; panes are created with size zero and must cope
// with a zero-sized first layout.
type Pane interface {
	// Create attaches the pane to parent (nil for a root pane). It is called once.
	Create(parent Pane) error

	// Destroy detaches the pane and its children.
	Destroy()

	// Layout places the pane at lo with the given size, in parent pixels.
	Layout(lo image.Point, size Size)

	// SetVisible shows or hides the pane. Hidden children keep their own state.
	SetVisible(visible bool)

	// MinSize is constant for a pane; it must not depend on dynamic content.
	MinSize() Size
}

var (
	ErrAlreadyCreated = errors.New("viewport: pane already created")
	ErrNotCreated     = errors.New("viewport: pane not created")
)

// Canvas is an offscreen drawing surface. Every layout change to a nonzero
// size invokes the redraw callback with the new pixel size.
type Canvas struct {
	Min      Size
	OnResize func(Size)

	created bool
	visible bool
	lo      image.Point
	size    Size
}

// NewCanvas returns a canvas that calls onResize when it is laid out.
func NewCanvas(min Size, onResize func(Size)) *Canvas {
	return &Canvas{Min: min, OnResize: onResize}
}

func (c *Canvas) Create(parent Pane) error {
	if c.created {
		return ErrAlreadyCreated
	}
	c.created = true
	c.visible = true
	return nil
}

func (c *Canvas) Destroy() {
	c.created = false
	c.size = Size{}
}

func (c *Canvas) Layout(lo image.Point, size Size) {
	c.lo = lo
	if size == c.size {
		return
	}
	c.size = size
	// The initial zero-size layout is ignored so startup doesn't draw blank.
	if c.OnResize != nil && c.created && c.visible && !size.IsZero() {
		c.OnResize(size)
	}
}

func (c *Canvas) SetVisible(visible bool) {
	c.visible = visible
}

func (c *Canvas) MinSize() Size {
	return c.Min
}

// Size returns the current pixel size.
func (c *Canvas) Size() Size {
	return c.size
}

// Bounds returns the canvas rectangle in parent coordinates.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(c.lo.X, c.lo.Y, c.lo.X+c.size.Width, c.lo.Y+c.size.Height)
}

// Visible reports whether the canvas is shown.
func (c *Canvas) Visible() bool {
	return c.visible
}

// Split lays out two panes side by side (Horizontal) or stacked.
// Ratio is the share of space given to the first pane, in [0,1].
type Split struct {
	Horizontal bool
	Ratio      float64
	First      Pane
	Second     Pane

	created bool
}

// NewSplit returns an evenly divided split.
func NewSplit(horizontal bool, first, second Pane) *Split {
	return &Split{Horizontal: horizontal, Ratio: 0.5, First: first, Second: second}
}

func (s *Split) Create(parent Pane) error {
	if s.created {
		return ErrAlreadyCreated
	}
	if err := s.First.Create(s); err != nil {
		return fmt.Errorf("viewport: create split child: %w", err)
	}
	if err := s.Second.Create(s); err != nil {
		// Undo the first child so a later Create can start clean.
		s.First.Destroy()
		return fmt.Errorf("viewport: create split child: %w", err)
	}
	s.created = true
	return nil
}

func (s *Split) Destroy() {
	s.First.Destroy()
	s.Second.Destroy()
	s.created = false
}

func (s *Split) Layout(lo image.Point, size Size) {
	ratio := min(max(s.Ratio, 0), 1)
	if s.Horizontal {
		w0 := int(float64(size.Width)*ratio + 0.5)
		s.First.Layout(lo, Size{Width: w0, Height: size.Height})
		s.Second.Layout(image.Pt(lo.X+w0, lo.Y), Size{Width: size.Width - w0, Height: size.Height})
		return
	}
	h0 := int(float64(size.Height)*ratio + 0.5)
	s.First.Layout(lo, Size{Width: size.Width, Height: h0})
	s.Second.Layout(image.Pt(lo.X, lo.Y+h0), Size{Width: size.Width, Height: size.Height - h0})
}

func (s *Split) SetVisible(visible bool) {
	s.First.SetVisible(visible)
	s.Second.SetVisible(visible)
}

func (s *Split) MinSize() Size {
	a, b := s.First.MinSize(), s.Second.MinSize()
	if s.Horizontal {
		return Size{Width: a.Width + b.Width, Height: max(a.Height, b.Height)}
	}
	return Size{Width: max(a.Width, b.Width), Height: a.Height + b.Height}
}
