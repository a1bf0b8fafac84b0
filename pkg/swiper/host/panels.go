package host

import (
	"log/slog"
	"math"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/veandco/go-sdl2/sdl"
)

// handleSize is how much of a collapsed panel stays on screen.
const handleSize = 24

// PanelView mirrors one action's drag callbacks for drawing.
type PanelView struct {
	Name      string
	Direction swiper.Direction

	position float64
	friction float64
	dragging bool
	logger   *slog.Logger
}

func NewPanelView(name string, direction swiper.Direction, position float64, logger *slog.Logger) *PanelView {
	return &PanelView{Name: name, Direction: direction, position: position, logger: logger}
}

func (p *PanelView) OnDragStart(position, friction float64) {
	p.dragging = true
	p.position, p.friction = position, friction
}

func (p *PanelView) OnDrag(position, friction float64) {
	p.position, p.friction = position, friction
}

func (p *PanelView) OnDragEnd(position, friction float64) {
	p.dragging = false
	p.position, p.friction = position, friction
	p.logger.Debug("Panel settled", "panel", p.Name, "position", position, "friction", friction)
}

func (p *PanelView) Position() float64 { return p.position }
func (p *PanelView) Friction() float64 { return p.friction }
func (p *PanelView) Dragging() bool    { return p.dragging }

// Rect returns the area the panel covers on a width x height screen.
func (p *PanelView) Rect(width, height int32) sdl.Rect {
	return PanelRect(p.Direction, p.position, width, height)
}

// PanelRect returns the screen area of a panel of direction d whose moving
// edge is at position. The panel grows from the edge opposite to d, and
// never shrinks below a grab handle.
func PanelRect(d swiper.Direction, position float64, width, height int32) sdl.Rect {
	edge := int32(math.Round(position))

	switch d {
	case swiper.DirectionDown:
		h := clamp(edge, handleSize, height)
		return sdl.Rect{X: 0, Y: 0, W: width, H: h}
	case swiper.DirectionUp:
		top := clamp(edge, 0, height-handleSize)
		return sdl.Rect{X: 0, Y: top, W: width, H: height - top}
	case swiper.DirectionRight:
		w := clamp(edge, handleSize, width)
		return sdl.Rect{X: 0, Y: 0, W: w, H: height}
	case swiper.DirectionLeft:
		left := clamp(edge, 0, width-handleSize)
		return sdl.Rect{X: left, Y: 0, W: width - left, H: height}
	}
	return sdl.Rect{}
}

func clamp(v, lo, hi int32) int32 {
	return min(max(v, lo), hi)
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks r by the padding.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(r.W-p.Left-p.Right, 0),
		H: max(r.H-p.Top-p.Bottom, 0),
	}
}

// Button is an on-screen button that pushes the key panel.
type Button struct {
	Label string // Label ID
	Icon  string
	Rect  sdl.Rect
}

// Contains reports whether the point lies on the button.
func (b Button) Contains(x, y int32) bool {
	return x >= b.Rect.X && x < b.Rect.X+b.Rect.W && y >= b.Rect.Y && y < b.Rect.Y+b.Rect.H
}

// IconRect is the square the icon is drawn in, at the left of the button.
func (b Button) IconRect(p Padding) sdl.Rect {
	inner := p.Inset(b.Rect)
	return sdl.Rect{X: inner.X, Y: inner.Y, W: inner.H, H: inner.H}
}

// LayoutButtons places the expand and collapse buttons side by side in the
// middle of the screen.
func LayoutButtons(width, height int32) []Button {
	const gap = 16
	w := min(width/3, 240)
	h := int32(64)
	y := (height - h) / 2
	x := (width - 2*w - gap) / 2

	return []Button{
		{Label: LabelExpand, Icon: IconExpand, Rect: sdl.Rect{X: x, Y: y, W: w, H: h}},
		{Label: LabelCollapse, Icon: IconCollapse, Rect: sdl.Rect{X: x + w + gap, Y: y, W: w, H: h}},
	}
}

func buttonAt(buttons []Button, x, y int32) (Button, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
