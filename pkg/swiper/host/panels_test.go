package host

import (
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPanelRect(t *testing.T) {
	tests := []struct {
		name     string
		d        swiper.Direction
		position float64
		want     sdl.Rect
	}{
		{"down collapsed keeps handle", swiper.DirectionDown, 0, sdl.Rect{X: 0, Y: 0, W: 400, H: handleSize}},
		{"down partly open", swiper.DirectionDown, 300, sdl.Rect{X: 0, Y: 0, W: 400, H: 300}},
		{"down overshoot clamps", swiper.DirectionDown, 1200, sdl.Rect{X: 0, Y: 0, W: 400, H: 1000}},
		{"up collapsed keeps handle", swiper.DirectionUp, 1000, sdl.Rect{X: 0, Y: 1000 - handleSize, W: 400, H: handleSize}},
		{"up open", swiper.DirectionUp, 300, sdl.Rect{X: 0, Y: 300, W: 400, H: 700}},
		{"right", swiper.DirectionRight, 120.4, sdl.Rect{X: 0, Y: 0, W: 120, H: 1000}},
		{"left", swiper.DirectionLeft, 100, sdl.Rect{X: 100, Y: 0, W: 300, H: 1000}},
		{"invalid", swiper.Direction(9), 100, sdl.Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PanelRect(tt.d, tt.position, 400, 1000))
		})
	}
}

func TestPanelViewFollowsAction(t *testing.T) {
	view := NewPanelView("top", swiper.DirectionDown, 0, slog.Default())
	a, err := swiper.NewAction(swiper.DirectionDown, []float64{0, 300, 1000}, 0.4, view)
	assert.NoError(t, err)

	a.Expand()
	assert.True(t, view.Dragging())
	a.Advance(16 * time.Millisecond)
	assert.Greater(t, view.Position(), 0.0)

	for a.Advance(16 * time.Millisecond) {
	}
	assert.False(t, view.Dragging())
	assert.Equal(t, 1000.0, view.Position())
	assert.Equal(t, 1.0, view.Friction())
	assert.Equal(t, sdl.Rect{W: 400, H: 1000}, view.Rect(400, 1000))
}

func TestButtons(t *testing.T) {
	buttons := LayoutButtons(800, 600)
	assert.Len(t, buttons, 2)
	assert.Equal(t, LabelExpand, buttons[0].Label)
	assert.Equal(t, IconCollapse, buttons[1].Icon)
	assert.Less(t, buttons[0].Rect.X+buttons[0].Rect.W, buttons[1].Rect.X)

	r := buttons[0].Rect
	b, ok := buttonAt(buttons, r.X, r.Y)
	assert.True(t, ok)
	assert.Equal(t, LabelExpand, b.Label)
	_, ok = buttonAt(buttons, r.X+r.W+1, r.Y)
	assert.False(t, ok, "gap between buttons")
	_, ok = buttonAt(buttons, 0, 0)
	assert.False(t, ok)

	icon := buttons[0].IconRect(UniformPadding(12))
	assert.Equal(t, r.H-24, icon.W)
	assert.Equal(t, icon.W, icon.H)
}

func TestPaddingInset(t *testing.T) {
	p := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	assert.Equal(t, sdl.Rect{X: 14, Y: 21, W: 94, H: 46}, p.Inset(sdl.Rect{X: 10, Y: 20, W: 100, H: 50}))
	assert.Equal(t, sdl.Rect{X: 4, Y: 1}, p.Inset(sdl.Rect{W: 2, H: 2}))
}
