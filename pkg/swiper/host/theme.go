package host

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and assets of the demo.
type Theme struct {
	PanelCollapsedColor colorful.Color // Top bar at its first step
	PanelExpandedColor  colorful.Color // Top bar at its last step
	SheetColor          colorful.Color // Bottom sheet
	BackgroundColor     sdl.Color      // Screen background color
	ButtonColor         sdl.Color      // Expand/collapse button background
	DisabledColor       sdl.Color      // Button background while the top bar is blocked
	TextColor           sdl.Color      // Label text color
	FontPath            string         // Optional TTF font for labels
	BackgroundImagePath string         // Optional background image
}

// DefaultTheme returns a light blue top bar darkening as it opens over a
// near-black screen.
func DefaultTheme() Theme {
	return Theme{
		PanelCollapsedColor: colorful.Color{R: 0.56, G: 0.79, B: 0.98},
		PanelExpandedColor:  colorful.Color{R: 0.05, G: 0.21, B: 0.55},
		SheetColor:          colorful.Color{R: 0.93, G: 0.93, B: 0.95},
		BackgroundColor:     sdl.Color{R: 18, G: 18, B: 20, A: 255},
		ButtonColor:         sdl.Color{R: 60, G: 60, B: 66, A: 255},
		DisabledColor:       sdl.Color{R: 36, G: 36, B: 40, A: 255},
		TextColor:           sdl.Color{R: 240, G: 240, B: 240, A: 255},
	}
}

// PanelColor blends the collapsed and expanded colors in HSV by friction.
func (t Theme) PanelColor(friction float64) sdl.Color {
	friction = min(max(friction, 0), 1)
	return toSDL(t.PanelCollapsedColor.BlendHsv(t.PanelExpandedColor, friction))
}

func toSDL(c colorful.Color) sdl.Color {
	r, g, b := c.Clamped().RGB255()
	return sdl.Color{R: r, G: g, B: b, A: 255}
}
