package host

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const labelFontSize = 22

// textRenderer draws cached label textures. Without a font it draws
// nothing and the demo shows icons only.
type textRenderer struct {
	font  *ttf.Font
	color sdl.Color
	cache *TextureCache
}

func newTextRenderer(fontPath string, color sdl.Color) (*textRenderer, error) {
	t := &textRenderer{color: color, cache: NewTextureCache()}
	if fontPath == "" {
		return t, nil
	}

	font, err := ttf.OpenFont(fontPath, labelFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to open font %s: %w", fontPath, err)
	}
	t.font = font
	return t, nil
}

// drawCentered draws text centered in rect.
func (t *textRenderer) drawCentered(renderer *sdl.Renderer, text string, rect sdl.Rect) {
	if t.font == nil || text == "" {
		return
	}

	tex := t.cache.Get(text)
	if tex == nil {
		surface, err := t.font.RenderUTF8Blended(text, t.color)
		if err != nil {
			return
		}
		defer surface.Free()

		tex, err = renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return
		}
		t.cache.Set(text, tex)
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		return
	}
	renderer.Copy(tex, nil, &sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	})
}

func (t *textRenderer) Close() {
	t.cache.Destroy()
	if t.font != nil {
		t.font.Close()
	}
}
