package host

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFS embed.FS

const (
	IconExpand   = "expand"
	IconCollapse = "collapse"
)

// RasterizeIcon renders the named embedded icon into a size x size image.
func RasterizeIcon(name string, size int) (*image.RGBA, error) {
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("unknown icon %q: %w", name, err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return rgba, nil
}

// iconTexture uploads a rasterized icon. The pixels are copied by SDL, so
// rgba may be discarded afterwards.
func iconTexture(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	b := rgba.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create icon surface: %w", err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("failed to create icon texture: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}
