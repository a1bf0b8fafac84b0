package host

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWidth  = 1024
	devHeight = 768
)

// Window wraps the SDL window and renderer the demo draws into.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
	logger          *slog.Logger
}

func openWindow(title string, width, height int32, winOpts WindowOptions, backgroundPath string, logger *slog.Logger) (*Window, error) {
	if width <= 0 || height <= 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger.Error("Failed to get display mode", "error", err)
			width, height = devWidth, devHeight
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = sizeFromEnv(constants.WindowWidthEnvVar, width, logger)
		height = sizeFromEnv(constants.WindowHeightEnvVar, height, logger)
	}

	logger.Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
		logger:   logger,
	}
	win.loadBackground(backgroundPath)
	return win, nil
}

func sizeFromEnv(name string, fallback int32, logger *slog.Logger) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger.Warn("Invalid window size; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground(path string) {
	if path == "" {
		return
	}
	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		w.logger.Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	w.Background = texture
}

// Size returns the logical size the demo lays out in.
func (w *Window) Size() (int32, int32) {
	width, height := w.Renderer.GetLogicalSize()
	if width == 0 || height == 0 {
		return w.Window.GetSize()
	}
	return width, height
}

func (w *Window) RenderBackground(color sdl.Color) {
	w.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	w.Renderer.Clear()
	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) Close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
