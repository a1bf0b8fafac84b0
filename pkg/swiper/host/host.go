// Package host runs the swiper demo: a top bar pulled down from the top
// edge and a sheet pulled up from the bottom, driven by mouse, touch,
// evdev touchscreens, arrow keys and game controller d-pads.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/BrandonKowalski/swiper/pkg/swiper/layout"
	"github.com/BrandonKowalski/swiper/pkg/swiper/platform/sdlinput"
	"github.com/BrandonKowalski/swiper/pkg/swiper/platform/touchscreen"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const iconSize = 40

// Options configures Run. Zero values select the defaults.
type Options struct {
	Title         string
	Width         int32 // Zero uses the display size
	Height        int32
	WindowOptions WindowOptions
	LayoutPath    string // TOML layout; the built-in two-panel layout when empty
	KeyPanel      string // Panel the buttons and d-pad drive; the first panel when empty
	TouchDevice   string // evdev touchscreen, e.g. /dev/input/event1
	FontPath      string // TTF font for labels; icons only when empty
	Locale        string
	LogPath       string
	LogLevel      string // debug, info, warn or error
	Theme         Theme
}

// OptionsFromEnv reads the options the demo takes from the environment.
func OptionsFromEnv() Options {
	theme := DefaultTheme()
	theme.FontPath = os.Getenv(constants.FontPathEnvVar)

	return Options{
		Title:       "swiper",
		LayoutPath:  os.Getenv(constants.LayoutPathEnvVar),
		TouchDevice: os.Getenv(constants.TouchDeviceEnvVar),
		Locale:      os.Getenv(constants.LocaleEnvVar),
		LogPath:     os.Getenv(constants.LogPathEnvVar),
		LogLevel:    os.Getenv(constants.LogLevelEnvVar),
		Theme:       theme,
	}
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "swiper"
	}
	if o.WindowOptions.IsZero() {
		if constants.IsDevMode() {
			o.WindowOptions = WindowOptions{Resizable: true}
		} else {
			o.WindowOptions = WindowOptions{FullscreenDesktop: true}
		}
	}
	if o.Theme == (Theme{}) {
		o.Theme = DefaultTheme()
	}
	return o
}

type app struct {
	opts   Options
	win    *Window
	set    *layout.Set
	views  []*PanelView
	key    *swiper.Action
	keys   *KeyRepeat
	labels *Labels
	text   *textRenderer

	surface     *sdlinput.Surface
	touch       *touchscreen.Touchscreen
	controllers []*sdl.GameController

	buttons []Button
	icons   *TextureCache
	logger  *slog.Logger
}

// Run opens the demo window and runs until the window is closed, Escape
// is pressed or ctx is cancelled. The caller closes the logger.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	if opts.LogPath != "" {
		swiper.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		swiper.SetRawLogLevel(opts.LogLevel)
	}
	logger := swiper.GetLogger().With("component", "host")

	lay := layout.Default()
	if opts.LayoutPath != "" {
		loaded, err := layout.Load(opts.LayoutPath)
		if err != nil {
			return err
		}
		lay = loaded
	}

	if err := initSDL(); err != nil {
		return err
	}
	defer quitSDL()

	win, err := openWindow(opts.Title, opts.Width, opts.Height, opts.WindowOptions, opts.Theme.BackgroundImagePath, logger)
	if err != nil {
		return err
	}
	defer win.Close()

	a, err := newApp(opts, win, lay, logger)
	if err != nil {
		return err
	}
	defer a.close()

	return a.loop(ctx)
}

func initSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)
	return nil
}

func quitSDL() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

func newApp(opts Options, win *Window, lay layout.Layout, logger *slog.Logger) (*app, error) {
	width, height := win.Size()

	a := &app{
		opts:    opts,
		win:     win,
		keys:    NewKeyRepeat(),
		buttons: LayoutButtons(width, height),
		icons:   NewTextureCache(),
		logger:  logger,
	}

	listeners := make(map[string]swiper.Listener, len(lay.Panels))
	for _, p := range lay.Panels {
		extent := float64(width)
		if p.Direction.Vertical() {
			extent = float64(height)
		}
		view := NewPanelView(p.Name, p.Direction, p.Steps[0]*extent, logger)
		a.views = append(a.views, view)
		listeners[p.Name] = view
	}

	set, err := lay.Build(float64(width), float64(height), listeners)
	if err != nil {
		return nil, err
	}
	a.set = set

	keyPanel := opts.KeyPanel
	if keyPanel == "" {
		keyPanel = set.Names()[0]
	}
	if a.key = set.Action(keyPanel); a.key == nil {
		return nil, fmt.Errorf("unknown key panel %q", keyPanel)
	}

	a.surface = sdlinput.New(float64(width), float64(height))
	set.Dispatcher.Attach(a.surface)

	if a.labels, err = NewLabels(opts.Locale, logger); err != nil {
		return nil, err
	}
	if a.text, err = newTextRenderer(opts.Theme.FontPath, opts.Theme.TextColor); err != nil {
		logger.Warn("Labels disabled", "error", err)
		a.text, _ = newTextRenderer("", opts.Theme.TextColor)
	}

	for _, b := range a.buttons {
		a.loadIcon(b.Icon)
	}

	if opts.TouchDevice != "" {
		ts, err := touchscreen.Open(opts.TouchDevice, float64(width), float64(height))
		if err != nil {
			logger.Error("Touchscreen unavailable", "device", opts.TouchDevice, "error", err)
		} else {
			a.touch = ts
			set.Dispatcher.Attach(ts)
		}
	}

	logger.Info("Demo started", "width", width, "height", height, "panels", set.Names(),
		"key_panel", keyPanel, "language", a.labels.Language().String())
	return a, nil
}

func (a *app) loop(ctx context.Context) error {
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if !a.handleEvent(ev) {
				return nil
			}
		}

		if a.touch != nil {
			a.touch.Pump()
		}
		if d, ok := a.keys.Update(); ok {
			StepToward(a.key, d)
		}

		now := time.Now()
		a.set.Dispatcher.Advance(now.Sub(last))
		last = now

		a.render()
		a.win.Present()
	}
}

// handleEvent returns false when the demo should exit.
func (a *app) handleEvent(ev sdl.Event) bool {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return true
		}
		down := e.Type == sdl.KEYDOWN
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE:
			return !down
		case sdl.K_SPACE, sdl.K_RETURN:
			if down {
				a.toggle()
			}
			return true
		}
		if d, ok := KeyDirection(e.Keysym.Sym); ok && a.keys.SetHeld(d, down) {
			StepToward(a.key, d)
		}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			if c := sdl.GameControllerOpen(int(e.Which)); c != nil {
				a.controllers = append(a.controllers, c)
				a.logger.Debug("Controller connected", "name", c.Name())
			}
		}

	case *sdl.ControllerButtonEvent:
		down := e.Type == sdl.CONTROLLERBUTTONDOWN
		if sdl.GameControllerButton(e.Button) == sdl.CONTROLLER_BUTTON_A && down {
			a.toggle()
			return true
		}
		if d, ok := ButtonDirection(e.Button); ok && a.keys.SetHeld(d, down) {
			StepToward(a.key, d)
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			if b, ok := buttonAt(a.buttons, e.X, e.Y); ok {
				a.press(b)
				return true
			}
		}
		a.surface.HandleEvent(ev)

	case *sdl.TouchFingerEvent:
		if e.Type == sdl.FINGERDOWN {
			width, height := a.win.Size()
			x, y := int32(e.X*float32(width)), int32(e.Y*float32(height))
			if _, ok := buttonAt(a.buttons, x, y); ok {
				// The click SDL synthesizes from this touch presses the button.
				return true
			}
		}
		a.surface.HandleEvent(ev)

	default:
		a.surface.HandleEvent(ev)
	}
	return true
}

func (a *app) press(b Button) {
	if a.key.Blocked() {
		a.logger.Debug("Button ignored while blocked", "button", b.Label)
		return
	}
	switch b.Label {
	case LabelExpand:
		a.key.Expand()
	case LabelCollapse:
		a.key.Collapse()
	}
}

func (a *app) toggle() {
	if a.key.Blocked() {
		return
	}
	if a.key.IsExtended() {
		a.key.Collapse()
	} else {
		a.key.Expand()
	}
}

func (a *app) render() {
	r := a.win.Renderer
	width, height := a.win.Size()
	theme := a.opts.Theme

	a.win.RenderBackground(theme.BackgroundColor)
	a.renderButtons()

	for _, v := range a.views {
		color := toSDL(theme.SheetColor)
		if v.Name == a.key.Name() {
			color = theme.PanelColor(v.Friction())
		}
		rect := v.Rect(width, height)
		r.SetDrawColor(color.R, color.G, color.B, color.A)
		r.FillRect(&rect)
	}

	status := a.labels.Step(a.key.Step(), len(a.key.Steps()))
	if a.key.Blocked() {
		status = a.labels.Get(LabelBlocked)
	}
	a.text.drawCentered(r, status, sdl.Rect{X: 0, Y: height - 3*handleSize, W: width, H: handleSize})
}

func (a *app) renderButtons() {
	r := a.win.Renderer
	theme := a.opts.Theme
	padding := UniformPadding(12)

	for _, b := range a.buttons {
		color := theme.ButtonColor
		if a.key.Blocked() {
			color = theme.DisabledColor
		}
		r.SetDrawColor(color.R, color.G, color.B, color.A)
		r.FillRect(&b.Rect)

		iconRect := b.IconRect(padding)
		if tex := a.icons.Get(b.Icon); tex != nil {
			r.Copy(tex, nil, &iconRect)
		}

		labelRect := padding.Inset(b.Rect)
		labelRect.X += iconRect.W
		labelRect.W -= iconRect.W
		a.text.drawCentered(r, a.labels.Get(b.Label), labelRect)
	}
}

func (a *app) loadIcon(name string) {
	rgba, err := RasterizeIcon(name, iconSize)
	if err != nil {
		a.logger.Error("Failed to rasterize icon", "icon", name, "error", err)
		return
	}
	tex, err := iconTexture(a.win.Renderer, rgba)
	if err != nil {
		a.logger.Error("Failed to upload icon", "icon", name, "error", err)
		return
	}
	a.icons.Set(name, tex)
}

func (a *app) close() {
	var errs []error
	if a.touch != nil {
		errs = append(errs, a.touch.Close())
	}
	for _, c := range a.controllers {
		c.Close()
	}
	a.icons.Destroy()
	a.text.Close()
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn("Shutdown", "error", err)
	}
}
