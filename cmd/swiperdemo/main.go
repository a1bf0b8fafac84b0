// Command swiperdemo shows two swipe panels: a bar pulled down from the top
// and a sheet pulled up from the bottom.
//
// Configuration comes from the environment: SWIPER_LAYOUT (TOML layout
// file), SWIPER_TOUCH_DEVICE (evdev touchscreen), SWIPER_LOCALE,
// SWIPER_FONT (TTF font for labels), SWIPER_LOG and SWIPER_LOG_LEVEL, and
// SWIPER_DEBUG for drag tracing. ENVIRONMENT=DEV opens a window instead of
// going fullscreen; WINDOW_WIDTH and WINDOW_HEIGHT size it.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/BrandonKowalski/swiper/pkg/swiper/host"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := host.Run(ctx, host.OptionsFromEnv())
	stop()
	if err != nil {
		swiper.GetLogger().Error("swiperdemo failed", "error", err)
	}
	swiper.CloseLogger()

	if err != nil {
		os.Exit(1)
	}
}
