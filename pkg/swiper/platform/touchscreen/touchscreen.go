// Package touchscreen reads a Linux touchscreen through evdev and feeds it
// to swiper as pointer events. It is meant for handhelds that expose the
// panel as /dev/input/eventN without a window system in between.
package touchscreen

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/BrandonKowalski/swiper/pkg/swiper/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const eventBuffer = 64

type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Touchscreen is a swiper.PointerSource backed by an evdev device.
//
// Events are decoded on a reader goroutine and queued; Pump hands them to
// the handler on the caller's goroutine, so actions stay on the host loop.
type Touchscreen struct {
	dev        device
	translator *Translator

	events  chan swiper.PointerEvent
	done    chan struct{}
	closed  atomic.Bool
	wg      sync.WaitGroup
	handler swiper.PointerHandler
	logger  *slog.Logger
}

// Open opens the device at path and scales its absolute axes onto a
// width x height surface.
func Open(path string, width, height float64) (*Touchscreen, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open touchscreen %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to read axes of %s: %w", path, err)
	}

	x, okX := axisOf(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	y, okY := axisOf(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	if !okX || !okY {
		dev.Close()
		return nil, fmt.Errorf("%s does not report absolute positions", path)
	}

	name, _ := dev.Name()
	t := newTouchscreen(dev, NewTranslator(x, y, width, height))
	t.logger.Debug("touchscreen opened", "path", path, "name", name, "x", x, "y", y)
	return t, nil
}

func axisOf(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) (Axis, bool) {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}, true
		}
	}
	return Axis{}, false
}

func newTouchscreen(dev device, translator *Translator) *Touchscreen {
	t := &Touchscreen{
		dev:        dev,
		translator: translator,
		events:     make(chan swiper.PointerEvent, eventBuffer),
		done:       make(chan struct{}),
		logger:     internal.GetInternalLogger().With("component", "swiper.touchscreen"),
	}
	t.wg.Add(1)
	go t.read()
	return t
}

func (t *Touchscreen) read() {
	defer t.wg.Done()
	defer close(t.events)

	for {
		raw, err := t.dev.ReadOne()
		if err != nil {
			if !t.closed.Load() {
				t.logger.Error("touchscreen read failed", "error", err)
			}
			return
		}

		ev, ok := t.translator.Translate(raw)
		if !ok {
			continue
		}

		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// SetPointerHandler implements swiper.PointerSource.
func (t *Touchscreen) SetPointerHandler(h swiper.PointerHandler) {
	t.handler = h
}

// Pump delivers every queued event to the handler without blocking and
// returns how many were delivered. Call it once per frame.
func (t *Touchscreen) Pump() int {
	n := 0
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return n
			}
			if t.handler != nil {
				t.handler(ev)
			}
			n++
		default:
			return n
		}
	}
}

// Close stops the reader and closes the device.
func (t *Touchscreen) Close() error {
	if t.closed.Swap(true) {
		return errors.New("touchscreen already closed")
	}
	close(t.done)
	err := t.dev.Close()
	t.wg.Wait()
	return err
}
