// Package sdlinput turns SDL mouse and touch events into swiper pointer
// events.
package sdlinput

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	leftButtonMask = uint32(1) << (sdl.BUTTON_LEFT - 1)
	touchMouseID   = math.MaxUint32 // SDL_TOUCH_MOUSEID
)

// Surface is a swiper.PointerSource fed from an SDL event loop.
//
// The left mouse button and the first finger down both act as the
// pointer. Mouse events SDL synthesizes from touches are dropped so a
// finger is not reported twice.
type Surface struct {
	width, height float64
	handler       swiper.PointerHandler

	mouseDown  bool
	fingerDown bool
	finger     sdl.FingerID
}

// New creates a surface for a window of width x height. Finger positions,
// which SDL reports normalized, are scaled by this size.
func New(width, height float64) *Surface {
	return &Surface{width: width, height: height}
}

// SetPointerHandler implements swiper.PointerSource.
func (s *Surface) SetPointerHandler(h swiper.PointerHandler) {
	s.handler = h
}

// HandleEvent translates ev and delivers it. It returns the handler's
// answer, or false when ev is not a pointer event.
func (s *Surface) HandleEvent(ev sdl.Event) bool {
	p, ok := s.translate(ev)
	if !ok || s.handler == nil {
		return false
	}
	return s.handler(p)
}

func (s *Surface) translate(ev sdl.Event) (swiper.PointerEvent, bool) {
	switch e := ev.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT || s.fingerDown {
			return swiper.PointerEvent{}, false
		}
		kind := swiper.PointerPress
		if e.Type == sdl.MOUSEBUTTONUP {
			if !s.mouseDown {
				return swiper.PointerEvent{}, false
			}
			kind = swiper.PointerRelease
		}
		s.mouseDown = kind == swiper.PointerPress
		return pointer(kind, float64(e.X), float64(e.Y), e.Timestamp), true

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID || !s.mouseDown || e.State&leftButtonMask == 0 {
			return swiper.PointerEvent{}, false
		}
		return pointer(swiper.PointerMove, float64(e.X), float64(e.Y), e.Timestamp), true

	case *sdl.TouchFingerEvent:
		return s.touch(e)
	}
	return swiper.PointerEvent{}, false
}

func (s *Surface) touch(e *sdl.TouchFingerEvent) (swiper.PointerEvent, bool) {
	x, y := float64(e.X)*s.width, float64(e.Y)*s.height

	switch e.Type {
	case sdl.FINGERDOWN:
		if s.fingerDown || s.mouseDown {
			return swiper.PointerEvent{}, false
		}
		s.fingerDown = true
		s.finger = e.FingerID
		return pointer(swiper.PointerPress, x, y, e.Timestamp), true
	case sdl.FINGERMOTION:
		if !s.fingerDown || e.FingerID != s.finger {
			return swiper.PointerEvent{}, false
		}
		return pointer(swiper.PointerMove, x, y, e.Timestamp), true
	case sdl.FINGERUP:
		if !s.fingerDown || e.FingerID != s.finger {
			return swiper.PointerEvent{}, false
		}
		s.fingerDown = false
		return pointer(swiper.PointerRelease, x, y, e.Timestamp), true
	}
	return swiper.PointerEvent{}, false
}

func pointer(kind swiper.PointerKind, x, y float64, ticks uint32) swiper.PointerEvent {
	return swiper.PointerEvent{Kind: kind, X: x, Y: y, Time: time.Duration(ticks) * time.Millisecond}
}
