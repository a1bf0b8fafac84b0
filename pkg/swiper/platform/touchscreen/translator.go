package touchscreen

import (
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/holoplot/go-evdev"
)

// Axis is the raw range a touchscreen reports on one absolute axis.
type Axis struct {
	Min int32
	Max int32
}

func (a Axis) scale(raw int32, extent float64) float64 {
	if a.Max <= a.Min {
		return float64(raw)
	}
	return float64(raw-a.Min) / float64(a.Max-a.Min) * extent
}

// Translator turns raw evdev events into pointer events. Axis and touch
// changes are collected until SYN_REPORT, which emits at most one event
// for the whole frame.
//
// Both single-touch (ABS_X/ABS_Y, BTN_TOUCH) and multi-touch (slot 0 of
// ABS_MT_POSITION_X/Y, ABS_MT_TRACKING_ID) devices are handled.
type Translator struct {
	x, y          Axis
	width, height float64

	rawX, rawY int32
	down       bool
	reported   bool // contact state at the last SYN_REPORT
	moved      bool
	slot       int32
}

// NewTranslator creates a translator that scales the raw axis ranges onto
// a width x height surface.
func NewTranslator(x, y Axis, width, height float64) *Translator {
	return &Translator{x: x, y: y, width: width, height: height}
}

// Translate feeds one raw event. It returns a pointer event when ev
// completes a frame that changed the contact or its position.
func (t *Translator) Translate(ev *evdev.InputEvent) (swiper.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH || ev.Code == evdev.BTN_LEFT {
			t.down = ev.Value != 0
		}
	case evdev.EV_ABS:
		t.abs(ev.Code, ev.Value)
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return t.report(timestamp(ev))
		}
	}
	return swiper.PointerEvent{}, false
}

func (t *Translator) abs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		t.slot = value
	case evdev.ABS_X:
		t.setX(value)
	case evdev.ABS_Y:
		t.setY(value)
	case evdev.ABS_MT_POSITION_X:
		if t.slot == 0 {
			t.setX(value)
		}
	case evdev.ABS_MT_POSITION_Y:
		if t.slot == 0 {
			t.setY(value)
		}
	case evdev.ABS_MT_TRACKING_ID:
		if t.slot == 0 {
			t.down = value >= 0
		}
	}
}

func (t *Translator) setX(v int32) {
	if v != t.rawX {
		t.rawX = v
		t.moved = true
	}
}

func (t *Translator) setY(v int32) {
	if v != t.rawY {
		t.rawY = v
		t.moved = true
	}
}

func (t *Translator) report(at time.Duration) (swiper.PointerEvent, bool) {
	ev := swiper.PointerEvent{
		X:    t.x.scale(t.rawX, t.width),
		Y:    t.y.scale(t.rawY, t.height),
		Time: at,
	}
	moved := t.moved
	t.moved = false

	switch {
	case t.down && !t.reported:
		ev.Kind = swiper.PointerPress
	case !t.down && t.reported:
		ev.Kind = swiper.PointerRelease
	case t.down && moved:
		ev.Kind = swiper.PointerMove
	default:
		return swiper.PointerEvent{}, false
	}
	t.reported = t.down
	return ev, true
}

func timestamp(ev *evdev.InputEvent) time.Duration {
	return time.Duration(ev.Time.Sec)*time.Second + time.Duration(ev.Time.Usec)*time.Microsecond
}
