package swiper

import "time"

// PointerKind is the lifecycle stage of a pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample delivered by a host surface.
// X and Y are absolute surface coordinates. Time is a monotonic timestamp
// from an arbitrary epoch; only differences between events are used.
type PointerEvent struct {
	Kind PointerKind
	X    float64
	Y    float64
	Time time.Duration
}

// PointerHandler consumes pointer events. It returns true when the event
// was consumed and the surface should not process the gesture itself.
type PointerHandler func(ev PointerEvent) bool

// PointerSource is a host surface that produces pointer events for exactly
// one handler at a time.
type PointerSource interface {
	SetPointerHandler(h PointerHandler)
}
