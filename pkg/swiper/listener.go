package swiper

// Listener observes the drag lifecycle of an Action.
//
// position is in step space (the same coordinates as the step list) and
// friction is the normalized progress between the first and last step,
// 0 at the first step and 1 at the last. Listeners typically drive the size,
// color or opacity of the panel from friction.
//
// OnDragEnd receives the step the action settled on and that step's
// friction, so a collapse ends with 0 and a full expand with 1. It is not
// a constant 1.0.
type Listener interface {
	OnDragStart(position, friction float64)
	OnDrag(position, friction float64)
	OnDragEnd(position, friction float64)
}

// ListenerFuncs adapts three optional callbacks to a Listener.
// Nil callbacks are skipped.
type ListenerFuncs struct {
	Start func(position, friction float64)
	Drag  func(position, friction float64)
	End   func(position, friction float64)
}

func (l ListenerFuncs) OnDragStart(position, friction float64) {
	if l.Start != nil {
		l.Start(position, friction)
	}
}

func (l ListenerFuncs) OnDrag(position, friction float64) {
	if l.Drag != nil {
		l.Drag(position, friction)
	}
}

func (l ListenerFuncs) OnDragEnd(position, friction float64) {
	if l.End != nil {
		l.End(position, friction)
	}
}

// multiListener fans callbacks out in order.
type multiListener []Listener

func (m multiListener) OnDragStart(position, friction float64) {
	for _, l := range m {
		l.OnDragStart(position, friction)
	}
}

func (m multiListener) OnDrag(position, friction float64) {
	for _, l := range m {
		l.OnDrag(position, friction)
	}
}

func (m multiListener) OnDragEnd(position, friction float64) {
	for _, l := range m {
		l.OnDragEnd(position, friction)
	}
}

// Listeners combines several listeners into one that calls each in order.
// Nil entries are dropped.
func Listeners(ls ...Listener) Listener {
	out := make(multiListener, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
