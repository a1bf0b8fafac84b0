package swiper

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper/internal"
)

// Dispatcher fans the pointer events of one surface out to its actions.
//
// Events are forwarded in registration order to every action that is not
// blocked. Each action handles the whole event before the next one sees it.
type Dispatcher struct {
	actions []*Action
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher with no actions.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		logger: internal.GetInternalLogger().With("component", "swiper.dispatcher"),
	}
}

// Attach makes the dispatcher the sole consumer of src's pointer events.
func (d *Dispatcher) Attach(src PointerSource) {
	src.SetPointerHandler(d.HandlePointer)
}

// AddAction registers an action. Registration order is dispatch order.
func (d *Dispatcher) AddAction(a *Action) {
	d.actions = append(d.actions, a)
}

// Actions returns the registered actions in dispatch order.
func (d *Dispatcher) Actions() []*Action {
	out := make([]*Action, len(d.actions))
	copy(out, d.actions)
	return out
}

// HandlePointer forwards ev to every unblocked action. It reports the
// event as consumed whenever at least one action is registered, even if
// all of them are blocked, so the surface does not also act on the
// gesture. With no actions the event falls through.
func (d *Dispatcher) HandlePointer(ev PointerEvent) bool {
	if len(d.actions) == 0 {
		return false
	}

	for _, a := range d.actions {
		if a.Blocked() {
			d.logger.Debug("skipping blocked action", "name", a.Name(), "kind", ev.Kind)
			continue
		}
		a.HandlePointer(ev)
	}
	return true
}

// Advance steps the settle animation of every action, blocked or not.
// It returns true while any action is still settling.
func (d *Dispatcher) Advance(dt time.Duration) bool {
	settling := false
	for _, a := range d.actions {
		if a.Advance(dt) {
			settling = true
		}
	}
	return settling
}

// Settling reports whether any action is animating.
func (d *Dispatcher) Settling() bool {
	for _, a := range d.actions {
		if a.Settling() {
			return true
		}
	}
	return false
}
