package swiper

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper/internal"
	"go.uber.org/atomic"
)

// State is the drag lifecycle stage of an Action.
type State int

const (
	StateIdle     State = iota // Resting on a step
	StateDragging              // Following the pointer
	StateSettling              // Animating toward a step after release or a push
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Action drags one panel along one axis between a list of steps.
//
// Pointer events arrive through HandlePointer, usually from a Dispatcher.
// A press starts a drag, moves track the pointer within the neighbourhood of
// the current step, and a release resolves a target step from the position
// and release velocity and starts a settle toward it. The settle advances
// only when the host calls Advance, once per frame.
//
// An Action is not safe for concurrent use, except for SetBlocked and
// Blocked which may be called from any goroutine.
type Action struct {
	name      string
	direction Direction
	steps     []float64
	threshold float64

	step          int
	currentStep   float64 // step value the drag began from
	position      float64
	startPosition float64
	start         PointerEvent
	state         State

	blocked  atomic.Bool
	listener Listener

	tracker *VelocityTracker
	settler *Settler
	logger  *slog.Logger
}

// NewAction creates an action resting on the first step.
//
// Steps must hold at least two values, strictly ascending for Right and
// Down or strictly descending for Left and Up, and threshold must lie in
// [0, 1]. Otherwise a *ConfigurationError is returned. The step slice is
// copied. listener may be nil.
func NewAction(direction Direction, steps []float64, threshold float64, listener Listener) (*Action, error) {
	if err := validate("new", direction, steps, threshold); err != nil {
		return nil, err
	}

	a := &Action{
		direction: direction,
		steps:     slices.Clone(steps),
		threshold: threshold,
		listener:  listener,
		tracker:   NewVelocityTracker(),
		logger:    internal.GetInternalLogger().With("component", "swiper.action"),
	}
	a.settler = NewSettler(SettlerOptions{}, a.settleFrame, a.settled)
	a.currentStep = a.steps[0]
	a.position = a.steps[0]
	return a, nil
}

// Reconfigure replaces direction, steps and threshold together. The tuple
// is validated as a whole; on error the action is unchanged.
//
// A running drag or settle is abandoned without callbacks. The current
// step index is kept (clamped to the new list) and the tracked position
// moves to that step.
func (a *Action) Reconfigure(direction Direction, steps []float64, threshold float64) error {
	if err := validate("reconfigure", direction, steps, threshold); err != nil {
		return err
	}

	a.settler.abort()
	a.direction = direction
	a.steps = slices.Clone(steps)
	a.threshold = threshold
	a.step = min(a.step, len(a.steps)-1)
	a.currentStep = a.steps[a.step]
	a.position = a.currentStep
	a.state = StateIdle
	a.tracker.Reset()

	a.logger.Debug("reconfigured", "name", a.name, "direction", direction, "steps", a.steps, "threshold", threshold)
	return nil
}

// SetDirection changes the direction, re-validating the existing steps
// against it.
func (a *Action) SetDirection(direction Direction) error {
	return a.Reconfigure(direction, a.steps, a.threshold)
}

// SetSteps replaces the step list. For Left and Up the values have to be
// descending, for Right and Down ascending, e.g. [0, -300, -600] for Left.
func (a *Action) SetSteps(steps []float64) error {
	return a.Reconfigure(a.direction, steps, a.threshold)
}

// SetThreshold sets the fraction of the distance to the next step a drag
// must cover to commit to it. Shorter drags return to the step they began on.
func (a *Action) SetThreshold(threshold float64) error {
	return a.Reconfigure(a.direction, a.steps, threshold)
}

// SetSettlerOptions changes how settles are animated. A running settle is
// abandoned.
func (a *Action) SetSettlerOptions(opts SettlerOptions) {
	a.settler.abort()
	if a.state == StateSettling {
		a.state = StateIdle
	}
	a.settler = NewSettler(opts, a.settleFrame, a.settled)
}

// SetListener replaces the listener. nil removes it.
func (a *Action) SetListener(l Listener) {
	a.listener = l
}

// SetName labels the action in log output.
func (a *Action) SetName(name string) {
	a.name = name
}

func (a *Action) Name() string {
	return a.name
}

// SetBlocked sets whether dispatchers skip this action. It is the only
// state shared between actions; listeners of one action typically block
// another while the first one is extended.
func (a *Action) SetBlocked(blocked bool) {
	a.blocked.Store(blocked)
}

// Blocked reports whether dispatchers skip this action.
func (a *Action) Blocked() bool {
	return a.blocked.Load()
}

func (a *Action) Direction() Direction {
	return a.direction
}

// Steps returns a copy of the step list.
func (a *Action) Steps() []float64 {
	return slices.Clone(a.steps)
}

func (a *Action) Threshold() float64 {
	return a.threshold
}

// Step returns the index of the last settled step.
func (a *Action) Step() int {
	return a.step
}

// Position returns the tracked position, which may be mid-animation.
func (a *Action) Position() float64 {
	return a.position
}

func (a *Action) State() State {
	return a.state
}

// Dragging reports whether a drag is active. It stays true while the
// action settles after release.
func (a *Action) Dragging() bool {
	return a.state != StateIdle
}

// Settling reports whether a settle animation is running.
func (a *Action) Settling() bool {
	return a.state == StateSettling
}

// IsExtended returns true when the action rests beyond its first step.
func (a *Action) IsExtended() bool {
	return a.step > 0
}

// Friction returns the normalized progress of position between the first
// and the last step.
func (a *Action) Friction(position float64) float64 {
	return math.Abs((position - a.steps[0]) / (a.steps[len(a.steps)-1] - a.steps[0]))
}

// Expand settles the action on its last step.
func (a *Action) Expand() {
	_ = a.PushToStep(len(a.steps) - 1)
}

// Collapse settles the action on its first step.
func (a *Action) Collapse() {
	_ = a.PushToStep(0)
}

// StepForward settles on the step after the current one (or after the
// target of a running settle), staying on the last step.
func (a *Action) StepForward() {
	_ = a.PushToStep(min(a.targetIndex()+1, len(a.steps)-1))
}

// StepBack settles on the step before the current one, staying on the
// first step.
func (a *Action) StepBack() {
	_ = a.PushToStep(max(a.targetIndex()-1, 0))
}

// PushToStep settles the action on steps[index] without pointer input.
//
// From idle it fires OnDragStart first. A running settle is retargeted and
// a pointer drag in progress is abandoned; further pointer events are
// ignored until the next press. Pushing to the current step still runs a
// zero-distance settle that ends with OnDragEnd.
func (a *Action) PushToStep(index int) error {
	if index < 0 || index >= len(a.steps) {
		return ErrStepIndex
	}

	switch a.state {
	case StateIdle:
		a.currentStep = a.steps[a.step]
		a.state = StateDragging
		a.notifyStart(a.currentStep, 0)
	case StateSettling:
		a.settler.Cancel()
	}

	target := a.steps[index]
	a.logger.Debug("push to step", "name", a.name, "index", index, "target", target, "from", a.position)
	a.settle(target, (target-a.position)*a.settler.SlowFactor())
	return nil
}

// Advance steps a running settle by dt. It returns true while the action
// is still settling.
func (a *Action) Advance(dt time.Duration) bool {
	if a.state != StateSettling {
		return false
	}
	a.settler.Step(dt)
	// A listener may have pushed the action again from OnDragEnd.
	return a.state == StateSettling
}

// HandlePointer feeds one pointer event into the drag state machine. It
// always reports the event as consumed.
func (a *Action) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		a.press(ev)
	case PointerMove:
		a.move(ev)
	case PointerRelease:
		a.release(ev)
	}
	return true
}

func (a *Action) press(ev PointerEvent) {
	switch a.state {
	case StateIdle:
		a.currentStep = a.steps[a.step]
		a.state = StateDragging
		a.notifyStart(a.currentStep, 0)
	case StateSettling:
		a.settler.Cancel()
		a.state = StateDragging
	}

	a.tracker.Reset()
	a.tracker.Add(ev)
	a.start = ev
	a.startPosition = a.position
	a.logger.Debug("press", "name", a.name, "position", a.position, "step", a.step)
}

func (a *Action) move(ev PointerEvent) {
	if a.state != StateDragging {
		return
	}
	a.tracker.Add(ev)
	a.track(ev)
}

// track moves the position with the pointer as long as it stays between
// the steps adjacent to the current one. Moves beyond them are dropped.
func (a *Action) track(ev PointerEvent) {
	diff := a.direction.axis(ev.X, ev.Y) - a.direction.axis(a.start.X, a.start.Y) + a.startPosition

	lo, hi := a.neighbourhood()
	if diff < lo || diff > hi {
		a.logger.Debug("move outside neighbourhood ignored", "name", a.name, "position", diff, "lo", lo, "hi", hi)
		return
	}
	a.position = diff
	a.notifyDrag(diff, a.Friction(diff))
}

// neighbourhood returns the closed range spanned by the steps on either
// side of the current one, clamped at the ends of the list.
func (a *Action) neighbourhood() (lo, hi float64) {
	first := a.steps[max(a.step-1, 0)]
	last := a.steps[min(a.step+1, len(a.steps)-1)]
	return math.Min(first, last), math.Max(first, last)
}

func (a *Action) release(ev PointerEvent) {
	if a.state != StateDragging {
		return
	}
	a.tracker.Add(ev)
	a.track(ev)

	slow := a.settler.SlowFactor()
	velocity := a.tracker.AxisVelocity(a.direction)
	projected := a.position + velocity/slow

	// Too slow to carry the panel to the adjacent step on its own: aim at
	// whatever the threshold decides instead.
	candidate := a.resolve(projected, false)
	if math.Abs(velocity) < math.Abs(candidate-a.position)*slow {
		velocity = (a.resolve(projected, true) - a.position) * slow
	}

	target := a.resolve(a.position+velocity/slow, true)
	a.logger.Debug("release", "name", a.name, "position", a.position, "velocity", velocity, "target", target)
	a.settle(target, velocity)
}

// resolve picks the step a settle from position should end on: the step
// adjacent to the current one on the side position lies on. With
// checkThreshold, a position that has not covered threshold of the distance
// to that step resolves back to the current step.
func (a *Action) resolve(position float64, checkThreshold bool) float64 {
	last := len(a.steps) - 1
	current := a.steps[a.step]

	var next float64
	if a.step == last {
		if a.direction.before(current, position) {
			next = current
		} else {
			next = a.steps[a.step-1]
		}
	} else {
		if a.direction.before(position, current) {
			next = a.steps[max(a.step-1, 0)]
		} else {
			next = a.steps[a.step+1]
		}
	}

	if checkThreshold && next != current &&
		math.Abs(a.currentStep-position) < math.Abs(next-current)*a.threshold {
		return current
	}
	return next
}

func (a *Action) settle(target, velocity float64) {
	lo := math.Min(a.currentStep, math.Min(target, a.position))
	hi := math.Max(a.currentStep, math.Max(target, a.position))
	a.state = StateSettling
	a.settler.Start(a.position, velocity, target, lo, hi)
}

func (a *Action) settleFrame(value float64) {
	a.position = value
	a.notifyDrag(value, a.Friction(value))
}

func (a *Action) settled(target float64) {
	if i := slices.Index(a.steps, target); i >= 0 {
		a.step = i
	}
	a.position = target
	a.state = StateIdle
	a.logger.Debug("settled", "name", a.name, "step", a.step, "position", target)
	a.notifyEnd(target, a.Friction(target))
}

// targetIndex is the step a running settle is heading for, or the
// current step.
func (a *Action) targetIndex() int {
	if a.state == StateSettling {
		if i := slices.Index(a.steps, a.settler.Target()); i >= 0 {
			return i
		}
	}
	return a.step
}

func (a *Action) notifyStart(position, friction float64) {
	if a.listener != nil {
		a.listener.OnDragStart(position, friction)
	}
}

func (a *Action) notifyDrag(position, friction float64) {
	if a.listener != nil {
		a.listener.OnDrag(position, friction)
	}
}

func (a *Action) notifyEnd(position, friction float64) {
	if a.listener != nil {
		a.listener.OnDragEnd(position, friction)
	}
}
