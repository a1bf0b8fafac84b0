package swiper

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/charmbracelet/harmonica"
)

// Curve integrates one settle frame.
type Curve interface {
	// Step advances value and velocity by dt toward target.
	Step(value, velocity, target float64, dt time.Duration) (float64, float64)
	// AtRest reports whether the motion has run out before reaching target.
	AtRest(value, velocity, target float64) bool
}

// DecayCurve is a fling: velocity decays exponentially and the position is
// integrated in closed form, so frame length does not change the path.
type DecayCurve struct {
	Friction     float64 // Decay rate per second
	StopVelocity float64 // Speed below which the fling is at rest
}

// DefaultDecayCurve returns the fling tuning used when none is configured.
func DefaultDecayCurve() DecayCurve {
	return DecayCurve{Friction: constants.DefaultFriction, StopVelocity: constants.DefaultStopVelocity}
}

func (c DecayCurve) friction() float64 {
	if c.Friction <= 0 {
		return constants.DefaultFriction
	}
	return c.Friction
}

func (c DecayCurve) Step(value, velocity, _ float64, dt time.Duration) (float64, float64) {
	k := c.friction()
	next := velocity * math.Exp(-k*dt.Seconds())
	return value + (velocity-next)/k, next
}

func (c DecayCurve) AtRest(_, velocity, _ float64) bool {
	return math.Abs(velocity) < c.StopVelocity
}

// MinVelocity is the smallest start speed that carries a fling across
// distance before it slows below StopVelocity.
func (c DecayCurve) MinVelocity(distance float64) float64 {
	return math.Abs(distance)*c.friction() + c.StopVelocity
}

// minVelocityCurve is implemented by curves that can come to rest short of
// the target when started too slowly.
type minVelocityCurve interface {
	MinVelocity(distance float64) float64
}

// SpringCurve pulls the value toward the target with a damped spring.
type SpringCurve struct {
	Frequency    float64 // Angular frequency
	Damping      float64 // Damping ratio, 1 is critically damped
	StopVelocity float64
}

// DefaultSpringCurve returns a critically damped spring.
func DefaultSpringCurve() SpringCurve {
	return SpringCurve{
		Frequency:    constants.DefaultSpringFrequency,
		Damping:      constants.DefaultSpringDamping,
		StopVelocity: constants.DefaultStopVelocity,
	}
}

func (c SpringCurve) Step(value, velocity, target float64, dt time.Duration) (float64, float64) {
	spring := harmonica.NewSpring(dt.Seconds(), c.Frequency, c.Damping)
	return spring.Update(value, velocity, target)
}

func (c SpringCurve) AtRest(value, velocity, target float64) bool {
	return math.Abs(velocity) < c.StopVelocity && math.Abs(value-target) < 0.5
}

// SettlerOptions tunes a Settler. Zero values fall back to the defaults.
type SettlerOptions struct {
	Curve      Curve
	SlowFactor float64
}

func (o SettlerOptions) withDefaults() SettlerOptions {
	if o.Curve == nil {
		o.Curve = DefaultDecayCurve()
	}
	if o.SlowFactor <= 0 {
		o.SlowFactor = constants.SlowFactor
	}
	return o
}

// Settler animates a position toward a target step, one host frame at a time.
//
// The running value is clamped to the bounds given to Start. A run ends
// naturally once the value reaches the target or the curve comes to rest;
// either way the value snaps to the target, is reported through onFrame, and
// onSettle fires with the target. Cancel ends a run without onSettle.
type Settler struct {
	opts SettlerOptions

	value    float64
	velocity float64
	target   float64
	origin   float64
	lo, hi   float64
	running  bool

	onFrame  func(value float64)
	onSettle func(target float64)
}

// NewSettler creates an idle settler.
func NewSettler(opts SettlerOptions, onFrame func(value float64), onSettle func(target float64)) *Settler {
	return &Settler{
		opts:     opts.withDefaults(),
		onFrame:  onFrame,
		onSettle: onSettle,
	}
}

// Start begins a run from value toward target. A velocity that does not
// point at the target is replaced by the distance times the slow factor.
// For curves with a MinVelocity the speed is then raised to at least that,
// so the run does not stall short of the target and jump the rest.
// Bounds are reordered if needed and widened to include value and target.
func (s *Settler) Start(value, velocity, target, lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	distance := target - value
	switch {
	case distance == 0:
		velocity = 0
	case velocity == 0 || math.Signbit(velocity) != math.Signbit(distance):
		velocity = distance * s.opts.SlowFactor
	}
	if c, ok := s.opts.Curve.(minVelocityCurve); ok && distance != 0 {
		if floor := c.MinVelocity(distance); math.Abs(velocity) < floor {
			velocity = math.Copysign(floor, distance)
		}
	}

	s.value = value
	s.velocity = velocity
	s.target = target
	s.origin = value
	s.lo = math.Min(lo, math.Min(value, target))
	s.hi = math.Max(hi, math.Max(value, target))
	s.running = true
}

// Step advances a running settle by dt. It returns true while the run
// continues.
func (s *Settler) Step(dt time.Duration) bool {
	if !s.running {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	next, velocity := s.opts.Curve.Step(s.value, s.velocity, s.target, dt)
	next = math.Max(s.lo, math.Min(s.hi, next))

	reached := (s.origin <= s.target && next >= s.target) || (s.origin >= s.target && next <= s.target)
	if reached || s.opts.Curve.AtRest(next, velocity, s.target) {
		s.running = false
		s.value = s.target
		s.velocity = 0
		s.frame(s.target)
		if s.onSettle != nil {
			s.onSettle(s.target)
		}
		return false
	}

	s.value = next
	s.velocity = velocity
	s.frame(next)
	return true
}

// Cancel stops a running settle. The last value is reported through
// onFrame; onSettle does not fire.
func (s *Settler) Cancel() {
	if !s.running {
		return
	}
	s.running = false
	s.frame(s.value)
}

// abort stops a run without reporting anything.
func (s *Settler) abort() {
	s.running = false
}

// Running reports whether a run is in progress.
func (s *Settler) Running() bool {
	return s.running
}

// Value returns the current animated value.
func (s *Settler) Value() float64 {
	return s.value
}

// Target returns the target of the current or last run.
func (s *Settler) Target() float64 {
	return s.target
}

// SlowFactor returns the distance-to-velocity factor in use.
func (s *Settler) SlowFactor() float64 {
	return s.opts.SlowFactor
}

func (s *Settler) frame(v float64) {
	if s.onFrame != nil {
		s.onFrame(v)
	}
}
