package swiper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocityTrackerConstantSpeed(t *testing.T) {
	v := NewVelocityTracker()
	for i := 0; i <= 5; i++ {
		v.Add(at(PointerMove, float64(i*-4), float64(i*10), i*10))
	}

	vx, vy := v.Velocity()
	assert.InDelta(t, -400, vx, 1e-6)
	assert.InDelta(t, 1000, vy, 1e-6)
	assert.InDelta(t, 1000, v.AxisVelocity(DirectionDown), 1e-6)
	assert.InDelta(t, -400, v.AxisVelocity(DirectionLeft), 1e-6)
}

func TestVelocityTrackerPointerStopped(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(at(PointerPress, 0, 0, 0))
	v.Add(at(PointerMove, 0, 50, 10))
	v.Add(at(PointerMove, 0, 100, 20))
	v.Add(at(PointerRelease, 0, 100, 200))

	vx, vy := v.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestVelocityTrackerHorizon(t *testing.T) {
	v := NewVelocityTracker()
	// Slow start well outside the horizon, then a fast tail.
	for i := 0; i < 10; i++ {
		v.Add(at(PointerMove, 0, float64(i), i*30))
	}
	base := 9 * 30
	for i := 1; i <= 15; i++ {
		v.Add(at(PointerMove, 0, 9+float64(i*20), base+i*10))
	}

	assert.InDelta(t, 2000, v.AxisVelocity(DirectionDown), 1e-6)
}

func TestVelocityTrackerDropsSamplesBeforeAPause(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(at(PointerMove, 0, 0, 0))
	v.Add(at(PointerMove, 0, 300, 20))
	for i := 1; i <= 3; i++ {
		v.Add(at(PointerMove, 0, 300+float64(i*5), 70+i*10))
	}

	assert.InDelta(t, 500, v.AxisVelocity(DirectionDown), 1e-6)
}

func TestVelocityTrackerNeedsTwoSamples(t *testing.T) {
	v := NewVelocityTracker()
	vx, vy := v.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	v.Add(at(PointerPress, 10, 10, 0))
	assert.Zero(t, v.AxisVelocity(DirectionRight))

	// Same timestamp carries no time span.
	v.Add(at(PointerMove, 20, 20, 0))
	assert.Zero(t, v.AxisVelocity(DirectionRight))
}

func TestVelocityTrackerResetAndOrdering(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(at(PointerMove, 0, 0, 0))
	v.Add(at(PointerMove, 0, 10, 10))
	v.Reset()
	assert.Zero(t, v.AxisVelocity(DirectionDown))

	v.Add(at(PointerMove, 0, 0, 100))
	v.Add(at(PointerMove, 0, 500, 50))
	v.Add(at(PointerMove, 0, 10, 110))
	assert.InDelta(t, 1000, v.AxisVelocity(DirectionDown), 1e-6, "samples older than the newest are dropped")
}

func TestVelocityTrackerKeepsNewestSamples(t *testing.T) {
	v := NewVelocityTracker()
	for i := 0; i < 50; i++ {
		v.Add(at(PointerMove, float64(i*5), 0, i*5))
	}
	assert.Len(t, v.samples, 20)
	assert.InDelta(t, 1000, v.AxisVelocity(DirectionRight), 1e-6)
}
