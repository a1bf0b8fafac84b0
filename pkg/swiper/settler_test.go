package swiper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settleRecorder struct {
	frames  []float64
	settled []float64
}

func newRecordedSettler(opts SettlerOptions) (*Settler, *settleRecorder) {
	rec := &settleRecorder{}
	s := NewSettler(opts,
		func(v float64) { rec.frames = append(rec.frames, v) },
		func(target float64) { rec.settled = append(rec.settled, target) },
	)
	return s, rec
}

func runSettler(t *testing.T, s *Settler) int {
	t.Helper()
	n := 0
	for s.Step(frame) {
		n++
		require.Less(t, n, 1000, "settle did not finish")
	}
	return n + 1
}

func TestSettlerReachesTarget(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	s.Start(0, 450, 100, 0, 100)
	assert.True(t, s.Running())
	runSettler(t, s)

	assert.False(t, s.Running())
	assert.Equal(t, []float64{100}, rec.settled)
	require.NotEmpty(t, rec.frames)
	assert.Equal(t, 100.0, rec.frames[len(rec.frames)-1])
	for i := 1; i < len(rec.frames); i++ {
		assert.GreaterOrEqual(t, rec.frames[i], rec.frames[i-1], "fling toward a larger target never moves back")
	}
}

func TestSettlerZeroDistanceCompletesOnFirstStep(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	s.Start(50, 0, 50, 50, 50)
	assert.False(t, s.Step(frame))

	assert.Equal(t, []float64{50}, rec.frames)
	assert.Equal(t, []float64{50}, rec.settled)
}

func TestSettlerCancelReportsLastValueWithoutSettling(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	s.Start(0, 900, 200, 0, 200)
	require.True(t, s.Step(frame))
	last := s.Value()

	s.Cancel()
	assert.False(t, s.Running())
	assert.Equal(t, []float64{last, last}, rec.frames)
	assert.Empty(t, rec.settled)
	assert.False(t, s.Step(frame))

	s.Cancel()
	assert.Len(t, rec.frames, 2, "cancelling an idle settler reports nothing")
}

func TestSettlerReplacesVelocityPointingAway(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	s.Start(100, 3000, 0, 0, 100)
	require.True(t, s.Step(frame))
	assert.Less(t, s.Value(), 100.0)

	runSettler(t, s)
	assert.Equal(t, []float64{0}, rec.settled)
	for _, v := range rec.frames {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestSettlerClampsToBounds(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	// A fast fling would overshoot the target; the bounds stop it there.
	s.Start(0, 100000, 40, -10, 40)
	assert.False(t, s.Step(frame))
	assert.Equal(t, []float64{40}, rec.frames)
	assert.Equal(t, []float64{40}, rec.settled)
}

func largestJump(from float64, frames []float64) float64 {
	jump := 0.0
	for _, v := range frames {
		jump = max(jump, math.Abs(v-from))
		from = v
	}
	return jump
}

func TestSettlerDecayReachesTargetWithLowSlowFactor(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{SlowFactor: 1})

	s.Start(0, 0, 1000, 0, 1000)
	steps := runSettler(t, s)

	assert.Greater(t, steps, 10)
	assert.Equal(t, []float64{1000}, rec.settled)
	assert.Less(t, largestJump(0, rec.frames), 100.0, "no frame may jump toward the target")
}

func TestSettlerRaisesSlowVelocityTowardTarget(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{})

	s.Start(0, 10, 500, 0, 500)
	runSettler(t, s)

	assert.Equal(t, []float64{500}, rec.settled)
	assert.Less(t, largestJump(0, rec.frames), 50.0)
}

func TestDecayCurveMinVelocity(t *testing.T) {
	c := DecayCurve{Friction: 2, StopVelocity: 10}
	assert.Equal(t, 210.0, c.MinVelocity(100))
	assert.Equal(t, 210.0, c.MinVelocity(-100))

	// Started at the minimum, the fling covers the whole distance.
	x, v := 0.0, c.MinVelocity(100)
	for !c.AtRest(x, v, 100) {
		x, v = c.Step(x, v, 100, frame)
	}
	assert.InDelta(t, 100, x, 2)
}

func TestSettlerSpringCurve(t *testing.T) {
	s, rec := newRecordedSettler(SettlerOptions{Curve: DefaultSpringCurve()})

	s.Start(400, 0, 200, 200, 400)
	steps := runSettler(t, s)

	assert.Greater(t, steps, 1)
	assert.Equal(t, []float64{200}, rec.settled)
	for _, v := range rec.frames {
		assert.GreaterOrEqual(t, v, 200.0)
		assert.LessOrEqual(t, v, 400.0)
	}
}

func TestDecayCurveIsFrameRateIndependent(t *testing.T) {
	c := DefaultDecayCurve()

	x1, v1 := c.Step(0, 1000, 0, 2*frame)
	x2, v2 := c.Step(0, 1000, 0, frame)
	x2, v2 = c.Step(x2, v2, 0, frame)

	assert.InDelta(t, x1, x2, 1e-9)
	assert.InDelta(t, v1, v2, 1e-9)
}

func TestSettlerOptionsDefaults(t *testing.T) {
	s := NewSettler(SettlerOptions{}, nil, nil)
	assert.Equal(t, 4.5, s.SlowFactor())

	s = NewSettler(SettlerOptions{SlowFactor: 6}, nil, nil)
	assert.Equal(t, 6.0, s.SlowFactor())
}
