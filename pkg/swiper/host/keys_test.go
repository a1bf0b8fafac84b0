package host

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeys() (*KeyRepeat, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	k := NewKeyRepeatWithTiming(300*time.Millisecond, 100*time.Millisecond)
	k.now = clock.now
	k.Reset()
	return k, clock
}

func TestKeyRepeatTiming(t *testing.T) {
	k, clock := newTestKeys()

	assert.True(t, k.SetHeld(swiper.DirectionDown, true), "first press")
	assert.False(t, k.SetHeld(swiper.DirectionDown, true), "still held")

	clock.advance(299 * time.Millisecond)
	_, ok := k.Update()
	assert.False(t, ok)

	clock.advance(time.Millisecond)
	d, ok := k.Update()
	require.True(t, ok)
	assert.Equal(t, swiper.DirectionDown, d)

	clock.advance(99 * time.Millisecond)
	_, ok = k.Update()
	assert.False(t, ok)
	clock.advance(time.Millisecond)
	_, ok = k.Update()
	assert.True(t, ok)

	k.SetHeld(swiper.DirectionDown, false)
	clock.advance(time.Second)
	_, ok = k.Update()
	assert.False(t, ok)
	assert.False(t, k.IsHeld())
}

func TestKeyRepeatPriority(t *testing.T) {
	k, _ := newTestKeys()
	k.SetHeld(swiper.DirectionRight, true)
	k.SetHeld(swiper.DirectionUp, true)

	d, ok := k.HeldDirection()
	require.True(t, ok)
	assert.Equal(t, swiper.DirectionUp, d)

	k.Reset()
	_, ok = k.HeldDirection()
	assert.False(t, ok)
	assert.False(t, k.SetHeld(swiper.Direction(9), true))
}

func TestKeyMappings(t *testing.T) {
	d, ok := KeyDirection(sdl.K_LEFT)
	assert.True(t, ok)
	assert.Equal(t, swiper.DirectionLeft, d)
	_, ok = KeyDirection(sdl.K_a)
	assert.False(t, ok)

	d, ok = ButtonDirection(sdl.CONTROLLER_BUTTON_DPAD_DOWN)
	assert.True(t, ok)
	assert.Equal(t, swiper.DirectionDown, d)
	_, ok = ButtonDirection(sdl.CONTROLLER_BUTTON_A)
	assert.False(t, ok)
}

func TestStepToward(t *testing.T) {
	a, err := swiper.NewAction(swiper.DirectionDown, []float64{0, 100, 200}, 0.5, nil)
	require.NoError(t, err)
	settle := func() {
		for a.Advance(16 * time.Millisecond) {
		}
	}

	assert.True(t, StepToward(a, swiper.DirectionDown))
	settle()
	assert.Equal(t, 1, a.Step())

	assert.False(t, StepToward(a, swiper.DirectionLeft))
	assert.True(t, StepToward(a, swiper.DirectionUp))
	settle()
	assert.Equal(t, 0, a.Step())

	a.SetBlocked(true)
	assert.False(t, StepToward(a, swiper.DirectionDown))
	assert.False(t, StepToward(nil, swiper.DirectionDown))
}
