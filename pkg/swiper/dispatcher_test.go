package swiper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	handler PointerHandler
}

func (f *fakeSource) SetPointerHandler(h PointerHandler) {
	f.handler = h
}

func TestDispatcherWithoutActionsDoesNotConsume(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.HandlePointer(at(PointerPress, 0, 0, 0)))
	assert.False(t, d.Advance(frame))
	assert.False(t, d.Settling())
}

func TestDispatcherSkipsBlockedActions(t *testing.T) {
	a, rec := newTestAction(t, DirectionDown, []float64{0, 100}, 0.5)
	a.SetBlocked(true)

	d := NewDispatcher()
	d.AddAction(a)

	assert.True(t, d.HandlePointer(at(PointerPress, 0, 0, 0)))
	assert.True(t, d.HandlePointer(at(PointerMove, 0, 80, 16)))
	assert.True(t, d.HandlePointer(at(PointerRelease, 0, 80, 300)))

	assert.Empty(t, rec.calls)
	assert.Equal(t, StateIdle, a.State())
	assert.Equal(t, 0.0, a.Position())

	a.SetBlocked(false)
	d.HandlePointer(at(PointerPress, 0, 0, 1000))
	d.HandlePointer(at(PointerMove, 0, 30, 1016))

	assert.Equal(t, []call{{"start", 0, 0}, {"drag", 30, 0.3}}, rec.calls)
	assert.Equal(t, StateDragging, a.State())
}

func TestDispatcherForwardsInRegistrationOrder(t *testing.T) {
	var order []string
	first, err := NewAction(DirectionDown, []float64{0, 100}, 0.5, ListenerFuncs{
		Start: func(_, _ float64) { order = append(order, "first") },
	})
	require.NoError(t, err)
	second, err := NewAction(DirectionUp, []float64{100, 0}, 0.5, ListenerFuncs{
		Start: func(_, _ float64) { order = append(order, "second") },
	})
	require.NoError(t, err)

	d := NewDispatcher()
	d.AddAction(first)
	d.AddAction(second)

	d.HandlePointer(at(PointerPress, 0, 50, 0))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []*Action{first, second}, d.Actions())
}

func TestDispatcherAdvanceSettlesEveryAction(t *testing.T) {
	a, recA := newTestAction(t, DirectionDown, []float64{0, 100}, 0.5)
	b, recB := newTestAction(t, DirectionRight, []float64{0, 300}, 0.5)
	b.SetBlocked(true)

	d := NewDispatcher()
	d.AddAction(a)
	d.AddAction(b)

	a.Expand()
	b.Expand()
	assert.True(t, d.Settling())

	for i := 0; d.Advance(frame); i++ {
		require.Less(t, i, 1000, "settle did not finish")
	}

	assert.False(t, d.Settling())
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, 1, b.Step())
	assert.Len(t, recA.of("end"), 1)
	assert.Len(t, recB.of("end"), 1)
}

func TestDispatcherAttach(t *testing.T) {
	a, rec := newTestAction(t, DirectionDown, []float64{0, 200, 400}, 0.5)

	src := &fakeSource{}
	d := NewDispatcher()
	d.AddAction(a)
	d.Attach(src)
	require.NotNil(t, src.handler)

	assert.True(t, src.handler(at(PointerPress, 0, 10, 0)))
	assert.True(t, src.handler(at(PointerMove, 0, 160, 16)))
	assert.True(t, src.handler(at(PointerRelease, 0, 160, 300)))
	for i := 0; d.Advance(frame); i++ {
		require.Less(t, i, 1000, "settle did not finish")
	}

	assert.Equal(t, 1, a.Step())
	assert.Equal(t, []call{{"end", 200, 0.5}}, rec.of("end"))
}
