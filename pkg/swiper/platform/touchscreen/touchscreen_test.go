package touchscreen

import (
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClosed = errors.New("closed")

type fakeDevice struct {
	events chan *evdev.InputEvent
	closed chan struct{}
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{events: make(chan *evdev.InputEvent, 16), closed: make(chan struct{})}
}

func (f *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	select {
	case ev := <-f.events:
		return ev, nil
	case <-f.closed:
		return nil, errClosed
	}
}

func (f *fakeDevice) Close() error {
	close(f.closed)
	return nil
}

func TestTouchscreenPumpsOnCallerGoroutine(t *testing.T) {
	dev := newFakeDevice()
	ts := newTouchscreen(dev, NewTranslator(Axis{0, 100}, Axis{0, 100}, 100, 100))

	var got []swiper.PointerEvent
	ts.SetPointerHandler(func(ev swiper.PointerEvent) bool {
		got = append(got, ev)
		return true
	})

	dev.events <- raw(evdev.EV_KEY, evdev.BTN_TOUCH, 1, 0)
	dev.events <- syn(0)
	dev.events <- raw(evdev.EV_ABS, evdev.ABS_Y, 30, 10)
	dev.events <- syn(10)

	require.Eventually(t, func() bool {
		ts.Pump()
		return len(got) == 2
	}, time.Second, time.Millisecond)

	assert.Equal(t, swiper.PointerPress, got[0].Kind)
	assert.Equal(t, swiper.PointerMove, got[1].Kind)
	assert.Equal(t, 30.0, got[1].Y)

	require.NoError(t, ts.Close())
	assert.Error(t, ts.Close())
	assert.Equal(t, 0, ts.Pump())
}

func TestTouchscreenDispatcher(t *testing.T) {
	dev := newFakeDevice()
	ts := newTouchscreen(dev, NewTranslator(Axis{0, 100}, Axis{0, 100}, 100, 100))
	defer ts.Close()

	a, err := swiper.NewAction(swiper.DirectionDown, []float64{0, 100}, 0.5, nil)
	require.NoError(t, err)
	d := swiper.NewDispatcher()
	d.AddAction(a)
	d.Attach(ts)

	dev.events <- raw(evdev.EV_KEY, evdev.BTN_TOUCH, 1, 0)
	dev.events <- syn(0)

	require.Eventually(t, func() bool {
		ts.Pump()
		return a.Dragging()
	}, time.Second, time.Millisecond)
}
