package swiper

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"gonum.org/v1/gonum/stat"
)

type velocitySample struct {
	t    time.Duration
	x, y float64
}

// VelocityTracker estimates pointer velocity over the tail of one drag.
// Velocity is the slope of a least-squares line through the recent samples,
// in units per second.
type VelocityTracker struct {
	samples []velocitySample
	horizon time.Duration
	gap     time.Duration
	max     int
}

// NewVelocityTracker creates a tracker with the default horizon and
// pointer-stopped gap.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{
		samples: make([]velocitySample, 0, constants.MaxVelocitySamples),
		horizon: constants.VelocityHorizon,
		gap:     constants.PointerStoppedGap,
		max:     constants.MaxVelocitySamples,
	}
}

// Reset drops every sample, starting a new session.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records a pointer event. Events older than the newest sample are
// ignored.
func (v *VelocityTracker) Add(ev PointerEvent) {
	if n := len(v.samples); n > 0 && ev.Time < v.samples[n-1].t {
		return
	}
	if len(v.samples) == v.max {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:len(v.samples)-1]
	}
	v.samples = append(v.samples, velocitySample{t: ev.Time, x: ev.X, y: ev.Y})
}

// Velocity returns the estimated X and Y velocity in units per second.
// Both are zero when fewer than two usable samples remain, which is the
// case when the pointer rested longer than the stopped gap before the
// newest sample.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	window := v.window()
	if len(window) < 2 {
		return 0, 0
	}

	ts := make([]float64, len(window))
	xs := make([]float64, len(window))
	ys := make([]float64, len(window))
	newest := window[len(window)-1].t
	for i, s := range window {
		ts[i] = (s.t - newest).Seconds()
		xs[i] = s.x
		ys[i] = s.y
	}
	if ts[0] == ts[len(ts)-1] {
		return 0, 0
	}

	_, vx = stat.LinearRegression(ts, xs, nil, false)
	_, vy = stat.LinearRegression(ts, ys, nil, false)
	return finite(vx), finite(vy)
}

// AxisVelocity returns the velocity component tracked by direction d.
func (v *VelocityTracker) AxisVelocity(d Direction) float64 {
	return d.axis(v.Velocity())
}

// window returns the newest run of samples within the horizon that has no
// gap longer than the pointer-stopped gap.
func (v *VelocityTracker) window() []velocitySample {
	n := len(v.samples)
	if n == 0 {
		return nil
	}
	newest := v.samples[n-1].t
	start := n - 1
	for i := n - 2; i >= 0; i-- {
		if newest-v.samples[i].t > v.horizon || v.samples[i+1].t-v.samples[i].t > v.gap {
			break
		}
		start = i
	}
	return v.samples[start:]
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
