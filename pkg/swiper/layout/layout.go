// Package layout describes a set of swipe panels in TOML and builds the
// actions for a given screen size.
//
// Steps are written as fractions of the axis the panel moves on, so one
// layout file works for any resolution:
//
//	[fling]
//	curve = "decay"
//	slow_factor = 4.5
//
//	[[panel]]
//	name = "top"
//	direction = "down"
//	steps = [0.0, 0.3, 1.0]
//	threshold = 0.4
//	exclusive_with = ["bottom"]
package layout

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/BurntSushi/toml"
)

const (
	CurveDecay  = "decay"
	CurveSpring = "spring"
)

// Fling tunes how panels settle after release. Zero values fall back to
// the package defaults.
type Fling struct {
	Curve           string  `toml:"curve"`
	Friction        float64 `toml:"friction"`
	SlowFactor      float64 `toml:"slow_factor"`
	StopVelocity    float64 `toml:"stop_velocity"`
	SpringFrequency float64 `toml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping"`
}

// Panel is one draggable panel.
type Panel struct {
	Name string `toml:"name"`
	// Direction defaults to right when omitted.
	Direction swiper.Direction `toml:"direction"`
	Steps     []float64        `toml:"steps"`
	// Threshold defaults to constants.DefaultThreshold when omitted.
	Threshold *float64 `toml:"threshold"`
	// ExclusiveWith names panels that are blocked while this one is extended.
	ExclusiveWith []string `toml:"exclusive_with"`
}

// Layout is the decoded form of a layout file.
type Layout struct {
	Fling  Fling   `toml:"fling"`
	Panels []Panel `toml:"panel"`
}

// Default returns the two-panel layout used by the demo: a bar pulled down
// from the top and a sheet pulled up from the bottom, never open together.
func Default() Layout {
	topThreshold, bottomThreshold := 0.4, 0.2
	return Layout{
		Fling: Fling{Curve: CurveDecay},
		Panels: []Panel{
			{
				Name:          "top",
				Direction:     swiper.DirectionDown,
				Steps:         []float64{0, 0.3, 1},
				Threshold:     &topThreshold,
				ExclusiveWith: []string{"bottom"},
			},
			{
				Name:          "bottom",
				Direction:     swiper.DirectionUp,
				Steps:         []float64{1, 0.3, 0},
				Threshold:     &bottomThreshold,
				ExclusiveWith: []string{"top"},
			},
		},
	}
}

// Load reads and parses a layout file.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a layout and validates it. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Parse(data []byte) (Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to decode layout: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Layout{}, fmt.Errorf("unknown layout keys: %s", strings.Join(keys, ", "))
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the fling curve, that panel names are unique, that every
// exclusive_with entry names another panel, and that each panel's steps
// and threshold would make a valid action.
func (l Layout) Validate() error {
	if _, err := l.Fling.Options(); err != nil {
		return err
	}
	if len(l.Panels) == 0 {
		return errors.New("layout has no panels")
	}

	names := make(map[string]bool, len(l.Panels))
	for _, p := range l.Panels {
		if p.Name == "" {
			return errors.New("layout panel without a name")
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate panel %q", p.Name)
		}
		names[p.Name] = true
	}

	for _, p := range l.Panels {
		for _, other := range p.ExclusiveWith {
			if !names[other] {
				return fmt.Errorf("panel %q: exclusive_with names unknown panel %q", p.Name, other)
			}
			if other == p.Name {
				return fmt.Errorf("panel %q: exclusive_with names itself", p.Name)
			}
		}
		for _, s := range p.Steps {
			if s < 0 || s > 1 {
				return fmt.Errorf("panel %q: step %v is not a fraction of the screen", p.Name, s)
			}
		}
		if _, err := swiper.NewAction(p.Direction, p.Steps, p.threshold(), nil); err != nil {
			return fmt.Errorf("panel %q: %w", p.Name, err)
		}
	}
	return nil
}

func (p Panel) threshold() float64 {
	if p.Threshold == nil {
		return constants.DefaultThreshold
	}
	return *p.Threshold
}

// Options converts the fling section into settler options.
func (f Fling) Options() (swiper.SettlerOptions, error) {
	opts := swiper.SettlerOptions{SlowFactor: f.SlowFactor}

	switch strings.ToLower(f.Curve) {
	case "", CurveDecay:
		c := swiper.DefaultDecayCurve()
		if f.Friction > 0 {
			c.Friction = f.Friction
		}
		if f.StopVelocity > 0 {
			c.StopVelocity = f.StopVelocity
		}
		slow := f.SlowFactor
		if slow <= 0 {
			slow = constants.SlowFactor
		}
		if slow <= c.Friction {
			return swiper.SettlerOptions{}, fmt.Errorf("fling slow_factor %v must be above friction %v", slow, c.Friction)
		}
		opts.Curve = c
	case CurveSpring:
		c := swiper.DefaultSpringCurve()
		if f.SpringFrequency > 0 {
			c.Frequency = f.SpringFrequency
		}
		if f.SpringDamping > 0 {
			c.Damping = f.SpringDamping
		}
		if f.StopVelocity > 0 {
			c.StopVelocity = f.StopVelocity
		}
		opts.Curve = c
	default:
		return swiper.SettlerOptions{}, fmt.Errorf("unknown fling curve %q", f.Curve)
	}
	return opts, nil
}

// Set is a built layout: one action per panel, all registered on a
// single dispatcher in file order.
type Set struct {
	Dispatcher *swiper.Dispatcher

	actions map[string]*swiper.Action
	names   []string
}

// Build creates the actions for a screen of width x height. Horizontal
// panels scale their steps by width, vertical ones by height. listeners
// maps panel names to the listener for that panel and may be nil.
func (l Layout) Build(width, height float64, listeners map[string]swiper.Listener) (*Set, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %vx%v", width, height)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	opts, err := l.Fling.Options()
	if err != nil {
		return nil, err
	}

	set := &Set{
		Dispatcher: swiper.NewDispatcher(),
		actions:    make(map[string]*swiper.Action, len(l.Panels)),
	}

	for _, p := range l.Panels {
		extent := width
		if p.Direction.Vertical() {
			extent = height
		}

		steps := make([]float64, len(p.Steps))
		for i, s := range p.Steps {
			steps[i] = s * extent
		}

		a, err := swiper.NewAction(p.Direction, steps, p.threshold(), listeners[p.Name])
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Name, err)
		}
		a.SetName(p.Name)
		a.SetSettlerOptions(opts)

		set.actions[p.Name] = a
		set.names = append(set.names, p.Name)
		set.Dispatcher.AddAction(a)
	}

	for _, p := range l.Panels {
		if len(p.ExclusiveWith) == 0 {
			continue
		}
		others := make([]*swiper.Action, 0, len(p.ExclusiveWith))
		for _, name := range p.ExclusiveWith {
			others = append(others, set.actions[name])
		}
		swiper.BlockWhileExtended(set.actions[p.Name], others...)
	}

	return set, nil
}

// Action returns the named action, or nil.
func (s *Set) Action(name string) *swiper.Action {
	return s.actions[name]
}

// Names returns the panel names in dispatch order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}
