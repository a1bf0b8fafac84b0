package host

import (
	"time"

	"github.com/BrandonKowalski/swiper/pkg/swiper"
	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyRepeat tracks held arrow keys and d-pad buttons and fires repeat
// steps while one stays down. The first press is reported by SetHeld; Update
// reports the repeats.
type KeyRepeat struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with the default timing.
func NewKeyRepeat() *KeyRepeat {
	return NewKeyRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatRate)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing.
func NewKeyRepeatWithTiming(delay, interval time.Duration) *KeyRepeat {
	k := &KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
	k.lastRepeatTime = k.now()
	return k
}

// KeyDirection maps arrow keys to a direction.
func KeyDirection(key sdl.Keycode) (swiper.Direction, bool) {
	switch key {
	case sdl.K_UP:
		return swiper.DirectionUp, true
	case sdl.K_DOWN:
		return swiper.DirectionDown, true
	case sdl.K_LEFT:
		return swiper.DirectionLeft, true
	case sdl.K_RIGHT:
		return swiper.DirectionRight, true
	}
	return 0, false
}

// ButtonDirection maps game controller d-pad buttons to a direction.
func ButtonDirection(button uint8) (swiper.Direction, bool) {
	switch sdl.GameControllerButton(button) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return swiper.DirectionUp, true
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return swiper.DirectionDown, true
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return swiper.DirectionLeft, true
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return swiper.DirectionRight, true
	}
	return 0, false
}

// SetHeld updates the held state of a direction. It returns true when d
// was not held before, which is the moment to act on the first press.
func (k *KeyRepeat) SetHeld(d swiper.Direction, held bool) bool {
	var slot *bool
	switch d {
	case swiper.DirectionUp:
		slot = &k.held.up
	case swiper.DirectionDown:
		slot = &k.held.down
	case swiper.DirectionLeft:
		slot = &k.held.left
	case swiper.DirectionRight:
		slot = &k.held.right
	default:
		return false
	}

	pressed := held && !*slot
	*slot = held
	if pressed {
		k.lastRepeatTime = k.now()
		k.hasRepeated = false
	}
	if !held {
		k.hasRepeated = false
	}
	return pressed
}

// IsHeld returns true if any direction is currently held.
func (k *KeyRepeat) IsHeld() bool {
	return k.held.up || k.held.down || k.held.left || k.held.right
}

// HeldDirection returns the held direction, preferring up, down, left,
// right in that order.
func (k *KeyRepeat) HeldDirection() (swiper.Direction, bool) {
	switch {
	case k.held.up:
		return swiper.DirectionUp, true
	case k.held.down:
		return swiper.DirectionDown, true
	case k.held.left:
		return swiper.DirectionLeft, true
	case k.held.right:
		return swiper.DirectionRight, true
	}
	return 0, false
}

// Update checks whether a repeat is due. Call it every frame.
//
// The first repeat occurs after the repeat delay, later ones after the
// repeat interval.
func (k *KeyRepeat) Update() (swiper.Direction, bool) {
	if !k.IsHeld() {
		k.lastRepeatTime = k.now()
		k.hasRepeated = false
		return 0, false
	}

	threshold := k.repeatInterval
	if !k.hasRepeated {
		threshold = k.repeatDelay
	}

	if k.now().Sub(k.lastRepeatTime) >= threshold {
		k.lastRepeatTime = k.now()
		k.hasRepeated = true
		return k.HeldDirection()
	}
	return 0, false
}

// Reset clears all held directions and timing state.
func (k *KeyRepeat) Reset() {
	k.held.up = false
	k.held.down = false
	k.held.left = false
	k.held.right = false
	k.hasRepeated = false
	k.lastRepeatTime = k.now()
}

// StepToward moves a one step along d: forward when d is the direction it
// opens in, back when it is the opposite. Other directions and blocked
// actions are left alone. It reports whether a step was requested.
func StepToward(a *swiper.Action, d swiper.Direction) bool {
	if a == nil || a.Blocked() {
		return false
	}
	switch d {
	case a.Direction():
		a.StepForward()
	case a.Direction().Opposite():
		a.StepBack()
	default:
		return false
	}
	return true
}
