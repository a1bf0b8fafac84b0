package swiper

import (
	"fmt"
	"strings"
)

// Direction is the direction a panel opens in. It selects the screen axis
// the action tracks and the order its steps must be listed in.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionUp
	DirectionLeft
	DirectionDown
)

// Vertical returns true for Up and Down, which track the Y axis.
func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// Descending returns true for Left and Up. Steps for those directions are
// listed from the largest coordinate to the smallest.
func (d Direction) Descending() bool {
	return d == DirectionLeft || d == DirectionUp
}

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	}
	return d
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirectionRight && d <= DirectionDown
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return DirectionRight, nil
	case "up":
		return DirectionUp, nil
	case "left":
		return DirectionLeft, nil
	case "down":
		return DirectionDown, nil
	}
	return 0, fmt.Errorf("swiper: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("swiper: invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so directions can be
// written by name in layout files.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// axis picks the coordinate this direction tracks.
func (d Direction) axis(x, y float64) float64 {
	if d.Vertical() {
		return y
	}
	return x
}

// before reports whether a comes before b in this direction's step order.
func (d Direction) before(a, b float64) bool {
	if d.Descending() {
		return a > b
	}
	return a < b
}
