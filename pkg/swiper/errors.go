package swiper

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors wrapped by ConfigurationError.
var (
	// ErrTooFewSteps indicates fewer than two steps were supplied.
	ErrTooFewSteps = errors.New("at least two steps are required")

	// ErrSameEndpoints indicates the first and last step are equal.
	ErrSameEndpoints = errors.New("first and last step are the same")

	// ErrStepOrder indicates the steps are not strictly ascending (Right, Down)
	// or strictly descending (Left, Up).
	ErrStepOrder = errors.New("step order does not match the direction")

	// ErrThresholdRange indicates a drag threshold outside [0, 1].
	ErrThresholdRange = errors.New("drag threshold must be within [0, 1]")

	// ErrInvalidDirection indicates a direction value outside the four defined ones.
	ErrInvalidDirection = errors.New("invalid direction")
)

// ErrStepIndex is returned by PushToStep for an index outside the step list.
var ErrStepIndex = errors.New("swiper: step index out of range")

// ConfigurationError is returned synchronously when an action is built or
// reconfigured with a direction, step list or threshold that cannot work
// together. The action is left unchanged.
type ConfigurationError struct {
	Op        string    // Operation that failed (e.g., "new", "reconfigure")
	Direction Direction // Direction that was requested
	Steps     []float64 // Steps that were requested
	Err       error     // One of the sentinel errors above
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("swiper: %s: %v (direction=%s, steps=%v)", e.Op, e.Err, e.Direction, e.Steps)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func validate(op string, direction Direction, steps []float64, threshold float64) error {
	fail := func(err error) error {
		return &ConfigurationError{Op: op, Direction: direction, Steps: steps, Err: err}
	}

	if !direction.Valid() {
		return fail(ErrInvalidDirection)
	}
	if len(steps) < 2 {
		return fail(ErrTooFewSteps)
	}
	if steps[0] == steps[len(steps)-1] {
		return fail(ErrSameEndpoints)
	}
	for i := 1; i < len(steps); i++ {
		if !direction.before(steps[i-1], steps[i]) {
			return fail(ErrStepOrder)
		}
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fail(ErrThresholdRange)
	}
	return nil
}
