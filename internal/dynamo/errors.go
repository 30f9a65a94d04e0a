package dynamo

import (
	"errors"
	"fmt"
)

// Configuration errors. The simulation has no runtime error taxonomy; these
// are all raised before the first step.
var (
	// ErrInvalidMass indicates a body with zero, negative or non-finite mass.
	ErrInvalidMass = errors.New("dynamo: mass must be positive")

	// ErrInvalidGrid indicates a frame buffer with non-positive dimensions.
	ErrInvalidGrid = errors.New("dynamo: grid dimensions must be positive")

	// ErrInvalidDelta indicates a non-positive time step.
	ErrInvalidDelta = errors.New("dynamo: time delta must be positive")

	// ErrInvalidParams indicates a tuning parameter outside its valid range.
	ErrInvalidParams = errors.New("dynamo: parameter out of valid bounds")

	// ErrNoBodies indicates an empty initial body list.
	ErrNoBodies = errors.New("dynamo: no bodies to simulate")

	// ErrNotInitialized indicates a step before Initialize.
	ErrNotInitialized = errors.New("dynamo: simulation not initialized")
)

// ConfigError names the offending field of an invalid configuration.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %s: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InvalidField builds a ConfigError for a numeric field.
func InvalidField(field string, value float64, err error) error {
	return &ConfigError{Field: field, Value: fmt.Sprintf("%g", value), Err: err}
}
