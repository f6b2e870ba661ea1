package stackview

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction and dispatch failures.
var (
	// ErrMissingInterpolator indicates a preset without a card or header
	// style interpolator.
	ErrMissingInterpolator = errors.New("missing style interpolator")

	// ErrMissingTransitionSpec indicates a preset whose open or close spec
	// was never configured.
	ErrMissingTransitionSpec = errors.New("missing transition spec")

	// ErrNoDispatcher indicates a coordinator without a way to reach the
	// navigation state owner.
	ErrNoDispatcher = errors.New("no dispatcher configured")

	// ErrInvalidMode indicates an unknown stack or header mode.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrUnknownRoute indicates an action referencing a key the owner does
	// not know.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrPopDenied indicates the owner refused a pop, e.g. of the root route.
	ErrPopDenied = errors.New("pop denied")
)

// ConfigError reports an invalid configuration field. Configuration errors
// are raised at construction; a coordinator that was built never fails to
// render.
type ConfigError struct {
	Field string // Offending field, e.g. "Preset.CardStyleInterpolator"
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stackview: config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("stackview: config %s", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// InfrastructureError reports a failure of the rendering environment
// (SDL, fonts, input devices) rather than of the stack logic.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "open_font")
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stackview: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stackview: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
