package mark

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrType          = errors.New("type error")
	ErrValidation    = errors.New("validation error")
)

// ConfigurationError reports a scale without a name, or a scale without an
// attribute to bind it to.
type ConfigurationError struct {
	Layer   string
	Channel Channel
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("layer %s: %s scale: %s", e.Layer, e.Channel, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// TypeError reports an attribute reference of the wrong shape for its channel.
type TypeError struct {
	Layer    string
	Channel  Channel
	Got      any
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("layer %s: %sAttr is %T, must be %s", e.Layer, e.Channel, e.Got, e.Expected)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

// ValidationError reports a rejected literal. The layer keeps its previous value.
type ValidationError struct {
	Channel Channel
	Value   any
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Channel, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
