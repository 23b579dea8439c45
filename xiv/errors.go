package xiv

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant matches every *UnknownVariantError via errors.Is.
var ErrUnknownVariant = errors.New("unknown variant")

// UnknownVariantError is returned when a string does not name any variant of
// a domain type. It is the only error the package produces.
type UnknownVariantError struct {
	Domain string // type being parsed, e.g. "World"
	Input  string // raw input, exactly as given
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q for type %s", e.Input, e.Domain)
}

// Is reports whether target is ErrUnknownVariant.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}
