package domain

import "errors"

// ErrMissingRequired is returned when a variant is assembled without one of its required operations.
var ErrMissingRequired = errors.New("missing required operation")

// ErrUnknownVariant is returned when a variant name cannot be found in a registry.
var ErrUnknownVariant = errors.New("unknown variant")
