package imaging

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the package reports. Callers
// match them with errors.Is; the wrapping message carries the detail.
var (
	// ErrConfiguration indicates an invalid operation parameter: bad kernel
	// dimensions, a zero divisor, a non-positive filter radius, an
	// out-of-range bit depth, a malformed diffusion template, and similar.
	ErrConfiguration = errors.New("imaging: invalid configuration")

	// ErrMissingParameter indicates that a required input (source buffer,
	// quantizer, template, threshold matrix) was absent when the operation
	// ran.
	ErrMissingParameter = errors.New("imaging: missing parameter")

	// ErrIncompatible indicates that an input or output buffer has a pixel
	// format or resolution the operation cannot work with.
	ErrIncompatible = errors.New("imaging: incompatible image")

	// ErrOperationFailed is the catch-all for failures during execution not
	// covered by the parameter errors, including aborted operations.
	ErrOperationFailed = errors.New("imaging: operation failed")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("imaging: "+format+": %w", append(args, ErrConfiguration)...)
}

func missingErrorf(format string, args ...any) error {
	return fmt.Errorf("imaging: "+format+": %w", append(args, ErrMissingParameter)...)
}

func incompatibleErrorf(format string, args ...any) error {
	return fmt.Errorf("imaging: "+format+": %w", append(args, ErrIncompatible)...)
}

func failedErrorf(format string, args ...any) error {
	return fmt.Errorf("imaging: "+format+": %w", append(args, ErrOperationFailed)...)
}
