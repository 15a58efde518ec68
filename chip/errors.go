// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chip

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound is returned when a name has no entry in the chip's
	// field map. It is a programming error and no bus traffic happens.
	ErrFieldNotFound = errors.New("chip: field not found")
	// ErrDeviceNotFound is returned by Probe when no candidate address
	// answered with the expected identifier.
	ErrDeviceNotFound = errors.New("chip: device not found")
)

// FieldError reports the name that failed to resolve.
//
// errors.Is(err, ErrFieldNotFound) is true for a *FieldError.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("chip: field %q not found", e.Name)
}

// Is implements errors.Is.
func (e *FieldError) Is(target error) bool {
	return target == ErrFieldNotFound
}

// TransportError wraps an error returned by the bus.
//
// The bus error is available through errors.Unwrap, errors.Is and errors.As.
type TransportError struct {
	Op  string
	Reg uint8
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chip: %s 0x%02X: %v", e.Op, e.Reg, e.Err)
}

// Unwrap returns the bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
