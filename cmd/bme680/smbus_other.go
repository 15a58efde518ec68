// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package main

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
)

func openSMBus(n int) (i2c.BusCloser, error) {
	return nil, errors.New("-smbus is only supported on linux")
}
