// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cadapt exposes I²C buses of other driver ecosystems as a periph
// i2c.Bus, so chip.Chip and the sensor drivers can run on them.
//
// TinyGo wraps a tinygo.org/x/drivers I2C bus. SMBus wraps a Linux SMBus
// connection from github.com/go-daq/smbus; only the transaction shapes that
// map to SMBus commands are supported.
//
// The reverse direction needs no adapter: every i2c.Bus already implements
// drivers.I2C.
package i2cadapt

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// ErrUnsupported is returned for transactions or settings the underlying bus
// can't express.
var ErrUnsupported = errors.New("i2cadapt: unsupported")

// TinyGo is an i2c.Bus backed by a tinygo drivers.I2C.
type TinyGo struct {
	Bus drivers.I2C
	// Name is returned by String. It defaults to "tinygo".
	Name string
}

// Tx implements i2c.Bus.
func (t *TinyGo) Tx(addr uint16, w, r []byte) error {
	return t.Bus.Tx(addr, w, r)
}

// SetSpeed implements i2c.Bus. The speed of a tinygo bus is set when it is
// configured.
func (t *TinyGo) SetSpeed(f physic.Frequency) error {
	return fmt.Errorf("%w: SetSpeed(%s)", ErrUnsupported, f)
}

func (t *TinyGo) String() string {
	if t.Name == "" {
		return "tinygo"
	}
	return t.Name
}

var _ i2c.Bus = &TinyGo{}
var _ drivers.I2C = i2c.Bus(nil)
