// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package i2cadapt

import (
	"fmt"

	"github.com/go-daq/smbus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// maxBlock is the largest SMBus I²C block read.
const maxBlock = 32

// SMBus is an i2c.Bus backed by a Linux SMBus connection.
//
// Supported transactions:
//   - w = {reg}, len(r) == 1: read byte data
//   - w = {reg}, 1 < len(r) <= 32: I²C block read
//   - w = {reg, v}, no read: write byte data
type SMBus struct {
	Conn *smbus.Conn
	// Name is returned by String. It defaults to "smbus".
	Name string
}

// OpenSMBus opens /dev/i2c-<bus>. addr is the address the connection starts
// with; every transaction selects its own.
func OpenSMBus(bus int, addr uint8) (*SMBus, error) {
	c, err := smbus.Open(bus, addr)
	if err != nil {
		return nil, err
	}
	return &SMBus{Conn: c, Name: fmt.Sprintf("smbus-%d", bus)}, nil
}

// Tx implements i2c.Bus.
func (s *SMBus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return fmt.Errorf("%w: 10 bit address 0x%X", ErrUnsupported, addr)
	}
	a := uint8(addr)
	switch {
	case len(w) == 1 && len(r) == 1:
		v, err := s.Conn.ReadReg(a, w[0])
		if err != nil {
			return err
		}
		r[0] = v
		return nil
	case len(w) == 1 && len(r) > 1 && len(r) <= maxBlock:
		return s.Conn.ReadBlockData(a, w[0], r)
	case len(w) == 2 && len(r) == 0:
		return s.Conn.WriteReg(a, w[0], w[1])
	}
	return fmt.Errorf("%w: write %d bytes, read %d bytes", ErrUnsupported, len(w), len(r))
}

// SetSpeed implements i2c.Bus. The speed of an SMBus adapter is fixed by the
// kernel driver.
func (s *SMBus) SetSpeed(f physic.Frequency) error {
	return fmt.Errorf("%w: SetSpeed(%s)", ErrUnsupported, f)
}

// Close closes the connection.
func (s *SMBus) Close() error {
	return s.Conn.Close()
}

func (s *SMBus) String() string {
	if s.Name == "" {
		return "smbus"
	}
	return s.Name
}

var _ i2c.BusCloser = &SMBus{}
