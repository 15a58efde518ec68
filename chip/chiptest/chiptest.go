// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package chiptest implements a fake register addressed I²C device.
//
// Unlike i2ctest.Playback, Regs keeps state: writes land in its register file
// and later reads see them. This makes it suitable for property style tests
// of read-modify-write sequences.
package chiptest

import (
	"sync"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// Regs implements i2c.Bus with a single device holding 256 byte registers.
//
// A transaction writes the register pointer with W[0]; the remaining bytes of
// W are stored at consecutive registers, then len(R) consecutive registers are
// read. The pointer wraps at 0xFF.
type Regs struct {
	sync.Mutex
	// Addr is the device address. Transactions to another address fail as if
	// the device did not acknowledge.
	Addr uint16
	// Mem is the register file.
	Mem [256]byte
	// Ops lists every transaction that reached the device, failed or not.
	Ops []i2ctest.IO
	// FailAt makes the transaction with this index in Ops fail. Negative
	// values disable fault injection.
	FailAt int
}

// New returns a Regs for address addr with fault injection disabled.
func New(addr uint16) *Regs {
	return &Regs{Addr: addr, FailAt: -1}
}

func (r *Regs) String() string {
	return "chiptest"
}

// Tx implements i2c.Bus.
func (r *Regs) Tx(addr uint16, w, read []byte) error {
	r.Lock()
	defer r.Unlock()
	io := i2ctest.IO{Addr: addr}
	if len(w) != 0 {
		io.W = append([]byte(nil), w...)
	}
	index := len(r.Ops)
	r.Ops = append(r.Ops, io)
	if addr != r.Addr {
		return conntest.Errorf("chiptest: no device at 0x%02X", addr)
	}
	if index == r.FailAt {
		return conntest.Errorf("chiptest: injected failure at transaction #%d", index)
	}
	if len(w) == 0 {
		return conntest.Errorf("chiptest: missing register pointer")
	}
	ptr := w[0]
	for _, b := range w[1:] {
		r.Mem[ptr] = b
		ptr++
	}
	for i := range read {
		read[i] = r.Mem[ptr]
		ptr++
	}
	if len(read) != 0 {
		r.Ops[index].R = append([]byte(nil), read...)
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (r *Regs) SetSpeed(f physic.Frequency) error {
	return nil
}

// Count returns the number of transactions seen so far.
func (r *Regs) Count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.Ops)
}

// Reset forgets the recorded transactions. Register contents are kept.
func (r *Regs) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Ops = nil
}

var _ i2c.Bus = &Regs{}
