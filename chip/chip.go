// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package chip provides register and bit-field access to a device sitting on
// an I²C bus.
//
// A Chip pairs one device address with an optional fieldmap.Map. Registers
// can be addressed by number (ReadReg, WriteReg, ReadRegs) or through the map
// by name (ReadField, WriteField and the *Str variants). Both paths share the
// same transactions.
//
// A Chip is not safe for concurrent use. WriteField is a read-modify-write
// sequence of two bus transactions; two callers writing different fields of
// the same register at the same time can lose an update. When the bus is
// shared with other devices, the caller must serialize whole transactions.
package chip

import (
	"encoding/binary"

	"github.com/GermanBionicSystems/envsense/fieldmap"
	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

var lg = logger.NewPackageLogger("chip", logger.InfoLevel)

// Chip is a register addressed device on an I²C bus.
type Chip struct {
	d      *i2c.Dev
	regs   mmr.Dev8
	fields fieldmap.Map
}

// New returns a Chip at address addr on bus b, resolving field names through
// m. A nil m is the same as fieldmap.None.
func New(b i2c.Bus, addr uint16, m fieldmap.Map) *Chip {
	if m == nil {
		m = fieldmap.None{}
	}
	d := &i2c.Dev{Bus: b, Addr: addr}
	return &Chip{
		d:      d,
		regs:   mmr.Dev8{Conn: d, Order: binary.LittleEndian},
		fields: m,
	}
}

// NewGeneric returns a Chip without a field map. Only the numeric register
// operations are usable.
func NewGeneric(b i2c.Bus, addr uint16) *Chip {
	return New(b, addr, fieldmap.None{})
}

// Addr returns the 7 bit device address.
func (c *Chip) Addr() uint16 {
	return c.d.Addr
}

// Fields returns the map used to resolve names.
func (c *Chip) Fields() fieldmap.Map {
	return c.fields
}

func (c *Chip) String() string {
	return "chip{" + c.d.String() + "}"
}

// ReadReg reads the register reg in one transaction.
func (c *Chip) ReadReg(reg uint8) (uint8, error) {
	v, err := c.regs.ReadUint8(reg)
	if err != nil {
		return 0, &TransportError{Op: "read", Reg: reg, Err: err}
	}
	lg.Debugf("0x%02X: read reg 0x%02X = 0x%02X", c.d.Addr, reg, v)
	return v, nil
}

// WriteReg writes value to the register reg in one transaction. The write
// is not read back.
func (c *Chip) WriteReg(reg, value uint8) error {
	if err := c.regs.WriteUint8(reg, value); err != nil {
		return &TransportError{Op: "write", Reg: reg, Err: err}
	}
	lg.Debugf("0x%02X: write reg 0x%02X = 0x%02X", c.d.Addr, reg, value)
	return nil
}

// ReadRegs fills out with len(out) consecutive registers starting at reg.
//
// It is a single burst transaction and relies on the device auto-incrementing
// its register pointer.
func (c *Chip) ReadRegs(reg uint8, out []byte) error {
	if err := c.d.Tx([]byte{reg}, out); err != nil {
		return &TransportError{Op: "burst read", Reg: reg, Err: err}
	}
	lg.Debugf("0x%02X: read %d regs from 0x%02X = % X", c.d.Addr, len(out), reg, out)
	return nil
}

// Field resolves name through the chip's map.
func (c *Chip) Field(name string) (fieldmap.Field, error) {
	f, ok := c.fields.Field(name)
	if !ok {
		return fieldmap.Field{}, &FieldError{Name: name}
	}
	return f, nil
}

// ReadField reads the register holding the field name and returns the field
// value, right aligned.
func (c *Chip) ReadField(name string) (uint8, error) {
	f, err := c.Field(name)
	if err != nil {
		return 0, err
	}
	v, err := c.ReadReg(f.Reg)
	if err != nil {
		return 0, err
	}
	v = f.Extract(v)
	lg.Debugf("0x%02X: field %s = 0x%02X", c.d.Addr, name, v)
	return v, nil
}

// WriteField replaces the field name with value, leaving the other bits of the
// register untouched. Bits of value that don't fit in the field are dropped.
//
// The register is read then written back; the sequence is not atomic.
func (c *Chip) WriteField(name string, value uint8) error {
	f, err := c.Field(name)
	if err != nil {
		return err
	}
	if !f.Writable {
		lg.Debugf("0x%02X: writing read-only field %s", c.d.Addr, name)
	}
	cur, err := c.ReadReg(f.Reg)
	if err != nil {
		return err
	}
	return c.WriteReg(f.Reg, f.Insert(cur, value))
}

// ReadRegStr reads the whole register holding the field name. The field's
// offset and width are ignored.
func (c *Chip) ReadRegStr(name string) (uint8, error) {
	f, err := c.Field(name)
	if err != nil {
		return 0, err
	}
	return c.ReadReg(f.Reg)
}

// WriteRegStr writes value to the whole register holding the field name.
func (c *Chip) WriteRegStr(name string, value uint8) error {
	f, err := c.Field(name)
	if err != nil {
		return err
	}
	return c.WriteReg(f.Reg, value)
}

// ReadRegsStr is ReadRegs anchored at the register holding the field name.
func (c *Chip) ReadRegsStr(name string, out []byte) error {
	f, err := c.Field(name)
	if err != nil {
		return err
	}
	return c.ReadRegs(f.Reg, out)
}
