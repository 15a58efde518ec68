// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fieldmap describes named bit-fields of byte wide device registers.
//
// A Field locates a run of bits inside one 8 bit register. A Map resolves a
// symbolic name into its Field. Maps are static, read-only tables that can be
// shared by any number of chips.
package fieldmap

import "fmt"

// Field describes a bit range inside one register.
//
// Offset+Bits never exceeds 8. A Field with Offset 0 and Bits 8 covers the
// whole register.
type Field struct {
	Reg      uint8
	Offset   uint8
	Bits     uint8
	Writable bool
}

// Mask returns the bits of the register covered by the field.
func (f Field) Mask() uint8 {
	return uint8(((1 << f.Bits) - 1) << f.Offset)
}

// Extract returns the field value held in the register value v.
func (f Field) Extract(v uint8) uint8 {
	return (v & f.Mask()) >> f.Offset
}

// Insert returns the register value v with the field replaced by value.
//
// Bits of value that do not fit in the field are dropped. Bits of v outside
// of the field are returned unchanged.
func (f Field) Insert(v, value uint8) uint8 {
	m := f.Mask()
	return (v &^ m) | ((value << f.Offset) & m)
}

func (f Field) String() string {
	return fmt.Sprintf("Field{Reg:0x%02X, Offset:%d, Bits:%d, Writable:%t}", f.Reg, f.Offset, f.Bits, f.Writable)
}

func (f Field) valid() bool {
	return f.Bits >= 1 && f.Bits <= 8 && f.Offset <= 7 && f.Offset+f.Bits <= 8
}

// Map resolves a field name into its descriptor.
//
// Lookups are exact and case-sensitive. There are no partial matches and no
// defaults.
type Map interface {
	Field(name string) (Field, bool)
}

// None is the Map of a chip addressed purely by register number. It never
// finds anything.
type None struct{}

// Field implements Map.
func (None) Field(string) (Field, bool) {
	return Field{}, false
}

// Table is a Map backed by a Go map.
type Table map[string]Field

// Field implements Map.
func (t Table) Field(name string) (Field, bool) {
	f, ok := t[name]
	return f, ok
}

// Validate returns an error describing the first descriptor that doesn't fit
// in a byte wide register.
func (t Table) Validate() error {
	for name, f := range t {
		if !f.valid() {
			return fmt.Errorf("fieldmap: %q: invalid %s", name, f)
		}
	}
	return nil
}

var _ Map = None{}
var _ Map = Table{}
