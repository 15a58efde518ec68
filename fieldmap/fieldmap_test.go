// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fieldmap

import (
	"testing"
)

func TestMask(t *testing.T) {
	for _, test := range []struct {
		f    Field
		want uint8
	}{
		{Field{Offset: 0, Bits: 8}, 0xFF},
		{Field{Offset: 0, Bits: 1}, 0x01},
		{Field{Offset: 7, Bits: 1}, 0x80},
		{Field{Offset: 2, Bits: 3}, 0x1C},
		{Field{Offset: 4, Bits: 4}, 0xF0},
		{Field{Offset: 5, Bits: 3}, 0xE0},
	} {
		if got := test.f.Mask(); got != test.want {
			t.Errorf("%s.Mask() = 0x%02X, want 0x%02X", test.f, got, test.want)
		}
	}
}

func TestInsertExtract(t *testing.T) {
	for bits := uint8(1); bits <= 8; bits++ {
		for offset := uint8(0); offset+bits <= 8; offset++ {
			f := Field{Offset: offset, Bits: bits}
			for v := 0; v < 1<<bits; v++ {
				for _, seed := range []uint8{0x00, 0xFF, 0xA5, 0x5A} {
					r := f.Insert(seed, uint8(v))
					if got := f.Extract(r); got != uint8(v) {
						t.Fatalf("%s: Extract(Insert(0x%02X, %d)) = %d", f, seed, v, got)
					}
					if r&^f.Mask() != seed&^f.Mask() {
						t.Fatalf("%s: Insert(0x%02X, %d) = 0x%02X touched bits outside the field", f, seed, v, r)
					}
				}
			}
		}
	}
}

func TestInsertTruncates(t *testing.T) {
	f := Field{Offset: 4, Bits: 2}
	if got := f.Insert(0x00, 0xFF); got != 0x30 {
		t.Errorf("Insert() = 0x%02X, want 0x30", got)
	}
}

func TestNone(t *testing.T) {
	for _, name := range []string{"", "chip_id", "mode", "par_t1"} {
		if f, ok := (None{}).Field(name); ok {
			t.Errorf("None.Field(%q) = %s, want not found", name, f)
		}
	}
}

func TestTableExactMatch(t *testing.T) {
	if _, ok := Generic.Field("Id"); !ok {
		t.Fatal("Generic is missing Id")
	}
	for _, name := range []string{"id", "ID", "Id ", "chip", "chip_id_", "CHIP_ID"} {
		if _, ok := Generic.Field(name); ok {
			t.Errorf("Generic.Field(%q) found an entry", name)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Generic.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, f := range []Field{
		{Reg: 1, Offset: 0, Bits: 0},
		{Reg: 1, Offset: 0, Bits: 9},
		{Reg: 1, Offset: 5, Bits: 4},
		{Reg: 1, Offset: 8, Bits: 1},
	} {
		if err := (Table{"bad": f}).Validate(); err == nil {
			t.Errorf("Validate() accepted %s", f)
		} else {
			t.Log(err)
		}
	}
}
