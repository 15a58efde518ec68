// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cadapt

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/envsense/chip"
	"github.com/GermanBionicSystems/envsense/chip/chiptest"
	"github.com/GermanBionicSystems/envsense/fieldmap"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func TestTinyGo(t *testing.T) {
	regs := chiptest.New(0x76)
	regs.Mem[0x74] = 0b10110100
	// chiptest.Regs only has to be a drivers.I2C here.
	b := &TinyGo{Bus: regs}
	c := chip.New(b, 0x76, fieldmap.Generic)
	if err := c.WriteField("mode", 1); err != nil {
		t.Fatal(err)
	}
	want := []i2ctest.IO{
		{Addr: 0x76, W: []byte{0x74}, R: []byte{0b10110100}},
		{Addr: 0x76, W: []byte{0x74, 0b10110101}},
	}
	if diff := cmp.Diff(want, regs.Ops); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if s := c.String(); s != "chip{tinygo(118)}" {
		t.Fatal(s)
	}
}

func TestTinyGo_error(t *testing.T) {
	b := &TinyGo{Bus: chiptest.New(0x77), Name: "i2c0"}
	_, err := chip.NewGeneric(b, 0x76).ReadReg(0xD0)
	var te *chip.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("got %v", err)
	}
	if err := b.SetSpeed(400 * physic.KiloHertz); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v", err)
	}
	if b.String() != "i2c0" {
		t.Fatal(b.String())
	}
}

func TestTinyGo_record(t *testing.T) {
	regs := chiptest.New(0x77)
	regs.Mem[0xD0] = 0x61
	rec := i2ctest.Record{Bus: &TinyGo{Bus: regs}}
	addr, err := chip.Probe(&rec, []uint16{0x76, 0x77}, 0xD0, 0x61)
	if err != nil {
		t.Fatal(err)
	}
	if addr != 0x77 {
		t.Fatalf("Probe() = 0x%02X", addr)
	}
	// Record only keeps the successful transactions.
	want := []i2ctest.IO{{Addr: 0x77, W: []byte{0xD0}, R: []byte{0x61}}}
	if diff := cmp.Diff(want, rec.Ops); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
