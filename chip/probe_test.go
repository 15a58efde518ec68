// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chip

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/envsense/chip/chiptest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestProbe(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x76, W: []byte{0xD0}, R: []byte{0x60}},
			{Addr: 0x77, W: []byte{0xD0}, R: []byte{0x61}},
		},
	}
	defer bus.Close()
	got, err := Probe(&bus, []uint16{0x76, 0x77}, 0xD0, 0x61)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x77 {
		t.Fatalf("Probe() = 0x%02X, want 0x77", got)
	}
}

func TestProbe_first(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x76, W: []byte{0xD0}, R: []byte{0x61}},
		},
	}
	defer bus.Close()
	got, err := Probe(&bus, []uint16{0x76, 0x77}, 0xD0, 0x61)
	if err != nil || got != 0x76 {
		t.Fatalf("Probe() = 0x%02X, %v", got, err)
	}
}

func TestProbe_exhausted(t *testing.T) {
	// Nothing at 0x76, wrong id at 0x77.
	bus := chiptest.New(0x77)
	bus.Mem[0xD0] = 0x58
	_, err := Probe(bus, []uint16{0x76, 0x77}, 0xD0, 0x61)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("Probe() = %v, want ErrDeviceNotFound", err)
	}
	if n := bus.Count(); n != 2 {
		t.Fatalf("Probe() used %d transactions, want 2", n)
	}
}

func TestScan(t *testing.T) {
	bus := chiptest.New(0x76)
	got := Scan(bus, 0x03, 0x77)
	if len(got) != 1 || got[0] != 0x76 {
		t.Fatalf("Scan() = %v", got)
	}
	if n := bus.Count(); n != 0x77-0x03+1 {
		t.Fatalf("Scan() used %d transactions", n)
	}
	bus.Reset()
	if got := Scan(bus, 0x70, 0xFFFF); len(got) != 1 {
		t.Fatalf("Scan() = %v", got)
	}
	if n := bus.Count(); n != 0x10 {
		t.Fatalf("Scan() past 0x7F: %d transactions", n)
	}
}
