// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// i2cscan lists the addresses answering on an I²C bus.
//
// Each address gets a single zero byte write. Some devices treat it as a
// register pointer write; it is harmless on register addressed chips.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GermanBionicSystems/envsense/chip"
	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	first := flag.Uint("first", 0x03, "first address to scan")
	last := flag.Uint("last", 0x77, "last address to scan")
	verbose := flag.Bool("v", false, "log every address")
	flag.Parse()
	if *first > *last || *last > 0x7F {
		return errors.New("invalid address range")
	}
	if *verbose {
		_ = logger.ChangePackageLogLevel("chip", logger.DebugLevel)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	found := chip.Scan(b, uint16(*first), uint16(*last))
	for _, addr := range found {
		fmt.Printf("Found device at address 0x%02X\n", addr)
	}
	if len(found) == 0 {
		fmt.Printf("No device found on %s\n", b)
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "i2cscan: %s.\n", err)
		os.Exit(1)
	}
}
