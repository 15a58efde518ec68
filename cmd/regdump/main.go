// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// regdump reads and writes registers and named fields of a chip on an I²C
// bus.
//
// Without arguments it dumps -n registers starting at -r. With field names
// as arguments, it prints each field; name=value writes it first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/GermanBionicSystems/envsense/bme680"
	"github.com/GermanBionicSystems/envsense/chip"
	"github.com/GermanBionicSystems/envsense/fieldmap"
	"github.com/GermanBionicSystems/envsense/regview"
	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var maps = map[string]fieldmap.Map{
	"none":    fieldmap.None{},
	"generic": fieldmap.Generic,
	"bme680":  bme680.FieldMap,
}

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.Uint("a", 0x76, "device address")
	start := flag.Uint("r", 0, "first register to dump")
	n := flag.Uint("n", 256, "number of registers to dump")
	mapName := flag.String("m", "bme680", "field map: none, generic or bme680")
	list := flag.Bool("l", false, "list the fields of the map and exit")
	noColor := flag.Bool("nocolor", false, "disable colors")
	verbose := flag.Bool("v", false, "log register traffic")
	flag.Parse()
	if *verbose {
		_ = logger.ChangePackageLogLevel("chip", logger.DebugLevel)
	}
	m, ok := maps[*mapName]
	if !ok {
		return fmt.Errorf("unknown field map %q", *mapName)
	}
	if *list {
		return listFields(m)
	}
	if *addr > 0x7F {
		return errors.New("-a must be a 7 bit address")
	}
	if *start > 0xFF || *n == 0 || *start+*n > 0x100 {
		return errors.New("-r and -n must stay within 0x00-0xFF")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	c := chip.New(b, uint16(*addr), m)
	v := regview.New(&regview.Opts{NoColor: *noColor})
	defer v.Halt()

	if flag.NArg() == 0 {
		regs := make([]byte, *n)
		if err := c.ReadRegs(uint8(*start), regs); err != nil {
			return err
		}
		return v.Dump(uint8(*start), regs)
	}
	for _, arg := range flag.Args() {
		name, value, write := strings.Cut(arg, "=")
		f, err := c.Field(name)
		if err != nil {
			return err
		}
		if write {
			x, err := strconv.ParseUint(value, 0, 8)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := c.WriteField(name, uint8(x)); err != nil {
				return err
			}
		}
		reg, err := c.ReadReg(f.Reg)
		if err != nil {
			return err
		}
		if err := v.Field(name, f, reg); err != nil {
			return err
		}
	}
	return nil
}

func listFields(m fieldmap.Map) error {
	t, ok := m.(fieldmap.Table)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-22s %s\n", name, t[name])
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "regdump: %s.\n", err)
		os.Exit(1)
	}
}
