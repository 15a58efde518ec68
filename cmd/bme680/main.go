// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// bme680 probes for a BME680, configures its heater profile and prints the
// temperature until interrupted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/envsense/bme680"
	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	smbusID := flag.Int("smbus", -1, "use /dev/i2c-N through SMBus commands instead of periph")
	interval := flag.Duration("i", time.Second, "interval between measurements")
	count := flag.Int("n", 0, "number of measurements, 0 to run until interrupted")
	profile := flag.Uint("profile", 0, "heater profile, 0 to 9")
	heater := flag.Int("heater", int(bme680.DefaultOpts.HeaterTemp), "heater target in °C")
	wait := flag.Uint("wait", uint(bme680.DefaultOpts.GasWait), "raw gas_wait register value")
	ledName := flag.String("led", "", "GPIO pin to blink on every measurement")
	verbose := flag.Bool("v", false, "log register traffic")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *profile > 9 {
		return errors.New("-profile must be between 0 and 9")
	}
	if *wait > 0xFF {
		return errors.New("-wait must fit in a byte")
	}
	if *verbose {
		_ = logger.ChangePackageLogLevel("chip", logger.DebugLevel)
		_ = logger.ChangePackageLogLevel("bme680", logger.DebugLevel)
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	var b i2c.BusCloser
	var err error
	if *smbusID >= 0 {
		b, err = openSMBus(*smbusID)
	} else {
		b, err = i2creg.Open(*busName)
	}
	if err != nil {
		return err
	}
	defer b.Close()

	var led gpio.PinIO
	if *ledName != "" {
		if led = gpioreg.ByName(*ledName); led == nil {
			return fmt.Errorf("invalid GPIO pin %q", *ledName)
		}
		defer led.Out(gpio.Low)
	}

	opts := bme680.DefaultOpts
	opts.Profile = uint8(*profile)
	opts.HeaterTemp = int16(*heater)
	opts.GasWait = uint8(*wait)
	d, err := bme680.NewI2C(b, &opts)
	if err != nil {
		return err
	}
	defer d.Halt()
	fmt.Printf("%s\n", d)

	c, err := d.SenseContinuous(*interval)
	if err != nil {
		return err
	}
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	level := gpio.Low
	for i := 0; *count == 0 || i < *count; i++ {
		var e physic.Env
		select {
		case <-sig:
			return nil
		case e = <-c:
		}
		p, err := d.RawPressure()
		if err != nil {
			return err
		}
		fmt.Printf("%8s  raw pressure %d\n", e.Temperature, p)
		if led != nil {
			level = !level
			if err := led.Out(level); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "bme680: %s.\n", err)
		os.Exit(1)
	}
}
