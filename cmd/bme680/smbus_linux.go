// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"github.com/GermanBionicSystems/envsense/bme680"
	"github.com/GermanBionicSystems/envsense/i2cadapt"
	"periph.io/x/conn/v3/i2c"
)

func openSMBus(n int) (i2c.BusCloser, error) {
	return i2cadapt.OpenSMBus(n, uint8(bme680.Addresses[0]))
}
