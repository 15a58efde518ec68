// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chip

import (
	"periph.io/x/conn/v3/i2c"
)

// Probe looks for a device answering id in register idReg at each of addrs,
// in order, and returns the first address that matched.
//
// Each candidate costs exactly one read transaction. A candidate that fails
// the transaction is skipped. When no candidate matches, ErrDeviceNotFound is
// returned and nothing else is sent on the bus.
func Probe(b i2c.Bus, addrs []uint16, idReg, id uint8) (uint16, error) {
	for _, addr := range addrs {
		v, err := NewGeneric(b, addr).ReadReg(idReg)
		if err != nil {
			lg.Debugf("0x%02X: probe: %v", addr, err)
			continue
		}
		if v == id {
			lg.Debugf("0x%02X: probe: found id 0x%02X", addr, v)
			return addr, nil
		}
		lg.Debugf("0x%02X: probe: id 0x%02X, want 0x%02X", addr, v, id)
	}
	return 0, ErrDeviceNotFound
}

// Scan sends a single zero byte to every address in [first, last] and returns
// the addresses that acknowledged it. Addresses above 0x7F are not scanned.
func Scan(b i2c.Bus, first, last uint16) []uint16 {
	if last > 0x7F {
		last = 0x7F
	}
	var found []uint16
	for addr := first; addr <= last; addr++ {
		if err := b.Tx(addr, []byte{0x00}, nil); err != nil {
			lg.Debugf("0x%02X: no device", addr)
			continue
		}
		lg.Debugf("0x%02X: found device", addr)
		found = append(found, addr)
	}
	return found
}
