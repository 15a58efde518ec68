// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bme680

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// compensateTemperature converts the 20 bit raw temperature adc into
// hundredths of °C. It also returns the fine resolution accumulator used by
// the pressure and humidity formulas.
//
// Intermediates are 64 bits wide: the square term overflows 32 bits for
// legitimate inputs.
func compensateTemperature(adc uint32, c *CalCodes) (tempComp, tFine int32) {
	var1 := int64(adc>>3) - int64(c.ParT1)<<1
	var2 := (var1 * int64(c.ParT2)) >> 11
	var3 := ((((var1 >> 1) * (var1 >> 1)) >> 12) * (int64(c.ParT3) << 4)) >> 14
	tFine = int32(var2 + var3)
	tempComp = (tFine*5 + 128) >> 8
	return tempComp, tFine
}

// heaterResistance returns the res_heat_x register value that makes the
// heater reach target °C with the sensor at ambTemp °C.
//
// rng and val are the res_heat_range and res_heat_val factory trims. The
// computation is done in 32 bits; the result is truncated to a byte.
func heaterResistance(c *CalCodes, ambTemp, target, rng, val int32) uint8 {
	var1 := ((ambTemp * int32(c.ParG3)) / 10) << 8
	var2 := (int32(c.ParG1) + 784) * ((((int32(c.ParG2)+154009)*target*5)/100 + 3276800) / 10)
	var3 := var1 + (var2 >> 1)
	var4 := var3 / (rng + 4)
	var5 := 131*val + 65536
	x100 := ((var4 / var5) - 250) * 34
	return uint8((x100 + 50) / 100)
}

// rawADC packs the msb, lsb and xlsb registers of a 20 bit measurement.
func rawADC(b []byte) uint32 {
	return uint32(b[0])<<12 | uint32(b[1])<<4 | uint32(b[2])>>4
}

// centiCelsius converts hundredths of °C into a physic.Temperature.
func centiCelsius(v int32) physic.Temperature {
	return physic.Temperature(v)*10*physic.MilliKelvin + physic.ZeroCelsius
}

// formatCentiCelsius formats hundredths of °C as "23.45 °C".
func formatCentiCelsius(v int32) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d °C", sign, v/100, v%100)
}
