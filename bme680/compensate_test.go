// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bme680

import (
	"math/big"
	"math/rand"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// referenceTemperature evaluates the compensation formula with arbitrary
// precision integers.
func referenceTemperature(adc uint32, t1 uint16, t2 int16, t3 int8) (int64, int64) {
	n := func(v int64) *big.Int { return big.NewInt(v) }
	var1 := new(big.Int).Sub(n(int64(adc>>3)), n(int64(t1)*2))
	var2 := new(big.Int).Mul(var1, n(int64(t2)))
	var2.Rsh(var2, 11)
	half := new(big.Int).Rsh(var1, 1)
	var3 := new(big.Int).Mul(half, half)
	var3.Rsh(var3, 12)
	var3.Mul(var3, n(int64(t3)*16))
	var3.Rsh(var3, 14)
	tFine := new(big.Int).Add(var2, var3)
	temp := new(big.Int).Mul(tFine, n(5))
	temp.Add(temp, n(128))
	temp.Rsh(temp, 8)
	return temp.Int64(), tFine.Int64()
}

func TestCompensateTemperature(t *testing.T) {
	data := []struct {
		adc   uint32
		t1    uint16
		t2    int16
		t3    int8
		temp  int32
		tFine int32
	}{
		{0x7FFFF, 26190, 26470, 3, 3321, 170055},
		{500000, 26190, 26470, 3, 2555, 130817},
		{411000, 26190, 26470, 3, -254, -12990},
		{0, 26190, 26470, 3, -13213, -676512},
		// The square term exceeds 32 bits.
		{0x7FFFF, 65535, 32767, 127, -19844, -1016017},
		{0, 65535, -32768, -128, 38399, 1966052},
	}
	for i, line := range data {
		c := CalCodes{ParT1: line.t1, ParT2: line.t2, ParT3: line.t3}
		temp, tFine := compensateTemperature(line.adc, &c)
		if temp != line.temp || tFine != line.tFine {
			t.Errorf("#%d: compensateTemperature(0x%X) = %d, %d; want %d, %d", i, line.adc, temp, tFine, line.temp, line.tFine)
		}
		wantTemp, wantFine := referenceTemperature(line.adc, line.t1, line.t2, line.t3)
		if int64(temp) != wantTemp || int64(tFine) != wantFine {
			t.Errorf("#%d: reference = %d, %d", i, wantTemp, wantFine)
		}
	}
}

func TestCompensateTemperature_reference(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for range 10000 {
		adc := uint32(rnd.Intn(1 << 20))
		c := CalCodes{
			ParT1: uint16(rnd.Intn(1 << 16)),
			ParT2: int16(rnd.Intn(1<<16) - 1<<15),
			ParT3: int8(rnd.Intn(1<<8) - 1<<7),
		}
		temp, tFine := compensateTemperature(adc, &c)
		wantTemp, wantFine := referenceTemperature(adc, c.ParT1, c.ParT2, c.ParT3)
		if int64(temp) != wantTemp || int64(tFine) != wantFine {
			t.Fatalf("compensateTemperature(0x%X, %+v) = %d, %d; want %d, %d", adc, c, temp, tFine, wantTemp, wantFine)
		}
	}
}

func TestHeaterResistance(t *testing.T) {
	data := []struct {
		g1, g3   int8
		g2       int16
		amb      int32
		target   int32
		rng, val int32
		want     uint8
	}{
		{-42, 18, -13447, 25, 300, 1, 42, 106},
		{-42, 18, -13447, 25, 320, 1, 42, 111},
		{-42, 18, -13447, -10, 200, 3, 0, 44},
		{-42, 18, -13447, 40, 400, 0, -20, 220},
		{10, -5, -1000, 20, 350, 2, 10, 115},
		{0, 0, 0, 0, 0, 0, 0, 82},
	}
	for i, line := range data {
		c := CalCodes{ParG1: line.g1, ParG2: line.g2, ParG3: line.g3}
		if got := heaterResistance(&c, line.amb, line.target, line.rng, line.val); got != line.want {
			t.Errorf("#%d: heaterResistance() = %d, want %d", i, got, line.want)
		}
	}
}

func TestRawADC(t *testing.T) {
	if got := rawADC([]byte{0x7A, 0x12, 0x0F}); got != 500000 {
		t.Fatalf("rawADC() = %d", got)
	}
	if got := rawADC([]byte{0xFF, 0xFF, 0xFF}); got != 0xFFFFF {
		t.Fatalf("rawADC() = 0x%X", got)
	}
}

func TestFormatCentiCelsius(t *testing.T) {
	data := []struct {
		in   int32
		want string
	}{
		{2345, "23.45 °C"},
		{2305, "23.05 °C"},
		{0, "0.00 °C"},
		{-254, "-2.54 °C"},
		{-50, "-0.50 °C"},
	}
	for _, line := range data {
		if got := formatCentiCelsius(line.in); got != line.want {
			t.Errorf("formatCentiCelsius(%d) = %q, want %q", line.in, got, line.want)
		}
	}
}

func TestCentiCelsius(t *testing.T) {
	if got, want := centiCelsius(2555), physic.ZeroCelsius+25550*physic.MilliKelvin; got != want {
		t.Fatalf("centiCelsius() = %s, want %s", got, want)
	}
	if got, want := centiCelsius(-254), physic.ZeroCelsius-2540*physic.MilliKelvin; got != want {
		t.Fatalf("centiCelsius() = %s, want %s", got, want)
	}
}
