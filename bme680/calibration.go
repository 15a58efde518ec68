// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bme680

import (
	"github.com/GermanBionicSystems/envsense/chip"
)

// CalCodes holds the factory calibration constants of one sensor.
//
// Widths and signedness follow the datasheet; they are not uniform.
type CalCodes struct {
	ParT1 uint16
	ParT2 int16
	ParT3 int8

	ParP1  uint16
	ParP2  int16
	ParP3  int8
	ParP4  int16
	ParP5  int16
	ParP6  int8
	ParP7  int8
	ParP8  int16
	ParP9  int16
	ParP10 uint8

	ParH1 uint16
	ParH2 uint16
	ParH3 int8
	ParH4 int8
	ParH5 int8
	ParH6 uint8
	ParH7 int8

	ParG1 int8
	ParG2 int16
	ParG3 int8
}

// Lookup returns the constant with the datasheet name name, for example
// "par_g3".
func (c *CalCodes) Lookup(name string) (int32, bool) {
	switch name {
	case "par_t1":
		return int32(c.ParT1), true
	case "par_t2":
		return int32(c.ParT2), true
	case "par_t3":
		return int32(c.ParT3), true
	case "par_p1":
		return int32(c.ParP1), true
	case "par_p2":
		return int32(c.ParP2), true
	case "par_p3":
		return int32(c.ParP3), true
	case "par_p4":
		return int32(c.ParP4), true
	case "par_p5":
		return int32(c.ParP5), true
	case "par_p6":
		return int32(c.ParP6), true
	case "par_p7":
		return int32(c.ParP7), true
	case "par_p8":
		return int32(c.ParP8), true
	case "par_p9":
		return int32(c.ParP9), true
	case "par_p10":
		return int32(c.ParP10), true
	case "par_h1":
		return int32(c.ParH1), true
	case "par_h2":
		return int32(c.ParH2), true
	case "par_h3":
		return int32(c.ParH3), true
	case "par_h4":
		return int32(c.ParH4), true
	case "par_h5":
		return int32(c.ParH5), true
	case "par_h6":
		return int32(c.ParH6), true
	case "par_h7":
		return int32(c.ParH7), true
	case "par_g1":
		return int32(c.ParG1), true
	case "par_g2":
		return int32(c.ParG2), true
	case "par_g3":
		return int32(c.ParG3), true
	}
	return 0, false
}

// calReader reads registers until the first error, then does nothing.
type calReader struct {
	c   *chip.Chip
	err error
}

func (r *calReader) field(name string) uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadField(name)
	r.err = err
	return v
}

func (r *calReader) reg(reg uint8) uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadReg(reg)
	r.err = err
	return v
}

// readCalibration reads and assembles the calibration constants.
//
// Every constant costs one transaction per register it spans, 34 in total.
// The first failure stops the sequence and nothing is returned.
func readCalibration(c *chip.Chip) (CalCodes, error) {
	r := calReader{c: c}
	var cal CalCodes

	cal.ParT1 = uint16(r.field("par_t1")) | uint16(r.reg(regParT1MSB))<<8
	cal.ParT2 = int16(uint16(r.field("par_t2")) | uint16(r.reg(regParT2MSB))<<8)
	cal.ParT3 = int8(r.field("par_t3"))

	cal.ParP1 = uint16(r.field("par_p1")) | uint16(r.reg(regParP1MSB))<<8
	cal.ParP2 = int16(uint16(r.field("par_p2")) | uint16(r.reg(regParP2MSB))<<8)
	cal.ParP3 = int8(r.field("par_p3"))
	cal.ParP4 = int16(uint16(r.field("par_p4")) | uint16(r.reg(regParP4MSB))<<8)
	cal.ParP5 = int16(uint16(r.field("par_p5")) | uint16(r.reg(regParP5MSB))<<8)
	cal.ParP6 = int8(r.field("par_p6"))
	cal.ParP7 = int8(r.field("par_p7"))
	cal.ParP8 = int16(uint16(r.field("par_p8")) | uint16(r.reg(regParP8MSB))<<8)
	cal.ParP9 = int16(uint16(r.field("par_p9")) | uint16(r.reg(regParP9MSB))<<8)
	cal.ParP10 = r.field("par_p10")

	// par_h1 and par_h2 share register 0xE2, one nibble each.
	cal.ParH1 = uint16(r.field("par_h1")&0x0F) | uint16(r.reg(regParH1MSB))<<4
	cal.ParH2 = uint16(r.field("par_h2"))<<4 | uint16(r.reg(regParH2LSB))>>4
	cal.ParH3 = int8(r.field("par_h3"))
	cal.ParH4 = int8(r.field("par_h4"))
	cal.ParH5 = int8(r.field("par_h5"))
	cal.ParH6 = r.field("par_h6")
	cal.ParH7 = int8(r.field("par_h7"))

	cal.ParG1 = int8(r.field("par_g1"))
	cal.ParG2 = int16(uint16(r.field("par_g2")) | uint16(r.reg(regParG2MSB))<<8)
	cal.ParG3 = int8(r.field("par_g3"))

	if r.err != nil {
		return CalCodes{}, r.err
	}
	lg.Debugf("calibration: %+v", cal)
	return cal, nil
}
