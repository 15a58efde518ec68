// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fieldmap

// Generic is the field table of a generic Bosch BME-family chip: control,
// status and data registers only.
//
// It carries no calibration or heater profile slots. The bme680 package
// defines its own, larger table for the environmental sensor; names present
// in both tables resolve to the same descriptors.
var Generic = Table{
	"status":  {Reg: 0x73, Offset: 0, Bits: 8, Writable: true},
	"reset":   {Reg: 0xE0, Offset: 0, Bits: 8, Writable: true},
	"Id":      {Reg: 0xD0, Offset: 0, Bits: 8, Writable: false},
	"chip_id": {Reg: 0xD0, Offset: 0, Bits: 8, Writable: false},

	// Measurement control.
	"Config":    {Reg: 0x75, Offset: 0, Bits: 8, Writable: true},
	"filter":    {Reg: 0x75, Offset: 2, Bits: 3, Writable: true},
	"ctrl_meas": {Reg: 0x74, Offset: 0, Bits: 8, Writable: true},
	"osrs_t":    {Reg: 0x74, Offset: 5, Bits: 3, Writable: true},
	"osrs_p":    {Reg: 0x74, Offset: 2, Bits: 3, Writable: true},
	"mode":      {Reg: 0x74, Offset: 0, Bits: 2, Writable: true},
	"Ctrl_hum":  {Reg: 0x72, Offset: 0, Bits: 8, Writable: true},
	"osrs_h":    {Reg: 0x72, Offset: 0, Bits: 3, Writable: true},

	// Gas control.
	"ctrl_gas_1": {Reg: 0x71, Offset: 0, Bits: 8, Writable: true},
	"ctrl_gas_0": {Reg: 0x70, Offset: 4, Bits: 2, Writable: true},
	"run_gas":    {Reg: 0x71, Offset: 4, Bits: 1, Writable: true},
	"nb_conv":    {Reg: 0x71, Offset: 0, Bits: 4, Writable: true},
	"heat_off":   {Reg: 0x70, Offset: 3, Bits: 1, Writable: true},

	// Measurement status.
	"meas_status_0":    {Reg: 0x1D, Offset: 0, Bits: 8, Writable: false},
	"new_data_0":       {Reg: 0x1D, Offset: 7, Bits: 1, Writable: false},
	"gas_measuring":    {Reg: 0x1D, Offset: 6, Bits: 1, Writable: false},
	"measuring":        {Reg: 0x1D, Offset: 5, Bits: 1, Writable: false},
	"gas_meas_index_0": {Reg: 0x1D, Offset: 0, Bits: 4, Writable: false},

	// Data.
	"gas_r_lsb":   {Reg: 0x2B, Offset: 0, Bits: 8, Writable: false},
	"gas_range_r": {Reg: 0x2B, Offset: 0, Bits: 4, Writable: false},
	"heat_stab_r": {Reg: 0x2B, Offset: 4, Bits: 1, Writable: false},
	"gas_valid_r": {Reg: 0x2B, Offset: 5, Bits: 1, Writable: false},
	"gas_r_msb":   {Reg: 0x2A, Offset: 0, Bits: 8, Writable: false},
	"hum_lsb":     {Reg: 0x26, Offset: 0, Bits: 8, Writable: false},
	"hum_msb":     {Reg: 0x25, Offset: 0, Bits: 8, Writable: false},
	"temp_xlsb":   {Reg: 0x24, Offset: 4, Bits: 4, Writable: false},
	"temp_lsb":    {Reg: 0x23, Offset: 0, Bits: 8, Writable: false},
	"temp_msb":    {Reg: 0x22, Offset: 0, Bits: 8, Writable: false},
	"press_xlsb":  {Reg: 0x21, Offset: 4, Bits: 4, Writable: false},
	"press_lsb":   {Reg: 0x20, Offset: 0, Bits: 8, Writable: false},
	"press_msb":   {Reg: 0x1F, Offset: 0, Bits: 8, Writable: false},
}
