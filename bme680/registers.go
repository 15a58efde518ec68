// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bme680

import "github.com/GermanBionicSystems/envsense/fieldmap"

const (
	chipID    = 0x61
	regChipID = 0xD0
)

// Addresses lists the I²C addresses the sensor can answer on, in the order
// NewI2C probes them. The address depends on the SDO pin level.
var Addresses = []uint16{0x76, 0x77}

// Companion registers holding the other half of split calibration constants.
const (
	regParT1MSB = 0xEA
	regParT2MSB = 0x8B
	regParP1MSB = 0x8F
	regParP2MSB = 0x91
	regParP4MSB = 0x95
	regParP5MSB = 0x97
	regParP8MSB = 0x9D
	regParP9MSB = 0x9F
	regParH1MSB = 0xE3
	regParH2LSB = 0xE2
	regParG2MSB = 0xEC
)

// FieldMap is the field table of the BME680.
//
// It holds the control, status and data registers shared with
// fieldmap.Generic, the factory calibration constants and the ten heater
// profile slots.
var FieldMap = fieldmap.Table{
	"status":  {Reg: 0x73, Offset: 0, Bits: 8, Writable: true},
	"reset":   {Reg: 0xE0, Offset: 0, Bits: 8, Writable: true},
	"Id":      {Reg: 0xD0, Offset: 0, Bits: 8, Writable: false},
	"chip_id": {Reg: 0xD0, Offset: 0, Bits: 8, Writable: false},

	"Config":    {Reg: 0x75, Offset: 0, Bits: 8, Writable: true},
	"filter":    {Reg: 0x75, Offset: 2, Bits: 3, Writable: true},
	"ctrl_meas": {Reg: 0x74, Offset: 0, Bits: 8, Writable: true},
	"osrs_t":    {Reg: 0x74, Offset: 5, Bits: 3, Writable: true},
	"osrs_p":    {Reg: 0x74, Offset: 2, Bits: 3, Writable: true},
	"mode":      {Reg: 0x74, Offset: 0, Bits: 2, Writable: true},
	"Ctrl_hum":  {Reg: 0x72, Offset: 0, Bits: 8, Writable: true},
	"osrs_h":    {Reg: 0x72, Offset: 0, Bits: 3, Writable: true},

	"ctrl_gas_1": {Reg: 0x71, Offset: 0, Bits: 8, Writable: true},
	"ctrl_gas_0": {Reg: 0x70, Offset: 4, Bits: 2, Writable: true},
	"run_gas":    {Reg: 0x71, Offset: 4, Bits: 1, Writable: true},
	"nb_conv":    {Reg: 0x71, Offset: 0, Bits: 4, Writable: true},
	"heat_off":   {Reg: 0x70, Offset: 3, Bits: 1, Writable: true},

	// Heater profiles.
	"gas_wait_0": {Reg: 0x64, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_1": {Reg: 0x65, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_2": {Reg: 0x66, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_3": {Reg: 0x67, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_4": {Reg: 0x68, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_5": {Reg: 0x69, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_6": {Reg: 0x6A, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_7": {Reg: 0x6B, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_8": {Reg: 0x6C, Offset: 0, Bits: 8, Writable: true},
	"gas_wait_9": {Reg: 0x6D, Offset: 0, Bits: 8, Writable: true},
	"res_heat_0": {Reg: 0x5A, Offset: 0, Bits: 8, Writable: true},
	"res_heat_1": {Reg: 0x5B, Offset: 0, Bits: 8, Writable: true},
	"res_heat_2": {Reg: 0x5C, Offset: 0, Bits: 8, Writable: true},
	"res_heat_3": {Reg: 0x5D, Offset: 0, Bits: 8, Writable: true},
	"res_heat_4": {Reg: 0x5E, Offset: 0, Bits: 8, Writable: true},
	"res_heat_5": {Reg: 0x5F, Offset: 0, Bits: 8, Writable: true},
	"res_heat_6": {Reg: 0x60, Offset: 0, Bits: 8, Writable: true},
	"res_heat_7": {Reg: 0x61, Offset: 0, Bits: 8, Writable: true},
	"res_heat_8": {Reg: 0x62, Offset: 0, Bits: 8, Writable: true},
	"res_heat_9": {Reg: 0x63, Offset: 0, Bits: 8, Writable: true},

	"meas_status_0":    {Reg: 0x1D, Offset: 0, Bits: 8, Writable: false},
	"new_data_0":       {Reg: 0x1D, Offset: 7, Bits: 1, Writable: false},
	"gas_measuring":    {Reg: 0x1D, Offset: 6, Bits: 1, Writable: false},
	"measuring":        {Reg: 0x1D, Offset: 5, Bits: 1, Writable: false},
	"gas_meas_index_0": {Reg: 0x1D, Offset: 0, Bits: 4, Writable: false},

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

	// Calibration, factory programmed.
	"par_t1":  {Reg: 0xE9, Offset: 0, Bits: 8, Writable: false},
	"par_t2":  {Reg: 0x8A, Offset: 0, Bits: 8, Writable: false},
	"par_t3":  {Reg: 0x8C, Offset: 0, Bits: 8, Writable: false},
	"par_p1":  {Reg: 0x8E, Offset: 0, Bits: 8, Writable: false},
	"par_p2":  {Reg: 0x90, Offset: 0, Bits: 8, Writable: false},
	"par_p3":  {Reg: 0x92, Offset: 0, Bits: 8, Writable: false},
	"par_p4":  {Reg: 0x94, Offset: 0, Bits: 8, Writable: false},
	"par_p5":  {Reg: 0x96, Offset: 0, Bits: 8, Writable: false},
	"par_p6":  {Reg: 0x99, Offset: 0, Bits: 8, Writable: false},
	"par_p7":  {Reg: 0x98, Offset: 0, Bits: 8, Writable: false},
	"par_p8":  {Reg: 0x9C, Offset: 0, Bits: 8, Writable: false},
	"par_p9":  {Reg: 0x9E, Offset: 0, Bits: 8, Writable: false},
	"par_p10": {Reg: 0xA0, Offset: 0, Bits: 8, Writable: false},
	"par_h1":  {Reg: 0xE2, Offset: 0, Bits: 8, Writable: false},
	"par_h2":  {Reg: 0xE1, Offset: 0, Bits: 8, Writable: false},
	"par_h3":  {Reg: 0xE4, Offset: 0, Bits: 8, Writable: false},
	"par_h4":  {Reg: 0xE5, Offset: 0, Bits: 8, Writable: false},
	"par_h5":  {Reg: 0xE6, Offset: 0, Bits: 8, Writable: false},
	"par_h6":  {Reg: 0xE7, Offset: 0, Bits: 8, Writable: false},
	"par_h7":  {Reg: 0xE8, Offset: 0, Bits: 8, Writable: false},
	"par_g1":  {Reg: 0xED, Offset: 0, Bits: 8, Writable: false},
	"par_g2":  {Reg: 0xEB, Offset: 0, Bits: 8, Writable: false},
	"par_g3":  {Reg: 0xEE, Offset: 0, Bits: 8, Writable: false},

	"res_heat_range":        {Reg: 0x02, Offset: 4, Bits: 2, Writable: false},
	"res_heat_val":          {Reg: 0x00, Offset: 0, Bits: 8, Writable: false},
	"range_switching_error": {Reg: 0x04, Offset: 0, Bits: 8, Writable: false},
}
