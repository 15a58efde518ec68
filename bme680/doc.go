// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bme680 controls a Bosch BME680 environmental sensor over I²C.
//
// The driver reads the factory calibration constants once, converts the raw
// temperature into hundredths of °C and programs the gas sensor heater
// profiles. Pressure, humidity and gas resistance are not compensated;
// RawPressure exposes the uncompensated pressure.
//
// All register accesses go through a chip.Chip using FieldMap, so every
// operation can be traced at the register level by raising the "chip"
// package log level to debug.
//
// The bme680.Dev type implements the physic.SenseEnv interface; only the
// temperature of physic.Env is set.
//
// # Datasheet
//
// https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bme680-ds001.pdf
package bme680
