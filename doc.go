// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package envsense is a container for register level device drivers.
//
// The fieldmap and chip packages implement named bit-field access over any
// periph I²C bus. The bme680 package builds the Bosch BME680 calibration and
// compensation engine on top of them.
package envsense
