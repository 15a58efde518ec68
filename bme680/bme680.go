// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bme680

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GermanBionicSystems/envsense/chip"
	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

var lg = logger.NewPackageLogger("bme680", logger.InfoLevel)

// Oversampling is the oversampling applied to one measurement channel.
type Oversampling uint8

// Possible oversampling values.
const (
	Off  Oversampling = 0
	O1x  Oversampling = 1
	O2x  Oversampling = 2
	O4x  Oversampling = 3
	O8x  Oversampling = 4
	O16x Oversampling = 5
)

// Filter is the IIR filter coefficient applied to temperature and pressure.
type Filter uint8

// Possible filtering values.
const (
	NoFilter Filter = 0
	F1       Filter = 1
	F3       Filter = 2
	F7       Filter = 3
	F15      Filter = 4
	F31      Filter = 5
	F63      Filter = 6
	F127     Filter = 7
)

const modeForced = 0b01

// Opts holds the measurement and heater configuration.
type Opts struct {
	Temperature Oversampling
	Pressure    Oversampling
	Humidity    Oversampling
	Filter      Filter
	// Profile is the heater profile slot to configure and select, 0 to 9.
	Profile uint8
	// GasWait is the raw gas_wait_x value: the time between the beginning of
	// the heating phase and the start of the resistance conversion.
	GasWait uint8
	// HeaterTemp is the heater target in °C.
	HeaterTemp int16
}

// DefaultOpts is 16x oversampling on every channel, a filter coefficient of
// 3 and heater profile 0 at 300°C after 30ms.
var DefaultOpts = Opts{
	Temperature: O16x,
	Pressure:    O16x,
	Humidity:    O16x,
	Filter:      F3,
	Profile:     0,
	GasWait:     0x1E,
	HeaterTemp:  300,
}

// Dev is a handle to an initialized BME680.
type Dev struct {
	c *chip.Chip

	mu       sync.Mutex
	cal      CalCodes
	tFine    int32
	tempComp int32
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewI2C returns a handle to the BME680 found on bus b.
//
// The addresses in Addresses are probed in order for the chip id. The
// calibration constants are then read. When opts is not nil, the sensor is
// configured with it; pass &DefaultOpts for the usual settings.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr, err := chip.Probe(b, Addresses, regChipID, chipID)
	if err != nil {
		return nil, fmt.Errorf("bme680: %w", err)
	}
	lg.Debugf("found BME680 at 0x%02X", addr)
	return New(chip.New(b, addr, FieldMap), opts)
}

// New returns a handle to the BME680 behind c without probing for it.
//
// c must resolve names through FieldMap. When opts is not nil, the sensor is
// configured with it.
func New(c *chip.Chip, opts *Opts) (*Dev, error) {
	cal, err := readCalibration(c)
	if err != nil {
		return nil, fmt.Errorf("bme680: calibration: %w", err)
	}
	d := &Dev{c: c, cal: cal}
	if opts != nil {
		if err := d.configure(opts); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return "BME680{" + d.c.String() + "}"
}

// Calibration returns the calibration constants in use.
func (d *Dev) Calibration() CalCodes {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cal
}

// Recalibrate reads the calibration constants again. On failure the
// previous constants are kept.
func (d *Dev) Recalibrate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cal, err := readCalibration(d.c)
	if err != nil {
		return fmt.Errorf("bme680: calibration: %w", err)
	}
	d.cal = cal
	return nil
}

// ChipID returns the content of the chip id register, 0x61 for a BME680.
func (d *Dev) ChipID() (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.c.ReadField("chip_id")
}

// Configure sets oversampling, filtering and enables gas measurement with
// the heater profile opts.Profile.
func (d *Dev) Configure(opts Opts) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.configure(&opts)
}

func (d *Dev) configure(opts *Opts) error {
	for _, w := range []struct {
		name  string
		value uint8
	}{
		{"osrs_h", uint8(opts.Humidity)},
		{"osrs_t", uint8(opts.Temperature)},
		{"osrs_p", uint8(opts.Pressure)},
		{"filter", uint8(opts.Filter)},
		{"run_gas", 1},
		{"nb_conv", opts.Profile},
	} {
		if err := d.c.WriteField(w.name, w.value); err != nil {
			return fmt.Errorf("bme680: configure %s: %w", w.name, err)
		}
	}
	if err := d.setGasWait(opts.GasWait, opts.Profile); err != nil {
		return err
	}
	return d.setHeaterTemp(opts.HeaterTemp, opts.Profile)
}

// ReadTemperature triggers a forced measurement and returns the compensated
// temperature in hundredths of °C.
//
// The data registers are read right after the trigger; the conversion of the
// previous measurement may be returned.
func (d *Dev) ReadTemperature() (int32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTemperature()
}

func (d *Dev) readTemperature() (int32, error) {
	if err := d.c.WriteField("mode", modeForced); err != nil {
		return 0, fmt.Errorf("bme680: trigger: %w", err)
	}
	var b [3]byte
	if err := d.c.ReadRegsStr("temp_msb", b[:]); err != nil {
		return 0, fmt.Errorf("bme680: read temperature: %w", err)
	}
	d.tempComp, d.tFine = compensateTemperature(rawADC(b[:]), &d.cal)
	lg.Infof("Temperature: %s", formatCentiCelsius(d.tempComp))
	return d.tempComp, nil
}

// TFine returns the fine resolution temperature of the last
// ReadTemperature.
func (d *Dev) TFine() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tFine
}

// RawPressure returns the uncompensated 20 bit pressure of the last
// conversion.
func (d *Dev) RawPressure() (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b [3]byte
	if err := d.c.ReadRegsStr("press_msb", b[:]); err != nil {
		return 0, fmt.Errorf("bme680: read pressure: %w", err)
	}
	return rawADC(b[:]), nil
}

// SetGasWait sets the heating duration of heater profile profile, 0 to 9.
// wait is the raw register value.
func (d *Dev) SetGasWait(wait, profile uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setGasWait(wait, profile)
}

func (d *Dev) setGasWait(wait, profile uint8) error {
	if err := d.c.WriteField(fmt.Sprintf("gas_wait_%d", profile), wait); err != nil {
		return fmt.Errorf("bme680: gas wait: %w", err)
	}
	return nil
}

// SetHeaterTemp sets the heater target of heater profile profile, 0 to 9,
// to target °C.
//
// The ambient temperature comes from the last ReadTemperature. If none was
// done yet, one is done first.
func (d *Dev) SetHeaterTemp(target int16, profile uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setHeaterTemp(target, profile)
}

func (d *Dev) setHeaterTemp(target int16, profile uint8) error {
	name := fmt.Sprintf("res_heat_%d", profile)
	if _, err := d.c.Field(name); err != nil {
		return fmt.Errorf("bme680: heater: %w", err)
	}
	// A zero reading is indistinguishable from no reading.
	if d.tempComp == 0 {
		if _, err := d.readTemperature(); err != nil {
			return err
		}
	}
	rng, err := d.c.ReadField("res_heat_range")
	if err != nil {
		return fmt.Errorf("bme680: heater: %w", err)
	}
	val, err := d.c.ReadField("res_heat_val")
	if err != nil {
		return fmt.Errorf("bme680: heater: %w", err)
	}
	// res_heat_val is a signed trim.
	r := heaterResistance(&d.cal, d.tempComp/100, int32(target), int32(rng), int32(int8(val)))
	lg.Debugf("%s: %d°C = 0x%02X", name, target, r)
	if err := d.c.WriteField(name, r); err != nil {
		return fmt.Errorf("bme680: heater: %w", err)
	}
	return nil
}

// Update implements drivers.Sensor. Only drivers.Temperature is measured.
func (d *Dev) Update(which drivers.Measurement) error {
	if which&drivers.Temperature == 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.readTemperature()
	return err
}

// Temperature returns the temperature of the last measurement in milli °C,
// the unit used by drivers.Sensor implementations.
func (d *Dev) Temperature() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tempComp * 10
}

// Sense implements physic.SenseEnv.
//
// Only the temperature is measured; the other fields of e are left as is.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.readTemperature()
	if err != nil {
		return err
	}
	e.Temperature = centiCelsius(t)
	return nil
}

// SenseContinuous implements physic.SenseEnv. Call Halt to stop it.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval <= 0 {
		return nil, errors.New("bme680: invalid interval")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("bme680: SenseContinuous already running")
	}
	stop := make(chan struct{})
	d.stop = stop
	ch := make(chan physic.Env)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(ch)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				var e physic.Env
				if err := d.Sense(&e); err != nil {
					lg.Debugf("sense: %v", err)
					continue
				}
				select {
				case ch <- e:
				case <-stop:
					return
				}
			}
		}
	}()
	return ch, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = 10 * physic.MilliKelvin
	e.Pressure = 0
	e.Humidity = 0
}

// Halt stops a SenseContinuous loop, if any. It implements conn.Resource.
//
// The sensor is left in sleep mode after a forced measurement; there is
// nothing to stop on the device itself.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	d.mu.Unlock()
	if stop == nil {
		return nil
	}
	close(stop)
	d.wg.Wait()
	return nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
var _ drivers.Sensor = &Dev{}
