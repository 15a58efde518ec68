// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package regview prints register contents on a terminal, with one ANSI
// color block per byte next to its hexadecimal value.
//
// Useful to eyeball which bits change between two dumps of a chip.
package regview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/envsense/fieldmap"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the view.
type Opts struct {
	// Width is the number of registers per line. Defaults to 16.
	Width int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// NoColor prints the hexadecimal values only.
	NoColor bool

	_ struct{}
}

// Dev writes register dumps to a terminal.
type Dev struct {
	w       io.Writer
	width   int
	palette ansi256.Palette
	noColor bool

	buf bytes.Buffer
}

// New returns a Dev that prints on stdout.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that prints to w. opts can be nil.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	width := opts.Width
	if width <= 0 {
		width = 16
	}
	return &Dev{w: w, width: width, palette: *p, noColor: opts.NoColor}
}

func (d *Dev) String() string {
	return "RegView"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Dump prints regs, the content of the registers starting at start.
func (d *Dev) Dump(start uint8, regs []byte) error {
	d.buf.Reset()
	for i := 0; i < len(regs); i += d.width {
		end := i + d.width
		if end > len(regs) {
			end = len(regs)
		}
		line := regs[i:end]
		fmt.Fprintf(&d.buf, "0x%02X:", int(start)+i)
		for _, v := range line {
			fmt.Fprintf(&d.buf, " %02X", v)
		}
		if !d.noColor {
			// Pad short lines so the blocks stay aligned.
			for j := len(line); j < d.width; j++ {
				_, _ = d.buf.WriteString("   ")
			}
			_, _ = d.buf.WriteString("  ")
			for _, v := range line {
				_, _ = io.WriteString(&d.buf, d.palette.Block(Heat(v)))
			}
			_, _ = d.buf.WriteString("\033[0m")
		}
		_ = d.buf.WriteByte('\n')
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Field prints one named field and the register byte holding it.
func (d *Dev) Field(name string, f fieldmap.Field, reg uint8) error {
	d.buf.Reset()
	v := f.Extract(reg)
	fmt.Fprintf(&d.buf, "%-16s 0x%02X [%d:%d] = 0x%02X (%0*b)", name, f.Reg, f.Offset+f.Bits-1, f.Offset, v, int(f.Bits), v)
	if !d.noColor {
		_, _ = d.buf.WriteString("  ")
		_, _ = io.WriteString(&d.buf, d.palette.Block(Heat(reg)))
		_, _ = d.buf.WriteString("\033[0m")
	}
	_ = d.buf.WriteByte('\n')
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Heat returns the color used for the register value v: blue for 0x00
// through red for 0xFF.
func Heat(v byte) color.NRGBA {
	return color.NRGBA{R: v, G: 0, B: 255 - v, A: 255}
}

var _ fmt.Stringer = &Dev{}
