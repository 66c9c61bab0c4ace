// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors
// with their position in the source code.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i, nil
}

// decode returns the instruction at pc if it is valid, i.e. has a known
// opcode, operands that fit in img, and valid parameter modes.
func decode(img vm.Image, pc int) (info vm.OpInfo, modes vm.Cell, ok bool) {
	op, modes := vm.Decode(img[pc])
	info, ok = vm.Lookup(op)
	if !ok || pc+info.Args >= len(img) {
		return info, 0, false
	}
	m := modes
	for n := 0; n < info.Args; n++ {
		d := m % 10
		m /= 10
		if d != vm.ModePosition && d != vm.ModeImmediate ||
			d == vm.ModeImmediate && info.Store && n == info.Args-1 {
			return info, 0, false
		}
	}
	return info, modes, m == 0
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given image to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that do not decode to a valid
// instruction are written as a .dat directive.
func Disassemble(img vm.Image, pc int, w io.Writer) (next int, err error) {
	ew := errw.New(w)
	info, modes, ok := decode(img, pc)
	if !ok {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(img[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, info.Name)
	pc++
	for n := 0; n < info.Args; n++ {
		ew.Write([]byte{' '})
		if modes%10 == vm.ModeImmediate {
			ew.Write([]byte{'#'})
		}
		modes /= 10
		io.WriteString(ew, strconv.FormatInt(int64(img[pc]), 10))
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img vm.Image, base int, w io.Writer) error {
	ew := errw.New(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
