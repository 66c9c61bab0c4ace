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

package vm

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

type badAddress Cell

// fetch returns the value at address addr.
func (i *Instance) fetch(addr Cell) Cell {
	if addr < 0 || addr >= Cell(len(i.Mem)) {
		panic(badAddress(addr))
	}
	return i.Mem[addr]
}

// load returns the cell at PC and advances PC.
func (i *Instance) load() Cell {
	v := i.fetch(Cell(i.PC))
	i.PC++
	return v
}

// param loads the next parameter according to its mode.
func (i *Instance) param() Cell {
	m := i.modes % 10
	i.modes /= 10
	switch m {
	case ModePosition:
		return i.fetch(i.load())
	case ModeImmediate:
		return i.load()
	default:
		panic(&ErrIllegal{PC: i.ins, Ins: i.Mem[i.ins], Mode: true})
	}
}

// store writes v at the address held in the next parameter. Destinations are
// always positional, the mode digit is only checked for validity.
func (i *Instance) store(v Cell) {
	if m := i.modes % 10; m != ModePosition && m != ModeImmediate {
		panic(&ErrIllegal{PC: i.ins, Ins: i.Mem[i.ins], Mode: true})
	}
	i.modes /= 10
	addr := i.load()
	i.fetch(addr)
	i.Mem[addr] = v
}

func (i *Instance) jump(target Cell) {
	if target < 0 {
		panic(badAddress(target))
	}
	i.PC = int(target)
}

func (i *Instance) decode() {
	i.ins = i.PC
	i.op, i.modes = Decode(i.load())
	if i.log != nil && i.log.Enabled(context.Background(), slog.LevelDebug) {
		i.log.Debug("exec", "pc", i.ins, "ins", i.Mem[i.ins])
	}
}

func flag(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Run executes instructions from the current PC until the machine produces an
// output value or finishes.
//
// When an output instruction executes, Run returns its value and a nil error.
// The PC is left on the next instruction so that the following call to Run
// resumes execution right after the output.
//
// Once the machine executes a halt instruction or runs past the end of memory,
// Run returns io.EOF. Further calls keep returning io.EOF without executing
// anything.
//
// Input instructions pull their values from in. An exhausted input source
// makes Run return an error with cause ErrInputExhausted. Unknown opcodes and
// parameter modes are reported as *ErrIllegal and memory accesses out of range
// with cause ErrBadAddress. If an error occurs, the PC will point to the
// instruction that triggered the error.
func (i *Instance) Run(in Input) (v Cell, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *ErrIllegal:
				err = e
			case badAddress:
				err = errors.Wrapf(ErrBadAddress, "instruction at %d: address %d", i.ins, Cell(e))
			default:
				panic(e)
			}
			i.PC = i.ins
		}
	}()
	if i.halted {
		return 0, io.EOF
	}
	for i.PC < len(i.Mem) {
		i.decode()
		switch i.op {
		case OpAdd:
			a, b := i.param(), i.param()
			i.store(a + b)
		case OpMul:
			a, b := i.param(), i.param()
			i.store(a * b)
		case OpIn:
			x, ok := in.Next()
			if !ok {
				i.PC = i.ins
				return 0, errors.Wrapf(ErrInputExhausted, "instruction at %d", i.ins)
			}
			i.store(x)
		case OpOut:
			v = i.param()
			i.insCount++
			return v, nil
		case OpJnz:
			c, t := i.param(), i.param()
			if c != 0 {
				i.jump(t)
			}
		case OpJz:
			c, t := i.param(), i.param()
			if c == 0 {
				i.jump(t)
			}
		case OpLt:
			a, b := i.param(), i.param()
			i.store(flag(a < b))
		case OpEq:
			a, b := i.param(), i.param()
			i.store(flag(a == b))
		case OpHalt:
			i.halted = true
			i.insCount++
			return 0, io.EOF
		default:
			i.PC = i.ins
			return 0, &ErrIllegal{PC: i.ins, Ins: i.Mem[i.ins]}
		}
		i.insCount++
	}
	return 0, io.EOF
}
