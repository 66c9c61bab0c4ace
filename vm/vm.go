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
	"io"
	"log/slog"
	"strconv"

	"github.com/db47h/intcode/internal/errw"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode machine instance.
//
// An Instance owns its memory: New copies the program image, so any number of
// instances created from the same image never interfere with each other.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Mem      Image // Memory
	ins      int   // address of the instruction being executed
	op       Cell  // decoded opcode
	modes    Cell  // parameter modes not yet consumed
	halted   bool
	insCount int64
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Trace enables instruction tracing. Every decoded instruction is logged to l
// at debug level. A nil logger disables tracing.
func Trace(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance running a private copy of the
// given program image. Execution starts at address 0.
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: image.Clone(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Finished returns true once the machine has executed a halt instruction or
// its PC has moved past the end of memory. Run is a no-op on a finished
// machine.
func (i *Instance) Finished() bool {
	return i.halted || i.PC >= len(i.Mem)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the PC followed by the memory contents to the specified
// io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := errw.New(w)
	io.WriteString(ew, "pc ")
	io.WriteString(ew, strconv.Itoa(i.PC))
	ew.Write([]byte{'\n'})
	if _, err := i.Mem.WriteTo(ew); err != nil {
		return err
	}
	return ew.Err
}
