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

// Intcode opcodes.
const (
	OpAdd  Cell = 1
	OpMul  Cell = 2
	OpIn   Cell = 3
	OpOut  Cell = 4
	OpJnz  Cell = 5
	OpJz   Cell = 6
	OpLt   Cell = 7
	OpEq   Cell = 8
	OpHalt Cell = 99
)

// Parameter modes.
const (
	ModePosition  Cell = 0
	ModeImmediate Cell = 1
)

// OpInfo describes an opcode: its mnemonic, operand count and whether the
// last operand is a store destination.
type OpInfo struct {
	Name  string
	Args  int
	Store bool
}

// Opcodes lists the valid opcodes in numerical order.
var Opcodes = [...]Cell{OpAdd, OpMul, OpIn, OpOut, OpJnz, OpJz, OpLt, OpEq, OpHalt}

var opcodes = map[Cell]OpInfo{
	OpAdd:  {"add", 3, true},
	OpMul:  {"mul", 3, true},
	OpIn:   {"in", 1, true},
	OpOut:  {"out", 1, false},
	OpJnz:  {"jnz", 2, false},
	OpJz:   {"jz", 2, false},
	OpLt:   {"lt", 3, true},
	OpEq:   {"eq", 3, true},
	OpHalt: {"hlt", 0, false},
}

// Lookup returns the description of opcode op. The boolean result is false if
// op is not a valid opcode.
func Lookup(op Cell) (OpInfo, bool) {
	info, ok := opcodes[op]
	return info, ok
}

// Decode splits an instruction cell into its opcode and parameter mode digits.
func Decode(ins Cell) (op, modes Cell) {
	return ins % 100, ins / 100
}
