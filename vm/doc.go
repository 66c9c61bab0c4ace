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

// Package vm implements a resumable Intcode machine.
//
// An Intcode program is a flat sequence of integers, loaded in memory and
// executed from address 0. Instructions are encoded as a two digit opcode, the
// remaining leading digits giving the addressing mode of each parameter, from
// right to left: 0 for position mode (the parameter is the address of the
// value) and 1 for immediate mode (the parameter is the value itself). Store
// destinations are always in position mode.
//
//	opcode	asm	args	description
//	------	---	----	------------------------------------------------
//	1	add	a b d	d = a + b
//	2	mul	a b d	d = a * b
//	3	in	d	d = next input value
//	4	out	a	output a and suspend
//	5	jnz	c t	jump to t if c != 0
//	6	jz	c t	jump to t if c == 0
//	7	lt	a b d	d = 1 if a < b, 0 otherwise
//	8	eq	a b d	d = 1 if a == b, 0 otherwise
//	99	hlt		halt
//
// Execution is caller driven: Instance.Run returns as soon as an output
// instruction executes, and the next call resumes right after it. No
// goroutines are involved, the machine state simply stays in the Instance
// between calls.
//
// For all intents and purposes, the PC is not incremented in a single place:
// each parameter fetch advances it.
package vm
