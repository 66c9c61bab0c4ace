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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	args	description
//	------	---	----	------------------------------------------------
//	1	add	a b d	d = a + b
//	2	mul	a b d	d = a * b
//	3	in	d	d = next input value
//	4	out	a	output a
//	5	jnz	c t	jump to t if c != 0
//	6	jz	c t	jump to t if c == 0
//	7	lt	a b d	d = 1 if a < b, 0 otherwise
//	8	eq	a b d	d = 1 if a == b, 0 otherwise
//	99	hlt		halt
//
// Operands:
//
// An operand is an integer literal (see strconv.ParseInt), the name of a
// constant, or the name of a label. It is compiled in position mode: the
// operand is the address of the value. Prefixing it with a '#' compiles it in
// immediate mode: the operand is the value itself. The parameter mode digits
// of the instruction are computed accordingly. Store destinations (the d
// operands above) cannot be immediate.
//
//	add 9 #8 10	( compiles as 1001 9 8 10 )
//	jnz #1 loop	( compiles as 1105 1 <address of loop> )
//
// Input is split at white space into tokens, so more than one instruction may
// appear on the same line. Comments are placed between parentheses, separated
// from their content by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operands before or after their definition:
//
//	:loop	in x
//		out x
//		jnz #1 loop
//	:x	.dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer literal or a
// previously defined constant.
//
//	.dat <value>
//
// compiles the specified integer literal, constant or label address as-is.
// This is primarily used for data storage.
package asm
