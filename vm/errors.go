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
	"strconv"

	"github.com/pkg/errors"
)

// ErrInputExhausted is the cause of the error returned by Run when an input
// instruction executes and the input source has no more values.
var ErrInputExhausted = errors.New("input exhausted")

// ErrBadAddress is the cause of the error returned by Run when an instruction
// reads or writes outside of memory.
var ErrBadAddress = errors.New("address out of range")

// ErrIllegal is returned by Run when the instruction at PC has an unknown
// opcode or an unknown parameter mode digit.
type ErrIllegal struct {
	PC   int  // address of the faulting instruction
	Ins  Cell // raw instruction cell
	Mode bool // true if the parameter mode was at fault, false for the opcode
}

func (e *ErrIllegal) Error() string {
	what := "opcode"
	if e.Mode {
		what = "parameter mode"
	}
	return "illegal " + what + " in instruction " + strconv.FormatInt(int64(e.Ins), 10) +
		" at " + strconv.Itoa(e.PC)
}

// IsIllegal returns true if the cause of err is an *ErrIllegal.
func IsIllegal(err error) bool {
	_, ok := errors.Cause(err).(*ErrIllegal)
	return ok
}
