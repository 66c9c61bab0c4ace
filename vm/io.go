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

// Input is the source of values for input instructions. Next returns the next
// value and true, or false if the source is exhausted.
type Input interface {
	Next() (Cell, bool)
}

// Values is an Input backed by a slice. Values are consumed from the front.
type Values []Cell

// Next implements Input.
func (v *Values) Next() (Cell, bool) {
	if len(*v) == 0 {
		return 0, false
	}
	c := (*v)[0]
	*v = (*v)[1:]
	return c, true
}

// Inputs returns an Input that yields the given values in order.
func Inputs(v ...Cell) *Values {
	vs := Values(v)
	return &vs
}

// InputFunc adapts an ordinary function to the Input interface.
type InputFunc func() (Cell, bool)

// Next implements Input.
func (f InputFunc) Next() (Cell, bool) { return f() }

// NoInput is an Input that is always exhausted.
var NoInput Input = InputFunc(func() (Cell, bool) { return 0, false })
