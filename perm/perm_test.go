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

package perm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/db47h/intcode/perm"
)

func sum(arr []int) int {
	s := 0
	for _, v := range arr {
		s += v
	}
	return s
}

// digits reads arr as the digits of a decimal number.
func digits(arr []int64) int64 {
	var n int64
	for _, v := range arr {
		n = n*10 + v
	}
	return n
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

func TestMax_sum(t *testing.T) {
	set := []int{1, 2}
	m, err := perm.Max(set, perm.Pure(sum))
	if err != nil {
		t.Fatal(err)
	}
	if m != 3 {
		t.Errorf("expected 3, got %d", m)
	}
}

func TestMax_digits(t *testing.T) {
	set := []int64{0, 1, 2, 3, 4}
	m, arg, err := perm.MaxArg(set, perm.Pure(digits))
	if err != nil {
		t.Fatal(err)
	}
	if m != 43210 {
		t.Errorf("expected 43210, got %d", m)
	}
	if digits(arg) != 43210 {
		t.Errorf("expected arrangement 4 3 2 1 0, got %v", arg)
	}
	for i, v := range set {
		if v != int64(i) {
			t.Fatalf("set order not restored: %v", set)
		}
	}
}

func TestEach(t *testing.T) {
	for n := 0; n <= 6; n++ {
		set := make([]int, n)
		for i := range set {
			set[i] = i
		}
		seen := make(map[int]bool)
		count := 0
		perm.Each(set, func(arr []int) error {
			count++
			key := 0
			for _, v := range arr {
				key = key*10 + v
			}
			seen[key] = true
			return nil
		})
		if count != factorial(n) || len(seen) != factorial(n) {
			t.Errorf("n=%d: expected %d distinct permutations, got %d calls, %d distinct", n, factorial(n), count, len(seen))
		}
		for i, v := range set {
			if v != i {
				t.Errorf("n=%d: set order not restored: %v", n, set)
				break
			}
		}
	}
}

func TestMax_error(t *testing.T) {
	errBoom := errors.New("boom")
	set := []int{3, 1, 2}
	calls := 0
	_, err := perm.Max(set, func(arr []int) (int, error) {
		calls++
		if calls == 3 {
			return 0, errBoom
		}
		return sum(arr), nil
	})
	if err != errBoom {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if calls != 3 {
		t.Errorf("search not aborted: %d calls", calls)
	}
	if set[0] != 3 || set[1] != 1 || set[2] != 2 {
		t.Errorf("set order not restored: %v", set)
	}
	if _, arg, err := perm.MaxArg(set, func([]int) (int, error) { return 0, errBoom }); err != errBoom || arg != nil {
		t.Errorf("expected errBoom and no arrangement, got %v, %v", arg, err)
	}
}

func TestMax_seed(t *testing.T) {
	m, arg, err := perm.MaxArg([]int64{1, 2}, perm.Pure(func([]int64) int64 { return math.MinInt64 }))
	if err != nil {
		t.Fatal(err)
	}
	if m != math.MinInt64 || len(arg) != 2 {
		t.Errorf("expected MinInt64 with an arrangement, got %d, %v", m, arg)
	}
	m8, err := perm.Max([]int8{}, perm.Pure(func([]int8) int8 { return math.MinInt8 }))
	if err != nil || m8 != math.MinInt8 {
		t.Errorf("expected %d, got %d (%v)", math.MinInt8, m8, err)
	}
}
