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

// Package perm implements exhaustive searches over the permutations of a set
// of values.
//
// Permutations are generated in place by swapping: every candidate is swapped
// into the first position, the remaining positions are permuted recursively,
// then the candidate is swapped back. Once a search returns, the set is in its
// original order again, so callers can reuse it without making a copy.
package perm

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Objective evaluates one arrangement of a set. The arrangement is only valid
// for the duration of the call: it must not be modified nor retained.
type Objective[T constraints.Signed] func(arr []T) (T, error)

// Pure adapts an objective function that cannot fail.
func Pure[T constraints.Signed](f func(arr []T) T) Objective[T] {
	return func(arr []T) (T, error) { return f(arr), nil }
}

// minValue returns the smallest value representable by T.
func minValue[T constraints.Signed]() T {
	var z T
	return T(1) << (8*unsafe.Sizeof(z) - 1)
}

// Each calls f for every permutation of set. Iteration stops at the first
// non-nil error returned by f, which Each returns. The order of set is
// restored in all cases.
func Each[T any](set []T, f func(arr []T) error) error {
	return each(set, 0, f)
}

func each[T any](set []T, pos int, f func([]T) error) error {
	if pos == len(set) {
		return f(set)
	}
	for i := pos; i < len(set); i++ {
		set[pos], set[i] = set[i], set[pos]
		err := each(set, pos+1, f)
		set[pos], set[i] = set[i], set[pos]
		if err != nil {
			return err
		}
	}
	return nil
}

// Max returns the largest value of f over all the permutations of set. If set
// is empty, f is evaluated once on the empty arrangement.
//
// The search is aborted by the first error returned by f.
func Max[T constraints.Signed](set []T, f Objective[T]) (T, error) {
	m := minValue[T]()
	err := Each(set, func(arr []T) error {
		v, err := f(arr)
		if err != nil {
			return err
		}
		m = max(m, v)
		return nil
	})
	return m, err
}

// MaxArg is like Max but also returns a copy of the first arrangement found
// that yields the maximum.
func MaxArg[T constraints.Signed](set []T, f Objective[T]) (T, []T, error) {
	m := minValue[T]()
	var arg []T
	err := Each(set, func(arr []T) error {
		v, err := f(arr)
		if err != nil {
			return err
		}
		if arg == nil || v > m {
			m = v
			arg = append(arg[:0], arr...)
		}
		return nil
	})
	if err != nil {
		return m, nil, err
	}
	return m, arg, nil
}
