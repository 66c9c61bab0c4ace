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

package amp_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type C []vm.Cell

func equal(a, b C) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var searchTests = [...]struct {
	name   string
	mode   amp.Mode
	code   string
	signal vm.Cell
	phases C
}{
	{"serial_1", amp.SerialMode, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", 43210, C{4, 3, 2, 1, 0}},
	{"serial_2", amp.SerialMode, "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0", 54321, C{0, 1, 2, 3, 4}},
	{"serial_3", amp.SerialMode, "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0", 65210, C{1, 0, 4, 3, 2}},
	{"feedback_1", amp.FeedbackMode, "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5", 139629729, C{9, 8, 7, 6, 5}},
	{"feedback_2", amp.FeedbackMode, "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10", 18216, C{9, 7, 8, 5, 6}},
}

func TestSearch(t *testing.T) {
	for _, test := range searchTests {
		prog, err := vm.ParseString(test.code)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		phases := test.mode.Phases()
		orig := append(C(nil), phases...)
		r, err := amp.Search(test.mode, prog, phases, 0)
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if r.Signal != test.signal || !equal(r.Phases, test.phases) || r.Mode != test.mode {
			t.Errorf("%s: expected %d with phases %v, got %d with %v", test.name, test.signal, test.phases, r.Signal, r.Phases)
		}
		if !equal(phases, orig) {
			t.Errorf("%s: phase set order not restored: %v", test.name, phases)
		}

		// running the best phase settings directly yields the same signal.
		v, err := amp.Run(test.mode, prog, test.phases, 0)
		if err != nil || v != test.signal {
			t.Errorf("%s: Run: expected %d, got %d (%v)", test.name, test.signal, v, err)
		}
	}
}

// passthrough reads its phase setting, then outputs input+1 on its first two
// visits and halts on the third one.
var passthrough = vm.Image{
	3, 18, // in phase
	3, 19, // loop: in x
	101, 1, 19, 19, // x = 1 + x
	4, 19, // out x
	1001, 20, -1, 20, // n = n - 1
	1005, 20, 2, // jnz n loop
	99,
	0, 0, 2, // phase, x, n
}

func TestFeedback_termination(t *testing.T) {
	v, err := amp.Feedback(passthrough, C{5, 6, 7, 8, 9}, 0)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	// 5 amplifiers producing 2 signals each before the first one halts.
	if v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
	v, err = amp.Serial(passthrough, C{0, 1, 2, 3, 4}, 100)
	if err != nil || v != 105 {
		t.Errorf("expected 105, got %d (%v)", v, err)
	}
}

func TestErrors(t *testing.T) {
	_, err := amp.Serial(vm.Image{3, 0, 3, 0, 99}, C{0, 1}, 0)
	if errors.Cause(err) != amp.ErrNoSignal {
		t.Errorf("expected ErrNoSignal, got %v", err)
	}
	_, err = amp.Feedback(vm.Image{3, 0, 3, 0, 42}, C{5, 6}, 0)
	if !vm.IsIllegal(err) {
		t.Errorf("expected illegal instruction, got %v", err)
	}
	_, err = amp.Search(amp.SerialMode, vm.Image{3, 0, 3, 0, 3, 0, 99}, C{0, 1}, 0)
	if errors.Cause(err) != vm.ErrInputExhausted {
		t.Errorf("expected ErrInputExhausted, got %v", err)
	}
	if _, err = amp.Search(amp.Mode(7), passthrough, C{0}, 0); err == nil {
		t.Error("expected error on invalid mode")
	}
	if _, err = amp.Run(amp.Mode(-1), passthrough, C{0}, 0); err == nil {
		t.Error("expected error on invalid mode")
	}
}

func TestEmptyPipeline(t *testing.T) {
	v, err := amp.Feedback(passthrough, nil, 42)
	if err != nil || v != 42 {
		t.Errorf("expected 42, got %d (%v)", v, err)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []amp.Mode{amp.SerialMode, amp.FeedbackMode} {
		p, err := amp.ParseMode(strings.ToUpper(m.String()))
		if err != nil || p != m {
			t.Errorf("%s: got %v, %v", m, p, err)
		}
	}
	if _, err := amp.ParseMode("loop"); err == nil {
		t.Error("expected error")
	}
	if s := amp.Mode(3).String(); s != "Mode(3)" {
		t.Errorf("unexpected %q", s)
	}
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := amp.Feedback(passthrough, C{5, 6}, 0, amp.Logger(l)); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(b.String(), "msg=signal"); n != 4 {
		t.Errorf("expected 4 signal lines, got %d:\n%s", n, b.String())
	}
	if n := strings.Count(b.String(), "msg=halt"); n != 1 {
		t.Errorf("expected 1 halt line, got %d:\n%s", n, b.String())
	}
}
