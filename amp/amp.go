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

package amp

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/db47h/intcode/perm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrNoSignal is the cause of the error returned in serial mode when an
// amplifier halts without producing a signal.
var ErrNoSignal = errors.New("amplifier halted without output")

// Mode selects how amplifiers are wired.
type Mode int

// Wiring modes.
const (
	SerialMode Mode = iota
	FeedbackMode
)

var modeNames = [...]string{"serial", "feedback"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return 0, errors.Errorf("unknown amplifier mode %q", s)
}

// Phases returns the default set of phase settings for the mode: 0 to 4 in
// serial mode, 5 to 9 in feedback mode.
func (m Mode) Phases() []vm.Cell {
	if m == FeedbackMode {
		return []vm.Cell{5, 6, 7, 8, 9}
	}
	return []vm.Cell{0, 1, 2, 3, 4}
}

// Option configures a pipeline.
type Option func(*pipeline)

// Logger sets the logger used to report amplifier visits at debug level.
func Logger(l *slog.Logger) Option {
	return func(p *pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// MachineOptions sets options applied to every amplifier machine.
func MachineOptions(opts ...vm.Option) Option {
	return func(p *pipeline) { p.vmOpts = append(p.vmOpts, opts...) }
}

type pipeline struct {
	prog   vm.Image
	log    *slog.Logger
	vmOpts []vm.Option
}

func newPipeline(prog vm.Image, opts []Option) *pipeline {
	p := &pipeline{
		prog: prog,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// run feeds signal through one amplifier per phase setting. If cycle is false,
// the amplifiers are visited once. Otherwise they are visited in a loop until
// one of them halts.
func (p *pipeline) run(phases []vm.Cell, signal vm.Cell, cycle bool) (vm.Cell, error) {
	if len(phases) == 0 {
		return signal, nil
	}
	amps := make([]*vm.Instance, len(phases))
	for n := 0; ; n++ {
		k := n % len(amps)
		if k == 0 && n > 0 && !cycle {
			return signal, nil
		}
		in := vm.Inputs(signal)
		if amps[k] == nil {
			a, err := vm.New(p.prog, p.vmOpts...)
			if err != nil {
				return 0, err
			}
			amps[k] = a
			in = vm.Inputs(phases[k], signal)
		}
		v, err := amps[k].Run(in)
		switch {
		case err == io.EOF:
			if !cycle {
				return 0, errors.Wrapf(ErrNoSignal, "amplifier %d", k)
			}
			p.log.Debug("halt", "amp", k, "visit", n, "signal", signal)
			return signal, nil
		case err != nil:
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		p.log.Debug("signal", "amp", k, "visit", n, "in", signal, "out", v)
		signal = v
	}
}

// Serial runs the program in serial mode with the given phase settings and
// initial signal, and returns the output of the last amplifier.
func Serial(prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (vm.Cell, error) {
	return newPipeline(prog, opts).run(phases, signal, false)
}

// Feedback runs the program in feedback mode with the given phase settings and
// initial signal, and returns the last signal produced before an amplifier
// halts.
//
// There is no bound on the number of loops: a program that never halts will
// never return.
func Feedback(prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (vm.Cell, error) {
	return newPipeline(prog, opts).run(phases, signal, true)
}

// Run runs the program in the given mode.
func Run(mode Mode, prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (vm.Cell, error) {
	switch mode {
	case SerialMode:
		return Serial(prog, phases, signal, opts...)
	case FeedbackMode:
		return Feedback(prog, phases, signal, opts...)
	}
	return 0, errors.Errorf("invalid amplifier mode %d", int(mode))
}

// Result is the outcome of a phase setting search.
type Result struct {
	Mode   Mode
	Signal vm.Cell   // strongest signal
	Phases []vm.Cell // phase settings yielding Signal
}

// Search tries every permutation of phases in the given mode and returns the
// strongest signal together with the phase settings that produced it. The
// order of phases is unchanged when Search returns.
func Search(mode Mode, prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (Result, error) {
	if mode != SerialMode && mode != FeedbackMode {
		return Result{}, errors.Errorf("invalid amplifier mode %d", int(mode))
	}
	p := newPipeline(prog, opts)
	cycle := mode == FeedbackMode
	s, arg, err := perm.MaxArg(phases, func(arr []vm.Cell) (vm.Cell, error) {
		v, err := p.run(arr, signal, cycle)
		if err != nil {
			return 0, errors.Wrapf(err, "phases %v", arr)
		}
		return v, nil
	})
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s search", mode)
	}
	p.log.Info("search done", "mode", mode, "signal", s, "phases", arg)
	return Result{Mode: mode, Signal: s, Phases: arg}, nil
}
