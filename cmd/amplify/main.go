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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/internal/logs"
	"github.com/db47h/intcode/internal/store"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// cellList is a comma separated list of integers.
type cellList []vm.Cell

func (l *cellList) String() string { return vm.Image(*l).String() }
func (l *cellList) Set(s string) error {
	img, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*l = cellList(img)
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type options struct {
	configs  fileList
	program  string
	signal   int64
	mode     string
	phases   cellList
	db       string
	history  bool
	disasm   bool
	input    cellList
	dump     bool
	trace    bool
	debug    bool
	logLevel string
	logFile  string
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("amplify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.configs, "config", "load configuration from CUE file `filename` (can be specified multiple times)")
	fs.StringVar(&o.program, "program", "", "load the Intcode program from `filename` (default stdin)")
	fs.Int64Var(&o.signal, "signal", 0, "initial input signal")
	fs.StringVar(&o.mode, "mode", "", "amplifier `mode`: serial, feedback or both (default both)")
	fs.Var(&o.phases, "phases", "comma separated phase settings to permute (requires a single -mode)")
	fs.StringVar(&o.db, "db", "", "record results in the SQLite database `filename`")
	fs.BoolVar(&o.history, "history", false, "print the results recorded for the program and exit")
	fs.BoolVar(&o.disasm, "disasm", false, "print a disassembly of the program and exit")
	fs.Var(&o.input, "run", "run the program once with the given comma separated `input` values and print its output")
	fs.BoolVar(&o.dump, "dump", false, "with -run, dump the PC and memory upon exit")
	fs.BoolVar(&o.trace, "trace", false, "log every executed instruction (implies -debug)")
	fs.BoolVar(&o.debug, "debug", false, "enable debug diagnostics")
	fs.StringVar(&o.logLevel, "log-level", "", "log `level`: debug, info, warn or error")
	fs.StringVar(&o.logFile, "log-file", "", "also write JSON logs to `filename`")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return &o, fs, nil
}

// apply overrides cfg with the flags set on the command line.
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) error {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "program":
			cfg.Program = o.program
		case "signal":
			cfg.Signal = o.signal
		case "db":
			cfg.Store = config.Store{Kind: "sqlite", Path: o.db}
		case "log-level":
			cfg.Log.Level = o.logLevel
		case "log-file":
			cfg.Log.File = o.logFile
		}
	})
	if o.debug || o.trace {
		cfg.Log.Level = "debug"
	}
	switch o.mode {
	case "", "both":
	default:
		m, err := amp.ParseMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Serial.Enabled = m == amp.SerialMode
		cfg.Feedback.Enabled = m == amp.FeedbackMode
	}
	if o.phases != nil {
		phases := make([]int64, len(o.phases))
		for i, p := range o.phases {
			phases[i] = int64(p)
		}
		switch {
		case cfg.Serial.Enabled && cfg.Feedback.Enabled:
			return errors.New("-phases requires a single -mode")
		case cfg.Serial.Enabled:
			cfg.Serial.Phases = phases
		case cfg.Feedback.Enabled:
			cfg.Feedback.Phases = phases
		}
	}
	return cfg.Validate()
}

func loadProgram(name string, stdin io.Reader) (vm.Image, error) {
	if name == "" || name == "-" {
		img, err := vm.Parse(bufio.NewReader(stdin))
		return img, errors.Wrap(err, "stdin")
	}
	return vm.Load(name)
}

func cells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for i, x := range v {
		c[i] = vm.Cell(x)
	}
	return c
}

// runOnce runs prog as a single machine and prints its output values.
func runOnce(prog vm.Image, input []vm.Cell, dump bool, log *slog.Logger, opts []vm.Option, stdout io.Writer) error {
	i, err := vm.New(prog, opts...)
	if err != nil {
		return err
	}
	in := vm.Inputs(input...)
	for err == nil {
		var v vm.Cell
		if v, err = i.Run(in); err == nil {
			fmt.Fprintln(stdout, v)
		}
	}
	log.Debug("run done", "pc", i.PC, "instructions", i.InstructionCount())
	if err == io.EOF {
		err = nil
	}
	if dump {
		if e := i.Dump(stdout); err == nil {
			err = e
		}
	}
	return err
}

func printHistory(ctx context.Context, st store.Store, prog vm.Image, stdout io.Writer) error {
	records, err := st.Records(ctx, store.ProgramSum(prog))
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Fprintf(stdout, "%s %s %s: %d %v (signal %d)\n",
			r.Created.Format("2006-01-02T15:04:05Z"), r.ID, r.Mode, r.Result, r.Phases, r.Signal)
	}
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configs...)
	if err != nil {
		return err
	}
	if err = o.apply(fs, &cfg); err != nil {
		return err
	}

	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, closeLog, err := logs.New(stderr, level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if e := closeLog(); err == nil {
			err = e
		}
	}()

	prog, err := loadProgram(cfg.Program, stdin)
	if err != nil {
		return err
	}
	log.Debug("program loaded", "cells", len(prog), "sum", store.ProgramSum(prog))

	var vmOpts []vm.Option
	if o.trace {
		vmOpts = append(vmOpts, vm.Trace(log))
	}

	switch {
	case o.disasm:
		return asm.DisassembleAll(prog, 0, stdout)
	case o.input != nil:
		return runOnce(prog, o.input, o.dump, log, vmOpts, stdout)
	}

	var st store.Store
	if cfg.Store.Kind != "" || o.history {
		if st, err = store.NewStore(cfg.Store.Kind, cfg.Store.Path); err != nil {
			return err
		}
		if err = st.Init(ctx); err != nil {
			return err
		}
		defer func() {
			if e := store.CloseIfSupported(st); err == nil {
				err = e
			}
		}()
	}
	if o.history {
		return printHistory(ctx, st, prog, stdout)
	}

	signal := vm.Cell(cfg.Signal)
	for _, m := range []struct {
		mode amp.Mode
		cfg  config.Mode
	}{
		{amp.SerialMode, cfg.Serial},
		{amp.FeedbackMode, cfg.Feedback},
	} {
		if !m.cfg.Enabled {
			continue
		}
		r, err := amp.Search(m.mode, prog, cells(m.cfg.Phases), signal,
			amp.Logger(log), amp.MachineOptions(vmOpts...))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d %v\n", r.Mode, r.Signal, r.Phases)
		if st != nil {
			rec := store.NewRecord(prog, signal, r)
			if err = st.SaveRecord(ctx, rec); err != nil {
				return err
			}
			log.Info("result recorded", "id", rec.ID, "mode", rec.Mode)
		}
	}
	return nil
}

func atExit(err error, debug bool) {
	if err == nil || err == flag.ErrHelp {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	err := run(context.Background(), os.Args[1:], os.Stdin, stdout, os.Stderr)
	if e := stdout.Flush(); err == nil {
		err = e
	}
	debug := false
	for _, a := range os.Args[1:] {
		if a == "-debug" || a == "--debug" || a == "-trace" || a == "--trace" {
			debug = true
		}
	}
	atExit(err, debug)
}
