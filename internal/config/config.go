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

// Package config loads the amplify configuration from CUE files.
//
// A configuration file looks like:
//
//	program: "input.txt"
//	signal:  0
//	serial: phases: [0, 1, 2, 3, 4]
//	feedback: {
//		enabled: true
//		phases: [5, 6, 7, 8, 9]
//	}
//	store: {
//		kind: "sqlite"
//		path: "amplify.db"
//	}
//	log: level: "debug"
//
// All fields are optional. When several files are loaded, the first file
// defining a value wins.
package config

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pkg/errors"
)

const schema = `
program?: string
signal?:  int
serial?:   #Mode
feedback?: #Mode
store?: {
	kind?: "memory" | "sqlite"
	path?: string
}
log?: {
	level?: "debug" | "info" | "warn" | "error"
	file?:  string
}
#Mode: {
	enabled?: bool
	phases?: [...int]
}
`

// Mode configures one amplifier wiring mode.
type Mode struct {
	Enabled bool    `json:"enabled"`
	Phases  []int64 `json:"phases"`
}

// Store configures result persistence. An empty Kind disables it.
type Store struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// Log configures logging.
type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Config is the amplify configuration.
type Config struct {
	Program  string `json:"program"`
	Signal   int64  `json:"signal"`
	Serial   Mode   `json:"serial"`
	Feedback Mode   `json:"feedback"`
	Store    Store  `json:"store"`
	Log      Log    `json:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Serial:   Mode{Enabled: true, Phases: []int64{0, 1, 2, 3, 4}},
		Feedback: Mode{Enabled: true, Phases: []int64{5, 6, 7, 8, 9}},
		Log:      Log{Level: "info"},
	}
}

// Load returns the default configuration overridden by the values found in
// the given CUE files.
func Load(filePaths ...string) (Config, error) {
	cfg := Default()
	if len(filePaths) == 0 {
		return cfg, nil
	}

	ctx := cuecontext.New()
	sch := ctx.CompileString("close({" + schema + "})")
	if err := sch.Err(); err != nil {
		return cfg, errors.Wrap(err, "config schema")
	}

	var roots []cue.Value
	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return cfg, errors.Wrap(err, "config")
		}
		v := ctx.CompileBytes(content, cue.Filename(filePath))
		if err = v.Err(); err != nil {
			return cfg, errors.Wrapf(err, "config %s", filePath)
		}
		if err = sch.Unify(v).Validate(); err != nil {
			return cfg, errors.Wrapf(err, "config %s", filePath)
		}
		roots = append(roots, v)
	}

	for _, f := range []struct {
		path   string
		target any
	}{
		{"program", &cfg.Program},
		{"signal", &cfg.Signal},
		{"serial.enabled", &cfg.Serial.Enabled},
		{"serial.phases", &cfg.Serial.Phases},
		{"feedback.enabled", &cfg.Feedback.Enabled},
		{"feedback.phases", &cfg.Feedback.Phases},
		{"store.kind", &cfg.Store.Kind},
		{"store.path", &cfg.Store.Path},
		{"log.level", &cfg.Log.Level},
		{"log.file", &cfg.Log.File},
	} {
		if err := assignFirst(roots, f.path, f.target); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// assignFirst decodes into target the value at path in the first root
// defining it.
func assignFirst(roots []cue.Value, path string, target any) error {
	p := cue.ParsePath(path)
	for _, root := range roots {
		v := root.LookupPath(p)
		if !v.Exists() {
			continue
		}
		if err := v.Decode(target); err != nil {
			return errors.Wrapf(err, "config %s", path)
		}
		return nil
	}
	return nil
}

func distinct(phases []int64) bool {
	seen := make(map[int64]bool, len(phases))
	for _, p := range phases {
		if seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// Validate checks the consistency of the configuration.
func (c Config) Validate() error {
	if !distinct(c.Serial.Phases) {
		return errors.Errorf("config: duplicate serial phase settings %v", c.Serial.Phases)
	}
	if !distinct(c.Feedback.Phases) {
		return errors.Errorf("config: duplicate feedback phase settings %v", c.Feedback.Phases)
	}
	if c.Store.Kind == "sqlite" && c.Store.Path == "" {
		return errors.New("config: sqlite store requires a path")
	}
	return nil
}
