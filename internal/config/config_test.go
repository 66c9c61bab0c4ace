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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_default(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	first := writeFile(t, "first.cue", `
program: "day7.txt"
feedback: phases: [9, 8, 7, 6, 5]
store: {
	kind: "sqlite"
	path: "amplify.db"
}
`)
	second := writeFile(t, "second.cue", `
program: "ignored.txt"
signal: 3
serial: enabled: false
feedback: enabled: false
log: level: "debug"
`)
	cfg, err := Load(first, second)
	if err != nil {
		t.Fatal(err)
	}
	exp := Config{
		Program:  "day7.txt",
		Signal:   3,
		Serial:   Mode{Enabled: false, Phases: []int64{0, 1, 2, 3, 4}},
		Feedback: Mode{Enabled: false, Phases: []int64{9, 8, 7, 6, 5}},
		Store:    Store{Kind: "sqlite", Path: "amplify.db"},
		Log:      Log{Level: "debug"},
	}
	if !reflect.DeepEqual(cfg, exp) {
		t.Errorf("expected %+v\ngot      %+v", exp, cfg)
	}
}

func TestLoad_errors(t *testing.T) {
	for name, content := range map[string]string{
		"unknown_field": `phase: 3`,
		"bad_type":      `signal: "zero"`,
		"bad_kind":      `store: kind: "redis"`,
		"syntax":        `signal: [`,
		"duplicates":    `serial: phases: [1, 1, 2]`,
		"sqlite_path":   `store: kind: "sqlite"`,
	} {
		if _, err := Load(writeFile(t, name+".cue", content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.cue")); err == nil {
		t.Error("expected error on missing file")
	}
}
