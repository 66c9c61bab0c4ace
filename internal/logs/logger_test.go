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

package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for s, exp := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		l, err := ParseLevel(s)
		if err != nil || l != exp {
			t.Errorf("%s: expected %v, got %v (%v)", s, exp, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error")
	}
}

func TestNew(t *testing.T) {
	var b bytes.Buffer
	fileName := filepath.Join(t.TempDir(), "amplify.log")
	l, closeFn, err := New(&b, slog.LevelInfo, fileName)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("search done", "signal", 43210)
	if err = closeFn(); err != nil {
		t.Fatal(err)
	}

	// not a terminal: JSON output
	var rec map[string]any
	if err = json.Unmarshal(b.Bytes(), &rec); err != nil {
		t.Fatalf("%v: %q", err, b.String())
	}
	if rec["msg"] != "search done" || rec["signal"] != float64(43210) {
		t.Errorf("unexpected record %v", rec)
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "hidden") || !strings.Contains(string(content), `"signal":43210`) {
		t.Errorf("unexpected log file content %q", content)
	}
}
