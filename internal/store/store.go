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

// Package store persists the results of phase setting searches.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CurrentSchemaVersion is the version of the Record layout written by this
// package.
const CurrentSchemaVersion = 1

// ErrVersionMismatch is returned when decoding a record written with an
// unknown schema version.
var ErrVersionMismatch = errors.New("record version mismatch")

// Record is the outcome of one search.
type Record struct {
	SchemaVersion int       `json:"schema_version"`
	ID            string    `json:"id"`
	Program       string    `json:"program"` // see ProgramSum
	Mode          string    `json:"mode"`
	Signal        int64     `json:"signal"` // initial signal
	Result        int64     `json:"result"`
	Phases        []int64   `json:"phases"`
	Created       time.Time `json:"created"`
}

// Store defines persistence operations for search results.
type Store interface {
	Init(ctx context.Context) error
	SaveRecord(ctx context.Context, r Record) error
	// Records returns the records for the given program sum, oldest first.
	Records(ctx context.Context, program string) ([]Record, error)
}

// ProgramSum returns the identifier of a program: the hex encoded SHA-256 sum
// of its text form.
func ProgramSum(prog vm.Image) string {
	s := sha256.Sum256([]byte(prog.String()))
	return hex.EncodeToString(s[:])
}

// NewRecord returns a new record for the result r of a search on prog
// starting with the given signal.
func NewRecord(prog vm.Image, signal vm.Cell, r amp.Result) Record {
	phases := make([]int64, len(r.Phases))
	for i, p := range r.Phases {
		phases[i] = int64(p)
	}
	return Record{
		SchemaVersion: CurrentSchemaVersion,
		ID:            uuid.NewString(),
		Program:       ProgramSum(prog),
		Mode:          r.Mode.String(),
		Signal:        int64(signal),
		Result:        int64(r.Signal),
		Phases:        phases,
		Created:       time.Now().UTC(),
	}
}

// EncodeRecord returns the JSON payload of r.
func EncodeRecord(r Record) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRecord decodes a JSON payload written by EncodeRecord.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, errors.Wrap(err, "decode record")
	}
	if r.SchemaVersion != CurrentSchemaVersion {
		return Record{}, errors.Wrapf(ErrVersionMismatch, "record %s: schema version %d", r.ID, r.SchemaVersion)
	}
	return r, nil
}

// NewStore returns a store of the given kind. An empty kind selects the
// memory store.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, errors.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes the store if it has a Close method.
func CloseIfSupported(s Store) error {
	closer, ok := s.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
