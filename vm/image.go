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

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/errw"
	"github.com/pkg/errors"
)

// Image encapsulates a program's memory.
type Image []Cell

// Clone returns a copy of the image that shares no memory with img.
func (img Image) Clone() Image {
	c := make(Image, len(img))
	copy(c, img)
	return c
}

func scanCommas(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, bufio.ErrFinalToken
	}
	return 0, nil, nil
}

// Parse reads a program in its text form: a list of comma separated integers.
// White space around values is ignored, as are trailing commas.
func Parse(r io.Reader) (Image, error) {
	var img Image
	s := bufio.NewScanner(r)
	s.Split(scanCommas)
	empty := -1
	for n := 0; s.Scan(); n++ {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			if empty < 0 {
				empty = n
			}
			continue
		}
		if empty >= 0 {
			return nil, errors.Errorf("Parse: missing value at cell %d", empty)
		}
		v, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: cell %d", n)
		}
		img = append(img, Cell(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	return img, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Image, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return img, nil
}

// WriteTo writes the image in its text form, followed by a new line.
func (img Image) WriteTo(w io.Writer) (int64, error) {
	ew := errw.New(w)
	start := ew.N
	var b []byte
	for n, c := range img {
		b = b[:0]
		if n > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(c), 10)
		if _, err := ew.Write(b); err != nil {
			return ew.N - start, err
		}
	}
	ew.Write([]byte{'\n'})
	return ew.N - start, ew.Err
}

// String returns the text form of the image, without the trailing new line.
func (img Image) String() string {
	var sb strings.Builder
	img.WriteTo(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Save writes the image to file fileName in its text form.
func Save(fileName string, img Image) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Save")
	}
	w := bufio.NewWriter(f)
	if _, err = img.WriteTo(w); err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, "Save")
}
