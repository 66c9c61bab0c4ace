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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

var mnemonics = make(map[string]vm.Cell)

func init() {
	for _, op := range vm.Opcodes {
		info, _ := vm.Lookup(op)
		mnemonics[info.Name] = op
	}
}

var modeWeight = [...]vm.Cell{100, 1000, 10000}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i      vm.Image
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]vm.Cell
	errs   ErrAsm

	// instruction being assembled
	insPC int
	info  vm.OpInfo
	arg   int
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]vm.Cell),
		arg:    -1,
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	p.i = append(p.i, v)
}

func (p *parser) useLabel(pos scanner.Position, name string) {
	lbl := p.labels[name]
	if lbl == nil {
		// use current position as valid temp position
		lbl = &label{labelSite{pos, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, len(p.i)})
}

func (p *parser) defineLabel(pos scanner.Position, name string) {
	if name == "" {
		p.error(pos, "Empty label name")
		return
	}
	if _, ok := p.consts[name]; ok {
		p.error(pos, "Label redefinition: "+name+", previously defined as a constant")
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error(pos, "Label redefinition: "+name+", previous definition here: "+l.pos.String())
			return
		}
		l.address = len(p.i)
		l.pos = pos
		return
	}
	p.labels[name] = &label{labelSite{pos, len(p.i)}, nil}
}

// value compiles an integer literal, constant or label reference.
func (p *parser) value(pos scanner.Position, s string) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		p.write(vm.Cell(n))
		return
	}
	if c, ok := p.consts[s]; ok {
		p.write(c)
		return
	}
	if _, ok := mnemonics[s]; ok || s[0] == '.' || s[0] == ':' || s[0] == '#' {
		p.error(pos, "Unexpected "+s+" as operand")
		p.write(0)
		return
	}
	p.useLabel(pos, s)
	p.write(0)
}

// operand compiles the next operand of the current instruction.
func (p *parser) operand(pos scanner.Position, s string) {
	if s[0] == '#' {
		if p.info.Store && p.arg == p.info.Args-1 {
			p.error(pos, "Immediate store destination: "+s)
		} else {
			p.i[p.insPC] += modeWeight[p.arg]
		}
		s = s[1:]
		if s == "" {
			p.error(pos, "Missing operand value after #")
			s = "0"
		}
	}
	p.value(pos, s)
	p.arg++
	if p.arg == p.info.Args {
		p.arg = -1
	}
}

func (p *parser) scanValue() (scanner.Position, string, bool) {
	if tok := p.s.Scan(); tok != scanner.Ident {
		p.error(p.s.Position, "Unexpected end of directive")
		return p.s.Position, "", false
	}
	return p.s.Position, p.s.TokenText(), true
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		pos := p.s.Position
		if tok != scanner.Ident {
			p.error(pos, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		switch {
		case s == "(":
			// skip comments
			for tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")") {
				tok = p.s.Scan()
			}
		case p.arg >= 0:
			p.operand(pos, s)
		case s[0] == ':':
			p.defineLabel(pos, s[1:])
		case s == ".dat":
			if pos, v, ok := p.scanValue(); ok {
				p.value(pos, v)
			}
		case s == ".equ":
			_, n, ok := p.scanValue()
			if !ok {
				break
			}
			vpos, v, ok := p.scanValue()
			if !ok {
				break
			}
			if l, ok := p.labels[n]; ok {
				p.error(pos, ".equ: redefinition of "+n+", previously defined/used as a label here: "+l.pos.String())
				break
			}
			if c, ok := p.consts[v]; ok {
				p.consts[n] = c
			} else if x, err := strconv.ParseInt(v, 0, 64); err == nil {
				p.consts[n] = vm.Cell(x)
			} else {
				p.error(vpos, ".equ: expected integer value, got "+v)
			}
		case s[0] == '.':
			p.error(pos, "Unknown dot directive: "+s)
		default:
			op, ok := mnemonics[s]
			if !ok {
				p.error(pos, "Unknown mnemonic: "+s)
				break
			}
			p.insPC = len(p.i)
			p.info, _ = vm.Lookup(op)
			p.write(op)
			if p.info.Args > 0 {
				p.arg = 0
			}
		}
	}
	if p.arg >= 0 {
		p.error(p.s.Pos(), "Missing operand for "+p.info.Name)
	}

	// resolve labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
