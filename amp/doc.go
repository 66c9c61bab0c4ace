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

// Package amp wires Intcode machines into amplifier pipelines and searches
// for the phase settings that yield the strongest output signal.
//
// Each amplifier is an independent vm.Instance running its own copy of the
// same program. An amplifier first reads its phase setting, then the input
// signal, and outputs a new signal that is fed to the next amplifier.
//
// In serial mode, the signal goes once through the chain and the output of
// the last amplifier is the result. In feedback mode, the output of the last
// amplifier is fed back to the first one and the amplifiers keep their state
// across visits: the phase setting is only given on the first visit. The loop
// ends as soon as an amplifier halts instead of producing a signal; the last
// signal produced is the result.
//
// Programs are expected to read their phase setting exactly once, with their
// first input instruction.
package amp
