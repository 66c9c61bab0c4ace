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

// The amplify command line tool finds the phase settings that produce the
// highest output signal of a chain of amplifiers running the same Intcode
// program, using the packages github.com/db47h/intcode/amp and
// github.com/db47h/intcode/vm.
//
// Usage:
//
//	-config filename
//		  load configuration from CUE file filename (can be specified multiple times)
//	-db filename
//		  record results in the SQLite database filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly of the program and exit
//	-dump
//		  with -run, dump the PC and memory upon exit
//	-history
//		  print the results recorded for the program and exit
//	-log-file filename
//		  also write JSON logs to filename
//	-log-level level
//		  log level: debug, info, warn or error
//	-mode mode
//		  amplifier mode: serial, feedback or both (default both)
//	-phases value
//		  comma separated phase settings to permute (requires a single -mode)
//	-program filename
//		  load the Intcode program from filename (default stdin)
//	-run input
//		  run the program once with the given comma separated input values and print its output
//	-signal int
//		  initial input signal
//	-trace
//		  log every executed instruction (implies -debug)
//
// For each enabled mode, amplify prints a line like:
//
//	serial: 43210 [4 3 2 1 0]
//
// -config: configuration files are unified with a closed schema. When a
// setting appears in several files, the first file wins. Command line flags
// override any configuration value. A configuration file looks like:
//
//	program: "day7.txt"
//	serial: phases: [0, 1, 2, 3, 4]
//	feedback: enabled: false
//	store: {kind: "sqlite", path: "results.db"}
//	log: level: "warn"
//
// -db: every search result is stored along with the SHA-256 sum of the
// program. Use -history to list them.
//
// -debug: will print a full stacktrace should the VM crash.
//
// -run: the program is run as a single machine fed with the given input
// values. Output values are printed one per line. With -dump, the program
// counter and memory are printed after the machine stops.
package main
