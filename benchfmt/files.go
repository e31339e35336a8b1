// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Format identifies one of the input formats.
type Format int

const (
	// FormatAuto selects the format of each input from its file
	// extension: ".jsonl" and ".json" are FormatRun, everything else
	// is FormatText.
	FormatAuto Format = iota
	// FormatText is the console format read by Reader.
	FormatText
	// FormatRun is the run format read by RunReader.
	FormatRun
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatRun:
		return "jsonl"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name as accepted on the command line:
// "auto", "text", or "jsonl".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "auto", "":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "jsonl", "json":
		return FormatRun, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q", s)
}

// FormatOf returns the format used to read path under f. If f is
// FormatAuto, this is derived from the file extension; stdin is read
// in the console format.
func FormatOf(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".json":
		return FormatRun
	}
	return FormatText
}

// A recordReader is the common interface of Reader and RunReader.
type recordReader interface {
	Scan() bool
	Result() Record
	Err() error
}

// A Files reads benchmark results from a sequence of input files,
// each in its own format.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Format is the format of every input. If it is FormatAuto,
	// each input's format is chosen by FormatOf.
	Format Format

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// AllowMissing indicates that inputs that cannot be opened are
	// skipped. Each is reported to Warn, if set. Otherwise the first
	// such error stops Scan and is returned by Err.
	AllowMissing bool

	// Warn, if non-nil, is called for each input skipped because of
	// AllowMissing.
	Warn func(err error)

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	text    Reader
	run     RunReader
	reader  recordReader
	file    *os.File
	isStdin bool
	err     error

	orphans int
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []string{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, "-")
	}
	f.inputs = append(f.inputs, f.Paths...)
}

// Scan advances the reader to the next result in the sequence of
// files and reports whether a result was read. The caller should use
// the Result method to get the result. If Scan reaches the end of the
// file sequence, or if an I/O error occurs, it returns false. In this
// case, the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.init()
	}

	for {
		if f.reader == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				// We're out of inputs.
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			var r io.Reader
			if f.AllowStdin && path == "-" {
				f.isStdin, r = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					if f.AllowMissing {
						if f.Warn != nil {
							f.Warn(err)
						}
						continue
					}
					f.err = err
					return false
				}
				f.isStdin, f.file, r = false, file, file
			}

			if FormatOf(path, f.Format) == FormatRun {
				f.run.Reset(r, path)
				f.reader = &f.run
			} else {
				f.text.Reset(r, path)
				f.reader = &f.text
			}
		}

		// Try to get the next result.
		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		if f.reader == &f.text {
			f.orphans += f.text.Orphans()
		}
		if !f.isStdin {
			f.file.Close()
		}
		f.file, f.reader = nil, nil
		if err != nil {
			f.err = err
			break
		}
	}
	// We're out of files.
	return false
}

// Result returns the record that was just read by Scan.
// See Reader.Result.
func (f *Files) Result() Record {
	if f.reader == nil {
		return noResult
	}
	return f.reader.Result()
}

// Err returns the I/O error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// Orphans returns the number of console-format summary lines skipped
// because they appeared before any run header, across all inputs read
// to completion so far.
func (f *Files) Orphans() int {
	return f.orphans
}
