// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/hwire/parserbench/benchunit"
)

// maxLineLen is the longest input line the readers accept.
const maxLineLen = 16 << 20

// A Reader reads the Catch2 console benchmark format.
//
// Its API is modeled on bufio.Scanner. Each Result returned by the
// Reader is freshly allocated, so callers may retain it.
//
// The console format has no record delimiters. A measurement is
// recognized by position: a summary line
//
//	hdr_8          100     312     2.5272 ms
//
// must be followed immediately by a line with the mean, low mean, and
// high mean, and may be followed immediately by a line whose first
// value is the standard deviation:
//
//	               80.8506 ns    80.6219 ns    81.1628 ns
//	               1.35459 ns    1.06808 ns    1.84099 ns
//
// Every value must carry one of the time units benchunit knows.
//
// Summary lines are attributed to the most recent run header, a line
// containing "bench_<parser>_<variant> is a Catch2". Anything that
// reorders these lines, such as interleaved output from concurrent
// runs, silently changes what is read; the Reader only reports the
// case where a summary line is not followed by a mean line.
//
// Summary lines that appear before any run header are skipped without
// a diagnostic, since preamble text can look like a summary. They are
// counted by Orphans so callers can warn about possible data loss.
//
// Lines of the form "DATA_SIZE: <scenario> = <bytes>" declare the
// input size of a scenario. A declaration applies to every result for
// that scenario read after it, regardless of run.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	// q is the queue of records to return before processing the
	// next input line. qPos is the index of the current record in q.
	q    []Record
	qPos int

	fileName string
	line     int
	eof      bool

	state     readerState
	parser    string
	variant   string
	pending   *Result
	dataSizes map[string]int
	orphans   int
}

// readerState is the position of a Reader within a measurement.
type readerState int

const (
	awaitingHeader  readerState = iota // no run header seen yet
	awaitingSummary                    // in a run, between measurements
	awaitingMean                       // summary read; next line must be the mean triple
	awaitingStdDev                     // mean read; next line may be the std dev triple
)

func (s readerState) String() string {
	switch s {
	case awaitingHeader:
		return "awaiting-header"
	case awaitingSummary:
		return "awaiting-summary"
	case awaitingMean:
		return "awaiting-mean"
	case awaitingStdDev:
		return "awaiting-stddev"
	}
	return fmt.Sprintf("readerState(%d)", int(s))
}

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noResult = &SyntaxError{"", 0, "Scan has not been called"}

// NewReader constructs a reader to parse the console benchmark format
// from r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. It
// forgets the current run and all DATA_SIZE declarations.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineLen)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.qPos = 0
	r.q = r.q[:0]
	r.fileName = fileName
	r.line = 0
	r.eof = false

	r.state = awaitingHeader
	r.parser, r.variant = "", ""
	r.pending = nil
	r.dataSizes = make(map[string]int)
	r.orphans = 0
}

var (
	headerRe   = regexp.MustCompile(`(bench_[A-Za-z0-9_]+) is a Catch2`)
	dataSizeRe = regexp.MustCompile(`^DATA_SIZE:\s*(\w+)\s*=\s*(\d+)`)
	summaryRe  = regexp.MustCompile(`^([a-z_0-9]+)\s+(\d+)\s+(\d+)\s+([\d.]+)\s*(ms|us|µs|μs|ns|s)?\s*$`)
	tripleRe   = regexp.MustCompile(`^\s+([\d.]+)\s*([^\s\d.]+)\s+([\d.]+)\s*([^\s\d.]+)\s+([\d.]+)\s*([^\s\d.]+)\s*$`)
)

// Scan advances the reader to the next result and reports whether a
// result was read.
// The caller should use the Result method to get the result.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	if r.qPos+1 < len(r.q) {
		r.qPos++
		return true
	}
	r.qPos = 0
	r.q = r.q[:0]

	for len(r.q) == 0 && r.s.Scan() {
		r.line++
		r.step(r.s.Text())
	}
	if len(r.q) > 0 {
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		return false
	}
	if !r.eof {
		r.eof = true
		r.finish()
		return len(r.q) > 0
	}
	return false
}

// step feeds one input line through the state machine.
func (r *Reader) step(line string) {
	switch r.state {
	case awaitingMean:
		vals, ok, err := matchTriple(line)
		if err != nil {
			r.q = append(r.q, r.newSyntaxError(err.Error()))
			r.pending, r.state = nil, awaitingSummary
			return
		}
		if ok {
			r.pending.MeanNs, r.pending.LowMeanNs, r.pending.HighMeanNs = vals[0], vals[1], vals[2]
			r.state = awaitingStdDev
			return
		}
		// Drop the measurement and process line normally.
		_, pline := r.pending.Pos()
		r.q = append(r.q, &SyntaxError{r.fileName, pline, fmt.Sprintf("benchmark %s: missing mean line", r.pending.Scenario)})
		r.pending, r.state = nil, awaitingSummary

	case awaitingStdDev:
		vals, ok, err := matchTriple(line)
		if err != nil {
			r.q = append(r.q, r.newSyntaxError(err.Error()))
		} else if ok {
			r.pending.StdDevNs = vals[0]
			r.emit()
			return
		}
		r.emit()
	}

	if m := dataSizeRe.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			r.q = append(r.q, r.newSyntaxError("parsing data size: "+err.(*strconv.NumError).Err.Error()))
			return
		}
		r.dataSizes[m[1]] = n
		return
	}

	if m := headerRe.FindStringSubmatch(line); m != nil {
		id := DecomposeRunID(m[1])
		r.parser, r.variant = id.Parser, id.Variant
		r.state = awaitingSummary
		return
	}

	if !isSummaryCandidate(line) {
		return
	}
	m := summaryRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	if r.state == awaitingHeader {
		r.orphans++
		return
	}
	samples, err1 := strconv.Atoi(m[2])
	iters, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		r.q = append(r.q, r.newSyntaxError("benchmark "+m[1]+": sample or iteration count out of range"))
		return
	}
	r.pending = &Result{
		Scenario:       m[1],
		Parser:         r.parser,
		Variant:        r.variant,
		VariantDisplay: VariantDisplayName(r.variant),
		Samples:        samples,
		Iters:          iters,
		fileName:       r.fileName,
		line:           r.line,
	}
	r.state = awaitingMean
}

// emit queues the pending result and returns to awaitingSummary.
func (r *Reader) emit() {
	res := r.pending
	res.DataSize = r.dataSizes[res.Scenario]
	r.q = append(r.q, res)
	r.pending, r.state = nil, awaitingSummary
}

// finish flushes a measurement that was cut short by EOF.
func (r *Reader) finish() {
	switch r.state {
	case awaitingMean:
		_, pline := r.pending.Pos()
		r.q = append(r.q, &SyntaxError{r.fileName, pline, fmt.Sprintf("benchmark %s: missing mean line", r.pending.Scenario)})
		r.pending, r.state = nil, awaitingSummary
	case awaitingStdDev:
		r.emit()
	}
}

// matchTriple matches line as three value/unit pairs and returns the
// values in nanoseconds. ok is false if line does not have that shape.
func matchTriple(line string) (vals [3]float64, ok bool, err error) {
	m := tripleRe.FindStringSubmatch(line)
	if m == nil {
		return vals, false, nil
	}
	for i := range vals {
		if unit := m[2+2*i]; !benchunit.IsTimeUnit(unit) {
			return vals, false, fmt.Errorf("unknown time unit %q", unit)
		}
	}
	for i := range vals {
		v, err := strconv.ParseFloat(m[1+2*i], 64)
		if err != nil {
			return vals, false, fmt.Errorf("parsing measurement %q: %w", m[1+2*i], err.(*strconv.NumError).Err)
		}
		vals[i] = benchunit.ToNanoseconds(v, m[2+2*i])
	}
	return vals, true, nil
}

// isSummaryCandidate reports whether line could be a summary line:
// it is non-empty, not indented, and not a rule or box-drawing line.
func isSummaryCandidate(line string) bool {
	if len(line) == 0 {
		return false
	}
	switch line[0] {
	case ' ', '\t', '-', '=', '~':
		return false
	}
	c, _ := utf8.DecodeRuneInString(line)
	return !(0x2500 <= c && c <= 0x257F)
}

// newSyntaxError returns a *SyntaxError at the Reader's current position.
func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// A Record is a single record read from a benchmark file. It may be a
// *Result or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not read
	// from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Result)(nil)
var _ Record = (*SyntaxError)(nil)

// Result returns the record that was just read by Scan. This is either
// a *Result or a *SyntaxError indicating a parse error.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Result() Record {
	if r.qPos >= len(r.q) {
		// This should only happen if Scan has never been called.
		return noResult
	}
	return r.q[r.qPos]
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// Orphans returns the number of summary lines skipped because no run
// header had been seen yet.
func (r *Reader) Orphans() int {
	return r.orphans
}
