// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// A Writer writes the run format: one JSON-encoded Run per line.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
	enc *json.Encoder
}

// NewWriter returns a writer that writes runs to w.
func NewWriter(w io.Writer) *Writer {
	wr := &Writer{w: w}
	wr.enc = json.NewEncoder(&wr.buf)
	wr.enc.SetEscapeHTML(false)
	return wr
}

// Write writes run to w as a single line.
func (w *Writer) Write(run *Run) error {
	if run.RunName == "" {
		return fmt.Errorf("run missing runName")
	}
	// Encode to the buffer first so a failed encoding leaves no
	// partial line in the output.
	if err := w.enc.Encode(run); err != nil {
		w.buf.Reset()
		return err
	}
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
