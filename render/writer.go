// Copyright 2025 Google LLC
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

package render

import (
	"fmt"
	"strings"
)

// Writer accumulates indented source text.
type Writer struct {
	sb     strings.Builder
	indent string
	depth  int
}

// NewWriter returns a writer using the given indent unit.
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent}
}

// Line writes one line at the current depth.
func (w *Writer) Line(format string, args ...any) {
	if format == "" {
		w.Blank()
		return
	}
	for i := 0; i < w.depth; i++ {
		w.sb.WriteString(w.indent)
	}
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// Blank writes an empty line, with no trailing indentation.
func (w *Writer) Blank() {
	w.sb.WriteByte('\n')
}

// Indent increases the depth of subsequent lines.
func (w *Writer) Indent() { w.depth++ }

// Dedent decreases the depth of subsequent lines.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Block writes the lines produced by fn one level deeper.
func (w *Writer) Block(fn func()) {
	w.Indent()
	fn()
	w.Dedent()
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.sb.String()
}
