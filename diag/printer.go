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

package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes diagnostics for humans.
type Printer struct {
	w     io.Writer
	kind  *color.Color
	path  *color.Color
	count *color.Color
}

// NewPrinter returns a printer writing to w. Colors degrade to plain
// text when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		kind:  color.New(color.FgRed, color.Bold),
		path:  color.New(color.FgCyan),
		count: color.New(color.Bold),
	}
}

// Print writes one diagnostic.
func (p *Printer) Print(d *Diagnostic) {
	p.kind.Fprintf(p.w, "%s", d.Kind)
	if len(d.Path) > 0 {
		fmt.Fprint(p.w, " at ")
		p.path.Fprintf(p.w, "%s", d.Path)
	}
	fmt.Fprintf(p.w, ": %s\n", d.Message)
}

// PrintBag writes every diagnostic in sorted order, followed by a
// total. An empty bag writes nothing.
func (p *Printer) PrintBag(b *Bag) {
	if b.Empty() {
		return
	}
	b.Sort()
	for _, d := range b.Items() {
		p.Print(d)
	}
	p.count.Fprintf(p.w, "%d problem(s)\n", b.Len())
}
