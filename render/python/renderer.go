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

// Package python renders IR modules as Python source.
//
// A module becomes one file named after its path. Classes carry a
// synthesized __init__ assigning the constructor fields; abstract
// classes derive from abc.ABC.
package python

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/crossgen-org/crossgen/base/uname"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
)

// Renderer renders Python.
type Renderer struct{}

// New returns the Python renderer.
func New() Renderer { return Renderer{} }

// Target implements render.Renderer.
func (Renderer) Target() string { return "python" }

var caps = render.AllExcept(ir.ConstructInterface)

// Supports implements render.Renderer.
func (Renderer) Supports(c ir.Construct) bool { return caps.Supports(c) }

const defaultIndent = "    "

// Render implements render.Renderer.
func (Renderer) Render(mod *ir.Module, opts render.TargetOptions) ([]render.OutputFile, error) {
	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}
	f := &file{
		mod:   mod,
		names: newNamer(),
		body:  render.NewWriter(indent),
		std:   make(map[string]bool),
	}
	for i, decl := range mod.Decls {
		if i > 0 {
			f.body.Blank()
			f.body.Blank()
		}
		if err := f.decl(decl); err != nil {
			return nil, err
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	head := render.NewWriter(indent)
	for _, line := range mod.FileComments {
		head.Line("# %s", line)
	}
	for _, line := range opts.Header {
		head.Line("# %s", line)
	}
	f.writeImports(head)
	content := f.body.String()
	if hs := head.String(); hs != "" {
		content = hs + "\n" + content
	}
	return []render.OutputFile{{
		Path:    mod.Name + ".py",
		Content: content,
	}}, nil
}

// file renders one module into one Python file.
type file struct {
	mod   *ir.Module
	names *namer
	body  *render.Writer

	// std collects the standard library modules the body needs.
	std map[string]bool

	// err is the first internal fault hit while rendering.
	err error
}

func (f *file) need(module string) string {
	f.std[module] = true
	return module
}

// pyModule returns the dotted Python module path.
func pyModule(module string) string {
	return strings.ReplaceAll(module, "/", ".")
}

func (f *file) writeImports(w *render.Writer) {
	std := maps.Keys(f.std)
	sort.Strings(std)
	if len(std) > 0 {
		if w.String() != "" {
			w.Blank()
		}
		for _, name := range std {
			w.Line("import %s", name)
		}
	}
	if len(f.mod.Imports) == 0 {
		return
	}
	lines := make([]string, 0, len(f.mod.Imports))
	for _, imp := range f.mod.Imports {
		local := f.names.of(imp.LocalName())
		dotted := pyModule(imp.Module)
		if dotted == local {
			lines = append(lines, "import "+dotted)
		} else {
			lines = append(lines, "import "+dotted+" as "+local)
		}
	}
	sort.Strings(lines)
	if w.String() != "" {
		w.Blank()
	}
	for _, line := range lines {
		w.Line("%s", line)
	}
}

// localModule returns the local name an imported module is bound to,
// or empty when the module is not imported.
func (f *file) localModule(module string) string {
	for _, imp := range f.mod.Imports {
		if imp.Module == module {
			return f.names.of(imp.LocalName())
		}
	}
	return ""
}

// namer maps IR names to Python names, renaming keywords and keeping
// the result stable within the file.
type namer struct {
	u      *uname.Unique
	byName map[string]string
}

var keywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

func newNamer() *namer {
	n := &namer{u: uname.New(), byName: make(map[string]string)}
	n.u.Reserve(keywords...)
	return n
}

// of returns the Python name of an IR name. The first request
// allocates, later requests return the same name.
func (n *namer) of(name string) string {
	if got, ok := n.byName[name]; ok {
		return got
	}
	got := n.u.Name(name)
	n.byName[name] = got
	return got
}
