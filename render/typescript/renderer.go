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

// Package typescript renders IR modules as TypeScript source.
//
// A module becomes one file named after its path; other modules are
// imported with relative namespace imports. Constructors are
// synthesized from the constructor fields.
package typescript

import (
	"path"
	"sort"
	"strings"

	"github.com/crossgen-org/crossgen/base/uname"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
	"github.com/crossgen-org/crossgen/types"
)

// Renderer renders TypeScript.
type Renderer struct{}

// New returns the TypeScript renderer.
func New() Renderer { return Renderer{} }

// Target implements render.Renderer.
func (Renderer) Target() string { return "typescript" }

var caps = render.AllExcept(
	ir.ConstructNamedArgs,
	ir.ConstructKeywordOnlyParams,
	ir.ConstructMultipleBases,
)

// Supports implements render.Renderer.
func (Renderer) Supports(c ir.Construct) bool { return caps.Supports(c) }

const defaultIndent = "  "

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
	}
	for i, decl := range mod.Decls {
		if i > 0 {
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
		head.Line("// %s", line)
	}
	for _, line := range opts.Header {
		head.Line("// %s", line)
	}
	f.writeImports(head)
	content := f.body.String()
	if hs := head.String(); hs != "" {
		content = hs + "\n" + content
	}
	return []render.OutputFile{{
		Path:    mod.Name + ".ts",
		Content: content,
	}}, nil
}

type file struct {
	mod   *ir.Module
	names *namer
	body  *render.Writer

	// locals maps parameter and typed-variable IR names to their
	// declared types while a function body renders.
	locals map[string]types.Type
	// enclosing is the class whose members are rendering, nil at
	// module level.
	enclosing *ir.ClassDecl

	// err is the first internal fault hit while rendering.
	err error
}

func (f *file) writeImports(w *render.Writer) {
	if len(f.mod.Imports) == 0 {
		return
	}
	lines := make([]string, 0, len(f.mod.Imports))
	for _, imp := range f.mod.Imports {
		local := f.names.of(imp.LocalName())
		lines = append(lines, "import * as "+local+" from \""+relModule(f.mod.Name, imp.Module)+"\";")
	}
	sort.Strings(lines)
	if w.String() != "" {
		w.Blank()
	}
	for _, line := range lines {
		w.Line("%s", line)
	}
}

// relModule returns the import specifier of a module relative to the
// file of the importing module.
func relModule(from, to string) string {
	var fromParts []string
	if dir := path.Dir(from); dir != "." {
		fromParts = strings.Split(dir, "/")
	}
	toParts := strings.Split(to, "/")
	shared := 0
	for shared < len(fromParts) && shared < len(toParts)-1 && fromParts[shared] == toParts[shared] {
		shared++
	}
	var parts []string
	for range fromParts[shared:] {
		parts = append(parts, "..")
	}
	parts = append(parts, toParts[shared:]...)
	spec := strings.Join(parts, "/")
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}
	return spec
}

func (f *file) localModule(module string) string {
	for _, imp := range f.mod.Imports {
		if imp.Module == module {
			return f.names.of(imp.LocalName())
		}
	}
	return ""
}

type namer struct {
	u      *uname.Unique
	byName map[string]string
}

var keywords = []string{
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends",
	"false", "finally", "for", "function", "if", "import", "in",
	"instanceof", "new", "null", "return", "super", "switch", "this",
	"throw", "true", "try", "typeof", "var", "void", "while", "with",
}

func newNamer() *namer {
	n := &namer{u: uname.New(), byName: make(map[string]string)}
	n.u.Reserve(keywords...)
	return n
}

func (n *namer) of(name string) string {
	if got, ok := n.byName[name]; ok {
		return got
	}
	got := n.u.Name(name)
	n.byName[name] = got
	return got
}
