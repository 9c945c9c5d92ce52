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

// Package php renders IR modules as PHP source.
//
// Output follows PSR-4: one file per class under a namespace derived
// from the module path, with module-level functions and constants in
// functions.php. PHP is the least capable target: lambdas, named
// arguments, sets, omitted arguments, aliases, interfaces, casts and
// async functions are rejected during validation.
package php

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
)

// Renderer renders PHP.
type Renderer struct{}

// New returns the PHP renderer.
func New() Renderer { return Renderer{} }

// Target implements render.Renderer.
func (Renderer) Target() string { return "php" }

var caps = render.AllExcept(
	ir.ConstructLambda,
	ir.ConstructNamedArgs,
	ir.ConstructKeywordOnlyParams,
	ir.ConstructSetType,
	ir.ConstructOmittedType,
	ir.ConstructTypeAlias,
	ir.ConstructInterface,
	ir.ConstructCast,
	ir.ConstructMultipleBases,
	ir.ConstructAsync,
)

// Supports implements render.Renderer.
func (Renderer) Supports(c ir.Construct) bool { return caps.Supports(c) }

const defaultIndent = "    "

// Render implements render.Renderer.
func (Renderer) Render(mod *ir.Module, opts render.TargetOptions) ([]render.OutputFile, error) {
	f := &file{
		mod:    mod,
		prefix: opts.Namespace,
		indent: opts.Indent,
	}
	if f.indent == "" {
		f.indent = defaultIndent
	}
	var outputs []render.OutputFile
	shared := render.NewWriter(f.indent)
	sharedUsed := false
	for _, decl := range mod.Decls {
		switch declT := decl.(type) {
		case *ir.ClassDecl:
			w := render.NewWriter(f.indent)
			f.fileHeader(w, opts)
			f.body = w
			f.class(declT)
			outputs = append(outputs, render.OutputFile{
				Path:    f.nsPath(mod.Name) + "/" + declT.Name + ".php",
				Content: w.String(),
			})
		case *ir.FuncDecl:
			if sharedUsed {
				shared.Blank()
			}
			f.body = shared
			f.fun(declT, nil)
			sharedUsed = true
		case *ir.ConstDecl:
			if sharedUsed {
				shared.Blank()
			}
			f.body = shared
			f.body.Line("const %s = %s;", declT.Name, f.sub(declT.Value, precTernary))
			sharedUsed = true
		default:
			return nil, errors.Errorf("php cannot express %s", decl.DeclName())
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	if sharedUsed {
		w := render.NewWriter(f.indent)
		f.fileHeader(w, opts)
		outputs = append(outputs, render.OutputFile{
			Path:    f.nsPath(mod.Name) + "/functions.php",
			Content: w.String() + shared.String(),
		})
	}
	return outputs, nil
}

type file struct {
	mod    *ir.Module
	prefix string
	indent string
	body   *render.Writer

	// err is the first internal fault hit while rendering.
	err error
}

func (f *file) fileHeader(w *render.Writer, opts render.TargetOptions) {
	w.Line("<?php")
	w.Blank()
	for _, line := range f.mod.FileComments {
		w.Line("// %s", line)
	}
	for _, line := range opts.Header {
		w.Line("// %s", line)
	}
	if len(f.mod.FileComments)+len(opts.Header) > 0 {
		w.Blank()
	}
	w.Line("namespace %s;", f.namespace(f.mod.Name))
	w.Blank()
}

// namespace derives the PHP namespace of a module path: capitalized
// segments joined by backslashes, under the configured prefix.
func (f *file) namespace(module string) string {
	segments := strings.Split(module, "/")
	parts := make([]string, 0, len(segments)+1)
	if f.prefix != "" {
		parts = append(parts, f.prefix)
	}
	for _, segment := range segments {
		parts = append(parts, ucfirst(segment))
	}
	return strings.Join(parts, `\`)
}

// nsPath is the namespace as a directory path, per PSR-4.
func (f *file) nsPath(module string) string {
	return strings.ReplaceAll(f.namespace(module), `\`, "/")
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
