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

// Package validator checks a sealed IR module.
//
// Validation runs four passes over the tree:
//  1. namespaces: no name bound twice in the same scope,
//  2. references: every name and type reference resolves,
//  3. types: every value is used where its type is assignable,
//  4. capabilities: every construct is expressible by every target.
//
// Passes accumulate diagnostics instead of stopping at the first
// problem: a single run reports everything it can find. Later passes
// suppress findings that are consequences of earlier ones, so one
// mistake produces one diagnostic, not a cascade.
package validator

import (
	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/diag"
	"github.com/crossgen-org/crossgen/ir"
)

// TargetCaps is what a target language can express. Renderers provide
// one per target; the validator only needs the answer, not the
// renderer.
type TargetCaps struct {
	// Name of the target, used in diagnostics.
	Name string
	// Supports returns true if the target can express the construct.
	Supports func(ir.Construct) bool
}

// Result of validating a module.
type Result struct {
	Module *ir.Module
	Bag    *diag.Bag
}

// Valid returns true if validation found no problem.
func (r *Result) Valid() bool {
	return r.Bag.Empty()
}

// Validate checks a sealed module against the modules it may import
// and the capabilities of the requested targets.
//
// The returned error reports misuse of the API (an unsealed module);
// problems with the tree itself come back as diagnostics in the
// result.
func Validate(mod *ir.Module, avail []*ir.Module, targets ...TargetCaps) (*Result, error) {
	if mod.State() != ir.Sealed {
		return nil, errors.Errorf("module %s is not sealed", mod.Name)
	}
	v := &validator{
		mod:   mod,
		avail: make(map[string]*ir.Module, len(avail)),
		bag:   diag.NewBag(),
	}
	for _, imp := range avail {
		if imp.State() != ir.Sealed {
			return nil, errors.Errorf("imported module %s is not sealed", imp.Name)
		}
		v.avail[imp.Name] = imp
	}
	root := diag.Path{mod.Name}
	v.checkNamespaces(root)
	v.checkReferences(root)
	v.checkTypes(root)
	v.checkCapabilities(root, targets)
	v.bag.Sort()
	return &Result{Module: mod, Bag: v.bag}, nil
}

type validator struct {
	mod   *ir.Module
	avail map[string]*ir.Module
	bag   *diag.Bag
}

// checkNamespaces reports every name bound more than once in the same
// namespace: module declarations and imports, class members, function
// parameters, interface properties.
func (v *validator) checkNamespaces(path diag.Path) {
	seen := make(map[string]bool)
	for _, imp := range v.mod.Imports {
		local := imp.LocalName()
		if seen[local] {
			v.bag.Add(diag.DuplicateName, path, "import %s bound twice", local)
		}
		seen[local] = true
	}
	for _, decl := range v.mod.Decls {
		name := decl.DeclName()
		if seen[name] {
			v.bag.Add(diag.DuplicateName, path, "%s declared twice", name)
		}
		seen[name] = true
		switch declT := decl.(type) {
		case *ir.ClassDecl:
			v.checkClassNamespace(path.Child("class %s", name), declT)
		case *ir.FuncDecl:
			v.checkParamNames(path.Child("function %s", name), declT)
		case *ir.InterfaceDecl:
			v.checkFieldNames(path.Child("interface %s", name), declT.Props, "property")
		}
	}
}

func (v *validator) checkClassNamespace(path diag.Path, decl *ir.ClassDecl) {
	members := make(map[string]bool)
	for _, field := range decl.Fields {
		if members[field.Name] {
			v.bag.Add(diag.DuplicateName, path, "member %s declared twice", field.Name)
		}
		members[field.Name] = true
	}
	for _, method := range decl.Methods {
		if members[method.Name] {
			v.bag.Add(diag.DuplicateName, path, "member %s declared twice", method.Name)
		}
		members[method.Name] = true
		v.checkParamNames(path.Child("method %s", method.Name), method)
	}
}

func (v *validator) checkParamNames(path diag.Path, decl *ir.FuncDecl) {
	seen := make(map[string]bool)
	for _, param := range decl.Params {
		if seen[param.Name] {
			v.bag.Add(diag.DuplicateName, path, "parameter %s declared twice", param.Name)
		}
		seen[param.Name] = true
	}
}

func (v *validator) checkFieldNames(path diag.Path, fields []*ir.Field, what string) {
	seen := make(map[string]bool)
	for _, field := range fields {
		if seen[field.Name] {
			v.bag.Add(diag.DuplicateName, path, "%s %s declared twice", what, field.Name)
		}
		seen[field.Name] = true
	}
}
