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

// Package ir is the crossgen Intermediate Representation (IR) tree.
//
// The tree is the target-agnostic description of a program, built once
// through the builder package, checked by the validator, then rendered
// into source text by one renderer per target language. Nodes own their
// children exclusively: the IR is a tree, not a graph, and references
// between declarations travel by name, resolved during validation.
//
// The structure and semantic is modeled after the go/ast package.
package ir

type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		// It prevents using arbitrary structure in this package to be used as nodes.
		node()
	}

	// Decl is a top-level declaration owned by a module.
	Decl interface {
		Node

		// DeclName is the name the declaration binds in its module.
		DeclName() string

		decl()
	}

	// Stmt is a statement inside a function body.
	Stmt interface {
		Node
		stmt()
	}

	// Expr is an expression.
	Expr interface {
		Node
		expr()
	}
)

// State of a module in its lifecycle.
// A module starts Building, becomes Sealed when its builder finishes,
// and only sealed modules are accepted by the validator and renderers.
type State int

// Module states.
const (
	Building State = iota
	Sealed
)

// String representation of the state.
func (s State) String() string {
	if s == Sealed {
		return "sealed"
	}
	return "building"
}

type (
	// Module is a named unit owning an ordered list of declarations
	// and the set of modules it imports.
	Module struct {
		// Name is the module path, e.g. "acme/models".
		Name string

		Imports []*Import
		Decls   []Decl

		// Comments written at the top of every generated file.
		FileComments []string

		state State
	}

	// Import references another module by name.
	Import struct {
		Module string
		// Alias under which the module is referenced, or empty to use
		// the last path segment.
		Alias string
	}
)

func (*Module) node() {}
func (*Import) node() {}

// State returns the lifecycle state of the module.
func (m *Module) State() State { return m.state }

// Seal marks the module complete. A sealed module is immutable:
// the builder refuses further declarations.
func (m *Module) Seal() { m.state = Sealed }

// LocalName returns the name an import binds inside the module.
func (imp *Import) LocalName() string {
	if imp.Alias != "" {
		return imp.Alias
	}
	name := imp.Module
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}

// FindImport returns the import bound under the given local name.
func (m *Module) FindImport(local string) *Import {
	for _, imp := range m.Imports {
		if imp.LocalName() == local {
			return imp
		}
	}
	return nil
}

// FindDecl returns the declaration with the given name.
func (m *Module) FindDecl(name string) Decl {
	for _, decl := range m.Decls {
		if decl.DeclName() == name {
			return decl
		}
	}
	return nil
}
