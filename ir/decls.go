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

package ir

import "github.com/crossgen-org/crossgen/types"

type (
	// ClassDecl declares a class: ordered fields and methods plus an
	// ordered list of base types. Base order is significant: targets
	// limited to single inheritance take the first base, and
	// assignability walks the list in declaration order.
	ClassDecl struct {
		Name     string
		Doc      []string
		Abstract bool
		Bases    []*types.Named
		Fields   []*Field
		Methods  []*FuncDecl
	}

	// Field of a class.
	Field struct {
		Name string
		Type types.Type

		// Default value, or nil. A non-literal default is assigned in
		// the synthesized constructor rather than at the field site.
		Default Expr

		// InitArg exposes the field as a constructor parameter.
		InitArg bool

		// ReadOnly marks the field as assign-once where the target
		// supports it.
		ReadOnly bool
	}

	// FuncDecl declares a function, or a method when owned by a class.
	FuncDecl struct {
		Name   string
		Doc    []string
		Params []*Param
		// Result type, nil for a function that returns nothing.
		Result types.Type
		Body   []Stmt

		Abstract bool
		Static   bool
		Async    bool
	}

	// Param of a function.
	Param struct {
		Name string
		Type types.Type
		// Default value expression, or nil for a required parameter.
		Default Expr
		// KeywordOnly parameters must be passed by name at call sites.
		KeywordOnly bool
	}

	// ConstDecl declares a module-level constant.
	ConstDecl struct {
		Name  string
		Type  types.Type
		Value Expr
	}

	// TypeAliasDecl binds a name to an existing type.
	TypeAliasDecl struct {
		Name    string
		Aliased types.Type
	}

	// InterfaceDecl declares a structural interface: a named list of
	// typed properties.
	InterfaceDecl struct {
		Name  string
		Props []*Field
	}
)

func (*ClassDecl) node()     {}
func (*Field) node()         {}
func (*FuncDecl) node()      {}
func (*Param) node()         {}
func (*ConstDecl) node()     {}
func (*TypeAliasDecl) node() {}
func (*InterfaceDecl) node() {}

func (*ClassDecl) decl()     {}
func (*FuncDecl) decl()      {}
func (*ConstDecl) decl()     {}
func (*TypeAliasDecl) decl() {}
func (*InterfaceDecl) decl() {}

// DeclName returns the name the class binds.
func (d *ClassDecl) DeclName() string { return d.Name }

// DeclName returns the name the function binds.
func (d *FuncDecl) DeclName() string { return d.Name }

// DeclName returns the name the constant binds.
func (d *ConstDecl) DeclName() string { return d.Name }

// DeclName returns the name the alias binds.
func (d *TypeAliasDecl) DeclName() string { return d.Name }

// DeclName returns the name the interface binds.
func (d *InterfaceDecl) DeclName() string { return d.Name }

// Named returns the type referencing the class within its module.
func (d *ClassDecl) Named() *types.Named {
	return types.NamedOf(d.Name)
}

// Type returns the function type of the declaration.
func (d *FuncDecl) Type() *types.Function {
	params := make([]types.Type, len(d.Params))
	for i, param := range d.Params {
		params[i] = param.Type
	}
	return types.FunctionOf(params, d.Result)
}

// FindField returns the class field with the given name.
func (d *ClassDecl) FindField(name string) *Field {
	for _, field := range d.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// FindMethod returns the class method with the given name.
func (d *ClassDecl) FindMethod(name string) *FuncDecl {
	for _, method := range d.Methods {
		if method.Name == name {
			return method
		}
	}
	return nil
}

// InitArgs returns the fields exposed as constructor parameters,
// in declaration order.
func (d *ClassDecl) InitArgs() []*Field {
	var args []*Field
	for _, field := range d.Fields {
		if field.InitArg {
			args = append(args, field)
		}
	}
	return args
}
