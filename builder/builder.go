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

// Package builder constructs IR modules.
//
// A builder is append-only: declarations accumulate in the order they
// are added and nothing can be removed or reordered. Appends fail fast
// on structurally broken input (empty names, nil types, a required
// parameter after a defaulted one); everything requiring the whole tree
// (name clashes, reference resolution, type checks) is deferred to the
// validator.
//
// Seal finishes the module. A sealed module is immutable: every append
// on the builder afterwards returns an error.
package builder

import (
	"go/token"

	"github.com/pkg/errors"
	"golang.org/x/mod/module"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// Module builds one IR module.
type Module struct {
	mod    *ir.Module
	sealed bool
}

// NewModule returns a builder for a module with the given path.
func NewModule(name string) (*Module, error) {
	if err := module.CheckImportPath(name); err != nil {
		return nil, errors.Wrapf(err, "invalid module name %q", name)
	}
	return &Module{mod: &ir.Module{Name: name}}, nil
}

func (b *Module) check(name string) error {
	if b.sealed {
		return errors.Errorf("module %s is sealed", b.mod.Name)
	}
	if name != "" && !token.IsIdentifier(name) {
		return errors.Errorf("invalid identifier %q", name)
	}
	return nil
}

// Import adds an import of another module. An empty alias binds the
// last segment of the module path.
func (b *Module) Import(mod, alias string) error {
	if err := b.check(alias); err != nil {
		return err
	}
	if err := module.CheckImportPath(mod); err != nil {
		return errors.Wrapf(err, "invalid import %q", mod)
	}
	b.mod.Imports = append(b.mod.Imports, &ir.Import{Module: mod, Alias: alias})
	return nil
}

// FileComment adds lines written at the top of every generated file.
func (b *Module) FileComment(lines ...string) error {
	if err := b.check(""); err != nil {
		return err
	}
	b.mod.FileComments = append(b.mod.FileComments, lines...)
	return nil
}

// Const adds a module-level constant.
func (b *Module) Const(name string, typ types.Type, value ir.Expr) error {
	if err := b.check(name); err != nil {
		return err
	}
	if name == "" {
		return errors.New("constant requires a name")
	}
	if typ == nil {
		return errors.Errorf("constant %s requires a type", name)
	}
	if value == nil {
		return errors.Errorf("constant %s requires a value", name)
	}
	b.mod.Decls = append(b.mod.Decls, &ir.ConstDecl{Name: name, Type: typ, Value: value})
	return nil
}

// Alias adds a type alias declaration.
func (b *Module) Alias(name string, aliased types.Type) error {
	if err := b.check(name); err != nil {
		return err
	}
	if name == "" {
		return errors.New("alias requires a name")
	}
	if aliased == nil {
		return errors.Errorf("alias %s requires a type", name)
	}
	b.mod.Decls = append(b.mod.Decls, &ir.TypeAliasDecl{Name: name, Aliased: aliased})
	return nil
}

// Interface starts an interface declaration.
func (b *Module) Interface(name string) (*Interface, error) {
	if err := b.check(name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("interface requires a name")
	}
	decl := &ir.InterfaceDecl{Name: name}
	b.mod.Decls = append(b.mod.Decls, decl)
	return &Interface{owner: b, decl: decl}, nil
}

// Class starts a class declaration.
func (b *Module) Class(name string) (*Class, error) {
	if err := b.check(name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("class requires a name")
	}
	decl := &ir.ClassDecl{Name: name}
	b.mod.Decls = append(b.mod.Decls, decl)
	return &Class{owner: b, decl: decl}, nil
}

// Func starts a module-level function declaration.
func (b *Module) Func(name string) (*Func, error) {
	if err := b.check(name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("function requires a name")
	}
	decl := &ir.FuncDecl{Name: name}
	b.mod.Decls = append(b.mod.Decls, decl)
	return &Func{owner: b, decl: decl}, nil
}

// Seal finishes the module and returns the sealed tree. The builder
// refuses any append afterwards.
func (b *Module) Seal() (*ir.Module, error) {
	if b.sealed {
		return nil, errors.Errorf("module %s is already sealed", b.mod.Name)
	}
	b.sealed = true
	b.mod.Seal()
	return b.mod, nil
}

// Interface builds one interface declaration.
type Interface struct {
	owner *Module
	decl  *ir.InterfaceDecl
}

// Prop adds a typed property to the interface.
func (b *Interface) Prop(name string, typ types.Type) error {
	if err := b.owner.check(name); err != nil {
		return err
	}
	if name == "" {
		return errors.Errorf("property of interface %s requires a name", b.decl.Name)
	}
	if typ == nil {
		return errors.Errorf("property %s.%s requires a type", b.decl.Name, name)
	}
	b.decl.Props = append(b.decl.Props, &ir.Field{Name: name, Type: typ})
	return nil
}
