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

package builder

import (
	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// Class builds one class declaration.
type Class struct {
	owner *Module
	decl  *ir.ClassDecl
}

// Doc sets the documentation lines of the class.
func (b *Class) Doc(lines ...string) error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	b.decl.Doc = append(b.decl.Doc, lines...)
	return nil
}

// Abstract marks the class abstract.
func (b *Class) Abstract() error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	b.decl.Abstract = true
	return nil
}

// Base adds a base type. Declaration order is significant: targets
// limited to single inheritance take the first base.
func (b *Class) Base(base *types.Named) error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	if base == nil {
		return errors.Errorf("class %s: base requires a type", b.decl.Name)
	}
	b.decl.Bases = append(b.decl.Bases, base)
	return nil
}

// FieldOption configures a field append.
type FieldOption func(*ir.Field)

// WithDefault sets the default value of the field.
func WithDefault(value ir.Expr) FieldOption {
	return func(f *ir.Field) { f.Default = value }
}

// AsInitArg exposes the field as a constructor parameter.
func AsInitArg() FieldOption {
	return func(f *ir.Field) { f.InitArg = true }
}

// ReadOnly marks the field assign-once.
func ReadOnly() FieldOption {
	return func(f *ir.Field) { f.ReadOnly = true }
}

// Field adds a field to the class. Fields exposed as constructor
// parameters without a default must precede defaulted ones, so the
// synthesized constructor has a valid parameter order.
func (b *Class) Field(name string, typ types.Type, opts ...FieldOption) error {
	if err := b.owner.check(name); err != nil {
		return err
	}
	if name == "" {
		return errors.Errorf("field of class %s requires a name", b.decl.Name)
	}
	if typ == nil {
		return errors.Errorf("field %s.%s requires a type", b.decl.Name, name)
	}
	field := &ir.Field{Name: name, Type: typ}
	for _, opt := range opts {
		opt(field)
	}
	if field.InitArg && field.Default == nil {
		for _, prev := range b.decl.InitArgs() {
			if prev.Default != nil {
				return errors.Errorf(
					"field %s.%s: required constructor argument after defaulted %s",
					b.decl.Name, name, prev.Name)
			}
		}
	}
	b.decl.Fields = append(b.decl.Fields, field)
	return nil
}

// Method starts a method declaration on the class.
func (b *Class) Method(name string) (*Func, error) {
	if err := b.owner.check(name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.Errorf("method of class %s requires a name", b.decl.Name)
	}
	decl := &ir.FuncDecl{Name: name}
	b.decl.Methods = append(b.decl.Methods, decl)
	return &Func{owner: b.owner, decl: decl, class: b.decl}, nil
}
