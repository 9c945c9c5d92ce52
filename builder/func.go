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

// Func builds one function or method declaration.
type Func struct {
	owner *Module
	decl  *ir.FuncDecl
	// class owning the method, nil for a module-level function.
	class *ir.ClassDecl
}

func (b *Func) name() string {
	if b.class != nil {
		return b.class.Name + "." + b.decl.Name
	}
	return b.decl.Name
}

// Doc sets the documentation lines of the function.
func (b *Func) Doc(lines ...string) error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	b.decl.Doc = append(b.decl.Doc, lines...)
	return nil
}

// ParamOption configures a parameter append.
type ParamOption func(*ir.Param)

// ParamDefault sets the default value of the parameter.
func ParamDefault(value ir.Expr) ParamOption {
	return func(p *ir.Param) { p.Default = value }
}

// KeywordOnly requires the parameter to be passed by name.
func KeywordOnly() ParamOption {
	return func(p *ir.Param) { p.KeywordOnly = true }
}

// Param adds a parameter. A required positional parameter cannot follow
// a defaulted one; keyword-only parameters are exempt since call sites
// name them.
func (b *Func) Param(name string, typ types.Type, opts ...ParamOption) error {
	if err := b.owner.check(name); err != nil {
		return err
	}
	if name == "" {
		return errors.Errorf("parameter of %s requires a name", b.name())
	}
	if typ == nil {
		return errors.Errorf("parameter %s of %s requires a type", name, b.name())
	}
	param := &ir.Param{Name: name, Type: typ}
	for _, opt := range opts {
		opt(param)
	}
	if !param.KeywordOnly && param.Default == nil {
		for _, prev := range b.decl.Params {
			if !prev.KeywordOnly && prev.Default != nil {
				return errors.Errorf(
					"parameter %s of %s: required parameter after defaulted %s",
					name, b.name(), prev.Name)
			}
		}
	}
	b.decl.Params = append(b.decl.Params, param)
	return nil
}

// Returns sets the result type of the function.
func (b *Func) Returns(typ types.Type) error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	if typ == nil {
		return errors.Errorf("result of %s requires a type", b.name())
	}
	if b.decl.Result != nil {
		return errors.Errorf("result of %s already set", b.name())
	}
	b.decl.Result = typ
	return nil
}

// Abstract marks the function abstract. An abstract function cannot
// carry a body.
func (b *Func) Abstract() error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	if len(b.decl.Body) > 0 {
		return errors.Errorf("abstract %s cannot have a body", b.name())
	}
	if b.class == nil {
		return errors.Errorf("function %s: only methods can be abstract", b.decl.Name)
	}
	b.decl.Abstract = true
	return nil
}

// Static marks the method static.
func (b *Func) Static() error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	if b.class == nil {
		return errors.Errorf("function %s: only methods can be static", b.decl.Name)
	}
	b.decl.Static = true
	return nil
}

// Async marks the function asynchronous.
func (b *Func) Async() error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	b.decl.Async = true
	return nil
}

// Append adds statements to the body in order.
func (b *Func) Append(stmts ...ir.Stmt) error {
	if err := b.owner.check(""); err != nil {
		return err
	}
	if b.decl.Abstract {
		return errors.Errorf("abstract %s cannot have a body", b.name())
	}
	for _, stmt := range stmts {
		if stmt == nil {
			return errors.Errorf("nil statement appended to %s", b.name())
		}
	}
	b.decl.Body = append(b.decl.Body, stmts...)
	return nil
}
