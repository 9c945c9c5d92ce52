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

package validator

import (
	"fmt"

	"github.com/crossgen-org/crossgen/diag"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// call checks a call expression. hasValue is false when the callee
// returns nothing; problems with the callee itself come back as the
// invalid type with hasValue true, so value contexts stay silent.
func (c *checker) call(sc *scope, path diag.Path, x *ir.CallExpr) (result types.Type, hasValue bool) {
	if params, declResult, ok := c.calleeSignature(sc, path, x.Fun); ok {
		c.checkArgs(sc, path, x, params)
		if declResult == nil {
			return nil, false
		}
		return declResult, true
	}
	// The callee is a value with a function type: a parameter, a local,
	// or a lambda. Parameter names and defaults are unknown here, so
	// only the positional shape is checkable.
	funT := c.infer(sc, path, x.Fun)
	if types.IsInvalid(funT) {
		return types.Invalid(), true
	}
	if types.IsAny(funT) {
		for _, arg := range x.Args {
			c.infer(sc, path, arg)
		}
		for _, named := range x.Named {
			c.infer(sc, path, named.Value)
		}
		return types.Any(), true
	}
	fn, ok := funT.(*types.Function)
	if !ok {
		c.v.bag.Add(diag.TypeMismatch, path, "%s is not callable", funT)
		return types.Invalid(), true
	}
	if len(x.Named) > 0 {
		c.v.bag.Add(diag.InvalidNode, path, "named arguments require a declared callee")
	}
	if len(x.Args) != len(fn.Params) {
		c.v.bag.Add(diag.TypeMismatch, path,
			"wrong number of arguments: got %d, want %d", len(x.Args), len(fn.Params))
	}
	for i, arg := range x.Args {
		t := c.infer(sc, path, arg)
		if i < len(fn.Params) {
			c.assign(path, t, fn.Params[i], fmt.Sprintf("argument %d", i))
		}
	}
	if fn.Result == nil {
		return nil, false
	}
	return fn.Result, true
}

// calleeSignature resolves the declared parameters and result of the
// callee when the callee is a declaration: a module function, a class
// constructor, an imported declaration, or a method of the receiver.
func (c *checker) calleeSignature(sc *scope, path diag.Path, fun ir.Expr) ([]*ir.Param, types.Type, bool) {
	switch funT := fun.(type) {
	case *ir.NameExpr:
		if _, shadowed := sc.lookup(funT.Name); shadowed {
			return nil, nil, false
		}
		return c.declSignature(c.v.mod, c.v.mod.FindDecl(funT.Name))
	case *ir.AttrExpr:
		if nameX, ok := funT.X.(*ir.NameExpr); ok {
			if _, shadowed := sc.lookup(nameX.Name); !shadowed && c.v.mod.FindDecl(nameX.Name) == nil {
				if imp := c.v.mod.FindImport(nameX.Name); imp != nil {
					owner, ok := c.v.avail[imp.Module]
					if !ok {
						return nil, nil, false
					}
					return c.declSignature(owner, owner.FindDecl(funT.Name))
				}
			}
		}
		recv := c.recvType(sc, funT.X)
		if recv == nil {
			return nil, nil, false
		}
		method := c.v.findMethod(recv, funT.Name, make(map[string]bool))
		if method == nil {
			return nil, nil, false
		}
		return method.Params, method.Result, true
	}
	return nil, nil, false
}

// recvType infers the receiver type without reporting, so the call
// check can fall back to value-typed calling when the receiver is not
// a class instance.
func (c *checker) recvType(sc *scope, x ir.Expr) *types.Named {
	var t types.Type
	switch xT := x.(type) {
	case *ir.SelfExpr:
		if c.self == nil {
			return nil
		}
		t = c.self
	case *ir.NameExpr:
		if local, ok := sc.lookup(xT.Name); ok {
			t = local
		}
	case *ir.AttrExpr:
		if recv := c.recvType(sc, xT.X); recv != nil {
			t = c.v.findMember(recv, xT.Name, make(map[string]bool))
		}
	}
	if t == nil {
		return nil
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	return named
}

func (c *checker) declSignature(owner *ir.Module, decl ir.Decl) ([]*ir.Param, types.Type, bool) {
	switch declT := decl.(type) {
	case *ir.FuncDecl:
		return declT.Params, declT.Result, true
	case *ir.ClassDecl:
		params, result := c.v.constructor(owner, declT)
		return params, result, true
	}
	return nil, nil, false
}

// checkArgs checks the arguments of a call against declared
// parameters: positional shape, named arguments, defaults, and
// assignability.
func (c *checker) checkArgs(sc *scope, path diag.Path, x *ir.CallExpr, params []*ir.Param) {
	var positional []*ir.Param
	for _, param := range params {
		if !param.KeywordOnly {
			positional = append(positional, param)
		}
	}
	if len(x.Args) > len(positional) {
		c.v.bag.Add(diag.TypeMismatch, path,
			"too many positional arguments: got %d, want at most %d",
			len(x.Args), len(positional))
	}
	given := make(map[string]bool)
	for i, arg := range x.Args {
		t := c.infer(sc, path, arg)
		if i < len(positional) {
			c.assign(path, t, positional[i].Type, fmt.Sprintf("argument %s", positional[i].Name))
			given[positional[i].Name] = true
		}
	}
	byName := make(map[string]*ir.Param, len(params))
	for _, param := range params {
		byName[param.Name] = param
	}
	for _, named := range x.Named {
		t := c.infer(sc, path, named.Value)
		param, ok := byName[named.Name]
		if !ok {
			c.v.bag.Add(diag.UnresolvedReference, path,
				"no parameter named %s", named.Name)
			continue
		}
		if given[named.Name] {
			c.v.bag.Add(diag.InvalidNode, path,
				"argument %s given more than once", named.Name)
			continue
		}
		given[named.Name] = true
		c.assign(path, t, param.Type, fmt.Sprintf("argument %s", named.Name))
	}
	for _, param := range params {
		if given[param.Name] || param.Default != nil || omittable(param.Type) {
			continue
		}
		c.v.bag.Add(diag.TypeMismatch, path, "missing argument %s", param.Name)
	}
}

// omittable returns true if the parameter type admits leaving the
// argument out entirely.
func omittable(t types.Type) bool {
	u, ok := t.(*types.Union)
	return ok && u.HasOmitted()
}
