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

// checker type-checks one function body.
type checker struct {
	v    *validator
	path diag.Path

	// self is the receiver type, nil outside instance methods.
	self *types.Named
	// result is the declared result type, nil for a function that
	// returns nothing.
	result types.Type
}

// assign reports a mismatch unless source is assignable to target.
// Invalid operands stay silent: the cause has already been reported.
// Resolver failures stay silent too, the reference pass owns those.
func (c *checker) assign(path diag.Path, source, target types.Type, what string) {
	if types.IsInvalid(source) || types.IsInvalid(target) {
		return
	}
	ok, err := types.Assignable(c.v, source, target)
	if err != nil {
		return
	}
	if !ok {
		c.v.bag.Add(diag.TypeMismatch, path,
			"%s: %s is not assignable to %s", what, source, target)
	}
}

// infer returns the type of the expression, reporting diagnostics on
// the way. It returns the invalid type once a problem has been
// reported, so enclosing expressions stay silent.
func (c *checker) infer(sc *scope, path diag.Path, x ir.Expr) types.Type {
	switch xT := x.(type) {
	case *ir.LitExpr:
		return xT.Type()
	case *ir.OmitExpr:
		return types.Omitted()
	case *ir.NameExpr:
		return c.inferName(sc, path, xT)
	case *ir.SelfExpr:
		if c.self == nil {
			c.v.bag.Add(diag.InvalidNode, path, "receiver used outside an instance method")
			return types.Invalid()
		}
		return c.self
	case *ir.AttrExpr:
		return c.inferAttr(sc, path, xT)
	case *ir.IndexExpr:
		return c.inferIndex(sc, path, xT)
	case *ir.CallExpr:
		result, hasValue := c.call(sc, path, xT)
		if !hasValue {
			c.v.bag.Add(diag.TypeMismatch, path, "call returns no value")
			return types.Invalid()
		}
		return result
	case *ir.UnaryExpr:
		return c.inferUnary(sc, path, xT)
	case *ir.BinaryExpr:
		return c.inferBinary(sc, path, xT)
	case *ir.CondExpr:
		return c.inferCond(sc, path, xT)
	case *ir.SeqLitExpr:
		c.v.checkTypeRef(path, xT.Elem)
		for i, elem := range xT.Elems {
			t := c.infer(sc, path, elem)
			c.assign(path, t, xT.Elem, fmt.Sprintf("element %d", i))
		}
		return types.SequenceOf(xT.Elem)
	case *ir.MapLitExpr:
		c.v.checkTypeRef(path, xT.Key)
		c.v.checkTypeRef(path, xT.Value)
		for i, entry := range xT.Entries {
			kt := c.infer(sc, path, entry.Key)
			c.assign(path, kt, xT.Key, fmt.Sprintf("key %d", i))
			vt := c.infer(sc, path, entry.Value)
			c.assign(path, vt, xT.Value, fmt.Sprintf("value %d", i))
		}
		return types.MappingOf(xT.Key, xT.Value)
	case *ir.LambdaExpr:
		return c.inferLambda(sc, path, xT)
	case *ir.FormatExpr:
		for _, part := range xT.Parts {
			c.infer(sc, path, part)
		}
		return types.String()
	case *ir.CastExpr:
		c.v.checkTypeRef(path, xT.T)
		c.infer(sc, path, xT.X)
		return xT.T
	}
	c.v.bag.Add(diag.InvalidNode, path, "unknown expression node %T", x)
	return types.Invalid()
}

func (c *checker) inferName(sc *scope, path diag.Path, x *ir.NameExpr) types.Type {
	if t, ok := sc.lookup(x.Name); ok {
		return t
	}
	if decl := c.v.mod.FindDecl(x.Name); decl != nil {
		return c.declValueType(path, c.v.mod, decl)
	}
	if imp := c.v.mod.FindImport(x.Name); imp != nil {
		c.v.bag.Add(diag.TypeMismatch, path, "module %s used as a value", imp.Module)
		return types.Invalid()
	}
	c.v.bag.Add(diag.UnresolvedReference, path, "name %s does not resolve", x.Name)
	return types.Invalid()
}

// declValueType returns the type of a declaration used as a value:
// a constant has its declared type, a function its function type, and
// a class the type of its synthesized constructor.
func (c *checker) declValueType(path diag.Path, owner *ir.Module, decl ir.Decl) types.Type {
	switch declT := decl.(type) {
	case *ir.ConstDecl:
		return declT.Type
	case *ir.FuncDecl:
		return declT.Type()
	case *ir.ClassDecl:
		params, result := c.v.constructor(owner, declT)
		paramTypes := make([]types.Type, len(params))
		for i, param := range params {
			paramTypes[i] = param.Type
		}
		return types.FunctionOf(paramTypes, result)
	}
	c.v.bag.Add(diag.TypeMismatch, path, "%s used as a value", decl.DeclName())
	return types.Invalid()
}

// constructor returns the synthesized constructor signature of a
// class: one parameter per constructor field, producing the class.
func (v *validator) constructor(owner *ir.Module, decl *ir.ClassDecl) ([]*ir.Param, types.Type) {
	args := decl.InitArgs()
	params := make([]*ir.Param, len(args))
	for i, field := range args {
		params[i] = &ir.Param{Name: field.Name, Type: field.Type, Default: field.Default}
	}
	var result types.Type
	if owner == v.mod {
		result = decl.Named()
	} else {
		result = types.ImportedOf(owner.Name, decl.Name)
	}
	return params, result
}

func (c *checker) inferAttr(sc *scope, path diag.Path, x *ir.AttrExpr) types.Type {
	// A name that resolves to an import qualifies a declaration of the
	// imported module, unless a local shadows it.
	if nameX, ok := x.X.(*ir.NameExpr); ok {
		if _, shadowed := sc.lookup(nameX.Name); !shadowed && c.v.mod.FindDecl(nameX.Name) == nil {
			if imp := c.v.mod.FindImport(nameX.Name); imp != nil {
				owner, ok := c.v.avail[imp.Module]
				if !ok {
					// Reported once on the import itself.
					return types.Invalid()
				}
				decl := owner.FindDecl(x.Name)
				if decl == nil {
					c.v.bag.Add(diag.UnresolvedReference, path,
						"%s has no declaration %s", imp.Module, x.Name)
					return types.Invalid()
				}
				return c.declValueType(path, owner, decl)
			}
		}
	}
	recv := c.infer(sc, path, x.X)
	if types.IsInvalid(recv) {
		return types.Invalid()
	}
	if types.IsAny(recv) {
		return types.Any()
	}
	named, ok := recv.(*types.Named)
	if !ok {
		c.v.bag.Add(diag.TypeMismatch, path, "%s has no member %s", recv, x.Name)
		return types.Invalid()
	}
	if t := c.v.findMember(named, x.Name, make(map[string]bool)); t != nil {
		return t
	}
	c.v.bag.Add(diag.UnresolvedReference, path, "%s has no member %s", named, x.Name)
	return types.Invalid()
}

func (c *checker) inferIndex(sc *scope, path diag.Path, x *ir.IndexExpr) types.Type {
	recv := c.infer(sc, path, x.X)
	index := c.infer(sc, path, x.Index)
	if types.IsInvalid(recv) {
		return types.Invalid()
	}
	switch recvT := recv.(type) {
	case *types.Sequence:
		c.assign(path, index, types.Int(), "index")
		return recvT.Elem
	case *types.Mapping:
		c.assign(path, index, recvT.Key, "key")
		return recvT.Value
	}
	if types.IsAny(recv) {
		return types.Any()
	}
	c.v.bag.Add(diag.TypeMismatch, path, "%s is not indexable", recv)
	return types.Invalid()
}

func (c *checker) inferUnary(sc *scope, path diag.Path, x *ir.UnaryExpr) types.Type {
	t := c.infer(sc, path, x.X)
	if types.IsInvalid(t) {
		return types.Invalid()
	}
	switch x.Op {
	case ir.OpNot:
		c.assign(path, t, types.Bool(), "operand")
		return types.Bool()
	case ir.OpNeg:
		if !types.IsNumeric(t) && !types.IsAny(t) {
			c.v.bag.Add(diag.TypeMismatch, path, "cannot negate %s", t)
			return types.Invalid()
		}
		return t
	case ir.OpLen:
		switch t.Kind() {
		case types.SequenceKind, types.SetKind, types.MappingKind:
			return types.Int()
		}
		if ok, _ := t.Equal(c.v, types.String()); ok || types.IsAny(t) {
			return types.Int()
		}
		c.v.bag.Add(diag.TypeMismatch, path, "%s has no length", t)
		return types.Invalid()
	case ir.OpIsNull, ir.OpIsNotNull:
		if !nullable(t) {
			c.v.bag.Add(diag.TypeMismatch, path, "%s can never be null", t)
		}
		return types.Bool()
	}
	c.v.bag.Add(diag.InvalidNode, path, "unknown unary operator")
	return types.Invalid()
}

// nullable returns true if a value of the type can hold null.
func nullable(t types.Type) bool {
	if types.IsAny(t) || types.IsNull(t) || t.Kind() == types.OptionalKind {
		return true
	}
	if u, ok := t.(*types.Union); ok {
		for _, member := range u.Elems {
			if nullable(member) {
				return true
			}
		}
	}
	return false
}

func (c *checker) inferBinary(sc *scope, path diag.Path, x *ir.BinaryExpr) types.Type {
	xt := c.infer(sc, path, x.X)
	yt := c.infer(sc, path, x.Y)
	if types.IsInvalid(xt) || types.IsInvalid(yt) {
		return types.Invalid()
	}
	if x.Op.IsLogical() {
		c.assign(path, xt, types.Bool(), "left operand")
		c.assign(path, yt, types.Bool(), "right operand")
		return types.Bool()
	}
	if x.Op.IsComparison() {
		if x.Op == ir.OpEq || x.Op == ir.OpNe {
			if !equatable(c, xt, yt) {
				c.v.bag.Add(diag.TypeMismatch, path, "cannot compare %s to %s", xt, yt)
			}
			return types.Bool()
		}
		if !ordered(c, xt, yt) {
			c.v.bag.Add(diag.TypeMismatch, path, "cannot order %s and %s", xt, yt)
		}
		return types.Bool()
	}
	// Arithmetic.
	if types.IsAny(xt) || types.IsAny(yt) {
		return types.Any()
	}
	if x.Op == ir.OpAdd {
		xs, _ := xt.Equal(c.v, types.String())
		ys, _ := yt.Equal(c.v, types.String())
		if xs && ys {
			return types.String()
		}
	}
	if types.IsNumeric(xt) && types.IsNumeric(yt) {
		// Every target's / produces a float for integer operands.
		if x.Op == ir.OpDiv {
			return types.Float()
		}
		return widen(xt, yt)
	}
	c.v.bag.Add(diag.TypeMismatch, path, "invalid operands %s and %s", xt, yt)
	return types.Invalid()
}

// widen returns float if either numeric operand is a float, int
// otherwise.
func widen(xt, yt types.Type) types.Type {
	if eq, _ := xt.Equal(nil, types.Float()); eq {
		return types.Float()
	}
	if eq, _ := yt.Equal(nil, types.Float()); eq {
		return types.Float()
	}
	return types.Int()
}

func equatable(c *checker, xt, yt types.Type) bool {
	if types.IsAny(xt) || types.IsAny(yt) {
		return true
	}
	if types.IsNumeric(xt) && types.IsNumeric(yt) {
		return true
	}
	if ok, err := types.Assignable(c.v, xt, yt); err == nil && ok {
		return true
	}
	ok, err := types.Assignable(c.v, yt, xt)
	return err == nil && ok
}

func ordered(c *checker, xt, yt types.Type) bool {
	if types.IsAny(xt) || types.IsAny(yt) {
		return true
	}
	if types.IsNumeric(xt) && types.IsNumeric(yt) {
		return true
	}
	xs, _ := xt.Equal(c.v, types.String())
	ys, _ := yt.Equal(c.v, types.String())
	return xs && ys
}

func (c *checker) inferCond(sc *scope, path diag.Path, x *ir.CondExpr) types.Type {
	cond := c.infer(sc, path, x.Cond)
	c.assign(path, cond, types.Bool(), "condition")
	then := c.infer(sc, path, x.Then)
	els := c.infer(sc, path, x.Else)
	if types.IsInvalid(then) || types.IsInvalid(els) {
		return types.Invalid()
	}
	if eq, err := then.Equal(c.v, els); err == nil && eq {
		return then
	}
	if ok, err := types.Assignable(c.v, then, els); err == nil && ok {
		return els
	}
	if ok, err := types.Assignable(c.v, els, then); err == nil && ok {
		return then
	}
	return types.UnionOf(then, els)
}

func (c *checker) inferLambda(sc *scope, path diag.Path, x *ir.LambdaExpr) types.Type {
	inner := newScope(sc)
	paramTypes := make([]types.Type, len(x.Params))
	for i, param := range x.Params {
		c.v.checkTypeRef(path, param.Type)
		inner.declare(param.Name, param.Type)
		paramTypes[i] = param.Type
	}
	body := c.infer(inner, path, x.Body)
	if types.IsInvalid(body) {
		return types.Invalid()
	}
	return types.FunctionOf(paramTypes, body)
}
