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
	"github.com/crossgen-org/crossgen/diag"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// checkTypes runs the type pass: every value must be used where its
// type is assignable.
func (v *validator) checkTypes(path diag.Path) {
	for _, decl := range v.mod.Decls {
		switch declT := decl.(type) {
		case *ir.ConstDecl:
			child := path.Child("const %s", declT.Name)
			c := &checker{v: v, path: child}
			t := c.infer(newScope(nil), child, declT.Value)
			c.assign(child, t, declT.Type, "value")
		case *ir.ClassDecl:
			v.checkClassTypes(path.Child("class %s", declT.Name), declT)
		case *ir.FuncDecl:
			v.checkFuncTypes(path.Child("function %s", declT.Name), declT, nil)
		}
	}
}

func (v *validator) checkClassTypes(path diag.Path, decl *ir.ClassDecl) {
	for _, field := range decl.Fields {
		if field.Default == nil {
			continue
		}
		child := path.Child("field %s", field.Name)
		c := &checker{v: v, path: child}
		t := c.infer(newScope(nil), child, field.Default)
		c.assign(child, t, field.Type, "default")
	}
	for _, method := range decl.Methods {
		v.checkFuncTypes(path.Child("method %s", method.Name), method, decl)
	}
}

func (v *validator) checkFuncTypes(path diag.Path, decl *ir.FuncDecl, class *ir.ClassDecl) {
	c := &checker{v: v, path: path, result: decl.Result}
	if class != nil && !decl.Static {
		c.self = class.Named()
	}
	sc := newScope(nil)
	for _, param := range decl.Params {
		if param.Default != nil {
			child := path.Child("param %s", param.Name)
			t := c.infer(newScope(nil), child, param.Default)
			c.assign(child, t, param.Type, "default")
		}
		sc.declare(param.Name, param.Type)
	}
	c.stmts(sc, path, decl.Body)
}

func (c *checker) stmts(sc *scope, path diag.Path, body []ir.Stmt) {
	for i, stmt := range body {
		c.stmt(sc, path.Child("stmt %d", i+1), stmt)
	}
}

func (c *checker) stmt(sc *scope, path diag.Path, stmt ir.Stmt) {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		c.checkAssign(sc, path, s)
	case *ir.VarDeclStmt:
		c.checkVarDecl(sc, path, s)
	case *ir.CondStmt:
		if len(s.Branches) == 0 {
			c.v.bag.Add(diag.InvalidNode, path, "conditional without branches")
		}
		for _, branch := range s.Branches {
			cond := c.infer(sc, path, branch.Cond)
			c.assign(path, cond, types.Bool(), "condition")
			c.stmts(newScope(sc), path, branch.Body)
		}
		c.stmts(newScope(sc), path, s.Else)
	case *ir.ForEachStmt:
		c.checkForEach(sc, path, s)
	case *ir.WhileStmt:
		cond := c.infer(sc, path, s.Cond)
		c.assign(path, cond, types.Bool(), "condition")
		c.stmts(newScope(sc), path, s.Body)
	case *ir.ReturnStmt:
		c.checkReturn(sc, path, s)
	case *ir.RaiseStmt:
		hasMsg := s.Msg != ""
		hasValue := s.Value != nil
		if hasMsg == hasValue {
			c.v.bag.Add(diag.InvalidNode, path,
				"raise requires a message or a value, not both")
		}
		if hasValue {
			c.infer(sc, path, s.Value)
		}
	case *ir.ExprStmt:
		if call, ok := s.X.(*ir.CallExpr); ok {
			c.call(sc, path, call)
			return
		}
		c.infer(sc, path, s.X)
	case *ir.AppendStmt:
		seq := c.infer(sc, path, s.Seq)
		value := c.infer(sc, path, s.Value)
		if types.IsInvalid(seq) || types.IsAny(seq) {
			return
		}
		seqT, ok := seq.(*types.Sequence)
		if !ok {
			c.v.bag.Add(diag.TypeMismatch, path, "cannot append to %s", seq)
			return
		}
		c.assign(path, value, seqT.Elem, "appended value")
	case *ir.WithResourceStmt:
		inner := newScope(sc)
		acquired := c.infer(sc, path, s.Acquire)
		inner.declare(s.Var, acquired)
		if s.Release != nil {
			c.infer(inner, path, s.Release)
		}
		c.stmts(inner, path, s.Body)
	case *ir.TryStmt:
		c.stmts(newScope(sc), path, s.Body)
		for _, clause := range s.Catches {
			inner := newScope(sc)
			if clause.Var != "" {
				inner.declare(clause.Var, types.Any())
			}
			c.stmts(inner, path, clause.Body)
		}
		c.stmts(newScope(sc), path, s.Finally)
	case *ir.PassStmt, *ir.CommentStmt, *ir.BlankStmt:
	default:
		c.v.bag.Add(diag.InvalidNode, path, "unknown statement node %T", stmt)
	}
}

func (c *checker) checkVarDecl(sc *scope, path diag.Path, s *ir.VarDeclStmt) {
	if s.Type == nil && s.Value == nil {
		c.v.bag.Add(diag.InvalidNode, path,
			"variable %s requires a type or a value", s.Name)
		sc.declare(s.Name, types.Invalid())
		return
	}
	if _, exists := sc.names[s.Name]; exists {
		c.v.bag.Add(diag.DuplicateName, path, "variable %s declared twice", s.Name)
	}
	t := s.Type
	if t != nil {
		c.v.checkTypeRef(path, t)
	}
	if s.Value != nil {
		vt := c.infer(sc, path, s.Value)
		if t == nil {
			t = vt
		} else {
			c.assign(path, vt, t, "value")
		}
	}
	sc.declare(s.Name, t)
}

func (c *checker) checkAssign(sc *scope, path diag.Path, s *ir.AssignStmt) {
	value := c.infer(sc, path, s.Value)
	switch target := s.Target.(type) {
	case *ir.NameExpr:
		t, ok := sc.lookup(target.Name)
		if !ok {
			if c.v.mod.FindDecl(target.Name) != nil {
				c.v.bag.Add(diag.InvalidNode, path,
					"cannot assign to declaration %s", target.Name)
			} else {
				c.v.bag.Add(diag.UnresolvedReference, path,
					"name %s does not resolve", target.Name)
			}
			return
		}
		c.assign(path, value, t, "assignment")
	case *ir.AttrExpr:
		recv := c.recvType(sc, target.X)
		if recv != nil {
			if field := c.v.findField(recv, target.Name, make(map[string]bool)); field != nil && field.ReadOnly {
				c.v.bag.Add(diag.InvalidNode, path,
					"cannot assign to read-only field %s", target.Name)
			}
		}
		t := c.inferAttr(sc, path, target)
		c.assign(path, value, t, "assignment")
	case *ir.IndexExpr:
		t := c.inferIndex(sc, path, target)
		c.assign(path, value, t, "assignment")
	default:
		c.v.bag.Add(diag.InvalidNode, path, "%T is not an assignable target", s.Target)
	}
}

func (c *checker) checkForEach(sc *scope, path diag.Path, s *ir.ForEachStmt) {
	iter := c.infer(sc, path, s.Iter)
	inner := newScope(sc)
	switch iterT := iter.(type) {
	case *types.Sequence:
		if s.KeyVar != "" {
			c.v.bag.Add(diag.InvalidNode, path, "key variable over a sequence")
		}
		inner.declare(s.Var, iterT.Elem)
	case *types.Set:
		if s.KeyVar != "" {
			c.v.bag.Add(diag.InvalidNode, path, "key variable over a set")
		}
		inner.declare(s.Var, iterT.Elem)
	case *types.Mapping:
		if s.KeyVar == "" {
			c.v.bag.Add(diag.InvalidNode, path, "mapping iteration requires a key variable")
		} else {
			inner.declare(s.KeyVar, iterT.Key)
		}
		inner.declare(s.Var, iterT.Value)
	default:
		if !types.IsInvalid(iter) && !types.IsAny(iter) {
			c.v.bag.Add(diag.TypeMismatch, path, "cannot iterate %s", iter)
		}
		if s.KeyVar != "" {
			inner.declare(s.KeyVar, types.Any())
		}
		inner.declare(s.Var, types.Any())
	}
	c.stmts(inner, path, s.Body)
}

func (c *checker) checkReturn(sc *scope, path diag.Path, s *ir.ReturnStmt) {
	if c.result == nil {
		if s.Value != nil {
			c.infer(sc, path, s.Value)
			c.v.bag.Add(diag.TypeMismatch, path,
				"returning a value from a function that returns nothing")
		}
		return
	}
	if s.Value == nil {
		c.v.bag.Add(diag.TypeMismatch, path, "missing return value")
		return
	}
	t := c.infer(sc, path, s.Value)
	c.assign(path, t, c.result, "return value")
}
