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

// checkCapabilities runs the capability pass: every construct the tree
// uses must be expressible by every requested target.
func (v *validator) checkCapabilities(path diag.Path, targets []TargetCaps) {
	if len(targets) == 0 {
		return
	}
	w := &capWalker{}
	w.module(path, v.mod)
	for _, use := range w.uses {
		for _, target := range targets {
			if target.Supports == nil || target.Supports(use.construct) {
				continue
			}
			v.bag.Add(diag.UnsupportedConstruct, use.path,
				"%s cannot express %s", target.Name, use.construct)
		}
	}
}

type capUse struct {
	path      diag.Path
	construct ir.Construct
}

// capWalker records every capability-gated construct the tree uses.
type capWalker struct {
	uses []capUse
}

func (w *capWalker) use(path diag.Path, construct ir.Construct) {
	w.uses = append(w.uses, capUse{path: path, construct: construct})
}

func (w *capWalker) module(path diag.Path, mod *ir.Module) {
	for _, decl := range mod.Decls {
		switch declT := decl.(type) {
		case *ir.ClassDecl:
			w.class(path.Child("class %s", declT.Name), declT)
		case *ir.FuncDecl:
			w.fun(path.Child("function %s", declT.Name), declT)
		case *ir.ConstDecl:
			w.typ(path.Child("const %s", declT.Name), declT.Type)
			w.expr(path.Child("const %s", declT.Name), declT.Value)
		case *ir.TypeAliasDecl:
			child := path.Child("alias %s", declT.Name)
			w.use(child, ir.ConstructTypeAlias)
			w.typ(child, declT.Aliased)
		case *ir.InterfaceDecl:
			child := path.Child("interface %s", declT.Name)
			w.use(child, ir.ConstructInterface)
			for _, prop := range declT.Props {
				w.typ(child, prop.Type)
			}
		}
	}
}

func (w *capWalker) class(path diag.Path, decl *ir.ClassDecl) {
	if len(decl.Bases) > 1 {
		w.use(path, ir.ConstructMultipleBases)
	}
	for _, field := range decl.Fields {
		w.typ(path.Child("field %s", field.Name), field.Type)
		if field.Default != nil {
			w.expr(path.Child("field %s", field.Name), field.Default)
		}
	}
	for _, method := range decl.Methods {
		w.fun(path.Child("method %s", method.Name), method)
	}
}

func (w *capWalker) fun(path diag.Path, decl *ir.FuncDecl) {
	if decl.Async {
		w.use(path, ir.ConstructAsync)
	}
	w.params(path, decl.Params)
	if decl.Result != nil {
		w.typ(path, decl.Result)
	}
	w.stmts(path, decl.Body)
}

func (w *capWalker) params(path diag.Path, params []*ir.Param) {
	for _, param := range params {
		if param.KeywordOnly {
			w.use(path, ir.ConstructKeywordOnlyParams)
		}
		w.typ(path, param.Type)
		if param.Default != nil {
			w.expr(path, param.Default)
		}
	}
}

func (w *capWalker) stmts(path diag.Path, body []ir.Stmt) {
	for i, stmt := range body {
		w.stmt(path.Child("stmt %d", i+1), stmt)
	}
}

func (w *capWalker) stmt(path diag.Path, stmt ir.Stmt) {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		w.expr(path, s.Target)
		w.expr(path, s.Value)
	case *ir.VarDeclStmt:
		if s.Type != nil {
			w.typ(path, s.Type)
		}
		if s.Value != nil {
			w.expr(path, s.Value)
		}
	case *ir.CondStmt:
		for _, branch := range s.Branches {
			w.expr(path, branch.Cond)
			w.stmts(path, branch.Body)
		}
		w.stmts(path, s.Else)
	case *ir.ForEachStmt:
		w.expr(path, s.Iter)
		w.stmts(path, s.Body)
	case *ir.WhileStmt:
		w.expr(path, s.Cond)
		w.stmts(path, s.Body)
	case *ir.ReturnStmt:
		if s.Value != nil {
			w.expr(path, s.Value)
		}
	case *ir.RaiseStmt:
		if s.Value != nil {
			w.expr(path, s.Value)
		}
	case *ir.ExprStmt:
		w.expr(path, s.X)
	case *ir.AppendStmt:
		w.expr(path, s.Seq)
		w.expr(path, s.Value)
	case *ir.WithResourceStmt:
		w.expr(path, s.Acquire)
		if s.Release != nil {
			w.expr(path, s.Release)
		}
		w.stmts(path, s.Body)
	case *ir.TryStmt:
		w.stmts(path, s.Body)
		for _, clause := range s.Catches {
			w.stmts(path, clause.Body)
		}
		w.stmts(path, s.Finally)
	}
}

func (w *capWalker) expr(path diag.Path, x ir.Expr) {
	switch xT := x.(type) {
	case *ir.OmitExpr:
		w.use(path, ir.ConstructOmittedType)
	case *ir.AttrExpr:
		if xT.X != nil {
			w.expr(path, xT.X)
		}
	case *ir.IndexExpr:
		w.expr(path, xT.X)
		w.expr(path, xT.Index)
	case *ir.CallExpr:
		if len(xT.Named) > 0 {
			w.use(path, ir.ConstructNamedArgs)
		}
		w.expr(path, xT.Fun)
		for _, arg := range xT.Args {
			w.expr(path, arg)
		}
		for _, named := range xT.Named {
			w.expr(path, named.Value)
		}
	case *ir.UnaryExpr:
		w.expr(path, xT.X)
	case *ir.BinaryExpr:
		w.expr(path, xT.X)
		w.expr(path, xT.Y)
	case *ir.CondExpr:
		w.expr(path, xT.Cond)
		w.expr(path, xT.Then)
		w.expr(path, xT.Else)
	case *ir.SeqLitExpr:
		w.typ(path, xT.Elem)
		for _, elem := range xT.Elems {
			w.expr(path, elem)
		}
	case *ir.MapLitExpr:
		w.typ(path, xT.Key)
		w.typ(path, xT.Value)
		for _, entry := range xT.Entries {
			w.expr(path, entry.Key)
			w.expr(path, entry.Value)
		}
	case *ir.LambdaExpr:
		w.use(path, ir.ConstructLambda)
		w.params(path, xT.Params)
		w.expr(path, xT.Body)
	case *ir.FormatExpr:
		for _, part := range xT.Parts {
			w.expr(path, part)
		}
	case *ir.CastExpr:
		w.use(path, ir.ConstructCast)
		w.typ(path, xT.T)
		w.expr(path, xT.X)
	}
}

func (w *capWalker) typ(path diag.Path, t types.Type) {
	switch tt := t.(type) {
	case *types.Primitive:
		if tt.P == types.OmittedPrim {
			w.use(path, ir.ConstructOmittedType)
		}
	case *types.Optional:
		w.typ(path, tt.Elem)
	case *types.Sequence:
		w.typ(path, tt.Elem)
	case *types.Set:
		w.use(path, ir.ConstructSetType)
		w.typ(path, tt.Elem)
	case *types.Mapping:
		w.typ(path, tt.Key)
		w.typ(path, tt.Value)
	case *types.Union:
		for _, member := range tt.Elems {
			w.typ(path, member)
		}
	case *types.Named:
		for _, arg := range tt.Args {
			w.typ(path, arg)
		}
	case *types.Function:
		for _, param := range tt.Params {
			w.typ(path, param)
		}
		if tt.Result != nil {
			w.typ(path, tt.Result)
		}
	}
}
