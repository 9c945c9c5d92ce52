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

package python

import "github.com/crossgen-org/crossgen/ir"

func (f *file) stmts(body []ir.Stmt) {
	for _, stmt := range body {
		f.stmt(stmt)
	}
}

// block renders a statement body one level deeper, with the pass
// Python needs when the body is empty.
func (f *file) block(body []ir.Stmt) {
	f.body.Block(func() {
		if len(body) == 0 {
			f.body.Line("pass")
			return
		}
		f.stmts(body)
	})
}

func (f *file) stmt(stmt ir.Stmt) {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		f.body.Line("%s = %s", f.sub(s.Target, precCall), f.sub(s.Value, precLambda))
	case *ir.VarDeclStmt:
		name := f.names.of(s.Name)
		switch {
		case s.Value == nil:
			f.body.Line("%s: %s", name, f.typ(s.Type))
		case s.Type == nil:
			f.body.Line("%s = %s", name, f.sub(s.Value, precLambda))
		default:
			f.body.Line("%s: %s = %s", name, f.typ(s.Type), f.sub(s.Value, precLambda))
		}
	case *ir.CondStmt:
		if len(s.Branches) == 0 {
			f.fail("conditional without branches")
			return
		}
		for i, branch := range s.Branches {
			keyword := "if"
			if i > 0 {
				keyword = "elif"
			}
			f.body.Line("%s %s:", keyword, f.sub(branch.Cond, precLambda))
			f.block(branch.Body)
		}
		if len(s.Else) > 0 {
			f.body.Line("else:")
			f.block(s.Else)
		}
	case *ir.ForEachStmt:
		if s.KeyVar != "" {
			f.body.Line("for %s, %s in %s.items():",
				f.names.of(s.KeyVar), f.names.of(s.Var), f.sub(s.Iter, precCall))
		} else {
			f.body.Line("for %s in %s:", f.names.of(s.Var), f.sub(s.Iter, precLambda))
		}
		f.block(s.Body)
	case *ir.WhileStmt:
		f.body.Line("while %s:", f.sub(s.Cond, precLambda))
		f.block(s.Body)
	case *ir.ReturnStmt:
		if s.Value == nil {
			f.body.Line("return")
		} else {
			f.body.Line("return %s", f.sub(s.Value, precLambda))
		}
	case *ir.RaiseStmt:
		class := s.Class
		if class == "" {
			class = "Exception"
		}
		if s.Value != nil {
			f.body.Line("raise %s(%s)", class, f.sub(s.Value, precTernary))
		} else {
			f.body.Line("raise %s(%s)", class, pyString(s.Msg))
		}
	case *ir.ExprStmt:
		f.body.Line("%s", f.sub(s.X, precLambda))
	case *ir.AppendStmt:
		f.body.Line("%s.append(%s)", f.sub(s.Seq, precCall), f.sub(s.Value, precLambda))
	case *ir.WithResourceStmt:
		name := f.names.of(s.Var)
		f.body.Line("%s = %s", name, f.sub(s.Acquire, precLambda))
		f.body.Line("try:")
		f.block(s.Body)
		f.body.Line("finally:")
		f.body.Block(func() {
			if s.Release != nil {
				f.body.Line("%s", f.sub(s.Release, precLambda))
			} else {
				f.body.Line("%s.close()", name)
			}
		})
	case *ir.TryStmt:
		f.body.Line("try:")
		f.block(s.Body)
		for _, clause := range s.Catches {
			class := clause.Class
			if class == "" {
				class = "Exception"
			}
			if clause.Var != "" {
				f.body.Line("except %s as %s:", class, f.names.of(clause.Var))
			} else {
				f.body.Line("except %s:", class)
			}
			f.block(clause.Body)
		}
		if len(s.Finally) > 0 {
			f.body.Line("finally:")
			f.block(s.Finally)
		}
	case *ir.PassStmt:
		f.body.Line("pass")
	case *ir.CommentStmt:
		f.body.Line("# %s", s.Text)
	case *ir.BlankStmt:
		f.body.Blank()
	}
}
