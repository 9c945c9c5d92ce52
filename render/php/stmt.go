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

package php

import "github.com/crossgen-org/crossgen/ir"

func (f *file) stmts(body []ir.Stmt) {
	for _, stmt := range body {
		f.stmt(stmt)
	}
}

func (f *file) block(body []ir.Stmt) {
	f.body.Block(func() {
		f.stmts(body)
	})
}

// throwClass qualifies an exception class name, defaulting to the
// global Exception.
func throwClass(class string) string {
	if class == "" {
		return `\Exception`
	}
	if class[0] == '\\' {
		return class
	}
	return `\` + class
}

func (f *file) stmt(stmt ir.Stmt) {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		f.body.Line("%s = %s;", f.sub(s.Target, precArrow), f.sub(s.Value, precTernary))
	case *ir.VarDeclStmt:
		if s.Value == nil {
			f.body.Line("$%s = null;", s.Name)
		} else {
			f.body.Line("$%s = %s;", s.Name, f.sub(s.Value, precTernary))
		}
	case *ir.CondStmt:
		if len(s.Branches) == 0 {
			f.fail("conditional without branches")
			return
		}
		for i, branch := range s.Branches {
			keyword := "if"
			if i > 0 {
				keyword = "} elseif"
			}
			f.body.Line("%s (%s) {", keyword, f.sub(branch.Cond, precTernary))
			f.block(branch.Body)
		}
		if len(s.Else) > 0 {
			f.body.Line("} else {")
			f.block(s.Else)
		}
		f.body.Line("}")
	case *ir.ForEachStmt:
		if s.KeyVar != "" {
			f.body.Line("foreach (%s as $%s => $%s) {", f.sub(s.Iter, precTernary), s.KeyVar, s.Var)
		} else {
			f.body.Line("foreach (%s as $%s) {", f.sub(s.Iter, precTernary), s.Var)
		}
		f.block(s.Body)
		f.body.Line("}")
	case *ir.WhileStmt:
		f.body.Line("while (%s) {", f.sub(s.Cond, precTernary))
		f.block(s.Body)
		f.body.Line("}")
	case *ir.ReturnStmt:
		if s.Value == nil {
			f.body.Line("return;")
		} else {
			f.body.Line("return %s;", f.sub(s.Value, precTernary))
		}
	case *ir.RaiseStmt:
		if s.Value != nil {
			f.body.Line("throw new %s(%s);", throwClass(s.Class), f.sub(s.Value, precTernary))
		} else {
			f.body.Line("throw new %s(%s);", throwClass(s.Class), phpString(s.Msg))
		}
	case *ir.ExprStmt:
		f.body.Line("%s;", f.sub(s.X, precTernary))
	case *ir.AppendStmt:
		f.body.Line("%s[] = %s;", f.sub(s.Seq, precArrow), f.sub(s.Value, precTernary))
	case *ir.WithResourceStmt:
		f.body.Line("$%s = %s;", s.Var, f.sub(s.Acquire, precTernary))
		f.body.Line("try {")
		f.block(s.Body)
		f.body.Line("} finally {")
		f.body.Block(func() {
			if s.Release != nil {
				f.body.Line("%s;", f.sub(s.Release, precTernary))
			} else {
				f.body.Line("$%s->close();", s.Var)
			}
		})
		f.body.Line("}")
	case *ir.TryStmt:
		f.body.Line("try {")
		f.block(s.Body)
		for _, clause := range s.Catches {
			catchVar := clause.Var
			if catchVar == "" {
				catchVar = "_"
			}
			f.body.Line("} catch (%s $%s) {", throwClass(clause.Class), catchVar)
			f.block(clause.Body)
		}
		if len(s.Finally) > 0 {
			f.body.Line("} finally {")
			f.block(s.Finally)
		}
		f.body.Line("}")
	case *ir.PassStmt:
		// PHP blocks may be empty.
	case *ir.CommentStmt:
		f.body.Line("// %s", s.Text)
	case *ir.BlankStmt:
		f.body.Blank()
	}
}
