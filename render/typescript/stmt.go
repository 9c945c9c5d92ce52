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

package typescript

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

func (f *file) stmt(stmt ir.Stmt) {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		f.body.Line("%s = %s;", f.sub(s.Target, precCall), f.sub(s.Value, precArrow))
	case *ir.VarDeclStmt:
		name := f.names.of(s.Name)
		if s.Type != nil && f.locals != nil {
			f.locals[s.Name] = s.Type
		}
		switch {
		case s.Value == nil:
			f.body.Line("let %s: %s;", name, f.typ(s.Type))
		case s.Type == nil:
			f.body.Line("let %s = %s;", name, f.sub(s.Value, precArrow))
		default:
			f.body.Line("let %s: %s = %s;", name, f.typ(s.Type), f.sub(s.Value, precArrow))
		}
	case *ir.CondStmt:
		if len(s.Branches) == 0 {
			f.fail("conditional without branches")
			return
		}
		for i, branch := range s.Branches {
			keyword := "if"
			if i > 0 {
				keyword = "} else if"
			}
			f.body.Line("%s (%s) {", keyword, f.sub(branch.Cond, precArrow))
			f.block(branch.Body)
		}
		if len(s.Else) > 0 {
			f.body.Line("} else {")
			f.block(s.Else)
		}
		f.body.Line("}")
	case *ir.ForEachStmt:
		if s.KeyVar != "" {
			f.body.Line("for (const [%s, %s] of Object.entries(%s)) {",
				f.names.of(s.KeyVar), f.names.of(s.Var), f.sub(s.Iter, precTernary))
		} else {
			f.body.Line("for (const %s of %s) {", f.names.of(s.Var), f.sub(s.Iter, precArrow))
		}
		f.block(s.Body)
		f.body.Line("}")
	case *ir.WhileStmt:
		f.body.Line("while (%s) {", f.sub(s.Cond, precArrow))
		f.block(s.Body)
		f.body.Line("}")
	case *ir.ReturnStmt:
		if s.Value == nil {
			f.body.Line("return;")
		} else {
			f.body.Line("return %s;", f.sub(s.Value, precArrow))
		}
	case *ir.RaiseStmt:
		class := s.Class
		if class == "" {
			class = "Error"
		}
		if s.Value != nil {
			f.body.Line("throw new %s(%s);", class, f.sub(s.Value, precTernary))
		} else {
			f.body.Line("throw new %s(%s);", class, tsString(s.Msg))
		}
	case *ir.ExprStmt:
		f.body.Line("%s;", f.sub(s.X, precArrow))
	case *ir.AppendStmt:
		f.body.Line("%s.push(%s);", f.sub(s.Seq, precCall), f.sub(s.Value, precArrow))
	case *ir.WithResourceStmt:
		name := f.names.of(s.Var)
		f.body.Line("const %s = %s;", name, f.sub(s.Acquire, precArrow))
		f.body.Line("try {")
		f.block(s.Body)
		f.body.Line("} finally {")
		f.body.Block(func() {
			if s.Release != nil {
				f.body.Line("%s;", f.sub(s.Release, precArrow))
			} else {
				f.body.Line("%s.close();", name)
			}
		})
		f.body.Line("}")
	case *ir.TryStmt:
		f.try(s)
	case *ir.PassStmt:
		// Nothing to emit: TypeScript blocks may be empty.
	case *ir.CommentStmt:
		f.body.Line("// %s", s.Text)
	case *ir.BlankStmt:
		f.body.Blank()
	}
}

// try renders a try statement. TypeScript has a single catch clause,
// so classed clauses become instanceof dispatch, rethrowing when no
// clause matches.
func (f *file) try(s *ir.TryStmt) {
	f.body.Line("try {")
	f.block(s.Body)
	if len(s.Catches) > 0 {
		catchVar := "e"
		for _, clause := range s.Catches {
			if clause.Var != "" {
				catchVar = f.names.of(clause.Var)
				break
			}
		}
		f.body.Line("} catch (%s) {", catchVar)
		f.body.Block(func() {
			catchAll := false
			for i, clause := range s.Catches {
				if clause.Class == "" {
					catchAll = true
					if i == 0 {
						f.stmts(clause.Body)
					} else {
						f.body.Line("} else {")
						f.block(clause.Body)
						f.body.Line("}")
					}
					break
				}
				keyword := "if"
				if i > 0 {
					keyword = "} else if"
				}
				f.body.Line("%s (%s instanceof %s) {", keyword, catchVar, clause.Class)
				f.block(clause.Body)
			}
			if !catchAll {
				f.body.Line("} else {")
				f.body.Block(func() {
					f.body.Line("throw %s;", catchVar)
				})
				f.body.Line("}")
			}
		})
	}
	if len(s.Finally) > 0 {
		f.body.Line("} finally {")
		f.block(s.Finally)
	}
	f.body.Line("}")
}
