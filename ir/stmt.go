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

package ir

import "github.com/crossgen-org/crossgen/types"

type (
	// AssignStmt assigns a value to an existing storage location:
	// a name, an attribute, or an indexed element.
	AssignStmt struct {
		Target Expr
		Value  Expr
	}

	// VarDeclStmt declares a local variable. Type may be nil, in which
	// case it is inferred from the value during validation. Value may
	// be nil for a declaration without initialization.
	VarDeclStmt struct {
		Name  string
		Type  types.Type
		Value Expr
	}

	// Branch is one condition/body pair of a conditional statement.
	Branch struct {
		Cond Expr
		Body []Stmt
	}

	// CondStmt is a conditional with one or more branches and an
	// optional else body.
	CondStmt struct {
		Branches []*Branch
		Else     []Stmt
	}

	// ForEachStmt iterates over a sequence, set, or mapping.
	// KeyVar is only valid when iterating a mapping, binding the key
	// alongside the value.
	ForEachStmt struct {
		KeyVar string
		Var    string
		Iter   Expr
		Body   []Stmt
	}

	// WhileStmt repeats its body while the condition holds.
	WhileStmt struct {
		Cond Expr
		Body []Stmt
	}

	// ReturnStmt returns from the enclosing function.
	// A nil value is a bare return.
	ReturnStmt struct {
		Value Expr
	}

	// RaiseStmt raises the target's exception equivalent.
	// Class names the exception class, empty for the target default.
	// Exactly one of Msg or Value provides the payload.
	RaiseStmt struct {
		Class string
		Msg   string
		Value Expr
	}

	// ExprStmt evaluates an expression for its effect.
	ExprStmt struct {
		X Expr
	}

	// AppendStmt appends a value to a sequence in place.
	AppendStmt struct {
		Seq   Expr
		Value Expr
	}

	// WithResourceStmt acquires a resource, runs the body, and
	// guarantees release afterwards even when the body raises.
	// A nil Release defaults to calling close on the bound variable.
	WithResourceStmt struct {
		Var     string
		Acquire Expr
		Release Expr
		Body    []Stmt
	}

	// CatchClause handles exceptions of the named class inside a
	// TryStmt. An empty Class catches everything; Var binds the caught
	// exception and may be empty.
	CatchClause struct {
		Class string
		Var   string
		Body  []Stmt
	}

	// TryStmt runs its body under the catch clauses, then the finally
	// body regardless of outcome.
	TryStmt struct {
		Body    []Stmt
		Catches []*CatchClause
		Finally []Stmt
	}

	// PassStmt does nothing.
	PassStmt struct{}

	// CommentStmt writes a single-line comment.
	CommentStmt struct {
		Text string
	}

	// BlankStmt writes an empty line.
	BlankStmt struct{}
)

func (*AssignStmt) node()       {}
func (*VarDeclStmt) node()      {}
func (*Branch) node()           {}
func (*CondStmt) node()         {}
func (*ForEachStmt) node()      {}
func (*WhileStmt) node()        {}
func (*ReturnStmt) node()       {}
func (*RaiseStmt) node()        {}
func (*ExprStmt) node()         {}
func (*AppendStmt) node()       {}
func (*WithResourceStmt) node() {}
func (*CatchClause) node()      {}
func (*TryStmt) node()          {}
func (*PassStmt) node()         {}
func (*CommentStmt) node()      {}
func (*BlankStmt) node()        {}

func (*AssignStmt) stmt()       {}
func (*VarDeclStmt) stmt()      {}
func (*CondStmt) stmt()         {}
func (*ForEachStmt) stmt()      {}
func (*WhileStmt) stmt()        {}
func (*ReturnStmt) stmt()       {}
func (*RaiseStmt) stmt()        {}
func (*ExprStmt) stmt()         {}
func (*AppendStmt) stmt()       {}
func (*WithResourceStmt) stmt() {}
func (*TryStmt) stmt()          {}
func (*PassStmt) stmt()         {}
func (*CommentStmt) stmt()      {}
func (*BlankStmt) stmt()        {}
