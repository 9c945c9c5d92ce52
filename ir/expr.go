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

// UnaryOp is a unary operator.
type UnaryOp int

// Unary operators.
const (
	OpNot UnaryOp = iota
	OpNeg
	// OpLen is the length of a sequence, set, mapping, or string.
	OpLen
	// OpIsNull tests a value against the null literal.
	OpIsNull
	// OpIsNotNull is the negation of OpIsNull; kept as its own
	// operator so renderers can emit the idiomatic negative form
	// instead of wrapping OpIsNull in a not.
	OpIsNotNull
)

// BinaryOp is a binary operator.
type BinaryOp int

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

// IsComparison returns true for operators producing a boolean from two
// comparable operands.
func (op BinaryOp) IsComparison() bool {
	return op >= OpEq && op <= OpGe
}

// IsLogical returns true for the boolean connectives.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

type (
	// LitExpr is a typed literal value.
	// P selects which field carries the value; NullPrim carries none.
	LitExpr struct {
		P    types.Prim
		Str  string
		Int  int64
		F    float64
		Bool bool
	}

	// OmitExpr is the omitted-argument sentinel.
	OmitExpr struct{}

	// NameExpr references a declared name: a local variable, a
	// parameter, a module-level declaration, or an imported module.
	NameExpr struct {
		Name string
	}

	// SelfExpr references the receiver inside a method.
	SelfExpr struct{}

	// AttrExpr accesses a member of a value.
	AttrExpr struct {
		X    Expr
		Name string
	}

	// IndexExpr accesses an element of a sequence or a mapping.
	IndexExpr struct {
		X     Expr
		Index Expr
	}

	// NamedArg is an argument passed by name at a call site.
	NamedArg struct {
		Name  string
		Value Expr
	}

	// CallExpr calls a callee with positional and named arguments.
	CallExpr struct {
		Fun   Expr
		Args  []Expr
		Named []*NamedArg
	}

	// UnaryExpr applies a unary operator.
	UnaryExpr struct {
		Op UnaryOp
		X  Expr
	}

	// BinaryExpr applies a binary operator.
	BinaryExpr struct {
		Op BinaryOp
		X  Expr
		Y  Expr
	}

	// CondExpr is a ternary conditional expression.
	CondExpr struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	// SeqLitExpr is a sequence literal with an explicit element type.
	SeqLitExpr struct {
		Elem  types.Type
		Elems []Expr
	}

	// MapEntry is one key/value pair of a mapping literal.
	MapEntry struct {
		Key   Expr
		Value Expr
	}

	// MapLitExpr is a mapping literal with explicit key and value types.
	MapLitExpr struct {
		Key     types.Type
		Value   types.Type
		Entries []*MapEntry
	}

	// LambdaExpr is an anonymous expression-bodied function.
	LambdaExpr struct {
		Params []*Param
		Body   Expr
	}

	// FormatExpr interpolates its parts into a string. String literal
	// parts embed verbatim, other expressions interpolate.
	FormatExpr struct {
		Parts []Expr
	}

	// CastExpr asserts the static type of a value.
	CastExpr struct {
		T types.Type
		X Expr
	}
)

// StringLit returns a string literal expression.
func StringLit(s string) *LitExpr { return &LitExpr{P: types.StringPrim, Str: s} }

// IntLit returns an integer literal expression.
func IntLit(i int64) *LitExpr { return &LitExpr{P: types.IntPrim, Int: i} }

// FloatLit returns a float literal expression.
func FloatLit(f float64) *LitExpr { return &LitExpr{P: types.FloatPrim, F: f} }

// BoolLit returns a boolean literal expression.
func BoolLit(b bool) *LitExpr { return &LitExpr{P: types.BoolPrim, Bool: b} }

// NullLit returns the null literal expression.
func NullLit() *LitExpr { return &LitExpr{P: types.NullPrim} }

// Name returns a reference to a declared name.
func Name(name string) *NameExpr { return &NameExpr{Name: name} }

// Self returns the receiver reference.
func Self() *SelfExpr { return &SelfExpr{} }

// Attr accesses a member of a value.
func Attr(x Expr, name string) *AttrExpr { return &AttrExpr{X: x, Name: name} }

// SelfAttr accesses a member of the receiver.
func SelfAttr(name string) *AttrExpr { return &AttrExpr{X: Self(), Name: name} }

// Call builds a call with positional arguments.
func Call(fun Expr, args ...Expr) *CallExpr { return &CallExpr{Fun: fun, Args: args} }

// Binary applies a binary operator.
func Binary(op BinaryOp, x, y Expr) *BinaryExpr { return &BinaryExpr{Op: op, X: x, Y: y} }

// Unary applies a unary operator.
func Unary(op UnaryOp, x Expr) *UnaryExpr { return &UnaryExpr{Op: op, X: x} }

// Type of the literal.
func (x *LitExpr) Type() types.Type {
	return &types.Primitive{P: x.P}
}

func (*LitExpr) node()    {}
func (*OmitExpr) node()   {}
func (*NameExpr) node()   {}
func (*SelfExpr) node()   {}
func (*AttrExpr) node()   {}
func (*IndexExpr) node()  {}
func (*NamedArg) node()   {}
func (*CallExpr) node()   {}
func (*UnaryExpr) node()  {}
func (*BinaryExpr) node() {}
func (*CondExpr) node()   {}
func (*SeqLitExpr) node() {}
func (*MapEntry) node()   {}
func (*MapLitExpr) node() {}
func (*LambdaExpr) node() {}
func (*FormatExpr) node() {}
func (*CastExpr) node()   {}

func (*LitExpr) expr()    {}
func (*OmitExpr) expr()   {}
func (*NameExpr) expr()   {}
func (*SelfExpr) expr()   {}
func (*AttrExpr) expr()   {}
func (*IndexExpr) expr()  {}
func (*CallExpr) expr()   {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*CondExpr) expr()   {}
func (*SeqLitExpr) expr() {}
func (*MapLitExpr) expr() {}
func (*LambdaExpr) expr() {}
func (*FormatExpr) expr() {}
func (*CastExpr) expr()   {}
