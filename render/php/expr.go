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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

type prec int

const (
	precAtom prec = iota
	precArrow
	precUnary
	precMulDiv
	precAddSub
	precCompare
	precAnd
	precOr
	precTernary
)

func wrap(code string, p, limit prec) string {
	if p > limit {
		return "(" + code + ")"
	}
	return code
}

func (f *file) expr(x ir.Expr) (string, prec) {
	switch xT := x.(type) {
	case *ir.LitExpr:
		return phpLit(xT), precAtom
	case *ir.NameExpr:
		return f.nameRef(xT.Name), precAtom
	case *ir.SelfExpr:
		return "$this", precAtom
	case *ir.AttrExpr:
		return f.sub(xT.X, precArrow) + "->" + xT.Name, precArrow
	case *ir.IndexExpr:
		return f.sub(xT.X, precArrow) + "[" + f.sub(xT.Index, precTernary) + "]", precArrow
	case *ir.CallExpr:
		return f.callExpr(xT), precArrow
	case *ir.UnaryExpr:
		return f.unary(xT)
	case *ir.BinaryExpr:
		return f.binary(xT)
	case *ir.CondExpr:
		code := f.sub(xT.Cond, precOr) + " ? " + f.sub(xT.Then, precOr) +
			" : " + f.sub(xT.Else, precTernary)
		return code, precTernary
	case *ir.SeqLitExpr:
		elems := make([]string, len(xT.Elems))
		for i, elem := range xT.Elems {
			elems[i] = f.sub(elem, precTernary)
		}
		return "[" + strings.Join(elems, ", ") + "]", precAtom
	case *ir.MapLitExpr:
		entries := make([]string, len(xT.Entries))
		for i, entry := range xT.Entries {
			entries[i] = f.sub(entry.Key, precTernary) + " => " + f.sub(entry.Value, precTernary)
		}
		return "[" + strings.Join(entries, ", ") + "]", precAtom
	case *ir.FormatExpr:
		return f.format(xT)
	}
	return f.fail("cannot render %T", x), precAtom
}

// fail records an internal fault: a construct reaching a renderer past
// validation is an engine defect, not a user diagnostic, so rendering
// the file is abandoned instead of emitting a placeholder.
func (f *file) fail(format string, args ...any) string {
	if f.err == nil {
		f.err = errors.Errorf("internal: "+format, args...)
	}
	return "null"
}

func (f *file) sub(x ir.Expr, limit prec) string {
	code, p := f.expr(x)
	return wrap(code, p, limit)
}

// nameRef spells a bare name: module constants keep their name,
// everything else is a variable.
func (f *file) nameRef(name string) string {
	if _, isConst := f.mod.FindDecl(name).(*ir.ConstDecl); isConst {
		return name
	}
	return "$" + name
}

func (f *file) callExpr(x *ir.CallExpr) string {
	args := make([]string, 0, len(x.Args))
	for _, arg := range x.Args {
		args = append(args, f.sub(arg, precTernary))
	}
	list := "(" + strings.Join(args, ", ") + ")"
	switch funT := x.Fun.(type) {
	case *ir.NameExpr:
		switch f.mod.FindDecl(funT.Name).(type) {
		case *ir.ClassDecl:
			return "new " + funT.Name + list
		case *ir.FuncDecl:
			return funT.Name + list
		}
		return f.nameRef(funT.Name) + list
	case *ir.AttrExpr:
		if nameX, ok := funT.X.(*ir.NameExpr); ok && f.mod.FindDecl(nameX.Name) == nil {
			if imp := f.mod.FindImport(nameX.Name); imp != nil {
				qualified := `\` + f.namespace(imp.Module) + `\` + funT.Name
				// Imported class constructors against imported
				// functions: classes are capitalized.
				if funT.Name != "" && funT.Name[0] >= 'A' && funT.Name[0] <= 'Z' {
					return "new " + qualified + list
				}
				return qualified + list
			}
		}
	}
	return f.sub(x.Fun, precArrow) + list
}

func (f *file) unary(x *ir.UnaryExpr) (string, prec) {
	switch x.Op {
	case ir.OpNot:
		return "!" + f.sub(x.X, precUnary), precUnary
	case ir.OpNeg:
		return "-" + f.sub(x.X, precUnary), precUnary
	case ir.OpLen:
		return "count(" + f.sub(x.X, precTernary) + ")", precArrow
	case ir.OpIsNull:
		return f.sub(x.X, precAddSub) + " === null", precCompare
	case ir.OpIsNotNull:
		return f.sub(x.X, precAddSub) + " !== null", precCompare
	}
	return f.fail("unknown unary operator in %T", x), precAtom
}

var binaryOps = map[ir.BinaryOp]struct {
	op string
	p  prec
}{
	ir.OpAdd: {"+", precAddSub},
	ir.OpSub: {"-", precAddSub},
	ir.OpMul: {"*", precMulDiv},
	ir.OpDiv: {"/", precMulDiv},
	ir.OpEq:  {"===", precCompare},
	ir.OpNe:  {"!==", precCompare},
	ir.OpLt:  {"<", precCompare},
	ir.OpLe:  {"<=", precCompare},
	ir.OpGt:  {">", precCompare},
	ir.OpGe:  {">=", precCompare},
	ir.OpAnd: {"&&", precAnd},
	ir.OpOr:  {"||", precOr},
}

func (f *file) binary(x *ir.BinaryExpr) (string, prec) {
	spec, ok := binaryOps[x.Op]
	if !ok {
		return f.fail("unknown binary operator in %T", x), precAtom
	}
	op := spec.op
	if x.Op == ir.OpAdd && (stringy(x.X) || stringy(x.Y)) {
		op = "."
	}
	left := f.sub(x.X, spec.p)
	right := f.sub(x.Y, spec.p-1)
	return left + " " + op + " " + right, spec.p
}

// stringy returns true when an operand is visibly a string, switching
// addition to PHP concatenation.
func stringy(x ir.Expr) bool {
	switch xT := x.(type) {
	case *ir.LitExpr:
		return xT.P == types.StringPrim
	case *ir.FormatExpr:
		return true
	case *ir.BinaryExpr:
		return xT.Op == ir.OpAdd && (stringy(xT.X) || stringy(xT.Y))
	}
	return false
}

// format renders interpolation as a concatenation chain of
// single-quoted literals and stringified expressions.
func (f *file) format(x *ir.FormatExpr) (string, prec) {
	if len(x.Parts) == 0 {
		return "''", precAtom
	}
	parts := make([]string, len(x.Parts))
	for i, part := range x.Parts {
		if lit, ok := part.(*ir.LitExpr); ok && lit.P == types.StringPrim {
			parts[i] = phpString(lit.Str)
			continue
		}
		parts[i] = f.sub(part, precMulDiv)
	}
	if len(parts) == 1 {
		code, p := f.expr(x.Parts[0])
		if _, isLit := x.Parts[0].(*ir.LitExpr); isLit {
			return parts[0], precAtom
		}
		return code, p
	}
	return strings.Join(parts, " . "), precAddSub
}

func phpString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

func phpLit(x *ir.LitExpr) string {
	switch x.P {
	case types.StringPrim:
		return phpString(x.Str)
	case types.IntPrim:
		return strconv.FormatInt(x.Int, 10)
	case types.FloatPrim:
		s := strconv.FormatFloat(x.F, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case types.BoolPrim:
		if x.Bool {
			return "true"
		}
		return "false"
	}
	return "null"
}
