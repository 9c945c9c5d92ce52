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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// prec is the precedence level of a rendered expression. Lower binds
// tighter; embedding an expression in a context with a lower limit
// parenthesizes it.
type prec int

const (
	precAtom prec = iota
	precCall
	precUnary
	precMulDiv
	precAddSub
	precCompare
	precNot
	precAnd
	precOr
	precTernary
	precLambda
)

func wrap(code string, p, limit prec) string {
	if p > limit {
		return "(" + code + ")"
	}
	return code
}

// expr renders an expression, returning its text and precedence.
func (f *file) expr(x ir.Expr) (string, prec) {
	switch xT := x.(type) {
	case *ir.LitExpr:
		return pyLit(xT), precAtom
	case *ir.OmitExpr:
		return "...", precAtom
	case *ir.NameExpr:
		return f.names.of(xT.Name), precAtom
	case *ir.SelfExpr:
		return "self", precAtom
	case *ir.AttrExpr:
		return f.sub(xT.X, precCall) + "." + xT.Name, precCall
	case *ir.IndexExpr:
		return f.sub(xT.X, precCall) + "[" + f.sub(xT.Index, precTernary) + "]", precCall
	case *ir.CallExpr:
		return f.callExpr(xT), precCall
	case *ir.UnaryExpr:
		return f.unary(xT)
	case *ir.BinaryExpr:
		return f.binary(xT)
	case *ir.CondExpr:
		code := fmt.Sprintf("%s if %s else %s",
			f.sub(xT.Then, precOr), f.sub(xT.Cond, precOr), f.sub(xT.Else, precTernary))
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
			entries[i] = f.sub(entry.Key, precTernary) + ": " + f.sub(entry.Value, precTernary)
		}
		return "{" + strings.Join(entries, ", ") + "}", precAtom
	case *ir.LambdaExpr:
		params := make([]string, len(xT.Params))
		for i, param := range xT.Params {
			params[i] = f.names.of(param.Name)
		}
		return "lambda " + strings.Join(params, ", ") + ": " + f.sub(xT.Body, precTernary), precLambda
	case *ir.FormatExpr:
		return f.format(xT), precAtom
	case *ir.CastExpr:
		return f.need("typing") + ".cast(" + f.typ(xT.T) + ", " + f.sub(xT.X, precTernary) + ")", precCall
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
	return "None"
}

// sub renders a subexpression, parenthesized when its precedence
// exceeds the limit of the surrounding context.
func (f *file) sub(x ir.Expr, limit prec) string {
	code, p := f.expr(x)
	return wrap(code, p, limit)
}

func (f *file) callExpr(x *ir.CallExpr) string {
	var args []string
	for _, arg := range x.Args {
		args = append(args, f.sub(arg, precTernary))
	}
	for _, named := range x.Named {
		// An omitted named argument is simply not passed.
		if _, omitted := named.Value.(*ir.OmitExpr); omitted {
			continue
		}
		args = append(args, f.names.of(named.Name)+"="+f.sub(named.Value, precTernary))
	}
	return f.sub(x.Fun, precCall) + "(" + strings.Join(args, ", ") + ")"
}

func (f *file) unary(x *ir.UnaryExpr) (string, prec) {
	switch x.Op {
	case ir.OpNot:
		return "not " + f.sub(x.X, precCompare), precNot
	case ir.OpNeg:
		return "-" + f.sub(x.X, precUnary), precUnary
	case ir.OpLen:
		return "len(" + f.sub(x.X, precTernary) + ")", precCall
	case ir.OpIsNull:
		return f.sub(x.X, precAddSub) + " is None", precCompare
	case ir.OpIsNotNull:
		return f.sub(x.X, precAddSub) + " is not None", precCompare
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
	ir.OpEq:  {"==", precCompare},
	ir.OpNe:  {"!=", precCompare},
	ir.OpLt:  {"<", precCompare},
	ir.OpLe:  {"<=", precCompare},
	ir.OpGt:  {">", precCompare},
	ir.OpGe:  {">=", precCompare},
	ir.OpAnd: {"and", precAnd},
	ir.OpOr:  {"or", precOr},
}

func (f *file) binary(x *ir.BinaryExpr) (string, prec) {
	spec, ok := binaryOps[x.Op]
	if !ok {
		return f.fail("unknown binary operator in %T", x), precAtom
	}
	limit := spec.p
	// Python chains comparisons (a == b == c means a == b and b == c),
	// so a comparison operand of a comparison keeps its parentheses.
	if spec.p == precCompare {
		limit = spec.p - 1
	}
	left := f.sub(x.X, limit)
	right := f.sub(x.Y, spec.p-1)
	return left + " " + spec.op + " " + right, spec.p
}

func (f *file) format(x *ir.FormatExpr) string {
	var sb strings.Builder
	interpolated := false
	for _, part := range x.Parts {
		if lit, ok := part.(*ir.LitExpr); ok && lit.P == types.StringPrim {
			sb.WriteString(escapeFString(lit.Str))
			continue
		}
		interpolated = true
		sb.WriteString("{" + f.sub(part, precTernary) + "}")
	}
	if !interpolated {
		var plain strings.Builder
		for _, part := range x.Parts {
			if lit, ok := part.(*ir.LitExpr); ok {
				plain.WriteString(lit.Str)
			}
		}
		return pyString(plain.String())
	}
	return `f"` + sb.String() + `"`
}

// escapeFString escapes a literal chunk for embedding in an f-string.
func escapeFString(s string) string {
	quoted := pyString(s)
	inner := quoted[1 : len(quoted)-1]
	inner = strings.ReplaceAll(inner, "{", "{{")
	return strings.ReplaceAll(inner, "}", "}}")
}

// pyString renders a Python string literal. Go quoting rules produce
// escapes Python reads identically.
func pyString(s string) string {
	return strconv.Quote(s)
}

// pyFloat renders a float literal, keeping the decimal point Python
// needs to read it back as a float.
func pyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func pyLit(x *ir.LitExpr) string {
	switch x.P {
	case types.StringPrim:
		return pyString(x.Str)
	case types.IntPrim:
		return strconv.FormatInt(x.Int, 10)
	case types.FloatPrim:
		return pyFloat(x.F)
	case types.BoolPrim:
		if x.Bool {
			return "True"
		}
		return "False"
	}
	return "None"
}
