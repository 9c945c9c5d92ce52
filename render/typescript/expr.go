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
	precCall
	precUnary
	precMulDiv
	precAddSub
	precCompare
	precAnd
	precOr
	precTernary
	precArrow
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
		return tsLit(xT), precAtom
	case *ir.OmitExpr:
		return "undefined", precAtom
	case *ir.NameExpr:
		return f.names.of(xT.Name), precAtom
	case *ir.SelfExpr:
		return "this", precAtom
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
		code := f.sub(xT.Cond, precOr) + " ? " + f.sub(xT.Then, precTernary) +
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
			entries[i] = "[" + f.sub(entry.Key, precTernary) + "]: " + f.sub(entry.Value, precTernary)
		}
		return "{" + strings.Join(entries, ", ") + "}", precAtom
	case *ir.LambdaExpr:
		params := make([]string, len(xT.Params))
		for i, param := range xT.Params {
			params[i] = f.names.of(param.Name) + ": " + f.typ(param.Type)
		}
		return "(" + strings.Join(params, ", ") + ") => " + f.sub(xT.Body, precTernary), precArrow
	case *ir.FormatExpr:
		return f.format(xT), precAtom
	case *ir.CastExpr:
		return "(" + f.sub(xT.X, precTernary) + " as " + f.typ(xT.T) + ")", precAtom
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
	return "undefined"
}

func (f *file) sub(x ir.Expr, limit prec) string {
	code, p := f.expr(x)
	return wrap(code, p, limit)
}

// newRef returns true if the callee names a class, which TypeScript
// instantiates with the new operator.
func (f *file) newRef(fun ir.Expr) bool {
	switch funT := fun.(type) {
	case *ir.NameExpr:
		_, isClass := f.mod.FindDecl(funT.Name).(*ir.ClassDecl)
		return isClass
	case *ir.AttrExpr:
		nameX, ok := funT.X.(*ir.NameExpr)
		if !ok || f.mod.FindDecl(nameX.Name) != nil {
			return false
		}
		// Imported names resolve at runtime; assume class when the
		// referenced name is capitalized the way classes are.
		if f.mod.FindImport(nameX.Name) != nil {
			return funT.Name != "" && funT.Name[0] >= 'A' && funT.Name[0] <= 'Z'
		}
	}
	return false
}

func (f *file) callExpr(x *ir.CallExpr) string {
	args := make([]string, 0, len(x.Args))
	for _, arg := range x.Args {
		args = append(args, f.sub(arg, precTernary))
	}
	code := f.sub(x.Fun, precCall) + "(" + strings.Join(args, ", ") + ")"
	if f.newRef(x.Fun) {
		code = "new " + code
	}
	return code
}

func (f *file) unary(x *ir.UnaryExpr) (string, prec) {
	switch x.Op {
	case ir.OpNot:
		return "!" + f.sub(x.X, precUnary), precUnary
	case ir.OpNeg:
		return "-" + f.sub(x.X, precUnary), precUnary
	case ir.OpLen:
		return f.lenOf(x.X)
	case ir.OpIsNull:
		return f.sub(x.X, precAddSub) + " === null", precCompare
	case ir.OpIsNotNull:
		return f.sub(x.X, precAddSub) + " !== null", precCompare
	}
	return f.fail("unknown unary operator in %T", x), precAtom
}

// lenOf spells the length of a value. Strings and arrays carry .length,
// but a Set carries .size and a mapping object has no length at all, so
// the operand's declared type picks the form.
func (f *file) lenOf(x ir.Expr) (string, prec) {
	switch f.declaredType(x).(type) {
	case *types.Set:
		return f.sub(x, precCall) + ".size", precCall
	case *types.Mapping:
		return "Object.keys(" + f.sub(x, precTernary) + ").length", precCall
	}
	return f.sub(x, precCall) + ".length", precCall
}

// declaredType resolves the static type of the expression shapes the
// renderer can see a declaration for: parameters, typed variables, and
// fields of the enclosing class. Nil when unknown.
func (f *file) declaredType(x ir.Expr) types.Type {
	switch xT := x.(type) {
	case *ir.NameExpr:
		return f.locals[xT.Name]
	case *ir.AttrExpr:
		if _, ok := xT.X.(*ir.SelfExpr); !ok || f.enclosing == nil {
			return nil
		}
		for _, field := range f.enclosing.Fields {
			if field.Name == xT.Name {
				return field.Type
			}
		}
	}
	return nil
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
	left := f.sub(x.X, spec.p)
	right := f.sub(x.Y, spec.p-1)
	return left + " " + spec.op + " " + right, spec.p
}

func (f *file) format(x *ir.FormatExpr) string {
	var sb strings.Builder
	sb.WriteByte('`')
	for _, part := range x.Parts {
		if lit, ok := part.(*ir.LitExpr); ok && lit.P == types.StringPrim {
			sb.WriteString(escapeTemplate(lit.Str))
			continue
		}
		sb.WriteString("${" + f.sub(part, precTernary) + "}")
	}
	sb.WriteByte('`')
	return sb.String()
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}

func tsString(s string) string {
	return strconv.Quote(s)
}

func tsLit(x *ir.LitExpr) string {
	switch x.P {
	case types.StringPrim:
		return tsString(x.Str)
	case types.IntPrim:
		return strconv.FormatInt(x.Int, 10)
	case types.FloatPrim:
		return strconv.FormatFloat(x.F, 'g', -1, 64)
	case types.BoolPrim:
		if x.Bool {
			return "true"
		}
		return "false"
	}
	return "null"
}
