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

package types

import "strconv"

// Prim identifies a primitive type.
type Prim int

// Primitive types shared by all targets.
const (
	StringPrim Prim = iota
	IntPrim
	FloatPrim
	BoolPrim
	NullPrim
	AnyPrim
	// OmittedPrim is the type of an argument that has been left out.
	// It only occurs inside unions built for omittable parameters.
	OmittedPrim
)

var primNames = map[Prim]string{
	StringPrim:  "str",
	IntPrim:     "int",
	FloatPrim:   "float",
	BoolPrim:    "bool",
	NullPrim:    "null",
	AnyPrim:     "any",
	OmittedPrim: "omitted",
}

// String representation of the primitive.
func (p Prim) String() string {
	name, ok := primNames[p]
	if !ok {
		return "unknown"
	}
	return name
}

// Primitive is a type with no further structure.
type Primitive struct {
	P Prim
}

var (
	stringT  = &Primitive{P: StringPrim}
	intT     = &Primitive{P: IntPrim}
	floatT   = &Primitive{P: FloatPrim}
	boolT    = &Primitive{P: BoolPrim}
	nullT    = &Primitive{P: NullPrim}
	anyT     = &Primitive{P: AnyPrim}
	omittedT = &Primitive{P: OmittedPrim}
)

// String returns the string primitive type.
func String() Type { return stringT }

// Int returns the integer primitive type.
func Int() Type { return intT }

// Float returns the float primitive type.
func Float() Type { return floatT }

// Bool returns the boolean primitive type.
func Bool() Type { return boolT }

// Null returns the null primitive type.
func Null() Type { return nullT }

// Any returns the dynamic type assignable to and from everything.
func Any() Type { return anyT }

// Omitted returns the type of an omitted argument.
func Omitted() Type { return omittedT }

func (*Primitive) typ()       {}
func (*Primitive) Kind() Kind { return PrimitiveKind }

// Equal returns true if other is the same primitive.
func (t *Primitive) Equal(_ Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Primitive)
	return ok && t.P == otherT.P, nil
}

// AssignableTo reports whether the primitive can be used where target is expected.
func (t *Primitive) AssignableTo(r Resolver, target Type) (bool, error) {
	return t.Equal(r, target)
}

// String representation of the primitive type.
func (t *Primitive) String() string { return t.P.String() }

// IsNull returns true if the type is the null primitive.
func IsNull(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.P == NullPrim
}

// IsAny returns true if the type is the dynamic any primitive.
func IsAny(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.P == AnyPrim
}

// IsOmitted returns true if the type is the omitted-argument primitive.
func IsOmitted(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.P == OmittedPrim
}

// IsNumeric returns true for the int and float primitives.
func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p.P == IntPrim || p.P == FloatPrim)
}

type (
	// LitValue is one variant of a literal type.
	LitValue struct {
		P    Prim
		Str  string
		Int  int64
		Bool bool
	}

	// Literal is a type restricted to an explicit set of string, int
	// or bool values.
	Literal struct {
		Variants []LitValue
	}
)

// LitString returns a string literal variant.
func LitString(s string) LitValue { return LitValue{P: StringPrim, Str: s} }

// LitInt returns an integer literal variant.
func LitInt(i int64) LitValue { return LitValue{P: IntPrim, Int: i} }

// LitBool returns a boolean literal variant.
func LitBool(b bool) LitValue { return LitValue{P: BoolPrim, Bool: b} }

// String representation of the literal variant.
func (v LitValue) String() string {
	switch v.P {
	case StringPrim:
		return strconv.Quote(v.Str)
	case IntPrim:
		return strconv.FormatInt(v.Int, 10)
	case BoolPrim:
		return strconv.FormatBool(v.Bool)
	}
	return "invalid"
}

// Lit returns a literal type over the given variants.
func Lit(variants ...LitValue) *Literal {
	return &Literal{Variants: variants}
}

func (*Literal) typ()       {}
func (*Literal) Kind() Kind { return LiteralKind }

// Equal returns true if other is a literal type with the same variants
// in the same order.
func (t *Literal) Equal(_ Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Literal)
	if !ok || len(t.Variants) != len(otherT.Variants) {
		return false, nil
	}
	for i, v := range t.Variants {
		if v != otherT.Variants[i] {
			return false, nil
		}
	}
	return true, nil
}

// AssignableTo reports whether the literal can be used where target is
// expected: a literal type whose variants are a subset of the target's,
// or the primitive covering every variant.
func (t *Literal) AssignableTo(r Resolver, target Type) (bool, error) {
	switch targetT := target.(type) {
	case *Literal:
		for _, v := range t.Variants {
			found := false
			for _, o := range targetT.Variants {
				if v == o {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
		return true, nil
	case *Primitive:
		for _, v := range t.Variants {
			if v.P != targetT.P {
				return false, nil
			}
		}
		return true, nil
	}
	return false, nil
}

// String representation of the literal type.
func (t *Literal) String() string {
	s := "lit("
	for i, v := range t.Variants {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + ")"
}
