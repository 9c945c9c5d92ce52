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

// Package types models the cross-target type system.
//
// A type describes a value independently of any target language; each
// renderer owns the target spelling of a type. Comparing types never
// fails on a shape mismatch: two types of incompatible shapes are simply
// not assignable. Errors are reserved for named references that cannot
// be resolved.
package types

type (
	// Type of a value usable across targets.
	Type interface {
		// typ marks a structure as a type of this package.
		// It prevents external implementations of the interface.
		typ()

		// Kind of the type.
		Kind() Kind

		// Equal returns true if other is structurally the same type.
		Equal(Resolver, Type) (bool, error)

		// AssignableTo reports whether a value of the type can be used
		// where the target type is expected.
		AssignableTo(Resolver, Type) (bool, error)

		// String representation of the type, used in diagnostics.
		String() string
	}

	// Resolver resolves a named type reference to its declaration.
	// It is supplied by the validator; a nil Resolver restricts named
	// types to assignability with themselves.
	Resolver interface {
		// Supertypes returns the declared base types of the entity the
		// reference names, in declaration order.
		Supertypes(ref *Named) ([]*Named, error)

		// Underlying returns the aliased type if the reference names a
		// type alias, or nil if it names a class.
		Underlying(ref *Named) (Type, error)
	}
)

// Kind discriminates the type variants.
type Kind int

// Kinds of types.
const (
	InvalidKind Kind = iota
	PrimitiveKind
	LiteralKind
	OptionalKind
	SequenceKind
	SetKind
	MappingKind
	NamedKind
	FunctionKind
	UnionKind
)

var kindNames = map[Kind]string{
	InvalidKind:   "invalid",
	PrimitiveKind: "primitive",
	LiteralKind:   "literal",
	OptionalKind:  "optional",
	SequenceKind:  "sequence",
	SetKind:       "set",
	MappingKind:   "mapping",
	NamedKind:     "named",
	FunctionKind:  "function",
	UnionKind:     "union",
}

// String representation of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

type invalidType struct{}

var invalidT = &invalidType{}

// Invalid returns the invalid type.
// Used as a placeholder once an error has been reported for a node, so
// that later checks involving that node stay silent instead of piling
// unhelpful diagnostics on a single cause.
func Invalid() Type {
	return invalidT
}

func (*invalidType) typ()       {}
func (*invalidType) Kind() Kind { return InvalidKind }

func (*invalidType) Equal(Resolver, Type) (bool, error) {
	return false, nil
}

func (*invalidType) AssignableTo(Resolver, Type) (bool, error) {
	return false, nil
}

func (*invalidType) String() string { return InvalidKind.String() }

// IsInvalid returns true if the type is the invalid placeholder.
func IsInvalid(t Type) bool {
	return t == nil || t.Kind() == InvalidKind
}

// Assignable reports whether a value of the source type may be used
// where the target type is expected. It unwraps the target forms that
// accept more than their own shape before delegating to the source
// type's own rule: a target union accepts a value assignable to any
// member, a target optional accepts its element type and null, and Any
// accepts and provides everything.
func Assignable(r Resolver, source, target Type) (bool, error) {
	if IsInvalid(source) || IsInvalid(target) {
		return false, nil
	}
	if IsAny(target) || IsAny(source) {
		return true, nil
	}
	switch targetT := target.(type) {
	case *Union:
		if source.Kind() != UnionKind {
			for _, member := range targetT.Elems {
				ok, err := Assignable(r, source, member)
				if err != nil || ok {
					return ok, err
				}
			}
			return false, nil
		}
	case *Optional:
		if IsNull(source) {
			return true, nil
		}
		if source.Kind() != OptionalKind {
			return Assignable(r, source, targetT.Elem)
		}
	}
	return source.AssignableTo(r, target)
}

// EqualTypes compares two type lists pairwise.
func EqualTypes(r Resolver, xs, ys []Type) (bool, error) {
	if len(xs) != len(ys) {
		return false, nil
	}
	for i, x := range xs {
		eq, err := x.Equal(r, ys[i])
		if err != nil || !eq {
			return eq, err
		}
	}
	return true, nil
}
