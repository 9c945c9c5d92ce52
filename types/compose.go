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

import "strings"

type (
	// Optional is a type whose values may also be null.
	Optional struct {
		Elem Type
	}

	// Sequence is an ordered collection of elements of one type.
	Sequence struct {
		Elem Type
	}

	// Set is an unordered collection of distinct elements.
	Set struct {
		Elem Type
	}

	// Mapping associates keys of one type to values of another.
	Mapping struct {
		Key   Type
		Value Type
	}

	// Union is a type whose values belong to any of its members.
	Union struct {
		Elems []Type
	}

	// Function is the type of a callable value.
	// A nil Result marks a function that returns nothing.
	Function struct {
		Params []Type
		Result Type
	}
)

// OptionalOf wraps a type so its values may also be null.
// Wrapping an optional type returns it unchanged.
func OptionalOf(elem Type) Type {
	if elem.Kind() == OptionalKind {
		return elem
	}
	return &Optional{Elem: elem}
}

// SequenceOf returns the type of sequences with the given element type.
func SequenceOf(elem Type) *Sequence { return &Sequence{Elem: elem} }

// SetOf returns the type of sets with the given element type.
func SetOf(elem Type) *Set { return &Set{Elem: elem} }

// MappingOf returns the type of mappings from key to value.
func MappingOf(key, value Type) *Mapping { return &Mapping{Key: key, Value: value} }

// UnionOf returns the union of the given member types.
// Members that are themselves unions are flattened.
func UnionOf(elems ...Type) *Union {
	flat := make([]Type, 0, len(elems))
	for _, elem := range elems {
		if u, ok := elem.(*Union); ok {
			flat = append(flat, u.Elems...)
			continue
		}
		flat = append(flat, elem)
	}
	return &Union{Elems: flat}
}

// OmittableOf returns the type of a parameter that may be left out:
// the union of the type with the omitted sentinel.
func OmittableOf(elem Type) *Union {
	if opt, ok := elem.(*Optional); ok {
		return UnionOf(opt.Elem, Null(), Omitted())
	}
	return UnionOf(elem, Omitted())
}

// FunctionOf returns the type of callables with the given parameter
// types and result. A nil result marks a function returning nothing.
func FunctionOf(params []Type, result Type) *Function {
	return &Function{Params: params, Result: result}
}

func (*Optional) typ()       {}
func (*Optional) Kind() Kind { return OptionalKind }

// Equal returns true if other is an optional of an equal element type.
func (t *Optional) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Optional)
	if !ok {
		return false, nil
	}
	return t.Elem.Equal(r, otherT.Elem)
}

// AssignableTo reports whether the optional can be used where target is
// expected. An optional source requires an optional target with a
// covariantly assignable element.
func (t *Optional) AssignableTo(r Resolver, target Type) (bool, error) {
	otherT, ok := target.(*Optional)
	if !ok {
		return false, nil
	}
	return Assignable(r, t.Elem, otherT.Elem)
}

// String representation of the optional type.
func (t *Optional) String() string { return t.Elem.String() + "?" }

func (*Sequence) typ()       {}
func (*Sequence) Kind() Kind { return SequenceKind }

// Equal returns true if other is a sequence of an equal element type.
func (t *Sequence) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Sequence)
	if !ok {
		return false, nil
	}
	return t.Elem.Equal(r, otherT.Elem)
}

// AssignableTo reports element-covariant sequence assignability.
func (t *Sequence) AssignableTo(r Resolver, target Type) (bool, error) {
	otherT, ok := target.(*Sequence)
	if !ok {
		return false, nil
	}
	return Assignable(r, t.Elem, otherT.Elem)
}

// String representation of the sequence type.
func (t *Sequence) String() string { return "[]" + t.Elem.String() }

func (*Set) typ()       {}
func (*Set) Kind() Kind { return SetKind }

// Equal returns true if other is a set of an equal element type.
func (t *Set) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Set)
	if !ok {
		return false, nil
	}
	return t.Elem.Equal(r, otherT.Elem)
}

// AssignableTo reports element-covariant set assignability.
func (t *Set) AssignableTo(r Resolver, target Type) (bool, error) {
	otherT, ok := target.(*Set)
	if !ok {
		return false, nil
	}
	return Assignable(r, t.Elem, otherT.Elem)
}

// String representation of the set type.
func (t *Set) String() string { return "set[" + t.Elem.String() + "]" }

func (*Mapping) typ()       {}
func (*Mapping) Kind() Kind { return MappingKind }

// Equal returns true if other is a mapping with equal key and value types.
func (t *Mapping) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Mapping)
	if !ok {
		return false, nil
	}
	eq, err := t.Key.Equal(r, otherT.Key)
	if err != nil || !eq {
		return eq, err
	}
	return t.Value.Equal(r, otherT.Value)
}

// AssignableTo reports key- and value-covariant mapping assignability.
func (t *Mapping) AssignableTo(r Resolver, target Type) (bool, error) {
	otherT, ok := target.(*Mapping)
	if !ok {
		return false, nil
	}
	ok, err := Assignable(r, t.Key, otherT.Key)
	if err != nil || !ok {
		return ok, err
	}
	return Assignable(r, t.Value, otherT.Value)
}

// String representation of the mapping type.
func (t *Mapping) String() string {
	return "map[" + t.Key.String() + "]" + t.Value.String()
}

func (*Union) typ()       {}
func (*Union) Kind() Kind { return UnionKind }

// Equal returns true if other is a union with equal members in the
// same order.
func (t *Union) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Union)
	if !ok {
		return false, nil
	}
	return EqualTypes(r, t.Elems, otherT.Elems)
}

// AssignableTo reports whether every member of the union can be used
// where target is expected.
func (t *Union) AssignableTo(r Resolver, target Type) (bool, error) {
	for _, member := range t.Elems {
		ok, err := Assignable(r, member, target)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

// HasOmitted returns true if the omitted sentinel is a member.
func (t *Union) HasOmitted() bool {
	for _, member := range t.Elems {
		if IsOmitted(member) {
			return true
		}
	}
	return false
}

// String representation of the union type.
func (t *Union) String() string {
	ss := make([]string, len(t.Elems))
	for i, member := range t.Elems {
		ss[i] = member.String()
	}
	return strings.Join(ss, "|")
}

func (*Function) typ()       {}
func (*Function) Kind() Kind { return FunctionKind }

// Equal returns true if other is a function type with equal parameters
// and result.
func (t *Function) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Function)
	if !ok {
		return false, nil
	}
	eq, err := EqualTypes(r, t.Params, otherT.Params)
	if err != nil || !eq {
		return eq, err
	}
	if t.Result == nil || otherT.Result == nil {
		return t.Result == otherT.Result, nil
	}
	return t.Result.Equal(r, otherT.Result)
}

// AssignableTo reports function assignability: contravariant in the
// parameters, covariant in the result.
func (t *Function) AssignableTo(r Resolver, target Type) (bool, error) {
	otherT, ok := target.(*Function)
	if !ok {
		return false, nil
	}
	if len(t.Params) != len(otherT.Params) {
		return false, nil
	}
	for i, param := range t.Params {
		ok, err := Assignable(r, otherT.Params[i], param)
		if err != nil || !ok {
			return ok, err
		}
	}
	if t.Result == nil || otherT.Result == nil {
		return t.Result == nil && otherT.Result == nil, nil
	}
	return Assignable(r, t.Result, otherT.Result)
}

// String representation of the function type.
func (t *Function) String() string {
	ss := make([]string, len(t.Params))
	for i, param := range t.Params {
		ss[i] = param.String()
	}
	s := "func(" + strings.Join(ss, ", ") + ")"
	if t.Result != nil {
		s += " " + t.Result.String()
	}
	return s
}
