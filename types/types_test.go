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

package types_test

import (
	"testing"

	"github.com/crossgen-org/crossgen/types"
)

// stubResolver answers supertype and alias queries from fixed tables.
type stubResolver struct {
	supers  map[string][]*types.Named
	aliases map[string]types.Type
}

func (r stubResolver) Supertypes(ref *types.Named) ([]*types.Named, error) {
	return r.supers[ref.Name], nil
}

func (r stubResolver) Underlying(ref *types.Named) (types.Type, error) {
	return r.aliases[ref.Name], nil
}

func TestAssignablePrimitives(t *testing.T) {
	tests := []struct {
		source types.Type
		target types.Type
		want   bool
	}{
		{source: types.Int(), target: types.Int(), want: true},
		{source: types.Int(), target: types.Float(), want: false},
		{source: types.String(), target: types.Bool(), want: false},
		{source: types.Null(), target: types.Null(), want: true},
		{source: types.Int(), target: types.Any(), want: true},
		{source: types.Any(), target: types.Int(), want: true},
	}
	for _, test := range tests {
		got, err := types.Assignable(nil, test.source, test.target)
		if err != nil {
			t.Errorf("%s -> %s: unexpected error %v", test.source, test.target, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s -> %s: got %v but want %v", test.source, test.target, got, test.want)
		}
	}
}

func TestAssignableComposite(t *testing.T) {
	tests := []struct {
		source types.Type
		target types.Type
		want   bool
	}{
		// Optionals accept their element and null.
		{source: types.Int(), target: types.OptionalOf(types.Int()), want: true},
		{source: types.Null(), target: types.OptionalOf(types.Int()), want: true},
		{source: types.OptionalOf(types.Int()), target: types.OptionalOf(types.Int()), want: true},
		{source: types.OptionalOf(types.Int()), target: types.Int(), want: false},
		// Unions accept a value assignable to any member; a union source
		// needs every member accepted.
		{source: types.Int(), target: types.UnionOf(types.Int(), types.String()), want: true},
		{source: types.Bool(), target: types.UnionOf(types.Int(), types.String()), want: false},
		{source: types.UnionOf(types.Int(), types.String()), target: types.Int(), want: false},
		{
			source: types.UnionOf(types.Int(), types.String()),
			target: types.UnionOf(types.String(), types.Int(), types.Bool()),
			want:   true,
		},
		// Element-covariant collections.
		{source: types.SequenceOf(types.Int()), target: types.SequenceOf(types.Int()), want: true},
		{source: types.SequenceOf(types.Int()), target: types.SequenceOf(types.String()), want: false},
		{source: types.SequenceOf(types.Int()), target: types.SetOf(types.Int()), want: false},
		{
			source: types.MappingOf(types.String(), types.Int()),
			target: types.MappingOf(types.String(), types.Int()),
			want:   true,
		},
		{
			source: types.MappingOf(types.String(), types.Int()),
			target: types.MappingOf(types.Int(), types.Int()),
			want:   false,
		},
		// Literal types narrow to supersets and their primitive.
		{source: types.Lit(types.LitString("a")), target: types.Lit(types.LitString("a"), types.LitString("b")), want: true},
		{source: types.Lit(types.LitString("a"), types.LitString("c")), target: types.Lit(types.LitString("a")), want: false},
		{source: types.Lit(types.LitString("a")), target: types.String(), want: true},
		{source: types.Lit(types.LitInt(1)), target: types.String(), want: false},
		// Omittable parameters accept the omitted sentinel.
		{source: types.Omitted(), target: types.OmittableOf(types.Int()), want: true},
		{source: types.Int(), target: types.OmittableOf(types.Int()), want: true},
		{source: types.String(), target: types.OmittableOf(types.Int()), want: false},
		// The invalid placeholder never assigns.
		{source: types.Invalid(), target: types.Int(), want: false},
		{source: types.Int(), target: types.Invalid(), want: false},
	}
	for _, test := range tests {
		got, err := types.Assignable(nil, test.source, test.target)
		if err != nil {
			t.Errorf("%s -> %s: unexpected error %v", test.source, test.target, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s -> %s: got %v but want %v", test.source, test.target, got, test.want)
		}
	}
}

func TestAssignableNamed(t *testing.T) {
	r := stubResolver{
		supers: map[string][]*types.Named{
			"Dog":    {types.NamedOf("Animal")},
			"Animal": {types.NamedOf("LivingThing")},
		},
		aliases: map[string]types.Type{
			"Identifier": types.String(),
		},
	}
	tests := []struct {
		source types.Type
		target types.Type
		want   bool
	}{
		{source: types.NamedOf("Dog"), target: types.NamedOf("Dog"), want: true},
		{source: types.NamedOf("Dog"), target: types.NamedOf("Animal"), want: true},
		{source: types.NamedOf("Dog"), target: types.NamedOf("LivingThing"), want: true},
		{source: types.NamedOf("Animal"), target: types.NamedOf("Dog"), want: false},
		{source: types.NamedOf("LivingThing"), target: types.NamedOf("Animal"), want: false},
		{source: types.NamedOf("Identifier"), target: types.String(), want: true},
		{source: types.NamedOf("Identifier"), target: types.Int(), want: false},
		{source: types.ImportedOf("acme/models", "Dog"), target: types.NamedOf("Dog"), want: false},
	}
	for _, test := range tests {
		got, err := types.Assignable(r, test.source, test.target)
		if err != nil {
			t.Errorf("%s -> %s: unexpected error %v", test.source, test.target, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s -> %s: got %v but want %v", test.source, test.target, got, test.want)
		}
	}
}

func TestUnionFlattening(t *testing.T) {
	u := types.UnionOf(types.Int(), types.UnionOf(types.String(), types.Bool()))
	if len(u.Elems) != 3 {
		t.Fatalf("union has %d members but want 3", len(u.Elems))
	}
	if got, want := u.String(), "int|str|bool"; got != want {
		t.Errorf("got %s but want %s", got, want)
	}
}

func TestOmittableOfOptional(t *testing.T) {
	u := types.OmittableOf(types.OptionalOf(types.Int()))
	if !u.HasOmitted() {
		t.Errorf("omittable union misses the omitted sentinel")
	}
	ok, err := types.Assignable(nil, types.Null(), u)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ok {
		t.Errorf("null is not accepted by an omittable optional")
	}
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{typ: types.OptionalOf(types.Int()), want: "int?"},
		{typ: types.SequenceOf(types.String()), want: "[]str"},
		{typ: types.SetOf(types.Int()), want: "set[int]"},
		{typ: types.MappingOf(types.String(), types.Int()), want: "map[str]int"},
		{typ: types.NamedOf("User"), want: "User"},
		{typ: types.ImportedOf("acme/models", "User"), want: "acme/models.User"},
		{typ: types.FunctionOf([]types.Type{types.Int()}, types.Bool()), want: "func(int) bool"},
		{typ: types.FunctionOf(nil, nil), want: "func()"},
		{typ: types.Lit(types.LitString("on"), types.LitString("off")), want: `lit("on", "off")`},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("got %s but want %s", got, test.want)
		}
	}
}
