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

// Named is a reference to a declared entity: a class or a type alias.
// Module is empty for a reference within the owning module. The
// reference resolves at validation time; until then comparisons that
// need the declaration are answered through the Resolver.
type Named struct {
	Module string
	Name   string
	Args   []Type
}

// NamedOf returns a reference to a declared type of the owning module.
func NamedOf(name string, args ...Type) *Named {
	return &Named{Name: name, Args: args}
}

// ImportedOf returns a reference to a type declared in another module.
func ImportedOf(module, name string, args ...Type) *Named {
	return &Named{Module: module, Name: name, Args: args}
}

func (*Named) typ()       {}
func (*Named) Kind() Kind { return NamedKind }

// SameRef returns true if other references the same declaration,
// ignoring type arguments.
func (t *Named) SameRef(other *Named) bool {
	return t.Module == other.Module && t.Name == other.Name
}

// Equal returns true if other references the same declaration with
// equal type arguments.
func (t *Named) Equal(r Resolver, other Type) (bool, error) {
	otherT, ok := other.(*Named)
	if !ok || !t.SameRef(otherT) {
		return false, nil
	}
	return EqualTypes(r, t.Args, otherT.Args)
}

// AssignableTo reports whether the named type can be used where target
// is expected: the same declaration, any declared supertype
// (transitively), or, for an alias, whatever its underlying type can be
// assigned to.
func (t *Named) AssignableTo(r Resolver, target Type) (bool, error) {
	eq, err := t.Equal(r, target)
	if err != nil || eq {
		return eq, err
	}
	if r == nil {
		return false, nil
	}
	if underlying, err := r.Underlying(t); err != nil {
		return false, err
	} else if underlying != nil {
		return Assignable(r, underlying, target)
	}
	targetT, isNamed := target.(*Named)
	if !isNamed {
		return false, nil
	}
	return t.hasAncestor(r, targetT, make(map[string]bool))
}

// hasAncestor walks the declared supertypes in declaration order.
// The seen set guards against diamonds in the supertype graph.
func (t *Named) hasAncestor(r Resolver, target *Named, seen map[string]bool) (bool, error) {
	key := t.Module + "." + t.Name
	if seen[key] {
		return false, nil
	}
	seen[key] = true
	supers, err := r.Supertypes(t)
	if err != nil {
		return false, err
	}
	for _, super := range supers {
		if super.SameRef(target) {
			return true, nil
		}
		ok, err := super.hasAncestor(r, target, seen)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// String representation of the named type.
func (t *Named) String() string {
	s := t.Name
	if t.Module != "" {
		s = t.Module + "." + s
	}
	if len(t.Args) > 0 {
		ss := make([]string, len(t.Args))
		for i, arg := range t.Args {
			ss[i] = arg.String()
		}
		s += "[" + strings.Join(ss, ", ") + "]"
	}
	return s
}
