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
	"strings"

	"github.com/crossgen-org/crossgen/types"
)

// typ spells a type hint. Sequences and mappings are both PHP arrays;
// anything PHP cannot narrow becomes mixed.
func (f *file) typ(t types.Type) string {
	switch tt := t.(type) {
	case *types.Primitive:
		switch tt.P {
		case types.StringPrim:
			return "string"
		case types.IntPrim:
			return "int"
		case types.FloatPrim:
			return "float"
		case types.BoolPrim:
			return "bool"
		case types.NullPrim:
			return "null"
		}
		return "mixed"
	case *types.Literal:
		if len(tt.Variants) > 0 {
			return f.typ(&types.Primitive{P: tt.Variants[0].P})
		}
		return "mixed"
	case *types.Optional:
		elem := f.typ(tt.Elem)
		if elem == "mixed" || strings.ContainsAny(elem, "?|") {
			return "mixed"
		}
		return "?" + elem
	case *types.Sequence, *types.Mapping:
		return "array"
	case *types.Union:
		members := make([]string, len(tt.Elems))
		for i, member := range tt.Elems {
			members[i] = f.typ(member)
			if members[i] == "mixed" || strings.ContainsAny(members[i], "?|") {
				return "mixed"
			}
		}
		return strings.Join(members, "|")
	case *types.Named:
		return f.classRef(tt)
	case *types.Function:
		return "callable"
	}
	return "mixed"
}

// classRef spells a class reference: bare within the same namespace,
// fully qualified otherwise.
func (f *file) classRef(t *types.Named) string {
	if t.Module == "" || t.Module == f.mod.Name {
		return t.Name
	}
	return `\` + f.namespace(t.Module) + `\` + t.Name
}
