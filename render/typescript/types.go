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

	"github.com/crossgen-org/crossgen/types"
)

// typ spells a type as a TypeScript annotation.
func (f *file) typ(t types.Type) string {
	s, _ := f.typPrec(t)
	return s
}

// typPrec spells a type and reports whether the spelling is atomic,
// so composite forms know when to parenthesize.
func (f *file) typPrec(t types.Type) (string, bool) {
	switch tt := t.(type) {
	case *types.Primitive:
		switch tt.P {
		case types.StringPrim:
			return "string", true
		case types.IntPrim, types.FloatPrim:
			return "number", true
		case types.BoolPrim:
			return "boolean", true
		case types.NullPrim:
			return "null", true
		case types.AnyPrim:
			return "any", true
		case types.OmittedPrim:
			return "undefined", true
		}
	case *types.Literal:
		variants := make([]string, len(tt.Variants))
		for i, v := range tt.Variants {
			variants[i] = litValue(v)
		}
		return strings.Join(variants, " | "), len(variants) == 1
	case *types.Optional:
		return f.atomic(tt.Elem) + " | null", false
	case *types.Sequence:
		return f.atomic(tt.Elem) + "[]", true
	case *types.Set:
		return "Set<" + f.typ(tt.Elem) + ">", true
	case *types.Mapping:
		return "{[k: " + f.typ(tt.Key) + "]: " + f.typ(tt.Value) + "}", true
	case *types.Union:
		members := make([]string, len(tt.Elems))
		for i, member := range tt.Elems {
			members[i] = f.atomic(member)
		}
		return strings.Join(members, " | "), false
	case *types.Named:
		return f.namedType(tt), true
	case *types.Function:
		params := make([]string, len(tt.Params))
		for i, param := range tt.Params {
			params[i] = "arg" + strconv.Itoa(i) + ": " + f.typ(param)
		}
		result := "void"
		if tt.Result != nil {
			result = f.typ(tt.Result)
		}
		return "(" + strings.Join(params, ", ") + ") => " + result, false
	}
	return "any", true
}

// atomic spells a type, parenthesized unless already atomic.
func (f *file) atomic(t types.Type) string {
	s, atom := f.typPrec(t)
	if !atom {
		return "(" + s + ")"
	}
	return s
}

func (f *file) namedType(t *types.Named) string {
	var s string
	if t.Module == "" || t.Module == f.mod.Name {
		s = f.names.of(t.Name)
	} else {
		s = f.localModule(t.Module) + "." + t.Name
	}
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = f.typ(arg)
		}
		s += "<" + strings.Join(args, ", ") + ">"
	}
	return s
}

func litValue(v types.LitValue) string {
	if v.P == types.StringPrim {
		return tsString(v.Str)
	}
	return v.String()
}
