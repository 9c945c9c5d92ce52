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
	"strings"

	"github.com/crossgen-org/crossgen/types"
)

// typ spells a type as a Python annotation. Same-module class
// references are quoted so declaration order never matters.
func (f *file) typ(t types.Type) string {
	switch tt := t.(type) {
	case *types.Primitive:
		switch tt.P {
		case types.StringPrim:
			return "str"
		case types.IntPrim:
			return "int"
		case types.FloatPrim:
			return "float"
		case types.BoolPrim:
			return "bool"
		case types.NullPrim:
			return "None"
		case types.AnyPrim:
			return f.need("typing") + ".Any"
		case types.OmittedPrim:
			return f.need("builtins") + ".ellipsis"
		}
	case *types.Literal:
		variants := make([]string, len(tt.Variants))
		for i, v := range tt.Variants {
			variants[i] = litValue(v)
		}
		return f.need("typing") + ".Literal[" + strings.Join(variants, ", ") + "]"
	case *types.Optional:
		return f.need("typing") + ".Optional[" + f.typ(tt.Elem) + "]"
	case *types.Sequence:
		return f.need("typing") + ".List[" + f.typ(tt.Elem) + "]"
	case *types.Set:
		return f.need("typing") + ".Set[" + f.typ(tt.Elem) + "]"
	case *types.Mapping:
		return f.need("typing") + ".Dict[" + f.typ(tt.Key) + ", " + f.typ(tt.Value) + "]"
	case *types.Union:
		members := make([]string, len(tt.Elems))
		for i, member := range tt.Elems {
			members[i] = f.typ(member)
		}
		return f.need("typing") + ".Union[" + strings.Join(members, ", ") + "]"
	case *types.Named:
		return f.namedType(tt)
	case *types.Function:
		params := make([]string, len(tt.Params))
		for i, param := range tt.Params {
			params[i] = f.typ(param)
		}
		result := "None"
		if tt.Result != nil {
			result = f.typ(tt.Result)
		}
		return f.need("typing") + ".Callable[[" + strings.Join(params, ", ") + "], " + result + "]"
	}
	return f.need("typing") + ".Any"
}

func (f *file) namedType(t *types.Named) string {
	var s string
	if t.Module == "" || t.Module == f.mod.Name {
		s = `"` + f.names.of(t.Name) + `"`
	} else {
		s = f.localModule(t.Module) + "." + t.Name
	}
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = f.typ(arg)
		}
		s += "[" + strings.Join(args, ", ") + "]"
	}
	return s
}

func litValue(v types.LitValue) string {
	if v.P == types.BoolPrim {
		if v.Bool {
			return "True"
		}
		return "False"
	}
	if v.P == types.StringPrim {
		return pyString(v.Str)
	}
	return v.String()
}
