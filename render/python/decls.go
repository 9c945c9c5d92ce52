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

	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

func (f *file) decl(decl ir.Decl) error {
	switch declT := decl.(type) {
	case *ir.ClassDecl:
		f.class(declT)
	case *ir.FuncDecl:
		f.fun(declT, nil)
	case *ir.ConstDecl:
		value, _ := f.expr(declT.Value)
		f.body.Line("%s: %s = %s", f.names.of(declT.Name), f.typ(declT.Type), value)
	case *ir.TypeAliasDecl:
		f.body.Line("%s = %s", f.names.of(declT.Name), f.typ(declT.Aliased))
	case *ir.InterfaceDecl:
		return errors.Errorf("python cannot express interface %s", declT.Name)
	default:
		return errors.Errorf("unknown declaration %T", decl)
	}
	return nil
}

func (f *file) class(decl *ir.ClassDecl) {
	bases := make([]string, 0, len(decl.Bases)+1)
	for _, base := range decl.Bases {
		bases = append(bases, f.baseRef(base))
	}
	if decl.Abstract {
		bases = append(bases, f.need("abc")+".ABC")
	}
	header := "class " + f.names.of(decl.Name)
	if len(bases) > 0 {
		header += "(" + strings.Join(bases, ", ") + ")"
	}
	f.body.Line("%s:", header)
	f.body.Block(func() {
		empty := true
		if len(decl.Doc) > 0 {
			f.docstring(decl.Doc)
			empty = false
		}
		for _, field := range decl.Fields {
			f.body.Line("%s: %s", f.names.of(field.Name), f.typ(field.Type))
			empty = false
		}
		params, assigns := f.ctor(decl)
		if len(params) > 0 || len(assigns) > 0 || len(decl.Bases) > 0 {
			if !empty {
				f.body.Blank()
			}
			f.writeInit(decl, params, assigns)
			empty = false
		}
		for _, method := range decl.Methods {
			if !empty {
				f.body.Blank()
			}
			f.fun(method, decl)
			empty = false
		}
		if empty {
			f.body.Line("pass")
		}
	})
}

// baseRef spells a base class reference in a class header, where
// quoting is not allowed.
func (f *file) baseRef(base *types.Named) string {
	if base.Module == "" || base.Module == f.mod.Name {
		return f.names.of(base.Name)
	}
	return f.localModule(base.Module) + "." + base.Name
}

// ctor returns the parameters of the synthesized constructor and the
// fields it assigns. Constructor fields of same-module ancestor
// classes come first and are forwarded to the base constructor.
func (f *file) ctor(decl *ir.ClassDecl) (inherited, own []*ir.Field) {
	if len(decl.Bases) > 0 {
		inherited = f.inheritedCtorFields(decl.Bases[0])
	}
	own = decl.InitArgs()
	return inherited, own
}

func (f *file) inheritedCtorFields(base *types.Named) []*ir.Field {
	if base.Module != "" && base.Module != f.mod.Name {
		return nil
	}
	baseDecl, ok := f.mod.FindDecl(base.Name).(*ir.ClassDecl)
	if !ok {
		return nil
	}
	var fields []*ir.Field
	if len(baseDecl.Bases) > 0 {
		fields = f.inheritedCtorFields(baseDecl.Bases[0])
	}
	return append(fields, baseDecl.InitArgs()...)
}

func (f *file) writeInit(decl *ir.ClassDecl, inherited, own []*ir.Field) {
	params := []string{"self"}
	for _, field := range append(append([]*ir.Field{}, inherited...), own...) {
		param := f.names.of(field.Name) + ": " + f.typ(field.Type)
		if field.Default != nil {
			param += " = " + f.sub(field.Default, precTernary)
		}
		params = append(params, param)
	}
	f.body.Line("def __init__(%s) -> None:", strings.Join(params, ", "))
	f.body.Block(func() {
		wrote := false
		if len(decl.Bases) > 0 {
			args := make([]string, len(inherited))
			for i, field := range inherited {
				args[i] = f.names.of(field.Name)
			}
			f.body.Line("super().__init__(%s)", strings.Join(args, ", "))
			wrote = true
		}
		for _, field := range decl.Fields {
			name := f.names.of(field.Name)
			if field.InitArg {
				f.body.Line("self.%s = %s", name, name)
				wrote = true
			} else if field.Default != nil {
				f.body.Line("self.%s = %s", name, f.sub(field.Default, precTernary))
				wrote = true
			}
		}
		if !wrote {
			f.body.Line("pass")
		}
	})
}

func (f *file) fun(decl *ir.FuncDecl, class *ir.ClassDecl) {
	if decl.Abstract {
		f.body.Line("@%s.abstractmethod", f.need("abc"))
	}
	if decl.Static {
		f.body.Line("@staticmethod")
	}
	def := "def"
	if decl.Async {
		def = "async def"
	}
	var params []string
	if class != nil && !decl.Static {
		params = append(params, "self")
	}
	starred := false
	for _, param := range decl.Params {
		if param.KeywordOnly && !starred {
			params = append(params, "*")
			starred = true
		}
		s := f.names.of(param.Name) + ": " + f.typ(param.Type)
		if param.Default != nil {
			s += " = " + f.sub(param.Default, precTernary)
		}
		params = append(params, s)
	}
	result := "None"
	if decl.Result != nil {
		result = f.typ(decl.Result)
	}
	f.body.Line("%s %s(%s) -> %s:", def, f.names.of(decl.Name), strings.Join(params, ", "), result)
	f.body.Block(func() {
		wrote := false
		if len(decl.Doc) > 0 {
			f.docstring(decl.Doc)
			wrote = true
		}
		if len(decl.Body) > 0 {
			f.stmts(decl.Body)
			wrote = true
		}
		if !wrote {
			f.body.Line("pass")
		}
	})
}

func (f *file) docstring(lines []string) {
	if len(lines) == 1 {
		f.body.Line(`"""%s"""`, lines[0])
		return
	}
	f.body.Line(`"""%s`, lines[0])
	for _, line := range lines[1:] {
		f.body.Line("%s", line)
	}
	f.body.Line(`"""`)
}
