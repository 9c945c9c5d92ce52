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
		f.fun(declT, false)
	case *ir.ConstDecl:
		f.body.Line("export const %s: %s = %s;",
			f.names.of(declT.Name), f.typ(declT.Type), f.sub(declT.Value, precArrow))
	case *ir.TypeAliasDecl:
		f.body.Line("export type %s = %s;", f.names.of(declT.Name), f.typ(declT.Aliased))
	case *ir.InterfaceDecl:
		f.body.Line("export interface %s {", f.names.of(declT.Name))
		f.body.Block(func() {
			for _, prop := range declT.Props {
				f.body.Line("%s: %s;", prop.Name, f.typ(prop.Type))
			}
		})
		f.body.Line("}")
	default:
		return errors.Errorf("unknown declaration %T", decl)
	}
	return nil
}

func (f *file) docComment(lines []string) {
	if len(lines) == 0 {
		return
	}
	f.body.Line("/**")
	for _, line := range lines {
		f.body.Line(" * %s", line)
	}
	f.body.Line(" */")
}

func (f *file) class(decl *ir.ClassDecl) {
	f.enclosing = decl
	defer func() { f.enclosing = nil }()
	f.docComment(decl.Doc)
	header := "export class " + f.names.of(decl.Name)
	if decl.Abstract {
		header = "export abstract class " + f.names.of(decl.Name)
	}
	if len(decl.Bases) > 0 {
		header += " extends " + f.baseRef(decl.Bases[0])
	}
	f.body.Line("%s {", header)
	f.body.Block(func() {
		for _, field := range decl.Fields {
			mod := "public "
			if field.ReadOnly {
				mod = "public readonly "
			}
			f.body.Line("%s%s: %s;", mod, field.Name, f.typ(field.Type))
		}
		inherited, own := f.ctor(decl)
		if len(inherited) > 0 || len(own) > 0 || len(decl.Bases) > 0 {
			if len(decl.Fields) > 0 {
				f.body.Blank()
			}
			f.writeCtor(decl, inherited, own)
		}
		for _, method := range decl.Methods {
			f.body.Blank()
			f.method(method)
		}
	})
	f.body.Line("}")
}

func (f *file) baseRef(base *types.Named) string {
	if base.Module == "" || base.Module == f.mod.Name {
		return f.names.of(base.Name)
	}
	return f.localModule(base.Module) + "." + base.Name
}

// ctor returns the constructor fields of same-module ancestors and of
// the class itself. Inherited fields are forwarded to super().
func (f *file) ctor(decl *ir.ClassDecl) (inherited, own []*ir.Field) {
	if len(decl.Bases) > 0 {
		inherited = f.inheritedCtorFields(decl.Bases[0])
	}
	return inherited, decl.InitArgs()
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

func (f *file) writeCtor(decl *ir.ClassDecl, inherited, own []*ir.Field) {
	var params []string
	for _, field := range append(append([]*ir.Field{}, inherited...), own...) {
		param := field.Name + ": " + f.typ(field.Type)
		if field.Default != nil {
			param += " = " + f.sub(field.Default, precTernary)
		}
		params = append(params, param)
	}
	f.body.Line("constructor(%s) {", strings.Join(params, ", "))
	f.body.Block(func() {
		if len(decl.Bases) > 0 {
			args := make([]string, len(inherited))
			for i, field := range inherited {
				args[i] = field.Name
			}
			f.body.Line("super(%s);", strings.Join(args, ", "))
		}
		for _, field := range decl.Fields {
			if field.InitArg {
				f.body.Line("this.%s = %s;", field.Name, field.Name)
			} else if field.Default != nil {
				f.body.Line("this.%s = %s;", field.Name, f.sub(field.Default, precTernary))
			}
		}
	})
	f.body.Line("}")
}

func (f *file) fun(decl *ir.FuncDecl, method bool) {
	f.locals = make(map[string]types.Type)
	for _, param := range decl.Params {
		f.locals[param.Name] = param.Type
	}
	f.docComment(decl.Doc)
	header := "export "
	if method {
		header = "public "
		if decl.Static {
			header += "static "
		}
		if decl.Abstract {
			header = "public abstract "
		}
	}
	if decl.Async {
		header += "async "
	}
	if !method {
		header += "function "
	}
	header += f.names.of(decl.Name) + "(" + f.paramList(decl.Params) + "): " + f.result(decl)
	if method && decl.Abstract {
		f.body.Line("%s;", header)
		return
	}
	f.body.Line("%s {", header)
	f.body.Block(func() {
		f.stmts(decl.Body)
	})
	f.body.Line("}")
}

func (f *file) method(decl *ir.FuncDecl) {
	f.fun(decl, true)
}

func (f *file) paramList(params []*ir.Param) string {
	ss := make([]string, len(params))
	for i, param := range params {
		s := f.names.of(param.Name) + ": " + f.typ(param.Type)
		if param.Default != nil {
			s += " = " + f.sub(param.Default, precTernary)
		}
		ss[i] = s
	}
	return strings.Join(ss, ", ")
}

func (f *file) result(decl *ir.FuncDecl) string {
	result := "void"
	if decl.Result != nil {
		result = f.typ(decl.Result)
	}
	if decl.Async {
		return "Promise<" + result + ">"
	}
	return result
}
