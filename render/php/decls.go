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

	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

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
	f.docComment(decl.Doc)
	header := "class " + decl.Name
	if decl.Abstract {
		header = "abstract " + header
	}
	if len(decl.Bases) > 0 {
		header += " extends " + f.classRef(decl.Bases[0])
	}
	f.body.Line("%s", header)
	f.body.Line("{")
	f.body.Block(func() {
		for _, field := range decl.Fields {
			mod := "public "
			if field.ReadOnly {
				mod = "public readonly "
			}
			f.body.Line("%s%s $%s;", mod, f.typ(field.Type), field.Name)
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
			f.fun(method, decl)
		}
	})
	f.body.Line("}")
}

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
		param := f.typ(field.Type) + " $" + field.Name
		if field.Default != nil {
			param += " = " + f.sub(field.Default, precTernary)
		}
		params = append(params, param)
	}
	f.body.Line("public function __construct(%s)", strings.Join(params, ", "))
	f.body.Line("{")
	f.body.Block(func() {
		if len(decl.Bases) > 0 {
			args := make([]string, len(inherited))
			for i, field := range inherited {
				args[i] = "$" + field.Name
			}
			f.body.Line("parent::__construct(%s);", strings.Join(args, ", "))
		}
		for _, field := range decl.Fields {
			if field.InitArg {
				f.body.Line("$this->%s = $%s;", field.Name, field.Name)
			} else if field.Default != nil {
				f.body.Line("$this->%s = %s;", field.Name, f.sub(field.Default, precTernary))
			}
		}
	})
	f.body.Line("}")
}

func (f *file) fun(decl *ir.FuncDecl, class *ir.ClassDecl) {
	f.docComment(decl.Doc)
	header := ""
	if class != nil {
		header = "public "
		if decl.Abstract {
			header = "abstract public "
		}
		if decl.Static {
			header += "static "
		}
	}
	header += "function " + decl.Name + "(" + f.paramList(decl.Params) + ")"
	result := "void"
	if decl.Result != nil {
		result = f.typ(decl.Result)
	}
	header += ": " + result
	if class != nil && decl.Abstract {
		f.body.Line("%s;", header)
		return
	}
	f.body.Line("%s", header)
	f.body.Line("{")
	f.body.Block(func() {
		f.stmts(decl.Body)
	})
	f.body.Line("}")
}

func (f *file) paramList(params []*ir.Param) string {
	ss := make([]string, len(params))
	for i, param := range params {
		s := f.typ(param.Type) + " $" + param.Name
		if param.Default != nil {
			s += " = " + f.sub(param.Default, precTernary)
		}
		ss[i] = s
	}
	return strings.Join(ss, ", ")
}
