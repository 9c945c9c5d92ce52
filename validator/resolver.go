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

package validator

import (
	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/diag"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

// lookup resolves a named type reference to its declaration and the
// module owning it. An empty ref.Module refers to the module under
// validation. A nil declaration means the reference does not resolve.
func (v *validator) lookup(ref *types.Named) (*ir.Module, ir.Decl) {
	owner := v.mod
	if ref.Module != "" && ref.Module != v.mod.Name {
		owner = v.avail[ref.Module]
		if owner == nil {
			return nil, nil
		}
	}
	switch decl := owner.FindDecl(ref.Name).(type) {
	case *ir.ClassDecl:
		return owner, decl
	case *ir.TypeAliasDecl:
		return owner, decl
	case *ir.InterfaceDecl:
		return owner, decl
	}
	return owner, nil
}

// Supertypes implements types.Resolver. Base references declared
// without a module are qualified with their owning module, so ancestry
// chains crossing module boundaries compare consistently.
func (v *validator) Supertypes(ref *types.Named) ([]*types.Named, error) {
	owner, decl := v.lookup(ref)
	if decl == nil {
		return nil, errors.Errorf("unresolved reference %s", ref)
	}
	class, ok := decl.(*ir.ClassDecl)
	if !ok {
		return nil, nil
	}
	if owner == v.mod {
		return class.Bases, nil
	}
	bases := make([]*types.Named, len(class.Bases))
	for i, base := range class.Bases {
		if base.Module == "" {
			bases[i] = types.ImportedOf(owner.Name, base.Name, base.Args...)
		} else {
			bases[i] = base
		}
	}
	return bases, nil
}

// Underlying implements types.Resolver.
func (v *validator) Underlying(ref *types.Named) (types.Type, error) {
	_, decl := v.lookup(ref)
	if decl == nil {
		return nil, errors.Errorf("unresolved reference %s", ref)
	}
	if alias, ok := decl.(*ir.TypeAliasDecl); ok {
		return alias.Aliased, nil
	}
	return nil, nil
}

// findMember resolves a field or method of the class the reference
// names, walking base classes in declaration order. It returns the type
// of the member, or nil if the class has no such member.
func (v *validator) findMember(ref *types.Named, name string, seen map[string]bool) types.Type {
	key := ref.Module + "." + ref.Name
	if seen[key] {
		return nil
	}
	seen[key] = true
	owner, decl := v.lookup(ref)
	class, ok := decl.(*ir.ClassDecl)
	if !ok {
		return nil
	}
	if field := class.FindField(name); field != nil {
		return field.Type
	}
	if method := class.FindMethod(name); method != nil {
		return method.Type()
	}
	for _, base := range class.Bases {
		if base.Module == "" && owner != v.mod {
			base = types.ImportedOf(owner.Name, base.Name, base.Args...)
		}
		if t := v.findMember(base, name, seen); t != nil {
			return t
		}
	}
	return nil
}

// findMethod resolves a method declaration of the class the reference
// names, walking base classes in declaration order.
func (v *validator) findMethod(ref *types.Named, name string, seen map[string]bool) *ir.FuncDecl {
	key := ref.Module + "." + ref.Name
	if seen[key] {
		return nil
	}
	seen[key] = true
	owner, decl := v.lookup(ref)
	class, ok := decl.(*ir.ClassDecl)
	if !ok {
		return nil
	}
	if method := class.FindMethod(name); method != nil {
		return method
	}
	for _, base := range class.Bases {
		if base.Module == "" && owner != v.mod {
			base = types.ImportedOf(owner.Name, base.Name, base.Args...)
		}
		if method := v.findMethod(base, name, seen); method != nil {
			return method
		}
	}
	return nil
}

// findField resolves a field declaration of the class the reference
// names, walking base classes in declaration order.
func (v *validator) findField(ref *types.Named, name string, seen map[string]bool) *ir.Field {
	key := ref.Module + "." + ref.Name
	if seen[key] {
		return nil
	}
	seen[key] = true
	owner, decl := v.lookup(ref)
	class, ok := decl.(*ir.ClassDecl)
	if !ok {
		return nil
	}
	if field := class.FindField(name); field != nil {
		return field
	}
	for _, base := range class.Bases {
		if base.Module == "" && owner != v.mod {
			base = types.ImportedOf(owner.Name, base.Name, base.Args...)
		}
		if field := v.findField(base, name, seen); field != nil {
			return field
		}
	}
	return nil
}

// checkReferences reports imports that do not resolve to an available
// module and type references that do not resolve to a declaration.
func (v *validator) checkReferences(path diag.Path) {
	for _, imp := range v.mod.Imports {
		if _, ok := v.avail[imp.Module]; !ok {
			v.bag.Add(diag.UnresolvedReference, path,
				"import %s: module not available", imp.Module)
		}
	}
	for _, decl := range v.mod.Decls {
		switch declT := decl.(type) {
		case *ir.ClassDecl:
			v.checkClassRefs(path.Child("class %s", declT.Name), declT)
		case *ir.FuncDecl:
			v.checkFuncRefs(path.Child("function %s", declT.Name), declT)
		case *ir.ConstDecl:
			v.checkTypeRef(path.Child("const %s", declT.Name), declT.Type)
		case *ir.TypeAliasDecl:
			v.checkTypeRef(path.Child("alias %s", declT.Name), declT.Aliased)
		case *ir.InterfaceDecl:
			child := path.Child("interface %s", declT.Name)
			for _, prop := range declT.Props {
				v.checkTypeRef(child.Child("property %s", prop.Name), prop.Type)
			}
		}
	}
}

func (v *validator) checkClassRefs(path diag.Path, decl *ir.ClassDecl) {
	for _, base := range decl.Bases {
		_, baseDecl := v.lookup(base)
		if baseDecl == nil {
			v.bag.Add(diag.UnresolvedReference, path,
				"base %s does not resolve to a declaration", base)
			continue
		}
		if _, ok := baseDecl.(*ir.ClassDecl); !ok {
			v.bag.Add(diag.InvalidNode, path, "base %s is not a class", base)
		}
	}
	for _, field := range decl.Fields {
		v.checkTypeRef(path.Child("field %s", field.Name), field.Type)
	}
	for _, method := range decl.Methods {
		v.checkFuncRefs(path.Child("method %s", method.Name), method)
	}
}

func (v *validator) checkFuncRefs(path diag.Path, decl *ir.FuncDecl) {
	for _, param := range decl.Params {
		v.checkTypeRef(path.Child("param %s", param.Name), param.Type)
	}
	if decl.Result != nil {
		v.checkTypeRef(path.Child("result"), decl.Result)
	}
}

// checkTypeRef reports every named reference inside the type that does
// not resolve, and every reference to a module that is not imported.
func (v *validator) checkTypeRef(path diag.Path, t types.Type) {
	walkNamed(t, func(ref *types.Named) {
		if ref.Module != "" && ref.Module != v.mod.Name {
			if !v.imports(ref.Module) {
				v.bag.Add(diag.UnresolvedReference, path,
					"type %s: module %s is not imported", ref, ref.Module)
				return
			}
			if _, ok := v.avail[ref.Module]; !ok {
				// Reported once on the import itself.
				return
			}
		}
		if _, decl := v.lookup(ref); decl == nil {
			v.bag.Add(diag.UnresolvedReference, path,
				"type %s does not resolve to a declaration", ref)
		}
	})
}

func (v *validator) imports(module string) bool {
	for _, imp := range v.mod.Imports {
		if imp.Module == module {
			return true
		}
	}
	return false
}

// walkNamed visits every named reference inside a type.
func walkNamed(t types.Type, fn func(*types.Named)) {
	switch tt := t.(type) {
	case *types.Named:
		fn(tt)
		for _, arg := range tt.Args {
			walkNamed(arg, fn)
		}
	case *types.Optional:
		walkNamed(tt.Elem, fn)
	case *types.Sequence:
		walkNamed(tt.Elem, fn)
	case *types.Set:
		walkNamed(tt.Elem, fn)
	case *types.Mapping:
		walkNamed(tt.Key, fn)
		walkNamed(tt.Value, fn)
	case *types.Union:
		for _, member := range tt.Elems {
			walkNamed(member, fn)
		}
	case *types.Function:
		for _, param := range tt.Params {
			walkNamed(param, fn)
		}
		if tt.Result != nil {
			walkNamed(tt.Result, fn)
		}
	}
}
