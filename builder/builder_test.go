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

package builder_test

import (
	"strings"
	"testing"

	"github.com/crossgen-org/crossgen/builder"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/types"
)

func newModule(t *testing.T, name string) *builder.Module {
	t.Helper()
	b, err := builder.NewModule(name)
	if err != nil {
		t.Fatalf("NewModule(%s): %v", name, err)
	}
	return b
}

func TestNewModule(t *testing.T) {
	if _, err := builder.NewModule("acme/models"); err != nil {
		t.Errorf("NewModule(acme/models): %v", err)
	}
	if _, err := builder.NewModule("acme//models"); err == nil {
		t.Errorf("NewModule(acme//models): want an error")
	}
	if _, err := builder.NewModule(""); err == nil {
		t.Errorf("NewModule of an empty path: want an error")
	}
}

func TestBuildModule(t *testing.T) {
	b := newModule(t, "acme/models")
	if err := b.Import("acme/base", ""); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := b.Const("limit", types.Int(), ir.IntLit(10)); err != nil {
		t.Fatalf("Const: %v", err)
	}
	class, err := b.Class("User")
	if err != nil {
		t.Fatalf("Class: %v", err)
	}
	if err := class.Field("name", types.String(), builder.AsInitArg()); err != nil {
		t.Fatalf("Field: %v", err)
	}
	method, err := class.Method("rename")
	if err != nil {
		t.Fatalf("Method: %v", err)
	}
	if err := method.Param("name", types.String()); err != nil {
		t.Fatalf("Param: %v", err)
	}
	if err := method.Append(&ir.AssignStmt{
		Target: ir.SelfAttr("name"),
		Value:  ir.Name("name"),
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if mod.State() != ir.Sealed {
		t.Errorf("module state is %s but want sealed", mod.State())
	}
	if len(mod.Decls) != 2 {
		t.Fatalf("module has %d declarations but want 2", len(mod.Decls))
	}
	// Declarations keep their append order.
	if got := mod.Decls[0].DeclName(); got != "limit" {
		t.Errorf("first declaration is %s but want limit", got)
	}
	if got := mod.Decls[1].DeclName(); got != "User" {
		t.Errorf("second declaration is %s but want User", got)
	}
}

func TestSealedModuleRefusesAppends(t *testing.T) {
	b := newModule(t, "acme/models")
	class, err := b.Class("User")
	if err != nil {
		t.Fatalf("Class: %v", err)
	}
	if _, err := b.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if err := b.Const("limit", types.Int(), ir.IntLit(10)); err == nil {
		t.Errorf("Const on a sealed module: want an error")
	}
	if err := class.Field("name", types.String()); err == nil {
		t.Errorf("Field on a sealed module: want an error")
	}
	if _, err := b.Seal(); err == nil {
		t.Errorf("second Seal: want an error")
	}
}

func TestStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *builder.Module) error
		want  string
	}{
		{
			name: "invalid identifier",
			build: func(b *builder.Module) error {
				_, err := b.Class("not a name")
				return err
			},
			want: "invalid identifier",
		},
		{
			name: "constant without a type",
			build: func(b *builder.Module) error {
				return b.Const("limit", nil, ir.IntLit(10))
			},
			want: "requires a type",
		},
		{
			name: "constant without a value",
			build: func(b *builder.Module) error {
				return b.Const("limit", types.Int(), nil)
			},
			want: "requires a value",
		},
		{
			name: "invalid import path",
			build: func(b *builder.Module) error {
				return b.Import("acme//base", "")
			},
			want: "invalid import",
		},
		{
			name: "required parameter after defaulted",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				if err := fun.Param("a", types.Int(), builder.ParamDefault(ir.IntLit(0))); err != nil {
					return err
				}
				return fun.Param("b", types.Int())
			},
			want: "required parameter after defaulted a",
		},
		{
			name: "keyword-only after defaulted is fine",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				if err := fun.Param("a", types.Int(), builder.ParamDefault(ir.IntLit(0))); err != nil {
					return err
				}
				return fun.Param("b", types.Int(), builder.KeywordOnly())
			},
		},
		{
			name: "required constructor argument after defaulted",
			build: func(b *builder.Module) error {
				class, err := b.Class("User")
				if err != nil {
					return err
				}
				if err := class.Field("a", types.Int(), builder.AsInitArg(), builder.WithDefault(ir.IntLit(0))); err != nil {
					return err
				}
				return class.Field("b", types.Int(), builder.AsInitArg())
			},
			want: "required constructor argument after defaulted a",
		},
		{
			name: "abstract function with a body",
			build: func(b *builder.Module) error {
				class, err := b.Class("User")
				if err != nil {
					return err
				}
				method, err := class.Method("m")
				if err != nil {
					return err
				}
				if err := method.Abstract(); err != nil {
					return err
				}
				return method.Append(&ir.ReturnStmt{})
			},
			want: "cannot have a body",
		},
		{
			name: "abstract module function",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				return fun.Abstract()
			},
			want: "only methods can be abstract",
		},
		{
			name: "static module function",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				return fun.Static()
			},
			want: "only methods can be static",
		},
		{
			name: "result set twice",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				if err := fun.Returns(types.Int()); err != nil {
					return err
				}
				return fun.Returns(types.String())
			},
			want: "already set",
		},
		{
			name: "nil statement",
			build: func(b *builder.Module) error {
				fun, err := b.Func("f")
				if err != nil {
					return err
				}
				return fun.Append(nil)
			},
			want: "nil statement",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := newModule(t, "acme/models")
			err := test.build(b)
			if test.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("want an error containing %q", test.want)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not contain %q", err.Error(), test.want)
			}
		})
	}
}
