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

package python_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crossgen-org/crossgen/builder"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
	"github.com/crossgen-org/crossgen/render/python"
	"github.com/crossgen-org/crossgen/types"
)

func renderOne(t *testing.T, mod *ir.Module, opts render.TargetOptions) render.OutputFile {
	t.Helper()
	files, err := python.New().Render(mod, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files but want 1", len(files))
	}
	return files[0]
}

func greeterModule(t *testing.T) *ir.Module {
	t.Helper()
	b, err := builder.NewModule("acme/greeter")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Const("greeting", types.String(), ir.StringLit("Hello")); err != nil {
		t.Fatal(err)
	}
	class, err := b.Class("Greeter")
	if err != nil {
		t.Fatal(err)
	}
	if err := class.Doc("Greets people."); err != nil {
		t.Fatal(err)
	}
	if err := class.Field("name", types.String(), builder.AsInitArg()); err != nil {
		t.Fatal(err)
	}
	greet, err := class.Method("greet")
	if err != nil {
		t.Fatal(err)
	}
	if err := greet.Returns(types.String()); err != nil {
		t.Fatal(err)
	}
	if err := greet.Append(&ir.ReturnStmt{Value: &ir.FormatExpr{Parts: []ir.Expr{
		ir.StringLit("Hello, "),
		ir.SelfAttr("name"),
		ir.StringLit("!"),
	}}}); err != nil {
		t.Fatal(err)
	}
	shout, err := b.Func("shout")
	if err != nil {
		t.Fatal(err)
	}
	if err := shout.Param("text", types.String()); err != nil {
		t.Fatal(err)
	}
	if err := shout.Returns(types.String()); err != nil {
		t.Fatal(err)
	}
	if err := shout.Append(&ir.ReturnStmt{
		Value: ir.Binary(ir.OpAdd, ir.Name("text"), ir.StringLit("!")),
	}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	return mod
}

func TestRenderGreeter(t *testing.T) {
	file := renderOne(t, greeterModule(t), render.TargetOptions{})
	if got, want := file.Path, "acme/greeter.py"; got != want {
		t.Errorf("path %q but want %q", got, want)
	}
	want := `greeting: str = "Hello"


class Greeter:
    """Greets people."""
    name: str

    def __init__(self, name: str) -> None:
        self.name = name

    def greet(self) -> str:
        return f"Hello, {self.name}!"


def shout(text: str) -> str:
    return text + "!"
`
	if diff := cmp.Diff(want, file.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDeterministic(t *testing.T) {
	mod := greeterModule(t)
	first := renderOne(t, mod, render.TargetOptions{})
	second := renderOne(t, mod, render.TargetOptions{})
	if first.Content != second.Content {
		t.Errorf("two renders of the same module differ")
	}
}

func TestRenderInheritance(t *testing.T) {
	b, err := builder.NewModule("shapes")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Const("tags", types.SequenceOf(types.String()),
		&ir.SeqLitExpr{Elem: types.String(), Elems: []ir.Expr{ir.StringLit("a")}}); err != nil {
		t.Fatal(err)
	}
	shape, err := b.Class("Shape")
	if err != nil {
		t.Fatal(err)
	}
	if err := shape.Abstract(); err != nil {
		t.Fatal(err)
	}
	area, err := shape.Method("area")
	if err != nil {
		t.Fatal(err)
	}
	if err := area.Abstract(); err != nil {
		t.Fatal(err)
	}
	if err := area.Returns(types.Float()); err != nil {
		t.Fatal(err)
	}
	circle, err := b.Class("Circle")
	if err != nil {
		t.Fatal(err)
	}
	if err := circle.Base(types.NamedOf("Shape")); err != nil {
		t.Fatal(err)
	}
	if err := circle.Field("r", types.Float(), builder.AsInitArg()); err != nil {
		t.Fatal(err)
	}
	carea, err := circle.Method("area")
	if err != nil {
		t.Fatal(err)
	}
	if err := carea.Returns(types.Float()); err != nil {
		t.Fatal(err)
	}
	if err := carea.Append(&ir.ReturnStmt{
		Value: ir.Binary(ir.OpMul,
			ir.Binary(ir.OpMul, ir.SelfAttr("r"), ir.SelfAttr("r")),
			ir.FloatLit(3.14)),
	}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	file := renderOne(t, mod, render.TargetOptions{})
	want := `import abc
import typing

tags: typing.List[str] = ["a"]


class Shape(abc.ABC):
    @abc.abstractmethod
    def area(self) -> float:
        pass


class Circle(Shape):
    r: float

    def __init__(self, r: float) -> None:
        super().__init__()
        self.r = r

    def area(self) -> float:
        return self.r * self.r * 3.14
`
	if diff := cmp.Diff(want, file.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderImports(t *testing.T) {
	b, err := builder.NewModule("acme/app")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Import("acme/models", ""); err != nil {
		t.Fatal(err)
	}
	fun, err := b.Func("make")
	if err != nil {
		t.Fatal(err)
	}
	if err := fun.Returns(types.ImportedOf("acme/models", "User")); err != nil {
		t.Fatal(err)
	}
	if err := fun.Append(&ir.ReturnStmt{
		Value: ir.Call(ir.Attr(ir.Name("models"), "User"), ir.StringLit("ada")),
	}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	file := renderOne(t, mod, render.TargetOptions{})
	want := `import acme.models as models

def make() -> models.User:
    return models.User("ada")
`
	if diff := cmp.Diff(want, file.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

// IR names colliding with Python keywords get a stable suffix.
func TestRenderKeywordRename(t *testing.T) {
	b, err := builder.NewModule("acme/util")
	if err != nil {
		t.Fatal(err)
	}
	fun, err := b.Func("f")
	if err != nil {
		t.Fatal(err)
	}
	if err := fun.Param("lambda", types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Returns(types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Append(&ir.ReturnStmt{Value: ir.Name("lambda")}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	file := renderOne(t, mod, render.TargetOptions{})
	want := `def f(lambda1: int) -> int:
    return lambda1
`
	if diff := cmp.Diff(want, file.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

// Python chains comparison operators, so a comparison nested inside
// another comparison must keep its parentheses to preserve meaning.
func TestRenderNestedComparisons(t *testing.T) {
	b, err := builder.NewModule("acme/util")
	if err != nil {
		t.Fatal(err)
	}
	fun, err := b.Func("f")
	if err != nil {
		t.Fatal(err)
	}
	if err := fun.Param("a", types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Param("b", types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Param("c", types.Bool()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Returns(types.Bool()); err != nil {
		t.Fatal(err)
	}
	if err := fun.Append(
		&ir.ReturnStmt{Value: ir.Binary(ir.OpEq,
			ir.Binary(ir.OpEq, ir.Name("a"), ir.Name("b")),
			ir.Name("c"))},
	); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	file := renderOne(t, mod, render.TargetOptions{})
	want := `def f(a: int, b: int, c: bool) -> bool:
    return (a == b) == c
`
	if diff := cmp.Diff(want, file.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderInterfaceFails(t *testing.T) {
	b, err := builder.NewModule("acme/ifaces")
	if err != nil {
		t.Fatal(err)
	}
	iface, err := b.Interface("Point")
	if err != nil {
		t.Fatal(err)
	}
	if err := iface.Prop("x", types.Float()); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := python.New().Render(mod, render.TargetOptions{}); err == nil {
		t.Errorf("interface rendered without error")
	}
}
