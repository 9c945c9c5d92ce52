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

package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/crossgen-org/crossgen/builder"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
	"github.com/crossgen-org/crossgen/render/php"
	"github.com/crossgen-org/crossgen/render/python"
	"github.com/crossgen-org/crossgen/render/typescript"
	"github.com/crossgen-org/crossgen/types"
)

func greeterModule(t *testing.T) *ir.Module {
	t.Helper()
	b, err := builder.NewModule("acme/greeter")
	if err != nil {
		t.Fatal(err)
	}
	class, err := b.Class("Greeter")
	if err != nil {
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
	}}}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	return mod
}

func TestGenerate(t *testing.T) {
	res, err := render.Generate(context.Background(), greeterModule(t), nil, nil,
		python.New(), typescript.New(), php.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("unexpected diagnostics:\n%v", res.Diagnostics.ToError())
	}
	var targets []string
	for target := range res.Files.Keys() {
		targets = append(targets, target)
	}
	// Targets keep the order the renderers were given in.
	want := []string{"python", "typescript", "php"}
	if diff := cmp.Diff(want, targets); diff != "" {
		t.Errorf("target order mismatch (-want +got):\n%s", diff)
	}
	py := res.Target("python")
	if len(py) != 1 || py[0].Path != "acme/greeter.py" {
		t.Errorf("python files are %v but want acme/greeter.py", paths(py))
	}
	ts := res.Target("typescript")
	if len(ts) != 1 || ts[0].Path != "acme/greeter.ts" {
		t.Errorf("typescript files are %v but want acme/greeter.ts", paths(ts))
	}
	if got := res.Target("php"); len(got) != 1 {
		t.Errorf("php files are %v but want one file", paths(got))
	}
}

func paths(files []render.OutputFile) []string {
	ss := make([]string, len(files))
	for i, file := range files {
		ss[i] = file.Path
	}
	return ss
}

func TestGenerateRoundTrip(t *testing.T) {
	b, err := builder.NewModule("calc")
	if err != nil {
		t.Fatal(err)
	}
	add, err := b.Func("add")
	if err != nil {
		t.Fatal(err)
	}
	if err := add.Param("a", types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := add.Param("b", types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := add.Returns(types.Int()); err != nil {
		t.Fatal(err)
	}
	if err := add.Append(&ir.ReturnStmt{
		Value: ir.Binary(ir.OpAdd, ir.Name("a"), ir.Name("b")),
	}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	res, err := render.Generate(context.Background(), mod, nil, nil, python.New(), typescript.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("unexpected diagnostics:\n%v", res.Diagnostics.ToError())
	}
	wantPy := `def add(a: int, b: int) -> int:
    return a + b
`
	if diff := cmp.Diff(wantPy, res.Target("python")[0].Content); diff != "" {
		t.Errorf("python output mismatch (-want +got):\n%s", diff)
	}
	wantTS := `export function add(a: number, b: number): number {
  return a + b;
}
`
	if diff := cmp.Diff(wantTS, res.Target("typescript")[0].Content); diff != "" {
		t.Errorf("typescript output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateOutPrefix(t *testing.T) {
	opts := &render.Options{Targets: map[string]render.TargetOptions{
		"python": {Out: "gen/py"},
	}}
	res, err := render.Generate(context.Background(), greeterModule(t), nil, opts, python.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	py := res.Target("python")
	if len(py) != 1 || py[0].Path != "gen/py/acme/greeter.py" {
		t.Errorf("python files are %v but want gen/py/acme/greeter.py", paths(py))
	}
}

func TestGenerateInvalidModule(t *testing.T) {
	b, err := builder.NewModule("acme/bad")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Const("limit", types.Int(), ir.StringLit("x")); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	res, err := render.Generate(context.Background(), mod, nil, nil, python.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Valid() {
		t.Fatalf("invalid module passed validation")
	}
	if res.Files != nil {
		t.Errorf("invalid module produced files")
	}
	if res.All() != nil {
		t.Errorf("All on an invalid result is %v but want nil", paths(res.All()))
	}
}

type failingRenderer struct{}

func (failingRenderer) Target() string             { return "broken" }
func (failingRenderer) Supports(ir.Construct) bool { return true }

func (failingRenderer) Render(*ir.Module, render.TargetOptions) ([]render.OutputFile, error) {
	return nil, errors.New("boom")
}

// A failing target must not take the other targets down with it: their
// files still come back alongside the failure.
func TestGenerateTargetFailureIsolated(t *testing.T) {
	res, err := render.Generate(context.Background(), greeterModule(t), nil, nil,
		python.New(), failingRenderer{})
	if err == nil {
		t.Fatalf("Generate: want the broken target's error")
	}
	if !strings.Contains(err.Error(), "target broken") {
		t.Errorf("error %q does not name the failing target", err.Error())
	}
	py := res.Target("python")
	if len(py) != 1 || py[0].Path != "acme/greeter.py" {
		t.Errorf("python files are %v but want acme/greeter.py", paths(py))
	}
	if got := res.Target("broken"); got != nil {
		t.Errorf("broken target has files %v", paths(got))
	}
}

func TestGenerateNoRenderers(t *testing.T) {
	if _, err := render.Generate(context.Background(), greeterModule(t), nil, nil); err == nil {
		t.Errorf("Generate without renderers: want an error")
	}
}

func TestGenerateCapabilityDiagnostics(t *testing.T) {
	b, err := builder.NewModule("acme/bad")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Alias("Identifier", types.String()); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	res, err := render.Generate(context.Background(), mod, nil, nil, python.New(), php.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Valid() {
		t.Fatalf("php accepted a type alias")
	}
}

func TestLoadOptions(t *testing.T) {
	manifest := `header = ["Code generated by acme. DO NOT EDIT."]

[targets.python]
out = "gen/python"

[targets.php]
namespace = "Acme"
`
	file := filepath.Join(t.TempDir(), "crossgen.toml")
	if err := os.WriteFile(file, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := render.LoadOptions(file)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	py := opts.ForTarget("python")
	if py.Out != "gen/python" {
		t.Errorf("python out is %q but want gen/python", py.Out)
	}
	// Targets without their own header inherit the shared one.
	if len(py.Header) != 1 || py.Header[0] != "Code generated by acme. DO NOT EDIT." {
		t.Errorf("python header is %v but want the shared header", py.Header)
	}
	if ns := opts.ForTarget("php").Namespace; ns != "Acme" {
		t.Errorf("php namespace is %q but want Acme", ns)
	}
}
