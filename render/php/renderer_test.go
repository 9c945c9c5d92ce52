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

package php_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crossgen-org/crossgen/builder"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/render"
	"github.com/crossgen-org/crossgen/render/php"
	"github.com/crossgen-org/crossgen/types"
)

func modelsModule(t *testing.T) *ir.Module {
	t.Helper()
	b, err := builder.NewModule("acme/models")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Const("limit", types.Int(), ir.IntLit(10)); err != nil {
		t.Fatal(err)
	}
	class, err := b.Class("User")
	if err != nil {
		t.Fatal(err)
	}
	if err := class.Field("name", types.String(), builder.AsInitArg(), builder.ReadOnly()); err != nil {
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

func TestRenderModule(t *testing.T) {
	files, err := php.New().Render(modelsModule(t), render.TargetOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files but want 2", len(files))
	}
	if got, want := files[0].Path, "Acme/Models/User.php"; got != want {
		t.Errorf("class file path %q but want %q", got, want)
	}
	wantClass := `<?php

namespace Acme\Models;

class User
{
    public readonly string $name;

    public function __construct(string $name)
    {
        $this->name = $name;
    }

    public function greet(): string
    {
        return 'Hello, ' . $this->name;
    }
}
`
	if diff := cmp.Diff(wantClass, files[0].Content); diff != "" {
		t.Errorf("class file mismatch (-want +got):\n%s", diff)
	}
	if got, want := files[1].Path, "Acme/Models/functions.php"; got != want {
		t.Errorf("shared file path %q but want %q", got, want)
	}
	wantShared := `<?php

namespace Acme\Models;

const limit = 10;

function shout(string $text): string
{
    return $text . '!';
}
`
	if diff := cmp.Diff(wantShared, files[1].Content); diff != "" {
		t.Errorf("shared file mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespacePrefix(t *testing.T) {
	files, err := php.New().Render(modelsModule(t), render.TargetOptions{Namespace: "Vendor"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := files[0].Path, "Vendor/Acme/Models/User.php"; got != want {
		t.Errorf("class file path %q but want %q", got, want)
	}
	want := `namespace Vendor\Acme\Models;`
	for _, file := range files {
		if !strings.Contains(file.Content, want+"\n") {
			t.Errorf("%s does not declare %s", file.Path, want)
		}
	}
}

// An expression outside the target's reach must surface as an error,
// never as a placeholder in the output.
func TestUnsupportedExprFails(t *testing.T) {
	b, err := builder.NewModule("acme/models")
	if err != nil {
		t.Fatal(err)
	}
	fun, err := b.Func("f")
	if err != nil {
		t.Fatal(err)
	}
	if err := fun.Returns(types.FunctionOf([]types.Type{types.Int()}, types.Int())); err != nil {
		t.Fatal(err)
	}
	if err := fun.Append(&ir.ReturnStmt{Value: &ir.LambdaExpr{
		Params: []*ir.Param{{Name: "x", Type: types.Int()}},
		Body:   ir.Name("x"),
	}}); err != nil {
		t.Fatal(err)
	}
	mod, err := b.Seal()
	if err != nil {
		t.Fatal(err)
	}
	_, err = php.New().Render(mod, render.TargetOptions{})
	if err == nil {
		t.Fatalf("lambda rendered without error")
	}
	if !strings.Contains(err.Error(), "internal") {
		t.Errorf("error %q does not name an internal fault", err.Error())
	}
}

func TestUnsupportedDecl(t *testing.T) {
	b, err := builder.NewModule("acme/models")
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
	if _, err := php.New().Render(mod, render.TargetOptions{}); err == nil {
		t.Errorf("type alias rendered without error")
	}
}
