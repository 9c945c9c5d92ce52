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

package diag_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/crossgen-org/crossgen/diag"
)

func TestPathChild(t *testing.T) {
	root := diag.Path{"acme/models"}
	class := root.Child("class %s", "User")
	method := class.Child("method %s", "rename")
	field := class.Child("field %s", "name")

	if got, want := method.String(), "acme/models: class User: method rename"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	// Extending a path never modifies its parent, so walks can branch.
	if got, want := field.String(), "acme/models: class User: field name"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	if got, want := class.String(), "acme/models: class User"; got != want {
		t.Errorf("parent modified: got %q but want %q", got, want)
	}
}

func TestBag(t *testing.T) {
	bag := diag.NewBag()
	if !bag.Empty() {
		t.Errorf("new bag is not empty")
	}
	path := diag.Path{"acme/models"}
	bag.Add(diag.TypeMismatch, path.Child("class B"), "cannot use str where int is expected")
	bag.Add(diag.DuplicateName, path.Child("class A"), "member x declared twice")
	bag.Add(diag.UnresolvedReference, path.Child("class A"), "name y resolves to nothing")

	other := diag.NewBag()
	other.Add(diag.InvalidNode, path, "nil statement")
	bag.Merge(other)

	if bag.Len() != 4 {
		t.Fatalf("bag has %d diagnostics but want 4", bag.Len())
	}
	bag.Sort()
	var got []string
	for _, d := range bag.Items() {
		got = append(got, d.String())
	}
	want := []string{
		"acme/models: invalid node: nil statement",
		"acme/models: class A: duplicate name: member x declared twice",
		"acme/models: class A: unresolved reference: name y resolves to nothing",
		"acme/models: class B: type mismatch: cannot use str where int is expected",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestToError(t *testing.T) {
	bag := diag.NewBag()
	if bag.ToError() != nil {
		t.Errorf("empty bag yields a non-nil error")
	}
	bag.Add(diag.DuplicateName, diag.Path{"m"}, "x declared twice")
	err := bag.ToError()
	if err == nil {
		t.Fatalf("non-empty bag yields a nil error")
	}
	if got, want := err.Error(), "m: duplicate name: x declared twice"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestPrinter(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	bag := diag.NewBag()
	path := diag.Path{"acme/models"}
	bag.Add(diag.DuplicateName, path.Child("class A"), "member x declared twice")
	bag.Add(diag.TypeMismatch, path, "cannot use str where int is expected")

	var sb strings.Builder
	diag.NewPrinter(&sb).PrintBag(bag)
	want := `type mismatch at acme/models: cannot use str where int is expected
duplicate name at acme/models: class A: member x declared twice
2 problem(s)
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("printed output mismatch (-want +got):\n%s", diff)
	}

	sb.Reset()
	diag.NewPrinter(&sb).PrintBag(diag.NewBag())
	if sb.String() != "" {
		t.Errorf("empty bag printed %q", sb.String())
	}
}
