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

package uname_test

import (
	"testing"

	"github.com/crossgen-org/crossgen/base/uname"
)

func TestUnique(t *testing.T) {
	n := uname.New()
	tests := []struct {
		root string
		want string
	}{
		{root: "x", want: "x"},
		{root: "x", want: "x1"},
		{root: "x", want: "x2"},
		{root: "y", want: "y"},
		{root: "x1", want: "x11"},
	}
	for _, test := range tests {
		got := n.Name(test.root)
		if got != test.want {
			t.Errorf("Name(%s): got %s but want %s", test.root, got, test.want)
		}
	}
}

func TestReserve(t *testing.T) {
	n := uname.New()
	n.Reserve("class", "def")
	if got := n.Name("class"); got != "class1" {
		t.Errorf("Name(class): got %s but want class1", got)
	}
	if got := n.Name("def"); got != "def1" {
		t.Errorf("Name(def): got %s but want def1", got)
	}
	if got := n.Name("other"); got != "other" {
		t.Errorf("Name(other): got %s but want other", got)
	}
}
