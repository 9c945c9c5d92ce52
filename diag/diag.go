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

// Package diag accumulates validation diagnostics.
//
// Validation never stops at the first problem: every pass appends the
// diagnostics it finds to a Bag, and the caller decides what to do with
// the whole collection. A diagnostic locates its subject with a Path
// into the module tree rather than a source position, since the tree is
// built programmatically and has no source text.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Kind classifies a diagnostic.
type Kind int

// Diagnostic kinds.
const (
	// DuplicateName reports a name bound twice in the same namespace.
	DuplicateName Kind = iota
	// UnresolvedReference reports a name that resolves to nothing.
	UnresolvedReference
	// TypeMismatch reports a value used where its type is not assignable.
	TypeMismatch
	// UnsupportedConstruct reports a construct a requested target
	// cannot express.
	UnsupportedConstruct
	// InvalidNode reports a structurally broken node.
	InvalidNode
)

var kindNames = [...]string{
	DuplicateName:        "duplicate name",
	UnresolvedReference:  "unresolved reference",
	TypeMismatch:         "type mismatch",
	UnsupportedConstruct: "unsupported construct",
	InvalidNode:          "invalid node",
}

// String representation of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Path locates a node inside a module tree. Segments name the steps
// from the module down to the node, e.g.
// "acme/models", "class User", "method rename", "param name".
type Path []string

// Child extends the path with one segment. The receiver is not
// modified, so a path can branch while walking the tree.
func (p Path) Child(format string, args ...any) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, fmt.Sprintf(format, args...))
}

// String joins the segments.
func (p Path) String() string {
	return strings.Join(p, ": ")
}

// Diagnostic is one problem found during validation.
type Diagnostic struct {
	Kind    Kind
	Path    Path
	Message string
}

// String formats the diagnostic as path, kind, then message.
func (d *Diagnostic) String() string {
	if len(d.Path) == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Path, d.Kind, d.Message)
}

// Bag collects diagnostics.
type Bag struct {
	items []*Diagnostic
}

// NewBag returns an empty collection.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic.
func (b *Bag) Add(kind Kind, path Path, format string, args ...any) {
	b.items = append(b.items, &Diagnostic{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends every diagnostic of other.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}

// Empty returns true if nothing has been collected.
func (b *Bag) Empty() bool {
	return len(b.items) == 0
}

// Len returns the number of diagnostics collected.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected diagnostics.
// The slice aliases the internal storage and must not be modified.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Sort orders the diagnostics by path, then kind, then message, so the
// output does not depend on the order the passes ran in.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if pi, pj := di.Path.String(), dj.Path.String(); pi != pj {
			return pi < pj
		}
		if di.Kind != dj.Kind {
			return di.Kind < dj.Kind
		}
		return di.Message < dj.Message
	})
}

// ToError combines the diagnostics into a single error,
// or nil if the bag is empty.
func (b *Bag) ToError() error {
	var err error
	for _, d := range b.items {
		err = multierr.Append(err, fmt.Errorf("%s", d.String()))
	}
	return err
}
