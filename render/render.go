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

// Package render turns validated IR modules into target source text.
//
// One Renderer exists per target language. Rendering is deterministic:
// the same module and options produce byte-identical output, whatever
// the order renderers run in.
package render

import (
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/validator"
)

// OutputFile is one generated source file.
type OutputFile struct {
	// Path of the file relative to the target's output root.
	Path string
	// Content of the file.
	Content string
}

// Renderer renders modules for one target language.
type Renderer interface {
	// Target returns the name of the target language.
	Target() string

	// Supports returns true if the target can express the construct.
	Supports(c ir.Construct) bool

	// Render produces the source files of the module. The module must
	// have passed validation for this renderer's capabilities.
	Render(mod *ir.Module, opts TargetOptions) ([]OutputFile, error)
}

// Caps adapts a renderer into the capability view the validator needs.
func Caps(r Renderer) validator.TargetCaps {
	return validator.TargetCaps{Name: r.Target(), Supports: r.Supports}
}

// CapSet is the set of constructs a target supports.
type CapSet map[ir.Construct]bool

// AllExcept returns the capability set of every construct minus the
// given ones.
func AllExcept(unsupported ...ir.Construct) CapSet {
	set := make(CapSet)
	for _, c := range ir.AllConstructs() {
		set[c] = true
	}
	for _, c := range unsupported {
		set[c] = false
	}
	return set
}

// Supports returns true if the construct is in the set.
func (s CapSet) Supports(c ir.Construct) bool {
	return s[c]
}
