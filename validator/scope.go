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

import "github.com/crossgen-org/crossgen/types"

// scope is one frame of the lexical chain inside a function body.
// Lookups climb the chain; declarations always land in the innermost
// frame.
type scope struct {
	parent *scope
	names  map[string]types.Type
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[string]types.Type)}
}

func (s *scope) declare(name string, t types.Type) {
	s.names[name] = t
}

func (s *scope) lookup(name string) (types.Type, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if t, ok := frame.names[name]; ok {
			return t, true
		}
	}
	return nil, false
}
