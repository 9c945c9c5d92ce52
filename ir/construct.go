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

package ir

// Construct is a language feature a target may or may not support.
// Renderers declare which constructs they can express; the validator
// reports every node using a construct the requested targets lack.
type Construct int

// Constructs subject to capability checks.
const (
	ConstructLambda Construct = iota
	ConstructNamedArgs
	ConstructKeywordOnlyParams
	ConstructSetType
	ConstructOmittedType
	ConstructTypeAlias
	ConstructInterface
	ConstructCast
	ConstructMultipleBases
	ConstructAsync
	numConstructs
)

var constructNames = [...]string{
	ConstructLambda:            "lambda",
	ConstructNamedArgs:         "named arguments",
	ConstructKeywordOnlyParams: "keyword-only parameters",
	ConstructSetType:           "set type",
	ConstructOmittedType:       "omitted type",
	ConstructTypeAlias:         "type alias",
	ConstructInterface:         "interface",
	ConstructCast:              "cast",
	ConstructMultipleBases:     "multiple base classes",
	ConstructAsync:             "async function",
}

// String representation of the construct.
func (c Construct) String() string {
	if c < 0 || int(c) >= len(constructNames) {
		return "invalid"
	}
	return constructNames[c]
}

// AllConstructs returns every construct subject to capability checks.
func AllConstructs() []Construct {
	all := make([]Construct, numConstructs)
	for i := range all {
		all[i] = Construct(i)
	}
	return all
}
