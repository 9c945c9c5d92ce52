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

package render

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Options configure a generation run. They can be built in code or
// loaded from a TOML manifest:
//
//	header = ["Code generated by acme. DO NOT EDIT."]
//
//	[targets.python]
//	out = "gen/python"
//
//	[targets.php]
//	indent = "    "
//	namespace = "Acme"
type Options struct {
	// Header lines prepended as comments to every generated file,
	// after the module's own file comments.
	Header []string `toml:"header"`

	// Targets options keyed by target name.
	Targets map[string]TargetOptions `toml:"targets"`
}

// TargetOptions configure one target.
type TargetOptions struct {
	// Indent unit, the target's convention when empty.
	Indent string `toml:"indent"`

	// Out is the directory prefix of the target's output paths.
	Out string `toml:"out"`

	// Namespace prefix for targets with declared namespaces.
	Namespace string `toml:"namespace"`

	// Header lines for this target, overriding the shared ones.
	Header []string `toml:"header"`
}

// DefaultOptions returns options with no header and target defaults.
func DefaultOptions() *Options {
	return &Options{Targets: make(map[string]TargetOptions)}
}

// LoadOptions reads a TOML manifest.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, errors.Wrapf(err, "cannot load options from %s", path)
	}
	return opts, nil
}

// ForTarget returns the options of the named target, with the shared
// header filled in when the target declares none.
func (o *Options) ForTarget(name string) TargetOptions {
	topts := o.Targets[name]
	if len(topts.Header) == 0 {
		topts.Header = o.Header
	}
	return topts
}
