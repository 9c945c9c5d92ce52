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
	"context"
	"path"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/crossgen-org/crossgen/base/ordered"
	"github.com/crossgen-org/crossgen/diag"
	"github.com/crossgen-org/crossgen/ir"
	"github.com/crossgen-org/crossgen/validator"
)

// Result of a generation run. Either the module failed validation and
// Diagnostics carries everything found, or Files carries the generated
// sources of every target that rendered.
type Result struct {
	// Diagnostics found during validation, empty on success.
	Diagnostics *diag.Bag

	// Files generated per target name, in the order the renderers were
	// given.
	Files *ordered.Map[string, []OutputFile]
}

// Valid returns true if validation found no problem.
func (r *Result) Valid() bool {
	return r.Diagnostics.Empty()
}

// Target returns the files generated for a target.
func (r *Result) Target(name string) []OutputFile {
	if r.Files == nil {
		return nil
	}
	files, _ := r.Files.Load(name)
	return files
}

// All returns every generated file, with target output prefixes
// applied, sorted by path.
func (r *Result) All() []OutputFile {
	if r.Files == nil {
		return nil
	}
	var all []OutputFile
	for files := range r.Files.Values() {
		all = append(all, files...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all
}

// Generate validates the module then renders it for every target.
// Renderers run concurrently and independently: a renderer failure is
// reported in the combined error but does not stop the other targets,
// whose files still come back in the result. Validation findings are
// not an error: they come back in the result, with no files.
func Generate(ctx context.Context, mod *ir.Module, avail []*ir.Module, opts *Options, renderers ...Renderer) (*Result, error) {
	if len(renderers) == 0 {
		return nil, errors.New("no renderers given")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	caps := make([]validator.TargetCaps, len(renderers))
	for i, r := range renderers {
		caps[i] = Caps(r)
	}
	res, err := validator.Validate(mod, avail, caps...)
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return &Result{Diagnostics: res.Bag}, nil
	}
	result := &Result{
		Diagnostics: res.Bag,
		Files:       ordered.NewMap[string, []OutputFile](),
	}
	byTarget := make([][]OutputFile, len(renderers))
	byErr := make([]error, len(renderers))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range renderers {
		g.Go(func() error {
			// Only cancellation goes through the group: a renderer
			// error is kept per target so the others finish.
			if err := ctx.Err(); err != nil {
				return err
			}
			topts := opts.ForTarget(r.Target())
			files, err := r.Render(mod, topts)
			if err != nil {
				byErr[i] = errors.Wrapf(err, "target %s", r.Target())
				return nil
			}
			for fi := range files {
				if topts.Out != "" {
					files[fi].Path = path.Join(topts.Out, files[fi].Path)
				}
			}
			sort.Slice(files, func(a, b int) bool { return files[a].Path < files[b].Path })
			byTarget[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var failed error
	for i, r := range renderers {
		if byErr[i] != nil {
			failed = multierr.Append(failed, byErr[i])
			continue
		}
		result.Files.Store(r.Target(), byTarget[i])
	}
	return result, failed
}
