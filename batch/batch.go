// Copyright 2026 The jstool Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch runs one function concurrently across many inputs (e.g.
// formatting or analyzing a whole project's files), per spec.md §5:
// results come back in input order regardless of completion order, and
// each per-input Doc/printer run stays single-owner within its own
// goroutine (spec.md §5's single-owner rule is per-run, not per-process).
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run calls fn once per item of in, with up to concurrency goroutines in
// flight at a time (0 or negative means unlimited), and returns results
// in the same order as in. If any call returns an error, Run returns the
// first error (by index, not completion order) after every in-flight
// call has finished; other results for that call are undefined.
func Run[In, Out any](ctx context.Context, concurrency int, in []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	errs := make([]error, len(in))
	for i, item := range in {
		i, item := i, item
		g.Go(func() error {
			result, err := fn(ctx, item)
			if err != nil {
				errs[i] = err
				return err
			}
			out[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}
	return out, nil
}
