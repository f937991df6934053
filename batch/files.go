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

package batch

import (
	"context"

	"github.com/jstool/jstool/analyzer"
	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/format"
	"github.com/jstool/jstool/printer"
	"github.com/jstool/jstool/rules"
	"github.com/jstool/jstool/suppress"
	"github.com/jstool/jstool/token"
)

// File is one already-lexed/parsed input: its CST and the token stream
// that produced it (so comment trivia stays available to both the
// formatter and the analyzer).
type File struct {
	Path   string
	Root   cst.Node
	Stream *token.Stream
}

// Printed is one file's formatting result.
type Printed struct {
	Path string
	format.Result
}

// Report is one file's analysis result.
type Report struct {
	Path        string
	Diagnostics []analyzer.Diagnostic
}

// FormatAll formats every file concurrently and returns results in the
// same order as files, regardless of completion order. A file whose path
// matches ignore (nil means no file is ignored) is not formatted: its
// Printed carries only Path, with an empty Result (no Code, no Mappings),
// per spec.md §6's file-scope ignore list.
func FormatAll(ctx context.Context, files []File, opts printer.Options, ignore *suppress.FileIgnore) ([]Printed, error) {
	return Run(ctx, 0, files, func(_ context.Context, f File) (Printed, error) {
		if ignore != nil && ignore.Matches(f.Path) {
			return Printed{Path: f.Path}, nil
		}
		return Printed{Path: f.Path, Result: format.Print(f.Root, f.Stream, opts)}, nil
	})
}

// AnalyzeAll runs reg's rules over every file concurrently and returns
// results in the same order as files, regardless of completion order.
// severities overrides each rule's default severity (nil means no
// overrides); a file whose path matches ignore (nil means no file is
// ignored) is skipped entirely, per spec.md §6.
func AnalyzeAll(ctx context.Context, files []File, reg *rules.Registry, severities map[rules.Key]rules.Severity, ignore *suppress.FileIgnore) ([]Report, error) {
	a := analyzer.New(reg, analyzer.WithSeverities(severities))
	return Run(ctx, 0, files, func(_ context.Context, f File) (Report, error) {
		if ignore != nil && ignore.Matches(f.Path) {
			return Report{Path: f.Path}, nil
		}
		return Report{Path: f.Path, Diagnostics: a.Run(f.Root, f.Stream)}, nil
	})
}
