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

package suppress

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FileIgnore matches whole files against a set of glob patterns (e.g.
// "**/dist/**", "*.generated.ts") configured out of band from any
// in-source comment — spec.md §6's file-scope ignore list.
type FileIgnore struct {
	patterns []string
}

// NewFileIgnore returns a FileIgnore matching any of patterns.
// Patterns use doublestar glob syntax ("**" matches across path
// separators).
func NewFileIgnore(patterns ...string) *FileIgnore {
	return &FileIgnore{patterns: patterns}
}

// Matches reports whether path (as seen from the project root) matches
// any configured pattern.
func (f *FileIgnore) Matches(path string) bool {
	clean := filepath.ToSlash(path)
	for _, pat := range f.patterns {
		if ok, _ := doublestar.Match(pat, clean); ok {
			return true
		}
	}
	return false
}
