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

package suppress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstool/jstool/suppress"
)

func TestFileIgnore_MatchesDoubleStarGlob(t *testing.T) {
	fi := suppress.NewFileIgnore("**/dist/**", "*.generated.ts")

	assert.True(t, fi.Matches("pkg/dist/bundle.js"))
	assert.True(t, fi.Matches("api.generated.ts"))
	assert.False(t, fi.Matches("pkg/src/index.ts"))
}

func TestFileIgnore_NoPatternsMatchesNothing(t *testing.T) {
	fi := suppress.NewFileIgnore()
	assert.False(t, fi.Matches("anything.ts"))
}
