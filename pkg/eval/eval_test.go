// Copyright © 2026 The Branchpoint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelchess/branchpoint/pkg/eval"
)

func TestMateScoresOrderByDistance(t *testing.T) {
	assert.True(t, eval.MatingIn(1) > eval.MatingIn(3), "a closer mate must score higher")
	assert.True(t, eval.MatedIn(3) > eval.MatedIn(1), "a more distant loss must score higher (less bad)")
}

func TestIsMateScore(t *testing.T) {
	assert.True(t, eval.MatingIn(5).IsMateScore())
	assert.True(t, eval.MatedIn(5).IsMateScore())
	assert.False(t, eval.Score(300).IsMateScore())
	assert.False(t, eval.Draw.IsMateScore())
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "cp 120", eval.Score(120).String())
	assert.Equal(t, "mate 1", eval.MatingIn(1).String())
}
