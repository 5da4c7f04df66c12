// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of LINGSTAT.
//
//  LINGSTAT is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LINGSTAT is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LINGSTAT.  If not, see <https://www.gnu.org/licenses/>.

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSentence(heads ...int) *Sentence {
	ans := &Sentence{Tokens: make([]*Token, len(heads))}
	for i, h := range heads {
		ans.Tokens[i] = &Token{Position: i + 1, Form: "w", UPos: "NOUN", Head: h, Deprel: "dep"}
	}
	return ans
}

func TestSentenceValidateOK(t *testing.T) {
	s := mkSentence(2, 0, 2, 3)
	assert.NoError(t, s.Validate())
}

func TestSentenceValidateCycle(t *testing.T) {
	s := mkSentence(2, 3, 1, 0)
	err := s.Validate()
	var treeErr TreeError
	require.ErrorAs(t, err, &treeErr)
	assert.Equal(t, "cycle", treeErr.Msg)
}

func TestSentenceValidateSelfLoop(t *testing.T) {
	s := mkSentence(0, 2)
	var treeErr TreeError
	require.ErrorAs(t, s.Validate(), &treeErr)
	assert.Equal(t, 2, treeErr.Token)
}

func TestSentenceValidateNoRoot(t *testing.T) {
	s := mkSentence(2, 1)
	var treeErr TreeError
	assert.ErrorAs(t, s.Validate(), &treeErr)
}

func TestSentenceValidateHeadOutOfRange(t *testing.T) {
	s := mkSentence(0, 7)
	var annotErr AnnotationError
	assert.ErrorAs(t, s.Validate(), &annotErr)
}

func TestSentenceValidateDuplicatePosition(t *testing.T) {
	s := mkSentence(0, 1, 1)
	s.Tokens[2].Position = 2
	var annotErr AnnotationError
	require.ErrorAs(t, s.Validate(), &annotErr)
	assert.Contains(t, annotErr.Msg, "duplicate")
}

func TestSentenceValidateEmpty(t *testing.T) {
	s := &Sentence{}
	assert.Error(t, s.Validate())
}

func TestDepthsAndLongestPath(t *testing.T) {
	// 1 <- 2 <- 3(root) -> 4 -> 5
	s := mkSentence(2, 3, 0, 3, 4)
	assert.Equal(t, []int{0, 3, 2, 1, 2, 3}, s.Depths())
	assert.Equal(t, 3, s.LongestPath())
}

func TestRootPath(t *testing.T) {
	s := mkSentence(2, 3, 0)
	assert.Equal(t, []int{1, 2, 3, 0}, s.RootPath(1))
	assert.Equal(t, []int{3, 0}, s.RootPath(3))
}

func TestDescendants(t *testing.T) {
	s := mkSentence(2, 0, 2, 3, 2)
	ch := s.Children()
	assert.ElementsMatch(t, []int{1, 3, 4, 5}, Descendants(ch, 2))
	assert.ElementsMatch(t, []int{4}, Descendants(ch, 3))
	assert.Empty(t, Descendants(ch, 4))
}

func TestDepLength(t *testing.T) {
	s := mkSentence(3, 0, 2)
	assert.Equal(t, 2, s.Tokens[0].DepLength())
	assert.Equal(t, 0, s.Tokens[1].DepLength())
	assert.Equal(t, 1, s.Tokens[2].DepLength())
}

func TestNumWords(t *testing.T) {
	s := mkSentence(0, 1, 1)
	s.Tokens[2].UPos = UPosPunct
	assert.Equal(t, 2, s.NumWords())
}
