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
	"fmt"
)

// TreeError describes a violation of the dependency tree
// invariants within a single sentence.
type TreeError struct {
	Token int
	Msg   string
}

func (err TreeError) Error() string {
	return fmt.Sprintf("token %d: %s", err.Token, err.Msg)
}

// AnnotationError describes a structural problem which is
// not related to dependency edges (positions, empty sentences).
type AnnotationError struct {
	Msg string
}

func (err AnnotationError) Error() string {
	return err.Msg
}

type Sentence struct {
	Tokens []*Token `json:"tokens"`
}

func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// Token returns a token at a 1-based position
func (s *Sentence) Token(pos int) *Token {
	if pos < 1 || pos > len(s.Tokens) {
		return nil
	}
	return s.Tokens[pos-1]
}

// NumWords returns number of non-punctuation tokens
func (s *Sentence) NumWords() int {
	var ans int
	for _, t := range s.Tokens {
		if !t.IsPunct() {
			ans++
		}
	}
	return ans
}

// Validate checks positions (1..n, each exactly once, in order)
// and then the dependency tree. Position problems are reported
// as AnnotationError, tree problems as TreeError.
func (s *Sentence) Validate() error {
	if len(s.Tokens) == 0 {
		return AnnotationError{Msg: "empty sentence"}
	}
	for i, tok := range s.Tokens {
		if tok == nil {
			return AnnotationError{Msg: fmt.Sprintf("missing token at position %d", i+1)}
		}
		if tok.Position != i+1 {
			for j := 0; j < i; j++ {
				if s.Tokens[j].Position == tok.Position {
					return AnnotationError{Msg: fmt.Sprintf("duplicate position %d", tok.Position)}
				}
			}
			return AnnotationError{
				Msg: fmt.Sprintf("unexpected position %d (expected %d)", tok.Position, i+1)}
		}
		if tok.Head < 0 || tok.Head > len(s.Tokens) {
			return AnnotationError{
				Msg: fmt.Sprintf("head %d of token %d out of range", tok.Head, tok.Position)}
		}
	}
	return s.ValidateTree()
}

// ValidateTree expects positions to be valid and tests that
// head edges form a tree (no self-loops, no cycles, at least one root).
func (s *Sentence) ValidateTree() error {
	var numRoots int
	for _, tok := range s.Tokens {
		if tok.Head == tok.Position {
			return TreeError{Token: tok.Position, Msg: "self-loop"}
		}
		if tok.Head == 0 {
			numRoots++
		}
	}
	if numRoots == 0 {
		return TreeError{Token: 0, Msg: "root is missing"}
	}
	// 0 = unvisited, 1 = on current path, 2 = reaches root
	state := make([]uint8, len(s.Tokens)+1)
	for _, tok := range s.Tokens {
		curr := tok.Position
		path := make([]int, 0, 8)
		for curr != 0 && state[curr] != 2 {
			if state[curr] == 1 {
				return TreeError{Token: tok.Position, Msg: "cycle"}
			}
			state[curr] = 1
			path = append(path, curr)
			curr = s.Tokens[curr-1].Head
		}
		for _, p := range path {
			state[p] = 2
		}
	}
	return nil
}

// Depths returns a number of arcs between each token and the root
// (index 0 is unused). The sentence must be a valid tree.
func (s *Sentence) Depths() []int {
	ans := make([]int, len(s.Tokens)+1)
	for i := range ans {
		ans[i] = -1
	}
	ans[0] = 0
	var depth func(pos int) int
	depth = func(pos int) int {
		if ans[pos] >= 0 {
			return ans[pos]
		}
		ans[pos] = depth(s.Tokens[pos-1].Head) + 1
		return ans[pos]
	}
	for _, tok := range s.Tokens {
		depth(tok.Position)
	}
	return ans
}

// LongestPath returns the maximum depth of a token in the tree
func (s *Sentence) LongestPath() int {
	var ans int
	for _, d := range s.Depths()[1:] {
		if d > ans {
			ans = d
		}
	}
	return ans
}

// RootPath returns positions from the token up to the root
// (including the artificial root 0).
func (s *Sentence) RootPath(pos int) []int {
	ans := []int{pos}
	for pos != 0 {
		pos = s.Tokens[pos-1].Head
		ans = append(ans, pos)
	}
	return ans
}

// Children returns an index of direct dependents
// for each position (index 0 holds root tokens).
func (s *Sentence) Children() [][]int {
	ans := make([][]int, len(s.Tokens)+1)
	for _, tok := range s.Tokens {
		ans[tok.Head] = append(ans[tok.Head], tok.Position)
	}
	return ans
}

// Descendants returns all direct and indirect dependents of a token
// (the token itself is not included).
func Descendants(children [][]int, pos int) []int {
	ans := make([]int, 0, len(children[pos]))
	stack := append([]int{}, children[pos]...)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ans = append(ans, curr)
		stack = append(stack, children[curr]...)
	}
	return ans
}
