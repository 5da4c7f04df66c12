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

package compute

import (
	"lingstat/wordlist"
)

// Counts is an additive set of raw observations a feature formula
// is evaluated from. Counts of any text scope (sentence, paragraph,
// text, corpus) are obtained by merging counts of sentences.
type Counts struct {
	Tokens         int `json:"tokens"`
	Words          int `json:"words"`
	Chars          int `json:"chars"`
	Syllables      int `json:"syllables"`
	Polysyllables  int `json:"polysyllables"`
	LongWords      int `json:"longWords"`
	SpellingErrors int `json:"spellingErrors"`
	CompoundErrors int `json:"compoundErrors"`
	Sentences      int `json:"sentences"`
	Paragraphs     int `json:"paragraphs"`

	// Types maps type keys to their frequencies
	Types map[string]int `json:"types"`

	UPos map[string]int `json:"upos"`

	ModalVerbs      int `json:"modalVerbs"`
	PresParticiples int `json:"presParticiples"`
	PastParticiples int `json:"pastParticiples"`
	PresVerbs       int `json:"presVerbs"`
	PastVerbs       int `json:"pastVerbs"`
	SupineVerbs     int `json:"supineVerbs"`
	SVerbs          int `json:"sVerbs"`
	ThirdSgPronouns int `json:"thirdSgPronouns"`
	NeuterNouns     int `json:"neuterNouns"`
	RelPronouns     int `json:"relPronouns"`

	// CEFR contains lemma counts per level (index = wordlist.Level)
	CEFR              [7]int  `json:"cefr"`
	DifficultNounVerb int     `json:"difficultNounVerb"`
	OutOfList         int     `json:"outOfList"`
	LogWPMSum         float64 `json:"logWpmSum"`
	LogWPMCount       int     `json:"logWpmCount"`

	DepLengthSum     int `json:"depLengthSum"`
	Arcs             int `json:"arcs"`
	LongArcs         int `json:"longArcs"`
	LongestPath      int `json:"longestPath"`
	RightArcs        int `json:"rightArcs"`
	LeftArcs         int `json:"leftArcs"`
	PreModifiers     int `json:"preModifiers"`
	PostModifiers    int `json:"postModifiers"`
	SubordinateNodes int `json:"subordinateNodes"`
	RelativeNodes    int `json:"relativeNodes"`
	PrepCompNodes    int `json:"prepCompNodes"`
}

func NewCounts() *Counts {
	return &Counts{
		Types: make(map[string]int),
		UPos:  make(map[string]int),
	}
}

// NumTypes returns the number of distinct types
func (c *Counts) NumTypes() int {
	return len(c.Types)
}

// POS returns a sum of frequencies of the specified UPOS tags
func (c *Counts) POS(tags ...string) int {
	var ans int
	for _, t := range tags {
		ans += c.UPos[t]
	}
	return ans
}

// CEFRCount returns number of lemmas of a specified level
func (c *Counts) CEFRCount(lev wordlist.Level) int {
	if lev < 0 || int(lev) >= len(c.CEFR) {
		return 0
	}
	return c.CEFR[lev]
}

// Difficult returns number of lemmas above B1
func (c *Counts) Difficult() int {
	return c.CEFR[wordlist.LevelB2] + c.CEFR[wordlist.LevelC1] + c.CEFR[wordlist.LevelC2]
}

// Merge adds other counts to the current ones. All the values are
// sums except for LongestPath (max). Type frequencies are summed
// per type so the number of types reflects the union.
func (c *Counts) Merge(other *Counts) {
	if c.Types == nil {
		c.Types = make(map[string]int)
	}
	if c.UPos == nil {
		c.UPos = make(map[string]int)
	}
	c.Tokens += other.Tokens
	c.Words += other.Words
	c.Chars += other.Chars
	c.Syllables += other.Syllables
	c.Polysyllables += other.Polysyllables
	c.LongWords += other.LongWords
	c.SpellingErrors += other.SpellingErrors
	c.CompoundErrors += other.CompoundErrors
	c.Sentences += other.Sentences
	c.Paragraphs += other.Paragraphs
	for k, v := range other.Types {
		c.Types[k] += v
	}
	for k, v := range other.UPos {
		c.UPos[k] += v
	}
	c.ModalVerbs += other.ModalVerbs
	c.PresParticiples += other.PresParticiples
	c.PastParticiples += other.PastParticiples
	c.PresVerbs += other.PresVerbs
	c.PastVerbs += other.PastVerbs
	c.SupineVerbs += other.SupineVerbs
	c.SVerbs += other.SVerbs
	c.ThirdSgPronouns += other.ThirdSgPronouns
	c.NeuterNouns += other.NeuterNouns
	c.RelPronouns += other.RelPronouns
	for i := range c.CEFR {
		c.CEFR[i] += other.CEFR[i]
	}
	c.DifficultNounVerb += other.DifficultNounVerb
	c.OutOfList += other.OutOfList
	c.LogWPMSum += other.LogWPMSum
	c.LogWPMCount += other.LogWPMCount
	c.DepLengthSum += other.DepLengthSum
	c.Arcs += other.Arcs
	c.LongArcs += other.LongArcs
	if other.LongestPath > c.LongestPath {
		c.LongestPath = other.LongestPath
	}
	c.RightArcs += other.RightArcs
	c.LeftArcs += other.LeftArcs
	c.PreModifiers += other.PreModifiers
	c.PostModifiers += other.PostModifiers
	c.SubordinateNodes += other.SubordinateNodes
	c.RelativeNodes += other.RelativeNodes
	c.PrepCompNodes += other.PrepCompNodes
}

// MergeCounts creates new counts as a merge of the provided ones
func MergeCounts(items ...*Counts) *Counts {
	ans := NewCounts()
	for _, item := range items {
		ans.Merge(item)
	}
	return ans
}
