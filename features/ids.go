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

package features

import (
	"fmt"
	"strconv"
)

// ID is a stable identifier of a feature tree node (a family,
// a subfamily or a feature). Values are part of the public API.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

func ParseID(s string) (ID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid feature id `%s`", s)
	}
	return ID(v), nil
}

// families
const (
	FamilyGeneral     ID = 1
	FamilyLexical     ID = 12
	FamilyMorph       ID = 22
	FamilySyntactic   ID = 56
	FamilyReadability ID = 71
)

// morph subfamilies
const (
	SubVerbForm         ID = 23
	SubPosPos           ID = 30
	SubSubPosAll        ID = 34
	SubPosAll           ID = 36
	SubPosMultiPos      ID = 44
	SubMultiPosMultiPos ID = 49
)

// general
const (
	TokenCount           ID = 2
	TypeCount            ID = 3
	SpellingErrors       ID = 4
	CompoundErrors       ID = 5
	Sentences            ID = 6
	Paragraphs           ID = 7
	WordLength           ID = 8
	SentenceLength       ID = 9
	ParagraphLengthWords ID = 10
	ParagraphLengthSents ID = 11
	SpellingErrorIncsc   ID = 90
	CompoundErrorIncsc   ID = 91
)

// lexical
const (
	A1LemmaIncsc       ID = 13
	A2LemmaIncsc       ID = 14
	B1LemmaIncsc       ID = 15
	B2LemmaIncsc       ID = 16
	C1LemmaIncsc       ID = 17
	C2LemmaIncsc       ID = 18
	DifficultWordIncsc ID = 19
	DifficultNounVerb  ID = 20
	OutOfListIncsc     ID = 21
	KellyLogFrequency  ID = 68
)

// morph
const (
	ModalVerbToVerb  ID = 24
	PresPartToVerb   ID = 25
	PastPartToVerb   ID = 26
	PresVerbToVerb   ID = 27
	PastVerbToVerb   ID = 28
	SupVerbToVerb    ID = 29
	SVerbToVerb      ID = 69
	NounToVerb       ID = 31
	PronToNoun       ID = 32
	PronToPrep       ID = 33
	SVerbIncsc       ID = 35
	NeuterNounIncsc  ID = 70
	ThirdSgPronIncsc ID = 86
	AdjIncsc         ID = 37
	AdvIncsc         ID = 38
	NounIncsc        ID = 39
	PartIncsc        ID = 40
	PunctIncsc       ID = 41
	SconjIncsc       ID = 42
	VerbIncsc        ID = 43
	AdjVariation     ID = 45
	AdvVariation     ID = 46
	NounVariation    ID = 47
	VerbVariation    ID = 48
	ConjIncsc        ID = 50
	FunctionalIncsc  ID = 51
	LexToNonLex      ID = 52
	LexToToken       ID = 53
	NominalRatio     ID = 54
	RelIncsc         ID = 55
)

// syntactic
const (
	DepLength           ID = 57
	LongArcs            ID = 58
	LongestPath         ID = 59
	RightArcsRatio      ID = 60
	LeftArcsRatio       ID = 61
	ModifierVariation   ID = 62
	PreModifierIncsc    ID = 63
	PostModifierIncsc   ID = 64
	SubordinateIncsc    ID = 65
	RelativeClauseIncsc ID = 66
	PrepCompIncsc       ID = 67
)

// readability
const (
	Lix               ID = 72
	Ovix              ID = 73
	RootTTR           ID = 74
	SimpleNominal     ID = 75
	FullNominal       ID = 76
	BilogTTR          ID = 80
	ColemanLiau       ID = 81
	FleschReadingEase ID = 82
	FleschKincaid     ID = 83
	ARI               ID = 84
	SMOG              ID = 85
)
