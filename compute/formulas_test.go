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
	"encoding/json"
	"lingstat/corpus"
	"lingstat/features"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcRatiosSumToOne(t *testing.T) {
	ex := newTestExtractor()
	c, err := ex.SentenceCounts(corpus.LangEnglish, catSentence())
	require.NoError(t, err)
	p := Params{IncscBase: 1000}
	right := ComputeFeature(features.RightArcsRatio, c, p)
	left := ComputeFeature(features.LeftArcsRatio, c, p)
	require.False(t, right.NA)
	require.False(t, left.NA)
	assert.InDelta(t, 1.0, right.V+left.V, 1e-9)
}

func TestArcRatiosSingleTokenNA(t *testing.T) {
	ex := newTestExtractor()
	c, err := ex.SentenceCounts(corpus.LangEnglish, chain(1))
	require.NoError(t, err)
	assert.True(t, ComputeFeature(features.RightArcsRatio, c, Params{}).NA)
	assert.True(t, ComputeFeature(features.LeftArcsRatio, c, Params{}).NA)
}

func TestIncscUsesBase(t *testing.T) {
	c := NewCounts()
	c.Tokens = 20
	c.UPos["NOUN"] = 5
	v := ComputeFeature(features.NounIncsc, c, Params{IncscBase: 1000})
	assert.InDelta(t, 250.0, v.V, 1e-9)
	v = ComputeFeature(features.NounIncsc, c, Params{IncscBase: 100})
	assert.InDelta(t, 25.0, v.V, 1e-9)
	v = ComputeFeature(features.NounIncsc, NewCounts(), Params{IncscBase: 100})
	assert.True(t, v.NA)
}

func TestVerbIncscBase(t *testing.T) {
	c := NewCounts()
	c.Tokens = 10
	c.UPos["VERB"] = 3
	c.UPos["AUX"] = 1
	c.ModalVerbs = 1
	v := ComputeFeature(features.ModalVerbToVerb, c, Params{IncscBase: 1000})
	assert.InDelta(t, 250.0, v.V, 1e-9)
}

func TestOvixNotApplicable(t *testing.T) {
	c := NewCounts()
	c.Tokens = 3
	c.Types = map[string]int{"a": 1, "b": 1, "c": 1}
	assert.True(t, ComputeFeature(features.Ovix, c, Params{}).NA)

	c.Tokens = 1
	c.Types = map[string]int{"a": 1}
	assert.True(t, ComputeFeature(features.Ovix, c, Params{}).NA)

	c.Tokens = 4
	c.Types = map[string]int{"a": 2, "b": 2}
	v := ComputeFeature(features.Ovix, c, Params{})
	require.False(t, v.NA)
	expected := math.Log(4) / math.Log(2-math.Log(2)/math.Log(4))
	assert.InDelta(t, expected, v.V, 1e-9)
}

func TestReadabilityOfUniqueTokensSentence(t *testing.T) {
	ex := newTestExtractor()
	c, err := ex.SentenceCounts(corpus.LangSwedish, swedishSentence("hunden", "springer", "snabbt"))
	require.NoError(t, err)
	require.Equal(t, 3, c.Tokens)
	require.Equal(t, 3, c.NumTypes())
	assert.True(t, ComputeFeature(features.Ovix, c, Params{Lang: corpus.LangSwedish}).NA)
	assert.True(t, ComputeFeature(features.Lix, c, Params{Lang: corpus.LangSwedish}).NA)
}

func TestLix(t *testing.T) {
	c := NewCounts()
	assert.True(t, ComputeFeature(features.Lix, c, Params{}).NA)
	c.Words = 20
	c.Sentences = 2
	c.LongWords = 5
	v := ComputeFeature(features.Lix, c, Params{})
	assert.InDelta(t, 10.0+25.0, v.V, 1e-9)
}

func TestEnglishReadability(t *testing.T) {
	c := NewCounts()
	c.Words = 10
	c.Sentences = 2
	c.Syllables = 15
	c.Chars = 45
	c.Polysyllables = 3
	p := Params{}
	assert.InDelta(t, 206.835-1.015*5-84.6*1.5, ComputeFeature(features.FleschReadingEase, c, p).V, 1e-9)
	assert.InDelta(t, 0.39*5+11.8*1.5-15.59, ComputeFeature(features.FleschKincaid, c, p).V, 1e-9)
	assert.InDelta(t, 4.71*4.5+0.5*5-21.43, ComputeFeature(features.ARI, c, p).V, 1e-9)
	assert.InDelta(t, 0.0588*450-0.296*20-15.8, ComputeFeature(features.ColemanLiau, c, p).V, 1e-9)
	assert.InDelta(t, 1.0430*math.Sqrt(45)+3.1291, ComputeFeature(features.SMOG, c, p).V, 1e-9)
	assert.True(t, ComputeFeature(features.FleschKincaid, NewCounts(), p).NA)
	assert.True(t, ComputeFeature(features.BilogTTR, NewCounts(), p).NA)
}

func TestRootTTRInvariantUnderSentenceOrder(t *testing.T) {
	ex := newTestExtractor()
	s1, err := ex.SentenceCounts(corpus.LangEnglish, catSentence())
	require.NoError(t, err)
	s2, err := ex.SentenceCounts(corpus.LangEnglish, chain(4))
	require.NoError(t, err)
	a := ComputeFeature(features.RootTTR, MergeCounts(s1, s2), Params{})
	b := ComputeFeature(features.RootTTR, MergeCounts(s2, s1), Params{})
	assert.Equal(t, a, b)
	assert.InDelta(t, 7/math.Sqrt(11), a.V, 1e-9)

	a = ComputeFeature(features.BilogTTR, MergeCounts(s1, s2), Params{})
	b = ComputeFeature(features.BilogTTR, MergeCounts(s2, s1), Params{})
	assert.Equal(t, a, b)
	assert.InDelta(t, math.Log(11)/math.Log(7), a.V, 1e-9)
}

func TestComputeFamilyRespectsLanguage(t *testing.T) {
	c := NewCounts()
	c.Tokens = 10
	c.Words = 10
	c.Sentences = 1
	c.Types = map[string]int{"a": 5, "b": 5}
	en := Compute(features.FamilyReadability, c, Params{Lang: corpus.LangEnglish})
	assert.Contains(t, en, features.BilogTTR)
	assert.Contains(t, en, features.RootTTR)
	assert.NotContains(t, en, features.Lix)
	sv := Compute(features.FamilyReadability, c, Params{Lang: corpus.LangSwedish})
	assert.Contains(t, sv, features.Lix)
	assert.NotContains(t, sv, features.SMOG)
	morph := Compute(features.FamilyMorph, c, Params{Lang: corpus.LangSwedish})
	assert.Contains(t, morph, features.SVerbToVerb)
	assert.Contains(t, morph, features.NounToVerb)
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal([]Value{Val(1.5), NA()})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,null]", string(data))
	var back []Value
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back[1].NA)
	assert.Equal(t, 1.5, back[0].V)
	assert.True(t, Val(math.NaN()).NA)
}
