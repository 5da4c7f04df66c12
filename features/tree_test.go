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
	"encoding/json"
	"lingstat/corpus"
	"lingstat/merror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafIDs(t *Tree) []ID {
	ans := make([]ID, 0, 80)
	for _, d := range t.AllLeaves() {
		ans = append(ans, d.ID)
	}
	return ans
}

func TestFeaturesForUnknownLanguage(t *testing.T) {
	_, err := FeaturesFor("de")
	var langErr merror.UnsupportedLanguageError
	assert.ErrorAs(t, err, &langErr)
}

func TestNoCrossLanguageLeaves(t *testing.T) {
	for _, lang := range corpus.SupportedLanguages {
		tree, err := FeaturesFor(lang)
		require.NoError(t, err)
		for _, d := range tree.AllLeaves() {
			assert.True(t, d.Applicability.AppliesTo(lang), "feature %d in %s tree", d.ID, lang)
		}
	}
	en, _ := FeaturesFor(corpus.LangEnglish)
	assert.False(t, en.Contains(Lix))
	assert.False(t, en.Contains(KellyLogFrequency))
	assert.False(t, en.Contains(NeuterNounIncsc))
	sv, _ := FeaturesFor(corpus.LangSwedish)
	assert.False(t, sv.Contains(SMOG))
	assert.False(t, sv.Contains(BilogTTR))
	assert.False(t, sv.Contains(ThirdSgPronIncsc))
}

func TestSharedLeavesOncePerLanguage(t *testing.T) {
	for _, lang := range corpus.SupportedLanguages {
		tree, _ := FeaturesFor(lang)
		seen := make(map[ID]int)
		for _, id := range leafIDs(tree) {
			seen[id]++
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, "feature %d in %s", id, lang)
		}
		assert.Equal(t, 1, seen[RootTTR])
		assert.Equal(t, 1, seen[SVerbIncsc])
	}
}

func TestFamilyOrder(t *testing.T) {
	for _, lang := range corpus.SupportedLanguages {
		tree, _ := FeaturesFor(lang)
		fams := make([]ID, len(tree.Families))
		for i, f := range tree.Families {
			fams[i] = f.ID
		}
		assert.Equal(t, Families(), fams)
	}
}

func TestEnglishReadabilityOrder(t *testing.T) {
	tree, _ := FeaturesFor(corpus.LangEnglish)
	ids := make([]ID, 0, 8)
	for _, d := range tree.Leaves(FamilyReadability) {
		ids = append(ids, d.ID)
	}
	assert.Equal(
		t,
		[]ID{BilogTTR, RootTTR, ColemanLiau, FleschReadingEase, FleschKincaid, ARI, SMOG},
		ids,
	)
}

func TestSwedishInsertions(t *testing.T) {
	tree, _ := FeaturesFor(corpus.LangSwedish)
	ids := make([]ID, 0, 8)
	for _, d := range tree.Leaves(FamilyReadability) {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []ID{Lix, Ovix, RootTTR, SimpleNominal, FullNominal}, ids)

	vf, ok := tree.Node(SubVerbForm)
	require.True(t, ok)
	last := vf.Children[len(vf.Children)-1]
	assert.Equal(t, SVerbToVerb, last.ID)

	lex := tree.Leaves(FamilyLexical)
	assert.Equal(t, KellyLogFrequency, lex[len(lex)-1].ID)

	n, ok := tree.Node(RootTTR)
	require.True(t, ok)
	assert.Equal(t, "Typ-token ratio (rotbaserad)", n.Label)
	en, _ := FeaturesFor(corpus.LangEnglish)
	n, _ = en.Node(RootTTR)
	assert.Equal(t, "Root TTR", n.Label)
}

func TestDescriptorPlacement(t *testing.T) {
	d, ok := Get(NeuterNounIncsc)
	require.True(t, ok)
	assert.Equal(t, FamilyMorph, d.Family)
	assert.Equal(t, SubSubPosAll, d.Subfamily)
	d, _ = Get(LongArcs)
	assert.Equal(t, FamilySyntactic, d.Family)
	assert.Equal(t, ID(0), d.Subfamily)
}

func TestFamilyByName(t *testing.T) {
	id, ok := FamilyByName("readability")
	assert.True(t, ok)
	assert.Equal(t, FamilyReadability, id)
	_, ok = FamilyByName("foo")
	assert.False(t, ok)
}

func TestTreeJSON(t *testing.T) {
	tree, _ := FeaturesFor(corpus.LangEnglish)
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label":"Flesch Reading Ease"`)
	assert.NotContains(t, string(data), `"LIX"`)
}
