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

package aggreg

import (
	"context"
	"fmt"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/merror"
	"lingstat/wordlist"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sentenceOfLen creates a flat sentence (all tokens depend
// on the first one) with n non-punctuation tokens
func sentenceOfLen(n int) *corpus.Sentence {
	ans := &corpus.Sentence{}
	for i := 1; i <= n; i++ {
		head := 1
		if i == 1 {
			head = 0
		}
		ans.Tokens = append(ans.Tokens, &corpus.Token{
			Position: i,
			Form:     fmt.Sprintf("w%d", i),
			Lemma:    fmt.Sprintf("w%d", i),
			UPos:     "NOUN",
			Feats:    make(corpus.MorphFeats),
			Head:     head,
			Deprel:   "dep",
		})
	}
	return ans
}

func textWithSentences(lang corpus.Language, lengths ...int) *corpus.Text {
	txt := corpus.NewText(lang)
	par := &corpus.Paragraph{}
	for _, n := range lengths {
		par.Sentences = append(par.Sentences, sentenceOfLen(n))
	}
	txt.Paragraphs = []*corpus.Paragraph{par}
	return txt
}

type memCache struct {
	sync.Mutex
	data map[string]*compute.TextFacts
	hits int
}

func (mc *memCache) Get(ctx context.Context, key string) (*compute.TextFacts, bool) {
	mc.Lock()
	defer mc.Unlock()
	v, ok := mc.data[key]
	if ok {
		mc.hits++
	}
	return v, ok
}

func (mc *memCache) Set(ctx context.Context, key string, facts *compute.TextFacts) {
	mc.Lock()
	defer mc.Unlock()
	mc.data[key] = facts
}

func newTestEngine(cache FactsCache) *Engine {
	ex := compute.NewExtractor(compute.DefaultConf(), nil, nil)
	return NewEngine(ex, cache, 2)
}

func findFeature(fs *FamilyStats, id features.ID) *FeatureStats {
	for i := range fs.Features {
		if fs.Features[i].Feature.ID == id {
			return &fs.Features[i]
		}
	}
	return nil
}

func TestEngineRunPoolsSentences(t *testing.T) {
	eng := newTestEngine(nil)
	texts := []*corpus.Text{
		textWithSentences(corpus.LangEnglish, 2, 4),
		textWithSentences(corpus.LangEnglish, 10, 10),
	}
	facts, err := eng.Facts(context.Background(), texts)
	require.NoError(t, err)
	res, err := eng.Run(
		context.Background(), features.FamilyGeneral, corpus.LangEnglish, facts,
		compute.Params{IncscBase: 1000})
	require.NoError(t, err)
	assert.Equal(t, []string{texts[0].ID, texts[1].ID}, res.TextIDs)
	sl := findFeature(res, features.SentenceLength)
	require.NotNil(t, sl)
	assert.Equal(t, 4, sl.Stats.Count)
	assert.InDelta(t, 7.0, sl.Stats.Median.V, 1e-9)
	assert.InDelta(t, 6.5, sl.Stats.Mean.V, 1e-9)
	assert.InDelta(t, 26.0, sl.Stats.Total.V, 1e-9)
	assert.InDelta(t, 6.5, sl.Overall.V, 1e-9)

	sents := findFeature(res, features.Sentences)
	require.NotNil(t, sents)
	assert.InDelta(t, 4.0, sents.Stats.Total.V, 1e-9)
}

func TestEngineRunKeepsTreeOrder(t *testing.T) {
	eng := newTestEngine(nil)
	facts, err := eng.Facts(
		context.Background(), []*corpus.Text{textWithSentences(corpus.LangSwedish, 3)})
	require.NoError(t, err)
	res, err := eng.Run(
		context.Background(), features.FamilyReadability, corpus.LangSwedish, facts, compute.Params{})
	require.NoError(t, err)
	tree, err := features.FeaturesFor(corpus.LangSwedish)
	require.NoError(t, err)
	leaves := tree.Leaves(features.FamilyReadability)
	require.Len(t, res.Features, len(leaves))
	for i, leaf := range leaves {
		assert.Equal(t, leaf.ID, res.Features[i].Feature.ID)
	}
}

func TestEngineRunSkipsOtherLanguages(t *testing.T) {
	eng := newTestEngine(nil)
	facts, err := eng.Facts(context.Background(), []*corpus.Text{
		textWithSentences(corpus.LangEnglish, 3),
		textWithSentences(corpus.LangSwedish, 5),
	})
	require.NoError(t, err)
	res, err := eng.Run(
		context.Background(), features.FamilyGeneral, corpus.LangSwedish, facts, compute.Params{})
	require.NoError(t, err)
	assert.Len(t, res.TextIDs, 1)
	tc := findFeature(res, features.TokenCount)
	assert.InDelta(t, 5.0, tc.Stats.Total.V, 1e-9)
}

func TestEngineRunEach(t *testing.T) {
	eng := newTestEngine(nil)
	texts := []*corpus.Text{
		textWithSentences(corpus.LangEnglish, 2, 4),
		textWithSentences(corpus.LangEnglish, 6),
	}
	facts, err := eng.Facts(context.Background(), texts)
	require.NoError(t, err)
	res, err := eng.RunEach(
		context.Background(), features.FamilyGeneral, corpus.LangEnglish, facts, compute.Params{})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, []string{texts[1].ID}, res[1].TextIDs)
	sl := findFeature(res[0], features.SentenceLength)
	assert.InDelta(t, 3.0, sl.Stats.Median.V, 1e-9)
}

func TestEngineUsesCache(t *testing.T) {
	cache := &memCache{data: make(map[string]*compute.TextFacts)}
	eng := newTestEngine(cache)
	a := textWithSentences(corpus.LangEnglish, 2, 3)
	b := textWithSentences(corpus.LangEnglish, 2, 3)
	facts, err := eng.Facts(context.Background(), []*corpus.Text{a})
	require.NoError(t, err)
	assert.Equal(t, a.ID, facts[0].TextID)
	facts, err = eng.Facts(context.Background(), []*corpus.Text{b})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, b.ID, facts[0].TextID)
}

func TestEngineUnknownFamily(t *testing.T) {
	eng := newTestEngine(nil)
	_, err := eng.Run(
		context.Background(), features.TokenCount, corpus.LangEnglish, nil, compute.Params{})
	var internalErr merror.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

type brokenLexicon struct{}

func (bl brokenLexicon) Lookup(lemma, upos string) (wordlist.Entry, bool) {
	panic("lexicon not loaded")
}

func TestEngineFactsRecoversFromPanic(t *testing.T) {
	extractor := compute.NewExtractor(
		compute.DefaultConf(),
		map[corpus.Language]compute.Lexicon{corpus.LangEnglish: brokenLexicon{}},
		nil,
	)
	eng := NewEngine(extractor, nil, 2)
	texts := []*corpus.Text{
		textWithSentences(corpus.LangEnglish, 3),
		textWithSentences(corpus.LangSwedish, 2),
	}
	_, err := eng.Facts(context.Background(), texts)
	var recErr merror.RecoveredError
	require.ErrorAs(t, err, &recErr)
	assert.Contains(t, recErr.Msg, "lexicon not loaded")
}
