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

package query

import (
	"context"
	"fmt"
	"lingstat/aggreg"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/monitoring"
	"lingstat/results"
	"lingstat/session"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentence(words ...string) *corpus.Sentence {
	ans := &corpus.Sentence{}
	for i, w := range words {
		head := 1
		if i == 0 {
			head = 0
		}
		upos := "NOUN"
		if w == "." {
			upos = corpus.UPosPunct
		}
		ans.Tokens = append(ans.Tokens, &corpus.Token{
			Position: i + 1,
			Form:     w,
			Lemma:    w,
			UPos:     upos,
			XPos:     "x" + upos,
			Feats:    make(corpus.MorphFeats),
			Head:     head,
			Deprel:   "dep",
		})
	}
	return ans
}

func sentenceOfLen(n int) *corpus.Sentence {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i+1)
	}
	return sentence(words...)
}

func textOf(lang corpus.Language, pars ...[]*corpus.Sentence) *corpus.Text {
	ans := corpus.NewText(lang)
	for _, p := range pars {
		ans.Paragraphs = append(ans.Paragraphs, &corpus.Paragraph{Sentences: p})
	}
	return ans
}

type memRecorder struct {
	items []monitoring.JobLog
}

func (mr *memRecorder) Log(rec monitoring.JobLog) {
	mr.items = append(mr.items, rec)
}

func newTestService() (*Service, *memRecorder) {
	ex := compute.NewExtractor(compute.DefaultConf(), nil, nil)
	rec := &memRecorder{}
	return NewService(aggreg.NewEngine(ex, nil, 2), rec), rec
}

func findRow(table *results.FamilyTable, id features.ID) *results.FeatureRow {
	for i := range table.Rows {
		if table.Rows[i].ID == id {
			return &table.Rows[i]
		}
	}
	return nil
}

func TestEmptySelectionReturnsMarker(t *testing.T) {
	srv, rec := newTestService()
	sctx := session.NewContext([]*corpus.Text{}, session.ModeMerged, 1000)
	ans, err := srv.GetGeneral(context.Background(), sctx)
	assert.NoError(t, err)
	assert.Equal(t, results.ResultTypeEmpty, ans.Type())
	require.Len(t, rec.items, 1)
	assert.NoError(t, rec.items[0].Err)
	assert.Equal(t, "general", rec.items[0].Func)

	ans, err = srv.GetLengths(context.Background(), sctx, MetricSentence, LengthFilter{})
	assert.NoError(t, err)
	assert.Equal(t, results.ResultTypeEmpty, ans.Type())
}

func TestMergedGeneralPoolsSentences(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(2), sentenceOfLen(4)})
	t2 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(6)})
	sctx := session.NewContext([]*corpus.Text{t1, t2}, session.ModeMerged, 1000)

	ans, err := srv.GetGeneral(context.Background(), sctx)
	require.NoError(t, err)
	fam, ok := ans.(*results.Family)
	require.True(t, ok)
	assert.Equal(t, "general", fam.Key)
	require.Len(t, fam.Tables, 1)
	table := fam.Tables[0]
	assert.Equal(t, results.ScopeCorpus, table.Scope)
	assert.Equal(t, 2, table.NumTexts)

	row := findRow(table, features.SentenceLength)
	require.NotNil(t, row)
	assert.Equal(t, 3, row.Count)
	assert.InDelta(t, 4.0, row.Median.V, 1e-9)
	assert.InDelta(t, 4.0, row.Mean.V, 1e-9)
	assert.InDelta(t, 12.0, row.Total.V, 1e-9)
	assert.NotEmpty(t, row.Label)
}

func TestPerTextModeAddsTextTables(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(2)})
	t1.Title = "first"
	t2 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(6)})
	sctx := session.NewContext([]*corpus.Text{t1, t2}, session.ModePerText, 1000)

	ans, err := srv.GetSyntactic(context.Background(), sctx)
	require.NoError(t, err)
	fam := ans.(*results.Family)
	require.Len(t, fam.Tables, 3)
	assert.Equal(t, results.ScopeText, fam.Tables[0].Scope)
	assert.Equal(t, t1.ID, fam.Tables[0].TextID)
	assert.Equal(t, "first", fam.Tables[0].Title)
	assert.Equal(t, t2.ID, fam.Tables[1].TextID)
	assert.Equal(t, results.ScopeCorpus, fam.Tables[2].Scope)
	assert.Len(t, fam.CorpusTables(), 1)
}

func TestMixedLanguagesAreNotPooled(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangSwedish, []*corpus.Sentence{sentenceOfLen(3)})
	t2 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(5)})
	sctx := session.NewContext([]*corpus.Text{t1, t2}, session.ModeMerged, 1000)

	ans, err := srv.GetReadability(context.Background(), sctx)
	require.NoError(t, err)
	fam := ans.(*results.Family)
	require.Len(t, fam.Tables, 2)
	assert.Equal(t, corpus.LangSwedish, fam.Tables[0].Lang)
	assert.Equal(t, corpus.LangEnglish, fam.Tables[1].Lang)
	assert.NotNil(t, findRow(fam.Tables[0], features.Lix))
	assert.Nil(t, findRow(fam.Tables[1], features.Lix))
}

func TestUnknownFamily(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentenceOfLen(3)})
	sctx := session.NewContext([]*corpus.Text{t1}, session.ModeMerged, 1000)
	_, err := srv.GetFamily(context.Background(), sctx, features.ID(9999))
	assert.Error(t, err)
}

func TestLengthsWithFilter(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(
		corpus.LangEnglish,
		[]*corpus.Sentence{sentenceOfLen(2), sentenceOfLen(4)},
		[]*corpus.Sentence{sentenceOfLen(4), sentenceOfLen(7)},
	)
	sctx := session.NewContext([]*corpus.Text{t1}, session.ModeMerged, 1000)

	ans, err := srv.GetLengths(context.Background(), sctx, MetricSentence, LengthFilter{})
	require.NoError(t, err)
	lens := ans.(*results.Lengths)
	assert.Equal(t, 4, lens.Total)
	require.Len(t, lens.Buckets, 3)
	assert.Equal(t, 2, lens.Buckets[0].Length)
	assert.Equal(t, 4, lens.Buckets[1].Length)
	assert.Equal(t, 2, lens.Buckets[1].Count)
	assert.InDelta(t, 0.5, lens.Buckets[1].Ratio, 1e-9)

	ans, err = srv.GetLengths(
		context.Background(), sctx, MetricSentence, LengthFilter{Op: FilterGE, Bound: 3, Step: 1})
	require.NoError(t, err)
	lens = ans.(*results.Lengths)
	assert.Equal(t, 4, lens.Bound)
	assert.Equal(t, 3, lens.Total)

	ans, err = srv.GetLengths(context.Background(), sctx, MetricParagraphSentences, LengthFilter{})
	require.NoError(t, err)
	lens = ans.(*results.Lengths)
	require.Len(t, lens.Buckets, 1)
	assert.Equal(t, 2, lens.Buckets[0].Count)

	_, err = srv.GetLengths(context.Background(), sctx, LengthMetric("foo"), LengthFilter{})
	assert.Error(t, err)
}

func TestWordLengthsSkipPunctuation(t *testing.T) {
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentence("a", "cat", "sat", ".")})
	lens := lengths([]*corpus.Text{t1}, MetricWord, LengthFilter{})
	assert.Equal(t, 3, lens.Total)
	require.Len(t, lens.Buckets, 2)
	assert.Equal(t, 1, lens.Buckets[0].Length)
	assert.Equal(t, 3, lens.Buckets[1].Length)
	assert.Equal(t, 2, lens.Buckets[1].POS["NOUN"])
}

func TestWordLengthsUseNormalizedForm(t *testing.T) {
	s := sentence("a", "kat", ".")
	s.Tokens[1].Norm = "katt"
	t1 := textOf(corpus.LangSwedish, []*corpus.Sentence{s})
	lens := lengths([]*corpus.Text{t1}, MetricWord, LengthFilter{})
	require.Len(t, lens.Buckets, 2)
	assert.Equal(t, 1, lens.Buckets[0].Length)
	assert.Equal(t, 4, lens.Buckets[1].Length)
	assert.Equal(t, 1, lens.Buckets[1].Count)
}

func TestFrequencyList(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{
		sentence("The", "the", "cat", "."),
		sentence("cat", "the", "."),
	})
	sctx := session.NewContext([]*corpus.Text{t1}, session.ModeMerged, 1000)

	ans, err := srv.GetFrequencyList(
		context.Background(), sctx, FreqArgs{Category: CategoryForm, Tagset: TagsetUPOS, MinFreq: 2})
	require.NoError(t, err)
	flist := ans.(*results.FreqList)
	assert.Equal(t, 7, flist.Base)
	require.Len(t, flist.Items, 3)
	assert.Equal(t, "the", flist.Items[0].Word)
	assert.Equal(t, 3, flist.Items[0].Freq)
	assert.Equal(t, ".", flist.Items[1].Word)
	assert.Equal(t, "cat", flist.Items[2].Word)
	assert.InDelta(t, 2.0/7.0*1e6, flist.Items[2].IPM, 0.001)

	ans, err = srv.GetFrequencyList(
		context.Background(),
		sctx,
		FreqArgs{Category: CategoryLemma, Tagset: TagsetUPOS, POSSplit: true, POS: []string{"NOUN"}, MaxItems: 1},
	)
	require.NoError(t, err)
	flist = ans.(*results.FreqList)
	require.Len(t, flist.Items, 1)
	assert.Equal(t, "cat", flist.Items[0].Word)
	assert.Equal(t, "NOUN", flist.Items[0].POS)
}

func TestPOSStats(t *testing.T) {
	srv, _ := newTestService()
	t1 := textOf(corpus.LangEnglish, []*corpus.Sentence{sentence("a", "b", "c", ".")})
	sctx := session.NewContext([]*corpus.Text{t1}, session.ModeMerged, 1000)
	ans, err := srv.GetPOSStats(context.Background(), sctx, TagsetXPOS)
	require.NoError(t, err)
	stats := ans.(*results.POSStats)
	assert.Equal(t, 4, stats.Base)
	require.Len(t, stats.Items, 2)
	assert.Equal(t, "xNOUN", stats.Items[0].Tag)
	assert.Equal(t, 3, stats.Items[0].Freq)
	assert.InDelta(t, 0.75, stats.Items[0].Ratio, 1e-9)
}
