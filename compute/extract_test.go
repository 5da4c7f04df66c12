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
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/merror"
	"lingstat/wordlist"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(pos int, form, lemma, upos string, head int, deprel string) *corpus.Token {
	return &corpus.Token{
		Position: pos,
		Form:     form,
		Lemma:    lemma,
		UPos:     upos,
		Feats:    make(corpus.MorphFeats),
		Head:     head,
		Deprel:   deprel,
	}
}

func chain(n int) *corpus.Sentence {
	ans := &corpus.Sentence{}
	for i := 1; i <= n; i++ {
		ans.Tokens = append(ans.Tokens, tok(i, "w", "w", "NOUN", i-1, "dep"))
	}
	return ans
}

// "The cat sat on the mat ."
func catSentence() *corpus.Sentence {
	return &corpus.Sentence{
		Tokens: []*corpus.Token{
			tok(1, "The", "the", "DET", 2, "det"),
			tok(2, "cat", "cat", "NOUN", 3, "nsubj"),
			tok(3, "sat", "sit", "VERB", 0, "root"),
			tok(4, "on", "on", "ADP", 6, "case"),
			tok(5, "the", "the", "DET", 6, "det"),
			tok(6, "mat", "mat", "NOUN", 3, "obl"),
			tok(7, ".", ".", "PUNCT", 3, "punct"),
		},
	}
}

func swedishSentence(words ...string) *corpus.Sentence {
	ans := &corpus.Sentence{}
	for i, w := range words {
		head, deprel := 2, "dep"
		if i == 1 {
			head, deprel = 0, "root"
		}
		ans.Tokens = append(ans.Tokens, tok(i+1, w, w, "NOUN", head, deprel))
	}
	return ans
}

func newTestExtractor() *Extractor {
	lex := wordlist.NewList()
	lex.Add("cat", "NOUN", wordlist.Entry{Level: wordlist.LevelA1, WPM: 100})
	lex.Add("sit", "VERB", wordlist.Entry{Level: wordlist.LevelB2, WPM: 10})
	return NewExtractor(
		DefaultConf(),
		map[corpus.Language]Lexicon{corpus.LangEnglish: lex},
		nil,
	)
}

func TestLongArcsOfChains(t *testing.T) {
	ex := newTestExtractor()
	c, err := ex.SentenceCounts(corpus.LangEnglish, chain(4))
	require.NoError(t, err)
	assert.Equal(t, 0, c.LongArcs)

	c, err = ex.SentenceCounts(corpus.LangEnglish, chain(5))
	require.NoError(t, err)
	assert.Equal(t, 1, c.LongArcs)
	assert.Equal(t, 5, c.LongestPath)

	c, err = ex.SentenceCounts(corpus.LangEnglish, chain(6))
	require.NoError(t, err)
	assert.Equal(t, 3, c.LongArcs)
}

func TestSentenceCountsBasic(t *testing.T) {
	ex := newTestExtractor()
	c, err := ex.SentenceCounts(corpus.LangEnglish, catSentence())
	require.NoError(t, err)
	assert.Equal(t, 7, c.Tokens)
	assert.Equal(t, 6, c.Words)
	// "The" and "the" are the same type
	assert.Equal(t, 6, c.NumTypes())
	assert.Equal(t, 2, c.POS("NOUN"))
	assert.Equal(t, 6, c.Arcs)
	assert.Equal(t, 1+1+2+1+3+4, c.DepLengthSum)
	assert.Equal(t, 2, c.RightArcs)
	assert.Equal(t, 4, c.LeftArcs)
	assert.Equal(t, 1, c.CEFRCount(wordlist.LevelA1))
	assert.Equal(t, 1, c.Difficult())
	assert.Equal(t, 1, c.DifficultNounVerb)
	assert.Equal(t, 4, c.OutOfList)
	// "mat" + its dependents "on", "the"
	assert.Equal(t, 3, c.PrepCompNodes)
}

func TestSentenceCountsSelfLoop(t *testing.T) {
	ex := newTestExtractor()
	s := catSentence()
	s.Tokens[1].Head = 2
	_, err := ex.SentenceCounts(corpus.LangEnglish, s)
	var treeErr corpus.TreeError
	require.ErrorAs(t, err, &treeErr)
	assert.Equal(t, 2, treeErr.Token)
}

func TestTextFactsSelfLoopReportsSentence(t *testing.T) {
	ex := newTestExtractor()
	bad := catSentence()
	bad.Tokens[5].Head = 6
	txt := corpus.NewText(corpus.LangEnglish)
	txt.Paragraphs = []*corpus.Paragraph{
		{Sentences: []*corpus.Sentence{catSentence(), bad}},
	}
	_, err := ex.TextFacts(txt)
	var mErr merror.MalformedDependencyTreeError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, 1, mErr.Sentence)
	assert.Equal(t, 6, mErr.Token)
	assert.Equal(t, txt.ID, mErr.TextID)
}

func TestTextFactsUnits(t *testing.T) {
	ex := newTestExtractor()
	txt := corpus.NewText(corpus.LangEnglish)
	txt.Paragraphs = []*corpus.Paragraph{
		{Sentences: []*corpus.Sentence{catSentence(), chain(3)}},
		{Sentences: []*corpus.Sentence{chain(2)}},
	}
	tf, err := ex.TextFacts(txt)
	require.NoError(t, err)
	assert.Len(t, tf.Sentences, 3)
	assert.Len(t, tf.Paragraphs, 2)
	assert.Equal(t, 3, tf.Total.Sentences)
	assert.Equal(t, 2, tf.Total.Paragraphs)
	assert.Equal(t, 12, tf.Total.Tokens)
	assert.Equal(t, 11, len(tf.WordLengths))
	assert.Equal(t, 2, tf.Paragraphs[0].Sentences)
}

func TestTokenCountNotBelowTypeCount(t *testing.T) {
	ex := newTestExtractor()
	for _, s := range []*corpus.Sentence{catSentence(), chain(1), chain(7)} {
		c, err := ex.SentenceCounts(corpus.LangEnglish, s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Tokens, c.NumTypes())
	}
}

func TestVerbForms(t *testing.T) {
	ex := newTestExtractor()
	s := &corpus.Sentence{
		Tokens: []*corpus.Token{
			tok(1, "hon", "hon", "PRON", 3, "nsubj"),
			tok(2, "har", "ha", "AUX", 3, "aux"),
			tok(3, "läst", "läsa", "VERB", 0, "root"),
			tok(4, "hoppas", "hoppas", "VERB", 3, "conj"),
		},
	}
	s.Tokens[1].XPos = "VB|PRS|AKT"
	s.Tokens[2].XPos = "VB|SUP|AKT"
	s.Tokens[3].Feats = corpus.ParseMorphFeats("Tense=Past|VerbForm=Fin")
	c, err := ex.SentenceCounts(corpus.LangSwedish, s)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ModalVerbs)
	assert.Equal(t, 1, c.PresVerbs)
	assert.Equal(t, 1, c.SupineVerbs)
	assert.Equal(t, 1, c.PastVerbs)
	assert.Equal(t, 1, c.SVerbs)
}

func TestVerbFormsCountedIndependently(t *testing.T) {
	ex := newTestExtractor()
	s := &corpus.Sentence{
		Tokens: []*corpus.Token{
			tok(1, "lästa", "läsa", "ADJ", 2, "amod"),
			tok(2, "böcker", "bok", "NOUN", 3, "obj"),
			tok(3, "läses", "läsa", "VERB", 0, "root"),
		},
	}
	s.Tokens[0].Feats = corpus.ParseMorphFeats("Tense=Past|VerbForm=Part")
	s.Tokens[2].XPos = "VB|PRS|SFO"
	s.Tokens[2].Feats = corpus.ParseMorphFeats("Tense=Past|VerbForm=Fin")
	c, err := ex.SentenceCounts(corpus.LangSwedish, s)
	require.NoError(t, err)
	assert.Equal(t, 1, c.PastParticiples)
	assert.Equal(t, 1, c.PresVerbs)
	assert.Equal(t, 1, c.PastVerbs)

	c.UPos[corpus.UPosAux] = 1
	v := ComputeFeature(features.SVerbToVerb, c, Params{IncscBase: 1000})
	assert.InDelta(t, 1000.0, v.V, 1e-9)
}

func TestCountsMerge(t *testing.T) {
	a := NewCounts()
	a.Tokens = 3
	a.LongestPath = 4
	a.Types["a"] = 2
	b := NewCounts()
	b.Tokens = 2
	b.LongestPath = 2
	b.Types["a"] = 1
	b.Types["b"] = 1
	m := MergeCounts(a, b)
	assert.Equal(t, 5, m.Tokens)
	assert.Equal(t, 4, m.LongestPath)
	assert.Equal(t, 2, m.NumTypes())
	assert.Equal(t, 3, m.Types["a"])
}
