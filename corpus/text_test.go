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
	"lingstat/merror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkText(lang Language, sents ...*Sentence) *Text {
	txt := NewText(lang)
	txt.Paragraphs = []*Paragraph{{Sentences: sents}}
	return txt
}

func TestTextValidateReportsSentenceIndex(t *testing.T) {
	txt := mkText(LangSwedish, mkSentence(0, 1), mkSentence(2, 3, 1))
	err := txt.Validate()
	var treeErr merror.MalformedDependencyTreeError
	require.ErrorAs(t, err, &treeErr)
	assert.Equal(t, 1, treeErr.Sentence)
	assert.Equal(t, txt.ID, treeErr.TextID)
}

func TestTextValidateMalformedAnnotation(t *testing.T) {
	txt := mkText(LangEnglish, mkSentence(0, 5))
	var annotErr merror.MalformedAnnotationError
	require.ErrorAs(t, txt.Validate(), &annotErr)
	assert.Equal(t, 0, annotErr.Sentence)
}

func TestTextValidateNoSentences(t *testing.T) {
	txt := NewText(LangEnglish)
	var annotErr merror.MalformedAnnotationError
	assert.ErrorAs(t, txt.Validate(), &annotErr)
}

func TestTextValidateUnsupportedLang(t *testing.T) {
	txt := mkText(Language("de"), mkSentence(0))
	var langErr merror.UnsupportedLanguageError
	assert.ErrorAs(t, txt.Validate(), &langErr)
}

func TestTextCounts(t *testing.T) {
	txt := mkText(LangEnglish, mkSentence(0, 1), mkSentence(0))
	txt.Paragraphs = append(txt.Paragraphs, &Paragraph{Sentences: []*Sentence{mkSentence(0, 1, 1)}})
	assert.Equal(t, 3, txt.NumSentences())
	assert.Equal(t, 6, txt.NumTokens())
}

func TestMatchesMetadata(t *testing.T) {
	txt := mkText(LangEnglish, mkSentence(0))
	txt.Metadata["grade"] = "5"
	txt.Metadata["gender"] = "f"
	assert.True(t, txt.MatchesMetadata(nil))
	assert.True(t, txt.MatchesMetadata(map[string][]string{"grade": {"4", "5"}}))
	assert.False(t, txt.MatchesMetadata(map[string][]string{"grade": {"4"}}))
	assert.False(t, txt.MatchesMetadata(map[string][]string{"school": {"x"}}))
	assert.True(t, txt.MatchesMetadata(map[string][]string{"school": {}}))
}

func TestChecksumIgnoresTextID(t *testing.T) {
	t1 := mkText(LangEnglish, mkSentence(0, 1))
	t2 := mkText(LangEnglish, mkSentence(0, 1))
	assert.NotEqual(t, t1.ID, t2.ID)
	assert.Equal(t, t1.Checksum(), t2.Checksum())
	t2.Paragraphs[0].Sentences[0].Tokens[1].Lemma = "x"
	assert.NotEqual(t, t1.Checksum(), t2.Checksum())
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage("sv-SE")
	assert.NoError(t, err)
	assert.Equal(t, LangSwedish, lang)
	lang, err = ParseLanguage("English")
	assert.NoError(t, err)
	assert.Equal(t, LangEnglish, lang)
	_, err = ParseLanguage("de")
	var langErr merror.UnsupportedLanguageError
	assert.ErrorAs(t, err, &langErr)
}

func TestTypeKey(t *testing.T) {
	assert.Equal(t, "hus", TypeKey(LangSwedish, "Hus"))
	assert.Equal(t, TypeKey(LangSwedish, "Ö"), TypeKey(LangSwedish, "Ö"))
}

func TestParseMorphFeats(t *testing.T) {
	mf := ParseMorphFeats("Tense=Past|VerbForm=Part|PronType=Int,Rel")
	assert.True(t, mf.Has("Tense", "Past"))
	assert.True(t, mf.Has("PronType", "Rel"))
	assert.False(t, mf.Has("Tense", "Pres"))
	assert.Equal(t, "PronType=Int,Rel|Tense=Past|VerbForm=Part", mf.String())
	assert.Empty(t, ParseMorphFeats("_"))
}
