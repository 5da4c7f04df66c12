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

package vert

import (
	"lingstat/corpus"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<doc id="t1" title="Letter" grade="5">
<p>
<s>
Jag	jag	jag	PRON	PN	Case=Nom	1	2	nsubj
skrev	skrev	skriva	VERB	VB	Tense=Past	2	0	root
brevt	brevet	brev	NOUN	NN	Gender=Neut	3	2	obj	SpellErr=Yes
</s>
</p>
</doc>
<doc id="t2">
<p>
<s>
Hej	hej	hej	INTJ	IN	_	1	1	root
</s>
</p>
</doc>
`

func TestReadVertical(t *testing.T) {
	ing, err := Read(strings.NewReader(sample), corpus.LangSwedish)
	require.NoError(t, err)
	require.Len(t, ing.Texts, 1)
	require.Len(t, ing.Rejected, 1)

	txt := ing.Texts[0]
	assert.Equal(t, "t1", txt.ID)
	assert.Equal(t, "Letter", txt.Title)
	assert.Equal(t, "5", txt.Metadata["grade"])
	require.Equal(t, 1, txt.NumSentences())
	tok := txt.Paragraphs[0].Sentences[0].Tokens[2]
	assert.Equal(t, "brevt", tok.Form)
	assert.Equal(t, "brevet", tok.Word())
	assert.True(t, tok.SpellingError)
	assert.Equal(t, 2, tok.Head)
}
