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

	"github.com/rs/zerolog/log"
)

// Ingested contains texts accepted by an input reader along
// with errors of the rejected ones. A rejected text never prevents
// its siblings from being loaded.
type Ingested struct {
	Texts    []*Text
	Rejected []error
}

// Builder assembles texts from a stream of structural events
// produced by input format readers.
type Builder struct {
	lang     Language
	texts    []*Text
	curr     *Text
	currPar  *Paragraph
	currSent *Sentence
	failures map[*Text]error
}

func NewBuilder(lang Language) *Builder {
	return &Builder{
		lang:     lang,
		failures: make(map[*Text]error),
	}
}

// StartText closes any open text and starts a new one. An empty
// id is replaced by a generated one.
func (b *Builder) StartText(id string) *Text {
	b.EndText()
	b.curr = NewText(b.lang)
	if id != "" {
		b.curr.ID = id
	}
	b.texts = append(b.texts, b.curr)
	return b.curr
}

// CurrentText returns an open text creating one if necessary
func (b *Builder) CurrentText() *Text {
	if b.curr == nil {
		b.StartText("")
	}
	return b.curr
}

func (b *Builder) StartParagraph() {
	b.EndSentence()
	txt := b.CurrentText()
	if b.currPar != nil && len(b.currPar.Sentences) == 0 {
		return
	}
	b.currPar = &Paragraph{}
	txt.Paragraphs = append(txt.Paragraphs, b.currPar)
}

func (b *Builder) StartSentence() {
	b.EndSentence()
	if b.currPar == nil {
		b.StartParagraph()
	}
	b.currSent = &Sentence{}
}

func (b *Builder) AddToken(tok *Token) {
	if b.currSent == nil {
		b.StartSentence()
	}
	b.currSent.Tokens = append(b.currSent.Tokens, tok)
}

// CurrentSentenceIdx returns a zero-based index of the sentence
// being built (or the one to be built next) within the current text.
func (b *Builder) CurrentSentenceIdx() int {
	if b.curr == nil {
		return -1
	}
	return b.curr.NumSentences()
}

func (b *Builder) EndSentence() {
	if b.currSent == nil {
		return
	}
	if len(b.currSent.Tokens) > 0 {
		b.currPar.Sentences = append(b.currPar.Sentences, b.currSent)
	}
	b.currSent = nil
}

func (b *Builder) EndParagraph() {
	b.EndSentence()
	b.currPar = nil
}

func (b *Builder) EndText() {
	b.EndParagraph()
	if b.curr != nil {
		var pars []*Paragraph
		for _, p := range b.curr.Paragraphs {
			if len(p.Sentences) > 0 {
				pars = append(pars, p)
			}
		}
		b.curr.Paragraphs = pars
	}
	b.curr = nil
}

// Fail marks the current text as malformed. Only the first
// failure of a text is kept.
func (b *Builder) Fail(line int, msg string) {
	txt := b.CurrentText()
	if _, ok := b.failures[txt]; ok {
		return
	}
	b.failures[txt] = merror.MalformedAnnotationError{
		TextID:   txt.ID,
		Sentence: b.CurrentSentenceIdx(),
		Line:     line,
		Msg:      msg,
	}
}

// Finish closes all open structures and validates the texts
func (b *Builder) Finish() *Ingested {
	b.EndText()
	ans := &Ingested{Texts: make([]*Text, 0, len(b.texts))}
	for _, txt := range b.texts {
		err, failed := b.failures[txt]
		if !failed {
			err = txt.Validate()
		}
		if err != nil {
			log.Warn().Err(err).Str("textId", txt.ID).Msg("rejecting malformed text")
			ans.Rejected = append(ans.Rejected, err)
			continue
		}
		ans.Texts = append(ans.Texts, txt)
	}
	return ans
}
