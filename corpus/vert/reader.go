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

// Package vert reads texts from corpus vertical files.
//
// Expected structures are <doc> (a text; attributes `id` and `title`
// are recognized, the rest is stored as metadata), <p> and <s>.
// Token columns are: word, norm, lemma, upos, xpos, feats, id, head,
// deprel and an optional misc column with CoNLL-U style flags.
package vert

import (
	"fmt"
	"io"
	"lingstat/corpus"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
)

const (
	structDoc       = "doc"
	structParagraph = "p"
	structSentence  = "s"

	// column indices below do not include `word` which vertigo
	// provides separately
	colNorm   = 0
	colLemma  = 1
	colUPos   = 2
	colXPos   = 3
	colFeats  = 4
	colID     = 5
	colHead   = 6
	colDeprel = 7
	colMisc   = 8

	minNumAttrs = 8
)

type vertProcessor struct {
	builder *corpus.Builder
}

func (vp *vertProcessor) ProcToken(token *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	if len(token.Attrs) < minNumAttrs {
		vp.builder.Fail(line, fmt.Sprintf("too few token columns (%d)", len(token.Attrs)+1))
		return nil
	}
	pos, err := strconv.Atoi(token.Attrs[colID])
	if err != nil {
		vp.builder.Fail(line, fmt.Sprintf("invalid token id %s", token.Attrs[colID]))
		return nil
	}
	head, err := strconv.Atoi(token.Attrs[colHead])
	if err != nil {
		vp.builder.Fail(line, fmt.Sprintf("invalid head %s of token %d", token.Attrs[colHead], pos))
		return nil
	}
	tok := &corpus.Token{
		Position: pos,
		Form:     corpus.NormalizeAttr(token.Word),
		Norm:     corpus.NormalizeAttr(token.Attrs[colNorm]),
		Lemma:    corpus.NormalizeAttr(token.Attrs[colLemma]),
		UPos:     corpus.NormalizeAttr(token.Attrs[colUPos]),
		XPos:     corpus.NormalizeAttr(token.Attrs[colXPos]),
		Feats:    corpus.ParseMorphFeats(token.Attrs[colFeats]),
		Head:     head,
		Deprel:   corpus.NormalizeAttr(token.Attrs[colDeprel]),
	}
	if len(token.Attrs) > colMisc {
		for _, item := range strings.Split(token.Attrs[colMisc], "|") {
			switch item {
			case "SpellErr=Yes":
				tok.SpellingError = true
			case "CompoundErr=Yes":
				tok.CompoundError = true
			}
		}
	}
	vp.builder.AddToken(tok)
	return nil
}

func (vp *vertProcessor) ProcStruct(strc *vertigo.Structure, line int, err error) error {
	if err != nil {
		return err
	}
	switch strc.Name {
	case structDoc:
		txt := vp.builder.StartText(strc.Attrs["id"])
		for k, v := range strc.Attrs {
			switch k {
			case "id":
			case "title":
				txt.Title = v
			default:
				txt.Metadata[k] = v
			}
		}
	case structParagraph:
		vp.builder.StartParagraph()
	case structSentence:
		vp.builder.StartSentence()
	default:
		log.Debug().Str("name", strc.Name).Int("line", line).Msg("ignoring unknown structure")
	}
	return nil
}

func (vp *vertProcessor) ProcStructClose(strc *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	switch strc.Name {
	case structDoc:
		vp.builder.EndText()
	case structParagraph:
		vp.builder.EndParagraph()
	case structSentence:
		vp.builder.EndSentence()
	}
	return nil
}

// ReadFile parses a vertical file. Only I/O (and vertigo parser)
// errors are returned directly, annotation errors are reported
// per text.
func ReadFile(path string, lang corpus.Language) (*corpus.Ingested, error) {
	pc := &vertigo.ParserConf{
		InputFilePath:         path,
		Encoding:              "utf-8",
		StructAttrAccumulator: "comb",
	}
	proc := &vertProcessor{builder: corpus.NewBuilder(lang)}
	if err := vertigo.ParseVerticalFile(pc, proc); err != nil {
		return nil, fmt.Errorf("failed to parse vertical file %s: %w", path, err)
	}
	return proc.builder.Finish(), nil
}

// Read stores the data into a temporary file and parses it
// (vertigo works with files only).
func Read(reader io.Reader, lang corpus.Language) (*corpus.Ingested, error) {
	tmp, err := os.CreateTemp("", "lingstat-*.vert")
	if err != nil {
		return nil, fmt.Errorf("failed to store vertical data: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to store vertical data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to store vertical data: %w", err)
	}
	return ReadFile(tmp.Name(), lang)
}
