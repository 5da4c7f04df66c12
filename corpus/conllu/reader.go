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

// Package conllu reads texts annotated in the CoNLL-U format.
//
// Besides the standard columns, the reader understands a few
// document level comments:
//
//	# newdoc id = <text id>
//	# newpar
//	# title = <text title>
//	# meta <key> = <value>
//
// and the MISC keys Norm=<normalized form>, SpellErr=Yes and CompoundErr=Yes.
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"lingstat/corpus"
	"os"
	"strconv"
	"strings"
)

const (
	numColumns     = 10
	readBufferSize = 16384

	colID     = 0
	colForm   = 1
	colLemma  = 2
	colUPos   = 3
	colXPos   = 4
	colFeats  = 5
	colHead   = 6
	colDeprel = 7
	colMisc   = 9
)

func parseComment(b *corpus.Builder, line string) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, value, hasValue := strings.Cut(body, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	switch {
	case key == "newdoc" || key == "newdoc id":
		b.StartText(value)
	case key == "newpar" || strings.HasPrefix(key, "newpar "):
		b.StartParagraph()
	case key == "title" && hasValue:
		b.CurrentText().Title = value
	case strings.HasPrefix(key, "meta ") && hasValue:
		b.CurrentText().Metadata[strings.TrimSpace(key[5:])] = value
	}
}

func parseMisc(tok *corpus.Token, misc string) {
	if misc == corpus.EmptyValue {
		return
	}
	for _, item := range strings.Split(misc, "|") {
		k, v, _ := strings.Cut(item, "=")
		switch k {
		case "Norm":
			tok.Norm = corpus.NormalizeAttr(v)
		case "SpellErr":
			tok.SpellingError = v == "Yes"
		case "CompoundErr":
			tok.CompoundError = v == "Yes"
		}
	}
}

// parseRow returns nil token (and nil error) for multiword
// token ranges and empty nodes which are not part of the tree
func parseRow(record []string) (*corpus.Token, error) {
	if len(record) != numColumns {
		return nil, fmt.Errorf("expected %d columns, found %d", numColumns, len(record))
	}
	if strings.ContainsAny(record[colID], "-.") {
		return nil, nil
	}
	pos, err := strconv.Atoi(record[colID])
	if err != nil {
		return nil, fmt.Errorf("invalid token id %s", record[colID])
	}
	if record[colHead] == corpus.EmptyValue {
		return nil, fmt.Errorf("missing head of token %d", pos)
	}
	head, err := strconv.Atoi(record[colHead])
	if err != nil {
		return nil, fmt.Errorf("invalid head %s of token %d", record[colHead], pos)
	}
	tok := &corpus.Token{
		Position: pos,
		Form:     corpus.NormalizeAttr(record[colForm]),
		Lemma:    corpus.NormalizeAttr(record[colLemma]),
		UPos:     corpus.NormalizeAttr(record[colUPos]),
		XPos:     corpus.NormalizeAttr(record[colXPos]),
		Feats:    corpus.ParseMorphFeats(record[colFeats]),
		Head:     head,
		Deprel:   corpus.NormalizeAttr(record[colDeprel]),
	}
	parseMisc(tok, record[colMisc])
	return tok, nil
}

// Read parses a CoNLL-U stream. Texts are separated by `# newdoc`
// comments; a stream without them is considered a single text.
// Only I/O errors are returned as an error, annotation errors
// are reported per text via corpus.Ingested.Rejected.
func Read(reader io.Reader, lang corpus.Language) (*corpus.Ingested, error) {
	b := corpus.NewBuilder(lang)
	scanner := bufio.NewScanner(bufio.NewReaderSize(reader, readBufferSize))
	scanner.Buffer(make([]byte, readBufferSize), 1024*1024)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			b.EndSentence()
			continue
		}
		if line[0] == '#' {
			parseComment(b, line)
			continue
		}
		tok, err := parseRow(strings.Split(line, "\t"))
		if err != nil {
			b.Fail(lineNum, err.Error())
			continue
		}
		if tok != nil {
			b.AddToken(tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CoNLL-U data: %w", err)
	}
	return b.Finish(), nil
}

// ReadFile is a file-based variant of Read
func ReadFile(path string, lang corpus.Language) (*corpus.Ingested, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CoNLL-U file %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, lang)
}
