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
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"lingstat/merror"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Paragraph struct {
	Sentences []*Sentence `json:"sentences"`
}

func (p *Paragraph) NumTokens() int {
	var ans int
	for _, s := range p.Sentences {
		ans += s.Len()
	}
	return ans
}

// Text is a single annotated document. Texts own their paragraphs,
// sentences and tokens exclusively.
type Text struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Lang       Language          `json:"lang"`
	Metadata   map[string]string `json:"metadata"`
	Paragraphs []*Paragraph      `json:"paragraphs"`
}

func NewText(lang Language) *Text {
	return &Text{
		ID:       uuid.New().String(),
		Lang:     lang,
		Metadata: make(map[string]string),
	}
}

func (t *Text) NumSentences() int {
	var ans int
	for _, p := range t.Paragraphs {
		ans += len(p.Sentences)
	}
	return ans
}

func (t *Text) NumTokens() int {
	var ans int
	for _, p := range t.Paragraphs {
		ans += p.NumTokens()
	}
	return ans
}

// ForEachSentence calls fn for each sentence with its
// zero-based index within the whole text.
func (t *Text) ForEachSentence(fn func(idx int, s *Sentence) error) error {
	var idx int
	for _, p := range t.Paragraphs {
		for _, s := range p.Sentences {
			if err := fn(idx, s); err != nil {
				return err
			}
			idx++
		}
	}
	return nil
}

// Validate checks the whole text and returns either
// merror.MalformedAnnotationError or merror.MalformedDependencyTreeError
// with the index of the first offending sentence.
func (t *Text) Validate() error {
	if err := t.Lang.Validate(); err != nil {
		return err
	}
	if t.NumSentences() == 0 {
		return merror.MalformedAnnotationError{TextID: t.ID, Sentence: -1, Msg: "text contains no sentences"}
	}
	return t.ForEachSentence(func(idx int, s *Sentence) error {
		err := s.Validate()
		var treeErr TreeError
		if errors.As(err, &treeErr) {
			return merror.MalformedDependencyTreeError{
				TextID:   t.ID,
				Sentence: idx,
				Token:    treeErr.Token,
				Msg:      treeErr.Msg,
			}

		} else if err != nil {
			return merror.MalformedAnnotationError{TextID: t.ID, Sentence: idx, Msg: err.Error()}
		}
		return nil
	})
}

// MatchesMetadata tests whether all the filter keys are present
// in text metadata with one of the allowed values.
func (t *Text) MatchesMetadata(filter map[string][]string) bool {
	for k, allowed := range filter {
		if len(allowed) == 0 {
			continue
		}
		v, ok := t.Metadata[k]
		if !ok {
			return false
		}
		var found bool
		for _, a := range allowed {
			if a == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Checksum identifies text contents (annotation included).
// It is used as a cache key for computed facts.
func (t *Text) Checksum() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s\n", t.Lang)
	keys := make([]string, 0, len(t.Metadata))
	for k := range t.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\n", k, t.Metadata[k])
	}
	for _, p := range t.Paragraphs {
		h.Write([]byte("<p>\n"))
		for _, s := range p.Sentences {
			h.Write([]byte("<s>\n"))
			for _, tok := range s.Tokens {
				fmt.Fprintf(
					h, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%t\t%t\n",
					tok.Position, tok.Form, tok.Norm, tok.Lemma, tok.UPos, tok.XPos,
					tok.Feats.String(), tok.Head, tok.Deprel, tok.SpellingError, tok.CompoundError,
				)
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Summary provides basic info about a text for listings.
type Summary struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Lang         Language          `json:"lang"`
	Metadata     map[string]string `json:"metadata"`
	NumTokens    int               `json:"numTokens"`
	NumSentences int               `json:"numSentences"`
	Preview      string            `json:"preview"`
}

const previewMaxTokens = 12

func (t *Text) Summary() Summary {
	var preview []string
	if len(t.Paragraphs) > 0 && len(t.Paragraphs[0].Sentences) > 0 {
		for _, tok := range t.Paragraphs[0].Sentences[0].Tokens {
			if len(preview) == previewMaxTokens {
				preview = append(preview, "...")
				break
			}
			preview = append(preview, tok.Form)
		}
	}
	return Summary{
		ID:           t.ID,
		Title:        t.Title,
		Lang:         t.Lang,
		Metadata:     t.Metadata,
		NumTokens:    t.NumTokens(),
		NumSentences: t.NumSentences(),
		Preview:      strings.Join(preview, " "),
	}
}
