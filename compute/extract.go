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
	"errors"
	"fmt"
	"lingstat/corpus"
	"lingstat/merror"
	"lingstat/wordlist"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexicon is a CEFR/frequency dictionary
type Lexicon interface {
	Lookup(lemma, upos string) (wordlist.Entry, bool)
}

// SyllableCounter provides a (language-specific) number
// of syllables of a word
type SyllableCounter interface {
	Count(word string) int
}

const polysyllableMin = 3

var (
	modifierDeprels    = []string{"nmod", "appos", "nummod", "advmod", "discourse", "amod"}
	subordinateDeprels = []string{"csubj", "xcomp", "ccomp", "advcl", "acl"}
)

func containsStr(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

// xposHas tests whether a composite XPOS tag (e.g. VB|PRS|AKT or
// VB.PRS.AKT) contains a specified item
func xposHas(xpos, item string) bool {
	for _, v := range strings.FieldsFunc(xpos, func(r rune) bool { return r == '|' || r == '.' }) {
		if v == item {
			return true
		}
	}
	return false
}

// Extractor turns annotated sentences into Counts. It is safe
// for concurrent use once created.
type Extractor struct {
	lexicons          map[corpus.Language]Lexicon
	syllableCounters  map[corpus.Language]SyllableCounter
	longArcThreshold  int
	longWordThreshold int
}

// Params returns a string identifying extraction parameters
// (used along with text checksums as a cache key)
func (ex *Extractor) Params() string {
	return fmt.Sprintf("arcs:%d;words:%d", ex.longArcThreshold, ex.longWordThreshold)
}

func (ex *Extractor) lexicon(lang corpus.Language) Lexicon {
	return ex.lexicons[lang]
}

func (ex *Extractor) syllableCounter(lang corpus.Language) SyllableCounter {
	return ex.syllableCounters[lang]
}

// extractVerbForms counts each verb form independently. Participles
// are recognized by features regardless of UPOS (Swedish participles
// are often tagged as ADJ).
func (ex *Extractor) extractVerbForms(tok *corpus.Token, c *Counts) {
	if tok.UPos == corpus.UPosAux {
		c.ModalVerbs++
	}
	isPart := tok.Feats.Has("VerbForm", "Part")
	isFin := tok.Feats.Has("VerbForm", "Fin")
	if isPart && tok.Feats.Has("Tense", "Pres") {
		c.PresParticiples++
	}
	if isPart && tok.Feats.Has("Tense", "Past") {
		c.PastParticiples++
	}
	if isFin && tok.Feats.Has("Tense", "Pres") || xposHas(tok.XPos, "PRS") ||
		tok.XPos == "VBP" || tok.XPos == "VBZ" {
		c.PresVerbs++
	}
	if isFin && tok.Feats.Has("Tense", "Past") || xposHas(tok.XPos, "PRT") || tok.XPos == "VBD" {
		c.PastVerbs++
	}
	if tok.Feats.Has("VerbForm", "Sup") || xposHas(tok.XPos, "SUP") {
		c.SupineVerbs++
	}
	if tok.UPos == corpus.UPosVerb && strings.HasSuffix(strings.ToLower(tok.Form), "s") {
		c.SVerbs++
	}
}

func (ex *Extractor) extractLexical(lang corpus.Language, tok *corpus.Token, c *Counts) {
	if tok.IsPunct() {
		return
	}
	entry, ok := ex.lexicon(lang).Lookup(tok.Lemma, tok.UPos)
	if !ok {
		c.OutOfList++
		return
	}
	if entry.Level.Validate() == nil {
		c.CEFR[entry.Level]++
		if entry.Level.IsDifficult() && (tok.UPos == corpus.UPosNoun || tok.UPos == corpus.UPosVerb) {
			c.DifficultNounVerb++
		}
	}
	if entry.WPM > 0 {
		c.LogWPMSum += math.Log(entry.WPM)
		c.LogWPMCount++
	}
}

func (ex *Extractor) extractToken(lang corpus.Language, tok *corpus.Token, c *Counts) {
	c.Tokens++
	c.UPos[tok.UPos]++
	word := tok.Word()
	c.Types[corpus.TypeKey(lang, word)]++
	if tok.SpellingError {
		c.SpellingErrors++
	}
	if tok.CompoundError {
		c.CompoundErrors++
	}
	if !tok.IsPunct() {
		c.Words++
		wl := utf8.RuneCountInString(word)
		c.Chars += wl
		if wl > ex.longWordThreshold {
			c.LongWords++
		}
		syl := ex.syllableCounter(lang).Count(word)
		c.Syllables += syl
		if syl >= polysyllableMin {
			c.Polysyllables++
		}
	}
	ex.extractVerbForms(tok, c)
	ex.extractLexical(lang, tok, c)
	switch tok.UPos {
	case corpus.UPosPron:
		if tok.Feats.Has("Number", "Sing") && !tok.Feats.Has("Person", "1") &&
			!tok.Feats.Has("Person", "2") {
			c.ThirdSgPronouns++
		}
	case corpus.UPosNoun:
		if tok.Feats.Has("Gender", "Neut") {
			c.NeuterNouns++
		}
	}
	if tok.Feats.Has("PronType", "Rel") || tok.Feats.Has("PronType", "Int") {
		c.RelPronouns++
	}
}

// countLongArcs counts distinct segments of root paths consisting
// of at least `threshold` arcs (threshold + 1 nodes, the artificial
// root included).
func (ex *Extractor) countLongArcs(s *corpus.Sentence) int {
	minNodes := ex.longArcThreshold + 1
	segments := make(map[string]struct{})
	var key strings.Builder
	for _, tok := range s.Tokens {
		path := s.RootPath(tok.Position)
		for size := minNodes; size <= len(path); size++ {
			for i := 0; i+size <= len(path); i++ {
				key.Reset()
				for _, p := range path[i : i+size] {
					key.WriteString(strconv.Itoa(p))
					key.WriteByte(',')
				}
				segments[key.String()] = struct{}{}
			}
		}
	}
	return len(segments)
}

func (ex *Extractor) extractSyntactic(s *corpus.Sentence, c *Counts) error {
	for _, tok := range s.Tokens {
		if tok.Head == tok.Position {
			return corpus.TreeError{Token: tok.Position, Msg: "self-loop"}
		}
	}
	children := s.Children()
	subordinate := make(map[int]struct{})
	relative := make(map[int]struct{})
	prepComp := make(map[int]struct{})
	for _, tok := range s.Tokens {
		if tok.IsRoot() {
			continue
		}
		c.Arcs++
		c.DepLengthSum += tok.DepLength()
		if tok.Head < tok.Position {
			c.RightArcs++

		} else {
			c.LeftArcs++
		}
		deprel := tok.BaseDeprel()
		if containsStr(modifierDeprels, deprel) {
			if tok.Position < tok.Head {
				c.PreModifiers++

			} else {
				c.PostModifiers++
			}
		}
		if containsStr(subordinateDeprels, deprel) {
			for _, d := range corpus.Descendants(children, tok.Position) {
				subordinate[d] = struct{}{}
			}
		}
		if strings.Contains(tok.Deprel, "rel") {
			relative[tok.Position] = struct{}{}
			for _, d := range corpus.Descendants(children, tok.Position) {
				relative[d] = struct{}{}
			}
		}
		if deprel == "case" && tok.Head > 0 {
			prepComp[tok.Head] = struct{}{}
			for _, d := range corpus.Descendants(children, tok.Head) {
				prepComp[d] = struct{}{}
			}
		}
	}
	c.SubordinateNodes = len(subordinate)
	c.RelativeNodes = len(relative)
	c.PrepCompNodes = len(prepComp)
	c.LongestPath = s.LongestPath()
	c.LongArcs = ex.countLongArcs(s)
	return nil
}

// SentenceCounts extracts counts of a single sentence. The sentence
// is expected to be validated. An observed self-loop produces
// corpus.TreeError.
func (ex *Extractor) SentenceCounts(lang corpus.Language, s *corpus.Sentence) (*Counts, error) {
	ans := NewCounts()
	ans.Sentences = 1
	for _, tok := range s.Tokens {
		ex.extractToken(lang, tok, ans)
	}
	if err := ex.extractSyntactic(s, ans); err != nil {
		return nil, err
	}
	return ans, nil
}

// TextFacts extracts counts of all the sentences and paragraphs
// of a text.
func (ex *Extractor) TextFacts(txt *corpus.Text) (*TextFacts, error) {
	if err := txt.Lang.Validate(); err != nil {
		return nil, err
	}
	ans := &TextFacts{
		TextID:   txt.ID,
		Lang:     txt.Lang,
		Metadata: txt.Metadata,
		Total:    NewCounts(),
	}
	var sentIdx int
	for _, par := range txt.Paragraphs {
		parCounts := NewCounts()
		parCounts.Paragraphs = 1
		for _, sent := range par.Sentences {
			sc, err := ex.SentenceCounts(txt.Lang, sent)
			if err != nil {
				var treeErr corpus.TreeError
				if errors.As(err, &treeErr) {
					return nil, merror.MalformedDependencyTreeError{
						TextID:   txt.ID,
						Sentence: sentIdx,
						Token:    treeErr.Token,
						Msg:      treeErr.Msg,
					}
				}
				return nil, err
			}
			for _, tok := range sent.Tokens {
				if !tok.IsPunct() {
					ans.WordLengths = append(ans.WordLengths, utf8.RuneCountInString(tok.Word()))
				}
			}
			ans.Sentences = append(ans.Sentences, sc)
			parCounts.Merge(sc)
			sentIdx++
		}
		ans.Paragraphs = append(ans.Paragraphs, parCounts)
		ans.Total.Merge(parCounts)
	}
	return ans, nil
}

// NewExtractor creates an extractor. Languages without a lexicon
// get an empty one (all lemmas out of list), languages without
// a syllable counter a trivial one-syllable-per-word counter.
func NewExtractor(
	conf *Conf,
	lexicons map[corpus.Language]Lexicon,
	syllableCounters map[corpus.Language]SyllableCounter,
) *Extractor {
	ans := &Extractor{
		lexicons:          make(map[corpus.Language]Lexicon),
		syllableCounters:  make(map[corpus.Language]SyllableCounter),
		longArcThreshold:  conf.LongArcThreshold,
		longWordThreshold: conf.LongWordThreshold,
	}
	if ans.longArcThreshold <= 0 {
		ans.longArcThreshold = DfltLongArcThreshold
	}
	if ans.longWordThreshold <= 0 {
		ans.longWordThreshold = DfltLongWordThreshold
	}
	for _, lang := range corpus.SupportedLanguages {
		if lex, ok := lexicons[lang]; ok && lex != nil {
			ans.lexicons[lang] = lex

		} else {
			ans.lexicons[lang] = wordlist.NewList()
		}
		if sc, ok := syllableCounters[lang]; ok && sc != nil {
			ans.syllableCounters[lang] = sc

		} else {
			ans.syllableCounters[lang] = monosyllabic{}
		}
	}
	return ans
}

type monosyllabic struct{}

func (m monosyllabic) Count(word string) int {
	return 1
}
