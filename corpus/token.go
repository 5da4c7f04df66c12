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
	"sort"
	"strings"
)

const (
	UPosPunct = "PUNCT"
	UPosVerb  = "VERB"
	UPosAux   = "AUX"
	UPosNoun  = "NOUN"
	UPosPron  = "PRON"

	// EmptyValue is the CoNLL-U style placeholder for
	// a missing attribute value
	EmptyValue = "_"
)

// MorphFeats is a morphological feature bundle
// (e.g. Tense=Past|VerbForm=Part).
type MorphFeats map[string]string

// Has tests whether the bundle contains a feature
// with the specified value. Multi-valued features (Int,Rel)
// are matched item by item.
func (mf MorphFeats) Has(key, value string) bool {
	v, ok := mf[key]
	if !ok {
		return false
	}
	if v == value {
		return true
	}
	for _, item := range strings.Split(v, ",") {
		if item == value {
			return true
		}
	}
	return false
}

func (mf MorphFeats) String() string {
	if len(mf) == 0 {
		return EmptyValue
	}
	items := make([]string, 0, len(mf))
	for k, v := range mf {
		items = append(items, k+"="+v)
	}
	sort.Strings(items)
	return strings.Join(items, "|")
}

// ParseMorphFeats parses a `|` separated list of `key=value` pairs.
// Items without a value are kept with an empty value so no information
// provided by an annotation tool is lost.
func ParseMorphFeats(s string) MorphFeats {
	ans := make(MorphFeats)
	if s == "" || s == EmptyValue {
		return ans
	}
	for _, item := range strings.Split(s, "|") {
		if item == "" {
			continue
		}
		kv := strings.SplitN(item, "=", 2)
		if len(kv) == 2 {
			if prev, ok := ans[kv[0]]; ok {
				ans[kv[0]] = prev + "," + kv[1]

			} else {
				ans[kv[0]] = kv[1]
			}

		} else {
			ans[kv[0]] = ""
		}
	}
	return ans
}

// Token is a single annotated token as provided by an external
// annotation tool.
type Token struct {

	// Position is a 1-based index within a sentence
	Position int `json:"position"`

	Form string `json:"form"`

	// Norm is a normalized (spelling corrected) form. Empty
	// value means "same as form".
	Norm string `json:"norm"`

	Lemma string `json:"lemma"`

	UPos string `json:"upos"`

	XPos string `json:"xpos"`

	Feats MorphFeats `json:"feats"`

	// Head is a position of the governing token; 0 means root
	Head int `json:"head"`

	Deprel string `json:"deprel"`

	SpellingError bool `json:"spellingError"`

	CompoundError bool `json:"compoundError"`
}

// Word returns the normalized form if available, the original form
// otherwise.
func (t *Token) Word() string {
	if t.Norm != "" && t.Norm != EmptyValue {
		return t.Norm
	}
	return t.Form
}

func (t *Token) IsPunct() bool {
	return t.UPos == UPosPunct
}

func (t *Token) IsRoot() bool {
	return t.Head == 0
}

// DepLength is the linear distance between the token
// and its head. Root tokens have zero dependency length.
func (t *Token) DepLength() int {
	if t.Head == 0 {
		return 0
	}
	if t.Position > t.Head {
		return t.Position - t.Head
	}
	return t.Head - t.Position
}

// BaseDeprel strips a language-specific subtype
// (e.g. `acl:relcl` => `acl`).
func (t *Token) BaseDeprel() string {
	if i := strings.IndexByte(t.Deprel, ':'); i > 0 {
		return t.Deprel[:i]
	}
	return t.Deprel
}
