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
)

// TextFacts contains counts of all units of a text so any feature
// can be evaluated for any scope without touching the tokens again.
type TextFacts struct {
	TextID     string            `json:"textId"`
	Lang       corpus.Language   `json:"lang"`
	Metadata   map[string]string `json:"metadata"`
	Sentences  []*Counts         `json:"sentences"`
	Paragraphs []*Counts         `json:"paragraphs"`
	Total      *Counts           `json:"total"`

	// WordLengths contains lengths (in characters) of all non-punctuation
	// tokens in text order
	WordLengths []int `json:"wordLengths"`
}

// UnitValues evaluates a feature for each unit of the feature's
// unit level (e.g. each sentence).
func (tf *TextFacts) UnitValues(desc *features.Descriptor, params Params) []Value {
	switch desc.Unit {
	case features.UnitToken:
		if desc.ID == features.WordLength {
			ans := make([]Value, len(tf.WordLengths))
			for i, v := range tf.WordLengths {
				ans[i] = Val(float64(v))
			}
			return ans
		}
		return []Value{ComputeFeature(desc.ID, tf.Total, params)}
	case features.UnitSentence:
		return computeUnits(desc.ID, tf.Sentences, params)
	case features.UnitParagraph:
		return computeUnits(desc.ID, tf.Paragraphs, params)
	default:
		return []Value{ComputeFeature(desc.ID, tf.Total, params)}
	}
}

func computeUnits(id features.ID, units []*Counts, params Params) []Value {
	ans := make([]Value, len(units))
	for i, u := range units {
		ans[i] = ComputeFeature(id, u, params)
	}
	return ans
}
