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

// Package syllab contains heuristic syllable counters.
package syllab

import (
	"lingstat/corpus"
	"strings"
)

const (
	englishVowels = "aoueiy"
	swedishVowels = "aoueiyåöä"

	// PolysyllableMin is the minimum number of syllables of
	// a polysyllabic word
	PolysyllableMin = 3
)

// English counts groups of consecutive vowels; a final `e`
// is considered silent. Each word has at least one syllable.
type English struct{}

func (e English) Count(word string) int {
	word = strings.ToLower(word)
	var count int
	prevVowel := false
	for _, c := range word {
		isVowel := strings.ContainsRune(englishVowels, c)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Swedish counts each vowel as a syllable nucleus. The `ou` in
// `journalist` is a known exception.
type Swedish struct{}

func (s Swedish) Count(word string) int {
	word = strings.ToLower(word)
	var count int
	for _, c := range word {
		if strings.ContainsRune(swedishVowels, c) {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	if strings.Contains(word, "journalist") {
		count--
	}
	return count
}

// ForLanguage returns a default counter for a language
func ForLanguage(lang corpus.Language) interface{ Count(string) int } {
	if lang == corpus.LangSwedish {
		return Swedish{}
	}
	return English{}
}
