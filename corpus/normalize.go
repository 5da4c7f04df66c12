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
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	foldersMu sync.Mutex
	folders   = make(map[Language]cases.Caser)
)

// TypeKey returns a key identifying a word type. Two tokens are of
// the same type iff their normalized words are equal after NFC
// normalization and language-aware lowercasing.
func TypeKey(lang Language, word string) string {
	// cases.Caser is stateful and cannot be shared between goroutines
	foldersMu.Lock()
	c, ok := folders[lang]
	if !ok {
		c = cases.Lower(lang.Tag())
		folders[lang] = c
	}
	ans := c.String(norm.NFC.String(word))
	foldersMu.Unlock()
	return ans
}

// NormalizeAttr returns an attribute value in NFC form with
// the empty placeholder mapped to an empty string.
func NormalizeAttr(v string) string {
	if v == EmptyValue {
		return ""
	}
	return norm.NFC.String(v)
}
