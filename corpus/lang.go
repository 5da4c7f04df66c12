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
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a text language which in turn selects
// a variant of the feature catalogue.
type Language string

const (
	LangEnglish Language = "en"
	LangSwedish Language = "sv"
)

func (lang Language) String() string {
	return string(lang)
}

// Tag returns a BCP 47 tag used for language-aware
// case folding.
func (lang Language) Tag() language.Tag {
	switch lang {
	case LangSwedish:
		return language.Swedish
	default:
		return language.English
	}
}

func (lang Language) Validate() error {
	if lang != LangEnglish && lang != LangSwedish {
		return merror.UnsupportedLanguageError{Lang: string(lang)}
	}
	return nil
}

// ParseLanguage accepts both short codes and a few
// common long names (e.g. "swedish", "sv-SE").
func ParseLanguage(v string) (Language, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if i := strings.IndexAny(v, "-_"); i > 0 {
		v = v[:i]
	}
	switch v {
	case "en", "eng", "english":
		return LangEnglish, nil
	case "sv", "swe", "swedish":
		return LangSwedish, nil
	}
	return "", merror.UnsupportedLanguageError{Lang: v}
}

var SupportedLanguages = []Language{LangEnglish, LangSwedish}
