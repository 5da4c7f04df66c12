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

package session

import (
	"lingstat/corpus"
)

// Context is an immutable snapshot of a session's selection
// passed to queries. Texts are shared with the session but
// they are never mutated once loaded.
type Context struct {
	SessionID string
	Texts     []*corpus.Text
	Selection Selection
}

func (c *Context) IsEmpty() bool {
	return c == nil || len(c.Texts) == 0
}

func (c *Context) Mode() Mode {
	return c.Selection.Mode
}

func (c *Context) IncscBase() float64 {
	return c.Selection.IncscBase
}

// Languages returns languages of selected texts in the order
// of their first occurrence
func (c *Context) Languages() []corpus.Language {
	var ans []corpus.Language
	seen := make(map[corpus.Language]bool)
	for _, t := range c.Texts {
		if !seen[t.Lang] {
			seen[t.Lang] = true
			ans = append(ans, t.Lang)
		}
	}
	return ans
}

// TextsOf returns selected texts of a specified language
func (c *Context) TextsOf(lang corpus.Language) []*corpus.Text {
	var ans []*corpus.Text
	for _, t := range c.Texts {
		if t.Lang == lang {
			ans = append(ans, t)
		}
	}
	return ans
}

// NewContext creates a context out of an explicit list of texts
// (e.g. for batch processing without a session)
func NewContext(texts []*corpus.Text, mode Mode, incscBase float64) *Context {
	return &Context{
		Texts: texts,
		Selection: Selection{
			Excluded:       make(map[string]bool),
			MetadataFilter: make(map[string][]string),
			Mode:           mode,
			IncscBase:      incscBase,
		},
	}
}
