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

package syllab

import (
	"lingstat/corpus"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglish(t *testing.T) {
	var c English
	assert.Equal(t, 1, c.Count("cat"))
	assert.Equal(t, 1, c.Count("make"))
	assert.Equal(t, 3, c.Count("beautiful"))
	assert.Equal(t, 2, c.Count("Reading"))
	assert.Equal(t, 1, c.Count("rhythm"))
	assert.Equal(t, 1, c.Count("e"))
}

func TestSwedish(t *testing.T) {
	var c Swedish
	assert.Equal(t, 1, c.Count("hus"))
	assert.Equal(t, 2, c.Count("flicka"))
	assert.Equal(t, 3, c.Count("Läsare"))
	assert.Equal(t, 3, c.Count("journalist"))
	assert.Equal(t, 1, c.Count("st"))
}

func TestForLanguage(t *testing.T) {
	assert.IsType(t, Swedish{}, ForLanguage(corpus.LangSwedish))
	assert.IsType(t, English{}, ForLanguage(corpus.LangEnglish))
}
