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

package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = "# lemma\tupos\tcefr\twpm\n" +
	"hus\tNOUN\tA1\t312.5\n" +
	"skriva\tVERB\tA2\t120\n" +
	"betrakta\tVERB\tC1\t_\n"

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleList))
	require.NoError(t, err)
	assert.Equal(t, 3, list.Size())
	e, ok := list.Lookup("hus", "NOUN")
	assert.True(t, ok)
	assert.Equal(t, LevelA1, e.Level)
	assert.InDelta(t, 312.5, e.WPM, 0.0001)

	e, ok = list.Lookup("Betrakta", "VERB")
	assert.True(t, ok)
	assert.Equal(t, LevelC1, e.Level)
	assert.Equal(t, 0.0, e.WPM)

	_, ok = list.Lookup("hus", "VERB")
	assert.False(t, ok)
}

func TestParseInvalidLevel(t *testing.T) {
	_, err := Parse(strings.NewReader("hus\tNOUN\tD7\n"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lev, err := ParseLevel("b2")
	assert.NoError(t, err)
	assert.Equal(t, LevelB2, lev)
	lev, err = ParseLevel("6")
	assert.NoError(t, err)
	assert.Equal(t, LevelC2, lev)
	assert.True(t, LevelB2.IsDifficult())
	assert.False(t, LevelB1.IsDifficult())
	assert.Equal(t, "C1", LevelC1.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kelly.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0644))
	list, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Size())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)

	list, err = LoadFile("")
	assert.NoError(t, err)
	assert.Equal(t, 0, list.Size())
}

func TestNilListLookup(t *testing.T) {
	var list *List
	_, ok := list.Lookup("a", "NOUN")
	assert.False(t, ok)
}
