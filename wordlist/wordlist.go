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

// Package wordlist provides CEFR/frequency lexicons (e.g. the Kelly list)
// used by lexical features.
//
// A lexicon file is a tab separated file with columns
// lemma, upos, cefr level (A1..C2) and an optional frequency
// in words per million. Lines starting with `#` are ignored.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// Level is a CEFR level. The zero value means "unknown".
type Level int

const (
	LevelUnknown Level = iota
	LevelA1
	LevelA2
	LevelB1
	LevelB2
	LevelC1
	LevelC2
)

var levelNames = []string{"", "A1", "A2", "B1", "B2", "C1", "C2"}

// AllLevels lists valid levels in ascending order
var AllLevels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (lev Level) String() string {
	if lev < LevelA1 || lev > LevelC2 {
		return "?"
	}
	return levelNames[lev]
}

func (lev Level) Validate() error {
	if lev < LevelA1 || lev > LevelC2 {
		return fmt.Errorf("invalid CEFR level %d", lev)
	}
	return nil
}

// IsDifficult tells whether the level is above B1
func (lev Level) IsDifficult() bool {
	return lev >= LevelB2
}

// ParseLevel accepts both CEFR names (A1, b2, ...) and their
// numeric variants (1..6).
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 1; i < len(levelNames); i++ {
		if s == levelNames[i] || s == strconv.Itoa(i) {
			return Level(i), nil
		}
	}
	return LevelUnknown, fmt.Errorf("invalid CEFR level `%s`", s)
}

type Entry struct {
	Level Level
	// WPM is a frequency in words per million. Zero means
	// "not available".
	WPM float64
}

// List is an in-memory lexicon indexed by lemma and UPOS.
// It is read-only once loaded and safe for concurrent use.
type List struct {
	entries map[string]Entry
}

func mkKey(lemma, upos string) string {
	return lemma + "|" + upos
}

func (list *List) Add(lemma, upos string, entry Entry) {
	list.entries[mkKey(lemma, upos)] = entry
}

// Lookup searches for a lemma-pos pair. If not found, a lowercase
// variant of the lemma is tried too.
func (list *List) Lookup(lemma, upos string) (Entry, bool) {
	if list == nil {
		return Entry{}, false
	}
	ans, ok := list.entries[mkKey(lemma, upos)]
	if !ok {
		ans, ok = list.entries[mkKey(strings.ToLower(lemma), upos)]
	}
	return ans, ok
}

func (list *List) Size() int {
	return len(list.entries)
}

func NewList() *List {
	return &List{entries: make(map[string]Entry)}
}

// Parse reads a lexicon from the TSV format described in the
// package documentation.
func Parse(reader io.Reader) (*List, error) {
	ans := NewList()
	scanner := bufio.NewScanner(reader)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items := strings.Split(line, "\t")
		if len(items) < 3 {
			return nil, fmt.Errorf("invalid wordlist line %d: too few columns", lineNum)
		}
		lev, err := ParseLevel(items[2])
		if err != nil {
			return nil, fmt.Errorf("invalid wordlist line %d: %w", lineNum, err)
		}
		entry := Entry{Level: lev}
		if len(items) > 3 && items[3] != "" && items[3] != "_" {
			entry.WPM, err = strconv.ParseFloat(items[3], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid wordlist line %d: invalid wpm value: %w", lineNum, err)
			}
		}
		ans.Add(items[0], items[1], entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return ans, nil
}

// LoadFile loads a lexicon from a file. An empty path produces
// an empty lexicon (all lemmas are then out of the list).
func LoadFile(path string) (*List, error) {
	if path == "" {
		log.Warn().Msg("no wordlist file specified, using an empty one")
		return NewList(), nil
	}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load wordlist %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("failed to load wordlist %s: not a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load wordlist %s: %w", path, err)
	}
	defer f.Close()
	ans, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load wordlist %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("size", ans.Size()).Msg("loaded wordlist")
	return ans, nil
}
