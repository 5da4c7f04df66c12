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
	"fmt"
	"lingstat/corpus"
	"lingstat/merror"
	"sort"
	"sync"
	"time"
)

// Mode specifies how selected texts are aggregated
type Mode string

const (
	ModeMerged  Mode = "merged"
	ModePerText Mode = "perText"
)

func (m Mode) Validate() error {
	if m != ModeMerged && m != ModePerText {
		return merror.InputError{Msg: fmt.Sprintf("invalid aggregation mode `%s`", m)}
	}
	return nil
}

// Selection describes which of the loaded texts take part
// in queries and how they are aggregated.
type Selection struct {

	// Excluded contains IDs of texts a user switched off
	Excluded map[string]bool `json:"excluded"`

	// MetadataFilter maps metadata keys to allowed values.
	// Texts must match all the keys.
	MetadataFilter map[string][]string `json:"metadataFilter"`

	Mode Mode `json:"mode"`

	IncscBase float64 `json:"incscBase"`
}

// SelectionUpdate contains changes of a selection. Nil values
// mean "keep the current setting".
type SelectionUpdate struct {
	MetadataFilter map[string][]string `json:"metadataFilter"`
	Mode           *Mode               `json:"mode"`
	IncscBase      *float64            `json:"incscBase"`

	// Included replaces all the per-text inclusion toggles
	// (IDs not listed are excluded)
	Included []string `json:"included"`
}

// TextInfo describes a loaded text along with its selection state
type TextInfo struct {
	corpus.Summary
	Included bool `json:"included"`
	Selected bool `json:"selected"`
}

// Session holds loaded texts and a selection over them.
// All the mutations are serialized by the session's mutex.
type Session struct {
	ID         string
	mu         sync.Mutex
	texts      []*corpus.Text
	selection  Selection
	maxTexts   int
	created    time.Time
	lastAccess time.Time
}

func (s *Session) touch() {
	s.lastAccess = time.Now()
}

// LastAccess returns time of the last session operation
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

func (s *Session) findText(textID string) int {
	for i, t := range s.texts {
		if t.ID == textID {
			return i
		}
	}
	return -1
}

// AddTexts appends validated texts to the session.
// Texts with an already present ID are replaced.
func (s *Session) AddTexts(texts ...*corpus.Text) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	var numNew int
	for _, t := range texts {
		if s.findText(t.ID) < 0 {
			numNew++
		}
	}
	if len(s.texts)+numNew > s.maxTexts {
		return merror.InputError{
			Msg: fmt.Sprintf("too many texts in session (max. %d)", s.maxTexts)}
	}
	for _, t := range texts {
		if i := s.findText(t.ID); i >= 0 {
			s.texts[i] = t

		} else {
			s.texts = append(s.texts, t)
		}
	}
	return nil
}

func (s *Session) isSelected(t *corpus.Text) bool {
	return !s.selection.Excluded[t.ID] && t.MatchesMetadata(s.selection.MetadataFilter)
}

// Texts lists all the loaded texts (in the order of loading)
func (s *Session) Texts() []TextInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	ans := make([]TextInfo, len(s.texts))
	for i, t := range s.texts {
		ans[i] = TextInfo{
			Summary:  t.Summary(),
			Included: !s.selection.Excluded[t.ID],
			Selected: s.isSelected(t),
		}
	}
	return ans
}

// MetadataValues lists all the known values of all metadata keys
// (sorted) so a client can build a filter.
func (s *Session) MetadataValues() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	tmp := make(map[string]map[string]struct{})
	for _, t := range s.texts {
		for k, v := range t.Metadata {
			if _, ok := tmp[k]; !ok {
				tmp[k] = make(map[string]struct{})
			}
			tmp[k][v] = struct{}{}
		}
	}
	ans := make(map[string][]string)
	for k, values := range tmp {
		for v := range values {
			ans[k] = append(ans[k], v)
		}
		sort.Strings(ans[k])
	}
	return ans
}

func (s *Session) RemoveText(textID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	i := s.findText(textID)
	if i < 0 {
		return fmt.Errorf("text %s: %w", textID, merror.ErrNotFound)
	}
	s.texts = append(s.texts[:i], s.texts[i+1:]...)
	delete(s.selection.Excluded, textID)
	return nil
}

// SetIncluded toggles inclusion of a text in queries
func (s *Session) SetIncluded(textID string, included bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.findText(textID) < 0 {
		return fmt.Errorf("text %s: %w", textID, merror.ErrNotFound)
	}
	if included {
		delete(s.selection.Excluded, textID)

	} else {
		s.selection.Excluded[textID] = true
	}
	return nil
}

// UpdateSelection applies changes to the selection. The update
// is validated as a whole before anything is changed.
func (s *Session) UpdateSelection(upd SelectionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if upd.Mode != nil {
		if err := upd.Mode.Validate(); err != nil {
			return err
		}
	}
	if upd.IncscBase != nil && *upd.IncscBase <= 0 {
		return merror.InputError{Msg: "incscBase must be a positive number"}
	}
	for _, id := range upd.Included {
		if s.findText(id) < 0 {
			return fmt.Errorf("text %s: %w", id, merror.ErrNotFound)
		}
	}
	if upd.Mode != nil {
		s.selection.Mode = *upd.Mode
	}
	if upd.IncscBase != nil {
		s.selection.IncscBase = *upd.IncscBase
	}
	if upd.MetadataFilter != nil {
		s.selection.MetadataFilter = upd.MetadataFilter
	}
	if upd.Included != nil {
		incl := make(map[string]bool)
		for _, id := range upd.Included {
			incl[id] = true
		}
		s.selection.Excluded = make(map[string]bool)
		for _, t := range s.texts {
			if !incl[t.ID] {
				s.selection.Excluded[t.ID] = true
			}
		}
	}
	return nil
}

// Selection returns a copy of the current selection
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySelection()
}

func (s *Session) copySelection() Selection {
	ans := Selection{
		Excluded:       make(map[string]bool, len(s.selection.Excluded)),
		MetadataFilter: make(map[string][]string, len(s.selection.MetadataFilter)),
		Mode:           s.selection.Mode,
		IncscBase:      s.selection.IncscBase,
	}
	for k, v := range s.selection.Excluded {
		ans.Excluded[k] = v
	}
	for k, v := range s.selection.MetadataFilter {
		ans.MetadataFilter[k] = append([]string{}, v...)
	}
	return ans
}

// Context creates an immutable snapshot of the selected texts
// and query parameters.
func (s *Session) Context() *Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	ans := &Context{
		SessionID: s.ID,
		Selection: s.copySelection(),
	}
	for _, t := range s.texts {
		if s.isSelected(t) {
			ans.Texts = append(ans.Texts, t)
		}
	}
	return ans
}

func newSession(id string, incscBase float64, maxTexts int) *Session {
	now := time.Now()
	return &Session{
		ID: id,
		selection: Selection{
			Excluded:       make(map[string]bool),
			MetadataFilter: make(map[string][]string),
			Mode:           ModeMerged,
			IncscBase:      incscBase,
		},
		maxTexts:   maxTexts,
		created:    now,
		lastAccess: now,
	}
}
