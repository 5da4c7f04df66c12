// Copyright 2019 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2019 Institute of the Czech National Corpus,
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

package merror

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptySelection = errors.New("no texts selected")
	ErrNotFound       = errors.New("not found")
)

type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

// InternalError signals an inconsistency of the application
// itself (e.g. a feature family missing in a language tree)
type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// RecoveredError wraps a panic recovered within a feature
// extraction worker
type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

func (err RecoveredError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// UnsupportedLanguageError is returned whenever a language
// without a feature catalogue is requested.
type UnsupportedLanguageError struct {
	Lang string
}

func (err UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language `%s`", err.Lang)
}

func (err UnsupportedLanguageError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ---------------------------

// MalformedAnnotationError reports a structural problem found
// while ingesting a text. Sentence is a zero-based index
// within the text (-1 if the problem is not sentence-specific).
type MalformedAnnotationError struct {
	TextID   string
	Sentence int
	Line     int
	Msg      string
}

func (err MalformedAnnotationError) Error() string {
	if err.Sentence >= 0 {
		return fmt.Sprintf(
			"malformed annotation in text %s, sentence %d: %s", err.TextID, err.Sentence, err.Msg)
	}
	if err.Line > 0 {
		return fmt.Sprintf("malformed annotation in text %s, line %d: %s", err.TextID, err.Line, err.Msg)
	}
	return fmt.Sprintf("malformed annotation in text %s: %s", err.TextID, err.Msg)
}

func (err MalformedAnnotationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TextID   string `json:"textId"`
		Sentence int    `json:"sentence"`
		Line     int    `json:"line,omitempty"`
		Error    string `json:"error"`
	}{
		TextID:   err.TextID,
		Sentence: err.Sentence,
		Line:     err.Line,
		Error:    err.Msg,
	})
}

// ---------------------------

// MalformedDependencyTreeError is a special case of malformed
// annotation where the head/deprel edges do not form a tree.
type MalformedDependencyTreeError struct {
	TextID   string
	Sentence int
	Token    int
	Msg      string
}

func (err MalformedDependencyTreeError) Error() string {
	return fmt.Sprintf(
		"malformed dependency tree in text %s, sentence %d, token %d: %s",
		err.TextID, err.Sentence, err.Token, err.Msg,
	)
}

func (err MalformedDependencyTreeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TextID   string `json:"textId"`
		Sentence int    `json:"sentence"`
		Token    int    `json:"token"`
		Error    string `json:"error"`
	}{
		TextID:   err.TextID,
		Sentence: err.Sentence,
		Token:    err.Token,
		Error:    err.Msg,
	})
}

// IsUserError tells whether the error was caused by
// invalid input (and not by an internal problem).
func IsUserError(err error) bool {
	var e1 InputError
	var e2 UnsupportedLanguageError
	var e3 MalformedAnnotationError
	var e4 MalformedDependencyTreeError
	return errors.As(err, &e1) || errors.As(err, &e2) || errors.As(err, &e3) || errors.As(err, &e4)
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
