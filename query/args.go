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

package query

import (
	"fmt"
	"lingstat/merror"
)

// LengthMetric specifies which lengths are collected
// by the lengths query
type LengthMetric string

const (
	MetricWord               LengthMetric = "word"
	MetricSentence           LengthMetric = "sentence"
	MetricParagraphWords     LengthMetric = "paragraph-words"
	MetricParagraphSentences LengthMetric = "paragraph-sentences"
)

func (m LengthMetric) Validate() error {
	switch m {
	case MetricWord, MetricSentence, MetricParagraphWords, MetricParagraphSentences:
		return nil
	}
	return merror.InputError{Msg: fmt.Sprintf("unknown length metric `%s`", m)}
}

type FilterOp string

const (
	FilterNone FilterOp = ""
	FilterGE   FilterOp = "ge"
	FilterLE   FilterOp = "le"
	FilterEQ   FilterOp = "eq"
)

func (op FilterOp) Validate() error {
	switch op {
	case FilterNone, FilterGE, FilterLE, FilterEQ:
		return nil
	}
	return merror.InputError{Msg: fmt.Sprintf("unknown filter `%s`", op)}
}

// LengthFilter keeps only lengths satisfying `length <op> Bound + Step`.
// Step allows a client to shift the bound without knowing
// its current value (e.g. "one more").
type LengthFilter struct {
	Op    FilterOp
	Bound int
	Step  int
}

// EffectiveBound returns the bound shifted by Step, never below 1
func (f LengthFilter) EffectiveBound() int {
	ans := f.Bound + f.Step
	if ans < 1 {
		return 1
	}
	return ans
}

func (f LengthFilter) Accepts(length int) bool {
	switch f.Op {
	case FilterGE:
		return length >= f.EffectiveBound()
	case FilterLE:
		return length <= f.EffectiveBound()
	case FilterEQ:
		return length == f.EffectiveBound()
	}
	return true
}

func (f LengthFilter) Validate() error {
	if err := f.Op.Validate(); err != nil {
		return err
	}
	if f.Op != FilterNone && f.Bound < 0 {
		return merror.InputError{Msg: "length bound must not be negative"}
	}
	return nil
}

// ----

type FreqCategory string

const (
	CategoryForm  FreqCategory = "form"
	CategoryNorm  FreqCategory = "norm"
	CategoryLemma FreqCategory = "lemma"
)

func (c FreqCategory) Validate() error {
	switch c {
	case CategoryForm, CategoryNorm, CategoryLemma:
		return nil
	}
	return merror.InputError{Msg: fmt.Sprintf("unknown frequency category `%s`", c)}
}

type Tagset string

const (
	TagsetUPOS Tagset = "upos"
	TagsetXPOS Tagset = "xpos"
)

func (ts Tagset) Validate() error {
	if ts != TagsetUPOS && ts != TagsetXPOS {
		return merror.InputError{Msg: fmt.Sprintf("unknown tagset `%s`", ts)}
	}
	return nil
}

// FreqArgs are arguments of a frequency list query
type FreqArgs struct {
	Category FreqCategory
	Tagset   Tagset
	MinFreq  int

	// POSSplit distinguishes items by their tags
	// (e.g. `run/VERB` and `run/NOUN`)
	POSSplit bool

	// POS is an optional whitelist of tags
	POS []string

	MaxItems int
}

func (args FreqArgs) Validate() error {
	if err := args.Category.Validate(); err != nil {
		return err
	}
	if err := args.Tagset.Validate(); err != nil {
		return err
	}
	if args.MinFreq < 0 {
		return merror.InputError{Msg: "minFreq must not be negative"}
	}
	if args.MaxItems < 0 {
		return merror.InputError{Msg: "maxItems must not be negative"}
	}
	return nil
}
