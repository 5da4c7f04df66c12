// Copyright 2023 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2023 Institute of the Czech National Corpus,
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

package results

import (
	"errors"
	"math"

	"github.com/bytedance/sonic"
)

const (
	ResultTypeFamily   ResultType = "family"
	ResultTypeLengths  ResultType = "lengths"
	ResultTypeFreqs    ResultType = "freqs"
	ResultTypePOSStats ResultType = "posStats"
	ResultTypeEmpty    ResultType = "empty"
	ResultTypeError    ResultType = "error"
)

type ResultType string // @name ResultType

func (rt ResultType) String() string {
	return string(rt)
}

type SerializableResult interface {
	Type() ResultType
	Err() error
}

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}

// ----

// Empty is returned instead of any table whenever a query
// is run against an empty selection.
type Empty struct {
	Query string
}

func (res *Empty) Err() error {
	return nil
}

func (res *Empty) Type() ResultType {
	return ResultTypeEmpty
}

func (res *Empty) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(
		struct {
			Empty      bool       `json:"empty"`
			Query      string     `json:"query,omitempty"`
			ResultType ResultType `json:"resultType"`
		}{
			Empty:      true,
			Query:      res.Query,
			ResultType: res.Type(),
		},
	)
}

// ----

type ErrorResult struct {
	Error string
}

func (res *ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *ErrorResult) Type() ResultType {
	return ResultTypeError
}

func (res *ErrorResult) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(
		struct {
			Error      string     `json:"error"`
			ResultType ResultType `json:"resultType"`
		}{
			Error:      res.Error,
			ResultType: res.Type(),
		},
	)
}
