// Copyright 2023 Tomas Machalek <tomas.machalek@gmail.com>
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

	"github.com/bytedance/sonic"
)

type LengthBucket struct {
	Length int     `json:"length"`
	Count  int     `json:"count"`
	Ratio  float64 `json:"ratio"`

	// POS is filled in only for word lengths
	POS map[string]int `json:"pos,omitempty"`
}

// Lengths is a histogram of a length metric (e.g. words
// per sentence) over selected texts
type Lengths struct {
	Metric  string
	Filter  string
	Bound   int
	Total   int
	Buckets []LengthBucket
	Error   string
}

func (res *Lengths) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *Lengths) Type() ResultType {
	return ResultTypeLengths
}

func (res *Lengths) MarshalJSON() ([]byte, error) {
	buckets := res.Buckets
	if buckets == nil {
		buckets = []LengthBucket{}
	}
	return sonic.Marshal(
		struct {
			Metric     string         `json:"metric"`
			Filter     string         `json:"filter,omitempty"`
			Bound      int            `json:"bound,omitempty"`
			Total      int            `json:"total"`
			Buckets    []LengthBucket `json:"buckets"`
			ResultType ResultType     `json:"resultType"`
			Error      string         `json:"error,omitempty"`
		}{
			Metric:     res.Metric,
			Filter:     res.Filter,
			Bound:      res.Bound,
			Total:      res.Total,
			Buckets:    buckets,
			ResultType: res.Type(),
			Error:      res.Error,
		},
	)
}

// ----

type FreqItem struct {
	Word  string  `json:"word"`
	POS   string  `json:"pos,omitempty"`
	Freq  int     `json:"freq"`
	IPM   float64 `json:"ipm"`
	Ratio float64 `json:"ratio"`
}

type FreqItemList []*FreqItem

// Cut makes the list at most maxItems long (i.e. in case
// the list is shorter, no error is triggered)
func (flist FreqItemList) Cut(maxItems int) FreqItemList {
	if maxItems > 0 && len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// AlwaysAsList returns an empty list in case the original
// value is nil.
func (flist FreqItemList) AlwaysAsList() []*FreqItem {
	if flist != nil {
		return flist
	}
	return []*FreqItem{}
}

type FreqList struct {
	Category string
	Tagset   string
	MinFreq  int
	POSSplit bool

	// Base is the number of tokens the frequencies
	// were counted from
	Base  int
	Items FreqItemList
	Error string
}

func (res *FreqList) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *FreqList) Type() ResultType {
	return ResultTypeFreqs
}

func (res *FreqList) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(
		struct {
			Category   string      `json:"category"`
			Tagset     string      `json:"tagset"`
			MinFreq    int         `json:"minFreq"`
			POSSplit   bool        `json:"posSplit"`
			Base       int         `json:"base"`
			Items      []*FreqItem `json:"items"`
			ResultType ResultType  `json:"resultType"`
			Error      string      `json:"error,omitempty"`
		}{
			Category:   res.Category,
			Tagset:     res.Tagset,
			MinFreq:    res.MinFreq,
			POSSplit:   res.POSSplit,
			Base:       res.Base,
			Items:      res.Items.AlwaysAsList(),
			ResultType: res.Type(),
			Error:      res.Error,
		},
	)
}

// ----

type POSItem struct {
	Tag   string  `json:"tag"`
	Freq  int     `json:"freq"`
	Ratio float64 `json:"ratio"`
}

type POSStats struct {
	Tagset string
	Base   int
	Items  []POSItem
	Error  string
}

func (res *POSStats) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *POSStats) Type() ResultType {
	return ResultTypePOSStats
}

func (res *POSStats) MarshalJSON() ([]byte, error) {
	items := res.Items
	if items == nil {
		items = []POSItem{}
	}
	return sonic.Marshal(
		struct {
			Tagset     string     `json:"tagset"`
			Base       int        `json:"base"`
			Items      []POSItem  `json:"items"`
			ResultType ResultType `json:"resultType"`
			Error      string     `json:"error,omitempty"`
		}{
			Tagset:     res.Tagset,
			Base:       res.Base,
			Items:      items,
			ResultType: res.Type(),
			Error:      res.Error,
		},
	)
}
