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

package results

import (
	"errors"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/features"

	"github.com/bytedance/sonic"
)

const (
	ScopeCorpus = "corpus"
	ScopeText   = "text"
)

// FeatureRow is a single row of a family table
type FeatureRow struct {
	ID        features.ID   `json:"id"`
	Key       string        `json:"key"`
	Label     string        `json:"label"`
	Formula   string        `json:"formula"`
	Subfamily string        `json:"subfamily,omitempty"`
	Unit      features.Unit `json:"unit"`
	Count     int           `json:"count"`
	NA        int           `json:"na"`
	Median    compute.Value `json:"median"`
	Mean      compute.Value `json:"mean"`
	Total     compute.Value `json:"total"`

	// Overall is the feature evaluated on all the aggregated
	// counts at once (e.g. a readability index of a whole corpus)
	Overall compute.Value `json:"overall"`
}

// FamilyTable contains feature rows of a single scope
// (a text or a corpus of selected texts)
type FamilyTable struct {
	Scope    string          `json:"scope"`
	TextID   string          `json:"textId,omitempty"`
	Title    string          `json:"title,omitempty"`
	Lang     corpus.Language `json:"lang"`
	NumTexts int             `json:"numTexts"`
	Rows     []FeatureRow    `json:"rows"`
}

// Family is a result of a family query
type Family struct {
	Family  features.ID    `json:"family"`
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Formula string         `json:"formula"`
	Mode    string         `json:"mode"`
	Tables  []*FamilyTable `json:"tables"`
	Error   string         `json:"error,omitempty"`
}

func (res *Family) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *Family) Type() ResultType {
	return ResultTypeFamily
}

func (res *Family) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(
		struct {
			Family     features.ID    `json:"family"`
			Key        string         `json:"key"`
			Label      string         `json:"label"`
			Formula    string         `json:"formula"`
			Mode       string         `json:"mode"`
			Tables     []*FamilyTable `json:"tables"`
			ResultType ResultType     `json:"resultType"`
			Error      string         `json:"error,omitempty"`
		}{
			Family:     res.Family,
			Key:        res.Key,
			Label:      res.Label,
			Formula:    res.Formula,
			Mode:       res.Mode,
			Tables:     res.Tables,
			ResultType: res.Type(),
			Error:      res.Error,
		},
	)
}

// CorpusTables returns only the tables aggregating all
// the selected texts
func (res *Family) CorpusTables() []*FamilyTable {
	ans := make([]*FamilyTable, 0, len(res.Tables))
	for _, t := range res.Tables {
		if t.Scope == ScopeCorpus {
			ans = append(ans, t)
		}
	}
	return ans
}
