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

package export

import (
	"bytes"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/results"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFamily() *results.Family {
	return &results.Family{
		Family: features.FamilyGeneral,
		Key:    "general",
		Tables: []*results.FamilyTable{
			{
				Scope:  results.ScopeText,
				TextID: "t1",
				Title:  "Essay",
				Lang:   corpus.LangSwedish,
				Rows: []results.FeatureRow{
					{Label: "Word length", Count: 2, Median: compute.Val(4.25), Mean: compute.Val(4.25),
						Total: compute.Val(8.5), Overall: compute.Val(4.25)},
				},
			},
			{
				Scope: results.ScopeCorpus,
				Lang:  corpus.LangSwedish,
				Rows: []results.FeatureRow{
					{Label: "Word length", Count: 2, NA: 1, Median: compute.Val(1.0 / 3.0), Mean: compute.NA(),
						Total: compute.NA(), Overall: compute.Val(2)},
				},
			},
		},
	}
}

func TestWriteCSVPeriod(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []*results.Family{testFamily()}, DecimalPeriod, false)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "family,scope,text,lang,subfamily,feature,count,na,median,mean,total,overall", lines[0])
	assert.Equal(t, "general,text,Essay,sv,,Word length,2,0,4.25,4.25,8.5,4.25", lines[1])
	assert.Equal(t, "general,corpus,,sv,,Word length,2,1,0.333,NA,NA,2", lines[2])
}

func TestWriteCSVCommaSwitchesDelimiter(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []*results.Family{testFamily()}, DecimalComma, true)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "general;corpus;;sv;;Word length;2;1;0,333;NA;NA;2", lines[1])
}

func TestWriteCSVInvalidSeparator(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []*results.Family{testFamily()}, DecimalSep(":"), false)
	assert.Error(t, err)
}
