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

// Package export writes family tables in formats suitable
// for spreadsheet processing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"lingstat/compute"
	"lingstat/merror"
	"lingstat/results"
	"strconv"
	"strings"
)

// DecimalSep is a decimal separator used for numeric values
type DecimalSep string

const (
	DecimalPeriod DecimalSep = "."
	DecimalComma  DecimalSep = ","

	numDecimals = 3
)

func (ds DecimalSep) Validate() error {
	if ds != DecimalPeriod && ds != DecimalComma {
		return merror.InputError{Msg: fmt.Sprintf("unsupported decimal separator `%s`", ds)}
	}
	return nil
}

// Delimiter returns a field delimiter which does not
// collide with the decimal separator
func (ds DecimalSep) Delimiter() rune {
	if ds == DecimalComma {
		return ';'
	}
	return ','
}

var header = []string{
	"family", "scope", "text", "lang", "subfamily", "feature",
	"count", "na", "median", "mean", "total", "overall",
}

func formatValue(v compute.Value, sep DecimalSep) string {
	if !v.IsApplicable() {
		return "NA"
	}
	ans := strconv.FormatFloat(results.NormRound(v.V), 'f', -1, 64)
	if sep == DecimalComma {
		return strings.Replace(ans, ".", ",", 1)
	}
	return ans
}

func tableScope(table *results.FamilyTable) string {
	if table.Scope == results.ScopeText {
		if table.Title != "" {
			return table.Title
		}
		return table.TextID
	}
	return ""
}

// WriteCSV writes all the tables of provided family results
// into a single CSV file. With `corpusOnly`, only tables
// aggregating the whole selection are written.
func WriteCSV(w io.Writer, families []*results.Family, sep DecimalSep, corpusOnly bool) error {
	if err := sep.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = sep.Delimiter()
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	for _, fam := range families {
		tables := fam.Tables
		if corpusOnly {
			tables = fam.CorpusTables()
		}
		for _, table := range tables {
			for _, row := range table.Rows {
				rec := []string{
					fam.Key,
					table.Scope,
					tableScope(table),
					string(table.Lang),
					row.Subfamily,
					row.Label,
					strconv.Itoa(row.Count),
					strconv.Itoa(row.NA),
					formatValue(row.Median, sep),
					formatValue(row.Mean, sep),
					formatValue(row.Total, sep),
					formatValue(row.Overall, sep),
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV: %w", err)
				}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
