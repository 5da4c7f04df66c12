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

package aggreg

import (
	"lingstat/compute"
	"sort"
)

// Stats summarizes a sample of unit values. Not applicable
// values are excluded from Total, Mean and Median and they
// are counted in NA.
type Stats struct {
	Count  int           `json:"count"`
	NA     int           `json:"na"`
	Total  compute.Value `json:"total"`
	Mean   compute.Value `json:"mean"`
	Median compute.Value `json:"median"`
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Aggregate calculates total, mean and median of applicable
// values. With no applicable values, all the three are NA.
func Aggregate(values []compute.Value) Stats {
	var ans Stats
	sample := make([]float64, 0, len(values))
	var total float64
	for _, v := range values {
		if v.NA {
			ans.NA++
			continue
		}
		sample = append(sample, v.V)
		total += v.V
	}
	ans.Count = len(sample)
	if ans.Count == 0 {
		ans.Total = compute.NA()
		ans.Mean = compute.NA()
		ans.Median = compute.NA()
		return ans
	}
	sort.Float64s(sample)
	ans.Total = compute.Val(total)
	ans.Mean = compute.Val(total / float64(ans.Count))
	ans.Median = compute.Val(median(sample))
	return ans
}

// Pool concatenates samples of several texts into a single
// sample (in the order of arguments). Aggregating a pooled sample
// differs from averaging per-text statistics.
func Pool(groups ...[]compute.Value) []compute.Value {
	var size int
	for _, g := range groups {
		size += len(g)
	}
	ans := make([]compute.Value, 0, size)
	for _, g := range groups {
		ans = append(ans, g...)
	}
	return ans
}
