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
	"testing"

	"github.com/stretchr/testify/assert"
)

func vals(items ...float64) []compute.Value {
	ans := make([]compute.Value, len(items))
	for i, v := range items {
		ans[i] = compute.Val(v)
	}
	return ans
}

func TestAggregatePooled(t *testing.T) {
	st := Aggregate(Pool(vals(2, 4), vals(6)))
	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 4.0, st.Median.V, 1e-9)
	assert.InDelta(t, 4.0, st.Mean.V, 1e-9)
	assert.InDelta(t, 12.0, st.Total.V, 1e-9)
}

func TestAggregatePooledNotAverageOfAverages(t *testing.T) {
	st := Aggregate(Pool(vals(2, 4), vals(10, 10)))
	assert.InDelta(t, 7.0, st.Median.V, 1e-9)
	assert.InDelta(t, 6.5, st.Mean.V, 1e-9)
	assert.InDelta(t, 26.0, st.Total.V, 1e-9)
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := Aggregate(Pool(vals(0.1, 0.7, 3.3), vals(1.2)))
	b := Aggregate(Pool(vals(1.2), vals(3.3, 0.1, 0.7)))
	assert.InDelta(t, a.Total.V, b.Total.V, 1e-9)
	assert.InDelta(t, a.Mean.V, b.Mean.V, 1e-9)
	assert.Equal(t, a.Median, b.Median)
}

func TestAggregateSkipsNA(t *testing.T) {
	values := append(vals(1, 3), compute.NA(), compute.NA())
	st := Aggregate(values)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 2, st.NA)
	assert.InDelta(t, 2.0, st.Median.V, 1e-9)
	assert.InDelta(t, 4.0, st.Total.V, 1e-9)
}

func TestAggregateOnlyNA(t *testing.T) {
	st := Aggregate([]compute.Value{compute.NA()})
	assert.Equal(t, 0, st.Count)
	assert.Equal(t, 1, st.NA)
	assert.True(t, st.Mean.NA)
	assert.True(t, st.Median.NA)
	assert.True(t, st.Total.NA)
}
