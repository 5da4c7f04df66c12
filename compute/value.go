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

package compute

import (
	"math"
	"strconv"
)

// Value is a computed numeric value which may be "not applicable"
// (e.g. a ratio with zero denominator). It is encoded as JSON null
// in such case.
type Value struct {
	V  float64
	NA bool
}

// Val creates an applicable value. NaN and infinite numbers
// are converted to "not applicable".
func Val(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA()
	}
	return Value{V: v}
}

func NA() Value {
	return Value{NA: true}
}

func (v Value) IsApplicable() bool {
	return !v.NA
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.NA {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.V, 'f', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NA()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = Val(f)
	return nil
}

// ratio returns a / b or NA if b is zero
func ratio(a, b float64) Value {
	if b == 0 {
		return NA()
	}
	return Val(a / b)
}
