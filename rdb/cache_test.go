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

package rdb

import (
	"context"
	"lingstat/compute"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	fc := NewFileCache(t.TempDir(), time.Hour)
	ctx := context.Background()
	_, ok := fc.Get(ctx, "abc:params")
	assert.False(t, ok)

	facts := &compute.TextFacts{
		TextID:      "t1",
		Lang:        "sv",
		Total:       compute.NewCounts(),
		WordLengths: []int{3, 5, 1},
	}
	facts.Total.Tokens = 9
	fc.Set(ctx, "abc:params", facts)

	cached, ok := fc.Get(ctx, "abc:params")
	require.True(t, ok)
	assert.Equal(t, "t1", cached.TextID)
	assert.Equal(t, []int{3, 5, 1}, cached.WordLengths)
	assert.Equal(t, 9, cached.Total.Tokens)

	_, ok = fc.Get(ctx, "abc:other-params")
	assert.False(t, ok)
}

func TestNewFactsCacheUnconfigured(t *testing.T) {
	assert.Nil(t, NewFactsCache(nil))
	assert.Nil(t, NewFactsCache(&Conf{}))
	_, ok := NewFactsCache(&Conf{CachePath: t.TempDir()}).(*FileCache)
	assert.True(t, ok)
}

func TestConfDefaults(t *testing.T) {
	conf := &Conf{Host: "localhost"}
	require.NoError(t, conf.ValidateAndDefaults("factsCache"))
	assert.Equal(t, DfltPort, conf.Port)
	assert.Equal(t, DfltPrefix, conf.KeyPrefix)
	assert.Equal(t, 24*time.Hour, conf.TTL())

	conf = &Conf{CachePath: "/nonexistent/lingstat/cache"}
	assert.Error(t, conf.ValidateAndDefaults("factsCache"))
}
