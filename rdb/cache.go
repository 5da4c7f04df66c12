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

package rdb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"lingstat/aggreg"
	"lingstat/compute"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// FileCache stores text facts as JSON files in a directory.
// It is meant for a single instance deployment and for the batch
// mode where running Redis would be impractical.
type FileCache struct {
	cachePath string
	ttl       time.Duration
}

func (fc *FileCache) mkPath(key string) string {
	hashKey := sha1.Sum([]byte(key))
	return filepath.Join(fc.cachePath, "facts-"+hex.EncodeToString(hashKey[:])+".json")
}

func (fc *FileCache) Get(ctx context.Context, key string) (*compute.TextFacts, bool) {
	path := fc.mkPath(key)
	isf, _ := fs.IsFile(path)
	if !isf {
		return nil, false
	}
	if fc.ttl > 0 {
		mtime, err := fs.GetFileMtime(path)
		if err == nil && time.Since(mtime) > fc.ttl {
			return nil, false
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Msgf("Error while reading cache file %s", path)
		return nil, false
	}
	var ans compute.TextFacts
	if err := sonic.Unmarshal(content, &ans); err != nil {
		log.Err(err).Msgf("Error while decoding cache file %s", path)
		return nil, false
	}
	return &ans, true
}

func (fc *FileCache) Set(ctx context.Context, key string, facts *compute.TextFacts) {
	path := fc.mkPath(key)
	data, err := sonic.Marshal(facts)
	if err != nil {
		log.Err(err).Msgf("Error while encoding cache file %s", path)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Err(err).Msgf("Error while writing cache file %s", path)
	}
}

func NewFileCache(cachePath string, ttl time.Duration) *FileCache {
	return &FileCache{cachePath: cachePath, ttl: ttl}
}

// NewFactsCache creates a cache based on configuration. With
// neither Redis nor a cache directory configured, nil is returned.
func NewFactsCache(conf *Conf) aggreg.FactsCache {
	if conf.IsRedis() {
		log.Info().
			Str("host", conf.Host).
			Int("db", conf.DB).
			Msg("using Redis cache of text facts")
		return NewAdapter(conf)
	}
	if conf != nil && conf.CachePath != "" {
		log.Info().Str("path", conf.CachePath).Msg("using file cache of text facts")
		return NewFileCache(conf.CachePath, conf.TTL())
	}
	return nil
}
