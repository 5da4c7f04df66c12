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
	"fmt"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	DfltPort    = 6379
	DfltTTLSecs = 24 * 3600
	DfltPrefix  = "lingstat:facts"
)

// Conf configures a cache of extracted text facts. Either Redis
// (Host) or a local directory (CachePath) can be used. With none
// of them, facts are always computed from scratch.
type Conf struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	DB        int    `json:"db"`
	Password  string `json:"password"`
	KeyPrefix string `json:"keyPrefix"`
	TTLSecs   int    `json:"ttlSecs"`
	CachePath string `json:"cachePath"`
}

func (conf *Conf) TTL() time.Duration {
	return time.Duration(conf.TTLSecs) * time.Second
}

func (conf *Conf) IsRedis() bool {
	return conf != nil && conf.Host != ""
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		log.Warn().Msgf("`%s` not configured, text facts will not be cached", confContext)
		return nil
	}
	if conf.Host != "" && conf.Port == 0 {
		conf.Port = DfltPort
		log.Warn().
			Int("value", conf.Port).
			Msgf("`%s.port` not set, using default", confContext)
	}
	if conf.KeyPrefix == "" {
		conf.KeyPrefix = DfltPrefix
		log.Warn().
			Str("value", conf.KeyPrefix).
			Msgf("`%s.keyPrefix` not set, using default", confContext)
	}
	if conf.TTLSecs == 0 {
		conf.TTLSecs = DfltTTLSecs
		log.Warn().
			Int("value", conf.TTLSecs).
			Msgf("`%s.ttlSecs` not set, using default", confContext)

	} else if conf.TTLSecs < 0 {
		return fmt.Errorf("`%s.ttlSecs` must be a positive number", confContext)
	}
	if conf.CachePath != "" {
		isDir, err := fs.IsDir(conf.CachePath)
		if err != nil {
			return fmt.Errorf("failed to test `%s.cachePath`: %w", confContext, err)
		}
		if !isDir {
			return fmt.Errorf("`%s.cachePath` is not a directory", confContext)
		}
	}
	return nil
}
