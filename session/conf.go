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

package session

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	dfltTTLSecs             = 3600 * 4
	dfltCleanupIntervalSecs = 60
	dfltMaxTexts            = 500
)

type Conf struct {

	// TTLSecs specifies how long an inactive session is kept
	TTLSecs int `json:"ttlSecs"`

	CleanupIntervalSecs int `json:"cleanupIntervalSecs"`

	// MaxTexts limits the number of texts loaded into a single session
	MaxTexts int `json:"maxTexts"`
}

func (conf *Conf) TTL() time.Duration {
	return time.Duration(conf.TTLSecs) * time.Second
}

func (conf *Conf) CleanupInterval() time.Duration {
	return time.Duration(conf.CleanupIntervalSecs) * time.Second
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.TTLSecs == 0 {
		conf.TTLSecs = dfltTTLSecs
		log.Warn().
			Int("value", conf.TTLSecs).
			Msgf("`%s.ttlSecs` not set, using default", confContext)

	} else if conf.TTLSecs < 0 {
		return fmt.Errorf("`%s.ttlSecs` must be a positive number", confContext)
	}
	if conf.CleanupIntervalSecs <= 0 {
		conf.CleanupIntervalSecs = dfltCleanupIntervalSecs
		log.Warn().
			Int("value", conf.CleanupIntervalSecs).
			Msgf("`%s.cleanupIntervalSecs` not set, using default", confContext)
	}
	if conf.MaxTexts <= 0 {
		conf.MaxTexts = dfltMaxTexts
		log.Warn().
			Int("value", conf.MaxTexts).
			Msgf("`%s.maxTexts` not set, using default", confContext)
	}
	return nil
}
