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
	"fmt"
	"runtime"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	DfltIncscBase         = 1000
	DfltLongArcThreshold  = 5
	DfltLongWordThreshold = 6
)

// Conf configures feature computation
type Conf struct {

	// IncscBase is the N in "count * N / base" of INCSC values.
	// It can be overridden per session.
	IncscBase float64 `json:"incscBase"`

	// LongArcThreshold is the minimum number of arcs of a root path
	// segment considered a long dependency chain (5 arcs = 6 nodes)
	LongArcThreshold int `json:"longArcThreshold"`

	// LongWordThreshold is the number of characters a word must
	// exceed to be considered long (LIX)
	LongWordThreshold int `json:"longWordThreshold"`

	// NumWorkers limits the number of texts processed in parallel
	NumWorkers int `json:"numWorkers"`

	// Wordlists maps language codes to CEFR/frequency lists
	Wordlists map[string]string `json:"wordlists"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.IncscBase == 0 {
		conf.IncscBase = DfltIncscBase
		log.Warn().
			Float64("value", conf.IncscBase).
			Msgf("`%s.incscBase` not set, using default", confContext)

	} else if conf.IncscBase < 0 {
		return fmt.Errorf("`%s.incscBase` must be a positive number", confContext)
	}
	if conf.LongArcThreshold == 0 {
		conf.LongArcThreshold = DfltLongArcThreshold
		log.Warn().
			Int("value", conf.LongArcThreshold).
			Msgf("`%s.longArcThreshold` not set, using default", confContext)
	}
	if conf.LongWordThreshold == 0 {
		conf.LongWordThreshold = DfltLongWordThreshold
		log.Warn().
			Int("value", conf.LongWordThreshold).
			Msgf("`%s.longWordThreshold` not set, using default", confContext)
	}
	if conf.NumWorkers <= 0 {
		conf.NumWorkers = runtime.NumCPU()
		log.Warn().
			Int("value", conf.NumWorkers).
			Msgf("`%s.numWorkers` not set, using number of CPUs", confContext)
	}
	for lang, path := range conf.Wordlists {
		isFile, err := fs.IsFile(path)
		if err != nil {
			return fmt.Errorf("failed to test `%s.wordlists.%s`: %w", confContext, lang, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.wordlists.%s` does not point to a file", confContext, lang)
		}
	}
	return nil
}

// DefaultConf returns a configuration with all the defaults
// applied (and no wordlists)
func DefaultConf() *Conf {
	return &Conf{
		IncscBase:         DfltIncscBase,
		LongArcThreshold:  DfltLongArcThreshold,
		LongWordThreshold: DfltLongWordThreshold,
		NumWorkers:        runtime.NumCPU(),
	}
}
