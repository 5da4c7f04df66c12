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

package query

import (
	"context"
	"errors"
	"fmt"
	"lingstat/aggreg"
	"lingstat/compute"
	"lingstat/features"
	"lingstat/merror"
	"lingstat/monitoring"
	"lingstat/results"
	"lingstat/session"
	"time"

	"github.com/rs/zerolog/log"
)

// JobRecorder receives a log record of each processed query
type JobRecorder interface {
	Log(rec monitoring.JobLog)
}

// Service answers statistical queries over a selection
// of texts. It holds no selection state on its own, every
// query receives an immutable session context.
type Service struct {
	engine   *aggreg.Engine
	recorder JobRecorder
}

// run executes a query, records its processing and turns
// an empty selection into an `Empty` result
func (s *Service) run(
	fn string,
	sctx *session.Context,
	query func() (results.SerializableResult, error),
) (results.SerializableResult, error) {
	rec := monitoring.JobLog{
		Func:  fn,
		Begin: time.Now(),
	}
	if sctx != nil {
		rec.SessionID = sctx.SessionID
		rec.NumTexts = len(sctx.Texts)
	}
	var ans results.SerializableResult
	var err error
	if sctx.IsEmpty() {
		err = merror.ErrEmptySelection

	} else {
		ans, err = query()
	}
	rec.End = time.Now()
	if errors.Is(err, merror.ErrEmptySelection) {
		ans, err = &results.Empty{Query: fn}, nil
	}
	rec.Err = err
	if s.recorder != nil {
		s.recorder.Log(rec)
	}
	if err != nil {
		log.Error().Err(err).Str("query", fn).Str("sessionId", rec.SessionID).Msg("query failed")
	}
	return ans, err
}

func featureRows(fs *aggreg.FamilyStats) []results.FeatureRow {
	ans := make([]results.FeatureRow, len(fs.Features))
	for i, item := range fs.Features {
		desc := item.Feature
		var subfamily string
		if desc.Subfamily > 0 {
			_, subfamily, _ = features.FamilyInfo(desc.Subfamily)
		}
		ans[i] = results.FeatureRow{
			ID:        desc.ID,
			Key:       desc.LabelKey,
			Label:     desc.Label(fs.Lang),
			Formula:   desc.Formula,
			Subfamily: subfamily,
			Unit:      desc.Unit,
			Count:     item.Stats.Count,
			NA:        item.Stats.NA,
			Median:    item.Stats.Median,
			Mean:      item.Stats.Mean,
			Total:     item.Stats.Total,
			Overall:   item.Overall,
		}
	}
	return ans
}

func (s *Service) familyTables(
	ctx context.Context,
	sctx *session.Context,
	family features.ID,
) ([]*results.FamilyTable, error) {
	facts, err := s.engine.Facts(ctx, sctx.Texts)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string)
	for _, t := range sctx.Texts {
		titles[t.ID] = t.Title
	}
	params := compute.Params{IncscBase: sctx.IncscBase()}
	ans := make([]*results.FamilyTable, 0, len(facts)+1)
	for _, lang := range sctx.Languages() {
		if sctx.Mode() == session.ModePerText {
			each, err := s.engine.RunEach(ctx, family, lang, facts, params)
			if err != nil {
				return nil, err
			}
			for _, fs := range each {
				ans = append(ans, &results.FamilyTable{
					Scope:    results.ScopeText,
					TextID:   fs.TextIDs[0],
					Title:    titles[fs.TextIDs[0]],
					Lang:     lang,
					NumTexts: 1,
					Rows:     featureRows(fs),
				})
			}
		}
		fs, err := s.engine.Run(ctx, family, lang, facts, params)
		if err != nil {
			return nil, err
		}
		ans = append(ans, &results.FamilyTable{
			Scope:    results.ScopeCorpus,
			Lang:     lang,
			NumTexts: len(fs.TextIDs),
			Rows:     featureRows(fs),
		})
	}
	return ans, nil
}

// GetFamily calculates aggregated values of all the features
// of a family. In the per-text mode, each selected text gets its
// own table followed by a table of the whole selection. Texts
// of different languages are never pooled together.
func (s *Service) GetFamily(
	ctx context.Context,
	sctx *session.Context,
	family features.ID,
) (results.SerializableResult, error) {
	key, label, formula := features.FamilyInfo(family)
	if key == "" {
		return nil, merror.InputError{Msg: fmt.Sprintf("unknown feature family %s", family)}
	}
	return s.run(key, sctx, func() (results.SerializableResult, error) {
		tables, err := s.familyTables(ctx, sctx, family)
		if err != nil {
			return nil, err
		}
		return &results.Family{
			Family:  family,
			Key:     key,
			Label:   label,
			Formula: formula,
			Mode:    string(sctx.Mode()),
			Tables:  tables,
		}, nil
	})
}

func (s *Service) GetGeneral(ctx context.Context, sctx *session.Context) (results.SerializableResult, error) {
	return s.GetFamily(ctx, sctx, features.FamilyGeneral)
}

func (s *Service) GetLexical(ctx context.Context, sctx *session.Context) (results.SerializableResult, error) {
	return s.GetFamily(ctx, sctx, features.FamilyLexical)
}

func (s *Service) GetMorph(ctx context.Context, sctx *session.Context) (results.SerializableResult, error) {
	return s.GetFamily(ctx, sctx, features.FamilyMorph)
}

func (s *Service) GetSyntactic(ctx context.Context, sctx *session.Context) (results.SerializableResult, error) {
	return s.GetFamily(ctx, sctx, features.FamilySyntactic)
}

func (s *Service) GetReadability(ctx context.Context, sctx *session.Context) (results.SerializableResult, error) {
	return s.GetFamily(ctx, sctx, features.FamilyReadability)
}

// GetPOSStats returns frequencies of part of speech tags
// within the selection
func (s *Service) GetPOSStats(
	ctx context.Context,
	sctx *session.Context,
	tagset Tagset,
) (results.SerializableResult, error) {
	if err := tagset.Validate(); err != nil {
		return nil, err
	}
	return s.run("posStats", sctx, func() (results.SerializableResult, error) {
		return posStats(sctx.Texts, tagset), nil
	})
}

// GetLengths returns a histogram of a length metric
// optionally filtered by a bound
func (s *Service) GetLengths(
	ctx context.Context,
	sctx *session.Context,
	metric LengthMetric,
	filter LengthFilter,
) (results.SerializableResult, error) {
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.run("lengths", sctx, func() (results.SerializableResult, error) {
		return lengths(sctx.Texts, metric, filter), nil
	})
}

// GetFrequencyList returns a frequency list of words (forms,
// normalized forms or lemmas) of selected texts
func (s *Service) GetFrequencyList(
	ctx context.Context,
	sctx *session.Context,
	args FreqArgs,
) (results.SerializableResult, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}
	return s.run("freqs", sctx, func() (results.SerializableResult, error) {
		return frequencyList(sctx.Texts, args), nil
	})
}

// NewService creates a query service. The recorder is optional.
func NewService(engine *aggreg.Engine, recorder JobRecorder) *Service {
	return &Service{
		engine:   engine,
		recorder: recorder,
	}
}
