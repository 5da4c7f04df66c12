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
	"context"
	"fmt"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/merror"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// FactsCache stores extracted text facts. Keys are derived from
// text content and extraction parameters so a cached item never
// depends on a selection.
type FactsCache interface {
	Get(ctx context.Context, key string) (*compute.TextFacts, bool)
	Set(ctx context.Context, key string, facts *compute.TextFacts)
}

// FeatureStats are aggregated values of a single feature
type FeatureStats struct {
	Feature *features.Descriptor `json:"-"`
	Stats   Stats                `json:"stats"`

	// Overall is the feature evaluated on counts pooled
	// over all the aggregated texts
	Overall compute.Value `json:"overall"`
}

// FamilyStats contains aggregated values of all the features
// of a family (in the order given by the feature tree)
type FamilyStats struct {
	Family   features.ID     `json:"family"`
	Lang     corpus.Language `json:"lang"`
	TextIDs  []string        `json:"textIds"`
	Features []FeatureStats  `json:"features"`
}

// Engine builds text facts and aggregates feature values
// over them. It is safe for concurrent use.
type Engine struct {
	extractor  *compute.Extractor
	cache      FactsCache
	numWorkers int
}

func (e *Engine) cacheKey(txt *corpus.Text) string {
	return fmt.Sprintf("%s:%s", txt.Checksum(), e.extractor.Params())
}

func (e *Engine) textFacts(ctx context.Context, txt *corpus.Text) (*compute.TextFacts, error) {
	var key string
	if e.cache != nil {
		key = e.cacheKey(txt)
		if cached, ok := e.cache.Get(ctx, key); ok {
			// the same content may be shared by more texts
			ans := *cached
			ans.TextID = txt.ID
			ans.Metadata = txt.Metadata
			return &ans, nil
		}
	}
	ans, err := e.extractor.TextFacts(txt)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Set(ctx, key, ans)
	}
	return ans, nil
}

// recoverable turns a panic of a worker function into
// merror.RecoveredError so a single broken text cannot take
// the whole server down
func recoverable(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
				log.Error().Err(err).Msg("worker panicked")
			}
		}()
		return fn()
	}
}

// Facts extracts facts of all the provided texts in parallel.
// The result preserves the order of texts.
func (e *Engine) Facts(ctx context.Context, texts []*corpus.Text) ([]*compute.TextFacts, error) {
	t0 := time.Now()
	ans := make([]*compute.TextFacts, len(texts))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.numWorkers)
	for i, txt := range texts {
		eg.Go(recoverable(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			tf, err := e.textFacts(egCtx, txt)
			if err != nil {
				return fmt.Errorf("failed to extract facts of text %s: %w", txt.ID, err)
			}
			ans[i] = tf
			return nil
		}))
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debug().
		Int("numTexts", len(texts)).
		Dur("procTime", time.Since(t0)).
		Msg("extracted text facts")
	return ans, nil
}

// unitValues evaluates unit values of all the leaves for all
// the facts in parallel. The result is indexed [fact][leaf].
func (e *Engine) unitValues(
	ctx context.Context,
	leaves []*features.Descriptor,
	facts []*compute.TextFacts,
	params compute.Params,
) ([][][]compute.Value, error) {
	ans := make([][][]compute.Value, len(facts))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.numWorkers)
	for i, tf := range facts {
		eg.Go(recoverable(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			row := make([][]compute.Value, len(leaves))
			for j, leaf := range leaves {
				row[j] = tf.UnitValues(leaf, params)
			}
			ans[i] = row
			return nil
		}))
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ans, nil
}

func filterLang(lang corpus.Language, facts []*compute.TextFacts) []*compute.TextFacts {
	ans := make([]*compute.TextFacts, 0, len(facts))
	for _, tf := range facts {
		if tf.Lang == lang {
			ans = append(ans, tf)
		}
	}
	return ans
}

func summarize(
	family features.ID,
	lang corpus.Language,
	leaves []*features.Descriptor,
	facts []*compute.TextFacts,
	values [][][]compute.Value,
	params compute.Params,
) *FamilyStats {
	ans := &FamilyStats{
		Family:   family,
		Lang:     lang,
		TextIDs:  make([]string, len(facts)),
		Features: make([]FeatureStats, len(leaves)),
	}
	totals := make([]*compute.Counts, len(facts))
	for i, tf := range facts {
		ans.TextIDs[i] = tf.TextID
		totals[i] = tf.Total
	}
	pooledCounts := compute.MergeCounts(totals...)
	for j, leaf := range leaves {
		groups := make([][]compute.Value, len(facts))
		for i := range facts {
			groups[i] = values[i][j]
		}
		ans.Features[j] = FeatureStats{
			Feature: leaf,
			Stats:   Aggregate(Pool(groups...)),
			Overall: compute.ComputeFeature(leaf.ID, pooledCounts, params),
		}
	}
	return ans
}

func (e *Engine) prepare(
	family features.ID,
	lang corpus.Language,
	params compute.Params,
) ([]*features.Descriptor, compute.Params, error) {
	tree, err := features.FeaturesFor(lang)
	if err != nil {
		return nil, params, err
	}
	if tree.Family(family) == nil {
		return nil, params, merror.InternalError{Msg: fmt.Sprintf("unknown feature family %s", family)}
	}
	params.Lang = lang
	return tree.Leaves(family), params, nil
}

// Run aggregates a feature family over texts of a specified
// language. Unit values of all the texts are pooled before
// the statistics are calculated.
func (e *Engine) Run(
	ctx context.Context,
	family features.ID,
	lang corpus.Language,
	facts []*compute.TextFacts,
	params compute.Params,
) (*FamilyStats, error) {
	leaves, params, err := e.prepare(family, lang, params)
	if err != nil {
		return nil, err
	}
	facts = filterLang(lang, facts)
	values, err := e.unitValues(ctx, leaves, facts, params)
	if err != nil {
		return nil, err
	}
	return summarize(family, lang, leaves, facts, values, params), nil
}

// RunEach aggregates a feature family for each text of a specified
// language separately. The result preserves the order of facts.
func (e *Engine) RunEach(
	ctx context.Context,
	family features.ID,
	lang corpus.Language,
	facts []*compute.TextFacts,
	params compute.Params,
) ([]*FamilyStats, error) {
	leaves, params, err := e.prepare(family, lang, params)
	if err != nil {
		return nil, err
	}
	facts = filterLang(lang, facts)
	values, err := e.unitValues(ctx, leaves, facts, params)
	if err != nil {
		return nil, err
	}
	ans := make([]*FamilyStats, len(facts))
	for i, tf := range facts {
		ans[i] = summarize(
			family, lang, leaves, []*compute.TextFacts{tf}, values[i:i+1], params)
	}
	return ans, nil
}

// NewEngine creates an aggregation engine. The cache is optional.
func NewEngine(extractor *compute.Extractor, cache FactsCache, numWorkers int) *Engine {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Engine{
		extractor:  extractor,
		cache:      cache,
		numWorkers: numWorkers,
	}
}
