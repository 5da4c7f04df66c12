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

package main

import (
	"context"
	"fmt"
	"lingstat/cnf"
	"lingstat/corpus"
	"lingstat/corpus/conllu"
	"lingstat/corpus/vert"
	"lingstat/export"
	"lingstat/features"
	"lingstat/query"
	"lingstat/results"
	"lingstat/session"
	"os"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
)

type batchArgs struct {
	lang       string
	format     string
	families   string
	outFile    string
	decimalSep string
	perText    bool
	files      []string
}

func (args *batchArgs) familyIDs() ([]features.ID, error) {
	if args.families == "" {
		return features.Families(), nil
	}
	var ans []features.ID
	for _, name := range strings.Split(args.families, ",") {
		id, ok := features.FamilyByName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown feature family `%s`", name)
		}
		ans = append(ans, id)
	}
	return ans, nil
}

func readInputFile(path, format string, lang corpus.Language) (*corpus.Ingested, error) {
	switch format {
	case "conllu":
		return conllu.ReadFile(path, lang)
	case "vert":
		return vert.ReadFile(path, lang)
	}
	return nil, fmt.Errorf("unsupported input format `%s`", format)
}

// runBatch calculates selected feature families of all
// the input files (as a single corpus) and writes them as CSV
func runBatch(conf *cnf.Conf, args *batchArgs) error {
	if len(args.files) == 0 {
		return fmt.Errorf("no input files specified")
	}
	lang, err := corpus.ParseLanguage(args.lang)
	if err != nil {
		return err
	}
	sep := export.DecimalSep(args.decimalSep)
	if err := sep.Validate(); err != nil {
		return err
	}
	famIDs, err := args.familyIDs()
	if err != nil {
		return err
	}
	engine, err := newEngine(conf)
	if err != nil {
		return err
	}

	// CSV may be written to stdout
	progress := uiprogress.New()
	progress.Out = os.Stderr
	progress.Start()
	bar := progress.AddBar(len(args.files) + len(famIDs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var texts []*corpus.Text
	for _, path := range args.files {
		ingested, err := readInputFile(path, args.format, lang)
		if err != nil {
			progress.Stop()
			return err
		}
		for _, rej := range ingested.Rejected {
			log.Warn().Err(rej).Str("file", path).Msg("skipping malformed text")
		}
		texts = append(texts, ingested.Texts...)
		bar.Incr()
	}

	mode := session.ModeMerged
	if args.perText {
		mode = session.ModePerText
	}
	sctx := session.NewContext(texts, mode, conf.Engine.IncscBase)
	service := query.NewService(engine, nil)
	fams := make([]*results.Family, 0, len(famIDs))
	for _, id := range famIDs {
		ans, err := service.GetFamily(context.Background(), sctx, id)
		if err != nil {
			progress.Stop()
			return err
		}
		if fam, ok := ans.(*results.Family); ok {
			fams = append(fams, fam)
		}
		bar.Incr()
	}
	progress.Stop()

	if len(fams) == 0 {
		return fmt.Errorf("no valid texts found")
	}
	if args.outFile == "" {
		return export.WriteCSV(os.Stdout, fams, sep, false)
	}
	return writeOutputFile(args.outFile, fams, sep)
}

// writeOutputFile writes CSV to a file. An error of closing
// the file is reported as it may mean unflushed data.
func writeOutputFile(path string, fams []*results.Family, sep export.DecimalSep) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := export.WriteCSV(f, fams, sep, false); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
