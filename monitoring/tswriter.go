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

package monitoring

import (
	"context"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/rs/zerolog/log"
)

/*
Expected tables:

create table lingstat_operations_stats (
  "time" timestamp with time zone NOT NULL,
  num_jobs int,
  num_errors int,
  num_texts int,
  duration_secs float
);
select create_hypertable('lingstat_operations_stats', 'time');

create table lingstat_called_funcs (
	"time" timestamp with time zone NOT NULL,
	func text,
	num_calls int
);
select create_hypertable('lingstat_called_funcs', 'time');

*/

const (
	opsTable   = "lingstat_operations_stats"
	funcsTable = "lingstat_called_funcs"
)

type Conf struct {
	DB *hltscl.PgConf `json:"db"`
}

type TimescaleDBWriter struct {
	tableWriter   *hltscl.TableWriter
	opsDataCh     chan<- hltscl.Entry
	errCh         <-chan hltscl.WriteError
	fnTableWriter *hltscl.TableWriter
	fnDataCh      chan<- hltscl.Entry
	fnErrCh       <-chan hltscl.WriteError
	location      *time.Location
}

func (sw *TimescaleDBWriter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("about to close StatusWriter")
				return
			case err := <-sw.errCh:
				log.Error().
					Err(err.Err).
					Str("entry", err.Entry.String()).
					Str("table", opsTable).
					Msg("error writing data to TimescaleDB")
			case err := <-sw.fnErrCh:
				log.Error().
					Err(err.Err).
					Str("entry", err.Entry.String()).
					Str("table", funcsTable).
					Msg("error writing data to TimescaleDB")
			}
		}
	}()
}

func (sw *TimescaleDBWriter) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping StatusWriter")
	return nil
}

func (sw *TimescaleDBWriter) Write(item JobLog) {
	var numErr int
	if item.Err != nil {
		numErr++
	}
	now := time.Now().In(sw.location)
	sw.opsDataCh <- *sw.tableWriter.NewEntry(now).
		Int("num_jobs", 1).
		Int("num_errors", numErr).
		Int("num_texts", item.NumTexts).
		Float("duration_secs", item.TimeSpent().Seconds())

	sw.fnDataCh <- *sw.fnTableWriter.NewEntry(now).
		Str("func", item.Func).
		Int("num_calls", 1)
}

func NewTimescaleDBWriter(
	ctx context.Context,
	conf hltscl.PgConf,
	tz *time.Location,
) (*TimescaleDBWriter, error) {

	conn, err := hltscl.CreatePool(conf)
	if err != nil {
		return nil, err
	}
	twriter := hltscl.NewTableWriter(conn, opsTable, "time", tz)
	opsDataCh, errCh := twriter.Activate(
		ctx,
		hltscl.WithTimeout(20*time.Second),
	)

	fnwriter := hltscl.NewTableWriter(conn, funcsTable, "time", tz)
	fnDataCh, fnErrCh := fnwriter.Activate(
		ctx,
		hltscl.WithTimeout(20*time.Second),
	)

	return &TimescaleDBWriter{
		tableWriter:   twriter,
		opsDataCh:     opsDataCh,
		errCh:         errCh,
		fnTableWriter: fnwriter,
		fnDataCh:      fnDataCh,
		fnErrCh:       fnErrCh,
		location:      tz,
	}, nil
}

// NewStatusWriter creates a TimescaleDB writer if configured,
// a writer discarding everything otherwise
func NewStatusWriter(ctx context.Context, conf *Conf, tz *time.Location) (StatusWriter, error) {
	if conf == nil || conf.DB == nil {
		log.Warn().Msg("TimescaleDB monitoring not configured, job logs will not be stored")
		return &NullStatusWriter{}, nil
	}
	ans, err := NewTimescaleDBWriter(ctx, *conf.DB, tz)
	if err != nil {
		return nil, err
	}
	return ans, nil
}
