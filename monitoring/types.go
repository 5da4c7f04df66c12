// Copyright 2023 Tomas Machalek <tomas.machalek@gmail.com>
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

package monitoring

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
)

// JobLog describes a single processed query or ingestion
type JobLog struct {
	Func      string    `json:"func"`
	SessionID string    `json:"sessionId,omitempty"`
	NumTexts  int       `json:"numTexts"`
	Begin     time.Time `json:"begin"`
	End       time.Time `json:"end"`
	Err       error     `json:"error,omitempty"`
}

func (jl JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

func (jl JobLog) MarshalJSON() ([]byte, error) {
	var errMsg string
	if jl.Err != nil {
		errMsg = jl.Err.Error()
	}
	return sonic.Marshal(
		struct {
			Func      string    `json:"func"`
			SessionID string    `json:"sessionId,omitempty"`
			NumTexts  int       `json:"numTexts"`
			Begin     time.Time `json:"begin"`
			End       time.Time `json:"end"`
			Error     string    `json:"error,omitempty"`
		}{
			Func:      jl.Func,
			SessionID: jl.SessionID,
			NumTexts:  jl.NumTexts,
			Begin:     jl.Begin,
			End:       jl.End,
			Error:     errMsg,
		},
	)
}

// ---

type OpLoad struct {
	NumJobs       int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
}

// TotalSpan returns time span covered by the load info
func (ol OpLoad) TotalSpan() time.Duration {
	return ol.LastUpdate.Sub(ol.FirstUpdate)
}

// AvgJobSecs returns mean processing time of a job
func (ol OpLoad) AvgJobSecs() float64 {
	if ol.NumJobs == 0 {
		return 0
	}
	return ol.TotalTimeSecs / float64(ol.NumJobs)
}

func (ol OpLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !ol.FirstUpdate.IsZero() {
		t0 = &ol.FirstUpdate
	}
	if !ol.LastUpdate.IsZero() {
		t1 = &ol.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumJobs       int        `json:"numJobs"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			NumErrors     int        `json:"numErrors"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
			AvgJobSecs    float64    `json:"avgJobSecs"`
		}{
			NumJobs:       ol.NumJobs,
			TotalTimeSecs: ol.TotalTimeSecs,
			NumErrors:     ol.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
			AvgJobSecs:    ol.AvgJobSecs(),
		},
	)
}

// OpsLoad maps operation names to their load
type OpsLoad map[string]OpLoad

func (ol OpsLoad) cleanOldRecords(now time.Time) {
	for k, v := range ol {
		if now.Sub(v.LastUpdate) > StaleLoadTTL {
			delete(ol, k)
		}
	}
}

func (ol OpsLoad) SumLoad() OpLoad {
	var ans OpLoad
	for _, v := range ol {
		ans.NumJobs += v.NumJobs
		ans.NumErrors += v.NumErrors
		ans.TotalTimeSecs += v.TotalTimeSecs
		if ans.FirstUpdate.IsZero() || v.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = v.FirstUpdate
		}
		if v.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = v.LastUpdate
		}
	}
	return ans
}

// StatusWriter persists job logs (e.g. to a time series database)
type StatusWriter interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Write(item JobLog)
}

// NullStatusWriter is used when no persistent monitoring
// is configured
type NullStatusWriter struct{}

func (nsw *NullStatusWriter) Start(ctx context.Context) {}

func (nsw *NullStatusWriter) Stop(ctx context.Context) error {
	return nil
}

func (nsw *NullStatusWriter) Write(item JobLog) {}
