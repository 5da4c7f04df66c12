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
	"errors"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	StaleLoadTTL    = time.Hour * 24
	cleanupInterval = 10 * time.Minute
	recentLogSize   = 100
)

var (
	ErrOperationNotFound = errors.New("operation not found")
)

// JobLogger collects job logs of query operations and
// provides load summaries
type JobLogger struct {
	loadData     OpsLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[JobLog]
	tz           *time.Location
	statusWriter StatusWriter
}

func (w *JobLogger) Log(rec JobLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	entry, ok := w.loadData[rec.Func]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumJobs++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.TimeSpent().Seconds()
	w.loadData[rec.Func] = entry
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *JobLogger) TotalLoad() OpLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.loadData.SumLoad()
}

func (w *JobLogger) RecentLoad() OpLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans OpLoad
	w.recentLog.ForEach(func(i int, item JobLog) bool {
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	return ans
}

func (w *JobLogger) RecentRecords() []JobLog {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans := make([]JobLog, w.recentLog.Len())
	w.recentLog.ForEach(func(i int, item JobLog) bool {
		ans[i] = item
		return true
	})
	return ans
}

func (w *JobLogger) TotalOpLoad(op string) (OpLoad, error) {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans, ok := w.loadData[op]
	if !ok {
		return ans, ErrOperationNotFound
	}
	return ans, nil
}

func (w *JobLogger) RecentOpLoad(op string) (OpLoad, error) {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans OpLoad
	var found bool
	w.recentLog.ForEach(func(i int, item JobLog) bool {
		if item.Func != op {
			return true
		}
		if !found {
			ans.FirstUpdate = item.Begin
			found = true
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	if found {
		return ans, nil
	}
	return ans, ErrOperationNotFound
}

func (w *JobLogger) Start(ctx context.Context) {
	log.Info().Msg("starting job logger")
	w.statusWriter.Start(ctx)
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("requesting job logger stop")
				return
			case <-ticker.C:
				w.dataLock.Lock()
				w.loadData.cleanOldRecords(time.Now().In(w.tz))
				w.dataLock.Unlock()
			}
		}
	}()
}

func (w *JobLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down job logger")
	return w.statusWriter.Stop(ctx)
}

func NewJobLogger(
	statusWriter StatusWriter,
	tz *time.Location,
) *JobLogger {
	if statusWriter == nil {
		statusWriter = &NullStatusWriter{}
	}
	return &JobLogger{
		loadData:     make(OpsLoad),
		recentLog:    collections.NewCircularList[JobLog](recentLogSize),
		statusWriter: statusWriter,
		tz:           tz,
	}
}
