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
	"context"
	"fmt"
	"lingstat/merror"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Manager keeps user sessions in memory and removes them
// after a period of inactivity.
type Manager struct {
	sessions  map[string]*Session
	lock      sync.RWMutex
	conf      *Conf
	incscBase float64
}

func (m *Manager) Create() *Session {
	m.lock.Lock()
	defer m.lock.Unlock()
	sess := newSession(uuid.New().String(), m.incscBase, m.conf.MaxTexts)
	m.sessions[sess.ID] = sess
	log.Info().Str("sessionId", sess.ID).Msg("created new session")
	return sess
}

func (m *Manager) Get(id string) (*Session, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, merror.ErrNotFound)
	}
	return sess, nil
}

func (m *Manager) Delete(id string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, merror.ErrNotFound)
	}
	delete(m.sessions, id)
	log.Info().Str("sessionId", id).Msg("deleted session")
	return nil
}

func (m *Manager) Size() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.sessions)
}

// removeExpired removes sessions inactive for longer than TTL
// and returns the number of removed items
func (m *Manager) removeExpired(now time.Time) int {
	m.lock.Lock()
	defer m.lock.Unlock()
	var ans int
	for id, sess := range m.sessions {
		if now.Sub(sess.LastAccess()) > m.conf.TTL() {
			delete(m.sessions, id)
			ans++
		}
	}
	return ans
}

func (m *Manager) Start(ctx context.Context) {
	log.Info().Msg("starting session manager")
	go func() {
		ticker := time.NewTicker(m.conf.CleanupInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("session cleanup stopped")
				return
			case now := <-ticker.C:
				if n := m.removeExpired(now); n > 0 {
					log.Info().Int("numRemoved", n).Msg("removed expired sessions")
				}
			}
		}
	}()
}

func (m *Manager) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping session manager")
	return nil
}

func NewManager(conf *Conf, incscBase float64) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		conf:      conf,
		incscBase: incscBase,
	}
}
