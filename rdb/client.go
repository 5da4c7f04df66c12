// Copyright 2023 Tomas Machalek <tomas.machalek@gmail.com>
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

package rdb

import (
	"context"
	"fmt"
	"lingstat/compute"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Adapter stores text facts in Redis. All the errors are only
// logged as a failing cache must never fail a query.
type Adapter struct {
	c         *redis.Client
	conf      *Conf
	keyPrefix string
}

func (a *Adapter) mkKey(key string) string {
	return fmt.Sprintf("%s:%s", a.keyPrefix, key)
}

func (a *Adapter) Get(ctx context.Context, key string) (*compute.TextFacts, bool) {
	cmd := a.c.Get(ctx, a.mkKey(key))
	if cmd.Err() == redis.Nil {
		return nil, false

	} else if cmd.Err() != nil {
		log.Error().Err(cmd.Err()).Str("key", key).Msg("failed to get cached text facts")
		return nil, false
	}
	var ans compute.TextFacts
	if err := sonic.UnmarshalString(cmd.Val(), &ans); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cached text facts")
		return nil, false
	}
	return &ans, true
}

func (a *Adapter) Set(ctx context.Context, key string, facts *compute.TextFacts) {
	data, err := sonic.MarshalString(facts)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode text facts")
		return
	}
	if err := a.c.Set(ctx, a.mkKey(key), data, a.conf.TTL()).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to cache text facts")
	}
}

// TestConnection checks whether the Redis server is available
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func (a *Adapter) Close() error {
	return a.c.Close()
}

func NewAdapter(conf *Conf) *Adapter {
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		conf:      conf,
		keyPrefix: conf.KeyPrefix,
	}
}
