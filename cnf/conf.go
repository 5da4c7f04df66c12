// Copyright 2019 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2019 Institute of the Czech National Corpus,
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

package cnf

import (
	"encoding/json"
	"fmt"
	"lingstat/compute"
	"lingstat/monitoring"
	"lingstat/rdb"
	"lingstat/session"
	"os"
	"path/filepath"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 30
	dfltListenPort             = 8080
	dfltMaxUploadSizeMB        = 32
	dfltTimeZone               = "Europe/Stockholm"
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string           `json:"listenAddress"`
	PublicURL              string           `json:"publicUrl"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	MaxUploadSizeMB        int              `json:"maxUploadSizeMB"`
	Engine                 *compute.Conf    `json:"engine"`
	Sessions               *session.Conf    `json:"sessions"`
	FactsCache             *rdb.Conf        `json:"factsCache"`
	Monitoring             *monitoring.Conf `json:"monitoring"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`
	TimeZone               string           `json:"timeZone"`
	AuthHeaderName         string           `json:"authHeaderName"`
	AuthTokens             []string         `json:"authTokens"`
	APIDocsURLPath         string           `json:"apiDocsUrlPath"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func (conf *Conf) MaxUploadBytes() int64 {
	return int64(conf.MaxUploadSizeMB) * 1024 * 1024
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call c.Validate()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

// DefaultConf creates a configuration for running without
// a config file (e.g. the batch mode)
func DefaultConf() *Conf {
	return &Conf{
		Engine:   compute.DefaultConf(),
		Sessions: &session.Conf{},
		LogLevel: "info",
	}
}

// Validate checks the configuration and fills in defaults.
// Unlike ValidateAndDefaults, it does not terminate the program.
func Validate(conf *Conf) error {
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s", conf.ListenAddress)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}
	if conf.MaxUploadSizeMB <= 0 {
		conf.MaxUploadSizeMB = dfltMaxUploadSizeMB
		log.Warn().Msgf("maxUploadSizeMB not specified, using default: %d", dfltMaxUploadSizeMB)
	}
	if conf.Engine == nil {
		conf.Engine = &compute.Conf{}
	}
	if err := conf.Engine.ValidateAndDefaults("engine"); err != nil {
		return err
	}
	if conf.Sessions == nil {
		conf.Sessions = &session.Conf{}
	}
	if err := conf.Sessions.ValidateAndDefaults("sessions"); err != nil {
		return err
	}
	if err := conf.FactsCache.ValidateAndDefaults("factsCache"); err != nil {
		return err
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	return nil
}

func ValidateAndDefaults(conf *Conf) {
	if err := Validate(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
