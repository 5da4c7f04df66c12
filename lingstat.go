// Copyright 2023 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2023 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2023 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"lingstat/aggreg"
	"lingstat/cnf"
	"lingstat/compute"
	"lingstat/corpus"
	"lingstat/rdb"
	"lingstat/syllab"
	"lingstat/wordlist"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type versionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func getRequestOrigin(ctx *gin.Context) string {
	currOrigin, ok := ctx.Request.Header["Origin"]
	if ok {
		return currOrigin[0]
	}
	return ""
}

func additionalLogEvents() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logging.AddLogEvent(ctx, "userAgent", ctx.Request.UserAgent())
		logging.AddLogEvent(ctx, "sessionId", ctx.Param("sessionId"))
		ctx.Next()
	}
}

func CORSMiddleware(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if strings.HasSuffix(ctx.Request.URL.Path, "/openapi") {
			ctx.Header("Access-Control-Allow-Origin", "*")
			ctx.Header("Access-Control-Allow-Methods", "GET")
			ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		} else {
			var allowedOrigin string
			currOrigin := getRequestOrigin(ctx)
			for _, origin := range conf.CorsAllowedOrigins {
				if currOrigin == origin {
					allowedOrigin = origin
					break
				}
			}
			if allowedOrigin != "" {
				ctx.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				ctx.Writer.Header().Set(
					"Access-Control-Allow-Headers",
					"Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With",
				)
				ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			}

			if ctx.Request.Method == "OPTIONS" {
				ctx.AbortWithStatus(204)
				return
			}
		}
		ctx.Next()
	}
}

func AuthRequired(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(conf.AuthHeaderName) > 0 && !collections.SliceContains(conf.AuthTokens, ctx.GetHeader(conf.AuthHeaderName)) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		ctx.Next()
	}
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

// newEngine loads configured wordlists and creates
// an aggregation engine along with a facts cache
func newEngine(conf *cnf.Conf) (*aggreg.Engine, error) {
	lexicons := make(map[corpus.Language]compute.Lexicon)
	for langCode, path := range conf.Engine.Wordlists {
		lang, err := corpus.ParseLanguage(langCode)
		if err != nil {
			return nil, fmt.Errorf("invalid wordlist configuration: %w", err)
		}
		list, err := wordlist.LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("lang", lang.String()).
			Int("size", list.Size()).
			Msg("loaded wordlist")
		lexicons[lang] = list
	}
	counters := make(map[corpus.Language]compute.SyllableCounter)
	for _, lang := range corpus.SupportedLanguages {
		counters[lang] = syllab.ForLanguage(lang)
	}
	extractor := compute.NewExtractor(conf.Engine, lexicons, counters)
	return aggreg.NewEngine(extractor, rdb.NewFactsCache(conf.FactsCache), conf.Engine.NumWorkers), nil
}

// @title           LingStat API
// @version         0.1
// @description     Linguistic feature statistics of annotated English and Swedish texts
func main() {
	version := versionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	batchConf := new(batchArgs)
	flag.StringVar(&batchConf.lang, "lang", "sv", "language of processed texts (batch)")
	flag.StringVar(&batchConf.format, "format", "conllu", "input format, conllu or vert (batch)")
	flag.StringVar(&batchConf.families, "families", "", "comma separated families to export (batch, default: all)")
	flag.StringVar(&batchConf.outFile, "out", "", "output CSV file (batch, default: stdout)")
	flag.StringVar(&batchConf.decimalSep, "decimal-sep", ".", "decimal separator, `.` or `,` (batch)")
	flag.BoolVar(&batchConf.perText, "per-text", false, "add a table for each text (batch)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "LINGSTAT - linguistic feature statistics of annotated texts\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] server [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] batch [config.json] file...\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("lingstat %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	var conf *cnf.Conf
	if action == "batch" && !strings.HasSuffix(flag.Arg(1), ".json") {
		conf = cnf.DefaultConf()
		batchConf.files = flag.Args()[1:]

	} else {
		conf = cnf.LoadConfig(flag.Arg(1))
		batchConf.files = flag.Args()[min(2, flag.NArg()):]
	}

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return

	} else if action == "batch" {
		// the output may go to stdout
		logging.SetupLogging(conf.LogFile, "warning")

	} else {
		logging.SetupLogging(conf.LogFile, conf.LogLevel)
	}

	log.Info().Msg("Starting LingStat")
	cnf.ValidateAndDefaults(conf)

	switch action {
	case "server":
		runApiServer(conf, version)
	case "batch":
		if err := runBatch(conf, batchConf); err != nil {
			log.Fatal().Err(err).Msg("batch processing failed")
		}
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
