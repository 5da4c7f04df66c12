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
	"embed"
	"fmt"
	"lingstat/cnf"
	"lingstat/docs"
	"lingstat/handlers"
	"lingstat/monitoring"
	monitoringActions "lingstat/monitoring/handlers"
	"lingstat/query"
	"lingstat/session"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type apiServer struct {
	server    *http.Server
	conf      *cnf.Conf
	version   versionInfo
	sessions  *session.Manager
	service   *query.Service
	jobLogger *monitoring.JobLogger
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

func mkServerInfo(conf *cnf.Conf, version versionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(
			ctx.Writer,
			map[string]any{
				"name":      "LingStat",
				"version":   version,
				"publicUrl": conf.PublicURL,
				"languages": []string{"en", "sv"},
			},
		)
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	actions := handlers.NewActions(api.sessions, api.service, api.conf.MaxUploadBytes())

	engine.GET("/", mkServerInfo(api.conf, api.version))

	if api.conf.APIDocsURLPath != "" {
		docs.SwaggerInfo.BasePath = api.conf.APIDocsURLPath
	}

	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("Failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	engine.GET("/features/:lang", actions.Features)

	sessions := engine.Group("/sessions").Use(AuthRequired(api.conf))

	sessions.POST("", actions.CreateSession)
	sessions.DELETE("/:sessionId", actions.DeleteSession)

	sessions.POST(
		"/:sessionId/texts", actions.UploadTexts)
	sessions.GET(
		"/:sessionId/texts", actions.ListTexts)
	sessions.PUT(
		"/:sessionId/texts/:textId/included", actions.SetIncluded)
	sessions.DELETE(
		"/:sessionId/texts/:textId", actions.RemoveText)
	sessions.PUT(
		"/:sessionId/selection", actions.UpdateSelection)

	sessions.GET("/:sessionId/general", actions.General)
	sessions.GET("/:sessionId/lexical", actions.Lexical)
	sessions.GET("/:sessionId/morph", actions.Morph)
	sessions.GET("/:sessionId/syntactic", actions.Syntactic)
	sessions.GET("/:sessionId/readability", actions.Readability)
	sessions.GET("/:sessionId/pos-stats", actions.POSStats)
	sessions.GET("/:sessionId/lengths", actions.Lengths)
	sessions.GET("/:sessionId/freqs", actions.Freqs)
	sessions.GET("/:sessionId/export", actions.Export)

	monActions := monitoringActions.NewActions(api.jobLogger)
	monitoringGroup := engine.Group("/monitoring").Use(AuthRequired(api.conf))
	monitoringGroup.GET("/load", monActions.Load)
	monitoringGroup.GET("/ops/:op", monActions.OperationLoad)
	monitoringGroup.GET("/recent", monActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down LingStat HTTP API server")
	return api.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf, version versionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := newEngine(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feature engine")
		return
	}
	statusWriter, err := monitoring.NewStatusWriter(ctx, conf.Monitoring, conf.TimezoneLocation())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize monitoring")
		return
	}
	jobLogger := monitoring.NewJobLogger(statusWriter, conf.TimezoneLocation())
	sessions := session.NewManager(conf.Sessions, conf.Engine.IncscBase)
	server := &apiServer{
		conf:      conf,
		version:   version,
		sessions:  sessions,
		service:   query.NewService(engine, jobLogger),
		jobLogger: jobLogger,
	}

	services := []service{jobLogger, sessions, server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
