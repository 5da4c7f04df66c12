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

package handlers

import (
	"errors"
	"lingstat/merror"
	"lingstat/query"
	"lingstat/results"
	"lingstat/session"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	dfltMaxUploadBytes = 32 * 1024 * 1024
)

// Actions contains HTTP handlers of sessions, texts
// and statistical queries
type Actions struct {
	sessions       *session.Manager
	service        *query.Service
	maxUploadBytes int64
}

// errorStatus maps an error to an HTTP status code
func errorStatus(err error) int {
	var inputErr merror.InputError
	var langErr merror.UnsupportedLanguageError
	var annotErr merror.MalformedAnnotationError
	var treeErr merror.MalformedDependencyTreeError
	var internalErr merror.InternalError
	var recErr merror.RecoveredError
	switch {
	case errors.As(err, &internalErr), errors.As(err, &recErr):
		return http.StatusInternalServerError
	case errors.Is(err, merror.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &langErr), errors.As(err, &annotErr), errors.As(err, &treeErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respondWithError(ctx *gin.Context, err error) {
	uniresp.WriteJSONErrorResponse(
		ctx.Writer,
		uniresp.NewActionErrorFrom(err),
		errorStatus(err),
	)
}

// sessionOrFail finds a session specified by the `sessionId`
// URL parameter. In case it is not found, an error response
// is written and false returned.
func (a *Actions) sessionOrFail(ctx *gin.Context) (*session.Session, bool) {
	sess, err := a.sessions.Get(ctx.Param("sessionId"))
	if err != nil {
		respondWithError(ctx, err)
		return nil, false
	}
	return sess, true
}

func writeResult(ctx *gin.Context, ans results.SerializableResult, err error) {
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if err := ans.Err(); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func NewActions(
	sessions *session.Manager,
	service *query.Service,
	maxUploadBytes int64,
) *Actions {
	if maxUploadBytes <= 0 {
		maxUploadBytes = dfltMaxUploadBytes
	}
	return &Actions{
		sessions:       sessions,
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}
