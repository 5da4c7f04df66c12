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
	"fmt"
	"io"
	"lingstat/corpus"
	"lingstat/corpus/conllu"
	"lingstat/corpus/vert"
	"lingstat/merror"
	"lingstat/session"
	"net/http"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	FormatCoNLLU   = "conllu"
	FormatVertical = "vert"
)

type sessionResponse struct {
	ID        string            `json:"id"`
	Selection session.Selection `json:"selection"`
}

type uploadResponse struct {
	Added    []corpus.Summary `json:"added"`
	Rejected []error          `json:"rejected"`
}

type textsResponse struct {
	Texts          []session.TextInfo  `json:"texts"`
	MetadataValues map[string][]string `json:"metadataValues"`
	Selection      session.Selection   `json:"selection"`
}

// CreateSession godoc
// @Summary      CreateSession
// @Description  Create a new empty session
// @Produce      json
// @Success      200 {object} sessionResponse
// @Router       /sessions [post]
func (a *Actions) CreateSession(ctx *gin.Context) {
	sess := a.sessions.Create()
	uniresp.WriteJSONResponse(
		ctx.Writer,
		sessionResponse{ID: sess.ID, Selection: sess.Selection()},
	)
}

// DeleteSession godoc
// @Summary      DeleteSession
// @Description  Remove a session along with all its texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} any
// @Router       /sessions/{sessionId} [delete]
func (a *Actions) DeleteSession(ctx *gin.Context) {
	if err := a.sessions.Delete(ctx.Param("sessionId")); err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
}

func (a *Actions) readUpload(ctx *gin.Context) (io.ReadCloser, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, a.maxUploadBytes)
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		fh, err := ctx.FormFile("file")
		if err != nil {
			return nil, merror.InputError{Msg: fmt.Sprintf("failed to read uploaded file: %s", err)}
		}
		return fh.Open()
	}
	return ctx.Request.Body, nil
}

// UploadTexts godoc
// @Summary      UploadTexts
// @Description  Load annotated texts (CoNLL-U or vertical) into a session. Malformed texts are rejected individually.
// @Accept       plain
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        lang query string true "Language of texts" enums(en, sv)
// @Param        format query string false "Input format" enums(conllu, vert) default(conllu)
// @Success      200 {object} uploadResponse
// @Router       /sessions/{sessionId}/texts [post]
func (a *Actions) UploadTexts(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	lang, err := corpus.ParseLanguage(ctx.Query("lang"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	data, err := a.readUpload(ctx)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	defer data.Close()

	var ingested *corpus.Ingested
	switch ctx.DefaultQuery("format", FormatCoNLLU) {
	case FormatCoNLLU:
		ingested, err = conllu.Read(data, lang)
	case FormatVertical:
		ingested, err = vert.Read(data, lang)
	default:
		respondWithError(ctx, merror.InputError{Msg: fmt.Sprintf("unsupported format `%s`", ctx.Query("format"))})
		return
	}
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	if err := sess.AddTexts(ingested.Texts...); err != nil {
		respondWithError(ctx, err)
		return
	}
	ans := uploadResponse{
		Added:    make([]corpus.Summary, len(ingested.Texts)),
		Rejected: ingested.Rejected,
	}
	if ans.Rejected == nil {
		ans.Rejected = []error{}
	}
	for i, t := range ingested.Texts {
		ans.Added[i] = t.Summary()
	}
	log.Info().
		Str("sessionId", sess.ID).
		Int("added", len(ans.Added)).
		Int("rejected", len(ans.Rejected)).
		Msg("texts uploaded")
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// ListTexts godoc
// @Summary      ListTexts
// @Description  List texts of a session along with their selection state
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} textsResponse
// @Router       /sessions/{sessionId}/texts [get]
func (a *Actions) ListTexts(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		textsResponse{
			Texts:          sess.Texts(),
			MetadataValues: sess.MetadataValues(),
			Selection:      sess.Selection(),
		},
	)
}

// SetIncluded godoc
// @Summary      SetIncluded
// @Description  Include a text into (or exclude it from) the selection
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        textId path string true "Text ID"
// @Param        value query int false "1 to include, 0 to exclude" enums(0, 1) default(1)
// @Success      200 {object} any
// @Router       /sessions/{sessionId}/texts/{textId}/included [put]
func (a *Actions) SetIncluded(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	value, err := strconv.ParseBool(ctx.DefaultQuery("value", "1"))
	if err != nil {
		respondWithError(ctx, merror.InputError{Msg: "invalid value of `value`"})
		return
	}
	if err := sess.SetIncluded(ctx.Param("textId"), value); err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, sess.Selection())
}

// RemoveText godoc
// @Summary      RemoveText
// @Description  Remove a text from a session
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        textId path string true "Text ID"
// @Success      200 {object} any
// @Router       /sessions/{sessionId}/texts/{textId} [delete]
func (a *Actions) RemoveText(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	if err := sess.RemoveText(ctx.Param("textId")); err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
}

// UpdateSelection godoc
// @Summary      UpdateSelection
// @Description  Change metadata filter, aggregation mode, INCSC base or included texts
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        update body session.SelectionUpdate true "Selection changes"
// @Success      200 {object} session.Selection
// @Router       /sessions/{sessionId}/selection [put]
func (a *Actions) UpdateSelection(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	var upd session.SelectionUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		respondWithError(ctx, merror.InputError{Msg: fmt.Sprintf("invalid selection update: %s", err)})
		return
	}
	if err := sess.UpdateSelection(upd); err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, sess.Selection())
}
