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
	"lingstat/corpus"
	"lingstat/export"
	"lingstat/features"
	"lingstat/merror"
	"lingstat/query"
	"lingstat/results"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	DefaultMaxFreqItems = 100
)

func (a *Actions) family(ctx *gin.Context, family features.ID) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	ans, err := a.service.GetFamily(ctx.Request.Context(), sess.Context(), family)
	writeResult(ctx, ans, err)
}

// General godoc
// @Summary      General
// @Description  Aggregated general features (counts and lengths) of selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} results.Family
// @Router       /sessions/{sessionId}/general [get]
func (a *Actions) General(ctx *gin.Context) {
	a.family(ctx, features.FamilyGeneral)
}

// Lexical godoc
// @Summary      Lexical
// @Description  Aggregated lexical features (CEFR levels, wordlist coverage) of selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} results.Family
// @Router       /sessions/{sessionId}/lexical [get]
func (a *Actions) Lexical(ctx *gin.Context) {
	a.family(ctx, features.FamilyLexical)
}

// Morph godoc
// @Summary      Morph
// @Description  Aggregated morphological features of selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} results.Family
// @Router       /sessions/{sessionId}/morph [get]
func (a *Actions) Morph(ctx *gin.Context) {
	a.family(ctx, features.FamilyMorph)
}

// Syntactic godoc
// @Summary      Syntactic
// @Description  Aggregated syntactic (dependency tree) features of selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} results.Family
// @Router       /sessions/{sessionId}/syntactic [get]
func (a *Actions) Syntactic(ctx *gin.Context) {
	a.family(ctx, features.FamilySyntactic)
}

// Readability godoc
// @Summary      Readability
// @Description  Aggregated readability indices of selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} results.Family
// @Router       /sessions/{sessionId}/readability [get]
func (a *Actions) Readability(ctx *gin.Context) {
	a.family(ctx, features.FamilyReadability)
}

// POSStats godoc
// @Summary      POSStats
// @Description  Frequencies of part of speech tags within selected texts
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        tagset query string false "Tagset" enums(upos, xpos) default(upos)
// @Success      200 {object} results.POSStats
// @Router       /sessions/{sessionId}/pos-stats [get]
func (a *Actions) POSStats(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	tagset := query.Tagset(ctx.DefaultQuery("tagset", string(query.TagsetUPOS)))
	ans, err := a.service.GetPOSStats(ctx.Request.Context(), sess.Context(), tagset)
	writeResult(ctx, ans, err)
}

// Lengths godoc
// @Summary      Lengths
// @Description  Histogram of word, sentence or paragraph lengths
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        metric query string false "Measured length" enums(word, sentence, paragraph-words, paragraph-sentences) default(sentence)
// @Param        filter query string false "Comparison with the bound" enums(ge, le, eq)
// @Param        bound query int false "Bound of the filter" minimum(0)
// @Param        step query int false "Shift of the bound (e.g. 1, -1)"
// @Success      200 {object} results.Lengths
// @Router       /sessions/{sessionId}/lengths [get]
func (a *Actions) Lengths(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	bound, ok := unireq.GetURLIntArgOrFail(ctx, "bound", 0)
	if !ok {
		return
	}
	step, ok := unireq.GetURLIntArgOrFail(ctx, "step", 0)
	if !ok {
		return
	}
	metric := query.LengthMetric(ctx.DefaultQuery("metric", string(query.MetricSentence)))
	filter := query.LengthFilter{
		Op:    query.FilterOp(ctx.Query("filter")),
		Bound: bound,
		Step:  step,
	}
	ans, err := a.service.GetLengths(ctx.Request.Context(), sess.Context(), metric, filter)
	writeResult(ctx, ans, err)
}

// Freqs godoc
// @Summary      Freqs
// @Description  Frequency list of word forms, normalized forms or lemmas
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        category query string false "Counted attribute" enums(form, norm, lemma) default(lemma)
// @Param        tagset query string false "Tagset" enums(upos, xpos) default(upos)
// @Param        minFreq query int false "Minimum frequency" minimum(0) default(1)
// @Param        posSplit query int false "Distinguish items by tag" enums(0, 1) default(0)
// @Param        pos query []string false "Tags to include"
// @Param        maxItems query int false "Maximum number of items" default(100)
// @Success      200 {object} results.FreqList
// @Router       /sessions/{sessionId}/freqs [get]
func (a *Actions) Freqs(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	minFreq, ok := unireq.GetURLIntArgOrFail(ctx, "minFreq", 1)
	if !ok {
		return
	}
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", DefaultMaxFreqItems)
	if !ok {
		return
	}
	var pos []string
	for _, v := range ctx.QueryArray("pos") {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				pos = append(pos, item)
			}
		}
	}
	args := query.FreqArgs{
		Category: query.FreqCategory(ctx.DefaultQuery("category", string(query.CategoryLemma))),
		Tagset:   query.Tagset(ctx.DefaultQuery("tagset", string(query.TagsetUPOS))),
		MinFreq:  minFreq,
		POSSplit: ctx.Query("posSplit") == "1",
		POS:      pos,
		MaxItems: maxItems,
	}
	ans, err := a.service.GetFrequencyList(ctx.Request.Context(), sess.Context(), args)
	writeResult(ctx, ans, err)
}

// Export godoc
// @Summary      Export
// @Description  Export selected family tables as CSV
// @Produce      text/csv
// @Param        sessionId path string true "Session ID"
// @Param        families query []string false "Families to export" default(general,lexical,morph,syntactic,readability)
// @Param        decimalSep query string false "Decimal separator (comma switches the delimiter to semicolon)" enums(".", ",") default(.)
// @Param        corpusOnly query int false "Export only tables of the whole selection" enums(0, 1) default(0)
// @Success      200 {string} string
// @Router       /sessions/{sessionId}/export [get]
func (a *Actions) Export(ctx *gin.Context) {
	sess, ok := a.sessionOrFail(ctx)
	if !ok {
		return
	}
	sep := export.DecimalSep(ctx.DefaultQuery("decimalSep", string(export.DecimalPeriod)))
	if err := sep.Validate(); err != nil {
		respondWithError(ctx, err)
		return
	}
	var famIDs []features.ID
	for _, v := range ctx.QueryArray("families") {
		for _, name := range strings.Split(v, ",") {
			id, ok := features.FamilyByName(strings.TrimSpace(name))
			if !ok {
				respondWithError(ctx, merror.InputError{Msg: fmt.Sprintf("unknown feature family `%s`", name)})
				return
			}
			famIDs = append(famIDs, id)
		}
	}
	if len(famIDs) == 0 {
		famIDs = features.Families()
	}
	sctx := sess.Context()
	if sctx.IsEmpty() {
		uniresp.WriteJSONResponse(ctx.Writer, &results.Empty{Query: "export"})
		return
	}
	fams := make([]*results.Family, 0, len(famIDs))
	for _, id := range famIDs {
		ans, err := a.service.GetFamily(ctx.Request.Context(), sctx, id)
		if err != nil {
			respondWithError(ctx, err)
			return
		}
		if fam, ok := ans.(*results.Family); ok {
			fams = append(fams, fam)
		}
	}
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="lingstat-export.csv"`)
	ctx.Status(http.StatusOK)
	if err := export.WriteCSV(ctx.Writer, fams, sep, ctx.Query("corpusOnly") == "1"); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
	}
}

// Features godoc
// @Summary      Features
// @Description  Feature tree (families, subfamilies and features) of a language
// @Produce      json
// @Param        lang path string true "Language" enums(en, sv)
// @Success      200 {object} any
// @Router       /features/{lang} [get]
func (a *Actions) Features(ctx *gin.Context) {
	lang, err := corpus.ParseLanguage(ctx.Param("lang"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	tree, err := features.FeaturesFor(lang)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, tree)
}
