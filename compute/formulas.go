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

package compute

import (
	"lingstat/corpus"
	"lingstat/features"
	"lingstat/wordlist"
	"math"
)

var (
	variationBase = []string{"ADJ", "ADV", "NOUN", "VERB"}
	lexicalPos    = []string{"ADJ", "ADV", "NOUN", "VERB", "PROPN", "INTJ"}
	functionalPos = []string{
		"ADP", "AUX", "CCONJ", "DET", "NUM", "PART", "PRON", "PUNCT", "SCONJ", "SYM", "X"}
)

// Params are evaluation-time parameters of formulas
type Params struct {

	// IncscBase is the N of the "count * N / base" incidence scores
	IncscBase float64

	// Lang restricts Compute to features applicable to the language.
	// Empty value means no restriction.
	Lang corpus.Language
}

func (p Params) base() float64 {
	if p.IncscBase <= 0 {
		return DfltIncscBase
	}
	return p.IncscBase
}

type formula func(c *Counts, p Params) Value

func incsc(n, base int, p Params) Value {
	if base == 0 {
		return NA()
	}
	return Val(float64(n) * p.base() / float64(base))
}

func tokenIncsc(get func(c *Counts) int) formula {
	return func(c *Counts, p Params) Value {
		return incsc(get(c), c.Tokens, p)
	}
}

func verbIncsc(get func(c *Counts) int) formula {
	return func(c *Counts, p Params) Value {
		return incsc(get(c), c.POS(corpus.UPosVerb, corpus.UPosAux), p)
	}
}

func posIncsc(tags ...string) formula {
	return func(c *Counts, p Params) Value {
		return incsc(c.POS(tags...), c.Tokens, p)
	}
}

func levelIncsc(lev wordlist.Level) formula {
	return tokenIncsc(func(c *Counts) int { return c.CEFRCount(lev) })
}

func count(get func(c *Counts) int) formula {
	return func(c *Counts, p Params) Value {
		return Val(float64(get(c)))
	}
}

// perSentence evaluates a sentence-level sum; for a single sentence
// it equals the sum itself, for pooled counts it is the mean
// per sentence.
func perSentence(get func(c *Counts) int) formula {
	return func(c *Counts, p Params) Value {
		return ratio(float64(get(c)), float64(c.Sentences))
	}
}

func variation(tag string) formula {
	return func(c *Counts, p Params) Value {
		return ratio(float64(c.POS(tag)), float64(c.POS(variationBase...)))
	}
}

func fullNominal(c *Counts, p Params) Value {
	return ratio(float64(c.POS("NOUN", "ADP", "PART")), float64(c.POS("VERB", "ADV", "PRON")))
}

// lix is not applicable to a single sentence made of unique
// tokens only, same as ovix
func lix(c *Counts, p Params) Value {
	if c.Words == 0 || c.Sentences == 0 {
		return NA()
	}
	if c.Sentences == 1 && c.NumTypes() == c.Tokens {
		return NA()
	}
	w := float64(c.Words)
	return Val(w/float64(c.Sentences) + 100*float64(c.LongWords)/w)
}

func ovix(c *Counts, p Params) Value {
	tokens := float64(c.Tokens)
	types := float64(c.NumTypes())
	if c.Tokens <= 1 || types == 0 || types == tokens {
		return NA()
	}
	denom := math.Log(2 - math.Log(types)/math.Log(tokens))
	if denom == 0 {
		return NA()
	}
	return Val(math.Log(tokens) / denom)
}

func rootTTR(c *Counts, p Params) Value {
	if c.Tokens == 0 {
		return NA()
	}
	return Val(float64(c.NumTypes()) / math.Sqrt(float64(c.Tokens)))
}

func bilogTTR(c *Counts, p Params) Value {
	if c.NumTypes() <= 1 || c.Tokens == 0 {
		return NA()
	}
	return Val(math.Log(float64(c.Tokens)) / math.Log(float64(c.NumTypes())))
}

func colemanLiau(c *Counts, p Params) Value {
	if c.Words == 0 {
		return NA()
	}
	w := float64(c.Words)
	l := float64(c.Chars) / w * 100
	s := float64(c.Sentences) / w * 100
	return Val(0.0588*l - 0.296*s - 15.8)
}

func fleschReadingEase(c *Counts, p Params) Value {
	if c.Words == 0 || c.Sentences == 0 {
		return NA()
	}
	w := float64(c.Words)
	return Val(206.835 - 1.015*w/float64(c.Sentences) - 84.6*float64(c.Syllables)/w)
}

func fleschKincaid(c *Counts, p Params) Value {
	if c.Words == 0 || c.Sentences == 0 {
		return NA()
	}
	w := float64(c.Words)
	return Val(0.39*w/float64(c.Sentences) + 11.8*float64(c.Syllables)/w - 15.59)
}

func ari(c *Counts, p Params) Value {
	if c.Words == 0 || c.Sentences == 0 {
		return NA()
	}
	w := float64(c.Words)
	return Val(4.71*float64(c.Chars)/w + 0.5*w/float64(c.Sentences) - 21.43)
}

func smog(c *Counts, p Params) Value {
	if c.Sentences == 0 {
		return NA()
	}
	return Val(1.0430*math.Sqrt(float64(c.Polysyllables)*30/float64(c.Sentences)) + 3.1291)
}

var formulas = map[features.ID]formula{
	// general
	features.TokenCount:         count(func(c *Counts) int { return c.Tokens }),
	features.TypeCount:          count(func(c *Counts) int { return c.NumTypes() }),
	features.SpellingErrors:     count(func(c *Counts) int { return c.SpellingErrors }),
	features.CompoundErrors:     count(func(c *Counts) int { return c.CompoundErrors }),
	features.SpellingErrorIncsc: tokenIncsc(func(c *Counts) int { return c.SpellingErrors }),
	features.CompoundErrorIncsc: tokenIncsc(func(c *Counts) int { return c.CompoundErrors }),
	features.Sentences:          count(func(c *Counts) int { return c.Sentences }),
	features.Paragraphs:         count(func(c *Counts) int { return c.Paragraphs }),
	features.WordLength: func(c *Counts, p Params) Value {
		return ratio(float64(c.Chars), float64(c.Words))
	},
	features.SentenceLength: perSentence(func(c *Counts) int { return c.Words }),
	features.ParagraphLengthWords: func(c *Counts, p Params) Value {
		return ratio(float64(c.Words), float64(c.Paragraphs))
	},
	features.ParagraphLengthSents: func(c *Counts, p Params) Value {
		return ratio(float64(c.Sentences), float64(c.Paragraphs))
	},

	// lexical
	features.A1LemmaIncsc:       levelIncsc(wordlist.LevelA1),
	features.A2LemmaIncsc:       levelIncsc(wordlist.LevelA2),
	features.B1LemmaIncsc:       levelIncsc(wordlist.LevelB1),
	features.B2LemmaIncsc:       levelIncsc(wordlist.LevelB2),
	features.C1LemmaIncsc:       levelIncsc(wordlist.LevelC1),
	features.C2LemmaIncsc:       levelIncsc(wordlist.LevelC2),
	features.DifficultWordIncsc: tokenIncsc(func(c *Counts) int { return c.Difficult() }),
	features.DifficultNounVerb:  tokenIncsc(func(c *Counts) int { return c.DifficultNounVerb }),
	features.OutOfListIncsc:     tokenIncsc(func(c *Counts) int { return c.OutOfList }),
	features.KellyLogFrequency: func(c *Counts, p Params) Value {
		return ratio(c.LogWPMSum, float64(c.LogWPMCount))
	},

	// morph
	features.ModalVerbToVerb: verbIncsc(func(c *Counts) int { return c.ModalVerbs }),
	features.PresPartToVerb:  verbIncsc(func(c *Counts) int { return c.PresParticiples }),
	features.PastPartToVerb:  verbIncsc(func(c *Counts) int { return c.PastParticiples }),
	features.PresVerbToVerb:  verbIncsc(func(c *Counts) int { return c.PresVerbs }),
	features.PastVerbToVerb:  verbIncsc(func(c *Counts) int { return c.PastVerbs }),
	features.SupVerbToVerb:   verbIncsc(func(c *Counts) int { return c.SupineVerbs }),
	features.SVerbToVerb: func(c *Counts, p Params) Value {
		return incsc(c.SVerbs, c.POS(corpus.UPosVerb), p)
	},
	features.NounToVerb: func(c *Counts, p Params) Value {
		return incsc(c.POS("NOUN"), c.POS("VERB"), p)
	},
	features.PronToNoun: func(c *Counts, p Params) Value {
		return incsc(c.POS("PRON"), c.POS("NOUN"), p)
	},
	features.PronToPrep: func(c *Counts, p Params) Value {
		return incsc(c.POS("PRON"), c.POS("ADP"), p)
	},
	features.SVerbIncsc:       tokenIncsc(func(c *Counts) int { return c.SVerbs }),
	features.NeuterNounIncsc:  tokenIncsc(func(c *Counts) int { return c.NeuterNouns }),
	features.ThirdSgPronIncsc: tokenIncsc(func(c *Counts) int { return c.ThirdSgPronouns }),
	features.AdjIncsc:         posIncsc("ADJ"),
	features.AdvIncsc:         posIncsc("ADV"),
	features.NounIncsc:        posIncsc("NOUN"),
	features.PartIncsc:        posIncsc("PART"),
	features.PunctIncsc:       posIncsc("PUNCT"),
	features.SconjIncsc:       posIncsc("SCONJ"),
	features.VerbIncsc:        posIncsc("VERB"),
	features.AdjVariation:     variation("ADJ"),
	features.AdvVariation:     variation("ADV"),
	features.NounVariation:    variation("NOUN"),
	features.VerbVariation:    variation("VERB"),
	features.ConjIncsc:        posIncsc("CCONJ", "SCONJ"),
	features.FunctionalIncsc:  posIncsc(functionalPos...),
	features.LexToNonLex: func(c *Counts, p Params) Value {
		return ratio(float64(c.POS(lexicalPos...)), float64(c.POS(functionalPos...)))
	},
	features.LexToToken: func(c *Counts, p Params) Value {
		return ratio(float64(c.POS(lexicalPos...)), float64(c.Tokens))
	},
	features.NominalRatio: fullNominal,
	features.RelIncsc:     tokenIncsc(func(c *Counts) int { return c.RelPronouns }),

	// syntactic
	features.DepLength: perSentence(func(c *Counts) int { return c.DepLengthSum }),
	features.LongArcs:  perSentence(func(c *Counts) int { return c.LongArcs }),
	features.LongestPath: func(c *Counts, p Params) Value {
		if c.Sentences == 0 {
			return NA()
		}
		return Val(float64(c.LongestPath))
	},
	features.RightArcsRatio: func(c *Counts, p Params) Value {
		return ratio(float64(c.RightArcs), float64(c.Arcs))
	},
	features.LeftArcsRatio: func(c *Counts, p Params) Value {
		return ratio(float64(c.LeftArcs), float64(c.Arcs))
	},
	features.ModifierVariation:   tokenIncsc(func(c *Counts) int { return c.PreModifiers + c.PostModifiers }),
	features.PreModifierIncsc:    tokenIncsc(func(c *Counts) int { return c.PreModifiers }),
	features.PostModifierIncsc:   tokenIncsc(func(c *Counts) int { return c.PostModifiers }),
	features.SubordinateIncsc:    tokenIncsc(func(c *Counts) int { return c.SubordinateNodes }),
	features.RelativeClauseIncsc: tokenIncsc(func(c *Counts) int { return c.RelativeNodes }),
	features.PrepCompIncsc:       tokenIncsc(func(c *Counts) int { return c.PrepCompNodes }),

	// readability
	features.Lix:     lix,
	features.Ovix:    ovix,
	features.RootTTR: rootTTR,
	features.SimpleNominal: func(c *Counts, p Params) Value {
		return ratio(float64(c.POS("NOUN")), float64(c.POS("VERB")))
	},
	features.FullNominal:       fullNominal,
	features.BilogTTR:          bilogTTR,
	features.ColemanLiau:       colemanLiau,
	features.FleschReadingEase: fleschReadingEase,
	features.FleschKincaid:     fleschKincaid,
	features.ARI:               ari,
	features.SMOG:              smog,
}

// ComputeFeature evaluates a single feature. Unknown features
// are "not applicable".
func ComputeFeature(id features.ID, c *Counts, p Params) Value {
	fn, ok := formulas[id]
	if !ok || c == nil {
		return NA()
	}
	return fn(c, p)
}

// Compute evaluates all the features of a family (including its
// subfamilies) applicable to p.Lang.
func Compute(family features.ID, c *Counts, p Params) map[features.ID]Value {
	ans := make(map[features.ID]Value)
	for id := range formulas {
		desc, ok := features.Get(id)
		if !ok || desc.Family != family {
			continue
		}
		if p.Lang != "" && !desc.Applicability.AppliesTo(p.Lang) {
			continue
		}
		ans[id] = ComputeFeature(id, c, p)
	}
	return ans
}
