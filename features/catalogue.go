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

package features

import "lingstat/corpus"

// Applicability specifies languages a feature is defined for
type Applicability string

const (
	Shared      Applicability = "shared"
	EnglishOnly Applicability = "en"
	SwedishOnly Applicability = "sv"
)

func (a Applicability) AppliesTo(lang corpus.Language) bool {
	return a == Shared || string(a) == string(lang)
}

// Unit is the level of text units a feature value is
// evaluated for before aggregation.
type Unit string

const (
	UnitToken     Unit = "token"
	UnitSentence  Unit = "sentence"
	UnitParagraph Unit = "paragraph"
	UnitText      Unit = "text"
)

// Descriptor is an immutable description of a computable feature
type Descriptor struct {
	ID            ID            `json:"id"`
	Family        ID            `json:"family"`
	Subfamily     ID            `json:"subfamily,omitempty"`
	Applicability Applicability `json:"applicability"`
	LabelKey      string        `json:"labelKey"`
	Formula       string        `json:"formula"`
	Unit          Unit          `json:"unit"`
	labels        map[corpus.Language]string
	defaultLabel  string
}

// Label returns a language-specific label of the feature
func (d *Descriptor) Label(lang corpus.Language) string {
	if v, ok := d.labels[lang]; ok {
		return v
	}
	return d.defaultLabel
}

type descArgs struct {
	id      ID
	key     string
	label   string
	formula string
	unit    Unit
	appl    Applicability
	labels  map[corpus.Language]string
}

// groupDef describes a family or a subfamily
type groupDef struct {
	id      ID
	key     string
	label   string
	formula string
}

var groups = map[ID]groupDef{
	FamilyGeneral: {
		FamilyGeneral, "general", "General",
		"Basic counts and length distributions"},
	FamilyLexical: {
		FamilyLexical, "lexical", "Lexical",
		"Incidence of lemmas by CEFR level of the Kelly list"},
	FamilyMorph: {
		FamilyMorph, "morph", "Morphological",
		"Ratios and incidences over parts of speech and morphological features"},
	FamilySyntactic: {
		FamilySyntactic, "syntactic", "Syntactic",
		"Dependency tree based measures"},
	FamilyReadability: {
		FamilyReadability, "readability", "Readability",
		"Readability indices"},
	SubVerbForm: {
		SubVerbForm, "VERBFORM", "VERBFORM",
		"Incidence of a verb form among all verbs (VERB + AUX)"},
	SubPosPos: {
		SubPosPos, "PoS-PoS", "PoS-PoS",
		"Incidence of a part of speech relative to another one"},
	SubSubPosAll: {
		SubSubPosAll, "SubPoS-ALL", "SubPoS-ALL",
		"Incidence of a part of speech subtype among all tokens"},
	SubPosAll: {
		SubPosAll, "PoS-ALL", "PoS-ALL",
		"Incidence of a part of speech among all tokens"},
	SubPosMultiPos: {
		SubPosMultiPos, "PoS-MultiPoS", "PoS-MultiPoS",
		"Ratio of a part of speech to ADJ + ADV + NOUN + VERB"},
	SubMultiPosMultiPos: {
		SubMultiPosMultiPos, "MultiPoS-MultiPoS", "MultiPoS-MultiPoS",
		"Composite part of speech measures"},
}

const (
	fIncsc = "count * N / tokens"
	fVerb  = "count * N / (VERB + AUX)"
)

var descriptorArgs = []descArgs{
	// general
	{id: TokenCount, key: "token_count", label: "Token-count", formula: "number of tokens", unit: UnitSentence},
	{id: TypeCount, key: "type_count", label: "Type-count", formula: "number of distinct normalized word forms", unit: UnitSentence},
	{id: SpellingErrors, key: "spelling_errors", label: "Spelling errors", formula: "number of tokens flagged as misspelled", unit: UnitSentence},
	{id: CompoundErrors, key: "compound_errors", label: "Compound errors", formula: "number of tokens flagged as erroneous compounds", unit: UnitSentence},
	{id: SpellingErrorIncsc, key: "spelling_error_incsc", label: "Spelling error INCSC", formula: fIncsc, unit: UnitSentence},
	{id: CompoundErrorIncsc, key: "compound_error_incsc", label: "Compound error INCSC", formula: fIncsc, unit: UnitSentence},
	{id: Sentences, key: "sentences", label: "Sentences", formula: "number of sentences", unit: UnitText},
	{id: Paragraphs, key: "paragraphs", label: "Paragraphs", formula: "number of paragraphs", unit: UnitText},
	{id: WordLength, key: "word_length", label: "Word length", formula: "characters / words (punctuation excluded)", unit: UnitToken},
	{id: SentenceLength, key: "sentence_length", label: "Sentence length (n words)", formula: "words per sentence (punctuation excluded)", unit: UnitSentence},
	{id: ParagraphLengthWords, key: "paragraph_length_words", label: "Paragraph length (n words)", formula: "words per paragraph (punctuation excluded)", unit: UnitParagraph},
	{id: ParagraphLengthSents, key: "paragraph_length_sents", label: "Paragraph length (n sentences)", formula: "sentences per paragraph", unit: UnitParagraph},

	// lexical
	{id: A1LemmaIncsc, key: "a1_lemma_incsc", label: "A1 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: A2LemmaIncsc, key: "a2_lemma_incsc", label: "A2 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: B1LemmaIncsc, key: "b1_lemma_incsc", label: "B1 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: B2LemmaIncsc, key: "b2_lemma_incsc", label: "B2 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: C1LemmaIncsc, key: "c1_lemma_incsc", label: "C1 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: C2LemmaIncsc, key: "c2_lemma_incsc", label: "C2 lemma INCSC", formula: fIncsc, unit: UnitSentence},
	{id: DifficultWordIncsc, key: "difficult_word_incsc", label: "Difficult Word INCSC", formula: "(B2 + C1 + C2 lemmas) * N / tokens", unit: UnitSentence},
	{id: DifficultNounVerb, key: "difficult_noun_verb_incsc", label: "Difficult Noun or Verb INCSC", formula: "(B2 + C1 + C2 NOUN or VERB lemmas) * N / tokens", unit: UnitSentence},
	{id: OutOfListIncsc, key: "out_of_kelly_incsc", label: "Out of Kelly-list INCSC", formula: "(tokens not in the list) * N / tokens", unit: UnitSentence},
	{id: KellyLogFrequency, key: "kelly_log_frequency", label: "Kelly log-frequency", formula: "mean ln(wpm) of tokens found in the list", unit: UnitSentence, appl: SwedishOnly},

	// morph
	{id: ModalVerbToVerb, key: "modal_verb_to_verb", label: "Modal VERB to VERB", formula: fVerb, unit: UnitSentence},
	{id: PresPartToVerb, key: "pres_participle_to_verb", label: "Present Participle to VERB", formula: fVerb, unit: UnitSentence},
	{id: PastPartToVerb, key: "past_participle_to_verb", label: "Past Participle to VERB", formula: fVerb, unit: UnitSentence},
	{id: PresVerbToVerb, key: "pres_verb_to_verb", label: "Present VERB to VERB", formula: fVerb, unit: UnitSentence},
	{id: PastVerbToVerb, key: "past_verb_to_verb", label: "Past VERB to VERB", formula: fVerb, unit: UnitSentence},
	{id: SupVerbToVerb, key: "supine_verb_to_verb", label: "Supine VERB to VERB", formula: fVerb, unit: UnitSentence},
	{id: SVerbToVerb, key: "s_verb_to_verb", label: "S-VERB to VERB", formula: "count * N / VERB", unit: UnitSentence, appl: SwedishOnly},
	{id: NounToVerb, key: "noun_to_verb", label: "NOUN to VERB", formula: "NOUN * N / VERB", unit: UnitSentence},
	{id: PronToNoun, key: "pron_to_noun", label: "PRON to NOUN", formula: "PRON * N / NOUN", unit: UnitSentence},
	{id: PronToPrep, key: "pron_to_prep", label: "PRON to PREP", formula: "PRON * N / ADP", unit: UnitSentence},
	{id: SVerbIncsc, key: "s_verb_incsc", label: "S-VERB INCSC", formula: fIncsc, unit: UnitSentence},
	{id: NeuterNounIncsc, key: "neuter_noun_incsc", label: "Neuter Gender NOUN INCSC", formula: fIncsc, unit: UnitSentence, appl: SwedishOnly},
	{id: ThirdSgPronIncsc, key: "third_sg_pron_incsc", label: "3SG PRON INCSC", formula: fIncsc, unit: UnitSentence, appl: EnglishOnly},
	{id: AdjIncsc, key: "adj_incsc", label: "ADJ INCSC", formula: fIncsc, unit: UnitSentence},
	{id: AdvIncsc, key: "adv_incsc", label: "ADV INCSC", formula: fIncsc, unit: UnitSentence},
	{id: NounIncsc, key: "noun_incsc", label: "NOUN INCSC", formula: fIncsc, unit: UnitSentence},
	{id: PartIncsc, key: "part_incsc", label: "PART INCSC", formula: fIncsc, unit: UnitSentence},
	{id: PunctIncsc, key: "punct_incsc", label: "PUNCT INCSC", formula: fIncsc, unit: UnitSentence},
	{id: SconjIncsc, key: "sconj_incsc", label: "SCONJ INCSC", formula: fIncsc, unit: UnitSentence},
	{id: VerbIncsc, key: "verb_incsc", label: "VERB INCSC", formula: fIncsc, unit: UnitSentence},
	{id: AdjVariation, key: "adj_variation", label: "ADJ Variation", formula: "ADJ / (ADJ + ADV + NOUN + VERB)", unit: UnitSentence},
	{id: AdvVariation, key: "adv_variation", label: "ADV Variation", formula: "ADV / (ADJ + ADV + NOUN + VERB)", unit: UnitSentence},
	{id: NounVariation, key: "noun_variation", label: "NOUN Variation", formula: "NOUN / (ADJ + ADV + NOUN + VERB)", unit: UnitSentence},
	{id: VerbVariation, key: "verb_variation", label: "VERB Variation", formula: "VERB / (ADJ + ADV + NOUN + VERB)", unit: UnitSentence},
	{id: ConjIncsc, key: "conj_incsc", label: "CCONJ & SCONJ INCSC", formula: "(CCONJ + SCONJ) * N / tokens", unit: UnitSentence},
	{id: FunctionalIncsc, key: "functional_incsc", label: "Functional Token INCSC", formula: "functional tokens * N / tokens", unit: UnitSentence},
	{id: LexToNonLex, key: "lex_to_non_lex", label: "Lex to Non-Lex", formula: "lexical tokens / functional tokens", unit: UnitSentence},
	{id: LexToToken, key: "lex_to_token", label: "Lex to Token", formula: "lexical tokens / tokens", unit: UnitSentence},
	{id: NominalRatio, key: "nominal_ratio", label: "Nominal Ratio", formula: "(NOUN + ADP + PART) / (VERB + ADV + PRON)", unit: UnitSentence},
	{id: RelIncsc, key: "rel_incsc", label: "Rel INCSC", formula: "relative and interrogative pronouns * N / tokens", unit: UnitSentence},

	// syntactic
	{id: DepLength, key: "dep_length", label: "Dependency length", formula: "sum of |position - head| over non-root tokens", unit: UnitSentence},
	{id: LongArcs, key: "long_arcs", label: "Dependency arcs of length 5 or more", formula: "distinct root path segments with at least 5 arcs (6 nodes)", unit: UnitSentence},
	{id: LongestPath, key: "longest_path", label: "Longest dependency length", formula: "maximum depth of a token", unit: UnitSentence},
	{id: RightArcsRatio, key: "right_arcs_ratio", label: "Ratio of right dependency arcs", formula: "arcs with head before dependent / non-root arcs", unit: UnitSentence},
	{id: LeftArcsRatio, key: "left_arcs_ratio", label: "Ratio of left dependency arcs", formula: "arcs with head after dependent / non-root arcs", unit: UnitSentence},
	{id: ModifierVariation, key: "modifier_variation", label: "Modifier variation", formula: "(pre-modifiers + post-modifiers) * N / tokens", unit: UnitSentence},
	{id: PreModifierIncsc, key: "pre_modifier_incsc", label: "Pre-modifier INCSC", formula: fIncsc, unit: UnitSentence},
	{id: PostModifierIncsc, key: "post_modifier_incsc", label: "Post-modifier INCSC", formula: fIncsc, unit: UnitSentence},
	{id: SubordinateIncsc, key: "subordinate_incsc", label: "Subordinate INCSC", formula: "subordinate clause nodes * N / tokens", unit: UnitSentence},
	{id: RelativeClauseIncsc, key: "relative_clause_incsc", label: "Relative clause INCSC", formula: "relative clause nodes * N / tokens", unit: UnitSentence},
	{id: PrepCompIncsc, key: "prep_comp_incsc", label: "Prepositional complement INCSC", formula: "prepositional complement nodes * N / tokens", unit: UnitSentence},

	// readability
	{id: RootTTR, key: "root_ttr", label: "Root TTR", formula: "types / sqrt(tokens)", unit: UnitText,
		labels: map[corpus.Language]string{corpus.LangSwedish: "Typ-token ratio (rotbaserad)"}},
	{id: Lix, key: "lix", label: "LIX", formula: "words / sentences + 100 * long words / words", unit: UnitText, appl: SwedishOnly},
	{id: Ovix, key: "ovix", label: "OVIX", formula: "ln(tokens) / ln(2 - ln(types) / ln(tokens))", unit: UnitText, appl: SwedishOnly},
	{id: SimpleNominal, key: "simple_nominal_ratio", label: "Enkel nominalkvot", formula: "NOUN / VERB", unit: UnitText, appl: SwedishOnly},
	{id: FullNominal, key: "full_nominal_ratio", label: "Full nominalkvot", formula: "(NOUN + ADP + PART) / (VERB + ADV + PRON)", unit: UnitText, appl: SwedishOnly},
	{id: BilogTTR, key: "bilog_ttr", label: "Bilogarithm TTR", formula: "ln(tokens) / ln(types)", unit: UnitText, appl: EnglishOnly},
	{id: ColemanLiau, key: "coleman_liau", label: "Coleman Liau Index", formula: "0.0588 * L - 0.296 * S - 15.8", unit: UnitText, appl: EnglishOnly},
	{id: FleschReadingEase, key: "flesch_reading_ease", label: "Flesch Reading Ease", formula: "206.835 - 1.015 * words / sentences - 84.6 * syllables / words", unit: UnitText, appl: EnglishOnly},
	{id: FleschKincaid, key: "flesch_kincaid_grade", label: "Flesch Kincaid Grade level", formula: "0.39 * words / sentences + 11.8 * syllables / words - 15.59", unit: UnitText, appl: EnglishOnly},
	{id: ARI, key: "ari", label: "Automated Readability Index", formula: "4.71 * characters / words + 0.5 * words / sentences - 21.43", unit: UnitText, appl: EnglishOnly},
	{id: SMOG, key: "smog", label: "SMOG", formula: "1.0430 * sqrt(polysyllables * 30 / sentences) + 3.1291", unit: UnitText, appl: EnglishOnly},
}

// nodeDef is a node of the canonical (shared) feature tree
type nodeDef struct {
	id       ID
	children []nodeDef
}

func leaves(ids ...ID) []nodeDef {
	ans := make([]nodeDef, len(ids))
	for i, id := range ids {
		ans[i] = nodeDef{id: id}
	}
	return ans
}

var canonicalTree = []nodeDef{
	{
		id: FamilyGeneral,
		children: leaves(
			TokenCount, TypeCount, SpellingErrors, CompoundErrors, SpellingErrorIncsc,
			CompoundErrorIncsc, Sentences, Paragraphs, WordLength, SentenceLength,
			ParagraphLengthWords, ParagraphLengthSents,
		),
	},
	{
		id: FamilyLexical,
		children: leaves(
			A1LemmaIncsc, A2LemmaIncsc, B1LemmaIncsc, B2LemmaIncsc, C1LemmaIncsc,
			C2LemmaIncsc, DifficultWordIncsc, DifficultNounVerb, OutOfListIncsc,
		),
	},
	{
		id: FamilyMorph,
		children: []nodeDef{
			{
				id: SubVerbForm,
				children: leaves(
					ModalVerbToVerb, PresPartToVerb, PastPartToVerb, PresVerbToVerb,
					PastVerbToVerb, SupVerbToVerb,
				),
			},
			{id: SubPosPos, children: leaves(NounToVerb, PronToNoun, PronToPrep)},
			{id: SubSubPosAll, children: leaves(SVerbIncsc)},
			{
				id: SubPosAll,
				children: leaves(
					AdjIncsc, AdvIncsc, NounIncsc, PartIncsc, PunctIncsc, SconjIncsc, VerbIncsc),
			},
			{
				id:       SubPosMultiPos,
				children: leaves(AdjVariation, AdvVariation, NounVariation, VerbVariation),
			},
			{
				id: SubMultiPosMultiPos,
				children: leaves(
					ConjIncsc, FunctionalIncsc, LexToNonLex, LexToToken, NominalRatio, RelIncsc),
			},
		},
	},
	{
		id: FamilySyntactic,
		children: leaves(
			DepLength, LongArcs, LongestPath, RightArcsRatio, LeftArcsRatio,
			ModifierVariation, PreModifierIncsc, PostModifierIncsc, SubordinateIncsc,
			RelativeClauseIncsc, PrepCompIncsc,
		),
	},
	{
		id:       FamilyReadability,
		children: leaves(RootTTR),
	},
}

// insertion places language-specific leaves into the canonical tree.
// With a zero anchor, leaves are appended to the parent's children.
type insertion struct {
	lang   corpus.Language
	parent ID
	anchor ID
	before bool
	leaves []ID
}

var insertions = []insertion{
	{lang: corpus.LangEnglish, parent: FamilyReadability, anchor: RootTTR, before: true, leaves: []ID{BilogTTR}},
	{
		lang: corpus.LangEnglish, parent: FamilyReadability, anchor: RootTTR,
		leaves: []ID{ColemanLiau, FleschReadingEase, FleschKincaid, ARI, SMOG},
	},
	{lang: corpus.LangEnglish, parent: SubSubPosAll, leaves: []ID{ThirdSgPronIncsc}},

	{lang: corpus.LangSwedish, parent: FamilyLexical, leaves: []ID{KellyLogFrequency}},
	{lang: corpus.LangSwedish, parent: SubVerbForm, leaves: []ID{SVerbToVerb}},
	{lang: corpus.LangSwedish, parent: SubSubPosAll, leaves: []ID{NeuterNounIncsc}},
	{lang: corpus.LangSwedish, parent: FamilyReadability, anchor: RootTTR, before: true, leaves: []ID{Lix, Ovix}},
	{
		lang: corpus.LangSwedish, parent: FamilyReadability, anchor: RootTTR,
		leaves: []ID{SimpleNominal, FullNominal},
	},
}
