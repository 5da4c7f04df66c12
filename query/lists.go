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

package query

import (
	"lingstat/corpus"
	"lingstat/results"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

func tagOf(tok *corpus.Token, tagset Tagset) string {
	if tagset == TagsetXPOS {
		return tok.XPos
	}
	return tok.UPos
}

func forEachToken(texts []*corpus.Text, fn func(txt *corpus.Text, tok *corpus.Token)) {
	for _, txt := range texts {
		for _, p := range txt.Paragraphs {
			for _, s := range p.Sentences {
				for _, tok := range s.Tokens {
					fn(txt, tok)
				}
			}
		}
	}
}

func numWords(s *corpus.Sentence) int {
	var ans int
	for _, tok := range s.Tokens {
		if !tok.IsPunct() {
			ans++
		}
	}
	return ans
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return results.NormRound(float64(a) / float64(b))
}

func posStats(texts []*corpus.Text, tagset Tagset) *results.POSStats {
	freqs := make(map[string]int)
	var base int
	forEachToken(texts, func(txt *corpus.Text, tok *corpus.Token) {
		freqs[tagOf(tok, tagset)]++
		base++
	})
	ans := &results.POSStats{
		Tagset: string(tagset),
		Base:   base,
		Items:  make([]results.POSItem, 0, len(freqs)),
	}
	for tag, freq := range freqs {
		ans.Items = append(ans.Items, results.POSItem{
			Tag:   tag,
			Freq:  freq,
			Ratio: ratio(freq, base),
		})
	}
	sort.Slice(ans.Items, func(i, j int) bool {
		if ans.Items[i].Freq != ans.Items[j].Freq {
			return ans.Items[i].Freq > ans.Items[j].Freq
		}
		return ans.Items[i].Tag < ans.Items[j].Tag
	})
	return ans
}

// ----

type lengthItem struct {
	length int
	pos    string
}

func collectLengths(texts []*corpus.Text, metric LengthMetric) []lengthItem {
	ans := make([]lengthItem, 0, 1000)
	switch metric {
	case MetricWord:
		forEachToken(texts, func(txt *corpus.Text, tok *corpus.Token) {
			if !tok.IsPunct() {
				ans = append(ans, lengthItem{length: utf8.RuneCountInString(tok.Word()), pos: tok.UPos})
			}
		})
	case MetricSentence:
		for _, txt := range texts {
			txt.ForEachSentence(func(idx int, s *corpus.Sentence) error {
				ans = append(ans, lengthItem{length: numWords(s)})
				return nil
			})
		}
	case MetricParagraphWords:
		for _, txt := range texts {
			for _, p := range txt.Paragraphs {
				var n int
				for _, s := range p.Sentences {
					n += numWords(s)
				}
				ans = append(ans, lengthItem{length: n})
			}
		}
	case MetricParagraphSentences:
		for _, txt := range texts {
			for _, p := range txt.Paragraphs {
				ans = append(ans, lengthItem{length: len(p.Sentences)})
			}
		}
	}
	return ans
}

func lengths(texts []*corpus.Text, metric LengthMetric, filter LengthFilter) *results.Lengths {
	ans := &results.Lengths{
		Metric: string(metric),
		Filter: string(filter.Op),
	}
	if filter.Op != FilterNone {
		ans.Bound = filter.EffectiveBound()
	}
	buckets := make(map[int]*results.LengthBucket)
	for _, item := range collectLengths(texts, metric) {
		if !filter.Accepts(item.length) {
			continue
		}
		b, ok := buckets[item.length]
		if !ok {
			b = &results.LengthBucket{Length: item.length}
			if metric == MetricWord {
				b.POS = make(map[string]int)
			}
			buckets[item.length] = b
		}
		b.Count++
		if b.POS != nil {
			b.POS[item.pos]++
		}
		ans.Total++
	}
	ans.Buckets = make([]results.LengthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Ratio = ratio(b.Count, ans.Total)
		ans.Buckets = append(ans.Buckets, *b)
	}
	sort.Slice(ans.Buckets, func(i, j int) bool {
		return ans.Buckets[i].Length < ans.Buckets[j].Length
	})
	return ans
}

// ----

type freqKey struct {
	word string
	pos  string
}

func wordOf(txt *corpus.Text, tok *corpus.Token, category FreqCategory) string {
	switch category {
	case CategoryNorm:
		return corpus.TypeKey(txt.Lang, tok.Word())
	case CategoryLemma:
		return norm.NFC.String(tok.Lemma)
	default:
		return corpus.TypeKey(txt.Lang, tok.Form)
	}
}

func frequencyList(texts []*corpus.Text, args FreqArgs) *results.FreqList {
	posFilter := make(map[string]bool)
	for _, p := range args.POS {
		posFilter[p] = true
	}
	freqs := make(map[freqKey]int)
	var base int
	forEachToken(texts, func(txt *corpus.Text, tok *corpus.Token) {
		base++
		tag := tagOf(tok, args.Tagset)
		if len(posFilter) > 0 && !posFilter[tag] {
			return
		}
		key := freqKey{word: wordOf(txt, tok, args.Category)}
		if args.POSSplit {
			key.pos = tag
		}
		freqs[key]++
	})
	items := make(results.FreqItemList, 0, len(freqs))
	for k, freq := range freqs {
		if freq < args.MinFreq {
			continue
		}
		items = append(items, &results.FreqItem{
			Word:  k.word,
			POS:   k.pos,
			Freq:  freq,
			IPM:   results.NormRound(float64(freq) / float64(base) * 1e6),
			Ratio: ratio(freq, base),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Freq != items[j].Freq {
			return items[i].Freq > items[j].Freq
		}
		if items[i].Word != items[j].Word {
			return items[i].Word < items[j].Word
		}
		return items[i].POS < items[j].POS
	})
	return &results.FreqList{
		Category: string(args.Category),
		Tagset:   string(args.Tagset),
		MinFreq:  args.MinFreq,
		POSSplit: args.POSSplit,
		Base:     base,
		Items:    items.Cut(args.MaxItems),
	}
}
