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

// Package features contains a static catalogue of computable features.
//
// The catalogue consists of one canonical tree of shared features
// (family -> [subfamily ->] feature) keyed by stable numeric IDs
// and a list of declarative insertion rules adding language-specific
// leaves. Both are processed once at startup and the resulting
// per-language trees are read-only.
package features

import (
	"fmt"
	"lingstat/corpus"
	"lingstat/merror"
)

// Node is a node of a language-specific feature tree.
// Exactly one of Children and Feature is set for non-family nodes.
type Node struct {
	ID            ID            `json:"id"`
	Key           string        `json:"key"`
	Label         string        `json:"label"`
	Formula       string        `json:"formula,omitempty"`
	Applicability Applicability `json:"applicability,omitempty"`
	Unit          Unit          `json:"unit,omitempty"`
	Children      []*Node       `json:"children,omitempty"`
	Feature       *Descriptor   `json:"-"`
}

func (n *Node) IsLeaf() bool {
	return n.Feature != nil
}

// Leaves returns all the features below the node in tree order
func (n *Node) Leaves() []*Descriptor {
	if n.IsLeaf() {
		return []*Descriptor{n.Feature}
	}
	ans := make([]*Descriptor, 0, len(n.Children))
	for _, ch := range n.Children {
		ans = append(ans, ch.Leaves()...)
	}
	return ans
}

// Tree is an ordered tree of feature families for a language
type Tree struct {
	Lang     corpus.Language `json:"lang"`
	Families []*Node         `json:"families"`
	byID     map[ID]*Node
}

// Family returns a family node or nil if not found
func (t *Tree) Family(id ID) *Node {
	for _, f := range t.Families {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Node finds any node (family, subfamily, feature) by its ID
func (t *Tree) Node(id ID) (*Node, bool) {
	v, ok := t.byID[id]
	return v, ok
}

// Contains tests whether a feature is defined for the tree's language
func (t *Tree) Contains(id ID) bool {
	n, ok := t.byID[id]
	return ok && n.IsLeaf()
}

// Leaves returns ordered features of a family
func (t *Tree) Leaves(family ID) []*Descriptor {
	f := t.Family(family)
	if f == nil {
		return []*Descriptor{}
	}
	return f.Leaves()
}

// AllLeaves returns all features in tree order
func (t *Tree) AllLeaves() []*Descriptor {
	ans := make([]*Descriptor, 0, len(t.byID))
	for _, f := range t.Families {
		ans = append(ans, f.Leaves()...)
	}
	return ans
}

// ---------------

var (
	descriptors  = make(map[ID]*Descriptor)
	trees        = make(map[corpus.Language]*Tree)
	familyOrder  = []ID{FamilyGeneral, FamilyLexical, FamilyMorph, FamilySyntactic, FamilyReadability}
	familyByName = make(map[string]ID)
)

// Families returns family IDs in their canonical order
func Families() []ID {
	return append([]ID{}, familyOrder...)
}

// FamilyByName translates a family key (e.g. `morph`) to its ID
func FamilyByName(name string) (ID, bool) {
	v, ok := familyByName[name]
	return v, ok
}

// FamilyInfo returns a family (or subfamily) key, label
// and a short description
func FamilyInfo(id ID) (key, label, formula string) {
	g := groups[id]
	return g.key, g.label, g.formula
}

// Get returns a feature descriptor by its ID
func Get(id ID) (*Descriptor, bool) {
	v, ok := descriptors[id]
	return v, ok
}

// FeaturesFor returns a feature tree for a language
func FeaturesFor(lang corpus.Language) (*Tree, error) {
	t, ok := trees[lang]
	if !ok {
		return nil, merror.UnsupportedLanguageError{Lang: string(lang)}
	}
	return t, nil
}

func newLeaf(lang corpus.Language, id ID) *Node {
	d, ok := descriptors[id]
	if !ok {
		panic(fmt.Sprintf("undefined feature %d", id))
	}
	return &Node{
		ID:            id,
		Key:           d.LabelKey,
		Label:         d.Label(lang),
		Formula:       d.Formula,
		Applicability: d.Applicability,
		Unit:          d.Unit,
		Feature:       d,
	}
}

func instantiate(lang corpus.Language, def nodeDef) *Node {
	if len(def.children) == 0 {
		return newLeaf(lang, def.id)
	}
	g, ok := groups[def.id]
	if !ok {
		panic(fmt.Sprintf("undefined feature group %d", def.id))
	}
	node := &Node{ID: def.id, Key: g.key, Label: g.label, Formula: g.formula}
	for _, ch := range def.children {
		node.Children = append(node.Children, instantiate(lang, ch))
	}
	return node
}

func findNode(nodes []*Node, id ID) *Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if ans := findNode(n.Children, id); ans != nil {
			return ans
		}
	}
	return nil
}

func applyInsertion(lang corpus.Language, families []*Node, ins insertion) {
	parent := findNode(families, ins.parent)
	if parent == nil {
		panic(fmt.Sprintf("insertion parent %d not found", ins.parent))
	}
	newNodes := make([]*Node, len(ins.leaves))
	for i, id := range ins.leaves {
		newNodes[i] = newLeaf(lang, id)
	}
	idx := len(parent.Children)
	if ins.anchor != 0 {
		idx = -1
		for i, ch := range parent.Children {
			if ch.ID == ins.anchor {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic(fmt.Sprintf("insertion anchor %d not found", ins.anchor))
		}
		if !ins.before {
			idx++
		}
	}
	tmp := make([]*Node, 0, len(parent.Children)+len(newNodes))
	tmp = append(tmp, parent.Children[:idx]...)
	tmp = append(tmp, newNodes...)
	tmp = append(tmp, parent.Children[idx:]...)
	parent.Children = tmp
}

func indexTree(t *Tree) {
	t.byID = make(map[ID]*Node)
	var walk func(n *Node, family, sub ID)
	walk = func(n *Node, family, sub ID) {
		if _, ok := t.byID[n.ID]; ok {
			panic(fmt.Sprintf("duplicate feature tree node %d", n.ID))
		}
		t.byID[n.ID] = n
		if n.IsLeaf() {
			n.Feature.Family = family
			n.Feature.Subfamily = sub
			return
		}
		for _, ch := range n.Children {
			if n.ID == family {
				walk(ch, family, 0)

			} else {
				walk(ch, family, n.ID)
			}
		}
	}
	for _, f := range t.Families {
		walk(f, f.ID, 0)
	}
}

func buildTree(lang corpus.Language) *Tree {
	t := &Tree{Lang: lang, Families: make([]*Node, 0, len(canonicalTree))}
	for _, def := range canonicalTree {
		t.Families = append(t.Families, instantiate(lang, def))
	}
	for _, ins := range insertions {
		if ins.lang == lang {
			applyInsertion(lang, t.Families, ins)
		}
	}
	indexTree(t)
	return t
}

func init() {
	for _, args := range descriptorArgs {
		if _, ok := descriptors[args.id]; ok {
			panic(fmt.Sprintf("duplicate feature definition %d", args.id))
		}
		appl := args.appl
		if appl == "" {
			appl = Shared
		}
		descriptors[args.id] = &Descriptor{
			ID:            args.id,
			Applicability: appl,
			LabelKey:      args.key,
			Formula:       args.formula,
			Unit:          args.unit,
			labels:        args.labels,
			defaultLabel:  args.label,
		}
	}
	for _, id := range familyOrder {
		familyByName[groups[id].key] = id
	}
	for _, lang := range corpus.SupportedLanguages {
		trees[lang] = buildTree(lang)
	}
}
