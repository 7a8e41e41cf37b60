// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treelog

// FactSet is a set of Facts, keyed internally by each fact's canonical
// structural key so that membership and union are order-independent.
type FactSet map[string]Fact

// NewFactSet builds a FactSet from facts, deduplicating structurally
// identical facts.
func NewFactSet(facts ...Fact) FactSet {
	fs := make(FactSet, len(facts))
	for _, f := range facts {
		fs[f.key()] = f
	}
	return fs
}

// Contains reports whether f (or a structurally identical fact) is in fs.
func (fs FactSet) Contains(f Fact) bool {
	_, ok := fs[f.key()]
	return ok
}

// Union returns a new FactSet holding every fact in fs or other.
func (fs FactSet) Union(other FactSet) FactSet {
	out := make(FactSet, len(fs)+len(other))
	for k, v := range fs {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Equal reports whether fs and other hold the same set of facts.
func (fs FactSet) Equal(other FactSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for k := range fs {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Slice returns the facts of fs in no particular order.
func (fs FactSet) Slice() []Fact {
	out := make([]Fact, 0, len(fs))
	for _, f := range fs {
		out = append(out, f)
	}
	return out
}

// KnowledgeBase pairs a set of facts with a set of rules.
type KnowledgeBase struct {
	Facts FactSet
	Rules []Rule
}

// NewKnowledgeBase builds a KnowledgeBase from facts and rules.
func NewKnowledgeBase(facts FactSet, rules []Rule) KnowledgeBase {
	return KnowledgeBase{Facts: facts, Rules: rules}
}
