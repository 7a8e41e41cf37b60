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

// BindingsOf matches pattern against fact, returning the accumulated
// bindings (possibly empty, never nil on success) or (nil, false) if the
// pattern does not match. Patterns are submap-style: extra keys present in
// fact but absent from pattern are ignored.
func BindingsOf(pattern, fact Term) (Bindings, bool) {
	return matchNode(pattern, fact, Bindings{})
}

// matchNode matches one pattern node against one fact node, threading cur
// through so that repeated variables -- whether siblings at the same depth
// or spread across nested subtrees -- are checked for consistency as they
// are encountered.
func matchNode(pattern, fact Term, cur Bindings) (Bindings, bool) {
	switch p := pattern.(type) {
	case Var:
		return MergeOne(cur, p.Name, fact)
	case Tree:
		return matchTree(p, fact, cur)
	default:
		if !Equal(pattern, fact) {
			return nil, false
		}
		return cur, true
	}
}

// matchTree matches every key of pattern against fact, failing if fact is
// not a Tree or is missing any of pattern's keys.
func matchTree(pattern Tree, fact Term, cur Bindings) (Bindings, bool) {
	ft, ok := fact.(Tree)
	if !ok {
		return nil, false
	}
	acc := cur
	for k, pv := range pattern {
		fv, ok := ft[k]
		if !ok {
			return nil, false
		}
		acc, ok = matchNode(pv, fv, acc)
		if !ok {
			return nil, false
		}
	}
	return acc, true
}

// matchesOver applies BindingsOf(pattern, f) to every fact in facts,
// returning the deduplicated set of successful results. The degenerate case
// of no matching fact returns an empty, non-nil slice.
func matchesOver(pattern Term, facts FactSet) []Bindings {
	seen := make(map[string]bool)
	out := make([]Bindings, 0)
	for _, f := range facts {
		b, ok := BindingsOf(pattern, Tree(f))
		if !ok {
			continue
		}
		k := b.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}
