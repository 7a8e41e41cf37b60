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

// AllBindings computes, across every pattern in patterns and every fact in
// facts, the set of globally consistent binding maps: for each pattern, the
// set of bindings under which some fact matches it, Cartesian-producted and
// merged pattern by pattern, dropping any combination whose merge conflicts.
//
// If any pattern has no matching fact at all, the join is unsatisfiable and
// AllBindings returns nil. A pattern that matches but contributes no
// variables still gates membership (it must have at least one matching
// fact) without itself adding a row; a combination that nets to zero
// variables overall is dropped from the result.
func AllBindings(patterns []Term, facts FactSet) []Bindings {
	if len(patterns) == 0 {
		return nil
	}

	acc := []Bindings{{}}
	for _, p := range patterns {
		rows := matchesOver(p, facts)
		if len(rows) == 0 {
			return nil
		}
		var next []Bindings
		for _, a := range acc {
			for _, r := range rows {
				if merged, ok := MergeAll(a, r); ok {
					next = append(next, merged)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		acc = next
	}

	seen := make(map[string]bool, len(acc))
	result := make([]Bindings, 0, len(acc))
	for _, b := range acc {
		if len(b) == 0 {
			continue
		}
		k := b.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, b)
	}
	return result
}
