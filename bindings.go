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

import (
	"sort"
	"strings"
)

// Bindings maps a variable name to the ground Term it is bound to under a
// particular match. A nil Bindings is never itself a valid result; failure
// is always reported through a separate bool, never through a nil map with
// ok==true.
type Bindings map[Symbol]Term

// MergeOne extends cur with key -> val. If key is already bound in cur to a
// different (by key()) term, the merge fails and (nil, false) is returned.
// cur is never mutated; on success a (possibly identical) map is returned.
func MergeOne(cur Bindings, key Symbol, val Term) (Bindings, bool) {
	if existing, ok := cur[key]; ok {
		if !Equal(existing, val) {
			return nil, false
		}
		return cur, true
	}
	next := make(Bindings, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[key] = val
	return next, true
}

// MergeAll folds MergeOne over every entry of add, starting from cur. A
// conflict on any variable fails the whole merge.
func MergeAll(cur, add Bindings) (Bindings, bool) {
	acc := cur
	for k, v := range add {
		var ok bool
		acc, ok = MergeOne(acc, k, v)
		if !ok {
			return nil, false
		}
	}
	return acc, true
}

// key returns a canonical string encoding of b, used to deduplicate sets of
// Bindings.
func (b Bindings) key() string {
	names := make([]Symbol, 0, len(b))
	for k := range b {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	var s strings.Builder
	for i, n := range names {
		if i > 0 {
			s.WriteByte(';')
		}
		s.WriteString(string(n))
		s.WriteByte('=')
		s.WriteString(b[n].key())
	}
	return s.String()
}
