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

import "testing"

// tr builds a Tree from alternating key/value pairs, panicking on
// malformed input. It exists only to keep test fixtures readable.
func tr(kv ...any) Tree {
	if len(kv)%2 != 0 {
		panic("tr: odd number of arguments")
	}
	t := make(Tree, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("tr: key must be a string")
		}
		v, ok := kv[i+1].(Term)
		if !ok {
			panic("tr: value must be a Term")
		}
		t[Symbol(k)] = v
	}
	return t
}

// v builds a pattern variable.
func v(name string) Var { return Var{Name: Symbol(name)} }

// y builds a symbolic-name scalar.
func y(name string) Sym { return Sym(name) }

func factSetOf(t *testing.T, trees ...Tree) FactSet {
	t.Helper()
	facts := make([]Fact, len(trees))
	for i, tree := range trees {
		facts[i] = Fact(tree)
	}
	return NewFactSet(facts...)
}
