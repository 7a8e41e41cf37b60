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
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Symbol is an identifier-like literal. It is used both as a Tree's key
// type and as the value held by a Sym scalar.
type Symbol string

var symbolPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// IsValidSymbol reports whether s can be used as a Symbol: identifier-like,
// starting with a letter or underscore.
func IsValidSymbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// Term is a value in the fact/pattern algebra: a Scalar (Int, Str, Sym,
// Bool), a Tree, or a Var. Facts are Terms built only from Scalar and Tree;
// Var appears only in patterns.
type Term interface {
	term()
	// key returns a canonical string encoding of the term, used for set
	// membership and structural equality. Two ground terms are equal iff
	// their keys are equal.
	key() string
	// IsGround reports whether no Var node occurs anywhere in the term.
	IsGround() bool
}

// Int is an integer scalar.
type Int int64

func (Int) term() {}

func (i Int) key() string { return "i:" + strconv.FormatInt(int64(i), 10) }

// IsGround is always true for a scalar.
func (Int) IsGround() bool { return true }

// Str is a string scalar.
type Str string

func (Str) term() {}

func (s Str) key() string { return "s:" + strconv.Quote(string(s)) }

// IsGround is always true for a scalar.
func (Str) IsGround() bool { return true }

// Sym is a symbolic-name scalar, e.g. `blue` in `sky: blue`. Distinct from
// Str so that a quoted string and a bare identifier never compare equal.
type Sym Symbol

func (Sym) term() {}

func (s Sym) key() string { return "y:" + string(s) }

// IsGround is always true for a scalar.
func (Sym) IsGround() bool { return true }

// Bool is a boolean scalar.
type Bool bool

func (Bool) term() {}

func (b Bool) key() string {
	if b {
		return "b:t"
	}
	return "b:f"
}

// IsGround is always true for a scalar.
func (Bool) IsGround() bool { return true }

// Tree is a mapping from symbolic-name keys to Terms. Key order is
// insignificant; key uniqueness is structural (Go map semantics).
type Tree map[Symbol]Term

func (Tree) term() {}

// IsGround reports whether every value reachable from t is free of Var
// nodes.
func (t Tree) IsGround() bool {
	for _, v := range t {
		if !v.IsGround() {
			return false
		}
	}
	return true
}

func (t Tree) key() string {
	keys := make([]Symbol, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(string(k))
		b.WriteByte('=')
		b.WriteString(t[k].key())
	}
	b.WriteByte('}')
	return b.String()
}

// Var is a pattern variable. It never occurs in a ground Fact.
type Var struct {
	Name Symbol
}

func (Var) term() {}

// IsGround is always false for a Var.
func (Var) IsGround() bool { return false }

func (v Var) key() string { return "v:" + string(v.Name) }

// IsVar reports whether t is a pattern variable.
func IsVar(t Term) bool {
	_, ok := t.(Var)
	return ok
}

// Equal reports whether two terms are structurally identical.
func Equal(a, b Term) bool {
	return a.key() == b.key()
}

// Fact is a ground Tree: a Term with no Var node anywhere beneath it.
// Constructors that build a Fact from a Tree do not themselves re-verify
// groundness; callers that accept facts from untrusted input should check
// Tree(f).IsGround() first.
type Fact Tree

func (f Fact) key() string { return Tree(f).key() }

// collectVars adds every variable name occurring in t to out.
func collectVars(t Term, out map[Symbol]bool) {
	switch v := t.(type) {
	case Var:
		out[v.Name] = true
	case Tree:
		for _, child := range v {
			collectVars(child, out)
		}
	}
}
