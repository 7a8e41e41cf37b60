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
	"github.com/pkg/errors"
)

// varKey is the reserved Tree key that spells a Var out in its literal
// wire form: a Tree of exactly one entry {var: <symbolic-name>}.
const varKey = Symbol("var")

// ToWire renders t using only Go's built-in container/scalar types, so
// that a caller or test fixture that only knows the literal {var: name}
// encoding of a variable can consume it directly. Int/Str/Bool become
// int64/string/bool; Sym becomes Symbol (the one non-built-in type in the
// output, since plain string already means Str); Tree becomes
// map[string]any; Var becomes map[string]any{"var": string(name)}.
func ToWire(t Term) any {
	switch v := t.(type) {
	case Var:
		return map[string]any{string(varKey): string(v.Name)}
	case Tree:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[string(k)] = ToWire(child)
		}
		return out
	case Int:
		return int64(v)
	case Str:
		return string(v)
	case Sym:
		return Symbol(v)
	case Bool:
		return bool(v)
	}
	return nil
}

// FromWire parses w, the inverse of ToWire. A map[string]any with exactly
// one key "var" whose value is a string or Symbol decodes to a Var; any
// other map[string]any decodes to a Tree, and a non-identifier key is an
// error (see SPEC_FULL.md open question 1: this implementation errors
// rather than silently ignoring such a key, since FromWire is the one
// boundary accepting data this package did not construct itself).
func FromWire(w any) (Term, error) {
	switch v := w.(type) {
	case int64:
		return Int(v), nil
	case int:
		return Int(v), nil
	case string:
		return Str(v), nil
	case Symbol:
		return Sym(v), nil
	case bool:
		return Bool(v), nil
	case map[string]any:
		if name, ok := isWireVar(v); ok {
			return Var{Name: Symbol(name)}, nil
		}
		out := make(Tree, len(v))
		for k, raw := range v {
			if !IsValidSymbol(k) {
				return nil, errors.Errorf("treelog: wire key %q is not a valid symbol", k)
			}
			child, err := FromWire(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "decoding key %q", k)
			}
			out[Symbol(k)] = child
		}
		return out, nil
	default:
		return nil, errors.Errorf("treelog: cannot decode wire value of type %T", w)
	}
}

// isWireVar reports whether m is the literal {var: name} encoding of a Var.
func isWireVar(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	raw, ok := m[string(varKey)]
	if !ok {
		return "", false
	}
	switch n := raw.(type) {
	case string:
		return n, true
	case Symbol:
		return string(n), true
	default:
		return "", false
	}
}
