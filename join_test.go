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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindingsSlice(bs []Bindings) []string {
	keys := make([]string, len(bs))
	for i, b := range bs {
		keys[i] = b.key()
	}
	sort.Strings(keys)
	return keys
}

// TestExistencePattern is scenario S4.
func TestExistencePattern(t *testing.T) {
	patterns := []Term{tr("sky", y("blue")), tr("man", v("x"))}
	facts := factSetOf(t, tr("man", Str("socrates")), tr("man", Str("plato")), tr("sky", y("blue")))

	got := AllBindings(patterns, facts)
	want := []Bindings{{"x": Str("socrates")}, {"x": Str("plato")}}

	if diff := cmp.Diff(bindingsSlice(want), bindingsSlice(got)); diff != "" {
		t.Fatalf("AllBindings mismatch (-want +got):\n%s", diff)
	}
}

// TestExistencePatternUnsatisfied checks that removing the witness fact
// empties the join, per S4.
func TestExistencePatternUnsatisfied(t *testing.T) {
	patterns := []Term{tr("sky", y("blue")), tr("man", v("x"))}
	facts := factSetOf(t, tr("man", Str("socrates")), tr("man", Str("plato")))

	got := AllBindings(patterns, facts)
	assert.Empty(t, got)
}

// TestMcCarthyDuck is scenario S5.
func TestMcCarthyDuck(t *testing.T) {
	patterns := []Term{
		tr("walks-like-duck", v("x")),
		tr("looks-like-duck", v("x")),
		tr("quacks-like-duck", v("x")),
	}
	facts := factSetOf(t,
		tr("walks-like-duck", y("dolan")),
		tr("looks-like-duck", y("dolan")),
		tr("quacks-like-duck", y("dolan")),
		tr("walks-like-duck", y("daffy")),
		tr("looks-like-duck", y("daffy")),
	)

	got := AllBindings(patterns, facts)
	require.Len(t, got, 1)
	assert.Equal(t, y("dolan"), got[0]["x"])
}

// TestSquareViaRepeatedVariable is scenario S7.
func TestSquareViaRepeatedVariable(t *testing.T) {
	patterns := []Term{
		tr("rect", tr("top", v("t"), "left", v("l"), "width", v("w"), "height", v("w"))),
		tr("is-positive", v("w")),
	}
	facts := factSetOf(t,
		tr("rect", tr("top", Int(0), "left", Int(0), "width", Int(5), "height", Int(5))),
		tr("rect", tr("top", Int(0), "left", Int(0), "width", Int(5), "height", Int(7))),
		tr("is-positive", Int(5)),
	)

	got := AllBindings(patterns, facts)
	require.Len(t, got, 1)
	assert.Equal(t, Int(0), got[0]["t"])
	assert.Equal(t, Int(0), got[0]["l"])
	assert.Equal(t, Int(5), got[0]["w"])
}

func TestAllBindingsEmptyWhenAnyPatternUnmatched(t *testing.T) {
	patterns := []Term{tr("foo", v("x")), tr("bar", v("y"))}
	facts := factSetOf(t, tr("foo", Int(1)))
	got := AllBindings(patterns, facts)
	assert.Empty(t, got)
}

func TestAllBindingsDropsInconsistentRows(t *testing.T) {
	patterns := []Term{tr("foo", v("x")), tr("bar", v("x"))}
	facts := factSetOf(t, tr("foo", Int(1)), tr("bar", Int(2)))
	got := AllBindings(patterns, facts)
	assert.Empty(t, got)
}

func TestAllBindingsDropsEmptyMergedRows(t *testing.T) {
	// Two existence-only patterns that each match but contribute no
	// variables: the row nets to empty bindings and must be dropped.
	patterns := []Term{tr("sky", y("blue")), tr("ground", y("brown"))}
	facts := factSetOf(t, tr("sky", y("blue")), tr("ground", y("brown")))
	got := AllBindings(patterns, facts)
	assert.Empty(t, got)
}

func TestAllBindingsPatternOrderIndependent(t *testing.T) {
	a := []Term{tr("foo", v("x")), tr("bar", v("x"))}
	b := []Term{tr("bar", v("x")), tr("foo", v("x"))}
	facts := factSetOf(t, tr("foo", Int(1)), tr("bar", Int(1)))

	gotA := AllBindings(a, facts)
	gotB := AllBindings(b, facts)
	assert.Equal(t, bindingsSlice(gotA), bindingsSlice(gotB))
}
