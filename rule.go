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
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Effect is a side effect invoked once per newly derived fact. Its return
// value is discarded for inference purposes; its invocation is the
// observable part. An Effect invoked from a concurrent Infer (see
// WithConcurrency) may run on any goroutine and is responsible for its own
// locking.
type Effect func(fact Fact) any

// Conclusion pairs a conclusion pattern with the effect to run for each
// fact it newly instantiates. Conclusions are held as a slice rather than a
// map keyed by Pattern because Tree (and therefore Term) is not a
// comparable Go type.
type Conclusion struct {
	Pattern Term
	Effect  Effect
}

// Rule is a set of premise patterns paired with a set of conclusions.
type Rule struct {
	Premises    []Term
	Conclusions []Conclusion
}

// NewRule builds a Rule, validating it at construction time rather than at
// first Infer: premises must be non-empty, every conclusion must carry an
// Effect, and every variable referenced by a conclusion must appear in some
// premise (otherwise Substitute will always fail for it, per the engine's
// design notes). Every problem found is reported together.
func NewRule(premises []Term, conclusions ...Conclusion) (Rule, error) {
	if len(premises) == 0 {
		return Rule{}, errors.New("treelog: rule must have at least one premise")
	}

	premiseVars := make(map[Symbol]bool)
	for _, p := range premises {
		collectVars(p, premiseVars)
	}

	var result *multierror.Error
	for i, c := range conclusions {
		if c.Effect == nil {
			result = multierror.Append(result, errors.Errorf("conclusion %d: nil effect", i))
		}
		concVars := make(map[Symbol]bool)
		collectVars(c.Pattern, concVars)
		for v := range concVars {
			if !premiseVars[v] {
				result = multierror.Append(result, errors.Errorf("conclusion %d: variable %q is not bound by any premise", i, v))
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return Rule{}, err
	}

	return Rule{Premises: premises, Conclusions: conclusions}, nil
}
