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
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Engine drives inference over a KnowledgeBase. The zero value is not
// usable; construct one with NewEngine.
type Engine struct {
	logger      hclog.Logger
	concurrency int
}

// Option configures an Engine built by NewEngine.
type Option func(*Engine)

// WithLogger attaches a structured logger. Trace level logs per-rule
// inference counts; Debug level logs per-iteration fact-set growth.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithConcurrency bounds how many rules of a single InferAll step are
// evaluated concurrently, each against the fact-set snapshot taken at step
// entry (see Effect for what this means for effects). n <= 1 means
// sequential, which is also the default.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewEngine builds an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: hclog.NewNullLogger(), concurrency: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Infer computes one inference step for a single rule: the set of
// facts its conclusions instantiate under every globally consistent
// binding of its premises against facts. Each conclusion's effect is invoked
// exactly once for each fact that conclusion instantiates which was not
// already present in facts when this call began.
func (e *Engine) Infer(rule Rule, facts FactSet) (FactSet, error) {
	bindings := AllBindings(rule.Premises, facts)
	out := make(FactSet)
	invoked := make([]FactSet, len(rule.Conclusions))
	for i := range invoked {
		invoked[i] = make(FactSet)
	}
	for _, b := range bindings {
		for ci, c := range rule.Conclusions {
			t, err := Substitute(c.Pattern, b)
			if err != nil {
				return nil, errors.Wrap(err, "treelog: instantiating conclusion")
			}
			tree, ok := t.(Tree)
			if !ok {
				return nil, errors.New("treelog: conclusion pattern substituted to a non-tree term")
			}
			fact := Fact(tree)
			key := fact.key()
			if !facts.Contains(fact) && !invoked[ci].Contains(fact) {
				c.Effect(fact)
				invoked[ci][key] = fact
			}
			out[key] = fact
		}
	}
	e.logger.Trace("infer", "premises", len(rule.Premises), "bindings", len(bindings), "derived", len(out))
	return out, nil
}

// InferAll iterates Infer over every rule of kb until the fact set reaches
// a fixed point, returning a new KnowledgeBase with the enlarged fact set
// and the same rule set. kb itself is left untouched.
func (e *Engine) InferAll(kb KnowledgeBase) (KnowledgeBase, error) {
	facts := kb.Facts
	for iteration := 0; ; iteration++ {
		derived, err := e.inferStep(kb.Rules, facts)
		if err != nil {
			return KnowledgeBase{}, err
		}

		next := facts
		for _, d := range derived {
			next = next.Union(d)
		}

		e.logger.Debug("infer_all", "iteration", iteration, "facts", len(next))
		if next.Equal(facts) {
			return KnowledgeBase{Facts: next, Rules: kb.Rules}, nil
		}
		facts = next
	}
}

// inferStep runs Infer for every rule against the same facts snapshot,
// sequentially or bounded by e.concurrency, and returns one FactSet of
// newly-instantiated facts per rule (in rule order).
func (e *Engine) inferStep(rules []Rule, facts FactSet) ([]FactSet, error) {
	derived := make([]FactSet, len(rules))

	if e.concurrency <= 1 {
		for i, rule := range rules {
			d, err := e.Infer(rule, facts)
			if err != nil {
				return nil, err
			}
			derived[i] = d
		}
		return derived, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(e.concurrency)
	for i, rule := range rules {
		i, rule := i, rule
		g.Go(func() error {
			d, err := e.Infer(rule, facts)
			if err != nil {
				return err
			}
			derived[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return derived, nil
}
