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
	"fmt"

	"github.com/pkg/errors"
)

// UnboundVariableError is raised by Substitute when a pattern references a
// variable that bindings does not cover. It carries the offending variable
// name and the binding map at the point of failure, per the engine's error
// surface: this is a user/programming error (a conclusion pattern whose
// variables are not all bound by its rule's premises) and is not recovered
// locally.
type UnboundVariableError struct {
	Name     Symbol
	Bindings Bindings
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("treelog: unbound variable %q", e.Name)
}

// Substitute instantiates pattern by replacing each Var with its bound
// value from b. It is total over patterns all of whose variables appear in
// b; otherwise it returns an *UnboundVariableError, wrapped with
// call-site context.
func Substitute(pattern Term, b Bindings) (Term, error) {
	switch p := pattern.(type) {
	case Var:
		v, ok := b[p.Name]
		if !ok {
			return nil, errors.WithStack(&UnboundVariableError{Name: p.Name, Bindings: b})
		}
		return v, nil
	case Tree:
		out := make(Tree, len(p))
		for k, child := range p {
			sv, err := Substitute(child, b)
			if err != nil {
				return nil, errors.Wrapf(err, "substituting key %q", k)
			}
			out[k] = sv
		}
		return out, nil
	default:
		return pattern, nil
	}
}
