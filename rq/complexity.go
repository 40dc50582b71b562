// Copyright 2020-2021 Dolthub, Inc.
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

package rq

// Complexity totally orders column-expression complexity: Plain < Windowed
// < Aggregation (spec §3). Windowed ranks below Aggregation so a windowed
// column is legal anywhere an aggregated one is (a conservative upper bound
// on where it may appear — spec §4.1).
type Complexity int

const (
	// ComplexityPlain is a scalar expression over row-local inputs: no
	// window, no aggregate.
	ComplexityPlain Complexity = iota
	// ComplexityWindowed has a window frame.
	ComplexityWindowed
	// ComplexityAggregation is an aggregate function over a group.
	ComplexityAggregation
)

// Highest is the top of the Complexity lattice, used to seed an
// unconstrained requirement (spec §4.1's into_requirements(output, highest,
// true) call in the original) and as the default when no requirement
// mentions a column.
const Highest = ComplexityAggregation

// String implements fmt.Stringer for debug logging.
func (c Complexity) String() string {
	switch c {
	case ComplexityPlain:
		return "Plain"
	case ComplexityWindowed:
		return "Windowed"
	case ComplexityAggregation:
		return "Aggregation"
	default:
		return "Unknown"
	}
}

// Min returns the lesser of c and other.
func (c Complexity) Min(other Complexity) Complexity {
	if c < other {
		return c
	}
	return other
}

// LessEq reports whether c is no more complex than max.
func (c Complexity) LessEq(max Complexity) bool {
	return c <= max
}
