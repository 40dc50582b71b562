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

package anchor

import "github.com/dolthub/go-rq-anchor/rq"

// InferComplexity classifies a Compute by the highest complexity its
// expression requires (spec §4.1). Windowed ranks below Aggregation so a
// windowed column is legal anywhere an aggregated one is.
func InferComplexity(c rq.Compute) rq.Complexity {
	switch {
	case c.Window != nil:
		return rq.ComplexityWindowed
	case c.IsAggregation:
		return rq.ComplexityAggregation
	default:
		return rq.ComplexityPlain
	}
}

// following is the multiset (by presence, not count — the admission rule
// only ever tests membership) of transform-kind names already admitted
// into the suffix being built, keyed by rq.TransformKind.KindName().
type following map[string]bool

func (f following) has(names ...string) bool {
	for _, n := range names {
		if f[n] {
			return true
		}
	}
	return false
}

// GetRequirements produces the set of columns a transform needs as input,
// each tagged with the maximum legal complexity and a selected flag (spec
// §4.1's per-kind contract table).
func GetRequirements(t rq.Transform, following following) []rq.Requirement {
	if t.Kind == rq.TransformAggregate {
		var reqs []rq.Requirement
		reqs = append(reqs, rq.RequirementsFor(t.Aggregate.Partition, rq.ComplexityPlain, false)...)
		reqs = append(reqs, rq.RequirementsFor(t.Aggregate.Compute, rq.ComplexityAggregation, false)...)
		return reqs
	}

	var cids []rq.ColumnID
	switch t.Kind {
	case rq.TransformCompute:
		cids = CollectCIDs(t.Compute.Expr)
	case rq.TransformFilter:
		cids = CollectCIDs(*t.Filter)
	case rq.TransformJoin:
		cids = CollectCIDs(t.Join.Filter)
	case rq.TransformSort:
		for _, s := range t.Sort {
			cids = append(cids, s.Column)
		}
	case rq.TransformTake:
		if t.Take.Start != nil {
			cids = append(cids, CollectCIDs(*t.Take.Start)...)
		}
		if t.Take.End != nil {
			cids = append(cids, CollectCIDs(*t.Take.End)...)
		}
	case rq.TransformSelect, rq.TransformFrom, rq.TransformConcat, rq.TransformUnique:
		return nil
	default:
		panic(rq.ErrMalformedTransform.New(t.KindName(), "unexpected transform kind in GetRequirements"))
	}

	var maxComplexity rq.Complexity
	var selected bool
	switch t.Kind {
	case rq.TransformCompute:
		if InferComplexity(*t.Compute) == rq.ComplexityPlain {
			maxComplexity = rq.ComplexityAggregation
		} else {
			maxComplexity = rq.ComplexityPlain
		}
		selected = false
	case rq.TransformFilter:
		if !following.has("Aggregate") {
			maxComplexity = rq.ComplexityAggregation
		} else {
			maxComplexity = rq.ComplexityPlain
		}
		selected = false
	case rq.TransformSort:
		// ORDER BY uses aliased columns, so the columns can have high
		// complexity, but they must be present in the SELECT list.
		maxComplexity = rq.ComplexityAggregation
		selected = true
	case rq.TransformTake:
		maxComplexity = rq.ComplexityPlain
		selected = false
	case rq.TransformJoin:
		maxComplexity = rq.ComplexityPlain
		selected = false
	}

	return rq.RequirementsFor(cids, maxComplexity, selected)
}

// CanMaterialize reports whether c may be kept inline with its consumers —
// i.e. every requirement on c.ID in reqs tolerates at least c's own inferred
// complexity (spec §4.2). A Compute not materializable here must be
// promoted to an earlier, projected column.
func CanMaterialize(c rq.Compute, reqs []rq.Requirement) bool {
	complexity := InferComplexity(c)

	requiredMax := rq.Highest
	for _, r := range reqs {
		if r.Col == c.ID {
			requiredMax = requiredMax.Min(r.MaxComplexity)
		}
	}

	return complexity.LessEq(requiredMax)
}
