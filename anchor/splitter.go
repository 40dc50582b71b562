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

import (
	"github.com/dolthub/go-rq-anchor/rq"
)

// RemainingPipeline is the unconsumed prefix of a pipeline after one
// SplitOffBack call, together with the columns it must expose so the
// emitted suffix can reference them (spec §4.2).
type RemainingPipeline struct {
	Prefix  []rq.Transform
	Missing []rq.ColumnID
}

// isSplitRequired reports whether pipeline must be cut before admitting t
// into the suffix currently under construction, per the canonical
// SELECT-order admission table (spec §4.2). following is updated in place
// with t's kind name when t is admitted (split == false); an aggregation
// Compute is admitted without being added to following.
//
// A non-aggregation Compute's forbidden set intentionally omits Aggregate
// (see spec §9's Open Question): this lets a non-aggregation compute
// follow an aggregate in the same SELECT, a known, source-preserved wart
// rather than an invariant to enforce.
func isSplitRequired(t rq.Transform, f following) bool {
	if t.Kind == rq.TransformCompute && t.Compute.IsAggregation {
		// Compute for aggregation does not count as a real compute: it's
		// consumed only by the immediately following aggregation.
		return false
	}

	var split bool
	switch t.Kind {
	case rq.TransformFrom:
		split = f.has("From")
	case rq.TransformJoin:
		split = f.has("From")
	case rq.TransformAggregate:
		split = f.has("From", "Join", "Aggregate")
	case rq.TransformFilter:
		split = f.has("From", "Join")
	case rq.TransformCompute:
		split = f.has("From", "Join", "Filter")
	case rq.TransformSort:
		split = f.has("From", "Join", "Compute", "Aggregate")
	case rq.TransformTake:
		split = f.has("From", "Join", "Compute", "Filter", "Aggregate", "Sort")
	case rq.TransformUnique:
		split = f.has("From", "Join", "Compute", "Filter", "Aggregate", "Sort", "Take")
	case rq.TransformConcat:
		split = f.has("From", "Join", "Compute", "Filter", "Aggregate", "Sort", "Take", "Concat")
	default: // Select
		split = false
	}

	if !split {
		f[t.KindName()] = true
	}
	return split
}

// SplitOffBack peels transforms off the tail of pipeline, admitting each
// into the suffix as long as canonical SELECT order and complexity rules
// permit, until a transform forces a cut (spec §4.2). output is the column
// list the emitted suffix's SELECT must produce.
//
// The returned suffix is always a valid cut — possibly the trivial one
// containing only the synthesized Select — and this function never
// returns an error (spec §7, §8 property 1 and 7).
func SplitOffBack(ctx rq.Context, cfg Config, output []rq.ColumnID, pipeline []rq.Transform) (*RemainingPipeline, []rq.Transform) {
	log := cfg.logger().WithField("component", "anchor.splitter")

	if len(pipeline) == 0 {
		return nil, nil
	}

	log.Debugf("traversing pipeline to obtain columns: %v", output)

	f := make(following)
	inputsRequired := rq.RequirementsFor(output, rq.Highest, true)
	inputsAvail := make(map[rq.ColumnID]bool)

	var currRev []rq.Transform

	remaining := pipeline
	for len(remaining) > 0 {
		t := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		if isSplitRequired(t, f) {
			log.Debugf("split required after %s (following=%v)", t.KindName(), f)
			remaining = append(remaining, t)
			break
		}

		required := GetRequirements(t, f)
		log.Debugf("transform %s requires %v", t.KindName(), required)
		inputsRequired = append(inputsRequired, required...)

		cut := false
		switch t.Kind {
		case rq.TransformCompute:
			if CanMaterialize(*t.Compute, inputsRequired) {
				log.Debugf("materializing %s", t.Compute.ID)
				inputsAvail[t.Compute.ID] = true
			} else {
				remaining = append(remaining, t)
				cut = true
			}
		case rq.TransformAggregate:
			for _, cid := range t.Aggregate.Compute {
				decl, ok := ctx.ColumnDecl(cid)
				if !ok {
					panic(rq.ErrUnresolvedColumn.New(cid))
				}
				if decl.Kind == rq.ColumnDeclCompute && !CanMaterialize(*decl.Compute, inputsRequired) {
					remaining = append(remaining, t)
					cut = true
					break
				}
			}
		case rq.TransformFrom:
			for _, cid := range t.From.ColumnIDs() {
				inputsAvail[cid] = true
			}
		case rq.TransformJoin:
			for _, cid := range t.Join.With.ColumnIDs() {
				inputsAvail[cid] = true
			}
		}
		if cut {
			break
		}

		if t.Kind != rq.TransformSelect {
			currRev = append(currRev, t)
		}
	}

	var selected []rq.ColumnID
	for _, r := range inputsRequired {
		if r.Selected {
			selected = append(selected, r.Col)
		}
	}

	log.Debugf("finished table: avail=%v", inputsAvail)

	seenRequired := make(map[rq.ColumnID]bool)
	var required []rq.ColumnID
	for _, r := range inputsRequired {
		if !seenRequired[r.Col] {
			seenRequired[r.Col] = true
			required = append(required, r.Col)
		}
	}
	log.Debugf(".. required=%v", required)

	var missing []rq.ColumnID
	for _, cid := range required {
		if !inputsAvail[cid] {
			missing = append(missing, cid)
		}
	}
	log.Debugf(".. missing=%v", missing)

	selectList := append([]rq.ColumnID(nil), output...)
	seenSelected := make(map[rq.ColumnID]bool)
	for _, c := range output {
		seenSelected[c] = true
	}
	for _, c := range selected {
		if !seenSelected[c] {
			seenSelected[c] = true
			selectList = append(selectList, c)
		}
	}

	if len(selectList) == 0 {
		// s-strings and similar can produce transforms with no column
		// requirements at all, which would otherwise yield an empty
		// SELECT; fall back to a wildcard per input table (spec §4.2,
		// scenario S6).
		for _, tiid := range ctx.CollectPipelineInputs(remaining) {
			selectList = append(selectList, ctx.RegisterWildcard(tiid))
		}
	}

	// currRev is in tail-first order, so the Select goes at its front to end
	// up last once reversed.
	currRev = append([]rq.Transform{rq.NewSelect(selectList)}, currRev...)

	suffix := make([]rq.Transform, len(currRev))
	for i, t := range currRev {
		suffix[len(currRev)-1-i] = t
	}

	if len(remaining) == 0 {
		return nil, suffix
	}
	return &RemainingPipeline{Prefix: remaining, Missing: missing}, suffix
}
