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

// cidCollector implements rq.Visitor, recording each distinct ColumnID leaf
// it visits in first-seen order. Grounded on the original CidCollector
// (anchor.rs), which folds into a HashSet<CId>; this collector is stricter
// — order-preserving as well as deduplicating — which still satisfies
// spec §4.1's "duplicates allowed, consumers de-duplicate" wording.
type cidCollector struct {
	seen map[rq.ColumnID]bool
	cids []rq.ColumnID
}

func (c *cidCollector) Visit(e rq.Expr) rq.Visitor {
	if e.Kind == rq.ExprColumnRef && !c.seen[e.Column] {
		c.seen[e.Column] = true
		c.cids = append(c.cids, e.Column)
	}
	return c
}

// CollectCIDs returns the free ColumnIDs of expr: every ExprColumnRef leaf,
// visited exactly once per distinct column, in first-seen order.
func CollectCIDs(expr rq.Expr) []rq.ColumnID {
	c := &cidCollector{seen: make(map[rq.ColumnID]bool)}
	rq.Walk(c, expr)
	return c.cids
}
