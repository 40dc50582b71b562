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
	"fmt"

	"github.com/dolthub/go-rq-anchor/rq"
)

// emittedSubPipeline is one SELECT-shaped sub-pipeline produced by driving
// SplitOffBack/AnchorSplit to exhaustion. TableName is empty for the base
// sub-pipeline (the one that reads straight from real input tables); for
// every other sub-pipeline it's the name of the synthetic table its own
// leading From reads, which stands for the previous sub-pipeline's output.
//
// This is test-only scaffolding standing in for the driver loop that spec.md
// §1 places out of scope: it exists so end-to-end scenarios can be asserted
// against, not as part of this package's public API.
type emittedSubPipeline struct {
	TableName string
	Body      []rq.Transform
}

// splitAll iterates SplitOffBack/AnchorSplit until pipeline is fully
// consumed, returning the resulting chain of sub-pipelines in source-to-
// final order (index 0 reads real input tables; each later entry reads the
// previous one through the table named in its own TableName).
func splitAll(ctx rq.Context, cfg Config, output []rq.ColumnID, pipeline []rq.Transform) []emittedSubPipeline {
	type pending struct {
		tableName string
		body      []rq.Transform
	}

	var pendings []pending
	curPipeline := pipeline
	curOutput := output
	counter := 0

	for {
		remaining, suffix := SplitOffBack(ctx, cfg, curOutput, curPipeline)
		if remaining == nil {
			subs := make([]emittedSubPipeline, 0, len(pendings)+1)
			subs = append(subs, emittedSubPipeline{Body: suffix})
			for i := len(pendings) - 1; i >= 0; i-- {
				subs = append(subs, emittedSubPipeline{TableName: pendings[i].tableName, Body: pendings[i].body})
			}
			return subs
		}

		counter++
		name := fmt.Sprintf("_tbl%d", counter)
		anchored := AnchorSplit(ctx, cfg, name, remaining.Missing, suffix)
		pendings = append(pendings, pending{tableName: name, body: anchored})

		curPipeline = remaining.Prefix
		curOutput = remaining.Missing
	}
}
