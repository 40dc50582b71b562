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

// AnchorSplit produces the downstream sub-pipeline prefixed with a From
// that reads a freshly declared intermediate relation exposing colsAtSplit
// under fresh ColumnIDs, with every reference in secondPipeline redirected
// from the old ColumnIDs to the new ones (spec §4.3).
func AnchorSplit(ctx rq.Context, cfg Config, firstTableName string, colsAtSplit []rq.ColumnID, secondPipeline []rq.Transform) []rq.Transform {
	log := cfg.logger().WithField("component", "anchor.rewriter")
	log.Debugf("split pipeline, first pipeline output: %v", colsAtSplit)

	newTID := ctx.GenTableID()

	redirects := make(redirectSet, len(colsAtSplit))
	newColumns := make([]rq.TableRefColumn, len(colsAtSplit))
	for i, oldCID := range colsAtSplit {
		newCID := ctx.GenColumnID()

		oldName := ctx.EnsureColumnName(oldCID)
		if oldName != "" {
			ctx.SetColumnName(newCID, oldName)
		}

		oldDecl, ok := ctx.ColumnDecl(oldCID)
		if !ok {
			panic(rq.ErrUnresolvedColumn.New(oldCID))
		}

		var col rq.RelationColumn
		if oldDecl.Kind == rq.ColumnDeclRelation {
			if _, ok := ctx.TableDecl(oldDecl.Source); !ok {
				panic(rq.ErrUnresolvedTable.New(oldDecl.Source))
			}
			if oldDecl.Column.IsWildcard() {
				col = rq.Wildcard()
			} else {
				col = rq.SingleColumn(oldName)
			}
		} else {
			col = rq.SingleColumn(oldName)
		}

		newColumns[i] = rq.TableRefColumn{Column: col, ID: newCID}
		redirects[oldCID] = newCID
	}

	// Register the new table with an empty body: the driver (out of scope,
	// spec §1) is responsible for later attaching the first sub-pipeline as
	// this table's body (spec §4.3 step 3, spec §9 "Recursive relation
	// bodies").
	ctx.DeclareTable(rq.TableDecl{ID: newTID, Name: firstTableName})

	tableRef := rq.TableRef{Source: newTID, Name: firstTableName, Columns: newColumns}
	ctx.CreateTableInstance(tableRef)

	second := make([]rq.Transform, 0, len(secondPipeline)+1)
	second = append(second, rq.NewFrom(tableRef))
	second = append(second, secondPipeline...)

	redirector := &cidRedirector{ctx: ctx, redirects: redirects}
	return redirector.redirectPipeline(second)
}
