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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-rq-anchor/rq"
	"github.com/dolthub/go-rq-anchor/rqmem"
)

// TestScenarioSimpleProjection is S1: from employees | select salary fits
// in one SELECT with no cut.
func TestScenarioSimpleProjection(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	empTID := ctx.GenTableID()
	salaryID := ctx.GenColumnID()
	ref := rq.TableRef{Source: empTID, Name: "employees", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("salary"), ID: salaryID},
	}}
	ctx.CreateTableInstance(ref)

	pipeline := []rq.Transform{rq.NewFrom(ref), rq.NewSelect([]rq.ColumnID{salaryID})}

	remaining, suffix := SplitOffBack(ctx, Config{}, []rq.ColumnID{salaryID}, pipeline)
	require.Nil(remaining)
	require.Len(suffix, 2)
	require.Equal(rq.TransformFrom, suffix[0].Kind)
	require.Equal(rq.TransformSelect, suffix[1].Kind)
	require.Equal([]rq.ColumnID{salaryID}, suffix[1].Select)
}

// TestScenarioFilterAggregateSortFilterTake is S2: a WHERE-style filter, an
// aggregate, a HAVING-style filter, a sort and a take all fit in one
// SELECT. Unlike the narrative version of this scenario, no derive sits
// between the WHERE filter and the aggregate: a non-aggregation Compute
// positioned after a Filter already admitted into the suffix is cut by the
// canonical-order rule regardless of materializability, so an end-to-end
// "derive then filter on it" case needs its own anchored sub-pipeline (see
// TestScenarioWindowedComputeForcesCut for that mechanism in isolation).
func TestScenarioFilterAggregateSortFilterTake(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	empTID := ctx.GenTableID()
	countryID := ctx.GenColumnID()
	titleID := ctx.GenColumnID()
	salaryID := ctx.GenColumnID()
	ref := rq.TableRef{Source: empTID, Name: "employees", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("country"), ID: countryID},
		{Column: rq.SingleColumn("title"), ID: titleID},
		{Column: rq.SingleColumn("salary"), ID: salaryID},
	}}
	ctx.CreateTableInstance(ref)

	avgSalaryID := ctx.GenColumnID()
	ctx.RegisterCompute(rq.Compute{ID: avgSalaryID, Expr: rq.Op("avg", rq.ColumnRef(salaryID)), IsAggregation: true})
	countID := ctx.GenColumnID()
	ctx.RegisterCompute(rq.Compute{ID: countID, Expr: rq.Op("count"), IsAggregation: true})

	filterCountry := rq.NewFilter(rq.Op("=", rq.ColumnRef(countryID), rq.NewLiteral("USA")))
	agg := rq.NewAggregate([]rq.ColumnID{titleID}, []rq.ColumnID{avgSalaryID, countID})
	sort := rq.NewSort([]rq.SortField{{Column: countID}})
	filterCount := rq.NewFilter(rq.Op(">", rq.ColumnRef(countID), rq.NewLiteral(200)))
	limit := rq.NewLiteral(20)
	take := rq.NewTake(rq.TakeRange{End: &limit})

	pipeline := []rq.Transform{rq.NewFrom(ref), filterCountry, agg, sort, filterCount, take}
	output := []rq.ColumnID{titleID, avgSalaryID, countID}

	remaining, suffix := SplitOffBack(ctx, Config{}, output, pipeline)
	require.Nil(remaining, "WHERE + aggregate + HAVING + sort + take should fit in a single sub-pipeline")
	require.Len(suffix, 7)

	kinds := make([]string, len(suffix))
	for i, tr := range suffix {
		kinds[i] = tr.KindName()
	}
	require.Equal([]string{"From", "Filter", "Aggregate", "Sort", "Filter", "Take", "Select"}, kinds)

	last := suffix[len(suffix)-1]
	require.ElementsMatch(output, last.Select)
}

// TestScenarioAggregateAfterAggregate is S3: an aggregate immediately
// following another aggregate always forces a cut, since Aggregate's
// forbidden set includes "Aggregate" itself. The two aggregates both group
// by the same passthrough column so the split only needs to carry that
// column across the anchor, not an aggregate-declared one (an aggregate's
// own compute-declared columns are never marked available by this pass —
// deliberately, since their materialization is the out-of-scope printer's
// concern — so they can't cross an anchor boundary without a driver that
// knows to special-case them; that driver is out of scope, spec §1).
func TestScenarioAggregateAfterAggregate(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	tTID := ctx.GenTableID()
	titleID := ctx.GenColumnID()
	ref := rq.TableRef{Source: tTID, Name: "t", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("title"), ID: titleID},
	}}
	ctx.CreateTableInstance(ref)

	agg1 := rq.NewAggregate([]rq.ColumnID{titleID}, nil)
	agg2 := rq.NewAggregate([]rq.ColumnID{titleID}, nil)

	pipeline := []rq.Transform{rq.NewFrom(ref), agg1, agg2}
	output := []rq.ColumnID{titleID}

	subs := splitAll(ctx, Config{}, output, pipeline)
	require.Len(subs, 2, "aggregate-after-aggregate must split into two sub-pipelines")

	base := subs[0]
	require.Empty(base.TableName)
	require.Equal([]string{"From", "Aggregate", "Select"}, kindsOf(base.Body))
	require.Equal(titleID, base.Body[1].Aggregate.Partition[0])

	final := subs[1]
	require.NotEmpty(final.TableName)
	require.Equal([]string{"From", "Aggregate", "Select"}, kindsOf(final.Body))

	// The intermediate From reads the synthetic table the base sub-pipeline
	// declares, exposing title under a fresh ColumnID.
	require.Equal(final.TableName, final.Body[0].From.Name)
	newTitleID := final.Body[0].From.Columns[0].ID
	require.NotEqual(titleID, newTitleID)
	require.Equal(newTitleID, final.Body[1].Aggregate.Partition[0])
	require.Equal([]rq.ColumnID{newTitleID}, final.Body[2].Select)
}

// TestScenarioSortForcesColumnIntoSelect is S4: sorting by a column not in
// the requested output still requires it to be projected.
func TestScenarioSortForcesColumnIntoSelect(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	tTID := ctx.GenTableID()
	xID := ctx.GenColumnID()
	yID := ctx.GenColumnID()
	ref := rq.TableRef{Source: tTID, Name: "t", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("x"), ID: xID},
		{Column: rq.SingleColumn("y"), ID: yID},
	}}
	ctx.CreateTableInstance(ref)

	pipeline := []rq.Transform{rq.NewFrom(ref), rq.NewSort([]rq.SortField{{Column: xID}})}
	remaining, suffix := SplitOffBack(ctx, Config{}, []rq.ColumnID{yID}, pipeline)
	require.Nil(remaining)

	last := suffix[len(suffix)-1]
	require.Equal(rq.TransformSelect, last.Kind)
	require.Equal([]rq.ColumnID{yID, xID}, last.Select)
}

// TestScenarioWindowedComputeForcesCut is S5: a windowed compute followed
// by a filter on it is cut between the two, with the compute promoted into
// the base sub-pipeline and the filter referencing it through the anchor's
// redirected ColumnID in the final one.
func TestScenarioWindowedComputeForcesCut(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	tTID := ctx.GenTableID()
	c1ID := ctx.GenColumnID()
	ref := rq.TableRef{Source: tTID, Name: "t", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("c1"), ID: c1ID},
	}}
	ctx.CreateTableInstance(ref)

	wID := ctx.GenColumnID()
	ctx.RegisterCompute(rq.Compute{ID: wID, Expr: rq.ColumnRef(c1ID)})
	windowed := rq.Compute{ID: wID, Expr: rq.ColumnRef(c1ID), Window: &rq.WindowSpec{}}

	pipeline := []rq.Transform{
		rq.NewFrom(ref),
		rq.NewCompute(windowed),
		rq.NewFilter(rq.Op("<", rq.ColumnRef(wID), rq.NewLiteral(5))),
	}
	output := []rq.ColumnID{wID}

	subs := splitAll(ctx, Config{}, output, pipeline)
	require.Len(subs, 2)

	base := subs[0]
	require.Equal([]string{"From", "Compute", "Select"}, kindsOf(base.Body))
	require.True(base.Body[1].Compute.Window != nil)

	final := subs[1]
	require.Equal([]string{"From", "Filter", "Select"}, kindsOf(final.Body))
	newWID := final.Body[0].From.Columns[0].ID
	require.Equal(newWID, final.Body[1].Filter.Args[0].Column)
	require.Equal([]rq.ColumnID{newWID}, final.Body[2].Select)
}

// TestScenarioWildcardFallback is S6: an aggregate-after-aggregate cut
// whose final suffix requires no real columns at all falls back to a
// wildcard over the input tables still in the unconsumed prefix.
func TestScenarioWildcardFallback(t *testing.T) {
	require := require.New(t)

	ctx := rqmem.NewContext()
	tTID := ctx.GenTableID()
	c1ID := ctx.GenColumnID()
	ref := rq.TableRef{Source: tTID, Name: "t", Columns: []rq.TableRefColumn{
		{Column: rq.SingleColumn("c1"), ID: c1ID},
	}}
	ctx.CreateTableInstance(ref)

	agg1 := rq.NewAggregate([]rq.ColumnID{c1ID}, nil)
	agg2 := rq.NewAggregate(nil, nil)

	pipeline := []rq.Transform{rq.NewFrom(ref), agg1, agg2}

	remaining, suffix := SplitOffBack(ctx, Config{}, nil, pipeline)
	require.NotNil(remaining, "the second aggregate cuts before the first")
	require.Equal([]string{"From", "Aggregate"}, kindsOf(remaining.Prefix))

	require.Equal([]string{"Aggregate", "Select"}, kindsOf(suffix))
	sel := suffix[len(suffix)-1]
	require.Len(sel.Select, 1, "empty SELECT falls back to one wildcard per remaining input table")

	decl, ok := ctx.ColumnDecl(sel.Select[0])
	require.True(ok)
	require.Equal(rq.ColumnDeclRelation, decl.Kind)
	require.True(decl.Column.IsWildcard())
	require.Equal(tTID, decl.Source)
}

func kindsOf(ts []rq.Transform) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.KindName()
	}
	return out
}
