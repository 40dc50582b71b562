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

// redirectSet maps an old ColumnID to the fresh one it was replaced with
// across a split.
type redirectSet map[rq.ColumnID]rq.ColumnID

func (r redirectSet) apply(id rq.ColumnID) rq.ColumnID {
	if to, ok := r[id]; ok {
		return to
	}
	return id
}

func (r redirectSet) applyAll(ids []rq.ColumnID) []rq.ColumnID {
	if ids == nil {
		return nil
	}
	out := make([]rq.ColumnID, len(ids))
	for i, id := range ids {
		out[i] = r.apply(id)
	}
	return out
}

// redirectExpr rewrites every ColumnID leaf of e via r. Fresh ColumnIDs
// minted by the anchor that produced r are, by construction, absent from
// r, so this never recurses through a freshly rewritten leaf (spec §4.3:
// "never recursively through the new CIds").
func (r redirectSet) redirectExpr(e rq.Expr) rq.Expr {
	switch e.Kind {
	case rq.ExprColumnRef:
		e.Column = r.apply(e.Column)
		return e
	case rq.ExprOp:
		args := make([]rq.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = r.redirectExpr(a)
		}
		e.Args = args
		return e
	default:
		return e
	}
}

func (r redirectSet) redirectWindow(w *rq.WindowSpec) *rq.WindowSpec {
	if w == nil {
		return nil
	}
	rewritten := *w
	rewritten.Partition = r.applyAll(w.Partition)
	order := make([]rq.SortField, len(w.Order))
	for i, s := range w.Order {
		order[i] = rq.SortField{Column: r.apply(s.Column), Direction: s.Direction}
	}
	rewritten.Order = order
	if w.Frame.Start != nil {
		start := r.redirectExpr(*w.Frame.Start)
		rewritten.Frame.Start = &start
	}
	if w.Frame.End != nil {
		end := r.redirectExpr(*w.Frame.End)
		rewritten.Frame.End = &end
	}
	return &rewritten
}

func (r redirectSet) redirectTableRef(ref rq.TableRef) rq.TableRef {
	cols := make([]rq.TableRefColumn, len(ref.Columns))
	for i, c := range ref.Columns {
		cols[i] = rq.TableRefColumn{Column: c.Column, ID: r.apply(c.ID)}
	}
	ref.Columns = cols
	return ref
}

// cidRedirector threads a Context through redirectTransform so rewritten
// Computes can be re-registered (spec §4.3 step 6), mirroring the original
// implementation's CidRedirector, which overrides fold_transform only for
// the Compute case and otherwise reuses the generic fold.
type cidRedirector struct {
	ctx       rq.Context
	redirects redirectSet
}

// redirectTransform is the central match dispatcher (spec §9 Design Notes)
// rewriting every ColumnID leaf of t via cr.redirects.
func (cr *cidRedirector) redirectTransform(t rq.Transform) rq.Transform {
	r := cr.redirects
	switch t.Kind {
	case rq.TransformFrom:
		ref := r.redirectTableRef(*t.From)
		t.From = &ref
	case rq.TransformJoin:
		j := *t.Join
		j.With = r.redirectTableRef(j.With)
		j.Filter = r.redirectExpr(j.Filter)
		t.Join = &j
	case rq.TransformFilter:
		f := r.redirectExpr(*t.Filter)
		t.Filter = &f
	case rq.TransformCompute:
		c := *t.Compute
		c.ID = r.apply(c.ID)
		c.Expr = r.redirectExpr(c.Expr)
		c.Window = r.redirectWindow(c.Window)
		t.Compute = &c
		cr.ctx.RegisterCompute(c)
	case rq.TransformAggregate:
		a := *t.Aggregate
		a.Partition = r.applyAll(a.Partition)
		a.Compute = r.applyAll(a.Compute)
		t.Aggregate = &a
	case rq.TransformSort:
		sort := make([]rq.SortField, len(t.Sort))
		for i, s := range t.Sort {
			sort[i] = rq.SortField{Column: r.apply(s.Column), Direction: s.Direction}
		}
		t.Sort = sort
	case rq.TransformTake:
		tr := *t.Take
		if tr.Start != nil {
			start := r.redirectExpr(*tr.Start)
			tr.Start = &start
		}
		if tr.End != nil {
			end := r.redirectExpr(*tr.End)
			tr.End = &end
		}
		t.Take = &tr
	case rq.TransformUnique:
		// no payload
	case rq.TransformConcat:
		ref := r.redirectTableRef(*t.Concat)
		t.Concat = &ref
	case rq.TransformSelect:
		t.Select = r.applyAll(t.Select)
	default:
		panic(rq.ErrMalformedTransform.New(t.KindName(), "unexpected transform kind in redirectTransform"))
	}
	return t
}

func (cr *cidRedirector) redirectPipeline(pipeline []rq.Transform) []rq.Transform {
	out := make([]rq.Transform, len(pipeline))
	for i, t := range pipeline {
		out[i] = cr.redirectTransform(t)
	}
	return out
}
