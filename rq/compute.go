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

// SortDirection is the direction of one sort key.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortField is one column/direction pair of a Sort transform.
type SortField struct {
	Column    ColumnID
	Direction SortDirection
}

// WindowFrameKind distinguishes a ROWS frame from a RANGE frame; opaque
// beyond that to this core (the dialect printer, out of scope, interprets
// it further).
type WindowFrameKind int

const (
	WindowFrameRows WindowFrameKind = iota
	WindowFrameRange
)

// WindowFrame bounds a window's frame. Start/End are expressions so that
// e.g. "N preceding" can be expressed; a nil bound means unbounded.
type WindowFrame struct {
	Kind  WindowFrameKind
	Start *Expr
	End   *Expr
}

// WindowSpec marks a Compute as windowed. Its mere presence is what
// InferComplexity inspects; partitioning/ordering are carried for the
// out-of-scope printer, not consulted by this core's own logic.
type WindowSpec struct {
	Partition []ColumnID
	Order     []SortField
	Frame     WindowFrame
}

// Compute is a derived column (spec §3).
type Compute struct {
	ID            ColumnID
	Expr          Expr
	IsAggregation bool
	// Window is nil for a non-windowed compute.
	Window *WindowSpec
}

// TakeRange is the [start, end) bound of a Take transform. Either endpoint
// may be nil (an open bound).
type TakeRange struct {
	Start *Expr
	End   *Expr
}

// JoinSide is the join kind of a Join transform.
type JoinSide int

const (
	JoinInner JoinSide = iota
	JoinLeft
	JoinRight
	JoinFull
)

// JoinTransform is the payload of a Join transform.
type JoinTransform struct {
	Side   JoinSide
	With   TableRef
	Filter Expr
}

// AggregateTransform is the payload of an Aggregate transform: the columns
// partitioned by (grouped on, each a Plain-complexity input) and the
// columns computed (each itself declared as an Aggregation-complexity
// Compute looked up via the ambient Context).
type AggregateTransform struct {
	Partition []ColumnID
	Compute   []ColumnID
}
