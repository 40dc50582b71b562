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

// TransformKind discriminates the closed set of pipeline transforms (spec
// §3). The set is closed and small, so — per spec §9's Design Notes —
// implementations should use a discriminated-union pattern (tag + payload)
// and a central match dispatcher rather than polymorphism; that's what
// Transform and its constructors below do.
type TransformKind int

const (
	TransformFrom TransformKind = iota
	TransformJoin
	TransformFilter
	TransformCompute
	TransformAggregate
	TransformSort
	TransformTake
	TransformUnique
	TransformConcat
	TransformSelect
)

// KindName returns the discriminator name used by the admission rule's
// "following" set and by debug logging, mirroring the original
// implementation's use of an enum variant's name as a string.
func (k TransformKind) KindName() string {
	switch k {
	case TransformFrom:
		return "From"
	case TransformJoin:
		return "Join"
	case TransformFilter:
		return "Filter"
	case TransformCompute:
		return "Compute"
	case TransformAggregate:
		return "Aggregate"
	case TransformSort:
		return "Sort"
	case TransformTake:
		return "Take"
	case TransformUnique:
		return "Unique"
	case TransformConcat:
		return "Concat"
	case TransformSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Transform is a tagged variant over the ten pipeline transform shapes
// (spec §3). Exactly one payload field is populated, selected by Kind.
type Transform struct {
	Kind TransformKind

	From      *TableRef           // TransformFrom
	Join      *JoinTransform      // TransformJoin
	Filter    *Expr               // TransformFilter
	Compute   *Compute            // TransformCompute
	Aggregate *AggregateTransform // TransformAggregate
	Sort      []SortField         // TransformSort
	Take      *TakeRange          // TransformTake
	Concat    *TableRef           // TransformConcat
	Select    []ColumnID          // TransformSelect
	// Unique carries no payload.
}

// KindName returns t.Kind.KindName().
func (t Transform) KindName() string {
	return t.Kind.KindName()
}

// NewFrom builds a From transform.
func NewFrom(ref TableRef) Transform {
	return Transform{Kind: TransformFrom, From: &ref}
}

// NewJoin builds a Join transform.
func NewJoin(side JoinSide, with TableRef, filter Expr) Transform {
	return Transform{Kind: TransformJoin, Join: &JoinTransform{Side: side, With: with, Filter: filter}}
}

// NewFilter builds a Filter transform.
func NewFilter(e Expr) Transform {
	return Transform{Kind: TransformFilter, Filter: &e}
}

// NewCompute builds a Compute transform.
func NewCompute(c Compute) Transform {
	return Transform{Kind: TransformCompute, Compute: &c}
}

// NewAggregate builds an Aggregate transform.
func NewAggregate(partition, compute []ColumnID) Transform {
	return Transform{Kind: TransformAggregate, Aggregate: &AggregateTransform{Partition: partition, Compute: compute}}
}

// NewSort builds a Sort transform.
func NewSort(fields []SortField) Transform {
	return Transform{Kind: TransformSort, Sort: fields}
}

// NewTake builds a Take transform.
func NewTake(r TakeRange) Transform {
	return Transform{Kind: TransformTake, Take: &r}
}

// NewUnique builds a Unique transform.
func NewUnique() Transform {
	return Transform{Kind: TransformUnique}
}

// NewConcat builds a Concat transform.
func NewConcat(with TableRef) Transform {
	return Transform{Kind: TransformConcat, Concat: &with}
}

// NewSelect builds a Select transform.
func NewSelect(cols []ColumnID) Transform {
	return Transform{Kind: TransformSelect, Select: cols}
}
