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

// RelationColumnKind discriminates the two shapes a relation column can
// take: every column of a source relation (Wildcard), or a single named or
// anonymous column.
type RelationColumnKind int

const (
	// RelationColumnWildcard stands for "all columns of a source relation",
	// emitted as `*` by the (out-of-scope) dialect printer.
	RelationColumnWildcard RelationColumnKind = iota
	// RelationColumnSingle is a named or anonymous single column.
	RelationColumnSingle
)

// RelationColumn is one of Wildcard or Single(optional name) (spec §3).
type RelationColumn struct {
	Kind RelationColumnKind
	// Name is only meaningful when Kind == RelationColumnSingle. An empty
	// Name means an anonymous column.
	Name string
}

// Wildcard builds a RelationColumn standing for every column of its source.
func Wildcard() RelationColumn {
	return RelationColumn{Kind: RelationColumnWildcard}
}

// SingleColumn builds a named (or, with an empty name, anonymous) single
// RelationColumn.
func SingleColumn(name string) RelationColumn {
	return RelationColumn{Kind: RelationColumnSingle, Name: name}
}

// IsWildcard reports whether c stands for every column of its source.
func (c RelationColumn) IsWildcard() bool {
	return c.Kind == RelationColumnWildcard
}

// TableRefColumn pairs one exposed RelationColumn with the ColumnID it is
// bound to in the surrounding scope.
type TableRefColumn struct {
	Column RelationColumn
	ID     ColumnID
}

// TableRef binds a TableID to the list of columns one usage site of that
// table exposes, and the identifiers those columns are known by in the
// surrounding scope.
type TableRef struct {
	// Source is the TableID of the relation this is an instance of.
	Source TableID
	// Name is a display name for this instance (e.g. for a generated alias);
	// may be empty.
	Name string
	// Columns are the (RelationColumn, ColumnID) pairs this instance exposes.
	Columns []TableRefColumn
}

// ColumnIDs returns the ColumnIDs this reference exposes, in declared order.
func (r TableRef) ColumnIDs() []ColumnID {
	ids := make([]ColumnID, len(r.Columns))
	for i, c := range r.Columns {
		ids[i] = c.ID
	}
	return ids
}
