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

// Context is the ambient collaborator every operation in package anchor is
// threaded through (spec §6). Exactly one mutable borrow of a Context is
// active for the duration of one compilation (spec §5); this core performs
// no locking of its own and expects none of its methods to be called
// concurrently.
type Context interface {
	// GenColumnID mints a fresh, never-reused ColumnID.
	GenColumnID() ColumnID
	// GenTableID mints a fresh, never-reused TableID.
	GenTableID() TableID

	// EnsureColumnName resolves a display name for id, synthesizing and
	// binding one if none is yet known. The returned name is stable for the
	// rest of the compilation.
	EnsureColumnName(id ColumnID) string
	// ColumnName returns the name bound to id, if any.
	ColumnName(id ColumnID) (string, bool)
	// SetColumnName binds name to id, overwriting any previous binding.
	SetColumnName(id ColumnID, name string)

	// ColumnDecl looks up id's declaration. ok is false if id has no
	// declaration, which per spec §7 is an upstream invariant violation.
	ColumnDecl(id ColumnID) (ColumnDecl, bool)
	// TableDecl looks up a relation's registry entry.
	TableDecl(id TableID) (TableDecl, bool)
	// DeclareTable registers or replaces a relation's registry entry.
	DeclareTable(decl TableDecl)

	// CreateTableInstance records a usage site of a table.
	CreateTableInstance(ref TableRef)
	// RegisterCompute records or replaces a Compute declaration, used by the
	// rewriter after it rewrites a Compute's expression (spec §4.3 step 6).
	RegisterCompute(c Compute)
	// RegisterWildcard mints a wildcard-standin ColumnID for the given table
	// instance, used by the splitter's empty-output fallback (spec §4.2).
	RegisterWildcard(tableInstanceID TableID) ColumnID

	// CollectPipelineInputs enumerates the input table instances referenced
	// by pipeline, used by the splitter's empty-output fallback.
	CollectPipelineInputs(pipeline []Transform) []TableID
}
