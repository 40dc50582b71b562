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

// ColumnDeclKind discriminates the two things a ColumnID can be declared
// as: a column exposed by some table instance, or a derived Compute.
type ColumnDeclKind int

const (
	ColumnDeclRelation ColumnDeclKind = iota
	ColumnDeclCompute
)

// ColumnDecl is the declaration a ColumnID resolves to (spec §6): either
// RelationColumn(source table, instance, relation column) or Compute(c).
type ColumnDecl struct {
	Kind ColumnDeclKind

	// Valid when Kind == ColumnDeclRelation.
	Source     TableID
	InstanceID TableID
	Column     RelationColumn

	// Valid when Kind == ColumnDeclCompute.
	Compute *Compute
}

// NewRelationColumnDecl builds a ColumnDecl for a column exposed by a table
// instance.
func NewRelationColumnDecl(source, instanceID TableID, col RelationColumn) ColumnDecl {
	return ColumnDecl{Kind: ColumnDeclRelation, Source: source, InstanceID: instanceID, Column: col}
}

// NewComputeDecl builds a ColumnDecl for a derived column.
func NewComputeDecl(c Compute) ColumnDecl {
	return ColumnDecl{Kind: ColumnDeclCompute, Compute: &c}
}

// TableDecl is a relation's registry entry (spec §6 table_decls). Pipeline
// is the relation's body; anchor_split registers a TableDecl with a nil
// Pipeline and relies on the driver (out of scope, spec §1) to attach the
// first sub-pipeline's body later (spec §4.3 step 3, spec §9 "Recursive
// relation bodies").
type TableDecl struct {
	ID   TableID
	Name string
	// Pipeline is nil until a later resolution step fills it in.
	Pipeline []Transform
}
