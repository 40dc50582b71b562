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

// Package rqmem provides a single-process, map-backed implementation of
// rq.Context — the "memory" package analogue referenced throughout the
// teacher repo's sql/plan tests as memory.NewTable. It is the concrete
// ambient collaborator used by package anchor's tests and is a reasonable
// starting point for a real compiler driver (out of scope here, spec §1).
package rqmem

import (
	"fmt"
	"sync"

	"github.com/dolthub/go-rq-anchor/rq"
)

// Context is an in-memory rq.Context. A single compilation holds one
// Context as an exclusive mutable borrow (spec §5); the mutex here guards
// against accidental concurrent use, it is not a concurrency feature this
// core offers.
type Context struct {
	mu sync.Mutex

	nextColumnID rq.ColumnID
	nextTableID  rq.TableID

	columnNames map[rq.ColumnID]string
	columnDecls map[rq.ColumnID]rq.ColumnDecl
	tableDecls  map[rq.TableID]rq.TableDecl

	wildcardOf map[rq.TableID]rq.ColumnID
}

// NewContext builds an empty Context.
func NewContext() *Context {
	return &Context{
		columnNames: make(map[rq.ColumnID]string),
		columnDecls: make(map[rq.ColumnID]rq.ColumnDecl),
		tableDecls:  make(map[rq.TableID]rq.TableDecl),
		wildcardOf:  make(map[rq.TableID]rq.ColumnID),
	}
}

// GenColumnID implements rq.Context.
func (c *Context) GenColumnID() rq.ColumnID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextColumnID++
	return c.nextColumnID
}

// GenTableID implements rq.Context.
func (c *Context) GenTableID() rq.TableID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextTableID++
	return c.nextTableID
}

// EnsureColumnName implements rq.Context.
func (c *Context) EnsureColumnName(id rq.ColumnID) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name, ok := c.columnNames[id]; ok {
		return name
	}
	name := fmt.Sprintf("_expr_%s", id)
	c.columnNames[id] = name
	return name
}

// ColumnName implements rq.Context.
func (c *Context) ColumnName(id rq.ColumnID) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.columnNames[id]
	return name, ok
}

// SetColumnName implements rq.Context.
func (c *Context) SetColumnName(id rq.ColumnID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.columnNames[id] = name
}

// ColumnDecl implements rq.Context.
func (c *Context) ColumnDecl(id rq.ColumnID) (rq.ColumnDecl, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	decl, ok := c.columnDecls[id]
	return decl, ok
}

// DeclareColumn records id's declaration. Not part of rq.Context (the
// splitter/anchor only read column_decls per spec §6), but needed by
// callers that build an initial pipeline — the out-of-scope resolver's job
// in a full compiler, exposed here so tests can set up fixtures.
func (c *Context) DeclareColumn(id rq.ColumnID, decl rq.ColumnDecl) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.columnDecls[id] = decl
}

// TableDecl implements rq.Context.
func (c *Context) TableDecl(id rq.TableID) (rq.TableDecl, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	decl, ok := c.tableDecls[id]
	return decl, ok
}

// DeclareTable implements rq.Context.
func (c *Context) DeclareTable(decl rq.TableDecl) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tableDecls[decl.ID] = decl
}

// CreateTableInstance implements rq.Context. This in-memory implementation
// has no separate instance registry: it records a relation-column
// declaration for every column ref exposes (with ref.Source as both the
// source and the instance TableID). If ref.Source
// has no TableDecl yet, one is registered here: instantiating a table
// implies the table exists, and AnchorSplit's relation-column source-table
// check (rq.Context.TableDecl) depends on every real input table having a
// declaration, not just synthetic anchor tables (which declare themselves
// explicitly before instantiation).
func (c *Context) CreateTableInstance(ref rq.TableRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tableDecls[ref.Source]; !ok {
		c.tableDecls[ref.Source] = rq.TableDecl{ID: ref.Source, Name: ref.Name}
	}
	for _, col := range ref.Columns {
		c.columnDecls[col.ID] = rq.NewRelationColumnDecl(ref.Source, ref.Source, col.Column)
	}
}

// RegisterCompute implements rq.Context.
func (c *Context) RegisterCompute(comp rq.Compute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.columnDecls[comp.ID] = rq.NewComputeDecl(comp)
}

// RegisterWildcard implements rq.Context.
func (c *Context) RegisterWildcard(tableInstanceID rq.TableID) rq.ColumnID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.wildcardOf[tableInstanceID]; ok {
		return id
	}
	c.nextColumnID++
	id := c.nextColumnID
	c.wildcardOf[tableInstanceID] = id
	c.columnDecls[id] = rq.NewRelationColumnDecl(tableInstanceID, tableInstanceID, rq.Wildcard())
	return id
}

// CollectPipelineInputs implements rq.Context: it walks pipeline and
// returns every TableID referenced by a From, Join, or Concat transform.
func (c *Context) CollectPipelineInputs(pipeline []rq.Transform) []rq.TableID {
	var out []rq.TableID
	seen := make(map[rq.TableID]bool)
	add := func(id rq.TableID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, t := range pipeline {
		switch t.Kind {
		case rq.TransformFrom:
			add(t.From.Source)
		case rq.TransformJoin:
			add(t.Join.With.Source)
		case rq.TransformConcat:
			add(t.Concat.Source)
		}
	}
	return out
}
