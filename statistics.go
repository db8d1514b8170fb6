// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package filter

import (
	"maps"
	"slices"
)

// Bounds carries the inclusive minimum and maximum values recorded for a
// column within a row group.
type Bounds[T LiteralType] struct {
	Min, Max T
}

// ColumnStatistics is the type-erased view of the statistics recorded for
// a single column chunk of a row group. Implementations are produced by
// the stats constructors below and by the rowgroup package when reading
// file metadata.
type ColumnStatistics interface {
	// HasBounds reports whether min and max values were recorded.
	HasBounds() bool
	// IsEmpty reports whether a statistics entry exists but carries no
	// information at all. Nothing can ever be proven from empty stats.
	IsEmpty() bool
	// NumNulls returns the number of null values in the chunk, if the
	// writer recorded it.
	NumNulls() Optional[int64]
	// CompareMin compares the recorded minimum against the literal in
	// the ordering of the column type, returning <0, 0 or >0 as the
	// minimum is less than, equal to or greater than the literal. ok is
	// false when there are no bounds or the literal type does not match
	// the statistics, in which case nothing can be concluded.
	CompareMin(Literal) (cmpval int, ok bool)
	// CompareMax is the equivalent of CompareMin for the recorded
	// maximum.
	CompareMax(Literal) (cmpval int, ok bool)
}

// boundedStatistics is implemented by typed statistics that carry min/max
// bounds of type T, giving user defined predicates typed access to them.
type boundedStatistics[T LiteralType] interface {
	ColumnStatistics

	Bounds() Bounds[T]
}

// NewColumnStats creates column statistics from recorded bounds and a
// known null count.
func NewColumnStats[T LiteralType](min, max T, numNulls int64) ColumnStatistics {
	return &typedStatistics[T]{
		bounds:   Bounds[T]{Min: min, Max: max},
		numNulls: Optional[int64]{Val: numNulls, Valid: true},
		cmp:      getComparator[T](),
	}
}

// NewColumnStatsNoNullCount creates column statistics from recorded
// bounds where the writer did not record a null count.
func NewColumnStatsNoNullCount[T LiteralType](min, max T) ColumnStatistics {
	return &typedStatistics[T]{
		bounds: Bounds[T]{Min: min, Max: max},
		cmp:    getComparator[T](),
	}
}

// NewColumnStatsNoBounds creates column statistics for a chunk without
// recorded min/max values but with a known null count. A chunk holding
// only nulls is the common case, legacy writers also omit bounds while
// still counting nulls.
func NewColumnStatsNoBounds(numNulls int64) ColumnStatistics {
	return unboundedStatistics{
		numNulls: Optional[int64]{Val: numNulls, Valid: true},
	}
}

// EmptyStats returns the statistics of a chunk whose writer recorded
// nothing, not even a null count.
func EmptyStats() ColumnStatistics { return emptyStatistics{} }

type typedStatistics[T LiteralType] struct {
	bounds   Bounds[T]
	numNulls Optional[int64]
	cmp      Comparator[T]
}

func (s *typedStatistics[T]) HasBounds() bool           { return true }
func (s *typedStatistics[T]) IsEmpty() bool             { return false }
func (s *typedStatistics[T]) NumNulls() Optional[int64] { return s.numNulls }
func (s *typedStatistics[T]) Bounds() Bounds[T]         { return s.bounds }

func (s *typedStatistics[T]) CompareMin(lit Literal) (int, bool) {
	typed, ok := lit.(TypedLiteral[T])
	if !ok {
		return 0, false
	}

	return s.cmp(s.bounds.Min, typed.Value()), true
}

func (s *typedStatistics[T]) CompareMax(lit Literal) (int, bool) {
	typed, ok := lit.(TypedLiteral[T])
	if !ok {
		return 0, false
	}

	return s.cmp(s.bounds.Max, typed.Value()), true
}

type unboundedStatistics struct {
	numNulls Optional[int64]
}

func (unboundedStatistics) HasBounds() bool             { return false }
func (unboundedStatistics) IsEmpty() bool               { return false }
func (s unboundedStatistics) NumNulls() Optional[int64] { return s.numNulls }
func (unboundedStatistics) CompareMin(Literal) (int, bool) {
	return 0, false
}
func (unboundedStatistics) CompareMax(Literal) (int, bool) {
	return 0, false
}

type emptyStatistics struct{}

func (emptyStatistics) HasBounds() bool           { return false }
func (emptyStatistics) IsEmpty() bool             { return true }
func (emptyStatistics) NumNulls() Optional[int64] { return Optional[int64]{} }
func (emptyStatistics) CompareMin(Literal) (int, bool) {
	return 0, false
}
func (emptyStatistics) CompareMax(Literal) (int, bool) {
	return 0, false
}

// RowGroupStats holds the per-column statistics of a single row group,
// keyed by the dotted path of each leaf column, along with the row count
// of the group.
type RowGroupStats struct {
	columns map[string]ColumnStatistics
	numRows int64
}

// NewRowGroupStats creates row group statistics from the given column
// map. The map is keyed by dotted column path and is used as-is.
func NewRowGroupStats(numRows int64, columns map[string]ColumnStatistics) *RowGroupStats {
	return &RowGroupStats{columns: columns, numRows: numRows}
}

// NumRows returns the number of rows in the row group, which for the
// flat schemas this package evaluates is also the value count of every
// column chunk.
func (r *RowGroupStats) NumRows() int64 { return r.numRows }

// Column returns the statistics for the column with the given path, or
// nil when the row group carries no such column.
func (r *RowGroupStats) Column(path ColumnPath) ColumnStatistics {
	if r.columns == nil {
		return nil
	}

	return r.columns[path.String()]
}

// Paths returns the dotted paths of all columns in the row group in
// sorted order.
func (r *RowGroupStats) Paths() []string {
	return slices.Sorted(maps.Keys(r.columns))
}
