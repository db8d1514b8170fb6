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

package rowgroup

import (
	"fmt"
	"strings"

	"github.com/apache/parquet-filter-go"
	"github.com/parquet-go/parquet-go/format"
)

// ParquetGoSource reads row group statistics out of the raw thrift
// footer exposed by the parquet-go reader, typically obtained from
// parquet.File.Metadata.
type ParquetGoSource struct {
	meta   *format.FileMetaData
	leaves map[string]*format.SchemaElement
}

var _ Source = (*ParquetGoSource)(nil)

// NewParquetGoSource creates a Source over raw parquet file metadata.
func NewParquetGoSource(meta *format.FileMetaData) *ParquetGoSource {
	leaves := make(map[string]*format.SchemaElement)
	if len(meta.Schema) > 0 {
		collectLeaves(meta.Schema, 1, "", int(meta.Schema[0].NumChildren), leaves)
	}

	return &ParquetGoSource{meta: meta, leaves: leaves}
}

// FromParquetGoMetadata extracts the column statistics of the i-th row
// group of the given raw file metadata.
func FromParquetGoMetadata(meta *format.FileMetaData, i int) (*filter.RowGroupStats, error) {
	return NewParquetGoSource(meta).RowGroupStats(i)
}

func (p *ParquetGoSource) NumRowGroups() int { return len(p.meta.RowGroups) }

func (p *ParquetGoSource) RowGroupStats(i int) (*filter.RowGroupStats, error) {
	rg := &p.meta.RowGroups[i]
	columns := make(map[string]filter.ColumnStatistics, len(rg.Columns))
	for c := range rg.Columns {
		col := &rg.Columns[c].MetaData
		path := strings.Join(col.PathInSchema, ".")
		stats, err := p.columnStats(col, path)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", path, err)
		}

		columns[path] = stats
	}

	return filter.NewRowGroupStats(rg.NumRows, columns), nil
}

func (p *ParquetGoSource) columnStats(col *format.ColumnMetaData, path string) (filter.ColumnStatistics, error) {
	return columnStatsFromRaw(p.rawColumnStats(col, path))
}

func (p *ParquetGoSource) rawColumnStats(col *format.ColumnMetaData, path string) rawStats {
	typ, ok := p.primitiveType(col, path)

	stats := &col.Statistics
	encMin, encMax := stats.MinValue, stats.MaxValue
	if encMin == nil && encMax == nil && deprecatedBoundsUsable(typ, ok) {
		// old writers populated the deprecated min/max pair, whose
		// ordering is only reliable for numeric types
		encMin, encMax = stats.Min, stats.Max
	}

	// the thrift null_count field is optional but decodes as zero when
	// absent, so a bare zero on a chunk without any other statistics
	// cannot be told apart from a writer that never counted
	numNulls := filter.Optional[int64]{Val: stats.NullCount, Valid: true}
	if stats.NullCount == 0 && encMin == nil && encMax == nil && col.NumValues > 0 {
		numNulls = filter.Optional[int64]{}
	}

	return rawStats{typ: typ, ordered: ok, encMin: encMin, encMax: encMax, numNulls: numNulls}
}

func deprecatedBoundsUsable(typ filter.PrimitiveType, ok bool) bool {
	if !ok {
		return false
	}

	switch typ {
	case filter.PrimitiveBool, filter.PrimitiveInt32, filter.PrimitiveInt64,
		filter.PrimitiveFloat32, filter.PrimitiveFloat64:
		return true
	}

	return false
}

// primitiveType maps the physical type of a chunk to the value domain
// its statistics compare in, refining byte arrays to strings and fixed
// length byte arrays to uuids from the logical type annotations of the
// schema element at the same path. ok is false for physical types
// without a defined ordering.
func (p *ParquetGoSource) primitiveType(col *format.ColumnMetaData, path string) (filter.PrimitiveType, bool) {
	switch col.Type {
	case format.Boolean:
		return filter.PrimitiveBool, true
	case format.Int32:
		return filter.PrimitiveInt32, true
	case format.Int64:
		return filter.PrimitiveInt64, true
	case format.Float:
		return filter.PrimitiveFloat32, true
	case format.Double:
		return filter.PrimitiveFloat64, true
	case format.ByteArray:
		if p.isString(path) {
			return filter.PrimitiveString, true
		}

		return filter.PrimitiveBinary, true
	case format.FixedLenByteArray:
		if p.isUUID(path) {
			return filter.PrimitiveUUID, true
		}

		return filter.PrimitiveBinary, true
	}

	return 0, false
}

func (p *ParquetGoSource) isString(path string) bool {
	el := p.leaves[path]
	if el == nil {
		return false
	}
	if el.LogicalType != nil && el.LogicalType.UTF8 != nil {
		return true
	}

	return el.ConvertedType != nil && *el.ConvertedType == format.UTF8
}

func (p *ParquetGoSource) isUUID(path string) bool {
	el := p.leaves[path]

	return el != nil && el.LogicalType != nil && el.LogicalType.UUID != nil
}

// collectLeaves walks the flattened schema element list in preorder,
// recording every leaf element under its dotted path. pos is the index
// of the next unvisited element, count the number of children remaining
// at the current level, and the returned position resumes the parent
// level.
func collectLeaves(schema []format.SchemaElement, pos int, prefix string, count int, leaves map[string]*format.SchemaElement) int {
	for range count {
		if pos >= len(schema) {
			return pos
		}

		el := &schema[pos]
		pos++

		name := el.Name
		if prefix != "" {
			name = prefix + "." + name
		}

		if el.NumChildren > 0 {
			pos = collectLeaves(schema, pos, name, int(el.NumChildren), leaves)
		} else {
			leaves[name] = el
		}
	}

	return pos
}
