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

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/metadata"
	"github.com/apache/arrow-go/v18/parquet/schema"
	"github.com/apache/parquet-filter-go"
)

// ArrowSource reads row group statistics out of parquet file metadata
// as parsed by the arrow-go parquet reader.
type ArrowSource struct {
	meta *metadata.FileMetaData
}

var _ Source = (*ArrowSource)(nil)

// NewArrowSource creates a Source over parsed parquet file metadata,
// typically obtained from file.Reader.MetaData.
func NewArrowSource(meta *metadata.FileMetaData) *ArrowSource {
	return &ArrowSource{meta: meta}
}

func (a *ArrowSource) NumRowGroups() int { return a.meta.NumRowGroups() }

func (a *ArrowSource) RowGroupStats(i int) (*filter.RowGroupStats, error) {
	return FromArrowMetadata(a.meta, i)
}

// FromArrowMetadata extracts the column statistics of the i-th row
// group of the given file metadata. Every leaf column of the group gets
// an entry, columns whose chunks carry no statistics are represented by
// empty stats so that they are never mistaken for columns absent from
// the schema.
func FromArrowMetadata(meta *metadata.FileMetaData, i int) (*filter.RowGroupStats, error) {
	rg := meta.RowGroup(i)
	columns := make(map[string]filter.ColumnStatistics, rg.NumColumns())
	for c := range rg.NumColumns() {
		chunk, err := rg.ColumnChunk(c)
		if err != nil {
			return nil, err
		}

		path := chunk.PathInSchema().String()
		stats, err := arrowColumnStats(chunk)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", path, err)
		}

		columns[path] = stats
	}

	return filter.NewRowGroupStats(rg.NumRows(), columns), nil
}

func arrowColumnStats(chunk *metadata.ColumnChunkMetaData) (filter.ColumnStatistics, error) {
	raw, err := arrowRawStats(chunk)
	if err != nil {
		return nil, err
	}

	return columnStatsFromRaw(raw)
}

func arrowRawStats(chunk *metadata.ColumnChunkMetaData) (rawStats, error) {
	var raw rawStats

	set, err := chunk.StatsSet()
	if err != nil {
		return raw, err
	}
	if !set {
		return raw, nil
	}

	stats, err := chunk.Statistics()
	if err != nil {
		return raw, err
	}
	if stats == nil {
		return raw, nil
	}

	if stats.HasNullCount() {
		raw.numNulls = filter.Optional[int64]{Val: stats.NullCount(), Valid: true}
	}

	raw.typ, raw.ordered = arrowPrimitiveType(stats.Type(), stats.Descr().SchemaNode().LogicalType())
	if stats.HasMinMax() {
		raw.encMin, raw.encMax = stats.EncodeMin(), stats.EncodeMax()
	}

	return raw, nil
}

// arrowPrimitiveType maps the physical and logical type of a column to
// the value domain its statistics compare in. ok is false for physical
// types without a defined ordering.
func arrowPrimitiveType(physical parquet.Type, logical schema.LogicalType) (filter.PrimitiveType, bool) {
	switch physical {
	case parquet.Types.Boolean:
		return filter.PrimitiveBool, true
	case parquet.Types.Int32:
		return filter.PrimitiveInt32, true
	case parquet.Types.Int64:
		return filter.PrimitiveInt64, true
	case parquet.Types.Float:
		return filter.PrimitiveFloat32, true
	case parquet.Types.Double:
		return filter.PrimitiveFloat64, true
	case parquet.Types.ByteArray:
		if _, ok := logical.(schema.StringLogicalType); ok {
			return filter.PrimitiveString, true
		}

		return filter.PrimitiveBinary, true
	case parquet.Types.FixedLenByteArray:
		if _, ok := logical.(schema.UUIDLogicalType); ok {
			return filter.PrimitiveUUID, true
		}

		return filter.PrimitiveBinary, true
	}

	return 0, false
}
