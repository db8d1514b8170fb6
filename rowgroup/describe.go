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
)

// ChunkStats is the displayable summary of one column chunk. Min and
// Max are rendered values, empty when the chunk carries no bounds or
// its type has no usable ordering, NullCount is nil when the writer
// did not record one.
type ChunkStats struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Min       string `json:"min,omitempty"`
	Max       string `json:"max,omitempty"`
	NullCount *int64 `json:"null-count,omitempty"`
}

// RowGroupInfo is the displayable summary of one row group.
type RowGroupInfo struct {
	Index     int          `json:"index"`
	NumRows   int64        `json:"num-rows"`
	TotalSize int64        `json:"total-byte-size"`
	Columns   []ChunkStats `json:"columns"`
}

// Describe summarizes the i-th row group for display, rendering the
// recorded bounds of every column chunk.
func (a *ArrowSource) Describe(i int) (*RowGroupInfo, error) {
	rg := a.meta.RowGroup(i)
	info := &RowGroupInfo{
		Index:     i,
		NumRows:   rg.NumRows(),
		TotalSize: rg.TotalByteSize(),
		Columns:   make([]ChunkStats, 0, rg.NumColumns()),
	}

	for c := range rg.NumColumns() {
		chunk, err := rg.ColumnChunk(c)
		if err != nil {
			return nil, err
		}

		cs := ChunkStats{Path: chunk.PathInSchema().String(), Type: chunk.Type().String()}
		raw, err := arrowRawStats(chunk)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", cs.Path, err)
		}
		if err := raw.render(&cs); err != nil {
			return nil, fmt.Errorf("column %s: %w", cs.Path, err)
		}

		info.Columns = append(info.Columns, cs)
	}

	return info, nil
}

// Describe summarizes the i-th row group for display, rendering the
// recorded bounds of every column chunk.
func (p *ParquetGoSource) Describe(i int) (*RowGroupInfo, error) {
	rg := &p.meta.RowGroups[i]
	info := &RowGroupInfo{
		Index:     i,
		NumRows:   rg.NumRows,
		TotalSize: rg.TotalByteSize,
		Columns:   make([]ChunkStats, 0, len(rg.Columns)),
	}

	for c := range rg.Columns {
		col := &rg.Columns[c].MetaData
		path := strings.Join(col.PathInSchema, ".")

		cs := ChunkStats{Path: path, Type: col.Type.String()}
		if err := p.rawColumnStats(col, path).render(&cs); err != nil {
			return nil, fmt.Errorf("column %s: %w", path, err)
		}

		info.Columns = append(info.Columns, cs)
	}

	return info, nil
}

func (r rawStats) render(cs *ChunkStats) error {
	if r.numNulls.Valid {
		nulls := r.numNulls.Val
		cs.NullCount = &nulls
	}

	if !r.ordered {
		return nil
	}

	var err error
	if r.encMin != nil {
		if cs.Min, err = renderValue(r.typ, r.encMin); err != nil {
			return err
		}
	}
	if r.encMax != nil {
		if cs.Max, err = renderValue(r.typ, r.encMax); err != nil {
			return err
		}
	}

	return nil
}

func renderValue(typ filter.PrimitiveType, data []byte) (string, error) {
	switch typ {
	case filter.PrimitiveBool:
		return renderDecoded(decodeBool, data)
	case filter.PrimitiveInt32:
		return renderDecoded(decodeInt32, data)
	case filter.PrimitiveInt64:
		return renderDecoded(decodeInt64, data)
	case filter.PrimitiveFloat32:
		return renderDecoded(decodeFloat32, data)
	case filter.PrimitiveFloat64:
		return renderDecoded(decodeFloat64, data)
	case filter.PrimitiveString:
		return decodeString(data)
	case filter.PrimitiveBinary:
		return fmt.Sprintf("%q", data), nil
	case filter.PrimitiveUUID:
		return renderDecoded(decodeUUID, data)
	}

	return "", fmt.Errorf("%w: unsupported primitive type %s", ErrInvalidStatistics, typ)
}

func renderDecoded[T filter.LiteralType](dec func([]byte) (T, error), data []byte) (string, error) {
	val, err := dec(data)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(val), nil
}
