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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/apache/parquet-filter-go"
	"github.com/google/uuid"
)

// The footer stores min/max values in plain encoding, the same
// little-endian layout the data pages use.

func decodeBool(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, fmt.Errorf("%w: expected at least 1 byte for boolean", ErrInvalidStatistics)
	}

	return data[0] != 0, nil
}

func decodeInt32(data []byte) (int32, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes for int32 value, got %d", ErrInvalidStatistics, len(data))
	}

	return int32(binary.LittleEndian.Uint32(data)), nil
}

func decodeInt64(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes for int64 value, got %d", ErrInvalidStatistics, len(data))
	}

	return int64(binary.LittleEndian.Uint64(data)), nil
}

func decodeFloat32(data []byte) (float32, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes for float value, got %d", ErrInvalidStatistics, len(data))
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

func decodeFloat64(data []byte) (float64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes for double value, got %d", ErrInvalidStatistics, len(data))
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
}

func decodeString(data []byte) (string, error) { return string(data), nil }

func decodeBinary(data []byte) ([]byte, error) { return data, nil }

func decodeUUID(data []byte) (uuid.UUID, error) {
	u, err := uuid.FromBytes(data)
	if err != nil {
		return u, fmt.Errorf("%w: %s", ErrInvalidStatistics, err.Error())
	}

	return u, nil
}

// boundedStats decodes the encoded bounds with dec and builds typed
// column statistics from them, taking the null count into account when
// the writer recorded one.
func boundedStats[T filter.LiteralType](encMin, encMax []byte, dec func([]byte) (T, error), numNulls filter.Optional[int64]) (filter.ColumnStatistics, error) {
	minVal, err := dec(encMin)
	if err != nil {
		return nil, err
	}

	maxVal, err := dec(encMax)
	if err != nil {
		return nil, err
	}

	if !numNulls.Valid {
		return filter.NewColumnStatsNoNullCount(minVal, maxVal), nil
	}

	return filter.NewColumnStats(minVal, maxVal, numNulls.Val), nil
}

func unboundedStats(numNulls filter.Optional[int64]) filter.ColumnStatistics {
	if !numNulls.Valid {
		return filter.EmptyStats()
	}

	return filter.NewColumnStatsNoBounds(numNulls.Val)
}

// rawStats carries the statistics fields of one column chunk as pulled
// out of the footer, before any decoding. ordered is false for chunks
// whose physical type has no usable ordering, int96 among them.
type rawStats struct {
	typ      filter.PrimitiveType
	ordered  bool
	encMin   []byte
	encMax   []byte
	numNulls filter.Optional[int64]
}

func columnStatsFromRaw(raw rawStats) (filter.ColumnStatistics, error) {
	if !raw.ordered {
		// a chunk without a usable ordering still prunes null checks
		// through its null count
		return unboundedStats(raw.numNulls), nil
	}

	return statsForType(raw.typ, raw.encMin, raw.encMax, raw.numNulls)
}

// statsForType builds the column statistics for a single chunk from its
// decoded primitive type, plain-encoded bounds and optional null count.
// Chunks without bounds, encMin or encMax being nil, still contribute
// their null count.
func statsForType(typ filter.PrimitiveType, encMin, encMax []byte, numNulls filter.Optional[int64]) (filter.ColumnStatistics, error) {
	if encMin == nil || encMax == nil {
		return unboundedStats(numNulls), nil
	}

	switch typ {
	case filter.PrimitiveBool:
		return boundedStats(encMin, encMax, decodeBool, numNulls)
	case filter.PrimitiveInt32:
		return boundedStats(encMin, encMax, decodeInt32, numNulls)
	case filter.PrimitiveInt64:
		return boundedStats(encMin, encMax, decodeInt64, numNulls)
	case filter.PrimitiveFloat32:
		return boundedStats(encMin, encMax, decodeFloat32, numNulls)
	case filter.PrimitiveFloat64:
		return boundedStats(encMin, encMax, decodeFloat64, numNulls)
	case filter.PrimitiveString:
		return boundedStats(encMin, encMax, decodeString, numNulls)
	case filter.PrimitiveBinary:
		return boundedStats(encMin, encMax, decodeBinary, numNulls)
	case filter.PrimitiveUUID:
		return boundedStats(encMin, encMax, decodeUUID, numNulls)
	}

	return nil, fmt.Errorf("%w: unsupported primitive type %s", ErrInvalidStatistics, typ)
}
