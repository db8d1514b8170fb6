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

package filter_test

import (
	"testing"

	filter "github.com/apache/parquet-filter-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLiteral(t *testing.T) {
	u := uuid.MustParse("12345678-1234-5678-1234-567812345678")

	tests := []struct {
		lit      filter.Literal
		typ      filter.PrimitiveType
		expected string
	}{
		{filter.NewLiteral(true), filter.PrimitiveBool, "true"},
		{filter.NewLiteral(int32(-7)), filter.PrimitiveInt32, "-7"},
		{filter.NewLiteral(int64(1 << 40)), filter.PrimitiveInt64, "1099511627776"},
		{filter.NewLiteral(float32(1.5)), filter.PrimitiveFloat32, "1.5"},
		{filter.NewLiteral(12.0), filter.PrimitiveFloat64, "12"},
		{filter.NewLiteral("hello"), filter.PrimitiveString, "hello"},
		{filter.NewLiteral([]byte{'a', 'b'}), filter.PrimitiveBinary, "ab"},
		{filter.NewLiteral(u), filter.PrimitiveUUID, "12345678-1234-5678-1234-567812345678"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.lit.Type())
			assert.Equal(t, tt.expected, tt.lit.String())
		})
	}
}

func TestLiteralAny(t *testing.T) {
	assert.Equal(t, int32(9), filter.NewLiteral(int32(9)).Any())
	assert.Equal(t, "hello", filter.NewLiteral("hello").Any())
	assert.Equal(t, []byte("ab"), filter.NewLiteral([]byte("ab")).Any())
}

func TestLiteralEquality(t *testing.T) {
	assert.True(t, filter.NewLiteral(int32(5)).Equals(filter.NewLiteral(int32(5))))
	assert.False(t, filter.NewLiteral(int32(5)).Equals(filter.NewLiteral(int32(6))))

	// literals of different primitive types never compare equal
	assert.False(t, filter.NewLiteral(int32(5)).Equals(filter.NewLiteral(int64(5))))
	assert.False(t, filter.NewLiteral("5").Equals(filter.NewLiteral(int32(5))))
	assert.False(t, filter.NewLiteral([]byte("ab")).Equals(filter.NewLiteral("ab")))

	assert.True(t, filter.NewLiteral([]byte{0x1, 0x2}).Equals(filter.NewLiteral([]byte{0x1, 0x2})))
	assert.False(t, filter.NewLiteral([]byte{0x1, 0x2}).Equals(filter.NewLiteral([]byte{0x1, 0x3})))

	u1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	u2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	assert.True(t, filter.NewLiteral(u1).Equals(filter.NewLiteral(u1)))
	assert.False(t, filter.NewLiteral(u1).Equals(filter.NewLiteral(u2)))
}

func TestLiteralComparators(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		cmp := filter.BoolLiteral(true).Comparator()

		assert.Zero(t, cmp(false, false))
		assert.Zero(t, cmp(true, true))
		assert.Equal(t, -1, cmp(false, true))
		assert.Equal(t, 1, cmp(true, false))
	})

	t.Run("int32", func(t *testing.T) {
		cmp := filter.Int32Literal(0).Comparator()

		assert.Zero(t, cmp(7, 7))
		assert.Equal(t, -1, cmp(-1, 7))
		assert.Equal(t, 1, cmp(8, 7))
	})

	t.Run("float64", func(t *testing.T) {
		cmp := filter.Float64Literal(0).Comparator()

		assert.Zero(t, cmp(1.5, 1.5))
		assert.Equal(t, -1, cmp(1.4, 1.5))
		assert.Equal(t, 1, cmp(1.6, 1.5))
	})

	t.Run("string", func(t *testing.T) {
		cmp := filter.StringLiteral("").Comparator()

		assert.Zero(t, cmp("abc", "abc"))
		assert.Equal(t, -1, cmp("abb", "abc"))
		assert.Equal(t, 1, cmp("abd", "abc"))
		// ordering is bytewise, not length first
		assert.Equal(t, 1, cmp("b", "abc"))
	})

	t.Run("binary", func(t *testing.T) {
		cmp := filter.BinaryLiteral(nil).Comparator()

		assert.Zero(t, cmp([]byte{0x1}, []byte{0x1}))
		assert.Equal(t, -1, cmp([]byte{0x1}, []byte{0x1, 0x0}))
		assert.Equal(t, 1, cmp([]byte{0x2}, []byte{0x1, 0xff}))
	})

	t.Run("uuid", func(t *testing.T) {
		cmp := filter.UUIDLiteral{}.Comparator()
		u1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		u2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")

		assert.Zero(t, cmp(u1, u1))
		assert.Equal(t, -1, cmp(u1, u2))
		assert.Equal(t, 1, cmp(u2, u1))
	})
}

func TestTypedLiteralValue(t *testing.T) {
	lit, ok := filter.NewLiteral(int32(9)).(filter.TypedLiteral[int32])
	require.True(t, ok)
	assert.Equal(t, int32(9), lit.Value())

	_, ok = filter.NewLiteral(int32(9)).(filter.TypedLiteral[int64])
	assert.False(t, ok)
}
