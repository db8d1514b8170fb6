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

func TestUnaryPredicate(t *testing.T) {
	assert.PanicsWithError(t, "invalid argument: invalid operation for unary predicate: lt", func() {
		filter.UnaryPredicate(filter.OpLT, filter.IntColumn("a"))
	})

	t.Run("negate", func(t *testing.T) {
		n := filter.IsNull(filter.IntColumn("a")).Negate()
		exp := filter.NotNull(filter.IntColumn("a"))

		assert.Equal(t, exp, n)
		assert.True(t, exp.Equals(n))
		assert.True(t, n.Equals(exp))
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, filter.IsNull(filter.IntColumn("a")).Equals(filter.IsNull(filter.IntColumn("a"))))
		assert.False(t, filter.IsNull(filter.IntColumn("a")).Equals(filter.IsNull(filter.IntColumn("b"))))
		assert.False(t, filter.IsNull(filter.IntColumn("a")).Equals(filter.NotNull(filter.IntColumn("a"))))
		// same path but different declared type
		assert.False(t, filter.IsNull(filter.IntColumn("a")).Equals(filter.IsNull(filter.LongColumn("a"))))
	})
}

func TestLiteralPredicateErrors(t *testing.T) {
	assert.PanicsWithError(t, "invalid argument: invalid operation for LiteralPredicate: isnull", func() {
		filter.LiteralPredicate(filter.OpIsNull, filter.IntColumn("a"), filter.NewLiteral(int32(5)))
	})

	assert.PanicsWithError(t, "invalid argument: cannot create literal predicate with nil literal", func() {
		filter.LiteralPredicate(filter.OpEQ, filter.IntColumn("a"), nil)
	})

	assert.PanicsWithError(t, "invalid type: literal type string does not match column a of type int32", func() {
		filter.LiteralPredicate(filter.OpEQ, filter.IntColumn("a"), filter.NewLiteral("five"))
	})
}

func TestNegations(t *testing.T) {
	tests := []struct {
		name     string
		ex1, ex2 filter.Predicate
	}{
		{"equal-not", filter.EqualTo(filter.StringColumn("foo"), "hello"), filter.NotEqualTo(filter.StringColumn("foo"), "hello")},
		{"greater-equal-less", filter.GreaterThanEqual(filter.StringColumn("foo"), "hello"), filter.LessThan(filter.StringColumn("foo"), "hello")},
		{"greater-less-equal", filter.GreaterThan(filter.StringColumn("foo"), "hello"), filter.LessThanEqual(filter.StringColumn("foo"), "hello")},
		{"isnull-notnull", filter.IsNull(filter.StringColumn("foo")), filter.NotNull(filter.StringColumn("foo"))},
		{
			"udp-inverted",
			filter.UserDefined(filter.IntColumn("foo"), SevensAndEightsUdp{}),
			filter.UserDefined(filter.IntColumn("foo"), SevensAndEightsUdp{}).Negate(),
		},
		{
			"demorgan",
			filter.NewAnd(filter.EqualTo(filter.IntColumn("a"), int32(1)), filter.IsNull(filter.IntColumn("b"))),
			filter.NewOr(filter.NotEqualTo(filter.IntColumn("a"), int32(1)), filter.NotNull(filter.IntColumn("b"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.ex1.Equals(tt.ex2))
			assert.False(t, tt.ex2.Equals(tt.ex1))
			assert.True(t, tt.ex1.Negate().Equals(tt.ex2))
			assert.True(t, tt.ex2.Negate().Equals(tt.ex1))
		})
	}
}

func TestPredicateEquals(t *testing.T) {
	eq9 := filter.EqualTo(filter.IntColumn("int.column"), int32(9))
	assert.True(t, eq9.Equals(filter.EqualTo(filter.IntColumn("int.column"), int32(9))))
	assert.False(t, eq9.Equals(filter.EqualTo(filter.IntColumn("int.column"), int32(10))))
	assert.False(t, eq9.Equals(filter.EqualTo(filter.IntColumn("other"), int32(9))))
	assert.False(t, eq9.Equals(filter.EqualTo(filter.LongColumn("int.column"), int64(9))))

	t.Run("commutative", func(t *testing.T) {
		a := filter.EqualTo(filter.IntColumn("a"), int32(1))
		b := filter.IsNull(filter.DoubleColumn("b"))

		assert.True(t, filter.NewAnd(a, b).Equals(filter.NewAnd(b, a)))
		assert.True(t, filter.NewOr(a, b).Equals(filter.NewOr(b, a)))
		assert.False(t, filter.NewAnd(a, b).Equals(filter.NewOr(a, b)))
	})
}

func TestPredicatePanics(t *testing.T) {
	a := filter.EqualTo(filter.IntColumn("a"), int32(1))

	assert.PanicsWithError(t, "invalid argument: cannot construct AndPredicate with nil arguments",
		func() { filter.NewAnd(nil, a) })
	assert.PanicsWithError(t, "invalid argument: cannot construct AndPredicate with nil arguments",
		func() { filter.NewAnd(a, nil) })
	assert.PanicsWithError(t, "invalid argument: cannot construct AndPredicate with nil arguments",
		func() { filter.NewAnd(a, a, nil) })

	assert.PanicsWithError(t, "invalid argument: cannot construct OrPredicate with nil arguments",
		func() { filter.NewOr(nil, a) })
	assert.PanicsWithError(t, "invalid argument: cannot construct OrPredicate with nil arguments",
		func() { filter.NewOr(a, nil) })
	assert.PanicsWithError(t, "invalid argument: cannot construct OrPredicate with nil arguments",
		func() { filter.NewOr(a, a, nil) })

	assert.PanicsWithError(t, "invalid argument: cannot create NotPredicate with nil child",
		func() { filter.NewNot(nil) })

	assert.PanicsWithError(t, "invalid argument: cannot create user defined predicate with nil logic",
		func() { filter.UserDefined[int32](filter.IntColumn("a"), nil) })
}

func TestNotCollapse(t *testing.T) {
	a := filter.EqualTo(filter.IntColumn("a"), int32(1))

	assert.True(t, filter.NewNot(filter.NewNot(a)).Equals(a))
	assert.True(t, filter.NewNot(a).Negate().Equals(a))
}

func TestExprFolding(t *testing.T) {
	a := filter.EqualTo(filter.IntColumn("a"), int32(1))
	b := filter.EqualTo(filter.IntColumn("b"), int32(2))
	c := filter.EqualTo(filter.IntColumn("c"), int32(3))

	assert.True(t, filter.NewAnd(a, b, c).Equals(
		filter.NewAnd(a, filter.NewAnd(b, c))))
	assert.True(t, filter.NewOr(a, b, c).Equals(
		filter.NewOr(a, filter.NewOr(b, c))))
}

func TestToString(t *testing.T) {
	u := uuid.MustParse("12345678-1234-5678-1234-567812345678")

	tests := []struct {
		e        filter.Predicate
		expected string
	}{
		{filter.EqualTo(filter.IntColumn("int.column"), int32(9)), "eq(int.column, 9)"},
		{filter.NotEqualTo(filter.LongColumn("long.column"), int64(17)), "noteq(long.column, 17)"},
		{filter.LessThan(filter.DoubleColumn("double.column"), 12.0), "lt(double.column, 12)"},
		{filter.LessThanEqual(filter.FloatColumn("float.column"), float32(1.5)), "lteq(float.column, 1.5)"},
		{filter.GreaterThan(filter.StringColumn("name"), "bob"), "gt(name, bob)"},
		{filter.GreaterThanEqual(filter.BinaryColumn("raw"), []byte("ab")), "gteq(raw, ab)"},
		{filter.EqualTo(filter.BoolColumn("flag"), true), "eq(flag, true)"},
		{filter.EqualTo(filter.UUIDColumn("id"), u), "eq(id, 12345678-1234-5678-1234-567812345678)"},
		{filter.IsNull(filter.IntColumn("int.column")), "isnull(int.column)"},
		{filter.NotNull(filter.IntColumn("int.column")), "notnull(int.column)"},
		{
			filter.NewAnd(
				filter.EqualTo(filter.IntColumn("a"), int32(1)),
				filter.IsNull(filter.IntColumn("b"))),
			"and(eq(a, 1), isnull(b))",
		},
		{
			filter.NewOr(
				filter.EqualTo(filter.IntColumn("a"), int32(1)),
				filter.IsNull(filter.IntColumn("b"))),
			"or(eq(a, 1), isnull(b))",
		},
		{
			filter.NewNot(filter.EqualTo(filter.DoubleColumn("double.column"), 12.0)),
			"not(eq(double.column, 12))",
		},
		{
			filter.UserDefined(filter.IntColumn("int.column"), SevensAndEightsUdp{}),
			"udp(int.column, filter_test.SevensAndEightsUdp)",
		},
		{
			filter.UserDefined(filter.IntColumn("int.column"), SevensAndEightsUdp{}).Negate(),
			"inverted(udp(int.column, filter_test.SevensAndEightsUdp))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.e.String())
		})
	}
}

func TestOperationNegation(t *testing.T) {
	pairs := [][2]filter.Operation{
		{filter.OpIsNull, filter.OpNotNull},
		{filter.OpEQ, filter.OpNEQ},
		{filter.OpLT, filter.OpGTEQ},
		{filter.OpLTEQ, filter.OpGT},
		{filter.OpUserDefined, filter.OpInvUserDefined},
	}

	for _, p := range pairs {
		assert.Equal(t, p[1], p[0].Negate())
		assert.Equal(t, p[0], p[1].Negate())
	}

	assert.PanicsWithValue(t, "no negation for operation not", func() {
		filter.OpNot.Negate()
	})
}

func TestOperationString(t *testing.T) {
	require.Equal(t, "eq", filter.OpEQ.String())
	require.Equal(t, "noteq", filter.OpNEQ.String())
	require.Equal(t, "lt", filter.OpLT.String())
	require.Equal(t, "lteq", filter.OpLTEQ.String())
	require.Equal(t, "gt", filter.OpGT.String())
	require.Equal(t, "gteq", filter.OpGTEQ.String())
	require.Equal(t, "isnull", filter.OpIsNull.String())
	require.Equal(t, "notnull", filter.OpNotNull.String())
	require.Equal(t, "udp", filter.OpUserDefined.String())
	require.Equal(t, "inverted", filter.OpInvUserDefined.String())
	require.Equal(t, "not", filter.OpNot.String())
	require.Equal(t, "and", filter.OpAnd.String())
	require.Equal(t, "or", filter.OpOr.String())
	require.Equal(t, "Operation(25)", filter.Operation(25).String())
}
