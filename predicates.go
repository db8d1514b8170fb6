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

// IsNull is a convenience wrapper for calling UnaryPredicate(OpIsNull, col).
// It matches rows whose value for the column is null, making it the
// null-aware counterpart of EqualTo.
func IsNull[T LiteralType](col Column[T]) Predicate {
	return UnaryPredicate(OpIsNull, col)
}

// NotNull is a convenience wrapper for calling UnaryPredicate(OpNotNull, col).
// It matches rows holding any non-null value for the column.
func NotNull[T LiteralType](col Column[T]) Predicate {
	return UnaryPredicate(OpNotNull, col)
}

// EqualTo is a convenience wrapper for calling LiteralPredicate(OpEQ, col,
// NewLiteral(v)). Null values never match, use IsNull to query for them.
func EqualTo[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpEQ, col, NewLiteral(v))
}

// NotEqualTo is a convenience wrapper for calling LiteralPredicate(OpNEQ, col,
// NewLiteral(v)). Null values always match, use NotNull to exclude them.
func NotEqualTo[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpNEQ, col, NewLiteral(v))
}

// LessThan is a convenience wrapper for calling LiteralPredicate(OpLT, col,
// NewLiteral(v))
func LessThan[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpLT, col, NewLiteral(v))
}

// LessThanEqual is a convenience wrapper for calling LiteralPredicate(OpLTEQ,
// col, NewLiteral(v))
func LessThanEqual[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpLTEQ, col, NewLiteral(v))
}

// GreaterThan is a convenience wrapper for calling LiteralPredicate(OpGT, col,
// NewLiteral(v))
func GreaterThan[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpGT, col, NewLiteral(v))
}

// GreaterThanEqual is a convenience wrapper for calling LiteralPredicate(OpGTEQ,
// col, NewLiteral(v))
func GreaterThanEqual[T LiteralType](col Column[T], v T) Predicate {
	return LiteralPredicate(OpGTEQ, col, NewLiteral(v))
}
