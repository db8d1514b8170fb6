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
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Properties is a generic key/value store used for configuring the
// storage backends.
type Properties map[string]string

// Get returns the value of the key if it exists, otherwise it returns the default value.
func (p Properties) Get(key, defVal string) string {
	if v, ok := p[key]; ok {
		return v
	}

	return defVal
}

func (p Properties) GetBool(key string, defVal bool) bool {
	if v, ok := p[key]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return defVal
		}

		return b
	}

	return defVal
}

func (p Properties) GetInt(key string, defVal int) int {
	if v, ok := p[key]; ok {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return defVal
		}

		return int(i)
	}

	return defVal
}

//go:generate stringer -type=PrimitiveType -linecomment

// PrimitiveType identifies the comparable value domain of a column as
// declared by a predicate. The set mirrors the parquet physical types,
// with the two logical refinements (utf8 strings, uuid fixed[16]) that
// change the Go value a comparison operates on. int96 carries no usable
// ordering and is deliberately absent.
type PrimitiveType int

const (
	PrimitiveBool    PrimitiveType = iota // boolean
	PrimitiveInt32                        // int32
	PrimitiveInt64                        // int64
	PrimitiveFloat32                      // float
	PrimitiveFloat64                      // double
	PrimitiveString                       // string
	PrimitiveBinary                       // binary
	PrimitiveUUID                         // uuid
)

// LiteralType is the closed set of Go value types a column or literal
// may carry.
type LiteralType interface {
	bool | int32 | int64 | float32 | float64 | string | []byte | uuid.UUID
}

func primitiveTypeOf[T LiteralType]() PrimitiveType {
	var z T
	switch any(z).(type) {
	case bool:
		return PrimitiveBool
	case int32:
		return PrimitiveInt32
	case int64:
		return PrimitiveInt64
	case float32:
		return PrimitiveFloat32
	case float64:
		return PrimitiveFloat64
	case string:
		return PrimitiveString
	case []byte:
		return PrimitiveBinary
	default:
		return PrimitiveUUID
	}
}

// ColumnPath is the dotted path to a leaf column within the file schema,
// stored as its individual segments.
type ColumnPath []string

// ColumnPathFromDotString splits a dotted path like "a.b.c" into its
// segments.
func ColumnPathFromDotString(s string) ColumnPath {
	return ColumnPath(strings.Split(s, "."))
}

func (p ColumnPath) String() string { return strings.Join(p, ".") }

func (p ColumnPath) Equal(other ColumnPath) bool {
	return slices.Equal(p, other)
}

// Column is a typed reference to a column: a dotted path plus the
// declared primitive type, carried in the type parameter. It is only a
// lookup key for statistics and holds no data itself.
type Column[T LiteralType] struct {
	path ColumnPath
}

func (c Column[T]) Path() ColumnPath    { return c.path }
func (c Column[T]) Type() PrimitiveType { return primitiveTypeOf[T]() }
func (c Column[T]) String() string      { return c.path.String() }

// BoolColumn references a BOOLEAN column by its dotted path.
func BoolColumn(path string) Column[bool] {
	return Column[bool]{path: ColumnPathFromDotString(path)}
}

// IntColumn references an INT32 column by its dotted path.
func IntColumn(path string) Column[int32] {
	return Column[int32]{path: ColumnPathFromDotString(path)}
}

// LongColumn references an INT64 column by its dotted path.
func LongColumn(path string) Column[int64] {
	return Column[int64]{path: ColumnPathFromDotString(path)}
}

// FloatColumn references a FLOAT column by its dotted path.
func FloatColumn(path string) Column[float32] {
	return Column[float32]{path: ColumnPathFromDotString(path)}
}

// DoubleColumn references a DOUBLE column by its dotted path.
func DoubleColumn(path string) Column[float64] {
	return Column[float64]{path: ColumnPathFromDotString(path)}
}

// StringColumn references a BYTE_ARRAY column annotated as utf8.
func StringColumn(path string) Column[string] {
	return Column[string]{path: ColumnPathFromDotString(path)}
}

// BinaryColumn references a BYTE_ARRAY or FIXED_LEN_BYTE_ARRAY column
// whose values compare as unsigned bytes.
func BinaryColumn(path string) Column[[]byte] {
	return Column[[]byte]{path: ColumnPathFromDotString(path)}
}

// UUIDColumn references a FIXED_LEN_BYTE_ARRAY(16) column annotated as
// uuid.
func UUIDColumn(path string) Column[uuid.UUID] {
	return Column[uuid.UUID]{path: ColumnPathFromDotString(path)}
}
