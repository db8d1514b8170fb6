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
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var docOperations = map[string]Operation{
	"eq":    OpEQ,
	"noteq": OpNEQ,
	"lt":    OpLT,
	"lteq":  OpLTEQ,
	"gt":    OpGT,
	"gteq":  OpGTEQ,
}

var docTypes = map[string]PrimitiveType{
	"bool":    PrimitiveBool,
	"boolean": PrimitiveBool,
	"int":     PrimitiveInt32,
	"int32":   PrimitiveInt32,
	"long":    PrimitiveInt64,
	"int64":   PrimitiveInt64,
	"float":   PrimitiveFloat32,
	"double":  PrimitiveFloat64,
	"string":  PrimitiveString,
	"binary":  PrimitiveBinary,
	"uuid":    PrimitiveUUID,
}

// ParseFilterDocument builds a predicate tree from its YAML description.
// Every node of the document is a mapping with exactly one key naming the
// operation. and and or take a sequence of at least two child nodes, not
// takes a single child node, and the comparison operations take a mapping
// describing the column and the value to compare against:
//
//	and:
//	  - gteq: {column: day, type: int32, value: 20}
//	  - not:
//	      eq: {column: name, type: string, value: bob}
//
// The recognized comparison keys are eq, noteq, lt, lteq, gt and gteq. A
// null value is only valid for eq and noteq, turning them into the null
// checks isnull and notnull. binary values are given base64 encoded,
// uuid values in canonical textual form. User defined predicates are Go
// code and cannot appear in a document.
//
// The returned tree is not normalized, run it through RewriteNot before
// handing it to CanDrop.
func ParseFilterDocument(data []byte) (Predicate, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: invalid filter document: %s",
			ErrInvalidArgument, err.Error())
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty filter document", ErrInvalidArgument)
	}

	return parseDocNode(root.Content[0])
}

func parseDocNode(n *yaml.Node) (Predicate, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("%w: filter node must be a mapping with exactly one operation key (line %d)",
			ErrInvalidArgument, n.Line)
	}

	key, val := n.Content[0].Value, n.Content[1]
	switch key {
	case "and", "or":
		if val.Kind != yaml.SequenceNode || len(val.Content) < 2 {
			return nil, fmt.Errorf("%w: %s requires a sequence of at least two children (line %d)",
				ErrInvalidArgument, key, n.Line)
		}

		children := make([]Predicate, len(val.Content))
		for i, c := range val.Content {
			child, err := parseDocNode(c)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}

		if key == "and" {
			return NewAnd(children[0], children[1], children[2:]...), nil
		}

		return NewOr(children[0], children[1], children[2:]...), nil
	case "not":
		child, err := parseDocNode(val)
		if err != nil {
			return nil, err
		}

		return NewNot(child), nil
	}

	op, ok := docOperations[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown filter operation %q (line %d)",
			ErrInvalidArgument, key, n.Line)
	}

	return parseDocLeaf(op, key, val)
}

func parseDocLeaf(op Operation, key string, val *yaml.Node) (Predicate, error) {
	var spec struct {
		Column string     `yaml:"column"`
		Type   string     `yaml:"type"`
		Value  *yaml.Node `yaml:"value"`
	}
	if err := val.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: invalid %s node: %s", ErrInvalidArgument, key, err.Error())
	}

	if spec.Column == "" {
		return nil, fmt.Errorf("%w: %s node missing a column (line %d)",
			ErrInvalidArgument, key, val.Line)
	}

	typ, ok := docTypes[strings.ToLower(spec.Type)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q for column %s",
			ErrInvalidArgument, spec.Type, spec.Column)
	}

	if spec.Value == nil || spec.Value.Tag == "!!null" {
		switch op {
		case OpEQ:
			return docNullCheck(OpIsNull, typ, spec.Column), nil
		case OpNEQ:
			return docNullCheck(OpNotNull, typ, spec.Column), nil
		}

		return nil, fmt.Errorf("%w: %s requires a non-null value for column %s",
			ErrInvalidArgument, key, spec.Column)
	}

	return docComparison(op, typ, spec.Column, spec.Value)
}

func docNullCheck(op Operation, typ PrimitiveType, column string) Predicate {
	switch typ {
	case PrimitiveBool:
		return UnaryPredicate(op, BoolColumn(column))
	case PrimitiveInt32:
		return UnaryPredicate(op, IntColumn(column))
	case PrimitiveInt64:
		return UnaryPredicate(op, LongColumn(column))
	case PrimitiveFloat32:
		return UnaryPredicate(op, FloatColumn(column))
	case PrimitiveFloat64:
		return UnaryPredicate(op, DoubleColumn(column))
	case PrimitiveString:
		return UnaryPredicate(op, StringColumn(column))
	case PrimitiveBinary:
		return UnaryPredicate(op, BinaryColumn(column))
	default:
		return UnaryPredicate(op, UUIDColumn(column))
	}
}

func docComparison(op Operation, typ PrimitiveType, column string, val *yaml.Node) (Predicate, error) {
	badValue := func(err error) error {
		return fmt.Errorf("%w: invalid %s value for column %s: %s",
			ErrInvalidArgument, typ, column, err.Error())
	}

	switch typ {
	case PrimitiveBool:
		var v bool
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, BoolColumn(column), NewLiteral(v)), nil
	case PrimitiveInt32:
		var v int32
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, IntColumn(column), NewLiteral(v)), nil
	case PrimitiveInt64:
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, LongColumn(column), NewLiteral(v)), nil
	case PrimitiveFloat32:
		var v float32
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, FloatColumn(column), NewLiteral(v)), nil
	case PrimitiveFloat64:
		var v float64
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, DoubleColumn(column), NewLiteral(v)), nil
	case PrimitiveString:
		var v string
		if err := val.Decode(&v); err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, StringColumn(column), NewLiteral(v)), nil
	case PrimitiveBinary:
		if val.Tag == "!!binary" {
			var v []byte
			if err := val.Decode(&v); err != nil {
				return nil, badValue(err)
			}

			return LiteralPredicate(op, BinaryColumn(column), NewLiteral(v)), nil
		}

		var s string
		if err := val.Decode(&s); err != nil {
			return nil, badValue(err)
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, BinaryColumn(column), NewLiteral(raw)), nil
	default:
		var s string
		if err := val.Decode(&s); err != nil {
			return nil, badValue(err)
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, badValue(err)
		}

		return LiteralPredicate(op, UUIDColumn(column), NewLiteral(u)), nil
	}
}
