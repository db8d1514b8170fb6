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
	"fmt"
	"reflect"
)

//go:generate stringer -type=Operation -linecomment

// Operation is an enum used for constants to define what operation a given
// predicate is going to execute.
type Operation int

const (
	// do not change the order of these enum constants.
	// they are grouped for quick validation of operation type by
	// using <= and >= of the first/last operation in a group

	// unary ops
	OpIsNull  Operation = iota // isnull
	OpNotNull                  // notnull
	// literal ops
	OpEQ   // eq
	OpNEQ  // noteq
	OpLT   // lt
	OpLTEQ // lteq
	OpGT   // gt
	OpGTEQ // gteq
	// user defined ops
	OpUserDefined    // udp
	OpInvUserDefined // inverted
	// boolean ops
	OpNot // not
	OpAnd // and
	OpOr  // or
)

// Negate returns the inverse operation for a given op
func (op Operation) Negate() Operation {
	switch op {
	case OpIsNull:
		return OpNotNull
	case OpNotNull:
		return OpIsNull
	case OpEQ:
		return OpNEQ
	case OpNEQ:
		return OpEQ
	case OpLT:
		return OpGTEQ
	case OpLTEQ:
		return OpGT
	case OpGT:
		return OpLTEQ
	case OpGTEQ:
		return OpLT
	case OpUserDefined:
		return OpInvUserDefined
	case OpInvUserDefined:
		return OpUserDefined
	default:
		panic("no negation for operation " + op.String())
	}
}

// Predicate represents a full filter expression tree which can be evaluated
// against row group statistics, such as GreaterThan or an And of two other
// predicates.
type Predicate interface {
	fmt.Stringer
	Op() Operation
	Negate() Predicate
	Equals(Predicate) bool
}

// ColumnPredicate is the type-erased view of a leaf predicate referencing a
// single column. Literal returns nil for the unary null-check operations
// which carry no comparison value.
type ColumnPredicate interface {
	Predicate

	Path() ColumnPath
	ColumnType() PrimitiveType
	Literal() Literal
}

// UserDefinedPredicate is the interface to implement for custom pruning
// logic on a column of type T. CanDrop receives the min/max bounds of a
// row group and reports whether every row in it is guaranteed not to
// match. InverseCanDrop answers the same question for the logical inverse
// of the predicate and is consulted when a not wrapping this predicate
// was rewritten away.
//
// Keep decides whether a single value matches. It is not consulted while
// pruning row groups, only by row-level evaluation.
type UserDefinedPredicate[T LiteralType] interface {
	CanDrop(Bounds[T]) bool
	InverseCanDrop(Bounds[T]) bool
	Keep(T) bool
}

type NotPredicate struct {
	child Predicate
}

// NewNot creates a Predicate representing a "Not" operation on the given
// argument. If the argument is itself a NotPredicate, then the child
// will be returned rather than NotPredicate(NotPredicate(child)).
//
// Will panic if the child is nil
func NewNot(child Predicate) Predicate {
	if child == nil {
		panic(fmt.Errorf("%w: cannot create NotPredicate with nil child",
			ErrInvalidArgument))
	}

	if t, ok := child.(NotPredicate); ok {
		return t.child
	}

	return NotPredicate{child: child}
}

func (n NotPredicate) String() string    { return "not(" + n.child.String() + ")" }
func (NotPredicate) Op() Operation       { return OpNot }
func (n NotPredicate) Negate() Predicate { return n.child }
func (n NotPredicate) Child() Predicate  { return n.child }
func (n NotPredicate) Equals(other Predicate) bool {
	rhs, ok := other.(NotPredicate)
	if !ok {
		return false
	}

	return n.child.Equals(rhs.child)
}

type AndPredicate struct {
	left, right Predicate
}

func newAnd(left, right Predicate) Predicate {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct AndPredicate with nil arguments",
			ErrInvalidArgument))
	}

	return AndPredicate{left: left, right: right}
}

// NewAnd will construct a new AndPredicate, allowing the caller to provide
// potentially more than just two arguments which will be folded to create an
// appropriate expression tree. i.e. NewAnd(a, b, c, d) becomes
// AndPredicate(a, AndPredicate(b, AndPredicate(c, d)))
//
// Will panic if any argument is nil
func NewAnd(left, right Predicate, addl ...Predicate) Predicate {
	if len(addl) > 0 {
		right = NewAnd(right, addl[0], addl[1:]...)
	}

	return newAnd(left, right)
}

func (a AndPredicate) String() string {
	return "and(" + a.left.String() + ", " + a.right.String() + ")"
}

func (AndPredicate) Op() Operation { return OpAnd }

func (a AndPredicate) Left() Predicate  { return a.left }
func (a AndPredicate) Right() Predicate { return a.right }

func (a AndPredicate) Equals(other Predicate) bool {
	rhs, ok := other.(AndPredicate)
	if !ok {
		return false
	}

	return (a.left.Equals(rhs.left) && a.right.Equals(rhs.right)) ||
		(a.left.Equals(rhs.right) && a.right.Equals(rhs.left))
}

func (a AndPredicate) Negate() Predicate {
	return NewOr(a.left.Negate(), a.right.Negate())
}

type OrPredicate struct {
	left, right Predicate
}

func newOr(left, right Predicate) Predicate {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct OrPredicate with nil arguments",
			ErrInvalidArgument))
	}

	return OrPredicate{left: left, right: right}
}

// NewOr will construct a new OrPredicate, allowing the caller to provide
// potentially more than just two arguments which will be folded to create an
// appropriate expression tree. i.e. NewOr(a, b, c, d) becomes
// OrPredicate(a, OrPredicate(b, OrPredicate(c, d)))
//
// Will panic if any argument is nil
func NewOr(left, right Predicate, addl ...Predicate) Predicate {
	if len(addl) > 0 {
		right = NewOr(right, addl[0], addl[1:]...)
	}

	return newOr(left, right)
}

func (o OrPredicate) String() string {
	return "or(" + o.left.String() + ", " + o.right.String() + ")"
}

func (OrPredicate) Op() Operation { return OpOr }

func (o OrPredicate) Left() Predicate  { return o.left }
func (o OrPredicate) Right() Predicate { return o.right }

func (o OrPredicate) Equals(other Predicate) bool {
	rhs, ok := other.(OrPredicate)
	if !ok {
		return false
	}

	return (o.left.Equals(rhs.left) && o.right.Equals(rhs.right)) ||
		(o.left.Equals(rhs.right) && o.right.Equals(rhs.left))
}

func (o OrPredicate) Negate() Predicate {
	return NewAnd(o.left.Negate(), o.right.Negate())
}

// UnaryPredicate creates and returns a predicate for the provided unary
// null-check operation on the given column. Will panic if op is not a
// unary operation.
func UnaryPredicate[T LiteralType](op Operation, col Column[T]) Predicate {
	if op < OpIsNull || op > OpNotNull {
		panic(fmt.Errorf("%w: invalid operation for unary predicate: %s",
			ErrInvalidArgument, op))
	}

	return &unaryPredicate[T]{op: op, col: col}
}

type unaryPredicate[T LiteralType] struct {
	op  Operation
	col Column[T]
}

func (up *unaryPredicate[T]) String() string {
	return fmt.Sprintf("%s(%s)", up.op, up.col)
}

func (up *unaryPredicate[T]) Equals(other Predicate) bool {
	rhs, ok := other.(*unaryPredicate[T])
	if !ok {
		return false
	}

	return up.op == rhs.op && up.col.Path().Equal(rhs.col.Path())
}

func (up *unaryPredicate[T]) Op() Operation { return up.op }
func (up *unaryPredicate[T]) Negate() Predicate {
	return &unaryPredicate[T]{op: up.op.Negate(), col: up.col}
}

func (up *unaryPredicate[T]) Path() ColumnPath          { return up.col.Path() }
func (up *unaryPredicate[T]) ColumnType() PrimitiveType { return up.col.Type() }
func (up *unaryPredicate[T]) Literal() Literal          { return nil }

// LiteralPredicate constructs a predicate for an operation that compares a
// column against a single literal value, such as LessThan.
//
// Panics if the operation provided is not a valid literal operation or if
// the literal is nil or does not match the column type.
func LiteralPredicate[T LiteralType](op Operation, col Column[T], lit Literal) Predicate {
	switch {
	case op < OpEQ || op > OpGTEQ:
		panic(fmt.Errorf("%w: invalid operation for LiteralPredicate: %s",
			ErrInvalidArgument, op))
	case lit == nil:
		panic(fmt.Errorf("%w: cannot create literal predicate with nil literal",
			ErrInvalidArgument))
	}

	typed, ok := lit.(TypedLiteral[T])
	if !ok {
		panic(fmt.Errorf("%w: literal type %s does not match column %s of type %s",
			ErrType, lit.Type(), col, col.Type()))
	}

	return &literalPredicate[T]{op: op, col: col, lit: typed}
}

type literalPredicate[T LiteralType] struct {
	op  Operation
	col Column[T]
	lit TypedLiteral[T]
}

func (lp *literalPredicate[T]) String() string {
	return fmt.Sprintf("%s(%s, %s)", lp.op, lp.col, lp.lit)
}

func (lp *literalPredicate[T]) Equals(other Predicate) bool {
	rhs, ok := other.(*literalPredicate[T])
	if !ok {
		return false
	}

	return lp.op == rhs.op && lp.col.Path().Equal(rhs.col.Path()) &&
		lp.lit.Equals(rhs.lit)
}

func (lp *literalPredicate[T]) Op() Operation { return lp.op }
func (lp *literalPredicate[T]) Negate() Predicate {
	return &literalPredicate[T]{op: lp.op.Negate(), col: lp.col, lit: lp.lit}
}

func (lp *literalPredicate[T]) Path() ColumnPath          { return lp.col.Path() }
func (lp *literalPredicate[T]) ColumnType() PrimitiveType { return lp.col.Type() }
func (lp *literalPredicate[T]) Literal() Literal          { return lp.lit }

// udpPredicate is the type-erased view of a user defined predicate node
// used by the evaluator. dropWithBounds extracts the typed bounds from the
// statistics and invokes the user's CanDrop or InverseCanDrop.
type udpPredicate interface {
	Predicate

	Path() ColumnPath
	dropWithBounds(ColumnStatistics) bool
}

// UserDefined constructs a predicate node wrapping custom pruning logic
// for the given column.
//
// Will panic if udp is nil
func UserDefined[T LiteralType](col Column[T], udp UserDefinedPredicate[T]) Predicate {
	if udp == nil {
		panic(fmt.Errorf("%w: cannot create user defined predicate with nil logic",
			ErrInvalidArgument))
	}

	return &userDefinedPredicate[T]{col: col, udp: udp}
}

type userDefinedPredicate[T LiteralType] struct {
	col      Column[T]
	udp      UserDefinedPredicate[T]
	inverted bool
}

func (ud *userDefinedPredicate[T]) String() string {
	s := fmt.Sprintf("udp(%s, %T)", ud.col, ud.udp)
	if ud.inverted {
		return "inverted(" + s + ")"
	}

	return s
}

func (ud *userDefinedPredicate[T]) Op() Operation {
	if ud.inverted {
		return OpInvUserDefined
	}

	return OpUserDefined
}

func (ud *userDefinedPredicate[T]) Negate() Predicate {
	return &userDefinedPredicate[T]{col: ud.col, udp: ud.udp, inverted: !ud.inverted}
}

func (ud *userDefinedPredicate[T]) Equals(other Predicate) bool {
	rhs, ok := other.(*userDefinedPredicate[T])
	if !ok {
		return false
	}

	return ud.inverted == rhs.inverted && ud.col.Path().Equal(rhs.col.Path()) &&
		reflect.DeepEqual(ud.udp, rhs.udp)
}

func (ud *userDefinedPredicate[T]) Path() ColumnPath { return ud.col.Path() }

func (ud *userDefinedPredicate[T]) dropWithBounds(stats ColumnStatistics) bool {
	typed, ok := stats.(boundedStatistics[T])
	if !ok {
		// bounds of a different type than the declared column, nothing
		// can be proven about the row group
		return false
	}

	if ud.inverted {
		return ud.udp.InverseCanDrop(typed.Bounds())
	}

	return ud.udp.CanDrop(typed.Bounds())
}
