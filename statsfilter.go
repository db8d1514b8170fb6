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

import "fmt"

const (
	// a row group may only be eliminated when its statistics prove that
	// no row in it can possibly match the predicate
	rowGroupMightMatch, rowGroupCannotMatch = false, true
)

// CanDrop returns true if the column statistics of the given row group
// prove that no row in it can satisfy the predicate, meaning the whole
// row group can be skipped without reading any of its pages. A false
// result proves nothing, rows in the group may still fail the predicate.
//
// The predicate must be in not-normal form, run it through RewriteNot
// before evaluating.
func CanDrop(pred Predicate, rg *RowGroupStats) (res bool, err error) {
	switch {
	case pred == nil:
		return rowGroupMightMatch, fmt.Errorf("%w: cannot evaluate nil predicate",
			ErrInvalidArgument)
	case rg == nil:
		return rowGroupMightMatch, fmt.Errorf("%w: cannot evaluate nil row group statistics",
			ErrInvalidArgument)
	}

	defer func() {
		if r := recover(); r != nil {
			res = rowGroupMightMatch
			switch e := r.(type) {
			case string:
				err = fmt.Errorf("error encountered during pruning: %s", e)
			case error:
				err = e
			}
		}
	}()

	return canDrop(pred, rg), err
}

func canDrop(pred Predicate, rg *RowGroupStats) bool {
	switch p := pred.(type) {
	case AndPredicate:
		// the group can be eliminated when either side alone proves
		// that no row matches
		return canDrop(p.left, rg) || canDrop(p.right, rg)
	case OrPredicate:
		return canDrop(p.left, rg) && canDrop(p.right, rg)
	case NotPredicate:
		panic(fmt.Errorf("%w: %s, did you forget to run the filter through RewriteNot?",
			ErrUnnormalizedPredicate, p))
	case udpPredicate:
		return dropUserDefined(p, rg)
	case ColumnPredicate:
		return dropComparison(p, rg)
	}
	panic(fmt.Errorf("%w: unhandled predicate type %s", ErrNotImplemented, pred))
}

func dropComparison(p ColumnPredicate, rg *RowGroupStats) bool {
	stats := rg.Column(p.Path())
	if stats == nil {
		// the column is missing from this row group, so every row
		// counts as null for it
		switch p.Op() {
		case OpIsNull, OpNEQ:
			return rowGroupMightMatch
		default:
			// eq and the orderings require a non-null value to exist
			return rowGroupCannotMatch
		}
	}

	if stats.IsEmpty() {
		// writers that recorded no statistics at all prove nothing
		return rowGroupMightMatch
	}

	numNulls := stats.NumNulls()
	allNull := numNulls.Valid && numNulls.Val == rg.NumRows()
	lit := p.Literal()

	switch p.Op() {
	case OpIsNull:
		if numNulls.Valid && numNulls.Val == 0 {
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpNotNull:
		if allNull {
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpEQ:
		if allNull {
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMin(lit); ok && c > 0 {
			// min > value
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMax(lit); ok && c < 0 {
			// max < value
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpNEQ:
		// only an all-equal chunk without nulls can be eliminated, an
		// unknown null count keeps the group
		if !numNulls.Valid || numNulls.Val != 0 {
			return rowGroupMightMatch
		}
		minCmp, okMin := stats.CompareMin(lit)
		maxCmp, okMax := stats.CompareMax(lit)
		if okMin && okMax && minCmp == 0 && maxCmp == 0 {
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpLT:
		if allNull {
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMin(lit); ok && c >= 0 {
			// min >= value
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpLTEQ:
		if allNull {
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMin(lit); ok && c > 0 {
			// min > value
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpGT:
		if allNull {
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMax(lit); ok && c <= 0 {
			// max <= value
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	case OpGTEQ:
		if allNull {
			return rowGroupCannotMatch
		}
		if c, ok := stats.CompareMax(lit); ok && c < 0 {
			// max < value
			return rowGroupCannotMatch
		}

		return rowGroupMightMatch
	}
	panic(fmt.Errorf("%w: unhandled comparison %s", ErrNotImplemented, p))
}

func dropUserDefined(p udpPredicate, rg *RowGroupStats) bool {
	stats := rg.Column(p.Path())
	if stats == nil || stats.IsEmpty() || !stats.HasBounds() {
		// no usable bounds to hand to the user logic
		return rowGroupMightMatch
	}

	return p.dropWithBounds(stats)
}
