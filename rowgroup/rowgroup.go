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

// Package rowgroup prunes the row groups of parquet files against a
// predicate using nothing but the statistics in the file footer. It
// extracts per column min/max bounds and null counts from the metadata
// of either supported parquet reader and reports which row groups may
// still contain matching rows.
package rowgroup

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/apache/parquet-filter-go"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidStatistics is wrapped by errors resulting from statistics
// values in the footer that cannot be decoded for their declared type.
var ErrInvalidStatistics = errors.New("invalid statistics serialization")

// Source yields the statistics of the row groups of a single parquet
// file. Implementations are cheap views over footer metadata that has
// already been read, none of the methods perform I/O.
type Source interface {
	NumRowGroups() int
	RowGroupStats(i int) (*filter.RowGroupStats, error)
}

// Filter evaluates pred against every row group of src and returns the
// indices, in ascending order, of the row groups that may contain
// matching rows. The predicate is normalized with RewriteNot before
// evaluation, so it may contain not nodes.
func Filter(ctx context.Context, pred filter.Predicate, src Source) ([]int, error) {
	rewritten := filter.RewriteNot(pred)

	keep := make([]int, 0, src.NumRowGroups())
	for i := range src.NumRowGroups() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		drop, err := dropRowGroup(rewritten, src, i)
		if err != nil {
			return nil, err
		}

		if !drop {
			keep = append(keep, i)
		}
	}

	return keep, nil
}

// FilterParallel is Filter evaluating row groups concurrently on up to
// maxWorkers goroutines. If maxWorkers is zero or negative the limit
// defaults to runtime.GOMAXPROCS(0). The result is identical to the
// one Filter returns.
func FilterParallel(ctx context.Context, pred filter.Predicate, src Source, maxWorkers int) ([]int, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	rewritten := filter.RewriteNot(pred)
	n := src.NumRowGroups()

	dropped := make([]bool, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(maxWorkers, n))

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			drop, err := dropRowGroup(rewritten, src, i)
			if err != nil {
				return err
			}

			dropped[i] = drop

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	keep := make([]int, 0, n)
	for i, drop := range dropped {
		if !drop {
			keep = append(keep, i)
		}
	}

	return keep, nil
}

func dropRowGroup(pred filter.Predicate, src Source, i int) (bool, error) {
	rg, err := src.RowGroupStats(i)
	if err != nil {
		return false, fmt.Errorf("row group %d: %w", i, err)
	}

	drop, err := filter.CanDrop(pred, rg)
	if err != nil {
		return false, fmt.Errorf("row group %d: %w", i, err)
	}

	return drop, nil
}
