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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/parquet-filter-go"
	"github.com/apache/parquet-filter-go/io"
	"github.com/apache/parquet-filter-go/rowgroup"
	"github.com/parquet-go/parquet-go"
)

// metaSource is a statistics source that can additionally render the
// footer metadata of its row groups for display.
type metaSource interface {
	rowgroup.Source

	Describe(i int) (*rowgroup.RowGroupInfo, error)
}

// openSource opens the parquet file at location through the storage
// backend its scheme selects and reads the footer with the requested
// reader. The returned closer releases the open file.
func openSource(ctx context.Context, backend string, props filter.Properties, location string) (metaSource, func() error, error) {
	fsys, err := io.LoadFS(ctx, props, location)
	if err != nil {
		return nil, nil, err
	}

	f, err := fsys.Open(location)
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(backend) {
	case "arrow":
		rdr, err := file.NewParquetReader(f)
		if err != nil {
			f.Close()

			return nil, nil, err
		}

		// closing the reader closes the underlying file as well
		return rowgroup.NewArrowSource(rdr.MetaData()), rdr.Close, nil
	case "parquet-go":
		info, err := f.Stat()
		if err != nil {
			f.Close()

			return nil, nil, err
		}

		pf, err := parquet.OpenFile(f, info.Size(),
			parquet.SkipPageIndex(true), parquet.SkipBloomFilters(true))
		if err != nil {
			f.Close()

			return nil, nil, err
		}

		return rowgroup.NewParquetGoSource(pf.Metadata()), f.Close, nil
	default:
		f.Close()

		return nil, nil, fmt.Errorf("unrecognized backend type: %s", backend)
	}
}

func describeAll(src metaSource) ([]*rowgroup.RowGroupInfo, error) {
	infos := make([]*rowgroup.RowGroupInfo, src.NumRowGroups())
	for i := range infos {
		info, err := src.Describe(i)
		if err != nil {
			return nil, err
		}

		infos[i] = info
	}

	return infos, nil
}

func newPruneResult(pred filter.Predicate, total int, kept []int) pruneResult {
	res := pruneResult{
		Predicate: pred.String(),
		Total:     total,
		Kept:      kept,
		Dropped:   make([]int, 0, total-len(kept)),
	}

	next := 0
	for i := range total {
		if next < len(kept) && kept[next] == i {
			next++

			continue
		}

		res.Dropped = append(res.Dropped, i)
	}

	return res
}

func parseProperties(propsStr string) (filter.Properties, error) {
	props := filter.Properties{}
	if propsStr == "" {
		return props, nil
	}

	for _, pair := range strings.Split(propsStr, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid property pair: %s (expected key=value)", pair)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "" {
			return nil, fmt.Errorf("property key cannot be empty in: %s", pair)
		}

		props[key] = value
	}

	return props, nil
}
