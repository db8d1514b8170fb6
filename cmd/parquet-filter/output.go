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
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/apache/parquet-filter-go/rowgroup"
	"github.com/pterm/pterm"
)

type Output interface {
	RowGroups([]*rowgroup.RowGroupInfo)
	Stats([]*rowgroup.RowGroupInfo)
	Pruned(pruneResult)
	Error(error)
}

// pruneResult is the outcome of evaluating a filter document against a
// file. Kept and Dropped partition the row group indices in ascending
// order.
type pruneResult struct {
	Predicate string `json:"predicate"`
	Total     int    `json:"total"`
	Kept      []int  `json:"kept"`
	Dropped   []int  `json:"dropped"`
}

type textOutput struct{}

func (textOutput) RowGroups(infos []*rowgroup.RowGroupInfo) {
	data := pterm.TableData{{"Row group", "Rows", "Bytes", "Columns"}}
	for _, info := range infos {
		data = append(data, []string{
			strconv.Itoa(info.Index),
			strconv.FormatInt(info.NumRows, 10),
			strconv.FormatInt(info.TotalSize, 10),
			strconv.Itoa(len(info.Columns)),
		})
	}

	pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderRowSeparator("-").
		WithData(data).Render()
}

func (textOutput) Stats(infos []*rowgroup.RowGroupInfo) {
	for _, info := range infos {
		pterm.Printf("Row group %d (%d rows)\n", info.Index, info.NumRows)

		data := pterm.TableData{{"Column", "Type", "Min", "Max", "Nulls"}}
		for _, cs := range info.Columns {
			data = append(data, []string{
				cs.Path,
				cs.Type,
				orDash(cs.Min),
				orDash(cs.Max),
				nullCountCell(cs.NullCount),
			})
		}

		pterm.DefaultTable.
			WithHasHeader(true).
			WithHeaderRowSeparator("-").
			WithData(data).Render()
	}
}

func (textOutput) Pruned(res pruneResult) {
	pterm.Println("Predicate: " + res.Predicate)

	data := pterm.TableData{{"Row group", "Status"}}
	next := 0
	for i := range res.Total {
		status := "drop"
		if next < len(res.Kept) && res.Kept[next] == i {
			status = "keep"
			next++
		}

		data = append(data, []string{strconv.Itoa(i), status})
	}

	pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderRowSeparator("-").
		WithData(data).Render()

	pterm.Printf("Kept %d of %d row groups\n", len(res.Kept), res.Total)
}

func (textOutput) Error(err error) {
	log.Fatal(err)
}

// orDash stands in for chunk bounds the footer does not carry.
func orDash(val string) string {
	if val == "" {
		return "-"
	}

	return val
}

func nullCountCell(count *int64) string {
	if count == nil {
		return "-"
	}

	return strconv.FormatInt(*count, 10)
}

type jsonOutput struct{}

func (jsonOutput) write(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		log.Fatal(err)
	}
}

// rowGroupSummary is the rowgroups command payload, one entry per row
// group without the per column statistics.
type rowGroupSummary struct {
	Index      int   `json:"index"`
	NumRows    int64 `json:"num-rows"`
	TotalSize  int64 `json:"total-byte-size"`
	NumColumns int   `json:"num-columns"`
}

func (j jsonOutput) RowGroups(infos []*rowgroup.RowGroupInfo) {
	summaries := make([]rowGroupSummary, 0, len(infos))
	for _, info := range infos {
		summaries = append(summaries, rowGroupSummary{
			Index:      info.Index,
			NumRows:    info.NumRows,
			TotalSize:  info.TotalSize,
			NumColumns: len(info.Columns),
		})
	}

	j.write(map[string]any{"row-groups": summaries})
}

func (j jsonOutput) Stats(infos []*rowgroup.RowGroupInfo) {
	j.write(map[string]any{"row-groups": infos})
}

func (j jsonOutput) Pruned(res pruneResult) {
	j.write(res)
}

func (j jsonOutput) Error(err error) {
	j.write(map[string]string{"error": err.Error()})
}
