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
	"bytes"
	"os"
	"testing"

	"github.com/apache/parquet-filter-go/rowgroup"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func summaryInfos() []*rowgroup.RowGroupInfo {
	return []*rowgroup.RowGroupInfo{
		{Index: 0, NumRows: 1000, TotalSize: 65536, Columns: make([]rowgroup.ChunkStats, 3)},
		{Index: 1, NumRows: 250, TotalSize: 8192, Columns: make([]rowgroup.ChunkStats, 3)},
	}
}

func statsInfos() []*rowgroup.RowGroupInfo {
	return []*rowgroup.RowGroupInfo{
		{
			Index:     0,
			NumRows:   100,
			TotalSize: 4096,
			Columns: []rowgroup.ChunkStats{
				{Path: "id", Type: "INT32", Min: "10", Max: "100", NullCount: ptr(int64(0))},
				{Path: "ts", Type: "INT96", NullCount: ptr(int64(7))},
				{Path: "payload", Type: "BYTE_ARRAY"},
			},
		},
	}
}

func Test_textOutput_RowGroups(t *testing.T) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()
	buf.Reset()

	textOutput{}.RowGroups(summaryInfos())

	expected := `Row group | Rows | Bytes | Columns
----------------------------------
0         | 1000 | 65536 | 3      
1         | 250  | 8192  | 3      

`
	assert.Equal(t, expected, buf.String())
}

func Test_textOutput_Stats(t *testing.T) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()
	buf.Reset()

	textOutput{}.Stats(statsInfos())

	expected := `Row group 0 (100 rows)
Column  | Type       | Min | Max | Nulls
----------------------------------------
id      | INT32      | 10  | 100 | 0    
ts      | INT96      | -   | -   | 7    
payload | BYTE_ARRAY | -   | -   | -    

`
	assert.Equal(t, expected, buf.String())
}

func Test_textOutput_Pruned(t *testing.T) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()
	buf.Reset()

	textOutput{}.Pruned(pruneResult{
		Predicate: "id < 10",
		Total:     3,
		Kept:      []int{0, 2},
		Dropped:   []int{1},
	})

	expected := `Predicate: id < 10
Row group | Status
------------------
0         | keep  
1         | drop  
2         | keep  

Kept 2 of 3 row groups
`
	assert.Equal(t, expected, buf.String())
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	// redirect os.Stdout to test the output of the function
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String()
}

func Test_jsonOutput_RowGroups(t *testing.T) {
	out := captureStdout(t, func() {
		jsonOutput{}.RowGroups(summaryInfos())
	})

	assert.JSONEq(t, `{"row-groups": [
		{"index": 0, "num-rows": 1000, "total-byte-size": 65536, "num-columns": 3},
		{"index": 1, "num-rows": 250, "total-byte-size": 8192, "num-columns": 3}
	]}`, out)
}

func Test_jsonOutput_Stats(t *testing.T) {
	out := captureStdout(t, func() {
		jsonOutput{}.Stats(statsInfos())
	})

	assert.JSONEq(t, `{"row-groups": [
		{"index": 0, "num-rows": 100, "total-byte-size": 4096, "columns": [
			{"path": "id", "type": "INT32", "min": "10", "max": "100", "null-count": 0},
			{"path": "ts", "type": "INT96", "null-count": 7},
			{"path": "payload", "type": "BYTE_ARRAY"}
		]}
	]}`, out)
}

func Test_jsonOutput_Pruned(t *testing.T) {
	out := captureStdout(t, func() {
		jsonOutput{}.Pruned(pruneResult{
			Predicate: "id < 10",
			Total:     3,
			Kept:      []int{0, 2},
			Dropped:   []int{1},
		})
	})

	assert.JSONEq(t, `{"predicate": "id < 10", "total": 3, "kept": [0, 2], "dropped": [1]}`, out)
}

func Test_jsonOutput_Error(t *testing.T) {
	out := captureStdout(t, func() {
		jsonOutput{}.Error(assert.AnError)
	})

	assert.JSONEq(t, `{"error": "assert.AnError general error for testing"}`, out)
}
