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

package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFSLocal(t *testing.T) {
	t.Parallel()

	for _, location := range []string{"", "/tmp/part-0.parquet", "file:///tmp/part-0.parquet"} {
		t.Run("location "+location, func(t *testing.T) {
			t.Parallel()

			fsys, err := LoadFS(t.Context(), nil, location)
			require.NoError(t, err)
			assert.IsType(t, LocalFS{}, fsys)
		})
	}
}

func TestLoadFSMemory(t *testing.T) {
	t.Parallel()

	fsys, err := LoadFS(t.Context(), nil, "mem://bucket/part-0.parquet")
	require.NoError(t, err)
	assert.IsType(t, (*blobFileIO)(nil), fsys)

	// the in-memory bucket starts out empty
	_, err = fsys.Open("mem://bucket/part-0.parquet")
	require.Error(t, err)
}

func TestLoadFSUnknownScheme(t *testing.T) {
	t.Parallel()

	_, err := LoadFS(t.Context(), nil, "ftp://host/part-0.parquet")
	require.ErrorContains(t, err, "IO for file 'ftp://host/part-0.parquet' not implemented")
}

func TestLocalFS(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "part-0.parquet")
	require.NoError(t, os.WriteFile(path, []byte("hello parquet"), 0o600))

	fsys := LocalFS{}

	f, err := fsys.Open("file://" + path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello parquet", string(data))
	require.NoError(t, f.Close())

	f, err = fsys.Open(path)
	require.NoError(t, err)
	buf := make([]byte, 7)
	_, err = f.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "parquet", string(buf))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 13, info.Size())
	require.NoError(t, f.Close())

	require.NoError(t, fsys.Remove(path))
	_, err = fsys.Open(path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
