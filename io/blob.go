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
	"context"
	"io"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
)

// blobOpenFile is a single open object read through a bucket. The
// embedded reader contributes Read, Seek, Close, Size and ModTime, the
// rest of the fs.FileInfo surface is filled in here.
type blobOpenFile struct {
	*blob.Reader
	name string
}

// ReadAt seeks the underlying reader to off and reads from there. A
// blob reader has a single cursor, so positional reads must not be
// issued concurrently.
func (f *blobOpenFile) ReadAt(p []byte, off int64) (int, error) {
	finalOff, err := f.Reader.Seek(off, io.SeekStart)
	if err != nil {
		return -1, err
	} else if finalOff != off {
		return -1, io.ErrUnexpectedEOF
	}

	return f.Read(p)
}

func (f *blobOpenFile) Name() string               { return f.name }
func (f *blobOpenFile) Mode() fs.FileMode          { return fs.ModeIrregular }
func (f *blobOpenFile) Sys() interface{}           { return f.Reader }
func (f *blobOpenFile) IsDir() bool                { return false }
func (f *blobOpenFile) Stat() (fs.FileInfo, error) { return f, nil }

// blobFileIO is an IO over a single bucket of an object store.
type blobFileIO struct {
	*blob.Bucket
	ctx  context.Context
	opts *blob.ReaderOptions
}

var _ IO = (*blobFileIO)(nil)

func newBlobFileIO(ctx context.Context, bucket *blob.Bucket) *blobFileIO {
	return &blobFileIO{Bucket: bucket, ctx: ctx, opts: &blob.ReaderOptions{}}
}

// blobKey reduces a name to the object key within the bucket: for full
// URIs the URL path without its leading slash, anything else is taken
// as a key directly.
func (b *blobFileIO) blobKey(name string) string {
	if parsed, err := url.Parse(name); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}

	return strings.TrimPrefix(name, "/")
}

func (b *blobFileIO) Open(name string) (File, error) {
	key := b.blobKey(name)
	r, err := b.Bucket.NewReader(b.ctx, key, b.opts)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	return &blobOpenFile{Reader: r, name: filepath.Base(key)}, nil
}

func (b *blobFileIO) Remove(name string) error {
	return b.Bucket.Delete(b.ctx, b.blobKey(name))
}
