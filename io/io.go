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

// Package io opens parquet files on local disk and in object stores
// behind a minimal read-oriented filesystem interface. Buckets are
// accessed through gocloud.dev, configured with the property keys
// defined per backend in this package.
package io

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"

	"github.com/apache/parquet-filter-go"
	"gocloud.dev/blob/memblob"
)

// File is the interface a parquet reader requires of an open file:
// sequential reads, seeking, positional reads and the size via Stat.
type File interface {
	fs.File
	io.ReadSeekCloser
	io.ReaderAt
}

// IO is implemented by the storage backends of this package.
type IO interface {
	// Open opens the named file for reading. Depending on the backend
	// the name may be a full URI or a plain path.
	Open(name string) (File, error)
	// Remove deletes the named file.
	Remove(name string) error
}

// LoadFS infers a storage backend from the scheme of location. An
// empty location or a bare path selects the local filesystem. The
// properties configure the object store clients using the s3.*, gcs.*
// and adls.* keys defined in this package.
func LoadFS(ctx context.Context, props filter.Properties, location string) (IO, error) {
	if location == "" {
		return LocalFS{}, nil
	}

	return inferFileIOFromSchema(ctx, props, location)
}

func inferFileIOFromSchema(ctx context.Context, props filter.Properties, path string) (IO, error) {
	parsed, err := url.Parse(path)
	if err != nil {
		return nil, err
	}

	switch parsed.Scheme {
	case "s3", "s3a", "s3n":
		bucket, err := createS3Bucket(ctx, parsed, props)
		if err != nil {
			return nil, err
		}

		return newBlobFileIO(ctx, bucket), nil
	case "gs":
		bucket, err := createGCSBucket(ctx, parsed, props)
		if err != nil {
			return nil, err
		}

		return newBlobFileIO(ctx, bucket), nil
	case "abfs", "abfss", "wasb", "wasbs":
		bucket, err := createAzureBucket(ctx, parsed, props)
		if err != nil {
			return nil, err
		}

		return newBlobFileIO(ctx, bucket), nil
	case "mem":
		return newBlobFileIO(ctx, memblob.OpenBucket(nil)), nil
	case "file", "":
		return LocalFS{}, nil
	default:
		return nil, fmt.Errorf("IO for file '%s' not implemented", path)
	}
}
