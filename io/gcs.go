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
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/apache/parquet-filter-go"
	"gocloud.dev/blob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcp"
	"google.golang.org/api/option"
)

// Constants for GCS configuration options
const (
	GCSEndpoint   = "gcs.endpoint"
	GCSKeyPath    = "gcs.keypath"
	GCSJSONKey    = "gcs.jsonkey"
	GCSUseJsonAPI = "gcs.usejsonapi" // set to anything to enable
)

// ParseGCSConfig turns the gcs.* properties into client options for
// the storage API.
func ParseGCSConfig(props filter.Properties) *gcsblob.Options {
	var clientOpts []option.ClientOption
	if endpoint := props[GCSEndpoint]; endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(endpoint))
	}
	if key := props[GCSJSONKey]; key != "" {
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(key)))
	}
	if path := props[GCSKeyPath]; path != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(path))
	}
	if _, ok := props[GCSUseJsonAPI]; ok {
		clientOpts = append(clientOpts, storage.WithJSONReads())
	}

	return &gcsblob.Options{ClientOptions: clientOpts}
}

func createGCSBucket(ctx context.Context, parsed *url.URL, props filter.Properties) (*blob.Bucket, error) {
	gcscfg := ParseGCSConfig(props)

	// Without default credentials fall back to an anonymous client,
	// which still serves public buckets and local emulators.
	var client *gcp.HTTPClient
	if creds, _ := gcp.DefaultCredentials(ctx); creds == nil {
		client = gcp.NewAnonymousHTTPClient(gcp.DefaultTransport())
	} else {
		var err error
		client, err = gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
		if err != nil {
			return nil, err
		}
	}

	return gcsblob.OpenBucket(ctx, client, parsed.Host, gcscfg)
}
