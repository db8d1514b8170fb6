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
	"net/url"
	"testing"

	"github.com/apache/parquet-filter-go/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAWSConfigRegion(t *testing.T) {
	t.Parallel()

	t.Run("from s3.region", func(t *testing.T) {
		t.Parallel()

		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Region: "us-east-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Region)
	})

	t.Run("falls back to client.region", func(t *testing.T) {
		t.Parallel()

		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			"client.region": "eu-west-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", cfg.Region)
	})

	t.Run("s3.region wins over client.region", func(t *testing.T) {
		t.Parallel()

		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Region:        "us-west-2",
			"client.region": "eu-west-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "us-west-2", cfg.Region)
	})
}

func TestParseAWSConfigStaticCredentials(t *testing.T) {
	t.Parallel()

	cfg, err := ParseAWSConfig(t.Context(), map[string]string{
		S3Region:          "us-east-1",
		S3AccessKeyID:     "admin",
		S3SecretAccessKey: "password",
		S3SessionToken:    "session-token",
	})
	require.NoError(t, err)

	creds, err := cfg.Credentials.Retrieve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.AccessKeyID)
	assert.Equal(t, "password", creds.SecretAccessKey)
	assert.Equal(t, "session-token", creds.SessionToken)
}

func TestParseAWSConfigInvalidProxy(t *testing.T) {
	t.Parallel()

	_, err := ParseAWSConfig(t.Context(), map[string]string{
		S3Region:   "us-east-1",
		S3ProxyURI: "://not-a-url",
	})
	require.ErrorContains(t, err, "invalid s3 proxy url")
}

func TestCreateS3Bucket(t *testing.T) {
	t.Parallel()

	parsed, err := url.Parse("s3://warehouse/db/part-0.parquet")
	require.NoError(t, err)

	bucket, err := createS3Bucket(t.Context(), parsed, map[string]string{
		S3Region:          "us-east-1",
		S3AccessKeyID:     "admin",
		S3SecretAccessKey: "password",
		S3EndpointURL:     "http://localhost:9000",
	})
	require.NoError(t, err)
	require.NoError(t, bucket.Close())
}

func TestCreateS3BucketConfigFromContext(t *testing.T) {
	t.Parallel()

	ctx := utils.WithAwsConfig(t.Context(), &aws.Config{Region: "eu-central-1"})

	parsed, err := url.Parse("s3://warehouse/db/part-0.parquet")
	require.NoError(t, err)

	bucket, err := createS3Bucket(ctx, parsed, map[string]string{})
	require.NoError(t, err)
	require.NoError(t, bucket.Close())
}
