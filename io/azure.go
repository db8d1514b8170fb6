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
	"fmt"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/apache/parquet-filter-go"
	"gocloud.dev/blob"
	"gocloud.dev/blob/azureblob"
)

// Constants for Azure Blob Storage configuration options
const (
	AdlsSharedKeyAccountName = "adls.auth.shared-key.account.name"
	AdlsSharedKeyAccountKey  = "adls.auth.shared-key.account.key"
	AdlsSasToken             = "adls.sas-token"
	AdlsEndpoint             = "adls.endpoint"
	AdlsProtocol             = "adls.protocol"
)

// createAzureBucket opens a container addressed by an abfs[s] or
// wasb[s] URI of the form scheme://container@account.suffix/path.
// The account name is taken from adls.auth.shared-key.account.name
// when set, otherwise from the host of the URI.
func createAzureBucket(ctx context.Context, parsed *url.URL, props filter.Properties) (*blob.Bucket, error) {
	containerName := parsed.User.Username()
	if containerName == "" {
		return nil, fmt.Errorf("azure URI '%s' is missing a container name", parsed.String())
	}

	account := props.Get(AdlsSharedKeyAccountName, "")
	if account == "" {
		account, _, _ = strings.Cut(parsed.Host, ".")
	}
	if account == "" {
		return nil, fmt.Errorf("azure URI '%s' is missing an account name", parsed.String())
	}

	opts := azureblob.NewDefaultServiceURLOptions()
	opts.AccountName = azureblob.AccountName(account)
	if endpoint := props.Get(AdlsEndpoint, ""); endpoint != "" {
		opts.StorageDomain = azureblob.StorageDomain(endpoint)
	}
	if protocol := props.Get(AdlsProtocol, ""); protocol != "" {
		opts.Protocol = azureblob.Protocol(protocol)
	}
	if sasToken := props.Get(AdlsSasToken, ""); sasToken != "" {
		opts.SASToken = azureblob.SASToken(sasToken)
	}

	svcURL, err := azureblob.NewServiceURL(opts)
	if err != nil {
		return nil, err
	}

	if sharedKey := props.Get(AdlsSharedKeyAccountKey, ""); sharedKey != "" {
		cred, err := azblob.NewSharedKeyCredential(account, sharedKey)
		if err != nil {
			return nil, err
		}

		client, err := container.NewClientWithSharedKeyCredential(
			fmt.Sprintf("%s/%s", svcURL, containerName), cred, nil)
		if err != nil {
			return nil, err
		}

		return azureblob.OpenBucket(ctx, client, nil)
	}

	client, err := azureblob.NewDefaultClient(svcURL, azureblob.ContainerName(containerName))
	if err != nil {
		return nil, err
	}

	return azureblob.OpenBucket(ctx, client, nil)
}
