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

package filter

import "errors"

// Sentinel errors returned (wrapped) by this package. Callers should test
// for them with errors.Is.
var (
	// ErrInvalidArgument is the base error for malformed predicate
	// construction and filter document parsing.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrType indicates a literal or statistics value of an unexpected type.
	ErrType = errors.New("invalid type")
	// ErrNotImplemented is returned for predicate or statistics shapes the
	// engine does not handle.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnnormalizedPredicate is returned by CanDrop when the predicate
	// tree still contains a Not node. Run the tree through RewriteNot first.
	ErrUnnormalizedPredicate = errors.New("predicate contains a not")
)
