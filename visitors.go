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

// RewriteNot rewrites a predicate tree into its not-normal form, pushing
// every Not node down to the leaves where it is absorbed by negating the
// leaf operation. eq becomes noteq, lt becomes gteq, a user defined
// predicate becomes its inverted form, and so on. The result is
// semantically identical to the input and contains no Not nodes, which
// is the shape CanDrop requires.
func RewriteNot(pred Predicate) Predicate {
	switch p := pred.(type) {
	case NotPredicate:
		return RewriteNot(p.child).Negate()
	case AndPredicate:
		return NewAnd(RewriteNot(p.left), RewriteNot(p.right))
	case OrPredicate:
		return NewOr(RewriteNot(p.left), RewriteNot(p.right))
	default:
		return pred
	}
}
