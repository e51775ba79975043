// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ram provides reproducible estimates of in-memory object sizes,
// following 64-bit platform conventions.  Estimates are intended for
// diagnostics and capacity planning rather than exact accounting.
package ram

const (
	// NumBytesObjectHeader is the assumed fixed per-object overhead.
	NumBytesObjectHeader = 16
	// NumBytesObjectRef is the size of a reference to another object.
	NumBytesObjectRef = 8
	// NumBytesInt is the size of a native integer field.
	NumBytesInt = 8
	// NumBytesSliceHeader is the size of a slice header (pointer, length and
	// capacity).
	NumBytesSliceHeader = 24
	// objectAlignment is the granularity objects are assumed to be padded to.
	objectAlignment = 8
)

// AlignObjectSize rounds a size up to the platform's object-alignment
// granularity.
func AlignObjectSize(size uint64) uint64 {
	return (size + objectAlignment - 1) &^ uint64(objectAlignment-1)
}

// SizeOfUint64s returns the number of bytes consumed by a slice of n 64-bit
// words, including its header.
func SizeOfUint64s(n uint64) uint64 {
	return AlignObjectSize(NumBytesSliceHeader + 8*n)
}
