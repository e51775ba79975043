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
package packed

// Array provides read-only access to a fixed-length sequence of unsigned
// values, each of which fits within a fixed number of bits.
type Array interface {
	// Len returns the number of values in this array.
	Len() uint
	// Get returns the value at the given index in this array.
	Get(uint) uint64
	// BitWidth returns the number of bits used to store a single value.
	BitWidth() uint
	// EstimatedBytes returns an estimate of the memory consumed by this
	// array, including fixed per-instance overheads and its backing storage.
	EstimatedBytes() uint64
}

// MutArray provides mutable access to a fixed-length sequence of unsigned
// values.  The length and bit width of the array are fixed at construction
// time; only the values themselves can change.
type MutArray interface {
	Array
	// Set overwrites the value at the given index.  Only the low BitWidth()
	// bits of the value are retained; any excess high bits are discarded.
	Set(uint, uint64)
	// GetBulk copies values starting at the given index into the target
	// slice, returning how many were actually copied.  Fewer values than
	// requested can be copied, in which case the caller is expected to
	// re-invoke with the remainder.
	GetBulk(uint, []uint64) uint
	// SetBulk copies values from the source slice into this array starting
	// at the given index, returning how many were actually written.  Fewer
	// values than supplied can be written, in which case the caller is
	// expected to re-invoke with the remainder.
	SetBulk(uint, []uint64) uint
	// Fill sets every value in a given half-open index range to the same
	// value.
	Fill(uint, uint, uint64)
	// Clear resets every value in this array to zero.
	Clear()
}

// getRange is the generic element-by-element transfer used whenever the fast
// path cannot make progress.  It clamps against the end of the array and
// returns the number of values copied.
func getRange(arr Array, index uint, values []uint64) uint {
	var n = min(uint(len(values)), arr.Len()-index)
	//
	for i := uint(0); i < n; i++ {
		values[i] = arr.Get(index + i)
	}
	//
	return n
}

// setRange is the mutating counterpart of getRange.
func setRange(arr MutArray, index uint, values []uint64) uint {
	var n = min(uint(len(values)), arr.Len()-index)
	//
	for i := uint(0); i < n; i++ {
		arr.Set(index+i, values[i])
	}
	//
	return n
}

// fillRange assigns every value in [from, to) one element at a time.
func fillRange(arr MutArray, from uint, to uint, value uint64) {
	for i := from; i < to; i++ {
		arr.Set(i, value)
	}
}
