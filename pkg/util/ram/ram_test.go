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
package ram

import "testing"

func Test_AlignObjectSize(t *testing.T) {
	cases := map[uint64]uint64{
		0:  0,
		1:  8,
		7:  8,
		8:  8,
		9:  16,
		16: 16,
		17: 24,
	}
	//
	for size, expected := range cases {
		if got := AlignObjectSize(size); got != expected {
			t.Errorf("expected align(%d) == %d, got %d", size, expected, got)
		}
	}
}

func Test_SizeOfUint64s(t *testing.T) {
	for n := uint64(0); n < 100; n++ {
		var (
			got      = SizeOfUint64s(n)
			expected = uint64(NumBytesSliceHeader) + 8*n
		)
		// Header plus payload, both already aligned.
		if got != expected {
			t.Errorf("expected %d bytes for %d words, got %d", expected, n, got)
		}
		// Aligned and monotonic.
		if got%8 != 0 {
			t.Errorf("unaligned size %d for %d words", got, n)
		}
	}
}
