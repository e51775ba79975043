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

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/consensys/go-packed/pkg/util/ram"
)

func Test_SingleBlock_01(t *testing.T) {
	// Every width, a single partially filled word.
	for _, nbits := range SupportedWidths() {
		check_SingleBlock_RoundTrip(t, nbits, 1)
		check_SingleBlock_RoundTrip(t, nbits, (64/nbits)-1)
	}
}

func Test_SingleBlock_02(t *testing.T) {
	// Every width, exactly full words.
	for _, nbits := range SupportedWidths() {
		check_SingleBlock_RoundTrip(t, nbits, 64/nbits)
		check_SingleBlock_RoundTrip(t, nbits, 4*(64/nbits))
	}
}

func Test_SingleBlock_03(t *testing.T) {
	// Every width, several words plus a ragged tail.
	for _, nbits := range SupportedWidths() {
		check_SingleBlock_RoundTrip(t, nbits, 5*(64/nbits)+3)
	}
}

func Test_SingleBlock_04(t *testing.T) {
	// Really hammer the non-power-of-two widths.
	for i := 0; i < 100; i++ {
		for _, nbits := range []uint{3, 5, 6, 7, 9, 10, 12, 21} {
			check_SingleBlock_RoundTrip(t, nbits, uint(1+rand.Intn(500)))
		}
	}
}

func Test_SingleBlock_05(t *testing.T) {
	// Overwriting one index must not alter any other.
	for _, nbits := range SupportedWidths() {
		check_SingleBlock_NonInterference(t, nbits, 3*(64/nbits)+2)
	}
}

func Test_SingleBlock_06(t *testing.T) {
	// Excess high bits are discarded, not stored.
	for _, nbits := range SupportedWidths() {
		arr, err := New(10, nbits)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		arr.Set(3, ^uint64(0))
		//
		if got := arr.Get(3); got != maxValueOf(nbits) {
			t.Errorf("width %d: expected truncation to %d, got %d", nbits, maxValueOf(nbits), got)
		}
	}
}

func Test_SingleBlock_07(t *testing.T) {
	// Width 3, 25 values: 21 values per word, hence two words and indices 20
	// and 21 fall either side of the word boundary.
	arr, err := New(25, 3)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	arr.Set(20, 7)
	arr.Set(21, 5)
	//
	if got := arr.Get(20); got != 7 {
		t.Errorf("expected 7 at index 20, got %d", got)
	}
	//
	if got := arr.Get(21); got != 5 {
		t.Errorf("expected 5 at index 21, got %d", got)
	}
	// Check the two values landed in different words.
	blocks := arr.(*SingleBlock3).blocks
	//
	if len(blocks) != 2 {
		t.Fatalf("expected 2 words, got %d", len(blocks))
	}
	//
	if blocks[0]>>60 != 7 {
		t.Errorf("expected 7 in the top slot of word 0, got %d", blocks[0]>>60)
	}
	//
	if blocks[1]&0x7 != 5 {
		t.Errorf("expected 5 in the bottom slot of word 1, got %d", blocks[1]&0x7)
	}
}

func Test_SingleBlock_08(t *testing.T) {
	// Width 32, 4 values: two values per word, full bit patterns.
	arr, err := New(4, 32)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	arr.Set(0, 0xFFFFFFFF)
	arr.Set(1, 1)
	//
	if got := arr.Get(0); got != 0xFFFFFFFF {
		t.Errorf("expected 0xFFFFFFFF at index 0, got %#x", got)
	}
	//
	if got := arr.Get(1); got != 1 {
		t.Errorf("expected 1 at index 1, got %d", got)
	}
	//
	if word := arr.(*SingleBlock32).blocks[0]; word != 0x00000001FFFFFFFF {
		t.Errorf("unexpected word 0 bit pattern %#x", word)
	}
}

func Test_SingleBlock_09(t *testing.T) {
	// Width 1, 128 values, fill a sub-range.
	arr, err := New(128, 1)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	arr.Fill(10, 100, 1)
	//
	for i := uint(0); i < 128; i++ {
		expected := uint64(0)
		//
		if i >= 10 && i < 100 {
			expected = 1
		}
		//
		if got := arr.Get(i); got != expected {
			t.Errorf("expected %d at index %d, got %d", expected, i, got)
		}
	}
}

func Test_SingleBlock_Clear(t *testing.T) {
	for _, nbits := range SupportedWidths() {
		var count = 3*(64/nbits) + 1
		//
		arr, err := New(count, nbits)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		arr.Fill(0, count, maxValueOf(nbits))
		arr.Clear()
		//
		for i := uint(0); i < count; i++ {
			if got := arr.Get(i); got != 0 {
				t.Errorf("width %d: expected 0 at index %d after clear, got %d", nbits, i, got)
			}
		}
		// Padding bits must also read as zero.
		for i, word := range arr.(wordStore).storage() {
			if word != 0 {
				t.Errorf("width %d: expected zero word %d after clear, got %#x", nbits, i, word)
			}
		}
		// Clearing twice is equivalent to clearing once.
		arr.Clear()
		//
		for i := uint(0); i < count; i++ {
			if got := arr.Get(i); got != 0 {
				t.Errorf("width %d: expected 0 at index %d after second clear, got %d", nbits, i, got)
			}
		}
	}
}

func Test_SingleBlock_WordsRequired(t *testing.T) {
	for _, nbits := range SupportedWidths() {
		var valuesPerWord = 64 / nbits
		//
		for count := uint(1); count <= 200; count++ {
			words := WordsRequired(count, valuesPerWord)
			// Capacity is sufficient ...
			if valuesPerWord*words < count {
				t.Errorf("width %d: %d words cannot hold %d values", nbits, words, count)
			}
			// ... but not excessive.
			if valuesPerWord*(words-1) >= count {
				t.Errorf("width %d: %d words is one too many for %d values", nbits, words, count)
			}
		}
	}
}

func Test_SingleBlock_UnsupportedWidth(t *testing.T) {
	for _, nbits := range []uint{0, 11, 13, 14, 15, 17, 20, 22, 31, 33, 64} {
		if IsSupported(nbits) {
			t.Errorf("width %d should not be supported", nbits)
		}
		//
		arr, err := New(10, nbits)
		//
		if err == nil {
			t.Fatalf("expected error for width %d", nbits)
		}
		//
		if arr != nil {
			t.Errorf("no array should be returned for width %d", nbits)
		}
		// Error must name the offending width.
		if !strings.Contains(err.Error(), fmt.Sprintf("%d", nbits)) {
			t.Errorf("error %q does not name width %d", err.Error(), nbits)
		}
	}
	//
	for _, nbits := range SupportedWidths() {
		if !IsSupported(nbits) {
			t.Errorf("width %d should be supported", nbits)
		}
	}
}

func Test_SingleBlock_BoundsCheck(t *testing.T) {
	arr, err := New(25, 3)
	//
	if err != nil {
		t.Fatal(err)
	}
	// Index 30 still maps inside the allocated storage, hence an unchecked
	// access would silently corrupt a neighbouring value.
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range access")
		}
	}()
	//
	arr.Get(30)
}

func Test_SingleBlock_EstimatedBytes(t *testing.T) {
	for _, nbits := range SupportedWidths() {
		var (
			count = 10 * (64 / nbits)
			words = WordsRequired(count, 64/nbits)
		)
		//
		arr, err := New(count, nbits)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		expected := ram.AlignObjectSize(
			ram.NumBytesObjectHeader +
				2*ram.NumBytesInt +
				ram.NumBytesObjectRef +
				ram.SizeOfUint64s(uint64(words)))
		//
		if got := arr.EstimatedBytes(); got != expected {
			t.Errorf("width %d: expected %d estimated bytes, got %d", nbits, expected, got)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SingleBlock_RoundTrip(t *testing.T, nbits uint, count uint) {
	var (
		rng      = rand.New(rand.NewSource(int64(nbits)*1021 + int64(count)))
		expected = make([]uint64, count)
	)
	//
	arr, err := New(count, nbits)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for i := range expected {
		expected[i] = rng.Uint64() & maxValueOf(nbits)
		arr.Set(uint(i), expected[i])
	}
	//
	for i := range expected {
		if got := arr.Get(uint(i)); got != expected[i] {
			t.Errorf("width %d, count %d: wrong value at index %d (got %d, expected %d)",
				nbits, count, i, got, expected[i])
		}
	}
}

func check_SingleBlock_NonInterference(t *testing.T, nbits uint, count uint) {
	arr, err := New(count, nbits)
	//
	if err != nil {
		t.Fatal(err)
	}
	// Saturate every slot, then knock out single indices.
	for _, target := range []uint{0, count / 2, count - 1} {
		arr.Fill(0, count, maxValueOf(nbits))
		arr.Set(target, 0)
		//
		for i := uint(0); i < count; i++ {
			expected := maxValueOf(nbits)
			//
			if i == target {
				expected = 0
			}
			//
			if got := arr.Get(i); got != expected {
				t.Errorf("width %d: setting index %d changed index %d (got %d, expected %d)",
					nbits, target, i, got, expected)
			}
		}
	}
}

func maxValueOf(nbits uint) uint64 {
	return (uint64(1) << nbits) - 1
}
