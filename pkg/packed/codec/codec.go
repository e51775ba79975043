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
package codec

// Codec transcodes between 64-bit storage words and the unpacked values they
// hold under the single-block packing of a given bit width.  Within each word,
// the ith value occupies bits [i*width, (i+1)*width) and any bits above
// ValuesPerWord()*width are padding.  A codec operates on whole, aligned words
// only: handling ragged edges is the caller's responsibility.
type Codec struct {
	// Width of each value in bits
	bitsPerValue uint
	// Number of values packed into each word
	valuesPerWord uint
	// Mask retaining exactly the low bitsPerValue bits
	mask uint64
}

// Of returns the codec for a given bit width, which must be in the range
// (0, 64].
func Of(bitsPerValue uint) Codec {
	return Codec{
		bitsPerValue:  bitsPerValue,
		valuesPerWord: 64 / bitsPerValue,
		mask:          mask(bitsPerValue),
	}
}

// BitsPerValue returns the width (in bits) of values handled by this codec.
func (c Codec) BitsPerValue() uint {
	return c.bitsPerValue
}

// ValuesPerWord returns the number of values packed into each word.
func (c Codec) ValuesPerWord() uint {
	return c.valuesPerWord
}

// Decode unpacks the first words elements of blocks into values, writing
// words*ValuesPerWord() values in total.  The values slice must be at least
// that long.
func (c Codec) Decode(blocks []uint64, values []uint64, words uint) {
	var offset uint
	//
	for i := uint(0); i < words; i++ {
		block := blocks[i]
		//
		for j := uint(0); j < c.valuesPerWord; j++ {
			values[offset] = block & c.mask
			block >>= c.bitsPerValue
			offset++
		}
	}
}

// Encode packs words*ValuesPerWord() values into the first words elements of
// blocks, overwriting them entirely (hence padding bits always end up zero).
// Excess high bits of each value are discarded.
func (c Codec) Encode(values []uint64, blocks []uint64, words uint) {
	var offset uint
	//
	for i := uint(0); i < words; i++ {
		var block uint64
		//
		for j := uint(0); j < c.valuesPerWord; j++ {
			block |= (values[offset] & c.mask) << (j * c.bitsPerValue)
			offset++
		}
		//
		blocks[i] = block
	}
}

// mask returns a value retaining exactly the low nbits bits.
func mask(nbits uint) uint64 {
	if nbits >= 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << nbits) - 1
}
