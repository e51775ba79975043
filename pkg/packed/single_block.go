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
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-packed/pkg/packed/codec"
	"github.com/consensys/go-packed/pkg/util/ram"
)

// widths is the (sorted) set of supported bit widths.  Each width has its own
// specialisation with hand-derived offset/shift/mask arithmetic, since
// generalising the arithmetic to arbitrary widths either costs a division per
// access or lets values span a word boundary.  Adding a new width means adding
// a new specialisation, not generalising an existing one.
var widths = []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 16, 21, 32}

// supported provides direct membership lookup over the width table.
var supported = func() *bitset.BitSet {
	set := bitset.New(33)
	//
	for _, w := range widths {
		set.Set(w)
	}
	//
	return set
}()

// IsSupported checks whether the given bit width is one of the supported
// widths.
func IsSupported(bitsPerValue uint) bool {
	return supported.Test(bitsPerValue)
}

// SupportedWidths returns the supported bit widths in ascending order.
func SupportedWidths() []uint {
	var ws = make([]uint, len(widths))
	copy(ws, widths)
	//
	return ws
}

// UnsupportedWidthError signals an attempt to construct an array for a bit
// width outside the supported set.  Widths are never silently rounded to a
// nearby supported width.
type UnsupportedWidthError struct {
	// The offending width
	BitsPerValue uint
}

func (e *UnsupportedWidthError) Error() string {
	return fmt.Sprintf("unsupported bit width %d (must be one of %v)", e.BitsPerValue, widths)
}

// New constructs a packed array holding valueCount values of the given bit
// width, with every value initially zero.  An UnsupportedWidthError is
// returned for widths outside the supported set.
func New(valueCount uint, bitsPerValue uint) (MutArray, error) {
	switch bitsPerValue {
	case 1:
		return newSingleBlock1(valueCount), nil
	case 2:
		return newSingleBlock2(valueCount), nil
	case 3:
		return newSingleBlock3(valueCount), nil
	case 4:
		return newSingleBlock4(valueCount), nil
	case 5:
		return newSingleBlock5(valueCount), nil
	case 6:
		return newSingleBlock6(valueCount), nil
	case 7:
		return newSingleBlock7(valueCount), nil
	case 8:
		return newSingleBlock8(valueCount), nil
	case 9:
		return newSingleBlock9(valueCount), nil
	case 10:
		return newSingleBlock10(valueCount), nil
	case 12:
		return newSingleBlock12(valueCount), nil
	case 16:
		return newSingleBlock16(valueCount), nil
	case 21:
		return newSingleBlock21(valueCount), nil
	case 32:
		return newSingleBlock32(valueCount), nil
	default:
		return nil, &UnsupportedWidthError{bitsPerValue}
	}
}

// FromReader hydrates a packed array of the given dimensions from a sequence
// of persisted words, word 0 first.  Any bit pattern is legal storage content,
// hence no validation of the words themselves is performed.  Construction
// fails if the reader fails or is exhausted before every word has been read,
// in which case no array is returned.
func FromReader(reader WordReader, valueCount uint, bitsPerValue uint) (MutArray, error) {
	arr, err := New(valueCount, bitsPerValue)
	//
	if err != nil {
		return nil, err
	}
	//
	blocks := arr.(wordStore).storage()
	//
	for i := range blocks {
		if blocks[i], err = reader.ReadWord(); err != nil {
			return nil, fmt.Errorf("reading word %d of %d: %w", i, len(blocks), err)
		}
	}
	//
	return arr, nil
}

// WordsRequired returns the number of 64-bit words needed to hold valueCount
// values when valuesPerWord values are packed into each word, rounding up for
// any partially filled final word.
func WordsRequired(valueCount uint, valuesPerWord uint) uint {
	var words = valueCount / valuesPerWord
	//
	if valueCount%valuesPerWord != 0 {
		words++
	}
	//
	return words
}

// wordStore provides raw access to backing storage for construction purposes.
type wordStore interface {
	storage() []uint64
}

// singleBlock provides the state and range algorithms shared by all width
// specialisations.  Every stored value lives entirely within one 64-bit word;
// widths which do not divide 64 evenly leave the topmost bits of each word as
// (zero) padding.  Instances are plain mutable buffers: concurrent writers
// must synchronise externally, since two writes landing in the same word race
// even when their indices differ.
type singleBlock struct {
	// Number of values held by this array
	valueCount uint
	// Width of each value in bits
	bitsPerValue uint
	// Backing storage, exclusively owned by this array
	blocks []uint64
	// Concrete specialisation, called explicitly for per-element access at
	// ragged edges rather than relying on dispatch through embedding.
	mut MutArray
	// Whole-word transcoder for this width
	codec codec.Codec
}

// newSingleBlock initialises the shared state for a width specialisation,
// allocating (zeroed) storage exactly once.
func newSingleBlock(valueCount uint, bitsPerValue uint, mut MutArray) singleBlock {
	var words = WordsRequired(valueCount, 64/bitsPerValue)
	//
	return singleBlock{
		valueCount:   valueCount,
		bitsPerValue: bitsPerValue,
		blocks:       make([]uint64, words),
		mut:          mut,
		codec:        codec.Of(bitsPerValue),
	}
}

// Len returns the number of values in this array.
func (p *singleBlock) Len() uint {
	return p.valueCount
}

// BitWidth returns the number of bits used to store a single value.
func (p *singleBlock) BitWidth() uint {
	return p.bitsPerValue
}

// Clear resets every value in this array to zero, including the padding bits
// of each word.
func (p *singleBlock) Clear() {
	for i := range p.blocks {
		p.blocks[i] = 0
	}
}

// EstimatedBytes returns a reproducible estimate of the memory consumed by
// this array.  This is intended for diagnostics and capacity planning, not
// correctness.
func (p *singleBlock) EstimatedBytes() uint64 {
	return ram.AlignObjectSize(
		ram.NumBytesObjectHeader +
			2*ram.NumBytesInt +
			ram.NumBytesObjectRef +
			ram.SizeOfUint64s(uint64(len(p.blocks))))
}

// GetBulk copies values starting at the given index into the target slice,
// clamped against the end of the array.  It returns the number of values
// actually copied: once at least one value has been produced by the ragged
// head or the whole-word middle, the transfer returns and the caller is
// expected to re-invoke it for the remainder.  Only when neither makes any
// progress does it fall back to the generic element-by-element path.
func (p *singleBlock) GetBulk(index uint, values []uint64) uint {
	p.checkIndex(index)
	//
	var (
		valuesPerWord = p.codec.ValuesPerWord()
		count         = min(uint(len(values)), p.valueCount-index)
		original      = index
		offset        uint
	)
	// Ragged head, up to the next word boundary
	if index%valuesPerWord != 0 {
		for i := index % valuesPerWord; i < valuesPerWord && count > 0; i++ {
			values[offset] = p.mut.Get(index)
			offset++
			index++
			count--
		}
		// Exhausted before reaching alignment?
		if count == 0 {
			return index - original
		}
	}
	// Aligned middle, whole words only
	var (
		wordIndex = index / valuesPerWord
		words     = (index+count)/valuesPerWord - wordIndex
	)
	//
	p.codec.Decode(p.blocks[wordIndex:], values[offset:], words)
	index += words * valuesPerWord
	//
	if index > original {
		return index - original
	}
	// No progress: the caller started word-aligned but asked for fewer than
	// one whole word of values.
	return getRange(p.mut, index, values[:count])
}

// SetBulk copies values from the source slice into this array starting at the
// given index, clamped against the end of the array.  It mirrors GetBulk: the
// number written is returned, and the caller re-invokes for any remainder.
func (p *singleBlock) SetBulk(index uint, values []uint64) uint {
	p.checkIndex(index)
	//
	var (
		valuesPerWord = p.codec.ValuesPerWord()
		count         = min(uint(len(values)), p.valueCount-index)
		original      = index
		offset        uint
	)
	// Ragged head, up to the next word boundary
	if index%valuesPerWord != 0 {
		for i := index % valuesPerWord; i < valuesPerWord && count > 0; i++ {
			p.mut.Set(index, values[offset])
			offset++
			index++
			count--
		}
		// Exhausted before reaching alignment?
		if count == 0 {
			return index - original
		}
	}
	// Aligned middle, whole words only
	var (
		wordIndex = index / valuesPerWord
		words     = (index+count)/valuesPerWord - wordIndex
	)
	//
	p.codec.Encode(values[offset:], p.blocks[wordIndex:], words)
	index += words * valuesPerWord
	//
	if index > original {
		return index - original
	}
	// No progress: the caller started word-aligned but supplied fewer than
	// one whole word of values.
	return setRange(p.mut, index, values[:count])
}

// Fill sets every value in [from, to) to the given value, whose excess high
// bits (if any) are discarded.  The range is clamped against the end of the
// array.  Long fills overwrite whole interior words with a single
// pre-replicated word rather than performing a masked read-modify-write per
// element.
func (p *singleBlock) Fill(from uint, to uint, value uint64) {
	var valuesPerWord = p.codec.ValuesPerWord()
	// Clamp
	to = min(to, p.valueCount)
	//
	if from >= to {
		return
	}
	// Short ranges do not justify the setup cost of word-level filling.
	if to-from < valuesPerWord<<1 {
		fillRange(p.mut, from, to, value)
		return
	}
	// Ragged head, up to the next word boundary
	for from%valuesPerWord != 0 {
		p.mut.Set(from, value)
		from++
	}
	// Replicate the value into every slot of a single word
	var (
		fromWord = from / valuesPerWord
		toWord   = to / valuesPerWord
		word     uint64
	)
	//
	value &= (uint64(1) << p.bitsPerValue) - 1
	//
	for i := uint(0); i < valuesPerWord; i++ {
		word |= value << (i * p.bitsPerValue)
	}
	// Raw fill of every whole interior word
	for i := fromWord; i < toWord; i++ {
		p.blocks[i] = word
	}
	// Ragged tail
	for i := toWord * valuesPerWord; i < to; i++ {
		p.mut.Set(i, value)
	}
}

func (p *singleBlock) String() string {
	var sb strings.Builder
	//
	sb.WriteString("[")
	//
	for i := uint(0); i < p.valueCount; i++ {
		if i != 0 {
			sb.WriteString(",")
		}
		//
		sb.WriteString(fmt.Sprintf("%d", p.mut.Get(i)))
	}
	//
	sb.WriteString("]")
	//
	return sb.String()
}

// checkIndex panics if the given index lies outside this array.  Silent
// wraparound would corrupt an adjacent value's bits, so out-of-range access
// fails loudly instead.
func (p *singleBlock) checkIndex(index uint) {
	if index >= p.valueCount {
		panic(fmt.Sprintf("index out of bounds (%d >= %d)", index, p.valueCount))
	}
}

// storage implementation for the wordStore interface.
func (p *singleBlock) storage() []uint64 {
	return p.blocks
}
