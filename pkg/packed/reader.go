package packed

import (
	"encoding/binary"
	"io"
)

// WordReader yields 64-bit words one at a time, in the order they were
// persisted.  It is consumed only when hydrating an array from persisted data;
// the layout is simply N consecutive words, with the most significant bits of
// the final word possibly unused.  Consumers must know the value count and bit
// width out of band.
type WordReader interface {
	// ReadWord returns the next word, or an error if the underlying source
	// fails or is exhausted.
	ReadWord() (uint64, error)
}

// binaryWordReader decodes consecutive big-endian words from a byte stream.
type binaryWordReader struct {
	reader io.Reader
}

// NewWordReader constructs a WordReader decoding consecutive big-endian words
// from the given byte stream.
func NewWordReader(reader io.Reader) WordReader {
	return &binaryWordReader{reader}
}

// ReadWord implementation for the WordReader interface.
func (p *binaryWordReader) ReadWord() (uint64, error) {
	var word uint64
	//
	if err := binary.Read(p.reader, binary.BigEndian, &word); err != nil {
		return 0, err
	}
	//
	return word, nil
}
