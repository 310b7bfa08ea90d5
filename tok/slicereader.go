// This file contains a slice reader which aids reading data from a byte
// slice. Mirrors repparser.sliceReader.

package tok

import "encoding/binary"

// sliceReader aids reading data from a byte slice.
type sliceReader struct {
	b   []byte
	pos uint32
}

func (sr *sliceReader) getUint32() (r uint32) {
	r, sr.pos = binary.LittleEndian.Uint32(sr.b[sr.pos:]), sr.pos+4
	return
}

func (sr *sliceReader) remaining() []byte {
	return sr.b[sr.pos:]
}
