/*

Package tok implements the decoder for the original binary mission scripts
(.tok): little-endian container → byte segments → lowered tokens → AST.

Decode never throws: malformed input degrades to an empty Program rather
than propagating an error, mirroring repparser.parseProtected's philosophy
that a corrupt/adversarial input must not crash the caller.

*/
package tok

import "github.com/kestrelrts/missionvm/log"

// Decode parses a .tok container into a Program. Unknown tokens are
// skipped; a malformed container decodes to an empty Program. Decode never
// panics across this boundary.
func Decode(raw []byte) (prog *Program) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("tok: recovered from decode panic", log.F("panic", r))
			prog = &Program{}
		}
	}()

	return decode(raw)
}

func decode(raw []byte) *Program {
	if len(raw) < 8 {
		return &Program{}
	}

	sr := sliceReader{b: raw}
	dataSize := sr.getUint32()
	_ = sr.getUint32() // nullCount: informational; segment count is derived directly below

	payload := sr.remaining()
	if uint32(len(payload)) > dataSize {
		payload = payload[:dataSize]
	}

	segments := splitSegments(payload)

	slotCount := 0
	for slotCount < len(segments) && len(segments[slotCount]) == 0 {
		slotCount++
	}

	var toks []token
	for i, seg := range segments[slotCount:] {
		if i > 0 {
			toks = append(toks, token{tokAscii, ';'})
		}
		if len(seg) > 0 {
			toks = append(toks, lowerSegment(seg)...)
		}
	}

	toks = coalesceDigits(toks)

	return parseProgram(toks, slotCount)
}

// splitSegments splits payload on 0x00 bytes.
func splitSegments(payload []byte) [][]byte {
	var segs [][]byte
	start := 0
	for i, b := range payload {
		if b == 0x00 {
			segs = append(segs, payload[start:i])
			start = i + 1
		}
	}
	segs = append(segs, payload[start:])
	return segs
}
