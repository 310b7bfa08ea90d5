// This file contains the byte-to-token lowering pass (§4.B) and the digit
// coalescing pass that follows it.

package tok

// tokenKind enumerates the lowered token forms.
type tokenKind int

const (
	tokAscii tokenKind = iota
	tokVar
	tokStringRef
	tokFunc
	tokKeyword
	tokInt
)

// token is the intermediate lowered form, before recursive-descent parsing.
type token struct {
	kind  tokenKind
	value int
}

// lowerSegment scans one non-empty segment pairwise (low byte first) and
// produces its token stream, per the §4.B byte-pair table.
func lowerSegment(seg []byte) []token {
	var toks []token
	n := len(seg)

	for i := 0; i < n; {
		b := seg[i]

		if b < 0x80 {
			toks = append(toks, token{tokAscii, int(b)})
			i++
			continue
		}

		// Every remaining case is a prefix byte that needs a look-ahead.
		if i+1 >= n {
			// Orphan high-byte at end of segment.
			toks = append(toks, token{tokAscii, ';'})
			i = n
			continue
		}
		s := int(seg[i+1])

		switch {
		case b == 0x80:
			if s < 0x80 {
				toks = append(toks, token{tokAscii, s})
				i += 2
				continue
			}
			if isOpenCallParen(seg, i+2) {
				toks = append(toks, token{tokFunc, s - 0x80})
			} else if s >= 162 {
				toks = append(toks, token{tokKeyword, s})
			} else {
				toks = append(toks, token{tokFunc, s})
			}
			i += 2

		case b == 0x81:
			if s < 0x80 {
				toks = append(toks, token{tokAscii, s})
				i += 2
				continue
			}
			if s == 0x81 && i+2 < n && seg[i+2] >= 0x81 {
				// Compiler artifact marking a stand-alone accumulator:
				// skip one byte and continue from the second 0x81.
				i++
				continue
			}
			toks = append(toks, token{tokVar, s - 0x80})
			i += 2

		case b == 0x82:
			toks = append(toks, token{tokStringRef, s - 0x80})
			i += 2

		default: // b >= 0x83
			if s == 0x80 && isOpenCallParenAt(seg, i+2) {
				toks = append(toks, token{tokFunc, int(b) - 0x80})
				i += 2
			} else if s == 0x81 && isOpenCallParenAt(seg, i+2) {
				toks = append(toks, token{tokFunc, int(b)})
				i += 2
			} else if int(b) >= 162 && IsKnownKeywordID(int(b)) {
				toks = append(toks, token{tokKeyword, int(b)})
				i++
			} else {
				toks = append(toks, token{tokInt, s - 0x80})
				i += 2
			}
		}
	}

	return toks
}

// isOpenCallParen tells if seg[at] begins the pair 0x80 0x28 (an opening
// call paren), without consuming it.
func isOpenCallParen(seg []byte, at int) bool {
	return isOpenCallParenAt(seg, at)
}

func isOpenCallParenAt(seg []byte, at int) bool {
	return at+1 < len(seg) && seg[at] == 0x80 && seg[at+1] == 0x28
}

// coalesceDigits scans a token stream combining runs of ASCII digits (and
// an optional leading ASCII '-' immediately followed by a digit) into a
// single Int literal token.
func coalesceDigits(toks []token) []token {
	var out []token

	isDigit := func(t token) bool {
		return t.kind == tokAscii && t.value >= '0' && t.value <= '9'
	}

	for i := 0; i < len(toks); {
		t := toks[i]

		startsRun := isDigit(t) ||
			(t.kind == tokAscii && t.value == '-' && i+1 < len(toks) && isDigit(toks[i+1]))

		if !startsRun {
			out = append(out, t)
			i++
			continue
		}

		j := i
		neg := false
		if t.kind == tokAscii && t.value == '-' {
			neg = true
			j++
		}
		start := j
		for j < len(toks) && isDigit(toks[j]) {
			j++
		}

		var v int32
		for k := start; k < j; k++ {
			v = v*10 + int32(toks[k].value-'0')
		}
		if neg {
			v = -v
		}
		out = append(out, token{tokInt, int(v)})
		i = j
	}

	return out
}
