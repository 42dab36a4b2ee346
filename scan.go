package hexaurl

// Word-at-a-time composition scan.
//
// Each 8-byte little-endian word is tested with per-byte arithmetic that never
// carries across byte lanes as long as every byte is ASCII (< 0x80). For an
// ASCII byte x:
//
//	x + (0x80 - lo) has its high bit set  <=>  x >= lo
//	x + (0x7F - hi) has its high bit set  <=>  x >  hi
//	(x ^ c) + 0x7F  has its high bit set  <=>  x != c
//
// A word is accepted when no byte has its high bit set and every lane of the
// OR of the class tests has its high bit set. The only branch is the per-word
// accept test; a rejected word is rescanned byte by byte to find the first
// offending byte.
const (
	loBits   = 0x0101010101010101
	hiBits   = 0x8080808080808080
	foldBits = 0x2020202020202020 // maps 'A'..'Z' onto 'a'..'z'

	// tailFill pads the final partial word with a byte every composition accepts.
	tailFill = '0'
)

func lanes(b byte) uint64 { return uint64(b) * loBits }

// inRange returns hiBits in every lane whose byte lies in [lo, hi].
func inRange(w uint64, lo, hi byte) uint64 {
	ge := w + lanes(0x80-lo)
	gt := w + lanes(0x7F-hi)
	return ge &^ gt & hiBits
}

// equal returns hiBits in every lane whose byte equals c.
func equal(w uint64, c byte) uint64 {
	return ^((w ^ lanes(c)) + lanes(0x7F)) & hiBits
}

// wordValid reports whether all 8 bytes of w are legal under the given
// delimiter masks (hiBits to allow the delimiter, 0 to forbid it).
func wordValid(w, hyphenMask, underscoreMask uint64) bool {
	v := inRange(w|foldBits, 'a', 'z') |
		inRange(w, '0', '9') |
		equal(w, '-')&hyphenMask |
		equal(w, '_')&underscoreMask
	return w&hiBits == 0 && v == hiBits
}

// legalByte is the scalar form of wordValid for one byte.
func legalByte(b byte, comp Composition) bool {
	switch symbolCode(b) {
	case codeTerminator:
		return false
	case codeHyphen:
		return comp.AllowsHyphen()
	case codeUnderscore:
		return comp.AllowsUnderscore()
	default:
		return true
	}
}

// scanComposition returns the offset of the first byte of b that is not legal
// under c's composition, or -1 when every byte is legal.
func (c *Config) scanComposition(b []byte) int {
	n := len(b)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		if !wordValid(loadWord(b[i:]), c.hyphenMask, c.underscoreMask) {
			return scanScalar(b[i:i+wordSize], c.composition, i)
		}
	}
	if i == n {
		return -1
	}
	var tail [wordSize]byte
	for k := range tail {
		tail[k] = tailFill
	}
	copy(tail[:], b[i:])
	if !wordValid(loadWord(tail[:]), c.hyphenMask, c.underscoreMask) {
		return scanScalar(b[i:], c.composition, i)
	}
	return -1
}

// scanScalar checks b one byte at a time and returns base plus the offset of
// the first illegal byte, or -1.
func scanScalar(b []byte, comp Composition, base int) int {
	for k, x := range b {
		if !legalByte(x, comp) {
			return base + k
		}
	}
	return -1
}
