package hexaurl

import (
	"encoding/binary"
	"unsafe"
)

// Core constants for the SIXBIT packing scheme
const (
	codeBits = 6
	codeMask = 1<<codeBits - 1 // 0x3F

	symbolsPerGroup = 4 // 4 codes × 6 bits = 24 bits
	bytesPerGroup   = 3

	// codeTerminator is the zero code. No symbol maps to it, so it marks the end
	// of the content and fills every unused bit of a buffer.
	codeTerminator = 0

	codeHyphen     = '-' - 32 // 13
	codeUnderscore = '_' - 32 // 63

	// Bit masks used when splitting codes across byte boundaries
	mask2 = 0x03
	mask4 = 0x0F

	wordSize = 8 // bytes per unaligned load in the composition scan
)

// symbolCodes maps an input byte to its SIXBIT code (ASCII-32 of the uppercase
// form). Bytes outside the alphabet map to codeTerminator. Lowercase letters
// share the code of their uppercase form.
var symbolCodes = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 13, 0, 0,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 0, 0, 0, 0, 0, 0,
	0, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 0, 0, 0, 0, 63,
	0, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 0, 0, 0, 0, 0,
	// 0x80..0xFF: not symbols
}

// symbolChars maps every 6-bit code back to a byte. Letters decode to
// lowercase. Codes that no symbol encodes to decode to their SIXBIT
// punctuation, which the validator rejects.
const symbolChars = "\x00!\"#$%&'()*+,-./0123456789:;<=>?@abcdefghijklmnopqrstuvwxyz[\\]^_"

func symbolCode(b byte) uint8     { return symbolCodes[b] }
func codeSymbol(code uint8) byte  { return symbolChars[code&codeMask] }
func isDelimiter(b byte) bool     { return b == '-' || b == '_' }
func loadWord(b []byte) uint64    { return binary.LittleEndian.Uint64(b) }
func stringBytes(s string) []byte { return unsafe.Slice(unsafe.StringData(s), len(s)) }

// IsSymbol reports whether b belongs to the 38-symbol alphabet, regardless of
// any composition policy.
func IsSymbol(b byte) bool { return symbolCodes[b] != codeTerminator }

// Capacity returns the number of symbols a buffer of size bytes can hold.
// Every 3 bytes carry exactly 4 symbols.
func Capacity(size int) int {
	if size <= 0 {
		return 0
	}
	return size * symbolsPerGroup / bytesPerGroup
}

// EncodedLen returns the number of leading bytes that carry content for a
// string of n symbols.
func EncodedLen(n int) int {
	return (n*codeBits + 7) / 8
}

// Normalize returns s in the canonical case produced by decoding: ASCII
// letters are lowercased, every other byte is left untouched.
func Normalize(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	out := []byte(s)
	for ; i < len(out); i++ {
		if c := out[i]; c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}
