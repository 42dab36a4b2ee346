package hexaurl

import "unsafe"

// Decode decodes a DefaultSize-byte buffer and validates the result against
// the default configuration.
func Decode(src []byte) (string, error) { return defaultConfig.Decode(src) }

// Decode decodes src, which must be exactly c.Size() bytes, and validates the
// result against c. Letters are returned in lowercase.
func (c *Config) Decode(src []byte) (string, error) {
	out, err := c.DecodeInto(nil, src)
	if err != nil || len(out) == 0 {
		return "", err
	}
	// out is freshly allocated and never written again.
	return unsafe.String(&out[0], len(out)), nil
}

// DecodeInto is like Decode but appends the decoded text to buf[:0], reusing
// its storage when the capacity suffices. buf can be nil or undersized; it
// will be grown as needed. Returns the decoded text (may have a different
// backing array than buf).
//
// Besides validation, DecodeInto rejects buffers with non-zero bits after the
// content terminator with ErrMalformed, so every accepted buffer is the
// unique encoding of its text.
func (c *Config) DecodeInto(buf, src []byte) ([]byte, error) {
	c = c.orDefault()
	if len(src) != c.size {
		return nil, bufferSizeError(len(src), c.size)
	}
	if cap(buf) < Capacity(len(src)) {
		buf = make([]byte, 0, Capacity(len(src)))
	}
	out, n := unpack(buf[:0], src)
	if !paddingZero(src, n) {
		return nil, ErrMalformed
	}
	if err := c.ValidateBytes(out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeUnchecked decodes src, which must be exactly c.Size() bytes, without
// validating the result. It fails only on a wrong buffer size.
func (c *Config) DecodeUnchecked(src []byte) (string, error) {
	c = c.orDefault()
	if len(src) != c.size {
		return "", bufferSizeError(len(src), c.size)
	}
	return DecodeUnchecked(src), nil
}

// DecodeUnchecked decodes a buffer of any size without validation. Decoding
// stops at the first zero code. Codes that no symbol encodes to come back as
// their SIXBIT punctuation; bits after the terminator are ignored.
func DecodeUnchecked(src []byte) string {
	out, _ := unpack(make([]byte, 0, Capacity(len(src))), src)
	return string(out)
}

// DecodeUncheckedInto is like DecodeUnchecked but appends to buf[:0], reusing
// its storage when the capacity suffices.
func DecodeUncheckedInto(buf, src []byte) []byte {
	out, _ := unpack(buf[:0], src)
	return out
}

// SymbolLen returns the number of symbols stored in src, that is, the number
// of codes before the first zero code.
func SymbolLen(src []byte) int {
	n := 0
	for i := 0; i < Capacity(len(src)); i++ {
		if codeAt(src, i) == codeTerminator {
			break
		}
		n++
	}
	return n
}

// unpack appends the symbols of src to dst, stopping at the first zero code,
// and returns the extended slice and the number of symbols appended.
func unpack(dst, src []byte) ([]byte, int) {
	start := len(dst)
	j := 0
	for ; j+bytesPerGroup <= len(src); j += bytesPerGroup {
		b0, b1, b2 := src[j], src[j+1], src[j+2]
		codes := [symbolsPerGroup]uint8{
			b0 >> 2,
			(b0&mask2)<<4 | b1>>4,
			(b1&mask4)<<2 | b2>>6,
			b2 & codeMask,
		}
		for _, code := range codes {
			if code == codeTerminator {
				return dst, len(dst) - start
			}
			dst = append(dst, codeSymbol(code))
		}
	}

	var codes [2]uint8
	rem := len(src) - j
	switch rem {
	case 2:
		codes[1] = (src[j]&mask2)<<4 | src[j+1]>>4
		fallthrough
	case 1:
		codes[0] = src[j] >> 2
	}
	for _, code := range codes[:rem] {
		if code == codeTerminator {
			break
		}
		dst = append(dst, codeSymbol(code))
	}
	return dst, len(dst) - start
}

// codeAt extracts the i-th 6-bit code of src.
func codeAt(src []byte, i int) uint8 {
	bit := i * codeBits
	k := bit / 8
	shift := bit % 8
	v := uint16(src[k]) << 8
	if k+1 < len(src) {
		v |= uint16(src[k+1])
	}
	return uint8(v>>(16-codeBits-shift)) & codeMask
}

// paddingZero reports whether every bit of src after the first n codes is zero.
func paddingZero(src []byte, n int) bool {
	bit := n * codeBits
	k := bit / 8
	if k >= len(src) {
		return true
	}
	if src[k]&(0xFF>>(bit%8)) != 0 {
		return false
	}
	for _, b := range src[k+1:] {
		if b != 0 {
			return false
		}
	}
	return true
}
