package hexaurl

import "fmt"

// Encode validates s against the default configuration and returns its
// DefaultSize-byte encoding.
func Encode(s string) ([]byte, error) { return defaultConfig.Encode(s) }

// EncodeMinimal validates s against the minimal configuration and returns its
// DefaultSize-byte encoding.
func EncodeMinimal(s string) ([]byte, error) { return minimalConfig.Encode(s) }

// Encode validates s against c and returns a newly allocated buffer of
// c.Size() bytes holding its encoding.
func (c *Config) Encode(s string) ([]byte, error) {
	c = c.orDefault()
	if err := c.Validate(s); err != nil {
		return nil, err
	}
	dst := make([]byte, c.size)
	pack(dst, stringBytes(s))
	return dst, nil
}

// EncodeInto validates s against c and writes its encoding into dst, which
// must be exactly c.Size() bytes long. dst is left untouched on error.
func (c *Config) EncodeInto(dst []byte, s string) error {
	c = c.orDefault()
	if len(dst) != c.size {
		return bufferSizeError(len(dst), c.size)
	}
	if err := c.Validate(s); err != nil {
		return err
	}
	clear(dst)
	pack(dst, stringBytes(s))
	return nil
}

// EncodeQuick packs s into a new buffer of size bytes after checking only
// that it fits and consists of alphabet symbols. No Config is involved, so
// length minimums, composition and delimiter rules are not applied.
func EncodeQuick(s string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := stringBytes(s)
	if err := checkEncodingSafe(b, size); err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	pack(dst, b)
	return dst, nil
}

// EncodeUnchecked returns the c.Size()-byte encoding of s without validating
// it. See the package function EncodeUnchecked for the caller contract.
func (c *Config) EncodeUnchecked(s string) []byte {
	dst := make([]byte, c.orDefault().size)
	pack(dst, stringBytes(s))
	return dst
}

// EncodeUnchecked writes the encoding of s into dst without validating s.
// Bytes of dst past the content are zeroed.
//
// The caller guarantees that s has already been accepted by a Config whose
// size is len(dst). For any other input the content written to dst is
// unspecified: bytes outside the alphabet encode as terminators and symbols
// beyond Capacity(len(dst)) are dropped. EncodeUnchecked never panics.
func EncodeUnchecked(dst []byte, s string) {
	clear(dst)
	pack(dst, stringBytes(s))
}

// pack writes the codes of src into dst, 4 symbols per 3 bytes, most
// significant bits first. dst must be zeroed. At most Capacity(len(dst))
// symbols are written.
//
// Group layout:
//
//	byte 0: aaaaaabb
//	byte 1: bbbbcccc
//	byte 2: ccdddddd
func pack(dst, src []byte) {
	n := min(len(src), Capacity(len(dst)))
	i, j := 0, 0
	for ; i+symbolsPerGroup <= n; i, j = i+symbolsPerGroup, j+bytesPerGroup {
		a := symbolCode(src[i])
		b := symbolCode(src[i+1])
		c := symbolCode(src[i+2])
		d := symbolCode(src[i+3])
		dst[j] = a<<2 | b>>4
		dst[j+1] = b<<4 | c>>2
		dst[j+2] = c<<6 | d
	}

	// Partial final group: only the bits it needs, the rest stays zero.
	switch n - i {
	case 3:
		a := symbolCode(src[i])
		b := symbolCode(src[i+1])
		c := symbolCode(src[i+2])
		dst[j] = a<<2 | b>>4
		dst[j+1] = b<<4 | c>>2
		dst[j+2] = c << 6
	case 2:
		a := symbolCode(src[i])
		b := symbolCode(src[i+1])
		dst[j] = a<<2 | b>>4
		dst[j+1] = b << 4
	case 1:
		dst[j] = symbolCode(src[i]) << 2
	}
}
