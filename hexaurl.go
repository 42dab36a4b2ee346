package hexaurl

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
)

// HexaURL is an encoded DefaultSize-byte buffer used directly as a value.
// Equality, ordering and hashing derive from the bytes alone, so a HexaURL can
// be compared with == and used as a map key without decoding. Byte order
// matches the order of the uppercase content, with shorter prefixes first.
type HexaURL [DefaultSize]byte

var (
	_ encoding.TextMarshaler     = HexaURL{}
	_ encoding.TextUnmarshaler   = (*HexaURL)(nil)
	_ encoding.BinaryMarshaler   = HexaURL{}
	_ encoding.BinaryUnmarshaler = (*HexaURL)(nil)
	_ driver.Valuer              = HexaURL{}
	_ sql.Scanner                = (*HexaURL)(nil)
)

// New validates s against the default configuration and encodes it.
func New(s string) (HexaURL, error) { return NewWithConfig(s, defaultConfig) }

// NewMinimal validates s against the minimal configuration and encodes it.
func NewMinimal(s string) (HexaURL, error) { return NewWithConfig(s, minimalConfig) }

// NewWithConfig validates s against cfg and encodes it. cfg must be built for
// DefaultSize buffers.
func NewWithConfig(s string, cfg *Config) (HexaURL, error) {
	var h HexaURL
	if err := cfg.EncodeInto(h[:], s); err != nil {
		return HexaURL{}, err
	}
	return h, nil
}

// NewQuick encodes s after the checks of EncodeQuick only.
func NewQuick(s string) (HexaURL, error) {
	var h HexaURL
	b := stringBytes(s)
	if err := checkEncodingSafe(b, DefaultSize); err != nil {
		return HexaURL{}, err
	}
	pack(h[:], b)
	return h, nil
}

// NewUnchecked encodes s without validation. The caller contract is that of
// EncodeUnchecked.
func NewUnchecked(s string) HexaURL {
	var h HexaURL
	pack(h[:], stringBytes(s))
	return h
}

// MustNew is like New but panics on error. It simplifies initialization of
// package-level variables.
func MustNew(s string) HexaURL {
	h, err := New(s)
	if err != nil {
		panic(err)
	}
	return h
}

// FromBytes copies b into a HexaURL after checking that it is a well-formed
// buffer whose content passes the minimal configuration.
func FromBytes(b []byte) (HexaURL, error) {
	var h HexaURL
	if _, err := minimalConfig.DecodeInto(nil, b); err != nil {
		return HexaURL{}, err
	}
	copy(h[:], b)
	return h, nil
}

// Capacity returns the number of symbols a HexaURL can hold.
func (h HexaURL) Capacity() int { return Capacity(DefaultSize) }

// Bytes returns a copy of the encoded buffer.
func (h HexaURL) Bytes() []byte { return bytes.Clone(h[:]) }

// Len returns the number of symbols stored in h.
func (h HexaURL) Len() int { return SymbolLen(h[:]) }

// IsZero reports whether h holds the empty string.
func (h HexaURL) IsZero() bool { return h[0] == 0 }

// Compare returns -1, 0 or +1 depending on whether h sorts before, equal to
// or after other.
func (h HexaURL) Compare(other HexaURL) int { return bytes.Compare(h[:], other[:]) }

// String returns the decoded content in lowercase.
func (h HexaURL) String() string { return DecodeUnchecked(h[:]) }

// Decode decodes h and validates the result against cfg, which must be built
// for DefaultSize buffers.
func (h HexaURL) Decode(cfg *Config) (string, error) { return cfg.Decode(h[:]) }

// Resize copies the content of h into a buffer of size bytes. It fails with
// ErrBufferSize when the content does not fit.
func (h HexaURL) Resize(size int) ([]byte, error) {
	n := h.Len()
	if n > Capacity(size) {
		return nil, fmt.Errorf("%w: %d symbols do not fit in %d bytes", ErrBufferSize, n, size)
	}
	dst := make([]byte, size)
	copy(dst, h[:EncodedLen(n)])
	return dst, nil
}

// Truncate copies the content of h into a buffer of size bytes, dropping
// the symbols past Capacity(size). The result is canonical but the shortened
// content may no longer pass the configuration h was built with.
func (h HexaURL) Truncate(size int) []byte {
	k := min(h.Len(), Capacity(size))
	dst := make([]byte, size)
	end := EncodedLen(k)
	copy(dst, h[:end])
	if r := uint(k*codeBits) % 8; r != 0 {
		dst[end-1] &= 0xff << (8 - r)
	}
	return dst
}

// MarshalText implements encoding.TextMarshaler.
func (h HexaURL) MarshalText() ([]byte, error) {
	return DecodeUncheckedInto(nil, h[:]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// against the minimal configuration.
func (h *HexaURL) UnmarshalText(text []byte) error {
	var tmp HexaURL
	if err := minimalConfig.ValidateBytes(text); err != nil {
		return err
	}
	pack(tmp[:], text)
	*h = tmp
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h HexaURL) MarshalBinary() ([]byte, error) { return h.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *HexaURL) UnmarshalBinary(data []byte) error {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Value implements driver.Valuer. A HexaURL is stored as its raw bytes so it
// can serve as a fixed-width binary key.
func (h HexaURL) Value() (driver.Value, error) { return h.Bytes(), nil }

// Scan implements sql.Scanner. It accepts the raw bytes as []byte or string.
func (h *HexaURL) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return h.UnmarshalBinary(v)
	case string:
		return h.UnmarshalBinary([]byte(v))
	default:
		return fmt.Errorf("hexaurl: cannot scan %T into HexaURL", src)
	}
}
