// Package hexaurl provides a fixed-length, case-insensitive, URL-safe text
// encoding with configurable validation.
//
// # Overview
//
// HexaURL packs strings over a 38-symbol alphabet (A-Z case-folded, 0-9, '-'
// and '_') at 6 bits per symbol into a buffer of constant size. Every 3 bytes
// hold exactly 4 symbols, so a 16-byte buffer holds up to 21 symbols.
//
// Symbols use their SIXBIT code (ASCII minus 32 of the uppercase form):
//
//	'-'      13
//	'0'-'9'  16-25
//	'A'-'Z'  33-58
//	'_'      63
//
// Code 0 is never produced by a symbol. It terminates the content and fills
// every unused bit, which makes the encoding of a string unique: two buffers
// are byte-equal exactly when their decoded content is equal, and byte order
// follows the order of the uppercase content. Decoding returns lowercase
// letters.
//
// # When to Use HexaURL
//
// HexaURL fits identifiers that are compared and stored far more often than
// they are displayed:
//   - Usernames, slugs and handles used as map or database keys
//   - Short URL paths with case-insensitive matching
//   - Fixed-width binary columns where the text form is derived on demand
//
// It is not a compression scheme, not an encryption mechanism and not a
// variable-length format.
//
// # Validation
//
// A Config bundles a buffer size, optional length bounds, a Composition
// (which delimiters are allowed) and DelimiterRules (where they may appear).
// Configs are built once with a Builder and are immutable afterwards:
//
//	cfg, err := hexaurl.NewBuilder(16).
//	    MinLength(3).
//	    Composition(hexaurl.AlphanumericHyphenUnderscore).
//	    Delimiters(hexaurl.DelimiterRules{AllowConsecutiveHyphens: true}).
//	    Build()
//
// Validation checks the length first, then scans the bytes 8 at a time for
// characters outside the composition, then applies the delimiter rules in a
// separate pass. Exactly one error is reported per call; match it with
// errors.Is against the Err* sentinels, or with errors.As against
// *ValidationError for the offending position or length.
//
// # Basic Usage
//
//	// Encode and decode with the default configuration
//	buf, err := hexaurl.Encode("Hello-World")
//	s, err := hexaurl.Decode(buf) // "hello-world"
//
//	// Reuse a decode buffer on hot paths
//	dst := make([]byte, 0, cfg.Capacity())
//	dst, err = cfg.DecodeInto(dst, buf)
//
//	// Use the value type as a map key
//	key := hexaurl.MustNew("alice")
//	m := map[hexaurl.HexaURL]int{key: 1}
//
// # Unchecked Functions
//
// EncodeUnchecked, DecodeUnchecked and their variants skip validation. They
// share the packing code with the validated functions and never panic, but
// their output is unspecified when the caller passes input that a Config
// would reject.
//
// # Performance Characteristics
//
// Validation: O(n), one branch per 8-byte word in the common case.
// Encoding and decoding: O(n), table lookups, no allocation in the Into variants.
//
// Config values and lookup tables are read-only and safe for concurrent use.
package hexaurl
