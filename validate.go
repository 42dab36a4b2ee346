package hexaurl

// Validate checks s against the default configuration.
func Validate(s string) error { return defaultConfig.Validate(s) }

// Validate checks s against c and returns nil or a *ValidationError wrapping
// exactly one of the validation sentinels.
//
// Checks run in a fixed order and stop at the first failure:
//  1. length against [MinLength, EffectiveMaxLength]; no byte is inspected
//     when the length is out of range
//  2. composition, scanning 8 bytes at a time
//  3. delimiter placement: leading byte, trailing byte, then each adjacent
//     pair from left to right
func (c *Config) Validate(s string) error {
	return c.ValidateBytes(stringBytes(s))
}

// ValidateBytes is like Validate but takes a byte slice.
func (c *Config) ValidateBytes(b []byte) error {
	c = c.orDefault()
	n := len(b)
	if n < c.minLength {
		return lengthError(ErrTooShort, n, c.minLength)
	}
	if n > c.effectiveMax {
		return lengthError(ErrTooLong, n, c.effectiveMax)
	}
	if pos := c.scanComposition(b); pos >= 0 {
		return charError(b, pos)
	}
	// Delimiter rules are a second pass; the word scan carries no delimiter state.
	return c.checkDelimiters(b)
}

// checkDelimiters applies the delimiter rules to b, which must already have
// passed the composition scan.
func (c *Config) checkDelimiters(b []byte) error {
	n := len(b)
	if n == 0 || c.composition == Alphanumeric {
		return nil
	}
	f := c.flags

	switch b[0] {
	case '-':
		if !f.has(flagLeadingHyphen) {
			return delimiterError(ErrLeadingTrailingHyphen, b, 0)
		}
	case '_':
		if !f.has(flagLeadingUnderscore) {
			return delimiterError(ErrLeadingTrailingUnderscore, b, 0)
		}
	}
	switch b[n-1] {
	case '-':
		if !f.has(flagTrailingHyphen) {
			return delimiterError(ErrLeadingTrailingHyphen, b, n-1)
		}
	case '_':
		if !f.has(flagTrailingUnderscore) {
			return delimiterError(ErrLeadingTrailingUnderscore, b, n-1)
		}
	}

	prev := b[0]
	for i := 1; i < n; i++ {
		cur := b[i]
		if isDelimiter(cur) && isDelimiter(prev) {
			switch {
			case cur != prev:
				if !f.has(flagAdjacentHyphenUnderscore) {
					return delimiterError(ErrAdjacentHyphenUnderscore, b, i)
				}
			case cur == '-':
				if !f.has(flagConsecutiveHyphens) {
					return delimiterError(ErrConsecutiveHyphens, b, i)
				}
			default:
				if !f.has(flagConsecutiveUnderscores) {
					return delimiterError(ErrConsecutiveUnderscores, b, i)
				}
			}
		}
		prev = cur
	}
	return nil
}

// IsEncodingSafe is a quick check for lookups: it reports whether s fits in a
// buffer of size bytes and consists only of alphabet symbols. Length minimums,
// composition and delimiter rules are not applied, so a string passing this
// check may still be rejected by Validate.
func IsEncodingSafe(s string, size int) bool {
	return checkEncodingSafe(stringBytes(s), size) == nil
}

// checkEncodingSafe reports the first reason b cannot be packed into a buffer
// of size bytes: ErrTooLong past capacity, else ErrInvalidCharacter.
func checkEncodingSafe(b []byte, size int) error {
	if limit := Capacity(size); len(b) > limit {
		return lengthError(ErrTooLong, len(b), limit)
	}
	if pos := minimalConfig.scanComposition(b); pos >= 0 {
		return charError(b, pos)
	}
	return nil
}
