package hexaurl

import (
	"errors"
	"fmt"
)

// Configuration errors, reported once by Builder.Build.
var (
	// ErrInvalidSize indicates a non-positive buffer size.
	ErrInvalidSize = errors.New("hexaurl: buffer size must be positive")
	// ErrInvalidComposition indicates a Composition value outside the defined set.
	ErrInvalidComposition = errors.New("hexaurl: unknown composition")
	// ErrLengthRange indicates the requested minimum length exceeds the requested
	// maximum length, or that either is negative.
	ErrLengthRange = errors.New("hexaurl: minimum length exceeds maximum length")
	// ErrCompiledLengthRange indicates the requested minimum length exceeds the
	// maximum length after clamping to the buffer capacity.
	ErrCompiledLengthRange = errors.New("hexaurl: minimum length exceeds effective maximum length")
)

// Validation errors. Exactly one is reported per failed call.
var (
	ErrInvalidCharacter          = errors.New("hexaurl: invalid character")
	ErrTooShort                  = errors.New("hexaurl: string too short")
	ErrTooLong                   = errors.New("hexaurl: string too long")
	ErrConsecutiveHyphens        = errors.New("hexaurl: consecutive hyphens")
	ErrConsecutiveUnderscores    = errors.New("hexaurl: consecutive underscores")
	ErrLeadingTrailingHyphen     = errors.New("hexaurl: leading or trailing hyphen")
	ErrLeadingTrailingUnderscore = errors.New("hexaurl: leading or trailing underscore")
	ErrAdjacentHyphenUnderscore  = errors.New("hexaurl: adjacent hyphen and underscore")
)

// Structural errors, independent of any configuration rule.
var (
	// ErrBufferSize indicates a buffer whose length does not match the configured size.
	ErrBufferSize = errors.New("hexaurl: wrong buffer size")
	// ErrMalformed indicates non-zero bits after the content terminator.
	ErrMalformed = errors.New("hexaurl: malformed buffer")
)

// ConfigError describes a rejected configuration. Err is one of the
// configuration sentinels; Min and Max are the conflicting bounds.
type ConfigError struct {
	Err error
	Min int
	Max int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (min %d, max %d)", e.Err, e.Min, e.Max)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ValidationError describes why a string was rejected.
//
// For ErrTooShort and ErrTooLong, Length is the offending length and Limit the
// violated bound. For character and delimiter errors, Pos is the byte offset of
// the offending byte and Char its value; Delimiter is set when an invalid
// character is a hyphen or underscore excluded by the composition.
type ValidationError struct {
	Err       error
	Length    int
	Limit     int
	Pos       int
	Char      byte
	Delimiter bool
}

func (e *ValidationError) Error() string {
	switch e.Err {
	case ErrTooShort:
		return fmt.Sprintf("%v: length %d, minimum %d", e.Err, e.Length, e.Limit)
	case ErrTooLong:
		return fmt.Sprintf("%v: length %d, maximum %d", e.Err, e.Length, e.Limit)
	case ErrInvalidCharacter:
		if e.Delimiter {
			return fmt.Sprintf("%v: delimiter %q at %d not allowed by composition", e.Err, e.Char, e.Pos)
		}
		return fmt.Sprintf("%v: %q at %d", e.Err, e.Char, e.Pos)
	default:
		return fmt.Sprintf("%v at %d", e.Err, e.Pos)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func lengthError(err error, length, limit int) *ValidationError {
	return &ValidationError{Err: err, Length: length, Limit: limit, Pos: -1}
}

func charError(b []byte, pos int) *ValidationError {
	return &ValidationError{
		Err:       ErrInvalidCharacter,
		Length:    len(b),
		Pos:       pos,
		Char:      b[pos],
		Delimiter: isDelimiter(b[pos]),
	}
}

func delimiterError(err error, b []byte, pos int) *ValidationError {
	return &ValidationError{Err: err, Length: len(b), Pos: pos, Char: b[pos]}
}

func bufferSizeError(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, got, want)
}
