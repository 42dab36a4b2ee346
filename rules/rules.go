// Package rules provides a github.com/jellydator/validation rule that checks
// values against a hexaurl configuration.
package rules

import (
	"errors"

	validation "github.com/jellydator/validation"

	"github.com/axiomhq/hexaurl"
)

type failure struct {
	err     error
	code    string
	message string
}

// failures maps each validation sentinel to its error code and message.
var failures = []failure{
	{hexaurl.ErrTooShort, "validation_hexaurl_too_short", "the length must be no less than {{.limit}}"},
	{hexaurl.ErrTooLong, "validation_hexaurl_too_long", "the length must be no more than {{.limit}}"},
	{hexaurl.ErrInvalidCharacter, "validation_hexaurl_invalid_character", "must contain only letters, digits and allowed delimiters"},
	{hexaurl.ErrConsecutiveHyphens, "validation_hexaurl_consecutive_hyphens", "must not contain consecutive hyphens"},
	{hexaurl.ErrConsecutiveUnderscores, "validation_hexaurl_consecutive_underscores", "must not contain consecutive underscores"},
	{hexaurl.ErrLeadingTrailingHyphen, "validation_hexaurl_leading_trailing_hyphen", "must not start or end with a hyphen"},
	{hexaurl.ErrLeadingTrailingUnderscore, "validation_hexaurl_leading_trailing_underscore", "must not start or end with an underscore"},
	{hexaurl.ErrAdjacentHyphenUnderscore, "validation_hexaurl_adjacent_hyphen_underscore", "must not contain a hyphen next to an underscore"},
}

// ErrType is returned for values that are neither strings nor byte slices.
var ErrType = validation.NewError("validation_hexaurl_type", "must be a string or a byte slice")

// Rule validates strings and byte slices against a hexaurl.Config.
type Rule struct {
	cfg     *hexaurl.Config
	message string
}

// HexaURL returns a rule that checks values against cfg. A nil cfg uses the
// default configuration. Empty values are valid; combine with
// validation.Required to reject them.
func HexaURL(cfg *hexaurl.Config) Rule {
	return Rule{cfg: cfg}
}

// Error sets the message returned for every failure. Error codes still
// identify the failed check.
func (r Rule) Error(message string) Rule {
	r.message = message
	return r
}

// Validate checks value, which may be a string, a []byte or a pointer to either.
func (r Rule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	var err error
	isString, str, isBytes, bs := validation.StringOrBytes(value)
	switch {
	case isString:
		err = r.cfg.Validate(str)
	case isBytes:
		err = r.cfg.ValidateBytes(bs)
	default:
		return ErrType
	}
	if err == nil {
		return nil
	}
	return r.translate(err)
}

func (r Rule) translate(err error) error {
	var ve *hexaurl.ValidationError
	f, ok := lookup(err)
	if !ok || !errors.As(err, &ve) {
		return validation.NewInternalError(err)
	}
	msg := f.message
	if r.message != "" {
		msg = r.message
	}
	e := validation.NewError(f.code, msg)
	switch f.err {
	case hexaurl.ErrTooShort, hexaurl.ErrTooLong:
		return e.SetParams(map[string]interface{}{"limit": ve.Limit, "length": ve.Length})
	default:
		return e.SetParams(map[string]interface{}{"position": ve.Pos})
	}
}

// Code returns the error code of a hexaurl validation error, such as
// "validation_hexaurl_too_short", or "" when err is not one.
func Code(err error) string {
	if f, ok := lookup(err); ok {
		return f.code
	}
	return ""
}

func lookup(err error) (failure, bool) {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f, true
		}
	}
	return failure{}, false
}
