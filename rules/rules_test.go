package rules

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiomhq/hexaurl"
)

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var verr validation.Error
	require.True(t, errors.As(err, &verr), "expected validation.Error, got %T", err)
	return verr.Code()
}

func TestHexaURL(t *testing.T) {
	rule := HexaURL(nil)

	tests := []struct {
		name  string
		value interface{}
		code  string
	}{
		{name: "valid", value: "Hello-World"},
		{name: "empty string", value: ""},
		{name: "nil pointer", value: (*string)(nil)},
		{name: "valid bytes", value: []byte("abc")},
		{name: "too short", value: "ab", code: "validation_hexaurl_too_short"},
		{name: "too long", value: "abcdefghijklmnopqrstuvwxyz", code: "validation_hexaurl_too_long"},
		{name: "invalid character", value: "ab_cd", code: "validation_hexaurl_invalid_character"},
		{name: "leading hyphen", value: "-abc", code: "validation_hexaurl_leading_trailing_hyphen"},
		{name: "consecutive hyphens", value: "ab--cd", code: "validation_hexaurl_consecutive_hyphens"},
		{name: "bytes too short", value: []byte("ab"), code: "validation_hexaurl_too_short"},
		{name: "wrong type", value: 42, code: "validation_hexaurl_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errorCode(t, err))
		})
	}
}

func TestHexaURLPointer(t *testing.T) {
	s := "ab"
	err := HexaURL(nil).Validate(&s)
	assert.Equal(t, "validation_hexaurl_too_short", errorCode(t, err))

	s = "abc"
	assert.NoError(t, HexaURL(nil).Validate(&s))
}

func TestHexaURLMessages(t *testing.T) {
	err := HexaURL(nil).Validate("ab")
	assert.EqualError(t, err, "the length must be no less than 3")

	err = HexaURL(nil).Validate("abcdefghijklmnopqrstuvwxyz")
	assert.EqualError(t, err, "the length must be no more than 21")

	err = HexaURL(nil).Error("not a valid handle").Validate("ab__")
	assert.EqualError(t, err, "not a valid handle")
	assert.Equal(t, "validation_hexaurl_invalid_character", errorCode(t, err))
}

func TestHexaURLCustomConfig(t *testing.T) {
	cfg, err := hexaurl.NewBuilder(16).
		Composition(hexaurl.AlphanumericUnderscore).
		Delimiters(hexaurl.DelimiterRules{AllowTrailingUnderscore: true}).
		Build()
	require.NoError(t, err)
	rule := HexaURL(cfg)

	assert.NoError(t, rule.Validate("snake_case_"))
	assert.Equal(t, "validation_hexaurl_leading_trailing_underscore", errorCode(t, rule.Validate("_snake")))
	assert.Equal(t, "validation_hexaurl_consecutive_underscores", errorCode(t, rule.Validate("a__b")))
	assert.Equal(t, "validation_hexaurl_invalid_character", errorCode(t, rule.Validate("kebab-case")))

	minimal := HexaURL(hexaurl.Minimal())
	assert.NoError(t, minimal.Validate("_-x-_"))
	assert.Equal(t, "validation_hexaurl_invalid_character", errorCode(t, minimal.Validate("a b")))

	adj := HexaURL(cfgWithHyphenUnderscore(t))
	assert.Equal(t, "validation_hexaurl_adjacent_hyphen_underscore", errorCode(t, adj.Validate("a-_b")))
	assert.Equal(t, "validation_hexaurl_consecutive_underscores", errorCode(t, adj.Validate("a__b")))
	assert.Equal(t, "validation_hexaurl_leading_trailing_underscore", errorCode(t, adj.Validate("ab_")))
}

func cfgWithHyphenUnderscore(t *testing.T) *hexaurl.Config {
	cfg, err := hexaurl.NewBuilder(16).Composition(hexaurl.AlphanumericHyphenUnderscore).Build()
	require.NoError(t, err)
	return cfg
}

type signupRequest struct {
	Username string  `json:"username"`
	Handle   *string `json:"handle"`
	Slug     []byte  `json:"slug"`
}

func (r *signupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, HexaURL(nil)),
		validation.Field(&r.Handle, HexaURL(hexaurl.Minimal())),
		validation.Field(&r.Slug, HexaURL(nil)),
	)
}

func TestValidateStruct(t *testing.T) {
	handle := "a b"
	req := &signupRequest{Username: "ab", Handle: &handle, Slug: []byte("ok-slug")}

	err := req.Validate()
	require.Error(t, err)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
	assert.Equal(t, "validation_hexaurl_too_short", errorCode(t, errs["username"]))
	assert.Equal(t, "validation_hexaurl_invalid_character", errorCode(t, errs["handle"]))

	handle = "a_b"
	req.Username = "alice"
	assert.NoError(t, req.Validate())

	req.Username = ""
	err = req.Validate()
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "validation_required", errorCode(t, errs["username"]))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "validation_hexaurl_too_short", Code(hexaurl.Validate("ab")))
	assert.Equal(t, "validation_hexaurl_adjacent_hyphen_underscore", Code(cfgWithHyphenUnderscore(t).Validate("a_-b")))
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "", Code(hexaurl.ErrMalformed))
}
