package hexaurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name    string
		builder *Builder
		want    error
	}{
		{"zero size", NewBuilder(0), ErrInvalidSize},
		{"negative size", NewBuilder(-4), ErrInvalidSize},
		{"size before range", NewBuilder(0).MinLength(10).MaxLength(5), ErrInvalidSize},
		{"unknown composition", NewBuilder(16).Composition(Composition(9)), ErrInvalidComposition},
		{"composition before range", NewBuilder(16).Composition(Composition(9)).MinLength(10).MaxLength(5), ErrInvalidComposition},
		{"negative min", NewBuilder(16).MinLength(-1), ErrLengthRange},
		{"negative max", NewBuilder(16).MaxLength(-1), ErrLengthRange},
		{"min above max", NewBuilder(16).MinLength(10).MaxLength(5), ErrLengthRange},
		{"min above capacity", NewBuilder(3).MinLength(5), ErrCompiledLengthRange},
		{"min above clamped max", NewBuilder(3).MinLength(5).MaxLength(30), ErrCompiledLengthRange},
		{"default preset on tiny buffer", NewBuilder(2).MinLength(DefaultMinLength), ErrCompiledLengthRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := tc.builder.Build()
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfigErrorBounds(t *testing.T) {
	_, err := NewBuilder(16).MinLength(10).MaxLength(5).Build()
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 10, ce.Min)
	assert.Equal(t, 5, ce.Max)

	_, err = NewBuilder(3).MinLength(5).MaxLength(30).Build()
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCompiledLengthRange, ce.Err)
	assert.Equal(t, 4, ce.Max, "reported maximum is the clamped one")
	assert.EqualError(t, err, "hexaurl: minimum length exceeds effective maximum length (min 5, max 4)")
}

func TestBuildClampsMax(t *testing.T) {
	cfg, err := NewBuilder(16).MaxLength(100).Build()
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.EffectiveMaxLength())
	maxLen, ok := cfg.MaxLength()
	assert.True(t, ok)
	assert.Equal(t, 100, maxLen)
	_, ok = cfg.MinLength()
	assert.False(t, ok)

	cfg, err = NewBuilder(16).MinLength(4).MaxLength(8).Build()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.EffectiveMaxLength())

	// min == max is a valid, fixed-length configuration.
	cfg, err = NewBuilder(16).MinLength(21).MaxLength(21).Build()
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.EffectiveMaxLength())
}

func TestBuildIdempotent(t *testing.T) {
	b := NewBuilder(32).
		MinLength(2).
		MaxLength(12).
		Composition(AlphanumericUnderscore).
		Delimiters(DelimiterRules{AllowTrailingUnderscore: true})

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)

	// The builder can be changed after Build without affecting earlier configs.
	b.MaxLength(20)
	assert.Equal(t, 12, first.EffectiveMaxLength())
}

func TestPresets(t *testing.T) {
	def := Default()
	assert.Equal(t, DefaultSize, def.Size())
	assert.Equal(t, 21, def.Capacity())
	minLen, ok := def.MinLength()
	assert.True(t, ok)
	assert.Equal(t, 3, minLen)
	_, ok = def.MaxLength()
	assert.False(t, ok)
	assert.Equal(t, 21, def.EffectiveMaxLength())
	assert.Equal(t, AlphanumericHyphen, def.Composition())
	assert.Equal(t, DelimiterRules{}, def.Delimiters())

	m := Minimal()
	_, ok = m.MinLength()
	assert.False(t, ok)
	assert.Equal(t, AlphanumericHyphenUnderscore, m.Composition())
	assert.Equal(t, AllDelimitersAllowed(), m.Delimiters())

	for _, size := range []int{8, 16, 32, 64, 128, 256} {
		cfg, err := NewDefaultConfig(size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, Capacity(size), cfg.EffectiveMaxLength())

		cfg, err = NewMinimalConfig(size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, size, cfg.Size())
	}
}

func TestNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, DefaultSize, cfg.Size())
	assert.Equal(t, AlphanumericHyphen, cfg.Composition())
	assert.ErrorIs(t, cfg.Validate("ab"), ErrTooShort)

	got, err := cfg.Encode("abc")
	require.NoError(t, err)
	want, err := Encode("abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigString(t *testing.T) {
	assert.Equal(t,
		"size=16 min=3 max=21 composition=alphanumeric-hyphen delimiters=[]",
		Default().String())
	assert.Equal(t,
		"size=16 min=none max=21 composition=alphanumeric-hyphen-underscore delimiters=["+
			"leading-hyphen,trailing-hyphen,leading-underscore,trailing-underscore,"+
			"consecutive-hyphens,consecutive-underscores,adjacent-hyphen-underscore]",
		Minimal().String())

	cfg, err := NewBuilder(8).
		MaxLength(6).
		Composition(Alphanumeric).
		Delimiters(DelimiterRules{AllowConsecutiveHyphens: true}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "size=8 min=none max=6 composition=alphanumeric delimiters=[consecutive-hyphens]", cfg.String())
}

func TestComposition(t *testing.T) {
	cases := []struct {
		comp       Composition
		name       string
		hyphen     bool
		underscore bool
	}{
		{Alphanumeric, "alphanumeric", false, false},
		{AlphanumericHyphen, "alphanumeric-hyphen", true, false},
		{AlphanumericUnderscore, "alphanumeric-underscore", false, true},
		{AlphanumericHyphenUnderscore, "alphanumeric-hyphen-underscore", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.comp.String())
			assert.Equal(t, tc.hyphen, tc.comp.AllowsHyphen())
			assert.Equal(t, tc.underscore, tc.comp.AllowsUnderscore())

			text, err := tc.comp.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tc.name, string(text))

			var got Composition
			require.NoError(t, got.UnmarshalText([]byte(tc.name)))
			assert.Equal(t, tc.comp, got)
		})
	}

	got, err := ParseComposition("Alphanumeric-Hyphen")
	require.NoError(t, err)
	assert.Equal(t, AlphanumericHyphen, got)

	_, err = ParseComposition("hexadecimal")
	assert.EqualError(t, err, `hexaurl: unknown composition "hexadecimal"`)

	assert.Equal(t, "Composition(7)", Composition(7).String())
	_, err = Composition(7).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidComposition)
}

func TestParseDelimiterRules(t *testing.T) {
	rules, err := ParseDelimiterRules([]string{"leading-hyphen", "consecutive-underscores"})
	require.NoError(t, err)
	assert.Equal(t, DelimiterRules{AllowLeadingHyphen: true, AllowConsecutiveUnderscores: true}, rules)

	rules, err = ParseDelimiterRules([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, AllDelimitersAllowed(), rules)

	rules, err = ParseDelimiterRules(nil)
	require.NoError(t, err)
	assert.Equal(t, DelimiterRules{}, rules)

	_, err = ParseDelimiterRules([]string{"trailing-hyphen", "sideways-hyphen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sideways-hyphen"`)
}

func TestDelimiterFlagsRoundTrip(t *testing.T) {
	for f := delimFlags(0); f <= flagsAll; f++ {
		assert.Equal(t, f, f.rules().flags())
	}
	assert.Len(t, delimiterRuleOrder, len(delimiterRuleNames)-1)
	for _, name := range delimiterRuleOrder {
		assert.Contains(t, delimiterRuleNames, name)
	}
}
