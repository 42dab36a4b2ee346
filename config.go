package hexaurl

import (
	"fmt"
	"strings"
)

const (
	// DefaultSize is the buffer size, in bytes, of the default configuration
	// and of the HexaURL value type. It holds up to 21 symbols.
	DefaultSize = 16

	// DefaultMinLength is the minimum length of the default configuration.
	DefaultMinLength = 3
)

// Composition selects which delimiters are members of the alphabet. Letters
// and digits are always allowed.
type Composition uint8

const (
	// Alphanumeric allows letters and digits.
	Alphanumeric Composition = iota
	// AlphanumericHyphen allows letters, digits and '-'. It is the default.
	AlphanumericHyphen
	// AlphanumericUnderscore allows letters, digits and '_'.
	AlphanumericUnderscore
	// AlphanumericHyphenUnderscore allows letters, digits, '-' and '_'.
	AlphanumericHyphenUnderscore
)

var compositionNames = [...]string{
	Alphanumeric:                 "alphanumeric",
	AlphanumericHyphen:           "alphanumeric-hyphen",
	AlphanumericUnderscore:       "alphanumeric-underscore",
	AlphanumericHyphenUnderscore: "alphanumeric-hyphen-underscore",
}

func (c Composition) valid() bool { return int(c) < len(compositionNames) }

// AllowsHyphen reports whether '-' is a member of the composition.
func (c Composition) AllowsHyphen() bool {
	return c == AlphanumericHyphen || c == AlphanumericHyphenUnderscore
}

// AllowsUnderscore reports whether '_' is a member of the composition.
func (c Composition) AllowsUnderscore() bool {
	return c == AlphanumericUnderscore || c == AlphanumericHyphenUnderscore
}

func (c Composition) String() string {
	if !c.valid() {
		return fmt.Sprintf("Composition(%d)", uint8(c))
	}
	return compositionNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Composition) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, ErrInvalidComposition
	}
	return []byte(compositionNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively.
func (c *Composition) UnmarshalText(text []byte) error {
	comp, err := ParseComposition(string(text))
	if err != nil {
		return err
	}
	*c = comp
	return nil
}

// ParseComposition returns the Composition with the given name, such as
// "alphanumeric-hyphen".
func ParseComposition(name string) (Composition, error) {
	for i, n := range compositionNames {
		if strings.EqualFold(n, name) {
			return Composition(i), nil
		}
	}
	return 0, &unknownNameError{kind: "composition", name: name}
}

type unknownNameError struct {
	kind string
	name string
}

func (e *unknownNameError) Error() string {
	return fmt.Sprintf("hexaurl: unknown %s %q", e.kind, e.name)
}

// Builder collects configuration parameters. It is mutable and not safe for
// concurrent use; Build compiles it into an immutable Config.
type Builder struct {
	size        int
	minLength   int
	maxLength   int
	hasMin      bool
	hasMax      bool
	composition Composition
	delimiters  DelimiterRules
}

// NewBuilder returns a Builder for buffers of size bytes with no length
// bounds, the AlphanumericHyphen composition and the strictest delimiter rules.
func NewBuilder(size int) *Builder {
	return &Builder{size: size, composition: AlphanumericHyphen}
}

// MinLength sets the minimum accepted length.
func (b *Builder) MinLength(n int) *Builder {
	b.minLength, b.hasMin = n, true
	return b
}

// MaxLength sets the maximum accepted length. Values above the buffer
// capacity are clamped at Build.
func (b *Builder) MaxLength(n int) *Builder {
	b.maxLength, b.hasMax = n, true
	return b
}

// Composition sets the composition policy.
func (b *Builder) Composition(c Composition) *Builder {
	b.composition = c
	return b
}

// Delimiters sets the delimiter rules.
func (b *Builder) Delimiters(r DelimiterRules) *Builder {
	b.delimiters = r
	return b
}

// Build validates the collected parameters and compiles them into a Config.
//
// A minimum above an explicit maximum is reported as ErrLengthRange before
// any clamping. A minimum above the maximum clamped to the buffer capacity is
// reported as ErrCompiledLengthRange.
func (b *Builder) Build() (*Config, error) {
	if b.size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, b.size)
	}
	if !b.composition.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidComposition, uint8(b.composition))
	}
	if (b.hasMin && b.minLength < 0) || (b.hasMax && b.maxLength < 0) {
		return nil, &ConfigError{Err: ErrLengthRange, Min: b.minLength, Max: b.maxLength}
	}
	if b.hasMin && b.hasMax && b.minLength > b.maxLength {
		return nil, &ConfigError{Err: ErrLengthRange, Min: b.minLength, Max: b.maxLength}
	}

	ceiling := Capacity(b.size)
	effectiveMax := ceiling
	if b.hasMax && b.maxLength < ceiling {
		effectiveMax = b.maxLength
	}
	if b.hasMin && b.minLength > effectiveMax {
		return nil, &ConfigError{Err: ErrCompiledLengthRange, Min: b.minLength, Max: effectiveMax}
	}

	c := &Config{
		size:         b.size,
		minLength:    b.minLength,
		maxLength:    b.maxLength,
		hasMin:       b.hasMin,
		hasMax:       b.hasMax,
		effectiveMax: effectiveMax,
		composition:  b.composition,
		flags:        b.delimiters.flags(),
	}
	if !b.hasMin {
		c.minLength = 0
	}
	if b.composition.AllowsHyphen() {
		c.hyphenMask = hiBits
	}
	if b.composition.AllowsUnderscore() {
		c.underscoreMask = hiBits
	}
	return c, nil
}

// Config is a compiled, immutable configuration bound to one buffer size.
// A Config is safe for concurrent use and is meant to be built once and
// shared.
//
// A nil *Config behaves as Default().
type Config struct {
	size         int
	minLength    int // 0 when hasMin is false
	maxLength    int // raw value as requested, before clamping
	hasMin       bool
	hasMax       bool
	effectiveMax int
	composition  Composition
	flags        delimFlags

	// Composition scan masks: hiBits when the delimiter is allowed, 0 otherwise.
	hyphenMask     uint64
	underscoreMask uint64
}

var (
	defaultConfig = mustBuild(NewDefaultConfig(DefaultSize))
	minimalConfig = mustBuild(NewMinimalConfig(DefaultSize))
)

func mustBuild(c *Config, err error) *Config {
	if err != nil {
		panic(err)
	}
	return c
}

// NewDefaultConfig returns the default configuration for buffers of size
// bytes: minimum length 3, maximum set by capacity, AlphanumericHyphen and
// the strictest delimiter rules. It fails when the buffer cannot hold 3 symbols.
func NewDefaultConfig(size int) (*Config, error) {
	return NewBuilder(size).MinLength(DefaultMinLength).Build()
}

// NewMinimalConfig returns the most permissive configuration for buffers of
// size bytes: no minimum length, maximum set by capacity,
// AlphanumericHyphenUnderscore and every delimiter placement allowed.
func NewMinimalConfig(size int) (*Config, error) {
	return NewBuilder(size).
		Composition(AlphanumericHyphenUnderscore).
		Delimiters(AllDelimitersAllowed()).
		Build()
}

// Default returns the shared default configuration for DefaultSize buffers.
func Default() *Config { return defaultConfig }

// Minimal returns the shared minimal configuration for DefaultSize buffers.
func Minimal() *Config { return minimalConfig }

func (c *Config) orDefault() *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}

// Size returns the buffer size in bytes.
func (c *Config) Size() int { return c.orDefault().size }

// Capacity returns the number of symbols a buffer of Size bytes can hold.
func (c *Config) Capacity() int { return Capacity(c.orDefault().size) }

// MinLength returns the configured minimum length, if any.
func (c *Config) MinLength() (int, bool) {
	c = c.orDefault()
	return c.minLength, c.hasMin
}

// MaxLength returns the maximum length as requested, before clamping, if any.
func (c *Config) MaxLength() (int, bool) {
	c = c.orDefault()
	return c.maxLength, c.hasMax
}

// EffectiveMaxLength returns the smaller of the requested maximum length and
// the buffer capacity.
func (c *Config) EffectiveMaxLength() int { return c.orDefault().effectiveMax }

// Composition returns the composition policy.
func (c *Config) Composition() Composition { return c.orDefault().composition }

// Delimiters returns a copy of the delimiter rules.
func (c *Config) Delimiters() DelimiterRules { return c.orDefault().flags.rules() }

func (c *Config) String() string {
	c = c.orDefault()
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%d min=", c.size)
	if c.hasMin {
		fmt.Fprintf(&sb, "%d", c.minLength)
	} else {
		sb.WriteString("none")
	}
	fmt.Fprintf(&sb, " max=%d composition=%s delimiters=[", c.effectiveMax, c.composition)
	first := true
	for _, name := range delimiterRuleOrder {
		if c.flags.has(delimiterRuleNames[name]) {
			if !first {
				sb.WriteByte(',')
			}
			sb.WriteString(name)
			first = false
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

var delimiterRuleOrder = []string{
	"leading-hyphen",
	"trailing-hyphen",
	"leading-underscore",
	"trailing-underscore",
	"consecutive-hyphens",
	"consecutive-underscores",
	"adjacent-hyphen-underscore",
}
