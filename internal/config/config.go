// Package config provides the hexaurl command line profile through environment
// variables, a .env file or a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/axiomhq/hexaurl"
)

// Unbounded marks a length bound that is not set.
const Unbounded = -1

// Preset names.
const (
	PresetDefault = "default"
	PresetMinimal = "minimal"
	PresetCustom  = "custom"
)

// Profile holds the settings a hexaurl.Config is compiled from.
type Profile struct {
	// Size is the buffer size in bytes.
	Size int `json:"size" yaml:"size"`
	// MinLength is the minimum accepted length, or Unbounded.
	MinLength int `json:"min_length" yaml:"min_length"`
	// MaxLength is the maximum accepted length, or Unbounded.
	MaxLength int `json:"max_length" yaml:"max_length"`
	// Composition overrides the preset composition when set, e.g. "alphanumeric-hyphen".
	Composition string `json:"composition" yaml:"composition"`
	// Preset is the starting point: "default", "minimal" or "custom".
	Preset string `json:"preset" yaml:"preset"`
	// Delimiters lists the allowed delimiter placements, e.g. "leading-hyphen".
	// When set it replaces the preset rules.
	Delimiters []string `json:"delimiters" yaml:"delimiters"`

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Defaults returns the profile used when nothing is configured.
func Defaults() *Profile {
	return &Profile{
		Size:      hexaurl.DefaultSize,
		MinLength: Unbounded,
		MaxLength: Unbounded,
		Preset:    PresetDefault,
		LogLevel:  "info",
	}
}

// Load loads the profile from environment variables and .env file.
func Load() *Profile {
	loadDotEnv()

	return &Profile{
		Size:        env.GetInt("HEXAURL_SIZE", hexaurl.DefaultSize),
		MinLength:   env.GetInt("HEXAURL_MIN_LENGTH", Unbounded),
		MaxLength:   env.GetInt("HEXAURL_MAX_LENGTH", Unbounded),
		Composition: env.GetString("HEXAURL_COMPOSITION", ""),
		Preset:      env.GetString("HEXAURL_PRESET", PresetDefault),
		Delimiters:  splitList(env.GetString("HEXAURL_DELIMITERS", "")),
		LogLevel:    env.GetString("LOG_LEVEL", "info"),
	}
}

// LoadFile reads a YAML profile. Fields missing from the file keep their
// Defaults values; unknown fields are an error.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	p := Defaults()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	p.Delimiters = normalizeList(p.Delimiters)
	return p, nil
}

// Validate checks the profile fields that do not depend on the codec.
func (p *Profile) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Size, validation.Required, validation.Min(1)),
		validation.Field(&p.Preset, validation.In(PresetDefault, PresetMinimal, PresetCustom)),
		validation.Field(&p.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Compile validates the profile and builds the hexaurl.Config it describes.
func (p *Profile) Compile() (*hexaurl.Config, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	b := hexaurl.NewBuilder(p.Size)
	switch p.Preset {
	case PresetDefault, "":
		b.MinLength(hexaurl.DefaultMinLength)
	case PresetMinimal:
		b.Composition(hexaurl.AlphanumericHyphenUnderscore).Delimiters(hexaurl.AllDelimitersAllowed())
	}

	if p.MinLength >= 0 {
		b.MinLength(p.MinLength)
	}
	if p.MaxLength >= 0 {
		b.MaxLength(p.MaxLength)
	}
	if p.Composition != "" {
		comp, err := hexaurl.ParseComposition(p.Composition)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		b.Composition(comp)
	}
	if len(p.Delimiters) > 0 {
		rules, err := hexaurl.ParseDelimiterRules(p.Delimiters)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		b.Delimiters(rules)
	}

	cfg, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalizeList(strings.Split(s, ","))
}

func normalizeList(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
