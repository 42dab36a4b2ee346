package hexaurl

// DelimiterRules lists which delimiter placements are permitted. The zero
// value forbids all of them.
type DelimiterRules struct {
	AllowLeadingHyphen            bool
	AllowTrailingHyphen           bool
	AllowLeadingUnderscore        bool
	AllowTrailingUnderscore       bool
	AllowConsecutiveHyphens       bool
	AllowConsecutiveUnderscores   bool
	AllowAdjacentHyphenUnderscore bool
}

// AllDelimitersAllowed returns rules that permit every delimiter placement.
func AllDelimitersAllowed() DelimiterRules {
	return DelimiterRules{
		AllowLeadingHyphen:            true,
		AllowTrailingHyphen:           true,
		AllowLeadingUnderscore:        true,
		AllowTrailingUnderscore:       true,
		AllowConsecutiveHyphens:       true,
		AllowConsecutiveUnderscores:   true,
		AllowAdjacentHyphenUnderscore: true,
	}
}

// delimFlags packs DelimiterRules into one byte, one bit per rule.
type delimFlags uint8

const (
	flagLeadingHyphen delimFlags = 1 << iota
	flagTrailingHyphen
	flagLeadingUnderscore
	flagTrailingUnderscore
	flagConsecutiveHyphens
	flagConsecutiveUnderscores
	flagAdjacentHyphenUnderscore

	flagsAll = flagLeadingHyphen | flagTrailingHyphen | flagLeadingUnderscore |
		flagTrailingUnderscore | flagConsecutiveHyphens | flagConsecutiveUnderscores |
		flagAdjacentHyphenUnderscore
)

func (r DelimiterRules) flags() delimFlags {
	var f delimFlags
	set := func(on bool, bit delimFlags) {
		if on {
			f |= bit
		}
	}
	set(r.AllowLeadingHyphen, flagLeadingHyphen)
	set(r.AllowTrailingHyphen, flagTrailingHyphen)
	set(r.AllowLeadingUnderscore, flagLeadingUnderscore)
	set(r.AllowTrailingUnderscore, flagTrailingUnderscore)
	set(r.AllowConsecutiveHyphens, flagConsecutiveHyphens)
	set(r.AllowConsecutiveUnderscores, flagConsecutiveUnderscores)
	set(r.AllowAdjacentHyphenUnderscore, flagAdjacentHyphenUnderscore)
	return f
}

func (f delimFlags) has(bit delimFlags) bool { return f&bit != 0 }

func (f delimFlags) rules() DelimiterRules {
	return DelimiterRules{
		AllowLeadingHyphen:            f.has(flagLeadingHyphen),
		AllowTrailingHyphen:           f.has(flagTrailingHyphen),
		AllowLeadingUnderscore:        f.has(flagLeadingUnderscore),
		AllowTrailingUnderscore:       f.has(flagTrailingUnderscore),
		AllowConsecutiveHyphens:       f.has(flagConsecutiveHyphens),
		AllowConsecutiveUnderscores:   f.has(flagConsecutiveUnderscores),
		AllowAdjacentHyphenUnderscore: f.has(flagAdjacentHyphenUnderscore),
	}
}

// delimiterRuleNames maps the textual rule names used by configuration files
// and the command line to their flag bits.
var delimiterRuleNames = map[string]delimFlags{
	"leading-hyphen":             flagLeadingHyphen,
	"trailing-hyphen":            flagTrailingHyphen,
	"leading-underscore":         flagLeadingUnderscore,
	"trailing-underscore":        flagTrailingUnderscore,
	"consecutive-hyphens":        flagConsecutiveHyphens,
	"consecutive-underscores":    flagConsecutiveUnderscores,
	"adjacent-hyphen-underscore": flagAdjacentHyphenUnderscore,
	"all":                        flagsAll,
}

// ParseDelimiterRules builds rules from a list of rule names such as
// "leading-hyphen" or "consecutive-underscores". The name "all" enables every
// rule. Unknown names are reported as an error.
func ParseDelimiterRules(names []string) (DelimiterRules, error) {
	var f delimFlags
	for _, name := range names {
		bit, ok := delimiterRuleNames[name]
		if !ok {
			return DelimiterRules{}, &unknownNameError{kind: "delimiter rule", name: name}
		}
		f |= bit
	}
	return f.rules(), nil
}
