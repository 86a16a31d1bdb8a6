package path

import (
	"regexp"
	"strings"
)

var globMeta = strings.NewReplacer(
	".", `\.`,
	"+", `\+`,
	"(", `\(`,
	")", `\)`,
	"{", `\{`,
	"}", `\}`,
	"|", `\|`,
	"^", `\^`,
	"$", `\$`,
	"[", `\[`,
	"]", `\]`,
	`\`, `\\`,
)

// GlobToRegex compiles a shell-style glob (alphabet: '*' and '?' only, per
// spec §4.5.3) into an anchored, case-sensitive regexp matched against the
// full entry name. An empty pattern matches everything.
func GlobToRegex(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return regexp.Compile(".*")
	}

	var b strings.Builder
	b.WriteString("^")

	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(globMeta.Replace(string(r)))
		}
	}

	b.WriteString("$")

	return regexp.Compile(b.String())
}

// Match compiles pattern and reports whether name matches it. Prefer
// GlobToRegex directly when matching many names against the same pattern.
func Match(pattern, name string) (bool, error) {
	re, err := GlobToRegex(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(name), nil
}
