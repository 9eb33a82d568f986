package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var versionToken = regexp.MustCompile(`\d+(?:\.\d+)*`)

// Version is a dotted numeric version with a total ordering. The zero value
// is the unknown version, which sorts after every known version so that a
// declaration without a parseable version is treated as maximally
// restrictive and never preferred during conflict resolution.
type Version struct {
	parts []int
	known bool
}

// ParseVersion parses a dotted numeric string such as "1.20.3".
// Anything that is not a dotted run of digits yields the unknown version.
func ParseVersion(s string) Version {
	if !versionToken.MatchString(s) || versionToken.FindString(s) != s {
		return Version{}
	}
	fields := strings.Split(s, ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Version{}
		}
		parts[i] = n
	}
	return Version{parts: parts, known: true}
}

// VersionOf extracts the first dotted numeric token found anywhere in a raw
// declaration, e.g. "numpy>=1.20,<2.0" yields 1.20. Declarations without a
// numeric token yield the unknown version.
func VersionOf(decl string) Version {
	tok := versionToken.FindString(decl)
	if tok == "" {
		return Version{}
	}
	return ParseVersion(tok)
}

// Known reports whether the version was parsed from a numeric token.
func (v Version) Known() bool { return v.known }

// Compare orders versions numerically, component by component, with missing
// trailing components treated as zero. The unknown version compares after
// every known version; two unknown versions are equal.
func (v Version) Compare(o Version) int {
	if v.known != o.known {
		if v.known {
			return -1
		}
		return 1
	}
	if !v.known {
		return 0
	}
	n := len(v.parts)
	if len(o.parts) > n {
		n = len(o.parts)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(o.parts) {
			b = o.parts[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the version in dotted form, or "unknown".
func (v Version) String() string {
	if !v.known {
		return "unknown"
	}
	fields := make([]string, len(v.parts))
	for i, p := range v.parts {
		fields[i] = strconv.Itoa(p)
	}
	return strings.Join(fields, ".")
}
