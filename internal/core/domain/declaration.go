// Package domain contains the pure model for dependency aggregation:
// declaration parsing, version ordering, conflict detection and merging.
package domain

import "strings"

// operators are the version-comparison tokens recognized in a dependency
// declaration, e.g. "numpy>=1.20". Two-character tokens are listed before
// their one-character prefixes.
var operators = []string{">=", "<=", "==", "!=", "~=", ">", "<"}

// DeclarationName returns the package-name portion of a raw declaration,
// cut at the first version operator. A declaration without operators is the
// trimmed string itself.
func DeclarationName(decl string) string {
	cut := len(decl)
	for _, op := range operators {
		if i := strings.Index(decl, op); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(decl[:cut])
}

// CanonicalName normalizes a declaration to its package identity: the name
// portion, lowercased, with underscores mapped to hyphens. "Foo_Bar" and
// "foo-bar>=1.0" canonicalize to the same name.
func CanonicalName(decl string) string {
	name := strings.ToLower(DeclarationName(decl))
	return strings.ReplaceAll(name, "_", "-")
}

// OperatorCount counts version-operator tokens present in a declaration by
// substring membership, so ">=1.0" counts both ">=" and ">". Only the
// relative ordering of counts matters to the merger.
func OperatorCount(decl string) int {
	n := 0
	for _, op := range operators {
		if strings.Contains(decl, op) {
			n++
		}
	}
	return n
}
