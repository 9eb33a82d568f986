package domain

import "sort"

// Merge produces the final root dependency list from the scanned
// declarations, the current root list and the policy.
//
// Existing root declarations are kept as-is when they are essential, or when
// they are root-only (no subproject declares the package) and not
// transitive. Every remaining scanned package contributes exactly one
// declaration, chosen by MostPermissive under conflict. The result is
// sorted by canonical name and is a pure function of its inputs.
func Merge(set *DeclarationSet, rootDeps []string, p Policy) []string {
	merged := make([]string, 0, set.Len())
	added := map[string]struct{}{}

	for _, dep := range rootDeps {
		name := CanonicalName(dep)
		if _, ok := added[name]; ok {
			continue
		}
		if p.IsEssential(name) || (!set.Contains(name) && !p.IsTransitive(name)) {
			merged = append(merged, dep)
			added[name] = struct{}{}
		}
	}

	for _, name := range set.Packages() {
		if _, ok := added[name]; ok {
			continue
		}
		merged = append(merged, MostPermissive(set.Declarations(name)))
		added[name] = struct{}{}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return CanonicalName(merged[i]) < CanonicalName(merged[j])
	})
	return merged
}

// MostPermissive picks one declaration from a set of conflicting
// declarations for the same package. Ranking, most permissive first:
//
//  1. a declaration with a parseable version beats one without (the
//     unknown version is maximally restrictive),
//  2. fewer operator tokens,
//  3. lower minimum version,
//  4. first-seen order.
//
// Upper-bound exclusions are not ranked: ">=1.0,<2.0" and ">=1.0,<3.0" tie
// on operator count and minimum version, and first-seen order decides.
func MostPermissive(decls []string) string {
	if len(decls) == 0 {
		return ""
	}
	best := decls[0]
	for _, decl := range decls[1:] {
		if rankLess(decl, best) {
			best = decl
		}
	}
	return best
}

// rankLess reports whether a is strictly more permissive than b. Strictness
// keeps the earlier declaration on ties.
func rankLess(a, b string) bool {
	va, vb := VersionOf(a), VersionOf(b)
	if va.Known() != vb.Known() {
		return va.Known()
	}
	ca, cb := OperatorCount(a), OperatorCount(b)
	if ca != cb {
		return ca < cb
	}
	return va.Compare(vb) < 0
}
