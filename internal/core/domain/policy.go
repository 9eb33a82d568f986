package domain

// Policy configures a sync run. It is an explicit value passed into the
// driver so the tool can be exercised with alternate configurations; there
// are no package-level mutable sets.
type Policy struct {
	// Root is the path of the root manifest, relative to the working directory.
	Root string

	// Categories are the top-level subproject-category directories to scan.
	Categories []string

	// Essential are packages that must survive in the merged root list even
	// when no subproject declares them.
	Essential []string

	// Transitive are packages assumed to be supplied indirectly; their
	// declarations are excluded at scan time unless also essential.
	Transitive []string

	// Writer selects the rewrite strategy by name ("structural" or
	// "textual"). Empty means structural.
	Writer string
}

// IsEssential reports whether the canonical name is in the essential set.
func (p Policy) IsEssential(name string) bool {
	return containsCanonical(p.Essential, name)
}

// IsTransitive reports whether the canonical name is in the transitive set.
func (p Policy) IsTransitive(name string) bool {
	return containsCanonical(p.Transitive, name)
}

func containsCanonical(entries []string, name string) bool {
	for _, e := range entries {
		if CanonicalName(e) == name {
			return true
		}
	}
	return false
}
