package domain

import "sort"

// DeclarationSet groups raw dependency declarations by canonical package
// name. Identical raw declarations collapse; distinct declarations for the
// same package are kept in first-seen order, which is the final determinism
// tie-break during conflict resolution.
type DeclarationSet struct {
	decls map[string][]string
}

// NewDeclarationSet creates an empty DeclarationSet.
func NewDeclarationSet() *DeclarationSet {
	return &DeclarationSet{decls: map[string][]string{}}
}

// Add records a raw declaration under its canonical name.
func (s *DeclarationSet) Add(decl string) {
	name := CanonicalName(decl)
	for _, existing := range s.decls[name] {
		if existing == decl {
			return
		}
	}
	s.decls[name] = append(s.decls[name], decl)
}

// Len returns the number of distinct packages.
func (s *DeclarationSet) Len() int { return len(s.decls) }

// Contains reports whether any declaration was recorded for the canonical name.
func (s *DeclarationSet) Contains(name string) bool {
	_, ok := s.decls[name]
	return ok
}

// Packages returns all canonical names, sorted.
func (s *DeclarationSet) Packages() []string {
	names := make([]string, 0, len(s.decls))
	for name := range s.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declarations returns the distinct raw declarations recorded for the
// canonical name, in first-seen order.
func (s *DeclarationSet) Declarations(name string) []string {
	return s.decls[name]
}

// Conflict is a package declared with more than one distinct constraint.
type Conflict struct {
	Name         string
	Declarations []string
}

// Conflicts returns every conflicting package, sorted by canonical name.
// Detection is diagnostic only; resolution happens in Merge.
func (s *DeclarationSet) Conflicts() []Conflict {
	var conflicts []Conflict
	for _, name := range s.Packages() {
		if decls := s.decls[name]; len(decls) > 1 {
			conflicts = append(conflicts, Conflict{Name: name, Declarations: decls})
		}
	}
	return conflicts
}
