package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
)

// Scanner collects dependency declarations from subproject manifests under
// the policy's category directories. Subprojects are visited strictly
// sequentially; a failure in one subproject never aborts the scan.
type Scanner struct {
	loader ports.ManifestLoader
	logger ports.Logger
}

// NewScanner creates a Scanner.
func NewScanner(loader ports.ManifestLoader, logger ports.Logger) *Scanner {
	return &Scanner{loader: loader, logger: logger}
}

// Scan visits the immediate child directories of every category directory
// under root and loads each subproject manifest found there. Unreadable or
// unparsable manifests, and manifests without a dependency array, log a
// warning and are skipped. Declarations of transitive packages are excluded
// at insertion, so conflicts among them are never surfaced.
func (s *Scanner) Scan(root string, p domain.Policy) *domain.DeclarationSet {
	set := domain.NewDeclarationSet()

	for _, category := range p.Categories {
		dir := filepath.Join(root, category)
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Missing category directories are expected in partial checkouts.
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name(), FileName)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			m, err := s.loader.Load(path)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
				continue
			}
			if !m.HasDependencies {
				s.logger.Warn(fmt.Sprintf("skipping %s: %s", path, domain.ErrMissingDependencySection.Error()))
				continue
			}

			for _, dep := range m.Dependencies {
				if p.IsTransitive(domain.CanonicalName(dep)) {
					continue
				}
				set.Add(dep)
			}
		}
	}

	return set
}
