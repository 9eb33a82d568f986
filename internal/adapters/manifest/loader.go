// Package manifest implements loading, scanning and rewriting of
// pyproject.toml manifests.
package manifest

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileName is the manifest file looked up in every subproject directory.
const FileName = "pyproject.toml"

// Loader implements ports.ManifestLoader for pyproject.toml files.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader { return &Loader{} }

// Load reads and parses the manifest at path. The dependency array is
// extracted from [project].dependencies; its absence is recorded on the
// returned manifest, not treated as an error.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		err = zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	deps, ok := dependencyArray(doc)
	return &domain.Manifest{
		Path:            path,
		Dependencies:    deps,
		HasDependencies: ok,
		Raw:             raw,
	}, nil
}

// dependencyArray extracts [project].dependencies from a decoded document.
// The second result is false when the table or array is absent, or when the
// array holds anything other than strings.
func dependencyArray(doc map[string]any) ([]string, bool) {
	project, ok := doc["project"].(map[string]any)
	if !ok {
		return nil, false
	}
	arr, ok := project["dependencies"].([]any)
	if !ok {
		return nil, false
	}
	deps := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		deps = append(deps, s)
	}
	return deps, true
}
