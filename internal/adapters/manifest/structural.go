package manifest

import (
	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// StructuralStrategy rewrites the manifest by decoding the whole document,
// replacing only the project dependency array, and re-serializing. This is
// semantically lossless for any valid document, though the serializer does
// not preserve comments or key order.
type StructuralStrategy struct{}

// Name implements ports.RewriteStrategy.
func (s *StructuralStrategy) Name() string { return "structural" }

// Rewrite implements ports.RewriteStrategy.
func (s *StructuralStrategy) Rewrite(doc []byte, deps []string) ([]byte, error) {
	var root map[string]any
	if err := toml.Unmarshal(doc, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	project, ok := root["project"].(map[string]any)
	if !ok {
		project = map[string]any{}
		root["project"] = project
	}
	project["dependencies"] = deps

	out, err := toml.Marshal(root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return out, nil
}
