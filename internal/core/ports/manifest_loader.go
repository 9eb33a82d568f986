package ports

import "go.trai.ch/depsync/internal/core/domain"

// ManifestLoader defines the interface for reading a project manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at the given path.
	Load(path string) (*domain.Manifest, error)
}
