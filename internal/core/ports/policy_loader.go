package ports

import "go.trai.ch/depsync/internal/core/domain"

// PolicyLoader defines the interface for loading the sync policy.
//
//go:generate mockgen -source=policy_loader.go -destination=mocks/mock_policy_loader.go -package=mocks
type PolicyLoader interface {
	// Load reads the policy from the given working directory, falling back
	// to built-in defaults when no policy file exists.
	Load(cwd string) (domain.Policy, error)

	// LoadFile reads the policy from an explicit file path. Unlike Load, a
	// missing file is an error.
	LoadFile(path string) (domain.Policy, error)
}
