// Package config provides the policy loader for depsync.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PolicyFileName is the optional per-repository policy file.
const PolicyFileName = "depsync.yaml"

// Loader implements ports.PolicyLoader using a YAML file with built-in
// defaults for repositories that carry none.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader { return &Loader{} }

// policyFile is the YAML schema of depsync.yaml. Absent fields fall back to
// the corresponding default.
type policyFile struct {
	Root       string   `yaml:"root"`
	Categories []string `yaml:"categories"`
	Essential  []string `yaml:"essential"`
	Transitive []string `yaml:"transitive"`
	Writer     string   `yaml:"writer"`
}

// Default returns the built-in policy: the tutorial-category layout, the
// tetra-rp runtime as the essential root dependency, and its transitively
// supplied web stack excluded.
func Default() domain.Policy {
	return domain.Policy{
		Root: "pyproject.toml",
		Categories: []string{
			"01_getting_started",
			"02_advanced",
			"03_production",
			"04_integrations",
			"05_scaling",
			"06_real_world",
		},
		Essential:  []string{"tetra-rp", "tetra_rp"},
		Transitive: []string{"fastapi", "pydantic", "uvicorn"},
	}
}

// Load reads depsync.yaml from the working directory. A missing file yields
// the default policy; an unreadable or unparsable one is an error.
func (l *Loader) Load(cwd string) (domain.Policy, error) {
	path := filepath.Join(cwd, PolicyFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return l.LoadFile(path)
}

// LoadFile reads the policy from an explicit path. The file must exist.
func (l *Loader) LoadFile(path string) (domain.Policy, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrPolicyReadFailed.Error())
		return domain.Policy{}, zerr.With(readErr, "path", path)
	}

	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrPolicyParseFailed.Error())
		return domain.Policy{}, zerr.With(parseErr, "path", path)
	}

	if f.Root != "" {
		p.Root = f.Root
	}
	if f.Categories != nil {
		p.Categories = f.Categories
	}
	if f.Essential != nil {
		p.Essential = f.Essential
	}
	if f.Transitive != nil {
		p.Transitive = f.Transitive
	}
	if f.Writer != "" {
		p.Writer = f.Writer
	}
	return p, nil
}
