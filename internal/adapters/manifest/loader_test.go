package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsync/internal/adapters/manifest"
	"go.trai.ch/depsync/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := manifest.NewLoader()

	t.Run("extracts the dependency array", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", `
[project]
name = "demo"
version = "0.1.0"
dependencies = [
    "numpy>=1.20",
    "requests",
]

[tool.ruff]
line-length = 100
`)

		m, err := loader.Load(path)
		require.NoError(t, err)
		assert.True(t, m.HasDependencies)
		assert.Equal(t, []string{"numpy>=1.20", "requests"}, m.Dependencies)
		assert.Equal(t, path, m.Path)
		assert.NotEmpty(t, m.Raw)
	})

	t.Run("empty array still counts as present", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", `
[project]
name = "demo"
dependencies = []
`)

		m, err := loader.Load(path)
		require.NoError(t, err)
		assert.True(t, m.HasDependencies)
		assert.Empty(t, m.Dependencies)
	})

	t.Run("missing dependencies array is recorded, not an error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", `
[project]
name = "demo"
`)

		m, err := loader.Load(path)
		require.NoError(t, err)
		assert.False(t, m.HasDependencies)
	})

	t.Run("missing project table is recorded, not an error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", `
[build-system]
requires = ["hatchling"]
`)

		m, err := loader.Load(path)
		require.NoError(t, err)
		assert.False(t, m.HasDependencies)
	})

	t.Run("non-string array entries are unusable", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", `
[project]
dependencies = [1, 2]
`)

		m, err := loader.Load(path)
		require.NoError(t, err)
		assert.False(t, m.HasDependencies)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestReadFailed.Error())
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "pyproject.toml", "not = [valid toml")

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})
}
