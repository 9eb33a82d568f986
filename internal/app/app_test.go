package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsync/internal/adapters/config"
	"go.trai.ch/depsync/internal/adapters/manifest"
	"go.trai.ch/depsync/internal/app"
	"go.trai.ch/depsync/internal/core/domain"
)

type stubLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *stubLogger) Info(string) {}

func (l *stubLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *stubLogger) Error(error) {}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// fixture builds a repository with two example subprojects holding a numpy
// conflict, a transitive requests declaration, and an essential tetra-rp
// root dependency.
func fixture(t *testing.T, extraPolicy string) string {
	t.Helper()
	dir := t.TempDir()

	write(t, filepath.Join(dir, "depsync.yaml"), `
categories:
  - 01_getting_started
  - 02_advanced
essential:
  - tetra-rp
transitive:
  - requests
`+extraPolicy)

	write(t, filepath.Join(dir, "01_getting_started", "hello", "pyproject.toml"), `
[project]
dependencies = ["numpy>=1.20", "requests"]
`)
	write(t, filepath.Join(dir, "02_advanced", "video", "pyproject.toml"), `
[project]
dependencies = ["numpy>=1.18", "pandas==2.1"]
`)
	write(t, filepath.Join(dir, "pyproject.toml"), `[project]
name = "tetra-examples"
version = "0.1.0"
dependencies = [
    "tetra-rp",
]

[tool.ruff]
line-length = 100
`)
	return dir
}

func newApp(out *bytes.Buffer, log *stubLogger) *app.App {
	return app.New(config.NewLoader(), manifest.NewLoader(), log, out)
}

func TestApp_Sync_DryRun(t *testing.T) {
	dir := fixture(t, "")
	before := digest(t, filepath.Join(dir, "pyproject.toml"))

	out := &bytes.Buffer{}
	a := newApp(out, &stubLogger{})

	err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, DryRun: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Found 2 unique packages")
	assert.Contains(t, out.String(), "Version conflicts detected:")
	assert.Contains(t, out.String(), "numpy:")
	assert.Contains(t, out.String(), "Dry Run Mode")
	// requests is transitive, so it neither appears nor conflicts.
	assert.NotContains(t, out.String(), "requests")
	assert.Equal(t, before, digest(t, filepath.Join(dir, "pyproject.toml")))
}

func TestApp_Sync_Check(t *testing.T) {
	dir := fixture(t, "")

	t.Run("drift is an error", func(t *testing.T) {
		a := newApp(&bytes.Buffer{}, &stubLogger{})
		err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, Check: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDriftDetected))
	})

	t.Run("in-sync manifest passes", func(t *testing.T) {
		// Bring the root up to date first, then check again.
		a := newApp(&bytes.Buffer{}, &stubLogger{})
		require.NoError(t, a.Sync(context.Background(), app.SyncOptions{Dir: dir}))

		err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, Check: true})
		require.NoError(t, err)
	})
}

func TestApp_Sync_WriteAndIdempotence(t *testing.T) {
	for _, strategy := range []string{"structural", "textual"} {
		t.Run(strategy, func(t *testing.T) {
			dir := fixture(t, "")
			rootPath := filepath.Join(dir, "pyproject.toml")

			out := &bytes.Buffer{}
			a := newApp(out, &stubLogger{})
			require.NoError(t, a.Sync(context.Background(), app.SyncOptions{Dir: dir, Strategy: strategy}))

			updated, err := manifest.NewLoader().Load(rootPath)
			require.NoError(t, err)
			assert.Equal(t, []string{"numpy>=1.18", "pandas==2.1", "tetra-rp"}, updated.Dependencies)
			assert.Contains(t, out.String(), "Next steps:")

			// Second run sees no drift and performs no write.
			before := digest(t, rootPath)
			out2 := &bytes.Buffer{}
			a2 := newApp(out2, &stubLogger{})
			require.NoError(t, a2.Sync(context.Background(), app.SyncOptions{Dir: dir, Strategy: strategy}))
			assert.Contains(t, out2.String(), "already up to date")
			assert.Equal(t, before, digest(t, rootPath))
		})
	}
}

func TestApp_Sync_TextualPreservesUnrelatedContent(t *testing.T) {
	dir := fixture(t, "writer: textual\n")
	rootPath := filepath.Join(dir, "pyproject.toml")

	a := newApp(&bytes.Buffer{}, &stubLogger{})
	require.NoError(t, a.Sync(context.Background(), app.SyncOptions{Dir: dir}))

	data, err := os.ReadFile(rootPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tool.ruff]")
	assert.Contains(t, string(data), "line-length = 100")
	assert.Contains(t, string(data), "\"numpy>=1.18\",")
}

func TestApp_Sync_UnsafeRewriteAborts(t *testing.T) {
	dir := fixture(t, "writer: textual\n")
	rootPath := filepath.Join(dir, "pyproject.toml")

	// A root whose dependency array holds an inline table cannot be spliced
	// by the textual writer.
	write(t, rootPath, `[project]
name = "tetra-examples"
dependencies = [
    { name = "odd" },
]
`)
	before := digest(t, rootPath)

	a := newApp(&bytes.Buffer{}, &stubLogger{})
	err := a.Sync(context.Background(), app.SyncOptions{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsafeRewrite))
	assert.Equal(t, before, digest(t, rootPath))
}

func TestApp_Sync_NoExampleDependencies(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "pyproject.toml"), "[project]\ndependencies = []\n")

	out := &bytes.Buffer{}
	a := newApp(out, &stubLogger{})
	require.NoError(t, a.Sync(context.Background(), app.SyncOptions{Dir: dir}))
	assert.Contains(t, out.String(), "No example dependencies found.")
}

func TestApp_Sync_BrokenSubprojectWarnsOnly(t *testing.T) {
	dir := fixture(t, "")
	write(t, filepath.Join(dir, "01_getting_started", "broken", "pyproject.toml"), "not = [valid")

	log := &stubLogger{}
	a := newApp(&bytes.Buffer{}, log)
	require.NoError(t, a.Sync(context.Background(), app.SyncOptions{Dir: dir, DryRun: true}))
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "broken")
}

func TestApp_Sync_ExplicitConfigPath(t *testing.T) {
	dir := fixture(t, "")
	alt := filepath.Join(t.TempDir(), "policy.yaml")
	write(t, alt, `
categories:
  - 02_advanced
`)

	out := &bytes.Buffer{}
	a := newApp(out, &stubLogger{})
	err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, Config: alt, DryRun: true})
	require.NoError(t, err)

	// Only the 02_advanced category is scanned under the alternate policy.
	assert.Contains(t, out.String(), "Scanning example directories: 02_advanced")
	assert.NotContains(t, out.String(), "Version conflicts detected:")

	t.Run("missing explicit policy is fatal", func(t *testing.T) {
		a := newApp(&bytes.Buffer{}, &stubLogger{})
		err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, Config: filepath.Join(dir, "absent.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load policy")
	})
}

func TestApp_Sync_UnknownStrategy(t *testing.T) {
	dir := fixture(t, "")
	a := newApp(&bytes.Buffer{}, &stubLogger{})
	err := a.Sync(context.Background(), app.SyncOptions{Dir: dir, Strategy: "clever"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownStrategy))
}

func digest(t *testing.T, path string) uint64 {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return xxhash.Sum64(data)
}
