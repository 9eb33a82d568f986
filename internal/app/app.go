// Package app implements the application layer for depsync.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/depsync/internal/adapters/manifest"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: the scan → merge → compare →
// write pipeline over subproject manifests.
type App struct {
	policyLoader   ports.PolicyLoader
	manifestLoader ports.ManifestLoader
	logger         ports.Logger
	out            io.Writer
}

// New creates a new App instance.
func New(
	policyLoader ports.PolicyLoader,
	manifestLoader ports.ManifestLoader,
	log ports.Logger,
	out io.Writer,
) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{
		policyLoader:   policyLoader,
		manifestLoader: manifestLoader,
		logger:         log,
		out:            out,
	}
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	// Dir is the repository root to operate in. Empty means the current
	// directory.
	Dir string

	// Config is an explicit policy file path. Empty means depsync.yaml in
	// Dir, falling back to built-in defaults.
	Config string

	// DryRun prints the proposed changes without writing.
	DryRun bool

	// Check behaves like DryRun but returns ErrDriftDetected when a change
	// would be required.
	Check bool

	// Strategy overrides the policy's writer strategy name.
	Strategy string
}

// Sync runs the aggregation pipeline once. Per-subproject failures are
// warnings; the only fatal outcomes are an unreadable or unwritable root
// manifest, an unsafe textual rewrite, and check-mode drift.
func (a *App) Sync(_ context.Context, opts SyncOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	var policy domain.Policy
	var err error
	if opts.Config != "" {
		policy, err = a.policyLoader.LoadFile(opts.Config)
	} else {
		policy, err = a.policyLoader.Load(dir)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to load policy")
	}
	if opts.Strategy != "" {
		policy.Writer = opts.Strategy
	}

	strategy, err := rewriteStrategy(policy.Writer)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Scanning example directories: %s\n", strings.Join(policy.Categories, ", "))

	scanner := manifest.NewScanner(a.manifestLoader, a.logger)
	set := scanner.Scan(dir, policy)

	if set.Len() == 0 {
		fmt.Fprintln(a.out, "No example dependencies found.")
		return nil
	}
	fmt.Fprintf(a.out, "\nFound %d unique packages across examples\n", set.Len())

	a.reportConflicts(set.Conflicts())

	rootPath := policy.Root
	if !filepath.IsAbs(rootPath) {
		rootPath = filepath.Join(dir, policy.Root)
	}
	root, err := a.manifestLoader.Load(rootPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load root manifest")
	}

	merged := domain.Merge(set, root.Dependencies, policy)

	writer := manifest.NewWriter(strategy, a.logger, a.out)
	outcome, err := writer.Apply(root, merged, opts.DryRun || opts.Check)
	if err != nil {
		return err
	}

	if opts.Check && outcome.Changed {
		return zerr.With(domain.ErrDriftDetected, "root", root.Path)
	}

	if outcome.Wrote {
		fmt.Fprintln(a.out, "\nNext steps:")
		fmt.Fprintf(a.out, "  1. Review the changes to %s\n", root.Path)
		fmt.Fprintln(a.out, "  2. Re-sync the environment to install new dependencies")
		fmt.Fprintln(a.out, "  3. Regenerate the lockfile")
	}
	return nil
}

// reportConflicts prints the diagnostic conflict report. Detection never
// alters control flow; resolution happens inside domain.Merge.
func (a *App) reportConflicts(conflicts []domain.Conflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintln(a.out, "\nVersion conflicts detected:")
	for _, c := range conflicts {
		fmt.Fprintf(a.out, "  %s:\n", c.Name)
		decls := make([]string, len(c.Declarations))
		copy(decls, c.Declarations)
		sort.Strings(decls)
		for _, d := range decls {
			fmt.Fprintf(a.out, "    - %s\n", d)
		}
	}
	fmt.Fprintln(a.out, "\nUsing most permissive constraint for conflicts")
}

// rewriteStrategy maps a policy strategy name to an implementation. The
// structural serializer is always available, so it is the default.
func rewriteStrategy(name string) (ports.RewriteStrategy, error) {
	switch name {
	case "", "structural":
		return &manifest.StructuralStrategy{}, nil
	case "textual":
		return &manifest.TextualStrategy{}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownStrategy, "strategy", name)
	}
}
