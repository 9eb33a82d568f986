package manifest

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome reports what Apply did with the merged list.
type Outcome struct {
	// Changed is true when the merged list differs from the root's current list.
	Changed bool

	// Wrote is true when the root manifest was rewritten on disk.
	Wrote bool
}

// Writer compares the merged dependency list against the root manifest and
// rewrites it at most once, through the configured strategy. The comparison
// is order-insensitive: an identical set performs no I/O at all.
type Writer struct {
	strategy ports.RewriteStrategy
	logger   ports.Logger
	out      io.Writer
}

// NewWriter creates a Writer.
func NewWriter(strategy ports.RewriteStrategy, logger ports.Logger, out io.Writer) *Writer {
	return &Writer{strategy: strategy, logger: logger, out: out}
}

// Apply reconciles the root manifest with the merged list. In dry-run mode
// it prints the current and proposed lists and never writes.
func (w *Writer) Apply(root *domain.Manifest, merged []string, dryRun bool) (Outcome, error) {
	if equalSets(root.Dependencies, merged) {
		fmt.Fprintln(w.out, "Root dependencies are already up to date.")
		return Outcome{}, nil
	}

	if dryRun {
		fmt.Fprintln(w.out, "\n=== Dry Run Mode ===")
		fmt.Fprintln(w.out, "\nCurrent root dependencies:")
		for _, dep := range sortedCopy(root.Dependencies) {
			fmt.Fprintf(w.out, "  - %s\n", dep)
		}
		fmt.Fprintln(w.out, "\nProposed merged dependencies:")
		for _, dep := range merged {
			fmt.Fprintf(w.out, "  - %s\n", dep)
		}
		return Outcome{Changed: true}, nil
	}

	updated, err := w.strategy.Rewrite(root.Raw, merged)
	if err != nil {
		return Outcome{Changed: true}, err
	}

	if err := os.WriteFile(root.Path, updated, 0o644); err != nil {
		err = zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
		return Outcome{Changed: true}, zerr.With(err, "path", root.Path)
	}

	w.logger.Info(fmt.Sprintf("updated %s via %s rewrite (digest %016x -> %016x)",
		root.Path, w.strategy.Name(), xxhash.Sum64(root.Raw), xxhash.Sum64(updated)))
	return Outcome{Changed: true, Wrote: true}, nil
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedCopy(a), sortedCopy(b)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
