package ports

// RewriteStrategy replaces the dependency array of a manifest document,
// leaving everything else intact. Implementations must either return a
// correct document or an error; a best-effort partial rewrite is never
// acceptable.
//
//go:generate mockgen -source=rewriter.go -destination=mocks/mock_rewriter.go -package=mocks
type RewriteStrategy interface {
	// Name identifies the strategy for logs and configuration.
	Name() string

	// Rewrite returns a copy of doc with its dependency array replaced by
	// the given declarations.
	Rewrite(doc []byte, deps []string) ([]byte, error)
}
