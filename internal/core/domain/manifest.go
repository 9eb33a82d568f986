package domain

// Manifest is a loaded project manifest: its parsed dependency list for
// comparison and its full original text for the textual rewrite path.
type Manifest struct {
	// Path is the file the manifest was read from.
	Path string

	// Dependencies are the raw declarations from the project dependencies
	// array, in document order. Empty when HasDependencies is false.
	Dependencies []string

	// HasDependencies reports whether the document carries a usable
	// dependencies array at all. An empty array still counts as present.
	HasDependencies bool

	// Raw is the unmodified document text.
	Raw []byte
}
