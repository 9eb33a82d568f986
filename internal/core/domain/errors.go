package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when a manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest cannot be parsed as TOML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestWriteFailed is returned when the root manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write root manifest")

	// ErrMissingDependencySection is returned when a manifest has no project
	// dependencies array.
	ErrMissingDependencySection = zerr.New("manifest has no project dependencies array")

	// ErrDependencyArrayNotFound is returned by the textual rewriter when the
	// document contains no dependencies assignment to replace.
	ErrDependencyArrayNotFound = zerr.New("no dependencies array found in root manifest")

	// ErrUnsafeRewrite is returned when the textual rewriter meets a construct
	// it cannot prove safe to splice. Nothing is written; use the structural
	// writer for such documents.
	ErrUnsafeRewrite = zerr.New("dependencies array contains constructs the textual rewriter cannot safely replace; use the structural writer")

	// ErrDriftDetected is returned in check mode when the root manifest is out
	// of sync with the scanned subproject dependencies.
	ErrDriftDetected = zerr.New("root manifest dependencies are out of sync")

	// ErrUnknownStrategy is returned when the configured writer strategy name
	// is not recognized.
	ErrUnknownStrategy = zerr.New("unknown writer strategy, expected 'structural' or 'textual'")

	// ErrPolicyReadFailed is returned when the policy file cannot be read.
	ErrPolicyReadFailed = zerr.New("failed to read policy file")

	// ErrPolicyParseFailed is returned when the policy file cannot be parsed.
	ErrPolicyParseFailed = zerr.New("failed to parse policy file")
)
