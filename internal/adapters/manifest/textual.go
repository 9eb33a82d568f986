package manifest

import (
	"strings"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// TextualStrategy rewrites the manifest by splicing a freshly rendered
// dependency array over the existing one, leaving every other line
// byte-for-byte unchanged. It only understands enough of the format to
// track the array region: quote-aware bracket counting. Any construct it
// cannot prove safe (triple-quoted strings, inline tables) aborts the whole
// rewrite before anything is written.
type TextualStrategy struct{}

// Name implements ports.RewriteStrategy.
func (t *TextualStrategy) Name() string { return "textual" }

// Rewrite implements ports.RewriteStrategy.
func (t *TextualStrategy) Rewrite(doc []byte, deps []string) ([]byte, error) {
	lines := strings.Split(string(doc), "\n")
	out := make([]string, 0, len(lines))

	inArray := false
	depth := 0
	found := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inArray && strings.HasPrefix(trimmed, "dependencies = [") {
			found = true
			out = append(out, "dependencies = "+renderArray(deps))
			if !strings.HasSuffix(trimmed, "]") {
				inArray = true
				depth = 1
			}
			continue
		}

		if inArray {
			if strings.Contains(line, `"""`) || strings.Contains(line, "'''") ||
				strings.ContainsAny(line, "{}") {
				return nil, zerr.With(domain.ErrUnsafeRewrite, "line", trimmed)
			}
			depth += bracketDelta(line)
			if depth == 0 {
				inArray = false
			}
			continue
		}

		out = append(out, line)
	}

	if !found {
		return nil, domain.ErrDependencyArrayNotFound
	}
	if inArray {
		return nil, zerr.With(domain.ErrUnsafeRewrite, "reason", "unterminated dependencies array")
	}
	return []byte(strings.Join(out, "\n")), nil
}

// bracketDelta counts net array nesting on a line, ignoring brackets inside
// double-quoted strings so that extras like "package[extra]" do not skew
// the depth.
func bracketDelta(line string) int {
	delta := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
		case inQuotes:
		case line[i] == '[':
			delta++
		case line[i] == ']':
			delta--
		}
	}
	return delta
}

// renderArray renders the declarations as a multi-line TOML string array.
func renderArray(deps []string) string {
	if len(deps) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, dep := range deps {
		b.WriteString("    \"")
		b.WriteString(dep)
		b.WriteString("\",\n")
	}
	b.WriteString("]")
	return b.String()
}
