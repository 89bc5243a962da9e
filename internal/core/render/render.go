// Package render substitutes placeholders into stubs and builds the generated
// code blocks. This is part of the Functional Core - no I/O, only pure functions.
package render

import (
	"sort"
	"strings"
)

// Context maps placeholder tokens to replacement text.
type Context map[string]string

// Render substitutes every token of ctx into stub in a single pass.
// Replacement values are never rescanned, so a value containing another
// token is emitted verbatim. Longer tokens win over their prefixes
// (DummyModelNamespace before DummyModel).
func Render(stub string, ctx Context) string {
	if len(ctx) == 0 {
		return stub
	}

	tokens := make([]string, 0, len(ctx))
	for token := range ctx {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		pairs = append(pairs, token, ctx[token])
	}
	return strings.NewReplacer(pairs...).Replace(stub)
}

// Missing returns the tokens that do not occur in stub, in the given order.
func Missing(stub string, tokens []string) []string {
	var missing []string
	for _, token := range tokens {
		if !strings.Contains(stub, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// DetectEOL returns the line ending used by stub: CRLF if present, else LF.
func DetectEOL(stub string) string {
	if strings.Contains(stub, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// Indent prefixes the first line of code and every line after an eol with
// width spaces, then trims trailing whitespace.
func Indent(code string, width int, eol string) string {
	prefix := strings.Repeat(" ", width)
	indented := prefix + strings.ReplaceAll(code, eol, eol+prefix)
	return strings.TrimRight(indented, " \t\r\n\x00\x0b")
}
