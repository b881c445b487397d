package email

import (
	"fmt"
	"regexp"
)

// allowedPlaceholders is the fixed set of substitutable template tokens.
// Tokens outside this list are left verbatim in the rendered output;
// allow-listed tokens missing from the context render as the empty string.
var allowedPlaceholders = []string{
	"name",
	"email",
	"company",
	"message",
	"inquiry_id",
	"page",
	"unsubscribe_url",
}

// One compiled pattern per allowed key: case-insensitive {{ key }} with
// arbitrary internal whitespace.
var placeholderPatterns = compilePlaceholderPatterns()

func compilePlaceholderPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(allowedPlaceholders))
	for _, key := range allowedPlaceholders {
		patterns[key] = regexp.MustCompile(fmt.Sprintf(`(?i){{\s*%s\s*}}`, key))
	}
	return patterns
}

// Render substitutes {{key}} placeholders in a template string with values
// from the context. Inserted values are trusted as already safe for HTML
// embedding; no escaping is performed. Rendering is idempotent once no
// substitutable tokens remain, and a nil context is treated as empty.
func Render(template string, ctx map[string]string) string {
	out := template
	for _, key := range allowedPlaceholders {
		// Literal replacement: values may contain $ sequences
		out = placeholderPatterns[key].ReplaceAllLiteralString(out, ctx[key])
	}
	return out
}
