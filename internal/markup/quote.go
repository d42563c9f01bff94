package markup

import (
	"strings"

	"github.com/google/uuid"
)

// Quote spans are cut out of the document before block extraction runs.
// A single-pass scan cannot tell a paragraph tag inside a quote from one at
// the top level; replacing the whole span with an opaque token first removes
// the ambiguity. The token deliberately contains a control byte so no note
// text can collide with it.
const (
	placeholderPrefix = "\x00quote:"
	placeholderSuffix = "\x00"
)

// TokenGenerator produces the opaque identifiers used for quote
// placeholders during one parse.
type TokenGenerator interface {
	New() string
}

// uniqueTokens is the production generator: random, collision-free across
// concurrent parses.
type uniqueTokens struct{}

func (uniqueTokens) New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

var tokens TokenGenerator = uniqueTokens{}

// SetTokenGenerator overrides the placeholder token source. Tests use it
// with a deterministic generator; remember to defer ResetTokenGenerator.
func SetTokenGenerator(g TokenGenerator) {
	tokens = g
}

// ResetTokenGenerator restores the random generator.
func ResetTokenGenerator() {
	tokens = uniqueTokens{}
}

// quoteTable records the inner markup each placeholder stands for.
type quoteTable map[string]string

// isolateQuotes replaces every quote span with a placeholder token and
// records its inner markup. Matching is non-greedy, first open to first
// close; the dialect does not support nested quotes. An unmatched opening
// tag is left alone and later dropped as an unsupported element.
func isolateQuotes(s string) (string, quoteTable) {
	table := quoteTable{}
	var out strings.Builder
	i := 0
	for i < len(s) {
		open, ok := findTag(s, i, tagQuote)
		for ok && open.closing {
			// A stray closer has no span to isolate; look past it.
			open, ok = findTag(s, open.end, tagQuote)
		}
		if !ok {
			break
		}
		closer, closed := findTag(s, open.end, tagQuote)
		for closed && !closer.closing {
			closer, closed = findTag(s, closer.end, tagQuote)
		}
		if !closed {
			break
		}
		token := tokens.New()
		table[token] = s[open.end:closer.start]
		out.WriteString(s[i:open.start])
		out.WriteString(placeholderPrefix + token + placeholderSuffix)
		i = closer.end
	}
	out.WriteString(s[i:])
	return out.String(), table
}

// scanPlaceholder reads a placeholder token starting at s[i] (which must be
// the leading control byte). It reports the token and the index just past
// the trailing control byte.
func scanPlaceholder(s string, i int) (token string, end int, ok bool) {
	if !strings.HasPrefix(s[i:], placeholderPrefix) {
		return "", 0, false
	}
	j := i + len(placeholderPrefix)
	k := strings.IndexByte(s[j:], placeholderSuffix[0])
	if k < 0 {
		return "", 0, false
	}
	return s[j : j+k], j + k + 1, true
}
