package engine

import (
	"fmt"
	"strings"
)

// placeholderPrefix is the shield marker. The double underscore on both
// sides matters twice over: the full token cannot occur in valid C source,
// and because underscores are identifier-constituent characters, no
// boundary-matched substitution can ever fire inside a placeholder.
const placeholderPrefix = "__OBFC_"

func (c *Ctx) shield(payload string) string {
	ph := fmt.Sprintf("%s%d__", placeholderPrefix, c.nextSpan)
	c.nextSpan++
	c.spans = append(c.spans, Span{Placeholder: ph, Payload: payload})
	return ph
}

// Protect walks the source once with an explicit state machine (code,
// string, char, line comment, block comment) and replaces every
// non-identifier region with an opaque placeholder. Independent regex
// passes would misfire on constructs like a quote inside a comment; a
// single scan cannot.
//
// Comments are the one region that is rewritten rather than preserved:
// each non-empty comment body is registered as a comment identifier and the
// shielded payload is the renumbered comment. Empty comments pass through
// verbatim. Malformed input (an unterminated literal or comment) is
// shielded as-is to the end of the text, best effort.
func (c *Ctx) Protect(source string) string {
	var out strings.Builder
	out.Grow(len(source))
	n := len(source)
	i := 0
	lineHasCode := false
	for i < n {
		ch := source[i]
		switch {
		case ch == '\n':
			lineHasCode = false
			out.WriteByte(ch)
			i++
		case ch == '#' && !lineHasCode && c.Opts.ShieldDirectives:
			end, name := scanDirective(source, i)
			if name == "define" {
				// The classifier needs to see macro definitions.
				lineHasCode = true
				out.WriteByte(ch)
				i++
				continue
			}
			out.WriteString(c.shield(source[i:end]))
			i = end
			lineHasCode = true
		case ch == '"' || ch == '\'':
			end := scanLiteral(source, i)
			out.WriteString(c.shield(source[i:end]))
			i = end
			lineHasCode = true
		case ch == '/' && i+1 < n && source[i+1] == '/':
			end := i + 2
			for end < n && source[end] != '\n' {
				end++
			}
			out.WriteString(c.shield(c.renumberLineComment(source[i:end])))
			i = end
		case ch == '/' && i+1 < n && source[i+1] == '*':
			rel := strings.Index(source[i+2:], "*/")
			if rel < 0 {
				// Unterminated: keep it verbatim so the round trip survives.
				out.WriteString(c.shield(source[i:]))
				i = n
				continue
			}
			end := i + 2 + rel + 2
			out.WriteString(c.shield(c.renumberBlockComment(source[i:end])))
			i = end
		default:
			if ch != ' ' && ch != '\t' && ch != '\r' {
				lineHasCode = true
			}
			out.WriteByte(ch)
			i++
		}
	}
	return out.String()
}

// Unprotect writes every shielded payload back over its placeholder. It is
// the exact inverse of the shielding step; comment renumbering is reversed
// separately by Restore using the conversion table.
func (c *Ctx) Unprotect(text string) string {
	if len(c.spans) == 0 {
		return text
	}
	pairs := make([]string, 0, len(c.spans)*2)
	for _, s := range c.spans {
		pairs = append(pairs, s.Placeholder, s.Payload)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// renumberLineComment turns "// body" into "// <token>", registering body as
// a comment identifier. Empty comments stay untouched.
func (c *Ctx) renumberLineComment(comment string) string {
	body := strings.TrimSpace(comment[2:])
	if body == "" {
		return comment
	}
	return "// " + c.register(CatComment, body)
}

func (c *Ctx) renumberBlockComment(comment string) string {
	body := strings.TrimSpace(comment[2 : len(comment)-2])
	if body == "" {
		return comment
	}
	return "/* " + c.register(CatComment, body) + " */"
}

// scanDirective returns the end offset (exclusive of the newline) of the
// directive starting at i, honoring backslash line continuations, plus the
// directive keyword.
func scanDirective(source string, i int) (int, string) {
	n := len(source)
	j := i + 1
	for j < n && (source[j] == ' ' || source[j] == '\t') {
		j++
	}
	nameStart := j
	for j < n && source[j] >= 'a' && source[j] <= 'z' {
		j++
	}
	name := source[nameStart:j]
	for j < n {
		if source[j] != '\n' {
			j++
			continue
		}
		k := j - 1
		if k >= i && source[k] == '\r' {
			k--
		}
		if k >= i && source[k] == '\\' {
			j++ // continuation line belongs to the directive
			continue
		}
		break
	}
	return j, name
}

// scanLiteral returns the end offset (past the closing quote) of the string
// or character literal starting at i. Backslash escapes are honored, so an
// escaped delimiter does not terminate the literal.
func scanLiteral(source string, i int) int {
	quote := source[i]
	n := len(source)
	j := i + 1
	for j < n {
		switch source[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return n
}
