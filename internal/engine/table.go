package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Conversion table grammar: an optional "prefix: <value>" declaration, then
// one bracketed section per non-empty category, one mapping per line:
//
//	prefix: Ut
//
//	[macro]
//	  MAX_SIZE                       -> UtD1
//
// Section headers are noise to a minimal parser but carry the authoritative
// category for each entry, so decoding never has to guess a category from
// the shape of an assigned name.
//
// The grammar is line-oriented, so the original side is stored with \n, \r
// and \ escaped. Without that, a multi-line block comment body would
// spill across table lines and decode to just its final line.

var (
	rePrefixDecl = regexp.MustCompile(`^prefix:\s*(\S+)\s*$`)
	reSectionHdr = regexp.MustCompile(`^\[([a-z]+)\]\s*$`)

	// Bare line grammar, used when no prefix is declared. Both sides are
	// then plain identifiers.
	reTableLine = regexp.MustCompile(`^\s+([A-Za-z_][A-Za-z0-9_]*)\s+->\s+([A-Za-z0-9_]+)\s*$`)
)

// EncodeTable serializes the context's category maps. Entries are sorted by
// original name within each category, so re-encoding a decoded table yields
// identical text.
func EncodeTable(c *Ctx) string {
	var b strings.Builder
	if c.Prefix != "" {
		fmt.Fprintf(&b, "prefix: %s\n\n", c.Prefix)
	}
	for cat := Category(0); cat < numCategories; cat++ {
		m := c.names[cat]
		if len(m) == 0 {
			continue
		}
		fmt.Fprintf(&b, "[%s]\n", cat)
		keys := lo.Keys(m)
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %-30s -> %s\n", escapeOriginal(k), m[k])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodedTable is the parsed form of a conversion table, keyed the way the
// restorer needs it: assigned name back to original.
type DecodedTable struct {
	Prefix  string
	Reverse map[string]string   // assigned -> original
	Cats    map[string]Category // assigned -> category
}

// DecodeTable parses table text. A declared prefix switches the line
// grammar: assigned names must then begin with the prefix, and the original
// side may be arbitrary text, which is what lets comment bodies survive a
// round trip. Unrecognized lines are ignored. A table yielding zero entries
// is a soft failure: it is logged and an empty map is returned, the caller
// decides how loudly to complain.
func DecodeTable(content string, log *zap.Logger) *DecodedTable {
	if log == nil {
		log = zap.NewNop()
	}
	t := &DecodedTable{
		Reverse: map[string]string{},
		Cats:    map[string]Category{},
	}
	lineRe := reTableLine
	current := CatVariable
	haveSection := false
	for _, line := range strings.Split(content, "\n") {
		if m := rePrefixDecl.FindStringSubmatch(line); m != nil {
			t.Prefix = m[1]
			// Lazy original capture so column padding stays out of the name;
			// the assigned name is anchored at the end of the line, so an
			// original containing "->" still parses.
			lineRe = regexp.MustCompile(`^\s+(.+?)\s+->\s+(` + regexp.QuoteMeta(t.Prefix) + `[A-Za-z][0-9]+)\s*$`)
			continue
		}
		if m := reSectionHdr.FindStringSubmatch(line); m != nil {
			if cat, ok := categoryFromName(m[1]); ok {
				current = cat
				haveSection = true
			} else {
				haveSection = false
			}
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		original, assigned := unescapeOriginal(m[1]), m[2]
		cat := current
		if !haveSection {
			cat = inferCategory(assigned, t.Prefix)
		}
		t.Reverse[assigned] = original
		t.Cats[assigned] = cat
	}
	if len(t.Reverse) == 0 {
		log.Warn("conversion table contained no parsable mapping lines")
	} else {
		log.Info("conversion table decoded",
			zap.Int("entries", len(t.Reverse)),
			zap.String("prefix", t.Prefix))
	}
	return t
}

// escapeOriginal makes an original name safe for the line-oriented grammar.
// Identifiers pass through untouched; only comment bodies can carry the
// escaped characters.
func escapeOriginal(s string) string {
	if !strings.ContainsAny(s, "\\\n\r") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	return r.Replace(s)
}

func unescapeOriginal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// inferCategory guesses a category from the letter after the prefix. Only
// needed for headerless tables (e.g. hand-trimmed ones); headers win when
// present.
func inferCategory(assigned, prefix string) Category {
	rest := strings.TrimPrefix(assigned, prefix)
	if rest == "" {
		return CatVariable
	}
	for cat, letter := range categoryLetters {
		if strings.HasPrefix(rest, letter) {
			return Category(cat)
		}
	}
	return CatVariable
}
