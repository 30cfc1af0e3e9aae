package engine

import (
	"regexp"
	"sort"
	"strings"
)

type renamePair struct {
	from, to string
}

// Substitute rewrites every boundary-delimited occurrence of from into to,
// for all pairs, over the whole text. It serves both directions: forward
// (original -> assigned) and, from the restorer, backward.
//
// Pairs are applied in from-length descending order, ties broken
// lexicographically descending. Without that order a short name that is a
// textual prefix of a longer one (m1 vs m10) could be substituted inside
// the longer name's token before the longer name's own rule runs. With it,
// the longest name always wins, and boundary matching rules out sub-token
// hits for everything shorter.
//
// When compound is set, pairs whose source name carries prefix are also
// replaced as underscore-delimited segments of larger identifiers. The
// prefix gate keeps the mode from rewriting coincidental substrings of
// ordinary names; in practice it only ever fires on assigned names, i.e.
// during restoration.
func Substitute(text string, pairs []renamePair, compound bool, prefix string) string {
	sorted := make([]renamePair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].from) != len(sorted[j].from) {
			return len(sorted[i].from) > len(sorted[j].from)
		}
		return sorted[i].from > sorted[j].from
	})
	for _, p := range sorted {
		if compound && prefix != "" && strings.Contains(p.from, prefix) {
			re := regexp.MustCompile(`(\b|_)` + regexp.QuoteMeta(p.from) + `(_|\b)`)
			text = re.ReplaceAllString(text, "${1}"+escapeDollar(p.to)+"${2}")
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.from) + `\b`)
		text = re.ReplaceAllLiteralString(text, p.to)
	}
	return text
}

// escapeDollar makes s safe as a ReplaceAllString replacement. Restored
// originals can be arbitrary table text, and a bare $ would be read as a
// group reference.
func escapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
