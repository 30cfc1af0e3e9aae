package engine

import "regexp"

// Restore maps assigned names in obfuscated text back to their originals.
//
// It runs in two phases. Identifier categories go through the generic
// boundary-matched substitution engine. Comment entries are handled by a
// dedicated pass: their originals are free text that may span arbitrary
// characters, which makes them unsafe targets for generic token
// substitution, so only the two shapes the obfuscator emits are rewritten:
// "// <token>" at end of line and "/* <token> */".
func Restore(text string, tbl *DecodedTable, opts *Options) string {
	var pairs []renamePair
	for assigned, original := range tbl.Reverse {
		if tbl.Cats[assigned] == CatComment {
			continue
		}
		pairs = append(pairs, renamePair{from: assigned, to: original})
	}
	out := Substitute(text, pairs, opts.RenameCompound, tbl.Prefix)

	for assigned, original := range tbl.Reverse {
		if tbl.Cats[assigned] != CatComment {
			continue
		}
		token := regexp.QuoteMeta(assigned)
		// The $ anchor plus the trailing-junk guard means Utc1 can never
		// swallow a line carrying Utc10, so no ordering is needed here.
		lineRe := regexp.MustCompile(`(?m)//[ \t]*` + token + `[ \t]*(\r?)$`)
		out = lineRe.ReplaceAllString(out, "// "+escapeDollar(original)+"${1}")
		blockRe := regexp.MustCompile(`/\*[ \t]*` + token + `[ \t]*\*/`)
		out = blockRe.ReplaceAllLiteralString(out, "/* "+original+" */")
	}
	return out
}
