package engine

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// SourceFeatures summarizes what a pre-flight scan found in a C source
// file, before any transformation is committed to.
type SourceFeatures struct {
	Lines         int
	Directives    int
	Includes      int
	Defines       int
	Structs       int
	Unions        int
	Enums         int
	Functions     int
	LineComments  int
	BlockComments int
	NonASCII      bool // comments or literals carry non-ASCII text

	// RecommendedPrefix is the first candidate prefix whose generated names
	// cannot collide with identifiers already present in the source.
	RecommendedPrefix string
}

var (
	reDirectiveLine = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*([a-z]+)`)
	reLineComment   = regexp.MustCompile(`//[^\n]*`)
	reBlockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// prefixCandidates are tried in order by AnalyzeSource. The default comes
// first; the alternatives are letter pairs that essentially never start
// real C identifiers.
var prefixCandidates = []string{DefaultPrefix, "Qz", "Xk", "Vq", "Zj"}

// AnalyzeSource scans source without transforming it.
func AnalyzeSource(source string) *SourceFeatures {
	f := &SourceFeatures{
		Lines: strings.Count(source, "\n") + 1,
	}
	for _, m := range reDirectiveLine.FindAllStringSubmatch(source, -1) {
		f.Directives++
		switch m[1] {
		case "include":
			f.Includes++
		case "define":
			f.Defines++
		}
	}
	// Run the real protector and classifier on a scratch context so the
	// reported counts match what an actual run would rename.
	ctx := NewCtx(&Options{Prefix: DefaultPrefix, ShieldDirectives: true})
	Classify(ctx.Protect(source), ctx)
	counts := ctx.counts()
	f.Structs = counts[CatStruct]
	f.Unions = counts[CatUnion]
	f.Enums = counts[CatEnum]
	f.Functions = counts[CatFunction]

	f.LineComments = len(reLineComment.FindAllString(source, -1))
	f.BlockComments = len(reBlockComment.FindAllString(source, -1))
	for _, r := range source {
		if r > 127 {
			f.NonASCII = true
			break
		}
	}
	f.RecommendedPrefix = recommendPrefix(source)
	return f
}

// recommendPrefix returns the first candidate that does not prefix any
// generated-name-shaped identifier already in the source. Obfuscating a
// file that legitimately contains an identifier like Utv3 under prefix Ut
// would make restoration ambiguous.
func recommendPrefix(source string) string {
	for _, cand := range prefixCandidates {
		shape := regexp.MustCompile(`\b` + regexp.QuoteMeta(cand) + `[A-Za-z][0-9]+\b`)
		if !shape.MatchString(source) {
			return cand
		}
	}
	return DefaultPrefix
}

// PrintAnalysis writes the feature scan to stderr (if !quiet).
func PrintAnalysis(f *SourceFeatures, quiet bool) {
	if quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "%sAnalysis:%s %d lines | %d directives (%d include, %d define)\n",
		Cyan, Reset, f.Lines, f.Directives, f.Includes, f.Defines)
	fmt.Fprintf(os.Stderr, "%sTypes:%s %d struct | %d union | %d enum | %d functions\n",
		Cyan, Reset, f.Structs, f.Unions, f.Enums, f.Functions)
	fmt.Fprintf(os.Stderr, "%sComments:%s %d line | %d block", Cyan, Reset, f.LineComments, f.BlockComments)
	if f.NonASCII {
		fmt.Fprintf(os.Stderr, " %s(non-ASCII text present)%s", Gray, Reset)
	}
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "%sRecommended prefix:%s %s%s%s\n", Cyan, Reset, Green, f.RecommendedPrefix, Reset)
	if f.Includes > 0 {
		fmt.Fprintf(os.Stderr, "%sHint:%s #include lines present, keep directive shielding on\n", Gray, Reset)
	}
}
