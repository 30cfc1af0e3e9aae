package engine

import (
	"regexp"

	"go.uber.org/zap"
)

// Category is the syntactic role assigned to a discovered identifier.
type Category int

const (
	CatMacro Category = iota
	CatEnum
	CatStruct
	CatUnion
	CatFunction
	CatVariable
	CatMember
	CatComment
	numCategories
)

var categoryNames = [numCategories]string{
	"macro", "enum", "struct", "union", "function", "variable", "member", "comment",
}

// Category letters are mixed-case on purpose: the macro letter is the only
// uppercase one, so it cannot be confused with the tail of a lowercase prefix.
var categoryLetters = [numCategories]string{"D", "e", "t", "u", "f", "v", "m", "c"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

func categoryFromName(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// DefaultPrefix is the replacement-name prefix used by the CLI when none is
// given. Two letters keep generated names short while making accidental
// collisions with real C identifiers unlikely.
const DefaultPrefix = "Ut"

type Options struct {
	InputFile  string
	OutputFile string
	TableFile  string
	Prefix     string // empty = bare category letters, no prefix declaration in the table

	// ShieldDirectives hides #include, conditional and #pragma lines from the
	// classifier and the substitution pass. #define always stays visible.
	ShieldDirectives bool

	// RenameCompound additionally rewrites prefix-bearing names that occur as
	// underscore-delimited segments of larger identifiers. Off by default:
	// it can rewrite coincidental substrings.
	RenameCompound bool

	UseStdin  bool
	UseStdout bool
	Quiet     bool

	Logger *zap.Logger // nil = no logging
}

// Span is one shielded region of the source: the placeholder standing in for
// it during substitution, and the payload written back by Unprotect.
type Span struct {
	Placeholder string
	Payload     string
}

// Ctx holds all mutable state of one transform invocation: category maps,
// per-category counters and the placeholder table. A Ctx must not be shared
// across concurrent transforms; build one per source text.
type Ctx struct {
	Prefix string
	Opts   *Options
	Log    *zap.Logger

	names    [numCategories]map[string]string // original -> assigned
	order    [numCategories][]string          // first-seen order, drives numbering
	counters [numCategories]int
	claimed  map[string]bool
	spans    []Span
	nextSpan int
}

func NewCtx(opts *Options) *Ctx {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Ctx{
		Prefix:  opts.Prefix,
		Opts:    opts,
		Log:     log,
		claimed: map[string]bool{},
	}
	for i := range c.names {
		c.names[i] = map[string]string{}
		c.counters[i] = 1
	}
	return c
}

// Classification patterns. These run over protected text, so string and
// comment contents can never produce false matches; placeholder tokens are
// filtered out by claim().
var (
	reDefine    = regexp.MustCompile(`#define\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reEnumTag   = regexp.MustCompile(`\benum\s+([A-Za-z_][A-Za-z0-9_]*)\s*[{;]`)
	reStructTag = regexp.MustCompile(`\bstruct\s+([A-Za-z_][A-Za-z0-9_]*)\s*[{;]`)
	reUnionTag  = regexp.MustCompile(`\bunion\s+([A-Za-z_][A-Za-z0-9_]*)\s*[{;]`)

	// Member accesses: a->b, a.b. A digit cannot start the capture, so a
	// plain float literal (3.14) never matches; exponent and suffix forms
	// (1.e5, 1.f) do, and classifyMembers filters them by the byte before
	// the dot.
	reMemberAccess = regexp.MustCompile(`(?:->|\.)\s*([A-Za-z_][A-Za-z0-9_]*)`)

	// Tagged struct/union bodies up to the first closing brace. An anonymous
	// inner struct carries no tag and is not matched itself, but its
	// declarators sit inside the enclosing tagged body and are still seen.
	reStructBody = regexp.MustCompile(`(?s)\b(?:struct|union)\s+[A-Za-z_][A-Za-z0-9_]*\s*\{([^}]*)\}`)
	reMemberDecl = regexp.MustCompile(`(?:unsigned\s+|signed\s+)?(?:int|char|short|long|float|double|struct\s+\w+|union\s+\w+|enum\s+\w+)\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*\d+|;|\[)`)
	reEnumBody   = regexp.MustCompile(`(?s)\benum\s+[A-Za-z_][A-Za-z0-9_]*\s*\{([^}]*)\}`)

	reFuncDecl = regexp.MustCompile(`(?m)^[ \t]*(?:static\s+)?(?:inline\s+)?(?:extern\s+)?(?:unsigned\s+|signed\s+)?(?:void|int|char|short|long|float|double|struct\s+\w+|union\s+\w+|enum\s+\w+)\s+(?:\*\s*)?([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)\s*[{;]`)
	reVarDecl  = regexp.MustCompile(`(?m)(?:^|[;{(,])\s*(?:static\s+)?(?:extern\s+)?(?:const\s+)?(?:unsigned\s+|signed\s+)?(?:int|char|short|long|float|double|struct\s+\w+|union\s+\w+|enum\s+\w+)\s+(?:\*\s*)?([A-Za-z_][A-Za-z0-9_]*)\s*[=;\[,)]`)
	reParam    = regexp.MustCompile(`(?:const\s+)?(?:unsigned\s+|signed\s+)?(?:void|int|char|short|long|float|double|struct\s+\w+|union\s+\w+|enum\s+\w+)\s*\**\s*([A-Za-z_][A-Za-z0-9_]*)\s*$`)

	reIdent = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)
