package engine

import "strings"

// Classify discovers identifiers in protected text and records each under
// exactly one category. Pattern order is fixed and is the tie-breaker for
// names matching several patterns: macro, enum tag, struct tag, union tag,
// member, function, variable. A name is recorded on first sighting only;
// discovery order matters solely for allocation numbering.
func Classify(text string, c *Ctx) {
	for _, m := range reDefine.FindAllStringSubmatch(text, -1) {
		c.claim(CatMacro, m[1])
	}
	for _, m := range reEnumTag.FindAllStringSubmatch(text, -1) {
		c.claim(CatEnum, m[1])
	}
	for _, m := range reStructTag.FindAllStringSubmatch(text, -1) {
		c.claim(CatStruct, m[1])
	}
	for _, m := range reUnionTag.FindAllStringSubmatch(text, -1) {
		c.claim(CatUnion, m[1])
	}

	classifyMembers(text, c)

	for _, m := range reFuncDecl.FindAllStringSubmatch(text, -1) {
		c.claim(CatFunction, m[1])
	}

	classifyVariables(text, c)
}

// classifyMembers collects member names from three sources: -> and . access
// expressions, declarators inside tagged struct/union bodies (including
// bit-fields and arrays), and enumerator names inside enum bodies.
func classifyMembers(text string, c *Ctx) {
	for _, idx := range reMemberAccess.FindAllStringSubmatchIndex(text, -1) {
		// A dot right after a digit is part of a floating point literal
		// (1.e5, 1.f), not a member access. Checked here on the preceding
		// byte because the regex engine has no lookbehind. Declared members
		// of such receivers are still picked up by the body pass below.
		if text[idx[0]] == '.' && idx[0] > 0 && text[idx[0]-1] >= '0' && text[idx[0]-1] <= '9' {
			continue
		}
		c.claim(CatMember, text[idx[2]:idx[3]])
	}
	for _, block := range reStructBody.FindAllStringSubmatch(text, -1) {
		for _, m := range reMemberDecl.FindAllStringSubmatch(block[1], -1) {
			c.claim(CatMember, m[1])
		}
	}
	for _, block := range reEnumBody.FindAllStringSubmatch(text, -1) {
		for _, seg := range strings.Split(block[1], ",") {
			c.claim(CatMember, enumeratorName(seg))
		}
	}
}

// enumeratorName extracts the enumerator from one comma-separated segment of
// an enum body. Shield placeholders from comments inside the body are
// stripped first, and anything after = belongs to the value expression.
func enumeratorName(seg string) string {
	if i := strings.Index(seg, "="); i >= 0 {
		seg = seg[:i]
	}
	for {
		j := strings.Index(seg, placeholderPrefix)
		if j < 0 {
			break
		}
		k := strings.Index(seg[j+len(placeholderPrefix):], "__")
		if k < 0 {
			seg = seg[:j]
			break
		}
		seg = seg[:j] + seg[j+len(placeholderPrefix)+k+2:]
	}
	return reIdent.FindString(seg)
}

// classifyVariables picks up the remaining declarator identifiers: globals,
// locals, loop-induction variables via the type-prefixed declaration
// pattern, and parameters via the signatures the function pass matched.
// The separate parameter walk is required: the declaration pattern consumes
// its leading separator, so of two comma-separated parameters it can only
// see the first. Anything already claimed by an earlier category is skipped
// by claim().
func classifyVariables(text string, c *Ctx) {
	for _, m := range reVarDecl.FindAllStringSubmatch(text, -1) {
		c.claim(CatVariable, m[1])
	}
	for _, f := range reFuncDecl.FindAllStringSubmatch(text, -1) {
		for _, param := range strings.Split(f[2], ",") {
			if m := reParam.FindStringSubmatch(strings.TrimSpace(param)); m != nil {
				c.claim(CatVariable, m[1])
			}
		}
	}
}
