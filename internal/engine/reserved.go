package engine

// cReserved contains C keywords and common standard-library names that must
// never be renamed. Renaming a keyword would destroy the program outright;
// renaming a libc name would break the link against the real library. The
// set must stay identical between the forward and backward direction so a
// round trip is deterministic.
var cReserved = map[string]bool{
	// Types
	"int": true, "char": true, "short": true, "long": true,
	"float": true, "double": true, "void": true,
	"signed": true, "unsigned": true,
	// Control flow
	"if": true, "else": true, "switch": true, "case": true, "default": true,
	"break": true, "continue": true, "for": true, "while": true, "do": true,
	"goto": true, "return": true,
	// Storage classes
	"auto": true, "register": true, "static": true, "extern": true, "typedef": true,
	// Qualifiers
	"const": true, "volatile": true, "restrict": true,
	// Misc
	"struct": true, "union": true, "enum": true, "sizeof": true, "inline": true,
	// C99
	"_Bool": true, "_Complex": true, "_Imaginary": true,
	// C11
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Static_assert": true,
	"_Noreturn": true, "_Thread_local": true, "_Generic": true,
	// Common standard-library names
	"printf": true, "scanf": true, "malloc": true, "free": true,
	"memcpy": true, "memset": true,
	"strlen": true, "strcpy": true, "strcmp": true, "strcat": true,
	"sprintf": true, "snprintf": true,
	"fopen": true, "fclose": true, "fread": true, "fwrite": true,
	"fprintf": true, "fscanf": true,
	"exit": true, "NULL": true,
}

// isReservedWord reports whether name must be left untouched. C is
// case-sensitive, so the lookup is exact.
func isReservedWord(name string) bool {
	return cReserved[name]
}
