// Package obfusc exposes the C source obfuscation engine as a library.
//
// The forward direction renames identifiers and renumbers comments while
// leaving string literals, character literals and shielded preprocessor
// lines untouched; the conversion table it returns is everything needed to
// reverse the transform later.
package obfusc

import "github.com/benzoXdev/obfusc/internal/engine"

// Config mirrors the CLI options. The zero value obfuscates with bare
// category letters and no directive shielding.
type Config = engine.Options

// DefaultPrefix is the replacement-name prefix the CLI uses by default.
const DefaultPrefix = engine.DefaultPrefix

// Obfuscate transforms C source and returns the obfuscated code together
// with the conversion table text.
func Obfuscate(source string, cfg Config) (code string, table string) {
	return engine.ObfuscateString(source, cfg)
}

// Restore reverses an obfuscation using the conversion table produced by
// the forward run.
func Restore(source, table string, cfg Config) string {
	return engine.RestoreString(source, table, cfg)
}
