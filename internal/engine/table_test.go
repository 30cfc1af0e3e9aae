package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCtx(&Options{Prefix: "Ut"})
	c.register(CatMacro, "MAX_SIZE")
	c.register(CatStruct, "Point")
	c.register(CatMember, "x_coord")
	c.register(CatMember, "y_coord")
	c.register(CatComment, "track the 2d position")

	encoded := EncodeTable(c)
	require.True(t, strings.HasPrefix(encoded, "prefix: Ut\n"))
	assert.Contains(t, encoded, "[macro]")
	assert.Contains(t, encoded, "  MAX_SIZE                       -> UtD1")

	tbl := DecodeTable(encoded, nil)
	assert.Equal(t, "Ut", tbl.Prefix)
	assert.Equal(t, "MAX_SIZE", tbl.Reverse["UtD1"])
	assert.Equal(t, "Point", tbl.Reverse["Utt1"])
	assert.Equal(t, "x_coord", tbl.Reverse["Utm1"])
	assert.Equal(t, "track the 2d position", tbl.Reverse["Utc1"])
	assert.Equal(t, CatComment, tbl.Cats["Utc1"])
	assert.Equal(t, CatMember, tbl.Cats["Utm2"])
}

// TestDecodeArbitraryOriginal: once a prefix is declared, the original side
// may be free text, including the arrow the grammar itself uses.
func TestDecodeArbitraryOriginal(t *testing.T) {
	table := "prefix: Ut\n\n[comment]\n  follow p -> next until NULL      -> Utc1\n"
	tbl := DecodeTable(table, nil)
	require.Len(t, tbl.Reverse, 1)
	assert.Equal(t, "follow p -> next until NULL", tbl.Reverse["Utc1"])
}

// TestEncodeMultiLineOriginal: originals with embedded newlines stay on one
// table line so the line-oriented grammar cannot truncate them on decode.
func TestEncodeMultiLineOriginal(t *testing.T) {
	c := NewCtx(&Options{Prefix: "Ut"})
	c.register(CatComment, "first line\n   second line")

	encoded := EncodeTable(c)
	assert.Contains(t, encoded, `first line\n   second line`)
	entryLines := 0
	for _, line := range strings.Split(encoded, "\n") {
		if strings.Contains(line, "second line") {
			entryLines++
			assert.Contains(t, line, "first line")
		}
	}
	assert.Equal(t, 1, entryLines)

	tbl := DecodeTable(encoded, nil)
	require.Len(t, tbl.Reverse, 1)
	assert.Equal(t, "first line\n   second line", tbl.Reverse["Utc1"])
}

// TestEscapedBackslashRoundTrip: a comment body spelling a literal \n must
// not be confused with an escaped newline.
func TestEscapedBackslashRoundTrip(t *testing.T) {
	c := NewCtx(&Options{Prefix: "Ut"})
	c.register(CatComment, `use \n for newline`)

	tbl := DecodeTable(EncodeTable(c), nil)
	require.Len(t, tbl.Reverse, 1)
	assert.Equal(t, `use \n for newline`, tbl.Reverse["Utc1"])
}

// TestDecodeHeaderless falls back to inferring the category from the letter
// after the prefix.
func TestDecodeHeaderless(t *testing.T) {
	table := "prefix: Ut\n  alpha                          -> UtD1\n  beta                           -> Utv1\n"
	tbl := DecodeTable(table, nil)
	assert.Equal(t, CatMacro, tbl.Cats["UtD1"])
	assert.Equal(t, CatVariable, tbl.Cats["Utv1"])
}

// TestDecodeGarbageSoftFails: an unparsable table yields an empty map, not
// an error; the caller decides how to proceed.
func TestDecodeGarbageSoftFails(t *testing.T) {
	tbl := DecodeTable("this is not a conversion table\nat all\n", nil)
	assert.Empty(t, tbl.Reverse)
}

// TestDecodeIgnoresNoise: blank lines and unknown section headers do not
// derail parsing.
func TestDecodeIgnoresNoise(t *testing.T) {
	table := "prefix: Ut\n\n[banana]\n\n[variable]\n  counter                        -> Utv1\n\n"
	tbl := DecodeTable(table, nil)
	require.Len(t, tbl.Reverse, 1)
	assert.Equal(t, CatVariable, tbl.Cats["Utv1"])
}

// TestReencodeStable: decoding a table and re-encoding its contents yields
// the same text, because entries sort by original name.
func TestReencodeStable(t *testing.T) {
	c := NewCtx(&Options{Prefix: "Ut"})
	c.register(CatVariable, "zeta")
	c.register(CatVariable, "alpha")
	encoded := EncodeTable(c)

	tbl := DecodeTable(encoded, nil)
	c2 := NewCtx(&Options{Prefix: "Ut"})
	for assigned, original := range tbl.Reverse {
		c2.names[tbl.Cats[assigned]][original] = assigned
	}
	assert.Equal(t, encoded, EncodeTable(c2))
}

// TestUnprefixedTable: with an empty prefix there is no declaration line
// and both sides are plain identifiers.
func TestUnprefixedTable(t *testing.T) {
	c := NewCtx(&Options{})
	c.register(CatFunction, "calc_sum")
	encoded := EncodeTable(c)
	assert.False(t, strings.Contains(encoded, "prefix:"))
	assert.Contains(t, encoded, "  calc_sum                       -> f1")

	tbl := DecodeTable(encoded, nil)
	assert.Equal(t, "calc_sum", tbl.Reverse["f1"])
	assert.Equal(t, CatFunction, tbl.Cats["f1"])
}
