package engine

import "testing"

// TestLongestNameFirst: m1 must never be rewritten inside an m10 token.
func TestLongestNameFirst(t *testing.T) {
	pairs := []renamePair{
		{from: "Utm1", to: "alpha"},
		{from: "Utm10", to: "beta"},
	}
	got := Substitute("Utm1 + Utm10", pairs, false, "Ut")
	if got != "alpha + beta" {
		t.Errorf("got %q, want %q", got, "alpha + beta")
	}
}

// TestBoundaryMatching: a pair must not fire on a sub-token occurrence.
func TestBoundaryMatching(t *testing.T) {
	pairs := []renamePair{{from: "max", to: "UtD1"}}
	got := Substitute("int max; int maxlen; int old_max;", pairs, false, "Ut")
	want := "int UtD1; int maxlen; int old_max;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestDeterministicTieBreak: equal-length names apply in a fixed order, so
// repeated runs agree.
func TestDeterministicTieBreak(t *testing.T) {
	pairs := []renamePair{
		{from: "aa", to: "x1"},
		{from: "ab", to: "x2"},
	}
	first := Substitute("aa ab", pairs, false, "")
	for i := 0; i < 5; i++ {
		if got := Substitute("aa ab", pairs, false, ""); got != first {
			t.Fatalf("run %d differs: %q vs %q", i, got, first)
		}
	}
}

// TestCompoundMode rewrites a prefixed name inside an underscore-joined
// identifier, but only when asked to.
func TestCompoundMode(t *testing.T) {
	pairs := []renamePair{{from: "Utv1", to: "count"}}
	plain := Substitute("int Utv1_total = Utv1;", pairs, false, "Ut")
	if plain != "int Utv1_total = count;" {
		t.Errorf("plain mode: got %q", plain)
	}
	compound := Substitute("int Utv1_total = Utv1;", pairs, true, "Ut")
	if compound != "int count_total = count;" {
		t.Errorf("compound mode: got %q", compound)
	}
}

// TestCompoundGateByPrefix: compound mode must not touch names that do not
// carry the prefix, or it would rewrite coincidental substrings.
func TestCompoundGateByPrefix(t *testing.T) {
	pairs := []renamePair{{from: "max", to: "limit"}}
	got := Substitute("int max_len;", pairs, true, "Ut")
	if got != "int max_len;" {
		t.Errorf("unprefixed pair escaped the compound gate: %q", got)
	}
}

// TestDollarInReplacement: restored originals may contain $, which must not
// be read as a group reference.
func TestDollarInReplacement(t *testing.T) {
	pairs := []renamePair{{from: "Utv1", to: "price$total"}}
	got := Substitute("Utv1_x", pairs, true, "Ut")
	if got != "price$total_x" {
		t.Errorf("got %q", got)
	}
}
