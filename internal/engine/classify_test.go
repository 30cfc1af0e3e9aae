package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyFixture(t *testing.T, src string, opts Options) *Ctx {
	t.Helper()
	c := NewCtx(&opts)
	Classify(c.Protect(src), c)
	return c
}

func TestClassifyCategories(t *testing.T) {
	src := `#define MAX_SIZE 100
enum Color { RED, GREEN = 2, BLUE };
struct Point {
    int x_coord;
    unsigned int flags : 3;
    char label[20];
};
union Register {
    unsigned int raw;
};
static int helper_func(int count, struct Point *pt) {
    int local_total = count;
    pt->x_coord = local_total;
    return local_total;
}
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})

	assert.Equal(t, "UtD1", c.names[CatMacro]["MAX_SIZE"])
	assert.Equal(t, "Ute1", c.names[CatEnum]["Color"])
	assert.Equal(t, "Utt1", c.names[CatStruct]["Point"])
	assert.Equal(t, "Utu1", c.names[CatUnion]["Register"])
	assert.Equal(t, "Utf1", c.names[CatFunction]["helper_func"])

	// Enumerators, declarators, bit-fields and arrays all land in member.
	for _, name := range []string{"RED", "GREEN", "BLUE", "x_coord", "flags", "label", "raw"} {
		assert.Contains(t, c.names[CatMember], name, "member %s", name)
	}

	// Locals and parameters land in variable.
	for _, name := range []string{"count", "pt", "local_total"} {
		assert.Contains(t, c.names[CatVariable], name, "variable %s", name)
	}
}

func TestReservedNamesSkipped(t *testing.T) {
	src := `int main(void) { printf("x"); return 0; }
#define printf wrapped
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.NotContains(t, c.names[CatMacro], "printf")
	assert.NotContains(t, c.names[CatFunction], "printf")
	// main is deliberately not reserved; the table maps it back.
	assert.Contains(t, c.names[CatFunction], "main")
}

// TestFirstClaimWins: a name seen as a macro first must not be
// re-categorized when a later pattern matches it too.
func TestFirstClaimWins(t *testing.T) {
	src := `#define total 1
int total = 2;
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Contains(t, c.names[CatMacro], "total")
	assert.NotContains(t, c.names[CatVariable], "total")
}

// TestEnumeratorWithCommentInside: a comment placeholder inside an enum
// body must not be claimed as an enumerator.
func TestEnumeratorWithCommentInside(t *testing.T) {
	src := `enum Status {
    IDLE = 0,   // nothing to do
    RUNNING = 1 /* busy */
};
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	require.Contains(t, c.names[CatMember], "IDLE")
	require.Contains(t, c.names[CatMember], "RUNNING")
	assert.Equal(t, 2, c.counts()[CatMember])
}

// TestFloatLiteralNotMember: 3.14 must not produce a bogus member from the
// dot-access pattern.
func TestFloatLiteralNotMember(t *testing.T) {
	src := "double pi_value = 3.14;\n"
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Equal(t, 0, c.counts()[CatMember])
	assert.Contains(t, c.names[CatVariable], "pi_value")
}

// TestFloatExponentNotMember: exponent and suffix forms put an identifier
// shape right after the dot; the digit before it marks them as literals.
func TestFloatExponentNotMember(t *testing.T) {
	src := "double big = 1.e5;\nfloat ratio = 2.f;\n"
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Equal(t, 0, c.counts()[CatMember])
	assert.Contains(t, c.names[CatVariable], "big")
	assert.Contains(t, c.names[CatVariable], "ratio")
}

// TestDigitReceiverMemberStillFound: a member accessed only through a
// digit-suffixed receiver is recovered from its declaration.
func TestDigitReceiverMemberStillFound(t *testing.T) {
	src := `struct Pair { int left_val; };
int take(struct Pair p1) { return p1.left_val; }
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Contains(t, c.names[CatMember], "left_val")
}

// TestForwardDeclarations: tags and prototypes without bodies still
// classify.
func TestForwardDeclarations(t *testing.T) {
	src := `struct Node;
int lookup(struct Node *head, int key);
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Contains(t, c.names[CatStruct], "Node")
	assert.Contains(t, c.names[CatFunction], "lookup")
	assert.Contains(t, c.names[CatVariable], "head")
	assert.Contains(t, c.names[CatVariable], "key")
}

// TestNumberingFollowsDiscoveryOrder keeps repeated runs reproducible.
func TestNumberingFollowsDiscoveryOrder(t *testing.T) {
	src := `int first_var = 1;
int second_var = 2;
`
	c := classifyFixture(t, src, Options{Prefix: "Ut"})
	assert.Equal(t, "Utv1", c.names[CatVariable]["first_var"])
	assert.Equal(t, "Utv2", c.names[CatVariable]["second_var"])
}
