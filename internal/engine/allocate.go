package engine

import (
	"strconv"
	"strings"
)

// claim records name under cat unless it is reserved, already claimed by an
// earlier category, or a shield placeholder. First claim wins; later
// patterns never re-categorize a name.
func (c *Ctx) claim(cat Category, name string) {
	if name == "" || isReservedWord(name) || c.claimed[name] {
		return
	}
	if strings.HasPrefix(name, placeholderPrefix) {
		return
	}
	c.register(cat, name)
}

// register assigns a replacement name to original within cat, or returns the
// existing assignment. Comment bodies are free text and deliberately do not
// enter the claimed set: a comment that happens to spell an identifier must
// not block that identifier's own classification.
func (c *Ctx) register(cat Category, original string) string {
	if assigned, ok := c.names[cat][original]; ok {
		return assigned
	}
	assigned := c.allocate(cat)
	c.names[cat][original] = assigned
	c.order[cat] = append(c.order[cat], original)
	if cat != CatComment {
		c.claimed[original] = true
	}
	return assigned
}

// allocate produces <prefix><letter><n> and advances the per-category
// counter. Numbering starts at 1 and is fully determined by discovery order,
// which keeps repeated runs over the same input reproducible.
func (c *Ctx) allocate(cat Category) string {
	n := c.counters[cat]
	c.counters[cat]++
	return c.Prefix + categoryLetters[cat] + strconv.Itoa(n)
}

// renamePairs returns the forward substitution pairs for every category
// except comments, which are rewritten during protection instead.
func (c *Ctx) renamePairs() []renamePair {
	var pairs []renamePair
	for cat := CatMacro; cat < CatComment; cat++ {
		for _, name := range c.order[cat] {
			pairs = append(pairs, renamePair{from: name, to: c.names[cat][name]})
		}
	}
	return pairs
}

// counts returns how many names were assigned per category.
func (c *Ctx) counts() [numCategories]int {
	var out [numCategories]int
	for i, n := range c.counters {
		out[i] = n - 1
	}
	return out
}
