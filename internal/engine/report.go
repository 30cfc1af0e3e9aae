package engine

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Report holds one forward-transform session for human-readable summary
// printing. The conversion table itself is the machine-readable artifact;
// this is the per-category overview next to it.
type Report struct {
	InputPath  string
	OutputPath string
	TablePath  string
	Prefix     string
	Counts     [numCategories]int
	InputSize  int
	OutputSize int
	Duration   time.Duration
}

// PrintReport writes the obfuscation summary to stderr.
func PrintReport(r Report) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "%s%s=== Obfuscation Summary ===%s\n", Bold, Cyan, Reset)
	fmt.Fprintf(os.Stderr, "%sInput:%s  %s\n", Yellow, Reset, r.InputPath)
	fmt.Fprintf(os.Stderr, "%sOutput:%s %s\n", Yellow, Reset, r.OutputPath)
	fmt.Fprintf(os.Stderr, "%sTable:%s  %s\n", Yellow, Reset, r.TablePath)
	if r.Prefix != "" {
		fmt.Fprintf(os.Stderr, "%sPrefix:%s %s%s%s\n", Yellow, Reset, Green, r.Prefix, Reset)
	}
	var parts []string
	total := 0
	for cat := Category(0); cat < numCategories; cat++ {
		if n := r.Counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%s%d%s", cat, Green, n, Reset))
			total += n
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(os.Stderr, "%sRenamed:%s %s (total %d)\n", Yellow, Reset, strings.Join(parts, " "), total)
	} else {
		fmt.Fprintf(os.Stderr, "%sRenamed:%s nothing matched\n", Yellow, Reset)
	}
	fmt.Fprintf(os.Stderr, "%sSize:%s %d -> %d bytes\n", Yellow, Reset, r.InputSize, r.OutputSize)
	if r.Duration > 0 {
		fmt.Fprintf(os.Stderr, "%sDuration:%s %s\n", Yellow, Reset, r.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(os.Stderr, "%s%s===========================%s\n", Bold, Cyan, Reset)
}

// PrintRestoreSummary writes the restoration summary to stderr: how many
// names were mapped back, bucketed per category.
func PrintRestoreSummary(tbl *DecodedTable, outputPath string) {
	counts := lo.CountValuesBy(lo.Keys(tbl.Reverse), func(assigned string) Category {
		return tbl.Cats[assigned]
	})
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "%s%s=== Restoration Summary ===%s\n", Bold, Cyan, Reset)
	fmt.Fprintf(os.Stderr, "%sOutput:%s %s\n", Yellow, Reset, outputPath)
	for cat := Category(0); cat < numCategories; cat++ {
		if n := counts[cat]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-10s %s%d%s restored\n", cat.String()+":", Green, n, Reset)
		}
	}
	fmt.Fprintf(os.Stderr, "%sTotal:%s %d entries\n", Yellow, Reset, len(tbl.Reverse))
	fmt.Fprintf(os.Stderr, "%s%s===========================%s\n", Bold, Cyan, Reset)
}
