package engine

import (
	"fmt"
	"os"
	"strings"
)

// Metrics holds objective measures of one transform.
type Metrics struct {
	SizeBytes      int     // output size in bytes
	InputSizeBytes int     // original input size
	SizeRatio      float64 // output/input (<1 = output shrank)
	LineCount      int     // lines in output
	Renamed        int     // identifiers renamed (all categories except comment)
	Comments       int     // comment bodies rewritten
}

// ComputeMetrics computes metrics for a finished forward transform.
func ComputeMetrics(payload string, inputSize int, counts [numCategories]int) Metrics {
	m := Metrics{
		SizeBytes:      len(payload),
		InputSizeBytes: inputSize,
		Comments:       counts[CatComment],
	}
	for cat := CatMacro; cat < CatComment; cat++ {
		m.Renamed += counts[cat]
	}
	if m.SizeBytes > 0 {
		m.LineCount = strings.Count(payload, "\n") + 1
	}
	if inputSize > 0 {
		m.SizeRatio = float64(m.SizeBytes) / float64(inputSize)
	}
	return m
}

// PrintMetrics prints metrics to stderr (if !quiet).
func PrintMetrics(m Metrics, quiet bool) {
	if quiet {
		return
	}
	line := fmt.Sprintf("%sMetrics:%s renamed=%s%d%s identifiers | comments=%s%d%s | size=%d bytes",
		Cyan, Reset, Green, m.Renamed, Reset, Green, m.Comments, Reset, m.SizeBytes)
	if m.SizeRatio > 0 {
		line += fmt.Sprintf(" | ratio=%.2fx", m.SizeRatio)
	}
	if m.LineCount > 0 {
		line += fmt.Sprintf(" | lines=%d", m.LineCount)
	}
	fmt.Fprintln(os.Stderr, line)
}
