package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// ObfuscateString runs the full forward pipeline over source and returns
// the obfuscated code plus the conversion table text. It never fails:
// source that matches nothing comes back unchanged with an empty-bodied
// table.
func ObfuscateString(source string, opts Options) (string, string) {
	c := NewCtx(&opts)
	return obfuscateWith(c, source)
}

func obfuscateWith(c *Ctx, source string) (string, string) {
	protected := c.Protect(source)
	Classify(protected, c)
	substituted := Substitute(protected, c.renamePairs(), false, c.Prefix)
	return c.Unprotect(substituted), EncodeTable(c)
}

// RestoreString reverses an obfuscation given the table text that the
// forward run produced.
func RestoreString(source, tableText string, opts Options) string {
	tbl := DecodeTable(tableText, opts.Logger)
	return Restore(source, tbl, &opts)
}

// RunObfuscate is the file-level forward entry point: read, transform,
// write code and table, report.
func RunObfuscate(opts Options) error {
	if err := requireInput(opts); err != nil {
		return err
	}
	data, err := readAllInput(opts)
	if err != nil {
		return err
	}
	if err := validateUTF8(data); err != nil {
		return err
	}

	inputName := opts.InputFile
	if opts.UseStdin {
		inputName = "<stdin>"
	}
	outputPath := opts.OutputFile
	if outputPath == "" && !opts.UseStdout {
		if opts.UseStdin {
			outputPath = "obfuscated.c"
		} else {
			outputPath = obfuscatedName(opts.InputFile)
		}
	}
	tablePath := opts.TableFile
	if tablePath == "" {
		if opts.UseStdin {
			tablePath = "conversion_table.txt"
		} else {
			tablePath = tableName(opts.InputFile)
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	c := NewCtx(&opts)
	code, table := obfuscateWith(c, string(data))
	elapsed := time.Since(start)
	counts := c.counts()
	log.Debug("forward transform finished",
		zap.String("input", inputName),
		zap.Duration("elapsed", elapsed))

	if opts.UseStdout {
		if _, err := os.Stdout.WriteString(code); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
	} else {
		if err := os.WriteFile(outputPath, []byte(code), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := os.WriteFile(tablePath, []byte(table), 0o644); err != nil {
		return fmt.Errorf("writing conversion table: %w", err)
	}

	if !opts.Quiet {
		out := outputPath
		if opts.UseStdout {
			out = "<stdout>"
		}
		PrintReport(Report{
			InputPath:  inputName,
			OutputPath: out,
			TablePath:  tablePath,
			Prefix:     opts.Prefix,
			Counts:     counts,
			InputSize:  len(data),
			OutputSize: len(code),
			Duration:   elapsed,
		})
		PrintMetrics(ComputeMetrics(code, len(data), counts), opts.Quiet)
	}
	return nil
}

// RunRestore is the file-level reverse entry point. The conversion table is
// taken from opts.TableFile, or derived from the input name when unset.
func RunRestore(opts Options) error {
	if err := requireInput(opts); err != nil {
		return err
	}
	data, err := readAllInput(opts)
	if err != nil {
		return err
	}
	if err := validateUTF8(data); err != nil {
		return err
	}

	tablePath := opts.TableFile
	if tablePath == "" {
		if opts.UseStdin {
			return errors.New("restoring from stdin requires -table")
		}
		tablePath = tableNameFor(opts.InputFile)
	}
	tableData, err := os.ReadFile(tablePath)
	if err != nil {
		return fmt.Errorf("conversion table: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tbl := DecodeTable(string(tableData), log)
	restored := Restore(string(data), tbl, &opts)

	outputPath := opts.OutputFile
	if outputPath == "" && !opts.UseStdout {
		if opts.UseStdin {
			outputPath = "restored.c"
		} else {
			outputPath = restoredName(opts.InputFile)
		}
	}
	if opts.UseStdout {
		if _, err := os.Stdout.WriteString(restored); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
	} else {
		if err := os.WriteFile(outputPath, []byte(restored), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if !opts.Quiet {
		out := outputPath
		if opts.UseStdout {
			out = "<stdout>"
		}
		PrintRestoreSummary(tbl, out)
	}
	return nil
}

// RunAnalyze scans the input without transforming it and prints what a
// forward run would find.
func RunAnalyze(opts Options) error {
	if err := requireInput(opts); err != nil {
		return err
	}
	data, err := readAllInput(opts)
	if err != nil {
		return err
	}
	if err := validateUTF8(data); err != nil {
		return err
	}
	PrintAnalysis(AnalyzeSource(string(data)), opts.Quiet)
	return nil
}
