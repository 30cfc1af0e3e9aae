// Package main is the CLI entry point for obfusc.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benzoXdev/obfusc/internal/engine"
)

// Version info (set via ldflags)
var Version = "0.3.0"

var opts engine.Options

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "obfusc",
	Short: "Reversible C source identifier obfuscator",
	Long: `obfusc renames macros, types, functions, variables and members in a C
source file to opaque generated names and renumbers comments, while leaving
string literals, character literals and shielded preprocessor lines exactly
as they were. The conversion table written next to the output is sufficient
to restore the original file later.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate [file.c]",
	Short: "Obfuscate a C source file",
	Long: `Reads file.c (or stdin when no file is given), writes
file_obfuscated.c and file_conversion_table.txt next to it. Use --output,
--table and --stdout to override the derived paths.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindInput(args)
		return engine.RunObfuscate(opts)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [file_obfuscated.c]",
	Short: "Restore an obfuscated file from its conversion table",
	Long: `Reads an obfuscated file, finds its conversion table (derived from the
input name unless --table is given) and writes file_restored.c. Restoring
from stdin requires an explicit --table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindInput(args)
		return engine.RunRestore(opts)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.c]",
	Short: "Scan a file and report what obfuscation would rename",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindInput(args)
		return engine.RunAnalyze(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress summary output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostic logging")

	for _, cmd := range []*cobra.Command{obfuscateCmd, restoreCmd} {
		cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "Output file (default: derived from input name)")
		cmd.Flags().StringVarP(&opts.TableFile, "table", "t", "", "Conversion table file (default: derived from input name)")
		cmd.Flags().BoolVar(&opts.UseStdout, "stdout", false, "Write transformed source to stdout")
		cmd.Flags().BoolVar(&opts.RenameCompound, "rename-compound", false, "Also rewrite names inside underscore-joined identifiers")
	}
	obfuscateCmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", engine.DefaultPrefix, "Replacement-name prefix")
	obfuscateCmd.Flags().BoolVar(&opts.ShieldDirectives, "shield-directives", true, "Keep #include/#if/#pragma lines untouched")

	rootCmd.AddCommand(obfuscateCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// bindInput resolves the positional argument against the stdin flag and
// attaches the logger.
func bindInput(args []string) {
	if len(args) == 1 {
		opts.InputFile = args[0]
	} else {
		opts.UseStdin = true
	}
	opts.Logger = buildLogger()
}

func buildLogger() *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	// Clean exit on Ctrl+C
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\n\033[33mInterrupted.\033[0m")
		os.Exit(130)
	}()

	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", engine.Red, engine.Reset, err)
		os.Exit(1)
	}
	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "%sDone in %s%s\n", engine.Gray, time.Since(start).Round(time.Millisecond), engine.Reset)
	}
}
