package engine

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxInputSize is a safety limit to prevent memory exhaustion (100 MB).
const maxInputSize = 100 * 1024 * 1024

// utf8BOM is the UTF-8 Byte Order Mark (EF BB BF).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM removes a leading UTF-8 BOM. A BOM inside the transform buffer
// would end up glued to the first token of the output.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

func readAllInput(opts Options) ([]byte, error) {
	if opts.UseStdin {
		data, err := io.ReadAll(io.LimitReader(bufio.NewReader(os.Stdin), maxInputSize+1))
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		if len(data) > maxInputSize {
			return nil, fmt.Errorf("input too large (>%d bytes, safety limit)", maxInputSize)
		}
		return stripBOM(data), nil
	}
	fi, err := os.Stat(opts.InputFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", opts.InputFile)
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("input is a directory, not a file: %s", opts.InputFile)
	}
	if fi.Size() > maxInputSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d)", fi.Size(), maxInputSize)
	}
	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return stripBOM(data), nil
}

// validateUTF8 checks that data is valid UTF-8. Comment bodies travel
// through the conversion table as text, so the input must be text.
func validateUTF8(data []byte) error {
	if len(data) == 0 {
		return errors.New("file is empty")
	}
	if !utf8.Valid(data) {
		return errors.New("file is not valid UTF-8, save it as UTF-8 (with or without BOM)")
	}
	return nil
}

func requireInput(opts Options) error {
	if !opts.UseStdin && opts.InputFile == "" {
		return errors.New("missing input (pass a file or use -stdin)")
	}
	return nil
}

// Derived file names follow the fixed conventions so reversal can find its
// inputs without extra flags:
//
//	src.c -> src_obfuscated.c + src_conversion_table.txt
//	src_obfuscated.c -> src_restored.c

const (
	obfuscatedSuffix = "_obfuscated.c"
	restoredSuffix   = "_restored.c"
	tableSuffix      = "_conversion_table.txt"
)

func stripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func obfuscatedName(input string) string {
	return stripExt(input) + obfuscatedSuffix
}

func tableName(input string) string {
	return stripExt(input) + tableSuffix
}

func restoredName(input string) string {
	if base, ok := strings.CutSuffix(input, obfuscatedSuffix); ok {
		return base + restoredSuffix
	}
	return stripExt(input) + restoredSuffix
}

// tableNameFor guesses the table path belonging to an obfuscated file.
func tableNameFor(input string) string {
	if base, ok := strings.CutSuffix(input, obfuscatedSuffix); ok {
		return base + tableSuffix
	}
	return stripExt(input) + tableSuffix
}
