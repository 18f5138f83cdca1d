// =============================================================================
// BOM Discount Calculator - Tabular Parser
// =============================================================================
//
// This module turns a pasted table into a Matrix. A BOM copied from the ERP
// system arrives on the clipboard as tab-separated cells with one row per
// line. Cells are kept exactly as pasted: no trimming, no type coercion.
//
// LINE ENDINGS:
//   CR, LF and CRLF are all accepted. By default a CRLF pair counts as one
//   separator. With LegacyLineSplitting every CR and every LF is a separator
//   of its own, so Windows-style input gains an empty row per line break.
//
// =============================================================================

package tabular

import (
	"strings"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// Options controls how raw text is split.
type Options struct {
	// Delimiter separates cells. Default: "\t".
	Delimiter string

	// LegacyLineSplitting treats CR and LF as independent separators.
	LegacyLineSplitting bool
}

// DefaultOptions returns tab-delimited parsing with CRLF normalization.
func DefaultOptions() Options {
	return Options{Delimiter: "\t"}
}

// Parse splits raw text into rows and cells.
//
// PARAMETERS:
//   - raw:  The pasted payload.
//   - opts: Delimiter and line splitting options.
//
// RETURNS:
//   - The parsed Matrix, or nil when raw is empty ("no data").
func Parse(raw string, opts Options) types.Matrix {
	if raw == "" {
		return nil
	}

	delimiter := normalizeDelimiter(opts.Delimiter)

	if !opts.LegacyLineSplitting {
		raw = strings.ReplaceAll(raw, "\r\n", "\n")
	}

	lines := splitLines(raw)

	matrix := make(types.Matrix, len(lines))
	for i, line := range lines {
		matrix[i] = strings.Split(line, delimiter)
	}

	return matrix
}

// splitLines splits on every CR and every LF, keeping empty lines.
func splitLines(s string) []string {
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// normalizeDelimiter maps the configured delimiter to the literal separator.
func normalizeDelimiter(delimiter string) string {
	switch delimiter {
	case "", "\\t", "tab", "TAB":
		return "\t"
	case "pipe", "PIPE":
		return "|"
	case "semicolon":
		return ";"
	case "comma":
		return ","
	default:
		return delimiter
	}
}
