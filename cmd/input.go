package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/tabular"
)

// stdinPath selects standard input as the BOM source.
const stdinPath = "-"

// readBOM returns the BOM payload from a file, stdin or the clipboard.
//
// PARAMETERS:
//   - cmd:  The running command, for its input stream.
//   - path: A file path, "-" for stdin, or "" for the clipboard.
func readBOM(cmd *cobra.Command, path string) (tabular.Payload, error) {
	switch path {
	case "":
		logger.Debug().Msg("reading BOM from clipboard")
		raw, err := newClipboard().ReadText()
		if err != nil {
			return tabular.Payload{}, err
		}
		return tabular.Payload{Text: raw, Delimiter: appConfig.Input.Delimiter}, nil

	case stdinPath:
		logger.Debug().Msg("reading BOM from stdin")
		payload, err := tabular.ReadStream(cmd.InOrStdin(), appConfig.Input)
		if err != nil {
			return tabular.Payload{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return payload, nil

	default:
		logger.Debug().Str("file", path).Msg("reading BOM from file")
		return tabular.ReadFile(path, appConfig.Input)
	}
}

// engineFor builds an engine that splits cells the way payload needs.
func engineFor(payload tabular.Payload) *discount.Engine {
	return newEngine().WithDelimiter(payload.Delimiter)
}
