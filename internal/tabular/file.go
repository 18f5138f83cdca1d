package tabular

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
)

// Payload is BOM text read from a file or stream.
type Payload struct {
	// Text holds the rows of the BOM.
	Text string

	// Delimiter separates cells in Text.
	Delimiter string
}

// workbookMagic is the zip signature every .xlsx file starts with.
var workbookMagic = []byte("PK\x03\x04")

// ReadFile loads a BOM payload from disk.
//
// Workbooks (.xlsx, .xlsm) and quoted CSV files (.csv) are flattened to
// tab-separated rows and always carry a tab delimiter, whatever the
// configured delimiter is, so commas and semicolons inside cells survive.
// Any other file is read as delimited text in the configured encoding.
func ReadFile(path string, settings config.Input) (Payload, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		raw, err := ReadWorkbook(path, settings.Sheet)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Text: raw, Delimiter: "\t"}, nil

	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return Payload{}, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		raw, err := ReadCSV(file, settings.Encoding, settings.CSVDelimiter)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Text: raw, Delimiter: "\t"}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readDelimited(file, settings)
}

// ReadStream loads a BOM payload from a stream such as stdin. A stream that
// starts with the zip signature is read as a workbook, anything else as
// delimited text.
func ReadStream(r io.Reader, settings config.Input) (Payload, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(workbookMagic))
	if err == nil && bytes.Equal(head, workbookMagic) {
		raw, err := ReadWorkbookFrom(br, settings.Sheet)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Text: raw, Delimiter: "\t"}, nil
	}

	return readDelimited(br, settings)
}

func readDelimited(r io.Reader, settings config.Input) (Payload, error) {
	raw, err := ReadText(r, settings.Encoding)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Text: raw, Delimiter: settings.Delimiter}, nil
}

// ReadText reads a delimited text payload and decodes it to UTF-8.
func ReadText(r io.Reader, encodingName string) (string, error) {
	decoder, err := lookupDecoder(encodingName)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(transform.NewReader(bufio.NewReader(r), decoder))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}

// lookupDecoder returns the decoder for a configured encoding name.
// UTF-8 input has a leading byte order mark removed.
func lookupDecoder(name string) (transform.Transformer, error) {
	var enc encoding.Encoding

	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "UTF-8", "UTF8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		enc = charmap.Windows1252
	case "ISO-8859-1", "LATIN1", "LATIN-1":
		enc = charmap.ISO8859_1
	case "ISO-8859-15", "LATIN9":
		enc = charmap.ISO8859_15
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}

	return enc.NewDecoder(), nil
}
