// Package export writes calculation results to report files.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
	"github.com/ginjaninja78/bom-discount-calculator/pkg/utils"
)

// Report formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Exporter writes reports to a directory.
type Exporter struct {
	format     string
	dir        string
	nameFormat string
	sheet      string
	now        func() time.Time
}

// NewExporter creates an Exporter from the export configuration.
func NewExporter(cfg config.Export) *Exporter {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = FormatXLSX
	}

	return &Exporter{
		format:     format,
		dir:        cfg.Dir,
		nameFormat: cfg.FileNameFormat,
		sheet:      cfg.SheetName,
		now:        time.Now,
	}
}

// Export writes result to a new report file and returns its path.
// Existing files are never overwritten.
//
// RETURNS:
//   - The path of the written report.
//   - An error if the directory or the file cannot be written.
func (e *Exporter) Export(result *types.CalculationResult) (string, error) {
	if err := utils.EnsureDir(e.dir); err != nil {
		return "", err
	}

	now := e.now()
	name := utils.GenerateOutputFileName(e.nameFormat, "."+e.format, now, nil)
	path := utils.UniquePath(e.dir, name)

	switch e.format {
	case FormatXLSX:
		f, err := Build(result, e.sheet)
		if err != nil {
			return "", err
		}
		defer f.Close()

		if err := f.SaveAs(path); err != nil {
			return "", fmt.Errorf("failed to save report %s: %w", path, err)
		}

	case FormatPDF:
		data, err := BuildPDF(result, now)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to save report %s: %w", path, err)
		}

	default:
		return "", fmt.Errorf("unsupported report format %q", e.format)
	}

	return path, nil
}
