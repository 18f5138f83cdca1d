// =============================================================================
// BOM Discount Calculator - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used by the report export:
//   - Directory management
//   - File naming with placeholders
//   - Collision-free output paths
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir and its parents if they don't exist.
//
// RETURNS:
//   - An error if the directory cannot be created.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName builds a file name from a format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Date (YYYYMMDD)
//               {time}      - Time (HHMMSS)
//   - extension: The extension the name must end with, e.g. ".xlsx".
//   - now: The time the placeholders are rendered for.
//   - params: Extra placeholder values, keyed without braces.
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//   format: "bom_discount_{timestamp}_{uuid}.xlsx"
//   output: "bom_discount_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xlsx"
func GenerateOutputFileName(format, extension string, now time.Time, params map[string]string) string {
	replacements := map[string]string{
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Each {uuid} gets its own value.
	for strings.Contains(result, "{uuid}") {
		result = strings.Replace(result, "{uuid}", uuid.New().String(), 1)
	}

	if extension != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(extension)) {
		result += extension
	}

	return result
}

// UniquePath returns filepath.Join(dir, name), adding a numeric suffix
// before the extension when the file already exists.
//
// Example: report.xlsx -> report_1.xlsx -> report_2.xlsx
func UniquePath(dir, name string) string {
	path := filepath.Join(dir, name)
	if !FileExists(path) {
		return path
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		if !FileExists(candidate) {
			return candidate
		}
	}
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
