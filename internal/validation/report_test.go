package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

func sampleDiagnostics() []types.Diagnostic {
	return []types.Diagnostic{
		{Severity: types.SeverityInfo, Row: 2, Message: "quantity or unit price is empty; row skipped"},
		{Severity: types.SeverityWarning, Row: 4, Field: types.FieldQuantity, Value: "abc", Message: "not a number"},
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(5, sampleDiagnostics())

	assert.Equal(t, 1, report.WarningCount)
	assert.Equal(t, 1, report.InfoCount)
	assert.False(t, report.Clean())
	assert.Equal(t, "5 row(s) checked: 1 warning(s), 1 skipped", report.Summary())

	assert.True(t, NewReport(3, nil).Clean())
}

func TestFormatDiagnostic(t *testing.T) {
	diags := sampleDiagnostics()

	assert.Equal(t, "[INFO] Row 2: quantity or unit price is empty; row skipped", FormatDiagnostic(diags[0]))
	assert.Equal(t, "[WARNING] Row 4, Field 'quantity': not a number (value: 'abc')", FormatDiagnostic(diags[1]))
}

func TestFormatDiagnostics(t *testing.T) {
	assert.Equal(t, "No problems found.\n", FormatDiagnostics(nil))

	out := FormatDiagnostics(sampleDiagnostics())
	assert.Contains(t, out, "Found 2 problem(s):")
	assert.Contains(t, out, "1. [INFO] Row 2")
	assert.Contains(t, out, "2. [WARNING] Row 4")
}

func TestWriteDiagnosticLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.log")

	require.NoError(t, WriteDiagnosticLog(NewReport(5, sampleDiagnostics()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "5 row(s) checked")
	assert.Contains(t, string(data), "[WARNING] Row 4")

	err = WriteDiagnosticLog(NewReport(0, nil), filepath.Join(t.TempDir(), "missing", "check.log"))
	assert.Error(t, err)
}
