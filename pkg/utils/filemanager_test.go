package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

func TestGenerateOutputFileName(t *testing.T) {
	tests := []struct {
		name   string
		format string
		ext    string
		params map[string]string
		want   string
	}{
		{
			name:   "timestamp",
			format: "bom_{timestamp}.xlsx",
			ext:    ".xlsx",
			want:   "bom_20240115_143022.xlsx",
		},
		{
			name:   "date and time",
			format: "{date}-{time}",
			ext:    ".xlsx",
			want:   "20240115-143022.xlsx",
		},
		{
			name:   "extension is case insensitive",
			format: "REPORT.XLSX",
			ext:    ".xlsx",
			want:   "REPORT.XLSX",
		},
		{
			name:   "custom params",
			format: "{po}_{date}.xlsx",
			ext:    ".xlsx",
			params: map[string]string{"po": "PO1234"},
			want:   "PO1234_20240115.xlsx",
		},
		{
			name:   "no extension required",
			format: "plain",
			want:   "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFileName(tt.format, tt.ext, fixedTime, tt.params))
		})
	}
}

func TestGenerateOutputFileNameUUID(t *testing.T) {
	name := GenerateOutputFileName("bom_{uuid}_{uuid}", ".xlsx", fixedTime, nil)

	require.True(t, strings.HasSuffix(name, ".xlsx"))
	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(name, "bom_"), ".xlsx"), "_")
	require.Len(t, parts, 2)

	for _, part := range parts {
		_, err := uuid.Parse(part)
		assert.NoError(t, err, part)
	}
	assert.NotEqual(t, parts[0], parts[1])
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "2024")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureDir(""))
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first := UniquePath(dir, "report.xlsx")
	assert.Equal(t, filepath.Join(dir, "report.xlsx"), first)
	require.NoError(t, os.WriteFile(first, nil, 0o644))

	second := UniquePath(dir, "report.xlsx")
	assert.Equal(t, filepath.Join(dir, "report_1.xlsx"), second)
	require.NoError(t, os.WriteFile(second, nil, 0o644))

	assert.Equal(t, filepath.Join(dir, "report_2.xlsx"), UniquePath(dir, "report.xlsx"))
	assert.True(t, FileExists(first))
	assert.False(t, FileExists(filepath.Join(dir, "missing.xlsx")))
}
