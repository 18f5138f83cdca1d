package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

var navHeader = []string{"No.", "Description", "Quantity", "Unit Price Excl. VAT"}

func TestFindFieldIndex(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		label  string
		want   int
	}{
		{name: "present", header: navHeader, label: "Quantity", want: 2},
		{name: "absent", header: navHeader, label: "Line Discount %", want: types.NotFound},
		{name: "case sensitive", header: navHeader, label: "quantity", want: types.NotFound},
		{name: "whitespace sensitive", header: []string{"Quantity "}, label: "Quantity", want: types.NotFound},
		{name: "first match wins", header: []string{"x", "Quantity", "Quantity"}, label: "Quantity", want: 1},
		{name: "position zero", header: []string{"Quantity"}, label: "Quantity", want: 0},
		{name: "nil header", header: nil, label: "Quantity", want: types.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindFieldIndex(tt.header, tt.label))
		})
	}
}

func TestResolveColumns(t *testing.T) {
	labels := config.Default().Columns.Labels()
	columns := ResolveColumns(navHeader, labels)

	assert.Len(t, columns, len(types.Fields))
	assert.Equal(t, 0, columns.Index(types.FieldCode))
	assert.Equal(t, 1, columns.Index(types.FieldDescription))
	assert.Equal(t, 2, columns.Index(types.FieldQuantity))
	assert.Equal(t, 3, columns.Index(types.FieldUnitPrice))
	assert.Equal(t, types.NotFound, columns.Index(types.FieldLineDiscount))
	assert.Equal(t, types.NotFound, columns.Index(types.FieldDiscountedUnitPrice))
	assert.Equal(t, types.NotFound, columns.Index(types.FieldLineAmount))
	assert.False(t, columns.Found(types.FieldLineAmount))
}

func TestValidate(t *testing.T) {
	labels := config.Default().Columns.Labels()

	tests := []struct {
		name        string
		header      []string
		legacy      bool
		wantMissing []string
	}{
		{
			name:   "complete header",
			header: navHeader,
		},
		{
			name:        "unit price missing",
			header:      []string{"No.", "Description", "Quantity"},
			wantMissing: []string{"Unit Price Excl. VAT"},
		},
		{
			name:        "both missing",
			header:      []string{"No."},
			wantMissing: []string{"Quantity", "Unit Price Excl. VAT"},
		},
		{
			name:   "quantity at position zero accepted",
			header: []string{"Quantity", "Unit Price Excl. VAT"},
		},
		{
			name:        "quantity at position zero rejected in legacy mode",
			header:      []string{"Quantity", "Unit Price Excl. VAT"},
			legacy:      true,
			wantMissing: []string{"Quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(ResolveColumns(tt.header, labels), labels, tt.legacy)
			if tt.wantMissing == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingColumns))

			var mce *MissingColumnsError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, tt.wantMissing, mce.Labels)
		})
	}
}

func TestResolveAndValidate_EmptyMatrix(t *testing.T) {
	labels := config.Default().Columns.Labels()

	columns, err := ResolveAndValidate(nil, labels, false)
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Nil(t, columns)
}
