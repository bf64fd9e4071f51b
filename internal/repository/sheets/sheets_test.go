package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	d, err := time.ParseInLocation("2006-01-02", value, loc)
	require.NoError(t, err)
	return d
}

func TestMonthlySheetTitle(t *testing.T) {
	assert.Equal(t, "2025/8", monthlySheetTitle(date(t, "2025-08-14")))
	assert.Equal(t, "2025/12", monthlySheetTitle(date(t, "2025-12-01")))
	assert.Equal(t, "2026/1", monthlySheetTitle(date(t, "2026-01-31")))
}

func TestDayColumn(t *testing.T) {
	// Column B holds day 1.
	assert.Equal(t, 2, dayColumn(date(t, "2025-08-01")))
	assert.Equal(t, 15, dayColumn(date(t, "2025-08-14")))
	assert.Equal(t, 32, dayColumn(date(t, "2025-08-31")))
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{32, "AF"},
		{52, "AZ"},
		{53, "BA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, columnLetter(tt.col))
	}
}

func TestCellRange(t *testing.T) {
	assert.Equal(t, "'2025/8'!B3", cellRange("2025/8", 3, 2))
	assert.Equal(t, "'2025/8'!AF100", cellRange("2025/8", 100, 32))
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		SpreadsheetID:      "abc",
		ServiceAccountPath: "/etc/sa.json",
		RequestsPerMinute:  50,
	}
	assert.NoError(t, valid.Validate())

	missingID := valid
	missingID.SpreadsheetID = ""
	assert.Error(t, missingID.Validate())

	missingAuth := valid
	missingAuth.ServiceAccountPath = ""
	assert.Error(t, missingAuth.Validate())

	inlineJSON := valid
	inlineJSON.ServiceAccountPath = ""
	inlineJSON.ServiceAccountJSON = "{}"
	assert.NoError(t, inlineJSON.Validate())

	badRate := valid
	badRate.RequestsPerMinute = 0
	assert.Error(t, badRate.Validate())
}
