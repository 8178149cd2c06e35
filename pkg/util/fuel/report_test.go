package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allAnalyses(t *testing.T) []*Analysis {
	t.Helper()
	data := map[string][]float64{
		"Petrol 95 (R/litre)": petrol2024,
		"Diesel 50ppm (R/litre)": {
			20.20, 20.40, 20.55, 20.85, 21.15, 21.65,
			22.05, 21.85, 21.50, 21.25, 21.00, 20.75,
		},
		"LPG (R/kg)": {
			12.50, 12.60, 12.75, 13.00, 13.25, 13.55,
			13.85, 13.75, 13.45, 13.20, 12.95, 12.70,
		},
	}
	out := make([]*Analysis, 0, len(data))
	for _, name := range []string{"Petrol 95 (R/litre)", "Diesel 50ppm (R/litre)", "LPG (R/kg)"} {
		s, err := NewPriceSeries(name, data[name])
		require.NoError(t, err)
		a, err := Analyze(s)
		require.NoError(t, err)
		out = append(out, a)
	}
	return out
}

func TestGenerateReport(t *testing.T) {
	report := GenerateReport(allAnalyses(t), ReportOptions{
		Title:    "SOUTH AFRICAN FUEL PRICE ANALYSIS - 2024",
		Year:     2024,
		Currency: "R",
	})

	assert.Contains(t, report, "SOUTH AFRICAN FUEL PRICE ANALYSIS - 2024")
	assert.Contains(t, report, "Monthly Prices:")
	assert.Contains(t, report, "PRICE STATISTICS")
	assert.Contains(t, report, "TREND ANALYSIS & PREDICTIONS")
	assert.Contains(t, report, "SUMMARY & OUTLOOK")

	// Every month row and every fuel column present
	for _, month := range Months {
		assert.Contains(t, report, month)
	}
	assert.Contains(t, report, "Petrol 95 (R/litre)")
	assert.Contains(t, report, "Diesel 50ppm (R/litre)")
	assert.Contains(t, report, "LPG (R/kg)")

	// Statistics carry the known extremes with their months
	assert.Contains(t, report, "R22.15 (July)")
	assert.Contains(t, report, "R20.50 (January)")

	// Predictions section rolls into the next calendar year
	assert.Contains(t, report, "2025 Predictions:")
	assert.Contains(t, report, "January 2025:")
	assert.Contains(t, report, "February 2025:")
	assert.Contains(t, report, "March 2025:")

	assert.Contains(t, report, "Trend Strength (R^2):")
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "January", monthLabel(1, 2024))
	assert.Equal(t, "December", monthLabel(12, 2024))
	assert.Equal(t, "January 2025", monthLabel(13, 2024))
	assert.Equal(t, "March 2025", monthLabel(15, 2024))
}

func TestReportOutlookNamesTrends(t *testing.T) {
	analyses := allAnalyses(t)
	report := GenerateReport(analyses, ReportOptions{Title: "T", Year: 2024, Currency: "R"})

	for _, a := range analyses {
		assert.Contains(t, report, string(a.Fit.Trend)+" TREND")
	}
}
