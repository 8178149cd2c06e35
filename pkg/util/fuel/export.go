package fuel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/richard-senior/statto/internal/logger"
)

///////////////////////////////////////////////////////////////////////////////
/// Workbook export
///////////////////////////////////////////////////////////////////////////////

// ExportWorkbook writes the analysis as a three sheet spreadsheet:
// the raw monthly prices, the per-fuel summary statistics, and the
// fitted trend with its forward predictions.
func ExportWorkbook(analyses []*Analysis, baseYear int, path string) error {
	if len(analyses) == 0 {
		return fmt.Errorf("no series to export")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", err)
		}
	}()

	f.SetSheetName("Sheet1", "Prices")
	if err := writePricesSheet(f, analyses); err != nil {
		return err
	}
	if _, err := f.NewSheet("Statistics"); err != nil {
		return err
	}
	if err := writeStatisticsSheet(f, analyses); err != nil {
		return err
	}
	if _, err := f.NewSheet("Predictions"); err != nil {
		return err
	}
	if err := writePredictionsSheet(f, analyses, baseYear); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	logger.Info("Wrote price workbook to", path)
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writePricesSheet(f *excelize.File, analyses []*Analysis) error {
	const sheet = "Prices"
	header := []any{"Month"}
	for _, a := range analyses {
		header = append(header, a.Series.FuelType)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, month := range Months {
		row := []any{month}
		for _, a := range analyses {
			row = append(row, a.Series.Prices[i])
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, analyses []*Analysis) error {
	const sheet = "Statistics"
	header := []any{
		"Fuel Type", "Start", "End", "Change", "Change %",
		"Average", "Minimum", "Min Month", "Maximum", "Max Month",
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, a := range analyses {
		s := a.Summary
		row := []any{
			s.FuelType, s.Start, s.End, s.Change, s.ChangePct,
			s.Mean, s.Min, s.MinMonth, s.Max, s.MaxMonth,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePredictionsSheet(f *excelize.File, analyses []*Analysis, baseYear int) error {
	const sheet = "Predictions"
	header := []any{"Fuel Type", "Trend", "Slope", "R", "R Squared"}
	if len(analyses) > 0 {
		for _, m := range analyses[0].Forecast {
			header = append(header, monthLabel(m, baseYear))
		}
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, a := range analyses {
		fit := a.Fit
		row := []any{a.Series.FuelType, string(fit.Trend), fit.Slope, fit.R, fit.RSquared}
		for _, p := range a.Predictions {
			row = append(row, p)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
