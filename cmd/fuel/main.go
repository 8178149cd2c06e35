package main

import (
	"fmt"
	"os"

	"github.com/richard-senior/statto/internal/config"
	"github.com/richard-senior/statto/internal/logger"
	"github.com/richard-senior/statto/pkg/util/fuel"
	"github.com/richard-senior/statto/pkg/util/persist"
)

const baseYear = 2024

// Official 2024 monthly prices in Rand per litre (LPG per kg)
func priceData() map[string][]float64 {
	return map[string][]float64{
		"Petrol 95 (R/litre)": {
			20.50, 20.75, 20.85, 21.10, 21.35, 21.80,
			22.15, 21.95, 21.65, 21.40, 21.20, 20.95,
		},
		"Diesel 50ppm (R/litre)": {
			20.20, 20.40, 20.55, 20.85, 21.15, 21.65,
			22.05, 21.85, 21.50, 21.25, 21.00, 20.75,
		},
		"LPG (R/kg)": {
			12.50, 12.60, 12.75, 13.00, 13.25, 13.55,
			13.85, 13.75, 13.45, 13.20, 12.95, 12.70,
		},
	}
}

// fuelOrder fixes the presentation order of the three fuel types
var fuelOrder = []string{"Petrol 95 (R/litre)", "Diesel 50ppm (R/litre)", "LPG (R/kg)"}

func main() {
	// Configure logging
	logger.SetShowDateTime(true)

	logger.Info("Starting fuel price analysis")

	if len(os.Args) > 1 {
		if err := config.Load(os.Args[1]); err != nil {
			logger.Fatal("Failed to load configuration:", err)
		}
	}

	// Open the database and make sure the schema exists
	if err := persist.SetDatabasePath(config.GetDbPath()); err != nil {
		logger.Fatal("Failed to open database:", err)
	}
	defer persist.CloseDatabase()
	if err := persist.CreateTable(&fuel.PricePoint{}); err != nil {
		logger.Fatal("Failed to create price_points table:", err)
	}
	if err := persist.CreateTable(&fuel.RegressionResult{}); err != nil {
		logger.Fatal("Failed to create regression_results table:", err)
	}

	// Run the analysis for each fuel type
	data := priceData()
	analyses := make([]*fuel.Analysis, 0, len(fuelOrder))
	for _, name := range fuelOrder {
		series, err := fuel.NewPriceSeries(name, data[name])
		if err != nil {
			logger.Fatal("Bad price series:", err)
		}
		analysis, err := fuel.Analyze(series)
		if err != nil {
			logger.Fatal("Analysis failed for", name, err)
		}
		analyses = append(analyses, analysis)
	}

	report := fuel.GenerateReport(analyses, fuel.ReportOptions{
		Title:    "SOUTH AFRICAN FUEL PRICE ANALYSIS - 2024",
		Year:     baseYear,
		Currency: "R",
	})
	fmt.Print(report)

	reportPath := config.AssetPath(config.Config.Paths.FuelReport)
	if err := os.WriteFile(reportPath, []byte(report), 0644); err != nil {
		logger.Fatal("Failed to write report:", err)
	}
	logger.Info("Wrote price report to", reportPath)

	chartOpts := fuel.ChartOptions{
		HistoryTitle: "2024 South African Fuel Prices",
		TrendTitle:   "Trend Analysis with Q1 2025 Predictions",
	}
	if err := fuel.WriteChart(analyses, baseYear, chartOpts, config.AssetPath(config.Config.Paths.FuelChart)); err != nil {
		logger.Fatal("Failed to write chart:", err)
	}

	if err := fuel.ExportWorkbook(analyses, baseYear, config.AssetPath(config.Config.Paths.FuelWorkbook)); err != nil {
		logger.Fatal("Failed to write workbook:", err)
	}

	// Persist the observations and fitted trends
	var rows []persist.Persistable
	for _, a := range analyses {
		for _, p := range a.Series.Points() {
			rows = append(rows, p)
		}
		rows = append(rows, a.Fit)
	}
	if err := persist.BulkSave(rows); err != nil {
		logger.Fatal("Failed to persist analysis:", err)
	}
	logger.Info("Persisted price points and regression results:", len(rows))
}
