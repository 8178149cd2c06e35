package fuel

import (
	"fmt"
	"math"
	"time"

	"github.com/richard-senior/statto/internal/config"
	"github.com/richard-senior/statto/pkg/util/persist"
)

// Compile-time check to ensure RegressionResult implements Persistable
var _ persist.Persistable = (*RegressionResult)(nil)

// Trend classifies the direction of a fitted price line
type Trend string

const (
	TrendUpward   Trend = "UPWARD"
	TrendDownward Trend = "DOWNWARD"
	TrendStable   Trend = "STABLE"
)

// RegressionResult holds the ordinary least squares fit of a price series
// over month index 1..12, with database persistence annotations
type RegressionResult struct {
	FuelType  string  `json:"fuelType" column:"fuel_type" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	Slope     float64 `json:"slope" column:"slope" dbtype:"REAL DEFAULT 0.0"`
	Intercept float64 `json:"intercept" column:"intercept" dbtype:"REAL DEFAULT 0.0"`
	R         float64 `json:"r" column:"r" dbtype:"REAL DEFAULT 0.0"`
	RSquared  float64 `json:"rSquared" column:"r_squared" dbtype:"REAL DEFAULT 0.0"`
	Trend     Trend   `json:"trend" column:"trend" dbtype:"TEXT"`

	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// Fit computes the closed-form least squares line through the series,
// with prices indexed by month 1..12. A series with no price variance
// fits a flat line with r = 0.
func Fit(s *PriceSeries) (*RegressionResult, error) {
	if s == nil || len(s.Prices) < 2 {
		return nil, fmt.Errorf("regression needs at least two prices")
	}

	n := float64(len(s.Prices))
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i, y := range s.Prices {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}

	// Slope is the covariance/variance ratio; month indices always vary
	// so the denominator cannot be zero
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	// Pearson correlation; zero when the prices have no variance
	r := 0.0
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom > 0 {
		r = (n*sumXY - sumX*sumY) / denom
	}

	return &RegressionResult{
		FuelType:  s.FuelType,
		Slope:     slope,
		Intercept: intercept,
		R:         r,
		RSquared:  r * r,
		Trend:     classifyTrend(slope),
	}, nil
}

// classifyTrend applies the configured slope magnitude threshold
func classifyTrend(slope float64) Trend {
	threshold := config.GetSlopeThreshold()
	switch {
	case slope > threshold:
		return TrendUpward
	case slope < -threshold:
		return TrendDownward
	default:
		return TrendStable
	}
}

// PredictAt evaluates the fitted line at the given month index
func (r *RegressionResult) PredictAt(month int) float64 {
	return r.Slope*float64(month) + r.Intercept
}

// Extrapolate evaluates the fitted line at each of the given month indices
func (r *RegressionResult) Extrapolate(months []int) []float64 {
	predictions := make([]float64, 0, len(months))
	for _, m := range months {
		predictions = append(predictions, r.PredictAt(m))
	}
	return predictions
}

// ForecastMonths returns the future month indices implied by the configured
// horizon for a series of the given length: 13, 14, 15 for a 12-month
// series with the default horizon of 3
func ForecastMonths(seriesLength int) []int {
	horizon := config.GetForecastMonths()
	months := make([]int, 0, horizon)
	for i := 1; i <= horizon; i++ {
		months = append(months, seriesLength+i)
	}
	return months
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetTableName returns the table name for regression results
func (r *RegressionResult) GetTableName() string {
	return "regression_results"
}

// GetPrimaryKey returns the primary key as a map
func (r *RegressionResult) GetPrimaryKey() map[string]any {
	return map[string]any{
		"fuel_type": r.FuelType,
	}
}

// BeforeSave sets timestamps
func (r *RegressionResult) BeforeSave() error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return nil
}

// AfterSave is called after saving the regression result
func (r *RegressionResult) AfterSave() error {
	return nil
}
