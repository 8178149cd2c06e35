package fuel

import (
	"fmt"
	"time"

	"github.com/richard-senior/statto/pkg/util"
	"github.com/richard-senior/statto/pkg/util/persist"
)

// Compile-time check to ensure PricePoint implements Persistable
var _ persist.Persistable = (*PricePoint)(nil)

// Months holds the calendar labels for a 12-point monthly series
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthsPerYear is the fixed length of a monthly price series
const MonthsPerYear = 12

// PriceSeries is an ordered sequence of monthly prices for one fuel type,
// created from literals at startup and immutable thereafter
type PriceSeries struct {
	FuelType string
	Prices   []float64
}

// NewPriceSeries creates a price series. Exactly one price per calendar
// month is required.
func NewPriceSeries(fuelType string, prices []float64) (*PriceSeries, error) {
	if fuelType == "" {
		return nil, fmt.Errorf("fuel type cannot be empty")
	}
	if len(prices) != MonthsPerYear {
		return nil, fmt.Errorf("fuel series %q needs %d monthly prices, got %d",
			fuelType, MonthsPerYear, len(prices))
	}
	cp := make([]float64, len(prices))
	copy(cp, prices)
	return &PriceSeries{FuelType: fuelType, Prices: cp}, nil
}

// Summary holds the descriptive statistics of one price series
type Summary struct {
	FuelType  string
	Start     float64
	End       float64
	Change    float64
	ChangePct float64
	Mean      float64
	Min       float64
	MinMonth  string
	Max       float64
	MaxMonth  string
}

// Summarize computes start/end change, mean, and the min and max prices
// with the months they occurred in
func Summarize(s *PriceSeries) *Summary {
	minIdx, maxIdx := 0, 0
	for i, p := range s.Prices {
		if p < s.Prices[minIdx] {
			minIdx = i
		}
		if p > s.Prices[maxIdx] {
			maxIdx = i
		}
	}

	start := s.Prices[0]
	end := s.Prices[len(s.Prices)-1]

	return &Summary{
		FuelType:  s.FuelType,
		Start:     start,
		End:       end,
		Change:    util.RoundTo(end-start, 2),
		ChangePct: util.RoundTo((end-start)/start*100, 2),
		Mean:      util.RoundTo(util.Mean(s.Prices), 2),
		Min:       s.Prices[minIdx],
		MinMonth:  Months[minIdx],
		Max:       s.Prices[maxIdx],
		MaxMonth:  Months[maxIdx],
	}
}

/////////////////////////////////////////////////////////////////////////
////// Persistence
/////////////////////////////////////////////////////////////////////////

// PricePoint is one month's price for one fuel type, the persisted form
// of a PriceSeries
type PricePoint struct {
	FuelType  string    `json:"fuelType" column:"fuel_type" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	Month     int       `json:"month" column:"month" dbtype:"INTEGER NOT NULL" primary:"true"`
	MonthName string    `json:"monthName" column:"month_name" dbtype:"TEXT NOT NULL"`
	Price     float64   `json:"price" column:"price" dbtype:"REAL NOT NULL"`
	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// GetTableName returns the table name for price points
func (p *PricePoint) GetTableName() string {
	return "price_points"
}

// GetPrimaryKey returns the compound primary key as a map
func (p *PricePoint) GetPrimaryKey() map[string]any {
	return map[string]any{
		"fuel_type": p.FuelType,
		"month":     p.Month,
	}
}

// BeforeSave sets timestamps
func (p *PricePoint) BeforeSave() error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}

// AfterSave is called after saving the price point
func (p *PricePoint) AfterSave() error {
	return nil
}

// Points expands the series into its persistable rows, one per month
func (s *PriceSeries) Points() []*PricePoint {
	points := make([]*PricePoint, 0, len(s.Prices))
	for i, price := range s.Prices {
		points = append(points, &PricePoint{
			FuelType:  s.FuelType,
			Month:     i + 1,
			MonthName: Months[i],
			Price:     price,
		})
	}
	return points
}
