package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var petrol2024 = []float64{
	20.50, 20.75, 20.85, 21.10, 21.35, 21.80,
	22.15, 21.95, 21.65, 21.40, 21.20, 20.95,
}

func petrolSeries(t *testing.T) *PriceSeries {
	t.Helper()
	s, err := NewPriceSeries("Petrol 95 (R/litre)", petrol2024)
	require.NoError(t, err)
	return s
}

func TestNewPriceSeries(t *testing.T) {
	s := petrolSeries(t)
	assert.Equal(t, "Petrol 95 (R/litre)", s.FuelType)
	assert.Len(t, s.Prices, MonthsPerYear)
}

func TestNewPriceSeriesCopiesInput(t *testing.T) {
	prices := append([]float64(nil), petrol2024...)
	s, err := NewPriceSeries("Petrol", prices)
	require.NoError(t, err)

	prices[0] = 999
	assert.Equal(t, 20.50, s.Prices[0])
}

func TestNewPriceSeriesRejectsBadInput(t *testing.T) {
	_, err := NewPriceSeries("", petrol2024)
	assert.Error(t, err)

	_, err = NewPriceSeries("Petrol", []float64{1, 2, 3})
	assert.Error(t, err)

	_, err = NewPriceSeries("Petrol", nil)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize(petrolSeries(t))

	assert.Equal(t, 20.50, s.Start)
	assert.Equal(t, 20.95, s.End)
	assert.Equal(t, 0.45, s.Change)
	assert.Equal(t, 2.2, s.ChangePct)

	assert.Equal(t, 20.50, s.Min)
	assert.Equal(t, "January", s.MinMonth)
	assert.Equal(t, 22.15, s.Max)
	assert.Equal(t, "July", s.MaxMonth)

	assert.InDelta(t, 21.3, s.Mean, 0.05)
}

func TestSummarizeFirstExtremumWins(t *testing.T) {
	prices := []float64{5, 1, 9, 1, 9, 5, 5, 5, 5, 5, 5, 5}
	s, err := NewPriceSeries("Flat", prices)
	require.NoError(t, err)

	sum := Summarize(s)
	assert.Equal(t, "February", sum.MinMonth)
	assert.Equal(t, "March", sum.MaxMonth)
}

func TestPoints(t *testing.T) {
	points := petrolSeries(t).Points()
	require.Len(t, points, MonthsPerYear)

	assert.Equal(t, 1, points[0].Month)
	assert.Equal(t, "January", points[0].MonthName)
	assert.Equal(t, 20.50, points[0].Price)
	assert.Equal(t, "Petrol 95 (R/litre)", points[0].FuelType)

	assert.Equal(t, 12, points[11].Month)
	assert.Equal(t, "December", points[11].MonthName)
	assert.Equal(t, 20.95, points[11].Price)
}
