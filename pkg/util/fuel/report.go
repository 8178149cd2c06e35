package fuel

import (
	"fmt"
	"strings"
)

const reportRule = 70

// Analysis bundles everything computed for one fuel type
type Analysis struct {
	Series      *PriceSeries
	Summary     *Summary
	Fit         *RegressionResult
	Forecast    []int
	Predictions []float64
}

// Analyze runs the summary statistics, the least squares fit and the
// forward extrapolation for one series
func Analyze(s *PriceSeries) (*Analysis, error) {
	fit, err := Fit(s)
	if err != nil {
		return nil, err
	}
	forecast := ForecastMonths(len(s.Prices))
	return &Analysis{
		Series:      s,
		Summary:     Summarize(s),
		Fit:         fit,
		Forecast:    forecast,
		Predictions: fit.Extrapolate(forecast),
	}, nil
}

// ReportOptions carries the presentation details of the price report
type ReportOptions struct {
	Title    string
	Year     int
	Currency string
}

// monthLabel renders a month index as a calendar label, rolling the year
// forward for indices past December
func monthLabel(month, baseYear int) string {
	year := baseYear + (month-1)/MonthsPerYear
	name := Months[(month-1)%MonthsPerYear]
	if year == baseYear {
		return name
	}
	return fmt.Sprintf("%s %d", name, year)
}

// GenerateReport renders the full price analysis report: the monthly price
// table, per-fuel statistics, the trend analysis with forward predictions,
// and a closing outlook derived from the fitted trends.
func GenerateReport(analyses []*Analysis, opts ReportOptions) string {
	var b strings.Builder

	bar := strings.Repeat("=", reportRule)
	cur := opts.Currency

	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, opts.Title)
	fmt.Fprintln(&b, bar)

	// Monthly price table
	fmt.Fprintln(&b, "\nMonthly Prices:")
	fmt.Fprintf(&b, "%-12s", "Month")
	for _, a := range analyses {
		fmt.Fprintf(&b, "%24s", a.Series.FuelType)
	}
	fmt.Fprintln(&b)
	for i, month := range Months {
		fmt.Fprintf(&b, "%-12s", month)
		for _, a := range analyses {
			fmt.Fprintf(&b, "%24.2f", a.Series.Prices[i])
		}
		fmt.Fprintln(&b)
	}

	// Per-fuel statistics
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "PRICE STATISTICS")
	fmt.Fprintln(&b, bar)
	for _, a := range analyses {
		s := a.Summary
		fmt.Fprintf(&b, "\n%s:\n", s.FuelType)
		fmt.Fprintf(&b, "  Starting Price (%s):  %s%.2f\n", Months[0], cur, s.Start)
		fmt.Fprintf(&b, "  Ending Price (%s):   %s%.2f\n", Months[len(Months)-1], cur, s.End)
		fmt.Fprintf(&b, "  Change:                    %s%.2f (%.2f%%)\n", cur, s.Change, s.ChangePct)
		fmt.Fprintf(&b, "  Average Price:             %s%.2f\n", cur, s.Mean)
		fmt.Fprintf(&b, "  Minimum Price:             %s%.2f (%s)\n", cur, s.Min, s.MinMonth)
		fmt.Fprintf(&b, "  Maximum Price:             %s%.2f (%s)\n", cur, s.Max, s.MaxMonth)
	}

	// Trend analysis and predictions
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "TREND ANALYSIS & PREDICTIONS")
	fmt.Fprintln(&b, bar)
	for _, a := range analyses {
		fit := a.Fit
		fmt.Fprintf(&b, "\n%s:\n", a.Series.FuelType)
		fmt.Fprintf(&b, "  Trend:                     %s\n", fit.Trend)
		fmt.Fprintf(&b, "  Monthly Change Rate:       %s%.4f per month\n", cur, fit.Slope)
		fmt.Fprintf(&b, "  Trend Strength (R^2):      %.4f\n", fit.RSquared)

		if fit.Trend != TrendStable {
			direction := "increase"
			if fit.Slope < 0 {
				direction = "decrease"
			}
			fmt.Fprintf(&b, "  Analysis:                  Prices show a %s trend throughout %d\n",
				direction, opts.Year)
		}

		fmt.Fprintf(&b, "\n  %d Predictions:\n", opts.Year+1)
		for i, month := range a.Forecast {
			fmt.Fprintf(&b, "    %-22s   %s%.2f\n",
				monthLabel(month, opts.Year)+":", cur, a.Predictions[i])
		}
	}

	// Outlook derived from the fitted trends
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "SUMMARY & OUTLOOK")
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "\nBased on the %d data analysis:\n", opts.Year)
	for _, a := range analyses {
		fmt.Fprintf(&b, "\n* %s: %s TREND\n", a.Series.FuelType, a.Fit.Trend)
		fmt.Fprintf(&b, "  Peak of %s%.2f in %s, low of %s%.2f in %s.\n",
			cur, a.Summary.Max, a.Summary.MaxMonth, cur, a.Summary.Min, a.Summary.MinMonth)
		switch a.Fit.Trend {
		case TrendUpward:
			fmt.Fprintf(&b, "  Prediction: Prices expected to keep rising through early %d.\n", opts.Year+1)
		case TrendDownward:
			fmt.Fprintf(&b, "  Prediction: Prices expected to continue declining through early %d.\n", opts.Year+1)
		default:
			fmt.Fprintf(&b, "  Prediction: Prices likely to hold steady through early %d.\n", opts.Year+1)
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, bar)

	return b.String()
}
