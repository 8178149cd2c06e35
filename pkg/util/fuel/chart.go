package fuel

import (
	"fmt"

	"github.com/richard-senior/statto/internal/config"
	"github.com/richard-senior/statto/internal/logger"
	"github.com/richard-senior/statto/pkg/util"
)

// Matplotlib default cycle colours, kept so the chart reads the same
// as the original analyst output
var chartPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c"}

const (
	axisStyle   = "stroke:#333333;stroke-width:1"
	gridStyle   = "stroke:#dddddd;stroke-width:1"
	titleStyle  = "font-size: 16px; font-family: Arial; fill: black; font-weight: bold;"
	labelStyle  = "font-size: 11px; font-family: Arial; fill: #333333;"
	legendStyle = "font-size: 12px; font-family: Arial; fill: black;"
)

// ChartOptions carries the two panel titles
type ChartOptions struct {
	HistoryTitle string
	TrendTitle   string
}

///////////////////////////////////////////////////////////////////////////////
/// Panel geometry
///////////////////////////////////////////////////////////////////////////////

// panel maps data coordinates into one half of the chart canvas
type panel struct {
	originX, originY float64 // top-left of the plot area
	plotW, plotH     float64
	minX, maxX       float64
	minY, maxY       float64
}

func newPanel(index int, minX, maxX, minY, maxY float64) *panel {
	c := config.GetChart()
	m := float64(c.Margin)
	return &panel{
		originX: float64(index*c.PanelWidth) + m,
		originY: m,
		plotW:   float64(c.PanelWidth) - 2*m,
		plotH:   float64(c.PanelHeight) - 2*m,
		minX:    minX,
		maxX:    maxX,
		minY:    minY,
		maxY:    maxY,
	}
}

func (p *panel) x(v float64) float64 {
	return p.originX + (v-p.minX)/(p.maxX-p.minX)*p.plotW
}

func (p *panel) y(v float64) float64 {
	// SVG y grows downward
	return p.originY + p.plotH - (v-p.minY)/(p.maxY-p.minY)*p.plotH
}

// drawFrame draws the axes, horizontal gridlines with price labels,
// and the slanted month labels along the x axis
func (p *panel) drawFrame(svg *util.SVG, title string, baseYear, months int) error {
	bottom := p.originY + p.plotH
	svg.AddLine(p.originX, p.originY, p.originX, bottom, axisStyle)
	svg.AddLine(p.originX, bottom, p.originX+p.plotW, bottom, axisStyle)

	// Horizontal gridlines at five even price steps
	const steps = 5
	for i := 0; i <= steps; i++ {
		v := p.minY + (p.maxY-p.minY)*float64(i)/steps
		y := p.y(v)
		if i > 0 {
			svg.AddLine(p.originX, y, p.originX+p.plotW, y, gridStyle)
		}
		if err := svg.AddText(fmt.Sprintf("ylabel-%d", i),
			fmt.Sprintf("%.2f", v), labelStyle, p.originX-45, y+4); err != nil {
			return err
		}
	}

	// Slanted month labels
	for m := 1; m <= months; m++ {
		x := p.x(float64(m))
		svg.AddLine(x, bottom, x, bottom+4, axisStyle)
		if err := svg.AddRotatedText(fmt.Sprintf("xlabel-%d", m),
			monthLabel(m, baseYear), labelStyle, x, bottom+16, 45); err != nil {
			return err
		}
	}

	return svg.AddText("title", title, titleStyle, p.originX+p.plotW/2-150, p.originY-25)
}

// drawLegend draws one coloured swatch and label per fuel type in the
// top-left corner of the plot area
func (p *panel) drawLegend(svg *util.SVG, names []string) error {
	for i, name := range names {
		y := p.originY + 15 + float64(i)*18
		style := fmt.Sprintf("stroke:%s;stroke-width:3", chartPalette[i%len(chartPalette)])
		svg.AddLine(p.originX+10, y, p.originX+35, y, style)
		if err := svg.AddText("legend-"+name, name, legendStyle, p.originX+42, y+4); err != nil {
			return err
		}
	}
	return nil
}

func lineStyle(i int) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", chartPalette[i%len(chartPalette)])
}

///////////////////////////////////////////////////////////////////////////////
/// Chart rendering
///////////////////////////////////////////////////////////////////////////////

// priceRange finds the value extent across all series plus their
// predictions, padded so lines never touch the frame
func priceRange(analyses []*Analysis, withPredictions bool) (float64, float64) {
	lo, hi := analyses[0].Series.Prices[0], analyses[0].Series.Prices[0]
	consider := func(v float64) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, a := range analyses {
		for _, v := range a.Series.Prices {
			consider(v)
		}
		if withPredictions {
			for _, v := range a.Predictions {
				consider(v)
			}
		}
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// RenderChart builds a two panel SVG: the left panel plots the historical
// monthly prices, the right panel repeats them with the dashed trend
// extrapolation into the forecast months.
func RenderChart(analyses []*Analysis, baseYear int, opts ChartOptions) (*util.SVG, error) {
	if len(analyses) == 0 {
		return nil, fmt.Errorf("no series to chart")
	}
	c := config.GetChart()
	svg := util.NewBlankSVG("fuel-price-analysis", 2*c.PanelWidth, c.PanelHeight)

	names := make([]string, 0, len(analyses))
	for _, a := range analyses {
		names = append(names, a.Series.FuelType)
	}

	// Left panel: historical prices only
	histLo, histHi := priceRange(analyses, false)
	hist := newPanel(0, 1, float64(MonthsPerYear), histLo, histHi)
	if err := hist.drawFrame(svg, opts.HistoryTitle, baseYear, MonthsPerYear); err != nil {
		return nil, err
	}
	for i, a := range analyses {
		points := make([]*util.Point, 0, len(a.Series.Prices))
		for m, v := range a.Series.Prices {
			points = append(points, util.NewPoint(hist.x(float64(m+1)), hist.y(v)))
		}
		if err := svg.AddPolyline(a.Series.FuelType, points, lineStyle(i), false); err != nil {
			return nil, err
		}
	}
	if err := hist.drawLegend(svg, names); err != nil {
		return nil, err
	}

	// Right panel: history plus dashed extrapolation
	lastMonth := MonthsPerYear
	for _, a := range analyses {
		for _, m := range a.Forecast {
			if m > lastMonth {
				lastMonth = m
			}
		}
	}
	trendLo, trendHi := priceRange(analyses, true)
	trend := newPanel(1, 1, float64(lastMonth), trendLo, trendHi)
	if err := trend.drawFrame(svg, opts.TrendTitle, baseYear, lastMonth); err != nil {
		return nil, err
	}
	for i, a := range analyses {
		points := make([]*util.Point, 0, len(a.Series.Prices))
		for m, v := range a.Series.Prices {
			points = append(points, util.NewPoint(trend.x(float64(m+1)), trend.y(v)))
		}
		if err := svg.AddPolyline(a.Series.FuelType, points, lineStyle(i), false); err != nil {
			return nil, err
		}
		// Dashed forecast segment anchored at the last observed price
		forecast := []*util.Point{
			util.NewPoint(trend.x(float64(MonthsPerYear)), trend.y(a.Series.Prices[MonthsPerYear-1])),
		}
		for j, m := range a.Forecast {
			forecast = append(forecast, util.NewPoint(trend.x(float64(m)), trend.y(a.Predictions[j])))
		}
		if err := svg.AddPolyline(a.Series.FuelType+"-forecast", forecast, lineStyle(i), true); err != nil {
			return nil, err
		}
	}
	if err := trend.drawLegend(svg, names); err != nil {
		return nil, err
	}

	return svg, nil
}

// WriteChart renders the chart and writes it to the given path
func WriteChart(analyses []*Analysis, baseYear int, opts ChartOptions, path string) error {
	svg, err := RenderChart(analyses, baseYear, opts)
	if err != nil {
		return err
	}
	if err := svg.ToSVGFile(path); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	logger.Info("Wrote price chart to", path)
	return nil
}
