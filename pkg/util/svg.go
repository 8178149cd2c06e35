package util

import (
	"fmt"
	"os"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// Point
///////////////////////////////////////////////////////////////////////////////

// Point represents a 2D point with X and Y coordinates
type Point struct {
	X, Y float64
}

func NewPoint(x float64, y float64) *Point {
	return &Point{X: x, Y: y}
}

///////////////////////////////////////////////////////////////////////////////
/// SVGPolyline
///////////////////////////////////////////////////////////////////////////////

// SVGPolyline is an open series of connected straight segments,
// the primitive from which chart lines are drawn
type SVGPolyline struct {
	Name   string
	Points []*Point
	Style  string
	Dashed bool
}

func NewSVGPolyline(name string, points []*Point, style string, dashed bool) (*SVGPolyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("a polyline needs at least two points")
	}
	if style == "" {
		style = "fill:none;stroke:black;stroke-width:2"
	}
	return &SVGPolyline{
		Name:   name,
		Points: points,
		Style:  style,
		Dashed: dashed,
	}, nil
}

func (p *SVGPolyline) toTag() string {
	coords := make([]string, 0, len(p.Points))
	for _, pt := range p.Points {
		coords = append(coords, fmt.Sprintf("%.2f,%.2f", pt.X, pt.Y))
	}
	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="8,5"`
	}
	return fmt.Sprintf(`<polyline points="%s" style="%s"%s />`,
		strings.Join(coords, " "), p.Style, dash)
}

///////////////////////////////////////////////////////////////////////////////
/// SVGLine
///////////////////////////////////////////////////////////////////////////////

// SVGLine is a single straight segment, used for axes and tick marks
type SVGLine struct {
	X1, Y1, X2, Y2 float64
	Style          string
}

func (l *SVGLine) toTag() string {
	return fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" style="%s" />`,
		l.X1, l.Y1, l.X2, l.Y2, l.Style)
}

///////////////////////////////////////////////////////////////////////////////
/// SVGEmbeddedText
///////////////////////////////////////////////////////////////////////////////

// Holds information about text that is embedded into SVG files
type SVGEmbeddedText struct {
	X, Y    float64
	Name    string
	Content string
	Style   string
	// Rotation in degrees about (X, Y); 0 renders without a transform
	Rotate float64
}

func NewSVGEmbeddedText(name, text, style string, x, y float64) (*SVGEmbeddedText, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if style == "" {
		style = "font-size: 12px; font-family: Arial; fill: black;"
	}
	return &SVGEmbeddedText{
		X:       x,
		Y:       y,
		Name:    name,
		Content: text,
		Style:   style,
	}, nil
}

func (t *SVGEmbeddedText) toTag() string {
	if t.Rotate != 0 {
		return fmt.Sprintf(`<text x="%.2f" y="%.2f" style="%s" transform="rotate(%.1f %.2f %.2f)">%s</text>`,
			t.X, t.Y, t.Style, t.Rotate, t.X, t.Y, escapeText(t.Content))
	}
	return fmt.Sprintf(`<text x="%.2f" y="%.2f" style="%s">%s</text>`,
		t.X, t.Y, t.Style, escapeText(t.Content))
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

///////////////////////////////////////////////////////////////////////////////
/// SVG
///////////////////////////////////////////////////////////////////////////////

const SvgHeader string = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="" height=""
    version="1.1"
	xmlns="http://www.w3.org/2000/svg"
	xmlns:svg="http://www.w3.org/2000/svg">
`
const SvgFooter string = `
</svg>
`

// An object for holding, manipulating and writing SVG files.
// We are interested only in lines, polylines and text primitives.
type SVG struct {
	Name          string
	Lines         []*SVGLine
	Polylines     []*SVGPolyline
	Text          []*SVGEmbeddedText
	Width, Height int
}

func NewBlankSVG(name string, width, height int) *SVG {
	return &SVG{
		Name:      name,
		Width:     width,
		Height:    height,
		Lines:     []*SVGLine{},
		Polylines: []*SVGPolyline{},
		Text:      []*SVGEmbeddedText{},
	}
}

func (s *SVG) AddLine(x1, y1, x2, y2 float64, style string) {
	if style == "" {
		style = "stroke:black;stroke-width:1"
	}
	s.Lines = append(s.Lines, &SVGLine{X1: x1, Y1: y1, X2: x2, Y2: y2, Style: style})
}

func (s *SVG) AddPolyline(name string, points []*Point, style string, dashed bool) error {
	p, err := NewSVGPolyline(name, points, style, dashed)
	if err != nil {
		return err
	}
	s.Polylines = append(s.Polylines, p)
	return nil
}

func (s *SVG) AddText(name, text, style string, x, y float64) error {
	t, err := NewSVGEmbeddedText(name, text, style, x, y)
	if err != nil {
		return err
	}
	s.Text = append(s.Text, t)
	return nil
}

// AddRotatedText adds a text element rotated about its anchor point,
// used for the slanted month labels on chart axes
func (s *SVG) AddRotatedText(name, text, style string, x, y, degrees float64) error {
	t, err := NewSVGEmbeddedText(name, text, style, x, y)
	if err != nil {
		return err
	}
	t.Rotate = degrees
	s.Text = append(s.Text, t)
	return nil
}

func (s *SVG) ToSVGFile(filePath string) error {
	svgContent, err := s.ToSVG()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(svgContent), 0644)
}

func (s *SVG) ToSVG() (string, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return "", fmt.Errorf("SVG dimensions must be positive")
	}
	// Start with the SVG header and fix up the document dimensions
	ret := SvgHeader
	ret = strings.Replace(ret, `width=""`, fmt.Sprintf(`width="%d"`, s.Width), 1)
	ret = strings.Replace(ret, `height=""`, fmt.Sprintf(`height="%d"`, s.Height), 1)

	for _, line := range s.Lines {
		ret += line.toTag() + "\n"
	}
	for _, poly := range s.Polylines {
		ret += poly.toTag() + "\n"
	}
	for _, text := range s.Text {
		ret += text.toTag() + "\n"
	}

	ret += SvgFooter
	return ret, nil
}
