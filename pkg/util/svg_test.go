package util

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSVGPolylineValidation(t *testing.T) {
	_, err := NewSVGPolyline("too-short", []*Point{NewPoint(0, 0)}, "", false)
	assert.Error(t, err)

	p, err := NewSVGPolyline("ok", []*Point{NewPoint(0, 0), NewPoint(1, 1)}, "", false)
	require.NoError(t, err)
	assert.Equal(t, "fill:none;stroke:black;stroke-width:2", p.Style)
}

func TestPolylineDashRendering(t *testing.T) {
	points := []*Point{NewPoint(0, 0), NewPoint(10, 10)}

	solid, err := NewSVGPolyline("solid", points, "", false)
	require.NoError(t, err)
	assert.NotContains(t, solid.toTag(), "stroke-dasharray")

	dashed, err := NewSVGPolyline("dashed", points, "", true)
	require.NoError(t, err)
	assert.Contains(t, dashed.toTag(), `stroke-dasharray="8,5"`)
}

func TestTextEscaping(t *testing.T) {
	text, err := NewSVGEmbeddedText("label", "Diesel <50ppm> & LPG", "", 5, 5)
	require.NoError(t, err)
	tag := text.toTag()
	assert.Contains(t, tag, "Diesel &lt;50ppm&gt; &amp; LPG")
}

func TestRotatedTextCarriesTransform(t *testing.T) {
	svg := NewBlankSVG("test", 100, 100)
	require.NoError(t, svg.AddRotatedText("label", "January", "", 10, 20, 45))

	content, err := svg.ToSVG()
	require.NoError(t, err)
	assert.Contains(t, content, `transform="rotate(45.0 10.00 20.00)"`)
}

func TestToSVG(t *testing.T) {
	svg := NewBlankSVG("test", 640, 480)
	svg.AddLine(0, 0, 640, 0, "")
	require.NoError(t, svg.AddPolyline("series",
		[]*Point{NewPoint(0, 0), NewPoint(100, 50), NewPoint(200, 25)}, "", false))
	require.NoError(t, svg.AddText("title", "Chart", "", 320, 20))

	content, err := svg.ToSVG()
	require.NoError(t, err)

	assert.Contains(t, content, `width="640"`)
	assert.Contains(t, content, `height="480"`)
	assert.Contains(t, content, "<line")
	assert.Contains(t, content, "<polyline")
	assert.Contains(t, content, ">Chart</text>")

	// Must parse as XML end to end
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		if _, err := decoder.Token(); err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestToSVGRequiresDimensions(t *testing.T) {
	svg := NewBlankSVG("test", 0, 100)
	_, err := svg.ToSVG()
	assert.Error(t, err)
}

func TestToSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	svg := NewBlankSVG("test", 10, 10)
	require.NoError(t, svg.AddText("t", "hello", "", 1, 1))
	require.NoError(t, svg.ToSVGFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
