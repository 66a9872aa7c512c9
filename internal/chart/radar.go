package chart

import (
	"math"
	"strconv"
	"strings"

	"harmonyminds/internal/analysis"
)

// Radar geometry in view box units.
const (
	Size        = 200.0
	Center      = Size / 2
	Radius      = 80.0
	LabelOffset = 22.0
)

// GridLevels are the fractional radii of the background rings.
var GridLevels = []float64{0.25, 0.5, 0.75, 1}

// Axis is one category of a radar chart.
type Axis struct {
	Label string
	Value float64
}

// Point is a position inside the view box.
type Point struct {
	X, Y float64
}

// Vertex is a data point placed on its axis.
type Vertex struct {
	Point
	Angle float64
	Value float64 // clamped
	Label string
}

// Label sits beyond the outer ring on its axis.
type Label struct {
	Point
	Text    string
	Percent string
	Left    string // CSS offset relative to the view box
	Top     string
}

// Radar is a fully computed chart, ready for a template.
type Radar struct {
	Size     float64
	Center   float64
	Radius   float64
	Vertices []Vertex
	Path     string
	Grid     []string
	Spokes   []Point
	Labels   []Label
}

// Angle returns the ray angle of axis i out of n, starting at the top and
// moving clockwise in screen coordinates.
func Angle(i, n int) float64 {
	return 2*math.Pi*float64(i)/float64(n) - math.Pi/2
}

// Clamp coerces v into [0,1]. NaN counts as 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// NewRadar lays out the axes. It never fails; out of range values are clamped.
func NewRadar(axes []Axis) Radar {
	n := len(axes)
	r := Radar{Size: Size, Center: Center, Radius: Radius}
	if n == 0 {
		return r
	}

	points := make([]Point, n)
	for i, a := range axes {
		angle := Angle(i, n)
		v := Clamp(a.Value)
		p := polar(angle, Radius*v)
		points[i] = p
		r.Vertices = append(r.Vertices, Vertex{Point: p, Angle: angle, Value: v, Label: a.Label})
		r.Spokes = append(r.Spokes, polar(angle, Radius))

		at := polar(angle, Radius+LabelOffset)
		r.Labels = append(r.Labels, Label{
			Point:   at,
			Text:    a.Label,
			Percent: Percent(v),
			Left:    cssPercent(at.X / Size * 100),
			Top:     cssPercent(at.Y / Size * 100),
		})
	}
	r.Path = closedPath(points)

	for _, level := range GridLevels {
		ring := make([]Point, n)
		for i := range ring {
			ring[i] = polar(Angle(i, n), Radius*level)
		}
		r.Grid = append(r.Grid, closedPath(ring))
	}
	return r
}

// FeatureRadar charts the four bounded audio features.
func FeatureRadar(f analysis.AudioFeatures) Radar {
	return NewRadar([]Axis{
		{Label: "Danceability", Value: f.Danceability},
		{Label: "Energy", Value: f.Energy},
		{Label: "Happiness", Value: f.Valence},
		{Label: "Acoustic", Value: f.Acousticness},
	})
}

func polar(angle, dist float64) Point {
	return Point{X: Center + math.Cos(angle)*dist, Y: Center + math.Sin(angle)*dist}
}

// closedPath joins points as "M x y L x y ... Z" with two decimals.
func closedPath(points []Point) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(fixed(p.X))
		b.WriteByte(' ')
		b.WriteString(fixed(p.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

func cssPercent(v float64) string {
	return fixed(v) + "%"
}

// Percent renders v as a whole percentage, rounding half up.
func Percent(v float64) string {
	return jsNumber(math.Floor(v*100+0.5)) + "%"
}

// jsNumber formats v the way a browser prints a number.
func jsNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
