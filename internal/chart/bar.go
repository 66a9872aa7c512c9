package chart

import (
	"math"

	"harmonyminds/internal/analysis"
)

// BarItem is one labelled value, expected in [0,1].
type BarItem struct {
	Label string
	Value float64
}

// BarRow is a rendered bar: the percentage text and the CSS width of the fill.
type BarRow struct {
	Label   string
	Percent string
	Width   string
}

// Bars maps items to rows. Values are not clamped, so a value above 1 overflows its track.
func Bars(items []BarItem) []BarRow {
	rows := make([]BarRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, BarRow{
			Label:   it.Label,
			Percent: Percent(it.Value),
			Width:   width(it.Value),
		})
	}
	return rows
}

// FeatureBars lists the four bounded audio features.
func FeatureBars(f analysis.AudioFeatures) []BarRow {
	return Bars([]BarItem{
		{Label: "Danceability", Value: f.Danceability},
		{Label: "Energy", Value: f.Energy},
		{Label: "Happiness", Value: f.Valence},
		{Label: "Acousticness", Value: f.Acousticness},
	})
}

func width(v float64) string {
	if math.IsNaN(v) {
		return "0%"
	}
	return jsNumber(v*100) + "%"
}
