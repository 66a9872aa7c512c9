package analysis

import (
	"regexp"
	"strings"
)

// Gradient fallbacks used when a mood carries no usable color.
const (
	FallbackFrom = "#7c3aed"
	FallbackTo   = "#ec4899"
)

// Mood is the backend's label for the playlist plus two gradient stops.
// The stops arrive either as utility-class tokens ("from-yellow-300") or as CSS colors.
type Mood struct {
	Mood        string `json:"mood"`
	Description string `json:"description"`
	ColorFrom   string `json:"color_from"`
	ColorTo     string `json:"color_to"`
}

// Gradient resolves both stops to CSS colors safe to place in a style attribute.
func (m Mood) Gradient() (from, to string) {
	return resolveStop(m.ColorFrom, "from-", FallbackFrom), resolveStop(m.ColorTo, "to-", FallbackTo)
}

var cssColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

func resolveStop(raw, prefix, fallback string) string {
	token := strings.TrimPrefix(strings.TrimSpace(raw), prefix)
	if token == "" {
		return fallback
	}
	if hex, ok := Color(token); ok {
		return hex
	}
	if cssColor.MatchString(token) {
		return token
	}
	return fallback
}

// palette maps "<hue>-<shade>" tokens to hex. It covers every token the
// backend's mood table and the static pages use.
var palette = map[string]string{
	"amber-400":  "#fbbf24",
	"blue-300":   "#93c5fd",
	"blue-400":   "#60a5fa",
	"blue-500":   "#3b82f6",
	"blue-600":   "#2563eb",
	"cyan-400":   "#22d3ee",
	"cyan-500":   "#06b6d4",
	"green-300":  "#86efac",
	"green-400":  "#4ade80",
	"indigo-400": "#818cf8",
	"indigo-500": "#6366f1",
	"orange-400": "#fb923c",
	"pink-400":   "#f472b6",
	"pink-500":   "#ec4899",
	"pink-600":   "#db2777",
	"purple-400": "#c084fc",
	"purple-500": "#a855f7",
	"purple-600": "#9333ea",
	"red-400":    "#f87171",
	"rose-500":   "#f43f5e",
	"slate-500":  "#64748b",
	"teal-300":   "#5eead4",
	"teal-400":   "#2dd4bf",
	"yellow-300": "#fde047",
}

// Color looks up a palette token such as "teal-300".
func Color(token string) (string, bool) {
	hex, ok := palette[strings.ToLower(token)]
	return hex, ok
}
