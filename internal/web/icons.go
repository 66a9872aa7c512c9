package web

import (
	"html"
	"html/template"
)

// Icon names one glyph from the fixed icon set. Content tables carry Icons;
// the markup is only produced when a template renders one.
type Icon int

const (
	IconNone Icon = iota
	IconActivity
	IconArrowLeft
	IconBookOpen
	IconBrain
	IconCoffee
	IconFlower
	IconHeadphones
	IconHeart
	IconLink
	IconLogOut
	IconMusic
	IconMusicNote
	IconPlay
	IconSearch
	IconSparkles
	IconTrendingUp
	IconUsers
)

var iconPaths = map[Icon]string{
	IconActivity:   `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	IconArrowLeft:  `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`,
	IconBookOpen:   `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	IconBrain:      `<path d="M12 5a3 3 0 1 0-6 .13 4 4 0 0 0-2.52 5.77 4 4 0 0 0 .55 6.59A4 4 0 1 0 12 18Z"/><path d="M12 5a3 3 0 1 1 6 .13 4 4 0 0 1 2.52 5.77 4 4 0 0 1-.55 6.59A4 4 0 1 1 12 18Z"/>`,
	IconCoffee:     `<path d="M17 8h1a4 4 0 1 1 0 8h-1"/><path d="M3 8h14v9a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4Z"/><line x1="6" x2="6" y1="2" y2="4"/><line x1="10" x2="10" y1="2" y2="4"/><line x1="14" x2="14" y1="2" y2="4"/>`,
	IconFlower:     `<circle cx="12" cy="8" r="2"/><path d="M12 5a3 3 0 1 1 3 3m-3-3a3 3 0 1 0-3 3m3-3v1M9 8a3 3 0 1 0 3 3M9 8h1m5 0a3 3 0 1 1-3 3m3-3h-1m-2 3v-1"/><path d="M12 10v12"/><path d="M12 22c4.2 0 7-1.67 7-5-4.2 0-7 1.67-7 5Z"/><path d="M12 22c-4.2 0-7-1.67-7-5 4.2 0 7 1.67 7 5Z"/>`,
	IconHeadphones: `<path d="M3 14h3a2 2 0 0 1 2 2v3a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a9 9 0 0 1 18 0v7a2 2 0 0 1-2 2h-1a2 2 0 0 1-2-2v-3a2 2 0 0 1 2-2h3"/>`,
	IconHeart:      `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	IconLink:       `<path d="M9 17H7A5 5 0 0 1 7 7h2"/><path d="M15 7h2a5 5 0 1 1 0 10h-2"/><line x1="8" x2="16" y1="12" y2="12"/>`,
	IconLogOut:     `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	IconMusic:      `<path d="M9 18V5l12-2v13"/><circle cx="6" cy="18" r="3"/><circle cx="18" cy="16" r="3"/>`,
	IconMusicNote:  `<circle cx="8" cy="18" r="4"/><path d="M12 18V2l7 4"/>`,
	IconPlay:       `<polygon points="6 3 20 12 6 21 6 3"/>`,
	IconSearch:     `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	IconSparkles:   `<path d="m12 3-1.9 5.8a2 2 0 0 1-1.3 1.3L3 12l5.8 1.9a2 2 0 0 1 1.3 1.3L12 21l1.9-5.8a2 2 0 0 1 1.3-1.3L21 12l-5.8-1.9a2 2 0 0 1-1.3-1.3Z"/>`,
	IconTrendingUp: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	IconUsers:      `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
}

// iconNames lets templates name the glyphs they place directly.
var iconNames = map[string]Icon{
	"activity":    IconActivity,
	"arrow-left":  IconArrowLeft,
	"book-open":   IconBookOpen,
	"brain":       IconBrain,
	"coffee":      IconCoffee,
	"flower":      IconFlower,
	"headphones":  IconHeadphones,
	"heart":       IconHeart,
	"link":        IconLink,
	"log-out":     IconLogOut,
	"music":       IconMusic,
	"music-note":  IconMusicNote,
	"play":        IconPlay,
	"search":      IconSearch,
	"sparkles":    IconSparkles,
	"trending-up": IconTrendingUp,
	"users":       IconUsers,
}

func renderGlyph(name, class string) template.HTML {
	return renderIcon(iconNames[name], class)
}

// renderIcon returns the inline SVG for icon. Unknown icons render nothing.
func renderIcon(icon Icon, class string) template.HTML {
	paths, ok := iconPaths[icon]
	if !ok {
		return ""
	}
	return template.HTML(`<svg class="icon ` + html.EscapeString(class) +
		`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` +
		paths + `</svg>`)
}
