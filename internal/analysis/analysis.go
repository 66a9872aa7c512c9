package analysis

import "math"

// PlaylistAnalysis is the summary the analysis backend computes for one playlist.
// A value is treated as an immutable snapshot; callers replace it, never edit it.
type PlaylistAnalysis struct {
	Playlist      Playlist      `json:"playlist"`
	TopGenres     []Count       `json:"top_genres"`
	TopArtists    []Count       `json:"top_artists"`
	AudioFeatures AudioFeatures `json:"audio_features"`
	Mood          Mood          `json:"mood"`
}

// Playlist holds the playlist metadata. Image is empty when the backend sent null.
type Playlist struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	TotalTracks int    `json:"total_tracks"`
}

// Count is a named tally, used for both genres and artists.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AudioFeatures are playlist averages. Everything except Tempo is conventionally in [0,1].
type AudioFeatures struct {
	Danceability float64 `json:"danceability"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Tempo        float64 `json:"tempo"`
	Acousticness float64 `json:"acousticness"`
}

// TempoBPM rounds the average tempo half up.
func (f AudioFeatures) TempoBPM() int {
	return int(math.Floor(f.Tempo + 0.5))
}

// Genres returns at most n leading genres.
func (a PlaylistAnalysis) Genres(n int) []Count {
	return head(a.TopGenres, n)
}

// Artists returns at most n leading artists.
func (a PlaylistAnalysis) Artists(n int) []Count {
	return head(a.TopArtists, n)
}

func head(items []Count, n int) []Count {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
