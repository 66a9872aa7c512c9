package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"open url", "https://open.spotify.com/playlist/37i9dQZF1DX4WYpdgoIcn6", true},
		{"url with query", "https://open.spotify.com/playlist/37i9dQZF1DX4WYpdgoIcn6?si=abc", true},
		{"http without open", "http://spotify.com/playlist/abc", true},
		{"url is case insensitive", "HTTPS://OPEN.SPOTIFY.COM/PLAYLIST/abc", true},
		{"uri", "spotify:playlist:37i9dQZF1DX4WYpdgoIcn6", true},
		{"uri upper", "SPOTIFY:PLAYLIST:abc", true},
		{"bare id", "37i9dQZF1DX4WYpdgoIcn6", true},
		{"bare id padded", "   37i9dQZF1DX4WYpdgoIcn6  ", true},
		{"bare id min length", "abcdefgh", true},
		{"bare id max length", "abcdefghijabcdefghijabcdefghijabcdefghij", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"short", "short", false},
		{"too long", "abcdefghijabcdefghijabcdefghijabcdefghijK", false},
		{"album url", "https://open.spotify.com/album/37i9dQZF1DX4WYpdgoIcn6", false},
		{"punctuation", "37i9dQZF-1DX4WYpdgoIcn6", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				assert.Equal(t, "Please enter a valid Spotify playlist URL or ID.", err.Error())
			}
			assert.Equal(t, tt.ok, IsValid(tt.input))
		})
	}
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, "37i9dQZF1DX4WYpdgoIcn6", ExtractID("https://open.spotify.com/playlist/37i9dQZF1DX4WYpdgoIcn6?si=1"))
	assert.Equal(t, "abc123", ExtractID("spotify:playlist:abc123"))
	assert.Equal(t, "37i9dQZF1DX4WYpdgoIcn6", ExtractID(" 37i9dQZF1DX4WYpdgoIcn6 "))
	assert.Empty(t, ExtractID("short"))
	assert.Empty(t, ExtractID(""))
}
