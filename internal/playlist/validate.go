package playlist

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidIdentifier is shown to the user verbatim.
var ErrInvalidIdentifier = errors.New("Please enter a valid Spotify playlist URL or ID.")

var (
	urlForm = regexp.MustCompile(`(?i)^https?://(open\.)?spotify\.com/playlist/[A-Za-z0-9]+`)
	uriForm = regexp.MustCompile(`(?i)^spotify:playlist:[A-Za-z0-9]+`)
	bareID  = regexp.MustCompile(`^[A-Za-z0-9]{8,40}$`)
)

// Normalize trims surrounding whitespace.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Validate accepts a playlist URL, a spotify:playlist URI or a bare playlist ID.
func Validate(raw string) error {
	s := Normalize(raw)
	if s == "" {
		return ErrInvalidIdentifier
	}
	if urlForm.MatchString(s) || uriForm.MatchString(s) || bareID.MatchString(s) {
		return nil
	}
	return ErrInvalidIdentifier
}

// IsValid reports whether Validate accepts raw.
func IsValid(raw string) bool {
	return Validate(raw) == nil
}

var (
	uriID  = regexp.MustCompile(`spotify:playlist:([A-Za-z0-9]+)`)
	pathID = regexp.MustCompile(`playlist/([A-Za-z0-9]+)`)
)

// ExtractID pulls the playlist ID out of any accepted form, the same way the
// analysis backend does. It returns "" when nothing matches.
func ExtractID(raw string) string {
	s, _, _ := strings.Cut(raw, "?")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := uriID.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := pathID.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if bareID.MatchString(s) {
		return s
	}
	return ""
}
