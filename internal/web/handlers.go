package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"harmonyminds/internal/analysis"
	"harmonyminds/internal/backend"
	"harmonyminds/internal/chart"
	"harmonyminds/internal/logging"
	"harmonyminds/internal/playlist"
	"harmonyminds/internal/shell"
)

// GenericAnalyzeError is shown when a failure carries no message of its own.
const GenericAnalyzeError = "Failed to analyze playlist. Please try again."

// topN is how many genres and artists the results page lists.
const topN = 5

var homeNotices = map[string]string{
	"auth_failed":    "Spotify login did not complete. Please try connecting again.",
	"connect_failed": "Could not start the Spotify login. Please try again in a moment.",
}

type homeContent struct {
	Notice   string
	Features []Feature
	Examples []Example
}

type analyzeContent struct {
	Value string
	Error string
}

type resultsContent struct {
	Analysis    analysis.PlaylistAnalysis
	MoodStyle   template.CSS
	Genres      []analysis.Count
	Artists     []analysis.Count
	Radar       chart.Radar
	RadarSVG    template.HTML
	Bars        []chart.BarRow
	TempoBPM    int
	TotalTracks int
}

type takeCareContent struct {
	Sections []Section
	Tips     []string
}

type blogContent struct {
	Articles []Article
	Popular  []string
}

func (s *Server) home(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	sess.Navigate(shell.PageHome)
	authed := s.signedIn(r, sess, s.backendFor(r, sess))

	s.render(w, r, http.StatusOK, shell.PageHome, layoutData{
		Title:  title(),
		Header: newHeader(sess.View().CurrentPage, authed),
		Content: homeContent{
			Notice:   homeNotices[r.URL.Query().Get("error")],
			Features: homeFeatures,
			Examples: homeExamples,
		},
	})
}

// connect sends the browser to the provider's login page.
func (s *Server) connect(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	authURL, err := s.backendFor(r, sess).GetAuthURL(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to get auth url")
		sess.Navigate(shell.PageHome)
		redirect(w, "/?error=connect_failed")
		return
	}
	redirect(w, authURL)
}

// callback relays the provider's redirect to the backend so its session
// cookie lands in this browser session's jar.
func (s *Server) callback(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	if err := s.backendFor(r, sess).CompleteLogin(r.Context(), r.URL.RawQuery); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Login callback failed")
		sess.Navigate(shell.PageHome)
		redirect(w, "/?error=auth_failed")
		return
	}
	sess.RememberSignedIn(true)
	sess.Navigate(shell.PageAnalyze)
	redirect(w, shell.PageAnalyze.Path())
}

// logout is best effort: the user ends up logged out on the home page
// whatever the backend said.
func (s *Server) logout(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	if err := s.backendFor(r, sess).Logout(r.Context()); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Logout failed")
	}
	sess.RememberSignedIn(false)
	sess.Navigate(shell.PageHome)
	redirect(w, shell.PageHome.Path())
}

func (s *Server) analyzeForm(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	status := s.backendFor(r, sess).AuthStatus(r.Context())
	sess.RememberSignedIn(status.IsAuthenticated())
	if !status.IsAuthenticated() {
		logging.WithContext(r.Context()).Info().Stringer("auth_status", status).Msg("Not authenticated, returning home")
		sess.Navigate(shell.PageHome)
		redirect(w, shell.PageHome.Path())
		return
	}

	sess.Navigate(shell.PageAnalyze)
	s.renderAnalyze(w, r, sess, http.StatusOK, true, analyzeContent{})
}

func (s *Server) analyzeSubmit(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	raw := r.PostFormValue("playlist_url")
	input := playlist.Normalize(raw)
	client := s.backendFor(r, sess)

	// Rejected locally: the header uses the remembered login state.
	if err := playlist.Validate(input); err != nil {
		s.renderAnalyze(w, r, sess, http.StatusUnprocessableEntity, sess.SignedIn(),
			analyzeContent{Value: raw, Error: err.Error()})
		return
	}

	log := logging.WithContext(r.Context())
	log.Info().Str("playlist_id", playlist.ExtractID(input)).Msg("Analyzing playlist")

	// A response that arrives after the browser gave up still replaces the
	// held analysis.
	result, err := client.AnalyzePlaylist(context.WithoutCancel(r.Context()), input)
	if err != nil {
		log.Error().Err(err).Msg("Analyze failed")

		message := GenericAnalyzeError
		status := http.StatusBadGateway
		var aerr *backend.AnalyzeError
		if errors.As(err, &aerr) {
			message = aerr.Message
		}
		if r.Context().Err() != nil {
			return
		}
		s.renderAnalyze(w, r, sess, status, s.signedIn(r, sess, client),
			analyzeContent{Value: raw, Error: message})
		return
	}

	sess.CompleteAnalysis(result)
	sess.Navigate(shell.PageResults)
	redirect(w, shell.PageResults.Path())
}

// signedIn asks the backend and remembers the answer on the session.
func (s *Server) signedIn(r *http.Request, sess *shell.Session, client *backend.Client) bool {
	ok := client.CheckAuthStatus(r.Context())
	sess.RememberSignedIn(ok)
	return ok
}

func (s *Server) renderAnalyze(w http.ResponseWriter, r *http.Request, sess *shell.Session, status int, authed bool, content analyzeContent) {
	s.render(w, r, status, shell.PageAnalyze, layoutData{
		Title:   title("Analyze"),
		Header:  newHeader(sess.View().CurrentPage, authed),
		Content: content,
	})
}

// results shows the held analysis. With nothing held the browser is sent
// back to the form and nothing is rendered.
func (s *Server) results(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	view := sess.View()
	if !view.HasAnalysis() {
		sess.Navigate(shell.PageAnalyze)
		redirect(w, shell.PageAnalyze.Path())
		return
	}
	sess.Navigate(shell.PageResults)

	a := *view.Analysis
	radar := chart.FeatureRadar(a.AudioFeatures)
	graphic, err := chart.RadarGraphic(radar)
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to render radar chart")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, shell.PageResults, layoutData{
		Title:  title(a.Playlist.Name, "Results"),
		Header: newHeader(shell.PageResults, s.signedIn(r, sess, s.backendFor(r, sess))),
		Content: resultsContent{
			Analysis:    a,
			MoodStyle:   cssGradient(a.Mood.Gradient()),
			Genres:      a.Genres(topN),
			Artists:     a.Artists(topN),
			Radar:       radar,
			RadarSVG:    graphic,
			Bars:        chart.FeatureBars(a.AudioFeatures),
			TempoBPM:    a.AudioFeatures.TempoBPM(),
			TotalTracks: a.Playlist.TotalTracks,
		},
	})
}

func (s *Server) radarSVG(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	view := sess.View()
	if !view.HasAnalysis() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if err := chart.RenderRadarSVG(w, chart.FeatureRadar(view.Analysis.AudioFeatures)); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to write radar svg")
	}
}

func (s *Server) takeCare(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	sess.Navigate(shell.PageTakeCare)
	s.render(w, r, http.StatusOK, shell.PageTakeCare, layoutData{
		Title:   title("Take Care"),
		Header:  newHeader(shell.PageTakeCare, s.signedIn(r, sess, s.backendFor(r, sess))),
		Content: takeCareContent{Sections: takeCareSections, Tips: quickTips},
	})
}

func (s *Server) blog(w http.ResponseWriter, r *http.Request, sess *shell.Session) {
	sess.Navigate(shell.PageBlog)
	s.render(w, r, http.StatusOK, shell.PageBlog, layoutData{
		Title:   title("Blog"),
		Header:  newHeader(shell.PageBlog, s.signedIn(r, sess, s.backendFor(r, sess))),
		Content: blogContent{Articles: articles, Popular: popularArticles},
	})
}
