package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"harmonyminds/internal/backend"
	"harmonyminds/internal/http/middleware"
	"harmonyminds/internal/logging"
	"harmonyminds/internal/session"
	"harmonyminds/internal/shell"
)

// Options configures a Server.
type Options struct {
	Store  *shell.Store
	Tokens *session.Codec

	CookieName   string
	CookieSecure bool

	// BackendURL overrides base URL detection; BackendPort is used otherwise.
	BackendURL  string
	BackendPort int
	// PageHosts are the hostnames, besides loopback, whose Host header may
	// pick the backend host. Any other host targets localhost.
	PageHosts []string
}

// Server renders the application's pages for every browser session.
type Server struct {
	opts  Options
	pages map[shell.Page]*template.Template
}

// New parses the embedded templates and returns a ready Server.
func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Tokens == nil {
		return nil, errors.New("web: store and token codec are required")
	}
	if opts.CookieName == "" {
		opts.CookieName = "hm_session"
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{opts: opts, pages: pages}, nil
}

// Handler returns the full router with middleware installed.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogging(), middleware.Recovery(), middleware.SameOrigin())
	s.Register(router)
	return router
}

// Register mounts every route on router.
func (s *Server) Register(router *mux.Router) {
	router.HandleFunc("/", s.withSession(s.home)).Methods(http.MethodGet)
	router.HandleFunc("/connect", s.withSession(s.connect)).Methods(http.MethodGet)
	router.HandleFunc("/callback", s.withSession(s.callback)).Methods(http.MethodGet)
	router.HandleFunc("/logout", s.withSession(s.logout)).Methods(http.MethodPost)
	router.HandleFunc("/analyze", s.withSession(s.analyzeForm)).Methods(http.MethodGet)
	router.HandleFunc("/analyze", s.withSession(s.analyzeSubmit)).Methods(http.MethodPost)
	router.HandleFunc("/results", s.withSession(s.results)).Methods(http.MethodGet)
	router.HandleFunc("/results/radar.svg", s.withSession(s.radarSVG)).Methods(http.MethodGet)
	router.HandleFunc("/take-care", s.withSession(s.takeCare)).Methods(http.MethodGet)
	router.HandleFunc("/blog", s.withSession(s.blog)).Methods(http.MethodGet)

	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.HandleFunc("/ready", s.ready).Methods(http.MethodGet)
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(staticFiles())))
}

// sessionHandler is a handler that runs inside a browser session.
type sessionHandler func(http.ResponseWriter, *http.Request, *shell.Session)

// withSession resolves the session named by the cookie, or starts a new one
// when the cookie is missing, forged or refers to an expired session.
func (s *Server) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.lookupSession(r)
		if sess == nil {
			created, err := s.opts.Store.Create()
			if err != nil {
				logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to create session")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			token, err := s.opts.Tokens.Sign(created.ID())
			if err != nil {
				logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to sign session")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     s.opts.CookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.opts.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			sess = created
		}

		r = r.WithContext(logging.WithSessionID(r.Context(), sess.ID()))
		next(w, r, sess)
	}
}

func (s *Server) lookupSession(r *http.Request) *shell.Session {
	cookie, err := r.Cookie(s.opts.CookieName)
	if err != nil {
		return nil
	}
	id, err := s.opts.Tokens.Parse(cookie.Value)
	if err != nil {
		logging.WithContext(r.Context()).Debug().Err(err).Msg("Ignoring session cookie")
		return nil
	}
	sess, ok := s.opts.Store.Get(id)
	if !ok {
		return nil
	}
	return sess
}

// backendFor builds a client that carries the session's backend cookies and
// targets the backend as seen from the page the browser loaded.
func (s *Server) backendFor(r *http.Request, sess *shell.Session) *backend.Client {
	base := backend.ResolveBaseURL(s.opts.BackendURL, s.opts.BackendPort, backend.PageURL(r, s.opts.PageHosts))
	return backend.NewClient(sess.HTTPClient(), base)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	base := backend.ResolveBaseURL(s.opts.BackendURL, s.opts.BackendPort, backend.PageURL(r, s.opts.PageHosts))
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := backend.NewClient(nil, base).Ping(ctx); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Str("backend", base).Msg("Backend not reachable")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "backend": base})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "backend": base})
}
