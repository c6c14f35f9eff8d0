package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/umlindi-lab/wardrisk/pkg/usecase"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", loginHandler(uc.Auth))
		r.Post("/logout", logoutHandler(uc.Auth))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(uc.Auth))

		r.Get("/catalog", catalogHandler(uc))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", createSessionHandler(uc))
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", getSessionHandler(uc))
				r.Put("/hazards", selectHazardsHandler(uc))
				r.Post("/map", resolveWardHandler(uc))
				r.Put("/respondent", setRespondentHandler(uc))
				r.Put("/answers", recordAnswersHandler(uc))
				r.Post("/back", backHandler(uc))
				r.Post("/submit", submitHandler(uc))
				r.Get("/artifacts/{kind}", artifactHandler(uc.Session))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminMiddleware(uc.Auth))
			r.Get("/master", masterHandler(uc.Admin))
			r.Get("/submissions", submissionsHandler(uc.Admin))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
