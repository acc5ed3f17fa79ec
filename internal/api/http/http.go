package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"

	"github.com/swayogurja/swayog-backend/internal/dependency"
)

type Config struct {
	Port      string `mapstructure:"port"`
	Address   string `mapstructure:"address"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Server is the public HTTP surface: lead intake, contact form, chatbot and
// a token-gated admin read path. It owns no business rules beyond request
// decoding and response shaping.
type Server struct {
	c         *Config
	repo      dependency.Repository
	mailer    dependency.Mailer
	assistant dependency.Assistant
	auth      *jwtauth.JWTAuth
	srv       *http.Server
}

func New(c *Config, repo dependency.Repository, mailer dependency.Mailer, assistant dependency.Assistant) *Server {
	s := &Server{
		c:         c,
		repo:      repo,
		mailer:    mailer,
		assistant: assistant,
	}
	if c.JWTSecret != "" {
		s.auth = jwtauth.New("HS256", []byte(c.JWTSecret), nil)
	}
	return s
}

// Start begins serving in a background goroutine and returns immediately.
func (s *Server) Start(ctx context.Context) error {
	port := s.c.Port
	if port == "" {
		port = "5000"
	}
	addr := fmt.Sprintf("%s:%s", s.c.Address, port)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "http server listening", slog.String("addr", addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().ErrorContext(ctx, "http server stopped", slog.String("error", err.Error()))
		}
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()

	// The site is served from arbitrary origins (static hosting, previews),
	// so the API answers any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Use(httprate.LimitByIP(30, time.Minute))

	r.Get("/", s.health)
	r.Options("/*", s.handleOptions)

	r.Route("/api", func(r chi.Router) {
		r.Post("/inquiries", s.submitInquiry)
		r.Post("/contact", s.submitContact)
		r.With(s.chatRecoverer).Post("/chatbot", s.chat)

		if s.auth != nil {
			r.Route("/admin", func(r chi.Router) {
				r.Use(jwtauth.Verifier(s.auth))
				r.Use(jwtauth.Authenticator(s.auth))
				r.Get("/inquiries", s.listInquiries)
			})
		}
	})

	return r
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, struct{}{})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.repo.Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	render.Status(r, code)
	render.JSON(w, r, map[string]string{"status": status})
}
