// Package http exposes the portfolio API over HTTP: public project reads and
// the contact form, plus token-protected project mutations and auth routes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/portfolio-backend/internal/logging"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/auth"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/mailer"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/services"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/storage"
)

type Server struct {
	address  string
	logger   logging.Logger
	gate     *auth.Gate
	renewer  *auth.Renewer
	users    *services.UserService
	projects *services.ProjectService
	store    storage.ObjectStore
	mailer   mailer.Mailer
}

func NewServer(
	address string,
	logger logging.Logger,
	gate *auth.Gate,
	renewer *auth.Renewer,
	users *services.UserService,
	projects *services.ProjectService,
	store storage.ObjectStore,
	m mailer.Mailer,
) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "http_server"),
		gate:     gate,
		renewer:  renewer,
		users:    users,
		projects: projects,
		store:    store,
		mailer:   m,
	}
}

// Routes assembles the chi router. Exported so tests can drive the full
// middleware/handler chain through httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/loginuser", s.handleLogin)

		r.Get("/projects", s.handleProjectSummaries)
		r.Get("/projects/{id}", s.handleProjectDetails)

		r.Post("/contact", s.handleContact)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Post("/auth/refreshtoken", s.handleRefreshToken)
			r.Post("/auth/getsignedurl", s.handleSignedURL)
			r.Post("/auth/logoutuser", s.handleLogout)

			r.Post("/projects", s.handleCreateProject)
			r.Put("/projects/{id}", s.handleEditProject)
			r.Delete("/projects/{id}", s.handleDeleteProject)
			r.Patch("/projects/order", s.handleReorderProjects)
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
