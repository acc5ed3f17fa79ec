package app

import (
	"context"

	"log/slog"

	"github.com/swayogurja/swayog-backend/config"
	httpapi "github.com/swayogurja/swayog-backend/internal/api/http"
	"github.com/swayogurja/swayog-backend/internal/chatbot"
	"github.com/swayogurja/swayog-backend/internal/dependency"
	"github.com/swayogurja/swayog-backend/internal/mail"
	"github.com/swayogurja/swayog-backend/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start wires the collaborators and starts serving. A missing database DSN
// is fatal here; a missing mail or chatbot configuration is not, those
// degrade per request.
func (a *App) Start(ctx context.Context) error {
	var err error
	l := slog.Default()
	l.InfoContext(ctx, "starting swayog backend")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		l.ErrorContext(ctx, "couldn't connect to postgres", slog.String("error", err.Error()))
		return err
	}

	mailer, err := mail.New(&a.c.Mailer)
	if err != nil {
		l.ErrorContext(ctx, "failed to create mailer", slog.String("error", err.Error()))
		return err
	}

	assistant := chatbot.New(&a.c.Chatbot)

	a.hs = httpapi.New(&a.c.HTTP, a.db, mailer, assistant)
	if err = a.hs.Start(ctx); err != nil {
		l.ErrorContext(ctx, "cannot start http server", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("error", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
