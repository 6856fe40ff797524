// Package cli implements the interactive terminal application: a REPL over
// the movie catalog, reviews, and the admin user roster, with every
// mutating command gated by the authorization policy before any request is
// issued.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/povreview/povcli/internal/client/api"
	"github.com/povreview/povcli/internal/client/config"
	"github.com/povreview/povcli/internal/client/session"
	"github.com/povreview/povcli/internal/client/storage"
	"github.com/povreview/povcli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the API client, session store, and terminal I/O together.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database, builds the API client and session
// store, and re-derives the session from durable storage so a previous
// login survives the restart.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	repo := storage.NewSQLiteRepository(db)
	creds := api.NewStorageCredentials(repo)
	apiClient := api.New(c.BaseURL, creds, c.RequestTimeout, log)
	store := session.NewStore(ctx, apiClient, repo, log)

	if err := store.CheckAuth(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		api:     apiClient,
		session: store,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

// getStatus renders the prompt suffix: user name plus role marker.
func (a *App) getStatus() string {
	s := a.session.Snapshot()
	if !s.IsAuthenticated {
		return ""
	}
	name := "?"
	if s.User != nil {
		name = s.User.Name
	}
	if a.isAdmin() {
		return "(" + name + " admin)"
	}
	return "(" + name + ")"
}
