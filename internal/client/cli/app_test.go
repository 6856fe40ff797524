package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povreview/povcli/internal/client/api"
	"github.com/povreview/povcli/internal/client/config"
	"github.com/povreview/povcli/internal/client/models"
	"github.com/povreview/povcli/internal/client/session"
	"github.com/povreview/povcli/internal/client/storage"
	"github.com/povreview/povcli/internal/logging"
)

type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// requestLog records every request the backend received, so tests can
// assert which calls were and, more importantly, were not issued.
type requestLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, r.Method+" "+r.URL.Path)
}

func (l *requestLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// seedSession persists a logged-in session for the given user so the store
// rehydrates it, the same way a previous run would have left it behind.
func seedSession(t *testing.T, repo storage.Repository, user *models.User) {
	t.Helper()
	envelope := map[string]any{
		"version":         1,
		"user":            user,
		"token":           "test-token",
		"isAuthenticated": true,
	}
	data, err := json.Marshal(envelope)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), storage.KeySession, data))
	require.NoError(t, repo.Set(context.Background(), storage.KeyAuthToken, []byte("test-token")))
}

// newTestApp builds an App over a recording test server. user == nil means
// an anonymous session.
func newTestApp(t *testing.T, user *models.User, input string, handler http.Handler) (*App, *bytes.Buffer, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		if handler != nil {
			handler.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	repo := newMemRepo()
	if user != nil {
		seedSession(t, repo, user)
	}

	nop := logging.NewNopLogger()
	creds := api.NewStorageCredentials(repo)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BaseURL = srv.URL + "/api/"

	apiClient := api.New(cfg.BaseURL, creds, cfg.RequestTimeout, nop)
	store := session.NewStore(context.Background(), apiClient, repo, nop)

	out := &bytes.Buffer{}
	return &App{
		config:  cfg,
		api:     apiClient,
		session: store,
		log:     nop,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}, out, log
}

func regularUser() *models.User {
	return &models.User{ID: "u2", Name: "Dana", Email: "dana@example.com", Roles: []models.Role{models.RoleUser}}
}

func adminUser() *models.User {
	return &models.User{ID: "a1", Name: "Root", Email: "root@example.com", Roles: []models.Role{models.RoleAdmin, models.RoleUser}}
}

func reviewHandler(t *testing.T, ownerID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		review := models.Review{
			ID:      "r1",
			Rating:  4,
			Comment: "Great pacing, weak third act.",
			User:    models.ReviewUser{ID: ownerID, Name: "Someone"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(review))
	})
}

func TestAddMovie_NonAdminNeverHitsBackend(t *testing.T) {
	app, out, log := newTestApp(t, regularUser(), "", nil)

	err := app.AddMovie(context.Background())

	require.NoError(t, err)
	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Only administrators can add movies.")
}

func TestAddMovie_AnonymousNeverHitsBackend(t *testing.T) {
	app, out, log := newTestApp(t, nil, "", nil)

	err := app.AddMovie(context.Background())

	require.NoError(t, err)
	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Only administrators can add movies.")
}

func TestAddMovie_AdminCreates(t *testing.T) {
	input := strings.Join([]string{
		"Alien", "A crew meets something in deep space.", "Ridley Scott", "1979-05-25", "sci-fi",
	}, "\n") + "\n"

	var body models.CreateMovieInput
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Movie{ID: "m1", Title: body.Title, Genre: body.Genre})
	})

	app, out, log := newTestApp(t, adminUser(), input, handler)

	require.NoError(t, app.AddMovie(context.Background()))

	assert.Equal(t, []string{"POST /api/movies"}, log.list())
	assert.Equal(t, "Alien", body.Title)
	assert.Equal(t, models.Genre("sci-fi"), body.Genre)
	assert.Contains(t, out.String(), `Created "Alien" (m1)`)
}

func TestAddMovie_InvalidGenreRejectedLocally(t *testing.T) {
	input := strings.Join([]string{
		"Alien", "A crew meets something in deep space.", "Ridley Scott", "1979-05-25", "western",
	}, "\n") + "\n"

	app, out, log := newTestApp(t, adminUser(), input, nil)

	err := app.AddMovie(context.Background())

	assert.Error(t, err)
	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "genre")
}

func TestDeleteMovie_NonAdminNeverHitsBackend(t *testing.T) {
	app, out, log := newTestApp(t, regularUser(), "yes\n", nil)

	require.NoError(t, app.DeleteMovie(context.Background(), "m1"))

	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Only administrators can delete movies.")
}

func TestDeleteMovie_CancelledWithoutConfirmation(t *testing.T) {
	app, out, log := newTestApp(t, adminUser(), "no\n", nil)

	require.NoError(t, app.DeleteMovie(context.Background(), "m1"))

	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestDeleteMovie_AdminConfirms(t *testing.T) {
	app, out, log := newTestApp(t, adminUser(), "yes\n", nil)

	require.NoError(t, app.DeleteMovie(context.Background(), "m1"))

	assert.Equal(t, []string{"DELETE /api/movies/m1"}, log.list())
	assert.Contains(t, out.String(), "Deleted.")
}

func TestAddReview_AnonymousNeverHitsBackend(t *testing.T) {
	app, out, log := newTestApp(t, nil, "", nil)

	require.NoError(t, app.AddReview(context.Background()))

	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Log in to write a review.")
}

func TestAddReview_AuthenticatedUserPosts(t *testing.T) {
	input := "m1\n5\nBest thing I have watched this year.\n\n"
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Review{ID: "r9", Rating: 5})
	})

	app, out, log := newTestApp(t, regularUser(), input, handler)

	require.NoError(t, app.AddReview(context.Background()))

	assert.Equal(t, []string{"POST /api/reviews/movie/m1"}, log.list())
	assert.Contains(t, out.String(), "Review r9 posted")
}

func TestEditReview_OwnerEdits(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reviewHandler(t, "u2").ServeHTTP(w, r)
	})

	input := "5\nChanged my mind, this one holds up.\n\n"
	app, out, log := newTestApp(t, regularUser(), input, handler)

	require.NoError(t, app.EditReview(context.Background(), "r1"))

	assert.Equal(t, []string{"GET /api/reviews/r1", "PATCH /api/reviews/r1"}, log.list())
	assert.Contains(t, out.String(), "Review updated.")
}

func TestEditReview_AdminCannotEditForeignReview(t *testing.T) {
	app, out, log := newTestApp(t, adminUser(), "", reviewHandler(t, "u2"))

	require.NoError(t, app.EditReview(context.Background(), "r1"))

	// the ownership check needs the review, but no update is ever sent
	assert.Equal(t, []string{"GET /api/reviews/r1"}, log.list())
	assert.Contains(t, out.String(), "You can only edit your own reviews.")
}

func TestDeleteReview_AdminDeletesForeignReview(t *testing.T) {
	app, out, log := newTestApp(t, adminUser(), "", reviewHandler(t, "u2"))

	require.NoError(t, app.DeleteReview(context.Background(), "r1"))

	assert.Equal(t, []string{"GET /api/reviews/r1", "DELETE /api/reviews/r1"}, log.list())
	assert.Contains(t, out.String(), "Review deleted.")
}

func TestDeleteReview_OwnerDeletesOwn(t *testing.T) {
	app, out, log := newTestApp(t, regularUser(), "", reviewHandler(t, "u2"))

	require.NoError(t, app.DeleteReview(context.Background(), "r1"))

	assert.Equal(t, []string{"GET /api/reviews/r1", "DELETE /api/reviews/r1"}, log.list())
	assert.Contains(t, out.String(), "Review deleted.")
}

func TestDeleteReview_StrangerCannotDelete(t *testing.T) {
	app, out, log := newTestApp(t, regularUser(), "", reviewHandler(t, "someone-else"))

	require.NoError(t, app.DeleteReview(context.Background(), "r1"))

	assert.Equal(t, []string{"GET /api/reviews/r1"}, log.list())
	assert.Contains(t, out.String(), "You can only delete your own reviews.")
}

func TestListUsers_NonAdminNeverHitsBackend(t *testing.T) {
	app, out, log := newTestApp(t, regularUser(), "", nil)

	require.NoError(t, app.ListUsers(context.Background()))

	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "Only administrators can view users.")
}

func TestListUsers_AdminUsesDefaultPaging(t *testing.T) {
	var query string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.User{*regularUser()})
	})

	app, out, log := newTestApp(t, adminUser(), "\n", handler)

	require.NoError(t, app.ListUsers(context.Background()))

	assert.Equal(t, []string{"GET /api/users"}, log.list())
	assert.Contains(t, query, "limit=10")
	assert.Contains(t, out.String(), "Dana")
}

func TestUpdateRoles_UnknownRoleRejectedLocally(t *testing.T) {
	app, out, log := newTestApp(t, adminUser(), "superuser\n", nil)

	require.NoError(t, app.UpdateRoles(context.Background(), "u2"))

	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), `Unknown role "superuser"`)
}

func TestUpdateRoles_AdminAssigns(t *testing.T) {
	var body map[string][]models.Role
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.User{ID: "u2", Name: "Dana", Roles: body["roles"]})
	})

	app, out, log := newTestApp(t, adminUser(), "admin, user\n", handler)

	require.NoError(t, app.UpdateRoles(context.Background(), "u2"))

	assert.Equal(t, []string{"PATCH /api/users/u2/roles"}, log.list())
	assert.Equal(t, []models.Role{models.RoleAdmin, models.RoleUser}, body["roles"])
	assert.Contains(t, out.String(), "Dana now has roles")
}

func TestLogin_ValidationFailureNeverHitsBackend(t *testing.T) {
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return "not-an-email", nil
	}
	getPassword = func(w io.Writer) (string, error) { return "hunter2", nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	app, out, log := newTestApp(t, nil, "", nil)

	err := app.Login(context.Background())

	assert.Error(t, err)
	assert.Empty(t, log.list())
	assert.Contains(t, out.String(), "email")
}

func TestWhoami_Anonymous(t *testing.T) {
	app, out, _ := newTestApp(t, nil, "", nil)

	require.NoError(t, app.Whoami(context.Background()))

	assert.Contains(t, out.String(), "Not logged in.")
}

func TestWhoami_LoggedIn(t *testing.T) {
	app, out, _ := newTestApp(t, regularUser(), "", nil)

	require.NoError(t, app.Whoami(context.Background()))

	assert.Contains(t, out.String(), "Dana <dana@example.com>")
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{name: "anonymous", user: nil, want: ""},
		{name: "regular user", user: regularUser(), want: "(Dana)"},
		{name: "admin", user: adminUser(), want: "(Root admin)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t, tt.user, "", nil)
			assert.Equal(t, tt.want, app.getStatus())
		})
	}
}
