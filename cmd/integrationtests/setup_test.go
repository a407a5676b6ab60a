package integrationtests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"auction-client/internal/config"
	"auction-client/internal/models"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/internal/stubapi"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testEnv is a stub backend plus one client session per seeded user
type testEnv struct {
	server  *httptest.Server
	repo    *stubapi.MemoryRepo
	service *stubapi.AuctionService
	alice   models.UserProfile
	bob     models.UserProfile
	tokens  map[int64]string

	// requests counts every HTTP request the backend received
	requests atomic.Int64
}

// SetupTestServer starts the stub API over real HTTP with two seeded users.
func SetupTestServer(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := stubapi.NewMemoryRepo()
	svc := stubapi.NewAuctionService(repo)
	env := &testEnv{repo: repo, service: svc, tokens: map[int64]string{}}

	router := server.SetupRouter(svc)
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.requests.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(env.server.Close)

	var token string
	env.alice, token = svc.RegisterUser("alice", "alice@example.com")
	env.tokens[env.alice.ID] = token
	env.bob, token = svc.RegisterUser("bob", "bob@example.com")
	env.tokens[env.bob.ID] = token
	return env
}

// OpenSession signs user in and primes the anti-forgery cookie with a read,
// the way the application does on its first page load.
func (e *testEnv) OpenSession(t *testing.T, user models.UserProfile) *session.Session {
	t.Helper()
	s := e.openSession(t, e.tokens[user.ID])

	s.Items.FetchItems(context.Background(), "")
	require.Empty(t, s.Items.State().Err)
	require.NotEmpty(t, s.Transport.CSRFToken())
	return s
}

// OpenAnonymousSession returns a session with no cookies at all
func (e *testEnv) OpenAnonymousSession(t *testing.T) *session.Session {
	t.Helper()
	return e.openSession(t, "")
}

// OpenUnprimedSession signs user in without the initial read, so no
// anti-forgery cookie has been issued yet
func (e *testEnv) OpenUnprimedSession(t *testing.T, user models.UserProfile) *session.Session {
	t.Helper()
	return e.openSession(t, e.tokens[user.ID])
}

func (e *testEnv) openSession(t *testing.T, sessionID string) *session.Session {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:  e.server.URL + "/api",
		SessionID:   sessionID,
		HTTPTimeout: 5 * time.Second,
	}
	s, err := session.New(cfg, session.WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// SeedItem creates an active listing owned by owner directly in the backend
func (e *testEnv) SeedItem(t *testing.T, owner models.UserProfile, title, price string) models.Item {
	t.Helper()
	item, err := e.service.CreateItem(owner.ID, stubapi.NewItem{
		Title:         title,
		Description:   title + " description",
		StartingPrice: price,
		EndDate:       time.Now().Add(time.Hour),
		Image:         stubapi.Upload{Name: "seed.png", Data: []byte("seed")},
	})
	require.NoError(t, err)
	return item
}
