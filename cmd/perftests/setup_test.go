package perftests

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"auction-client/internal/config"
	"auction-client/internal/models"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/internal/stubapi"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// benchEnv is a stub backend over real HTTP with pre-registered users
type benchEnv struct {
	server  *httptest.Server
	service *stubapi.AuctionService
	owner   models.UserProfile
	users   []models.UserProfile
	tokens  []string
}

func newBenchEnv(tb testing.TB, numUsers int) *benchEnv {
	tb.Helper()
	gin.SetMode(gin.ReleaseMode)
	// per-request logs would dominate the measurements
	if err := utils.SetLevel(logrus.ErrorLevel.String()); err != nil {
		tb.Fatalf("set log level: %v", err)
	}

	svc := stubapi.NewAuctionService(stubapi.NewMemoryRepo())
	srv := httptest.NewServer(server.SetupRouter(svc))
	tb.Cleanup(srv.Close)

	env := &benchEnv{server: srv, service: svc}
	env.owner, _ = svc.RegisterUser("owner", "owner@example.com")
	for i := 0; i < numUsers; i++ {
		u, token := svc.RegisterUser(fmt.Sprintf("user_%d", i), fmt.Sprintf("user_%d@example.com", i))
		env.users = append(env.users, u)
		env.tokens = append(env.tokens, token)
	}
	return env
}

func (e *benchEnv) seedItems(tb testing.TB, n int, price string) []models.Item {
	tb.Helper()
	items := make([]models.Item, 0, n)
	for i := 0; i < n; i++ {
		item, err := e.service.CreateItem(e.owner.ID, stubapi.NewItem{
			Title:         fmt.Sprintf("title_%d", i),
			Description:   "Load test item",
			StartingPrice: price,
			EndDate:       time.Now().Add(time.Hour),
			Image:         stubapi.Upload{Name: "item.png", Data: []byte("png")},
		})
		if err != nil {
			tb.Fatalf("seed item: %v", err)
		}
		items = append(items, item)
	}
	return items
}

// openSession signs in user i and primes the anti-forgery cookie
func (e *benchEnv) openSession(tb testing.TB, i int) *session.Session {
	tb.Helper()
	s, err := session.New(&config.Config{
		APIBaseURL:  e.server.URL + "/api",
		SessionID:   e.tokens[i],
		HTTPTimeout: 10 * time.Second,
	})
	if err != nil {
		tb.Fatalf("open session: %v", err)
	}
	tb.Cleanup(s.Close)

	s.Items.FetchItems(context.Background(), "")
	if msg := s.Items.State().Err; msg != "" {
		tb.Fatalf("prime session: %s", msg)
	}
	return s
}
