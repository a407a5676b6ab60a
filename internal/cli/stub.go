package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"auction-client/internal/server"
	"auction-client/internal/stubapi"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

const stubUsage = "stub [-addr :8000] [-seed=true]   run an in-memory stand-in for the auction API"

// runStub serves the stub API until ctx is cancelled
func runStub(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stub", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", getAddr(), "listen address")
	seed := fs.Bool("seed", true, "create sample users and items")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	repo := stubapi.NewMemoryRepo()
	svc := stubapi.NewAuctionService(repo)
	if *seed {
		if err := prepopulate(svc, stdout); err != nil {
			return err
		}
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return fmt.Errorf("stub: listen: %w", err)
	}
	srv := &http.Server{
		Handler:           server.SetupRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintf(stdout, "Starting stub auction API on http://%s/api/\n", ln.Addr())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("stub: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("stub: shutdown: %w", err)
	}
	utils.Info("stub: stopped", nil)
	return nil
}

// prepopulate adds sample users and items and prints the session cookies to
// sign in with
func prepopulate(svc *stubapi.AuctionService, out io.Writer) error {
	alice, aliceSession := svc.RegisterUser("alice", "alice@example.com")
	_, bobSession := svc.RegisterUser("bob", "bob@example.com")

	items := []stubapi.NewItem{
		{Title: "Vintage brass lamp", Description: "Works, small dent on the base", StartingPrice: "25.00"},
		{Title: "Oak writing desk", Description: "Solid oak, two drawers", StartingPrice: "120.00"},
		{Title: "Film camera", Description: "35mm, vintage, new light seals", StartingPrice: "60.00"},
	}
	for i, it := range items {
		it.EndDate = time.Now().Add(time.Duration(24*(i+1)) * time.Hour)
		it.Image = stubapi.Upload{Name: fmt.Sprintf("sample_%d.png", i+1), Data: []byte("sample image")}
		if _, err := svc.CreateItem(alice.ID, it); err != nil {
			return fmt.Errorf("stub: seed item %q: %w", it.Title, err)
		}
	}

	fmt.Fprintf(out, "seeded %d items owned by alice\n", len(items))
	fmt.Fprintf(out, "AUCTION_SESSION_ID=%s   # alice (owner)\n", aliceSession)
	fmt.Fprintf(out, "AUCTION_SESSION_ID=%s   # bob (bidder)\n", bobSession)
	return nil
}

// getAddr returns the listen address from PORT or defaults to ":8000"
func getAddr() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8000"
}
