// Package cli implements auctionctl, a command front end over the item and
// user stores.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/config"
	"auction-client/internal/metrics"
	"auction-client/internal/session"
	"auction-client/utils"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type command struct {
	usage string
	run   func(ctx context.Context, app *app, args []string) error
}

var commands = map[string]command{
	"list":           {"list [search]", runList},
	"show":           {"show <item-id>", runShow},
	"bid":            {"bid <item-id> <amount>", runBid},
	"ask":            {"ask <item-id> <question>", runAsk},
	"reply":          {"reply <question-id> <reply>", runReply},
	"profile":        {"profile", runProfile},
	"update-profile": {"update-profile -email addr [-dob YYYY-MM-DD] [-image path]", runUpdateProfile},
	"create":         {"create -title t -description d -price p -ends 72h|RFC3339 -image path", runCreate},
	"overview":       {"overview [search]", runOverview},
	"watch":          {"watch [-interval 5s] [-count n] <item-id>", runWatch},
}

// errUsage marks bad arguments; Run prints usage and exits with ExitUsage
var errUsage = errors.New("usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// app is what every command runs against
type app struct {
	cfg     *config.Config
	session *session.Session
	out     io.Writer
	errOut  io.Writer
}

// Run executes one auctionctl invocation and returns its exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("auctionctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional .env file")
	apiURL := fs.String("api", "", "API base URL (overrides AUCTION_API_BASE_URL)")
	logLevel := fs.String("log-level", "", "log level (overrides AUCTION_LOG_LEVEL)")
	timeout := fs.Duration("timeout", 0, "HTTP timeout (overrides AUCTION_HTTP_TIMEOUT)")
	sessionID := fs.String("session", "", "session cookie value (overrides AUCTION_SESSION_ID)")
	csrfToken := fs.String("csrf", "", "CSRF cookie value (overrides AUCTION_CSRF_TOKEN)")
	metricsAddr := fs.String("metrics-addr", "", "serve /metrics on this address while running")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if *noColor {
		color.NoColor = true
	}
	if fs.NArg() == 0 {
		printUsage(fs)
		return ExitUsage
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "stub" {
		return exitCode(stderr, runStub(ctx, rest, stdout, stderr))
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		printUsage(fs)
		return ExitUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api":
			cfg.APIBaseURL = *apiURL
		case "log-level":
			cfg.LogLevel = *logLevel
		case "timeout":
			cfg.HTTPTimeout = *timeout
		case "session":
			cfg.SessionID = *sessionID
		case "csrf":
			cfg.CSRFToken = *csrfToken
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "invalid log level %q: %v\n", cfg.LogLevel, err)
		return ExitUsage
	}

	reg := prometheus.NewRegistry()
	s, err := session.New(cfg, session.WithRegisterer(reg))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	defer s.Close()

	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, reg)
		defer stop()
	}

	a := &app{cfg: cfg, session: s, out: stdout, errOut: stderr}
	err = cmd.run(ctx, a, rest)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%v\nusage: auctionctl %s\n", err, cmd.usage)
		return ExitUsage
	}
	return exitCode(stderr, err)
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	color.New(color.FgHiRed).Fprintln(stderr, "error: "+auctionerrors.Message(err))
	return ExitFailure
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: auctionctl [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands)+1)
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintf(w, "  %s\n", stubUsage)
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}

func serveMetrics(addr string, reg *prometheus.Registry) (stop func()) {
	srv := metrics.NewServer(addr, reg)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("metrics server stopped", map[string]any{"addr": addr, "error": err.Error()})
		}
	}()
	utils.Info("metrics server listening", map[string]any{"addr": addr})

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// joinArgs rejoins free text split by the shell
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
