package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"auction-client/internal/models"
	"auction-client/internal/store"

	"golang.org/x/sync/errgroup"
)

// stateError turns the error a read action recorded into a return value
func stateError(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

// ensureCSRF runs a read first when no anti-forgery cookie is held yet, the
// same page load that precedes every form in the browser.
func (a *app) ensureCSRF(ctx context.Context, load func(context.Context)) {
	if a.session.Transport.CSRFToken() == "" {
		load(ctx)
	}
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("invalid %s %q", what, raw)
	}
	return id, nil
}

func runList(ctx context.Context, a *app, args []string) error {
	a.session.Items.FetchItems(ctx, joinArgs(args))
	st := a.session.Items.State()
	if err := stateError(st.Err); err != nil {
		return err
	}
	return renderItems(a.out, st.Items)
}

func runShow(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return usageError("show takes exactly one item id")
	}
	id, err := parseID(args[0], "item id")
	if err != nil {
		return err
	}

	a.session.Items.FetchItem(ctx, id)
	st := a.session.Items.State()
	if err := stateError(st.Err); err != nil {
		return err
	}
	return renderItem(a.out, *st.Current)
}

func runBid(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return usageError("bid takes an item id and an amount")
	}
	id, err := parseID(args[0], "item id")
	if err != nil {
		return err
	}

	a.ensureCSRF(ctx, func(ctx context.Context) { a.session.Items.FetchItem(ctx, id) })
	if err := a.session.Items.PlaceBid(ctx, id, models.BidCreate{Amount: args[1]}); err != nil {
		return err
	}
	st := a.session.Items.State()
	if st.Err != "" || st.Current == nil {
		// the bid went through but the re-fetch did not; Current may be stale
		fmt.Fprintf(a.out, "bid placed; item reload failed: %s\n", st.Err)
		return nil
	}
	printSuccess(a.out, "bid placed")
	return renderItem(a.out, *st.Current)
}

func runAsk(ctx context.Context, a *app, args []string) error {
	if len(args) < 2 {
		return usageError("ask takes an item id and the question text")
	}
	id, err := parseID(args[0], "item id")
	if err != nil {
		return err
	}

	a.ensureCSRF(ctx, func(ctx context.Context) { a.session.Items.FetchItem(ctx, id) })
	if err := a.session.Items.PostQuestion(ctx, id, models.QuestionCreate{QuestionText: joinArgs(args[1:])}); err != nil {
		return err
	}
	printSuccess(a.out, "question posted")
	if st := a.session.Items.State(); st.Current != nil {
		return renderQuestions(a.out, st.Current.Questions)
	}
	return nil
}

func runReply(ctx context.Context, a *app, args []string) error {
	if len(args) < 2 {
		return usageError("reply takes a question id and the reply text")
	}
	id, err := parseID(args[0], "question id")
	if err != nil {
		return err
	}

	a.ensureCSRF(ctx, func(ctx context.Context) { a.session.Items.FetchItems(ctx, "") })
	if err := a.session.Items.ReplyQuestion(ctx, id, models.ReplyCreate{ReplyText: joinArgs(args[1:])}); err != nil {
		return err
	}
	printSuccess(a.out, "reply posted")
	return nil
}

func runProfile(ctx context.Context, a *app, _ []string) error {
	a.session.User.FetchProfile(ctx)
	st := a.session.User.State()
	if err := stateError(st.Err); err != nil {
		return err
	}
	return renderProfile(a.out, *st.Profile)
}

func runUpdateProfile(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "email address (required)")
	dob := fs.String("dob", "", "date of birth, YYYY-MM-DD")
	image := fs.String("image", "", "path of a new profile image")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	data := models.ProfileUpdate{Email: *email}
	if *dob != "" {
		data.DateOfBirth = dob
	}
	if err := data.Validate(); err != nil {
		return usageError("%v", err)
	}
	if *image != "" {
		f, err := openUpload(*image)
		if err != nil {
			return err
		}
		defer f.Close()
		data.ProfileImage = &models.File{Name: filepath.Base(*image), Content: f}
	}

	a.ensureCSRF(ctx, a.session.User.FetchProfile)
	if err := a.session.User.UpdateProfile(ctx, data); err != nil {
		return err
	}
	printSuccess(a.out, "profile updated")
	return renderProfile(a.out, *a.session.User.State().Profile)
}

func runCreate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "item title")
	description := fs.String("description", "", "item description")
	price := fs.String("price", "", "starting price, e.g. 12.50")
	ends := fs.String("ends", "", "end of the auction: a duration from now (72h) or an RFC 3339 time")
	image := fs.String("image", "", "path of the item image")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	endDate, err := parseEnds(*ends, time.Now())
	if err != nil {
		return err
	}

	data := models.ItemCreate{
		Title:         *title,
		Description:   *description,
		StartingPrice: *price,
		EndDate:       endDate,
	}
	var f *os.File
	if *image != "" {
		if f, err = openUpload(*image); err != nil {
			return err
		}
		defer f.Close()
		data.Image = models.File{Name: filepath.Base(*image), Content: f}
	}
	if err := data.Validate(); err != nil {
		return usageError("%v", err)
	}

	a.ensureCSRF(ctx, func(ctx context.Context) { a.session.Items.FetchItems(ctx, "") })
	item, err := a.session.Items.CreateItem(ctx, data)
	if err != nil {
		return err
	}
	printSuccess(a.out, fmt.Sprintf("item %d created", item.ID))
	return renderItem(a.out, item)
}

// parseEnds accepts a duration from now or an absolute RFC 3339 time.
// An empty value stays zero so Validate reports it.
func parseEnds(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return time.Time{}, usageError("-ends must be in the future")
		}
		return now.Add(d).Truncate(time.Second), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, usageError("-ends %q is neither a duration nor an RFC 3339 time", raw)
	}
	return t, nil
}

func openUpload(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return f, nil
}

// runOverview loads the profile and the listing concurrently; the two
// stores are independent, so nothing is shared between the goroutines.
func runOverview(ctx context.Context, a *app, args []string) error {
	search := joinArgs(args)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.session.User.FetchProfile(gctx)
		return nil
	})
	g.Go(func() error {
		a.session.Items.FetchItems(gctx, search)
		return stateError(a.session.Items.State().Err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if user := a.session.User.State(); user.Profile != nil {
		fmt.Fprintf(a.out, "signed in as %s\n", user.Profile.Username)
	} else {
		fmt.Fprintf(a.out, "not signed in (%s)\n", user.Err)
	}
	return renderItems(a.out, a.session.Items.State().Items)
}

// runWatch polls one item and prints every change of its highest bid,
// bid count or question count until count polls are done or ctx ends.
func runWatch(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	interval := fs.Duration("interval", 5*time.Second, "poll interval")
	count := fs.Int("count", 0, "stop after this many polls (0 = until interrupted)")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	if fs.NArg() != 1 {
		return usageError("watch takes exactly one item id")
	}
	if *interval <= 0 {
		return usageError("-interval must be positive")
	}
	id, err := parseID(fs.Arg(0), "item id")
	if err != nil {
		return err
	}

	var last string
	unsubscribe := a.session.Items.Subscribe(func(st store.ItemState) {
		if st.Busy || st.Current == nil || st.Current.ID != id {
			return
		}
		line := summarize(*st.Current)
		if line != last {
			last = line
			fmt.Fprintf(a.out, "%s %s\n", time.Now().Format("15:04:05"), line)
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for polls := 1; ; polls++ {
		a.session.Items.FetchItem(ctx, id)
		if msg := a.session.Items.State().Err; msg != "" {
			warnf(a.errOut, "poll failed: %s", msg)
		}
		if *count > 0 && polls >= *count {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
