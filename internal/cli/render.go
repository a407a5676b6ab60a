package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"auction-client/internal/models"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04"

var (
	headerColor  = color.New(color.FgHiMagenta, color.Bold)
	openColor    = color.New(color.FgHiGreen)
	endedColor   = color.New(color.FgHiRed)
	mutedColor   = color.New(color.FgHiBlack)
	successColor = color.New(color.FgHiGreen, color.Bold)
	warnColor    = color.New(color.FgHiYellow)
)

func status(item models.Item, now time.Time) string {
	if item.IsActive && now.Before(item.EndDate) {
		return openColor.Sprint("open")
	}
	return endedColor.Sprint("ended")
}

func highest(item models.Item) string {
	if !item.HasBids() {
		return mutedColor.Sprint("no bids")
	}
	return *item.HighestBid
}

// appendRows writes a header row followed by rows and renders the table
func appendRows(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	styled := make([]string, len(header))
	for i, h := range header {
		styled[i] = headerColor.Sprint(h)
	}
	if err := table.Append(styled); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func renderItems(w io.Writer, items []models.Item) error {
	if len(items) == 0 {
		mutedColor.Fprintln(w, "no items")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Title,
			it.StartingPrice,
			highest(it),
			it.EndDate.Local().Format(timeLayout),
			status(it, now),
		})
	}
	return appendRows(w, []string{"ID", "Title", "Starting", "Highest", "Ends", "Status"}, rows)
}

func renderItem(w io.Writer, item models.Item) error {
	headerColor.Fprintf(w, "#%d %s\n", item.ID, item.Title)
	rows := [][]string{
		{"Owner", item.Owner.Username},
		{"Description", item.Description},
		{"Starting price", item.StartingPrice},
		{"Highest bid", highest(item)},
		{"Ends", item.EndDate.Local().Format(timeLayout)},
		{"Status", status(item, time.Now())},
		{"Image", item.Image},
	}
	if err := appendRows(w, []string{"Field", "Value"}, rows); err != nil {
		return err
	}

	if len(item.Bids) > 0 {
		bids := make([][]string, 0, len(item.Bids))
		for _, b := range item.Bids {
			bids = append(bids, []string{b.Amount, b.Bidder.Username, b.Timestamp.Local().Format(timeLayout)})
		}
		if err := appendRows(w, []string{"Amount", "Bidder", "At"}, bids); err != nil {
			return err
		}
	}
	return renderQuestions(w, item.Questions)
}

func renderQuestions(w io.Writer, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		reply := mutedColor.Sprint("unanswered")
		if q.IsAnswered() {
			reply = *q.ReplyText
		}
		rows = append(rows, []string{strconv.FormatInt(q.ID, 10), q.Author.Username, q.QuestionText, reply})
	}
	return appendRows(w, []string{"Q#", "From", "Question", "Reply"}, rows)
}

func renderProfile(w io.Writer, p models.UserProfile) error {
	dob := mutedColor.Sprint("not set")
	if p.DateOfBirth != nil {
		dob = *p.DateOfBirth
	}
	image := mutedColor.Sprint("none")
	if p.ProfileImage != nil {
		image = *p.ProfileImage
	}
	return appendRows(w, []string{"Field", "Value"}, [][]string{
		{"Username", p.Username},
		{"Email", p.Email},
		{"Date of birth", dob},
		{"Profile image", image},
	})
}

// summarize is the one-line view watch prints on change
func summarize(item models.Item) string {
	answered := 0
	for _, q := range item.Questions {
		if q.IsAnswered() {
			answered++
		}
	}
	top := "none"
	if item.HasBids() {
		top = *item.HighestBid
	}
	return fmt.Sprintf("#%d highest=%s bids=%d questions=%d answered=%d", item.ID, top, len(item.Bids), len(item.Questions), answered)
}

func printSuccess(w io.Writer, msg string) {
	successColor.Fprintln(w, msg)
}

func warnf(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, format+"\n", args...)
}
