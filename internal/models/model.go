package models

import (
	"fmt"
	"io"
	"strings"
	"time"

	"auction-client/internal/auctionerrors"
)

// User represents a participant in the auction as nested in other resources
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profile_image"`
}

// UserProfile is the authenticated viewer's own extended record
type UserProfile struct {
	User
	DateOfBirth *string `json:"date_of_birth"`
}

// Bid represents a user's bid on an item. Amount is a decimal kept as text.
type Bid struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item"`
	Bidder    User      `json:"bidder"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Question is asked by any user and answered at most once by the item owner
type Question struct {
	ID             int64      `json:"id"`
	ItemID         int64      `json:"item"`
	Author         User       `json:"author"`
	QuestionText   string     `json:"question_text"`
	Timestamp      time.Time  `json:"timestamp"`
	ReplyText      *string    `json:"reply_text"`
	ReplyTimestamp *time.Time `json:"reply_timestamp"`
}

// IsAnswered reports whether the owner has replied.
func (q Question) IsAnswered() bool {
	return q.ReplyText != nil
}

// Item represents an auction listing with its bids and questions
type Item struct {
	ID            int64      `json:"id"`
	Owner         User       `json:"owner"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartingPrice string     `json:"starting_price"`
	Image         string     `json:"image"`
	EndDate       time.Time  `json:"end_date"`
	IsActive      bool       `json:"is_active"`
	Bids          []Bid      `json:"bids"`
	Questions     []Question `json:"questions"`
	HighestBid    *string    `json:"highest_bid"`
}

// HasBids reports whether the server computed a highest bid.
func (i Item) HasBids() bool {
	return i.HighestBid != nil
}

// Clone returns a copy that shares no slices or pointers with i.
func (i Item) Clone() Item {
	out := i
	out.Owner = i.Owner.clone()
	out.HighestBid = cloneString(i.HighestBid)
	if i.Bids != nil {
		out.Bids = make([]Bid, len(i.Bids))
		for n, b := range i.Bids {
			b.Bidder = b.Bidder.clone()
			out.Bids[n] = b
		}
	}
	if i.Questions != nil {
		out.Questions = make([]Question, len(i.Questions))
		for n, q := range i.Questions {
			q.Author = q.Author.clone()
			q.ReplyText = cloneString(q.ReplyText)
			if q.ReplyTimestamp != nil {
				ts := *q.ReplyTimestamp
				q.ReplyTimestamp = &ts
			}
			out.Questions[n] = q
		}
	}
	return out
}

// Clone returns a copy that shares no pointers with p.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.User = p.User.clone()
	out.DateOfBirth = cloneString(p.DateOfBirth)
	return out
}

func (u User) clone() User {
	u.ProfileImage = cloneString(u.ProfileImage)
	return u
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// File is an upload reference: the name sent as the multipart file name and
// the content streamed into the form part.
type File struct {
	Name    string
	Content io.Reader
}

// BidCreate is the body of POST /items/{id}/bid/
type BidCreate struct {
	Amount string `json:"amount"`
}

// QuestionCreate is the body of POST /items/{id}/question/
type QuestionCreate struct {
	QuestionText string `json:"question_text"`
}

// ReplyCreate is the body of PATCH /questions/{id}/reply/
type ReplyCreate struct {
	ReplyText string `json:"reply_text"`
}

// ItemCreate is sent as multipart form data because it carries an image
type ItemCreate struct {
	Title         string
	Description   string
	StartingPrice string
	EndDate       time.Time
	Image         File
}

// Validate checks that every required form field is present. Business rules
// (price format, end date in the future) are left to the server.
func (c ItemCreate) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(c.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(c.StartingPrice) == "" {
		missing = append(missing, "starting_price")
	}
	if c.EndDate.IsZero() {
		missing = append(missing, "end_date")
	}
	if c.Image.Content == nil {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return fmt.Errorf("item create: %w: %s", auctionerrors.ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// ProfileUpdate is sent as multipart form data; optional fields are omitted
// from the form when nil.
type ProfileUpdate struct {
	Email        string
	DateOfBirth  *string
	ProfileImage *File
}

// Validate checks that the email is present.
func (u ProfileUpdate) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("profile update: %w: email", auctionerrors.ErrMissingField)
	}
	return nil
}
