package stubapi

import (
	"fmt"
	"strings"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
)

// Rejection is a rule violation reported back to the client. Field is set
// when the violation belongs to one request field.
type Rejection struct {
	Kind   error
	Field  string
	Detail string
}

func (r *Rejection) Error() string { return r.Detail }
func (r *Rejection) Unwrap() error { return r.Kind }

func reject(kind error, format string, args ...any) error {
	return &Rejection{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func rejectField(kind error, field, detail string) error {
	return &Rejection{Kind: kind, Field: field, Detail: detail}
}

// Upload is a file received in a multipart request
type Upload struct {
	Name string
	Data []byte
}

// NewItem is a validated create-item form
type NewItem struct {
	Title         string
	Description   string
	StartingPrice string
	EndDate       time.Time
	Image         Upload
}

// AuctionService applies the rules the real backend enforces, enough of them
// for the client to see realistic accept/reject responses.
type AuctionService struct {
	repo AuctionDB
	now  func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// RegisterUser adds a user and opens a session for it, standing in for the
// login page the client never drives.
func (s *AuctionService) RegisterUser(username, email string) (models.UserProfile, string) {
	user := s.repo.AddUser(models.UserProfile{User: models.User{Username: username, Email: email}})
	return user, s.repo.CreateSession(user.ID)
}

// SessionUser resolves a session cookie value
func (s *AuctionService) SessionUser(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	return s.repo.SessionUser(token)
}

// Profile returns the signed-in user's profile
func (s *AuctionService) Profile(userID int64) (models.UserProfile, error) {
	p, err := s.repo.GetUser(userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("service: get profile of user %d: %w", userID, err)
	}
	return p, nil
}

// UpdateProfile replaces email, date of birth and optionally the profile image
func (s *AuctionService) UpdateProfile(userID int64, email string, dateOfBirth *string, image *Upload) (models.UserProfile, error) {
	if !strings.Contains(email, "@") {
		return models.UserProfile{}, rejectField(auctionerrors.ErrInvalidPayload, "email", "Enter a valid email address.")
	}
	if dateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *dateOfBirth); err != nil {
			return models.UserProfile{}, rejectField(auctionerrors.ErrInvalidPayload, "date_of_birth", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		}
	}

	p, err := s.repo.GetUser(userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("service: update profile of user %d: %w", userID, err)
	}
	p.Email = email
	p.DateOfBirth = dateOfBirth
	if image != nil {
		path := s.repo.SaveImage("profiles", image.Name, image.Data)
		p.ProfileImage = &path
	}
	if err := s.repo.UpdateUser(p); err != nil {
		return models.UserProfile{}, fmt.Errorf("service: update profile of user %d: %w", userID, err)
	}
	return p, nil
}

// Image returns an uploaded file by the media path stored on the resource
func (s *AuctionService) Image(path string) ([]byte, bool) {
	return s.repo.Image(path)
}

// ListItems returns active items, newest first, optionally filtered by a
// case-insensitive match on title or description
func (s *AuctionService) ListItems(search string) []models.Item {
	needle := strings.ToLower(strings.TrimSpace(search))
	all := s.repo.ListItems()

	items := make([]models.Item, 0, len(all))
	for _, it := range all {
		if !it.IsActive {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(it.Title), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) {
			continue
		}
		items = append(items, it)
	}
	return items
}

// GetItem returns one item, active or not
func (s *AuctionService) GetItem(itemID int64) (models.Item, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: get item %d: %w", itemID, err)
	}
	return item, nil
}

// CreateItem stores a new listing owned by ownerID
func (s *AuctionService) CreateItem(ownerID int64, in NewItem) (models.Item, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.EndDate.IsZero() {
		missing = append(missing, "end_date")
	}
	if len(in.Image.Data) == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return models.Item{}, rejectField(auctionerrors.ErrInvalidPayload, missing[0], "This field is required.")
	}

	price, err := normalizeAmount(in.StartingPrice)
	if err != nil {
		return models.Item{}, rejectField(auctionerrors.ErrInvalidAmount, "starting_price", "A valid number is required.")
	}

	owner, err := s.repo.GetUser(ownerID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: create item for user %d: %w", ownerID, err)
	}

	item := s.repo.CreateItem(models.Item{
		Owner:         owner.User,
		Title:         in.Title,
		Description:   in.Description,
		StartingPrice: price,
		Image:         s.repo.SaveImage("items", in.Image.Name, in.Image.Data),
		EndDate:       in.EndDate.UTC(),
		IsActive:      true,
	})
	return item, nil
}

// PlaceBid validates and records a user's bid for an item
func (s *AuctionService) PlaceBid(itemID, bidderID int64, rawAmount string) (models.Bid, error) {
	amount, err := normalizeAmount(rawAmount)
	if err != nil {
		return models.Bid{}, rejectField(auctionerrors.ErrInvalidAmount, "amount", "A valid number is required.")
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on item %d: %w", itemID, err)
	}
	if err := s.validateBid(item, bidderID, amount); err != nil {
		return models.Bid{}, err
	}

	bidder, err := s.repo.GetUser(bidderID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on item %d: %w", itemID, err)
	}

	bid, err := s.repo.RecordBidForItem(models.Bid{ItemID: itemID, Bidder: bidder.User, Amount: amount})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %d by user %d: %w", itemID, bidderID, err)
	}
	return bid, nil
}

// validateBid checks the auction rules for bidding
func (s *AuctionService) validateBid(item models.Item, bidderID int64, amount string) error {
	if !item.IsActive || s.now().After(item.EndDate) {
		return reject(auctionerrors.ErrAuctionEnded, "This auction has ended.")
	}
	if item.Owner.ID == bidderID {
		return reject(auctionerrors.ErrOwnItem, "You cannot bid on your own item.")
	}
	if compareAmounts(amount, item.StartingPrice) < 0 {
		return reject(auctionerrors.ErrBidTooLow, "Bid must be at least %s", item.StartingPrice)
	}
	if item.HighestBid != nil && compareAmounts(amount, *item.HighestBid) <= 0 {
		return reject(auctionerrors.ErrBidTooLow, "Bid must be higher than current highest bid (%s)", *item.HighestBid)
	}
	return nil
}

// PostQuestion records a question on an item
func (s *AuctionService) PostQuestion(itemID, authorID int64, text string) (models.Question, error) {
	if strings.TrimSpace(text) == "" {
		return models.Question{}, rejectField(auctionerrors.ErrInvalidPayload, "question_text", "This field may not be blank.")
	}

	author, err := s.repo.GetUser(authorID)
	if err != nil {
		return models.Question{}, fmt.Errorf("service: post question on item %d: %w", itemID, err)
	}

	q, err := s.repo.AddQuestion(models.Question{ItemID: itemID, Author: author.User, QuestionText: text})
	if err != nil {
		return models.Question{}, fmt.Errorf("service: post question on item %d: %w", itemID, err)
	}
	return q, nil
}

// ReplyQuestion stores the item owner's one reply to a question
func (s *AuctionService) ReplyQuestion(questionID, userID int64, text string) (models.Question, error) {
	if strings.TrimSpace(text) == "" {
		return models.Question{}, rejectField(auctionerrors.ErrInvalidPayload, "reply_text", "This field may not be blank.")
	}

	q, err := s.repo.GetQuestion(questionID)
	if err != nil {
		return models.Question{}, fmt.Errorf("service: reply to question %d: %w", questionID, err)
	}
	item, err := s.repo.GetItem(q.ItemID)
	if err != nil {
		return models.Question{}, fmt.Errorf("service: reply to question %d: %w", questionID, err)
	}
	if item.Owner.ID != userID {
		return models.Question{}, reject(auctionerrors.ErrNotItemOwner, "You do not have permission to reply to this question.")
	}
	if q.IsAnswered() {
		return models.Question{}, reject(auctionerrors.ErrAlreadyAnswered, "This question has already been answered.")
	}

	q, err = s.repo.SetReply(questionID, text, s.now())
	if err != nil {
		return models.Question{}, fmt.Errorf("service: reply to question %d: %w", questionID, err)
	}
	return q, nil
}
