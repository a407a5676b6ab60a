package stubapi

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/utils"
)

// AuctionDB defines the storage interface of the stub backend
type AuctionDB interface {
	AddUser(user models.UserProfile) models.UserProfile
	GetUser(userID int64) (models.UserProfile, error)
	UpdateUser(profile models.UserProfile) error
	CreateItem(item models.Item) models.Item
	GetItem(itemID int64) (models.Item, error)
	ListItems() []models.Item
	RecordBidForItem(bid models.Bid) (models.Bid, error)
	AddQuestion(q models.Question) (models.Question, error)
	GetQuestion(questionID int64) (models.Question, error)
	SetReply(questionID int64, text string, at time.Time) (models.Question, error)
	SaveImage(dir, name string, data []byte) string
	Image(path string) ([]byte, bool)
	CreateSession(userID int64) string
	SessionUser(token string) (int64, bool)
}

type itemRecord struct {
	item models.Item
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu        sync.RWMutex
	nextID    int64
	users     map[int64]models.UserProfile
	items     map[int64]*itemRecord // key: itemID -> item with its bids and questions
	questions map[int64]int64       // key: questionID -> itemID
	images    map[string][]byte     // key: media path -> uploaded bytes
	sessions  map[string]int64      // key: session token -> userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:     make(map[int64]models.UserProfile),
		items:     make(map[int64]*itemRecord),
		questions: make(map[int64]int64),
		images:    make(map[string][]byte),
		sessions:  make(map[string]int64),
	}
}

// id must be called with mu held
func (r *MemoryRepo) id() int64 {
	r.nextID++
	return r.nextID
}

// AddUser stores a user, assigning an ID when it has none
func (r *MemoryRepo) AddUser(user models.UserProfile) models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.id()
	} else if user.ID > r.nextID {
		r.nextID = user.ID
	}
	r.users[user.ID] = user
	return user.Clone()
}

// GetUser returns a user's profile
func (r *MemoryRepo) GetUser(userID int64) (models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrInvalidPayload)
	}
	return u.Clone(), nil
}

// UpdateUser replaces a stored profile
func (r *MemoryRepo) UpdateUser(profile models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[profile.ID]; !ok {
		return fmt.Errorf("update user %d: %w", profile.ID, auctionerrors.ErrInvalidPayload)
	}
	r.users[profile.ID] = profile.Clone()
	return nil
}

// CreateItem stores a new listing and returns it with its ID assigned
func (r *MemoryRepo) CreateItem(item models.Item) models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.id()
	item.Bids = []models.Bid{}
	item.Questions = []models.Question{}
	r.items[item.ID] = &itemRecord{item: item}
	return r.view(r.items[item.ID])
}

// GetItem returns an item with its bids, questions and highest bid
func (r *MemoryRepo) GetItem(itemID int64) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[itemID]
	if !ok {
		return models.Item{}, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return r.view(rec), nil
}

// ListItems returns every item, newest first
func (r *MemoryRepo) ListItems() []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]*itemRecord, 0, len(r.items))
	for _, rec := range r.items {
		recs = append(recs, rec)
	}
	// IDs are handed out in creation order
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].item.ID > recs[j].item.ID
	})

	items := make([]models.Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, r.view(rec))
	}
	return items
}

// RecordBidForItem appends a bid to its item
func (r *MemoryRepo) RecordBidForItem(bid models.Bid) (models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[bid.ItemID]
	if !ok {
		return models.Bid{}, fmt.Errorf("record bid for item %d: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	bid.ID = r.id()
	bid.Timestamp = time.Now().UTC()
	rec.item.Bids = append(rec.item.Bids, bid)
	return bid, nil
}

// AddQuestion appends a question to its item
func (r *MemoryRepo) AddQuestion(q models.Question) (models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[q.ItemID]
	if !ok {
		return models.Question{}, fmt.Errorf("add question to item %d: %w", q.ItemID, auctionerrors.ErrItemNotFound)
	}

	q.ID = r.id()
	q.Timestamp = time.Now().UTC()
	rec.item.Questions = append(rec.item.Questions, q)
	r.questions[q.ID] = q.ItemID
	return q, nil
}

// GetQuestion returns one question
func (r *MemoryRepo) GetQuestion(questionID int64) (models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, _, err := r.findQuestion(questionID)
	if err != nil {
		return models.Question{}, err
	}
	return *q, nil
}

// SetReply stores the owner's reply on a question
func (r *MemoryRepo) SetReply(questionID int64, text string, at time.Time) (models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, _, err := r.findQuestion(questionID)
	if err != nil {
		return models.Question{}, err
	}
	q.ReplyText = &text
	q.ReplyTimestamp = &at
	return *q, nil
}

// findQuestion must be called with mu held
func (r *MemoryRepo) findQuestion(questionID int64) (*models.Question, *itemRecord, error) {
	itemID, ok := r.questions[questionID]
	if !ok {
		return nil, nil, fmt.Errorf("find question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
	}
	rec := r.items[itemID]
	for i := range rec.item.Questions {
		if rec.item.Questions[i].ID == questionID {
			return &rec.item.Questions[i], rec, nil
		}
	}
	return nil, nil, fmt.Errorf("find question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
}

// SaveImage keeps uploaded bytes and returns the media path they are served under
func (r *MemoryRepo) SaveImage(dir, name string, data []byte) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := fmt.Sprintf("/media/%s/%d_%s", dir, r.id(), name)
	r.images[path] = append([]byte(nil), data...)
	return path
}

// Image returns uploaded bytes by media path
func (r *MemoryRepo) Image(path string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.images[path]
	return data, ok
}

// CreateSession issues a session token for a user
func (r *MemoryRepo) CreateSession(userID int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := utils.GenerateToken()
	r.sessions[token] = userID
	return token
}

// SessionUser resolves a session token
func (r *MemoryRepo) SessionUser(token string) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.sessions[token]
	return id, ok
}

// SetItemState overrides an item's end date and active flag. This method is intended for tests only.
func (r *MemoryRepo) SetItemState(itemID int64, endDate time.Time, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("set item %d state: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	rec.item.EndDate = endDate
	rec.item.IsActive = active
	return nil
}

// view must be called with mu held
func (r *MemoryRepo) view(rec *itemRecord) models.Item {
	item := rec.item.Clone()
	item.HighestBid = nil
	for _, b := range item.Bids {
		if item.HighestBid == nil || compareAmounts(b.Amount, *item.HighestBid) > 0 {
			amount := b.Amount
			item.HighestBid = &amount
		}
	}
	return item
}
