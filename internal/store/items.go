package store

import (
	"context"
	"sync"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/utils"
)

// ItemsAPI is the part of the API surface the item store calls
type ItemsAPI interface {
	GetItems(ctx context.Context, search string) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, data models.ItemCreate) (models.Item, error)
	PlaceBid(ctx context.Context, itemID int64, data models.BidCreate) (models.Bid, error)
	PostQuestion(ctx context.Context, itemID int64, data models.QuestionCreate) (models.Question, error)
	ReplyQuestion(ctx context.Context, questionID int64, data models.ReplyCreate) (models.Question, error)
}

// ItemState is a snapshot of the item store. Subscribers share one snapshot
// per change and must treat it as read-only.
type ItemState struct {
	Items   []models.Item
	Current *models.Item
	Busy    bool
	Err     string
}

// ItemStore caches the last fetched item list and item detail. Every action
// sets Busy and clears Err on entry and clears Busy on every exit path.
// Mutations re-sync from the server instead of patching the cache locally.
//
// Actions are not serialized against each other: concurrent actions
// interleave and whichever response lands last wins.
type ItemStore struct {
	api ItemsAPI

	mu    sync.Mutex
	state ItemState

	subs listeners[ItemState]
}

// NewItemStore creates an empty item store
func NewItemStore(api ItemsAPI) *ItemStore {
	return &ItemStore{api: api}
}

// State returns a deep copy of the current state
func (s *ItemStore) State() ItemState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function unsubscribes and is safe to call more than once.
func (s *ItemStore) Subscribe(fn func(ItemState)) func() {
	return s.subs.add(fn)
}

// Close drops every subscriber
func (s *ItemStore) Close() {
	s.subs.clear()
}

// FetchItems replaces the cached list. A failure is recorded in Err and not returned.
func (s *ItemStore) FetchItems(ctx context.Context, search string) {
	s.begin()
	defer s.end()

	items, err := s.api.GetItems(ctx, search)
	if err != nil {
		s.fail("FetchItems", err, map[string]any{"search": search})
		return
	}
	s.update(func(st *ItemState) {
		st.Items = items
	})
}

// FetchItem replaces the current item. A failure is recorded in Err and not returned.
func (s *ItemStore) FetchItem(ctx context.Context, id int64) {
	s.begin()
	defer s.end()

	s.loadItem(ctx, id)
}

// CreateItem sends data and prepends the server's item to the cached list
func (s *ItemStore) CreateItem(ctx context.Context, data models.ItemCreate) (models.Item, error) {
	s.begin()
	defer s.end()

	item, err := s.api.CreateItem(ctx, data)
	if err != nil {
		s.fail("CreateItem", err, map[string]any{"title": data.Title})
		return models.Item{}, err
	}
	s.update(func(st *ItemState) {
		st.Items = append([]models.Item{item}, st.Items...)
	})
	return item.Clone(), nil
}

// PlaceBid sends the bid and then re-fetches the item exactly once, so the
// bid list and highest bid always come from the server.
func (s *ItemStore) PlaceBid(ctx context.Context, itemID int64, data models.BidCreate) error {
	s.begin()
	defer s.end()

	if _, err := s.api.PlaceBid(ctx, itemID, data); err != nil {
		s.fail("PlaceBid", err, map[string]any{"item_id": itemID, "amount": data.Amount})
		return err
	}
	s.loadItem(ctx, itemID)
	return nil
}

// PostQuestion sends the question and then re-fetches the item
func (s *ItemStore) PostQuestion(ctx context.Context, itemID int64, data models.QuestionCreate) error {
	s.begin()
	defer s.end()

	if _, err := s.api.PostQuestion(ctx, itemID, data); err != nil {
		s.fail("PostQuestion", err, map[string]any{"item_id": itemID})
		return err
	}
	s.loadItem(ctx, itemID)
	return nil
}

// ReplyQuestion sends the reply. The item is re-fetched only when the
// question's parent item is the one currently loaded. The reply response may
// carry nothing but reply_text, so the parent is looked up in Current first.
func (s *ItemStore) ReplyQuestion(ctx context.Context, questionID int64, data models.ReplyCreate) error {
	s.begin()
	defer s.end()

	s.mu.Lock()
	parentID := parentOf(s.state.Current, questionID)
	s.mu.Unlock()

	q, err := s.api.ReplyQuestion(ctx, questionID, data)
	if err != nil {
		s.fail("ReplyQuestion", err, map[string]any{"question_id": questionID})
		return err
	}
	if parentID == 0 {
		parentID = q.ItemID
	}

	s.mu.Lock()
	reload := parentID != 0 && s.state.Current != nil && s.state.Current.ID == parentID
	s.mu.Unlock()

	if reload {
		s.loadItem(ctx, parentID)
	}
	return nil
}

// parentOf returns current's ID when it holds questionID, else 0
func parentOf(current *models.Item, questionID int64) int64 {
	if current == nil {
		return 0
	}
	for _, q := range current.Questions {
		if q.ID == questionID {
			return current.ID
		}
	}
	return 0
}

// loadItem fetches one item into Current without touching Busy.
func (s *ItemStore) loadItem(ctx context.Context, id int64) {
	item, err := s.api.GetItem(ctx, id)
	if err != nil {
		s.fail("FetchItem", err, map[string]any{"item_id": id})
		return
	}
	s.update(func(st *ItemState) {
		st.Current = &item
	})
}

func (s *ItemStore) begin() {
	s.update(func(st *ItemState) {
		st.Busy = true
		st.Err = ""
	})
}

func (s *ItemStore) end() {
	s.update(func(st *ItemState) {
		st.Busy = false
	})
}

func (s *ItemStore) fail(action string, err error, fields map[string]any) {
	msg := auctionerrors.Message(err)
	s.update(func(st *ItemState) {
		st.Err = msg
	})

	fields["action"] = action
	fields["error"] = err.Error()
	utils.Warn("ItemStore: action failed", fields)
}

func (s *ItemStore) update(fn func(st *ItemState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	s.mu.Unlock()

	s.subs.publish(snap)
}

// snapshot must be called with mu held
func (s *ItemStore) snapshot() ItemState {
	out := ItemState{Busy: s.state.Busy, Err: s.state.Err}
	if s.state.Items != nil {
		out.Items = make([]models.Item, len(s.state.Items))
		for i, it := range s.state.Items {
			out.Items[i] = it.Clone()
		}
	}
	if s.state.Current != nil {
		cur := s.state.Current.Clone()
		out.Current = &cur
	}
	return out
}
