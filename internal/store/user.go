package store

import (
	"context"
	"sync"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/utils"
)

// ProfileAPI is the part of the API surface the user store calls
type ProfileAPI interface {
	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, data models.ProfileUpdate) (models.UserProfile, error)
}

// UserState is a snapshot of the user store
type UserState struct {
	Profile *models.UserProfile
	Busy    bool
	Err     string
}

// UserStore caches the signed-in viewer's profile
type UserStore struct {
	api ProfileAPI

	mu    sync.Mutex
	state UserState

	subs listeners[UserState]
}

// NewUserStore creates a store with no profile loaded
func NewUserStore(api ProfileAPI) *UserStore {
	return &UserStore{api: api}
}

// State returns a deep copy of the current state
func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to receive a snapshot after every state change.
func (s *UserStore) Subscribe(fn func(UserState)) func() {
	return s.subs.add(fn)
}

// Close drops every subscriber
func (s *UserStore) Close() {
	s.subs.clear()
}

// FetchProfile replaces the cached profile. On failure the stale profile is
// kept, Err is set and nothing is returned.
func (s *UserStore) FetchProfile(ctx context.Context) {
	s.begin()
	defer s.end()

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		s.fail("FetchProfile", err)
		return
	}
	s.update(func(st *UserState) {
		st.Profile = &profile
	})
}

// UpdateProfile sends data and caches the canonical profile the server returns
func (s *UserStore) UpdateProfile(ctx context.Context, data models.ProfileUpdate) error {
	s.begin()
	defer s.end()

	profile, err := s.api.UpdateProfile(ctx, data)
	if err != nil {
		s.fail("UpdateProfile", err)
		return err
	}
	s.update(func(st *UserState) {
		st.Profile = &profile
	})
	return nil
}

// Logout forgets the cached profile. It makes no request; ending the server
// session is up to the caller.
func (s *UserStore) Logout() {
	s.update(func(st *UserState) {
		st.Profile = nil
	})
	utils.Info("UserStore: profile cleared", nil)
}

func (s *UserStore) begin() {
	s.update(func(st *UserState) {
		st.Busy = true
		st.Err = ""
	})
}

func (s *UserStore) end() {
	s.update(func(st *UserState) {
		st.Busy = false
	})
}

func (s *UserStore) fail(action string, err error) {
	msg := auctionerrors.Message(err)
	s.update(func(st *UserState) {
		st.Err = msg
	})
	utils.Warn("UserStore: action failed", map[string]any{
		"action": action,
		"error":  err.Error(),
	})
}

func (s *UserStore) update(fn func(st *UserState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	s.mu.Unlock()

	s.subs.publish(snap)
}

// snapshot must be called with mu held
func (s *UserStore) snapshot() UserState {
	out := UserState{Busy: s.state.Busy, Err: s.state.Err}
	if s.state.Profile != nil {
		p := s.state.Profile.Clone()
		out.Profile = &p
	}
	return out
}
