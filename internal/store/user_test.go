package store

import (
	"context"
	"net/http"
	"testing"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sampleProfile(email string) models.UserProfile {
	return models.UserProfile{
		User:        models.User{ID: 3, Username: "bob", Email: email},
		DateOfBirth: strPtr("1991-02-03"),
	}
}

// Tests FetchProfile
func TestUserStore_FetchProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := NewMockProfileAPI(ctrl)
	s := NewUserStore(mockAPI)

	mockAPI.EXPECT().GetProfile(gomock.Any()).Return(sampleProfile("bob@example.com"), nil)
	s.FetchProfile(context.Background())

	st := s.State()
	require.NotNil(t, st.Profile)
	require.Equal(t, "bob@example.com", st.Profile.Email)
	require.Empty(t, st.Err)
	require.False(t, st.Busy)

	// a failed refresh keeps the stale profile and records the error, no retry
	mockAPI.EXPECT().GetProfile(gomock.Any()).
		Return(models.UserProfile{}, auctionerrors.NewStatusError(http.StatusForbidden, "Authentication credentials were not provided.")).
		Times(1)
	s.FetchProfile(context.Background())

	st = s.State()
	require.Equal(t, "bob@example.com", st.Profile.Email)
	require.Equal(t, "Authentication credentials were not provided.", st.Err)
	require.False(t, st.Busy)
}

// Tests UpdateProfile
func TestUserStore_UpdateProfile(t *testing.T) {
	tests := []struct {
		name        string
		apiProfile  models.UserProfile
		apiErr      error
		expectErr   bool
		expectEmail string
		expectMsg   string
	}{
		{
			name:        "replaces_with_server_profile",
			apiProfile:  sampleProfile("canonical@example.com"),
			expectEmail: "canonical@example.com",
		},
		{
			name:        "failure_returns_and_keeps_cache",
			apiErr:      auctionerrors.NewStatusError(http.StatusBadRequest, "Enter a valid email address."),
			expectErr:   true,
			expectEmail: "bob@example.com",
			expectMsg:   "Enter a valid email address.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAPI := NewMockProfileAPI(ctrl)
			s := NewUserStore(mockAPI)
			seed := sampleProfile("bob@example.com")
			s.state.Profile = &seed

			update := models.ProfileUpdate{Email: "Canonical@Example.com"}
			mockAPI.EXPECT().UpdateProfile(gomock.Any(), update).Return(tc.apiProfile, tc.apiErr)

			err := s.UpdateProfile(context.Background(), update)
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			st := s.State()
			require.Equal(t, tc.expectEmail, st.Profile.Email)
			require.Equal(t, tc.expectMsg, st.Err)
			require.False(t, st.Busy)
		})
	}
}

// Tests Logout
func TestUserStore_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any API call fails the test
	mockAPI := NewMockProfileAPI(ctrl)
	s := NewUserStore(mockAPI)
	seed := sampleProfile("bob@example.com")
	s.state.Profile = &seed

	var notified []UserState
	s.Subscribe(func(st UserState) { notified = append(notified, st) })

	s.Logout()

	require.Nil(t, s.State().Profile)
	require.Len(t, notified, 1)
	require.Nil(t, notified[0].Profile)
}

func TestUserStore_StateIsACopy(t *testing.T) {
	s := NewUserStore(nil)
	seed := sampleProfile("bob@example.com")
	s.state.Profile = &seed

	st := s.State()
	st.Profile.Email = "changed"
	*st.Profile.DateOfBirth = "2000-01-01"

	require.Equal(t, "bob@example.com", s.State().Profile.Email)
	require.Equal(t, "1991-02-03", *s.State().Profile.DateOfBirth)
}
