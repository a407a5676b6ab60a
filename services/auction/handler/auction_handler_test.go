package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-client/internal/auctionerrors"
	model "auction-client/internal/models"
	"auction-client/internal/stubapi"
	"auction-client/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 7

// newTestRouter mounts the handler behind a fake session for testUserID
func newTestRouter(h *AuctionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(helpers.UserIDKey, testUserID) })

	router.GET("/profile/", h.GetProfileHandler)
	router.PUT("/profile/", h.UpdateProfileHandler)
	router.GET("/items/", h.ListItemsHandler)
	router.POST("/items/", h.CreateItemHandler)
	router.GET("/items/:id/", h.GetItemHandler)
	router.POST("/items/:id/bid/", h.PlaceBidHandler)
	router.POST("/items/:id/question/", h.PostQuestionHandler)
	router.PATCH("/questions/:id/reply/", h.ReplyQuestionHandler)
	router.GET("/media/*path", h.MediaHandler)
	return router
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf []byte
	switch b := body.(type) {
	case string:
		buf = []byte(b)
	default:
		var err error
		buf, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	now := time.Now().UTC()

	tests := []struct {
		name           string
		path           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedBody   string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			path:        "/items/4/bid/",
			requestBody: helpers.PlaceBidRequest{Amount: "12.50"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(int64(4), testUserID, "12.50").
					Return(model.Bid{ID: 9, ItemID: 4, Bidder: model.User{ID: testUserID}, Amount: "12.50", Timestamp: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 9.0, data["id"])
				require.Equal(t, 4.0, data["item"])
				require.Equal(t, "12.50", data["amount"])
			},
		},
		{
			name:           "invalid_json",
			path:           "/items/4/bid/",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"JSON parse error - invalid request payload."}`,
		},
		{
			name:           "missing_amount",
			path:           "/items/4/bid/",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"JSON parse error - invalid request payload."}`,
		},
		{
			name:           "non_numeric_item_id",
			path:           "/items/abc/bid/",
			requestBody:    helpers.PlaceBidRequest{Amount: "1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Not found."}`,
		},
		{
			name:        "bid_too_low_is_a_message_list",
			path:        "/items/4/bid/",
			requestBody: helpers.PlaceBidRequest{Amount: "5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(int64(4), testUserID, "5").
					Return(model.Bid{}, &stubapi.Rejection{Kind: auctionerrors.ErrBidTooLow, Detail: "Bid must be at least 10.00"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `["Bid must be at least 10.00"]`,
		},
		{
			name:        "invalid_amount_is_keyed_by_field",
			path:        "/items/4/bid/",
			requestBody: helpers.PlaceBidRequest{Amount: "abc"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(int64(4), testUserID, "abc").
					Return(model.Bid{}, &stubapi.Rejection{Kind: auctionerrors.ErrInvalidAmount, Field: "amount", Detail: "A valid number is required."})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"amount":["A valid number is required."]}`,
		},
		{
			name:        "item_not_found",
			path:        "/items/99/bid/",
			requestBody: helpers.PlaceBidRequest{Amount: "5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(int64(99), testUserID, "5").
					Return(model.Bid{}, fmt.Errorf("service: place bid on item 99: %w", auctionerrors.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Not found."}`,
		},
		{
			name:        "service_generic_error",
			path:        "/items/4/bid/",
			requestBody: helpers.PlaceBidRequest{Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(int64(4), testUserID, "100").
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"A server error occurred."}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(t, http.MethodPost, tc.path, tc.requestBody))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				require.JSONEq(t, tc.expectedBody, w.Body.String())
			}
			if tc.validateData != nil {
				var data map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
				tc.validateData(t, data)
			}
		})
	}
}

// Test ReplyQuestionHandler
func TestReplyQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	reply := "Yes"
	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "owner_replies",
			mockSetup: func() {
				mockService.EXPECT().ReplyQuestion(int64(3), testUserID, "Yes").
					Return(model.Question{ID: 3, ItemID: 4, QuestionText: "Still new?", ReplyText: &reply}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"reply_text":"Yes"}`,
		},
		{
			name: "not_owner_gets_detail",
			mockSetup: func() {
				mockService.EXPECT().ReplyQuestion(int64(3), testUserID, "Yes").
					Return(model.Question{}, &stubapi.Rejection{Kind: auctionerrors.ErrNotItemOwner, Detail: "You do not have permission to reply to this question."})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"detail":"You do not have permission to reply to this question."}`,
		},
		{
			name: "question_not_found",
			mockSetup: func() {
				mockService.EXPECT().ReplyQuestion(int64(3), testUserID, "Yes").
					Return(model.Question{}, auctionerrors.ErrQuestionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Not found."}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(t, http.MethodPatch, "/questions/3/reply/", helpers.ReplyRequest{ReplyText: "Yes"}))

			require.Equal(t, tc.expectedStatus, w.Code)
			require.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

// Test ListItemsHandler
func TestListItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	gomock.InOrder(
		mockService.EXPECT().ListItems("").Return([]model.Item{}),
		mockService.EXPECT().ListItems("vintage lamp").Return([]model.Item{{ID: 1, Title: "Vintage lamp"}}),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/?search=vintage+lamp", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Vintage lamp", items[0].Title)
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for k, data := range files {
		fw, err := mw.CreateFormFile(k, k+".png")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// Test CreateItemHandler
func TestCreateItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	end := time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().CreateItem(testUserID, gomock.Any()).
			DoAndReturn(func(_ int64, in stubapi.NewItem) (model.Item, error) {
				require.Equal(t, "Lamp", in.Title)
				require.Equal(t, "Brass", in.Description)
				require.Equal(t, "10.00", in.StartingPrice)
				require.True(t, end.Equal(in.EndDate))
				require.Equal(t, "image.png", in.Image.Name)
				require.Equal(t, []byte("png-bytes"), in.Image.Data)
				return model.Item{ID: 5, Title: in.Title, StartingPrice: in.StartingPrice, Image: "/media/items/6_image.png", IsActive: true}, nil
			})

		req := multipartRequest(t, http.MethodPost, "/items/", map[string]string{
			"title":          "Lamp",
			"description":    "Brass",
			"starting_price": "10.00",
			"end_date":       end.Format(time.RFC3339),
		}, map[string][]byte{"image": []byte("png-bytes")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var item model.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		require.Equal(t, int64(5), item.ID)
	})

	t.Run("bad_end_date", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/items/", map[string]string{
			"title":    "Lamp",
			"end_date": "tomorrow",
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "end_date")
	})
}

// Test UpdateProfileHandler
func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	t.Run("email_only", func(t *testing.T) {
		mockService.EXPECT().UpdateProfile(testUserID, "bob@example.com", nil, nil).
			Return(model.UserProfile{User: model.User{ID: testUserID, Email: "bob@example.com"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartRequest(t, http.MethodPut, "/profile/", map[string]string{"email": "bob@example.com"}, nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("with_date_and_image", func(t *testing.T) {
		mockService.EXPECT().UpdateProfile(testUserID, "bob@example.com", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ int64, _ string, dob *string, image *stubapi.Upload) (model.UserProfile, error) {
				require.NotNil(t, dob)
				require.Equal(t, "1990-05-01", *dob)
				require.NotNil(t, image)
				require.Equal(t, "profile_image.png", image.Name)
				return model.UserProfile{User: model.User{ID: testUserID}}, nil
			})

		req := multipartRequest(t, http.MethodPut, "/profile/",
			map[string]string{"email": "bob@example.com", "date_of_birth": "1990-05-01"},
			map[string][]byte{"profile_image": []byte("jpeg")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid_email", func(t *testing.T) {
		mockService.EXPECT().UpdateProfile(testUserID, "nope", nil, nil).
			Return(model.UserProfile{}, &stubapi.Rejection{Kind: auctionerrors.ErrInvalidPayload, Field: "email", Detail: "Enter a valid email address."})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartRequest(t, http.MethodPut, "/profile/", map[string]string{"email": "nope"}, nil))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"email":["Enter a valid email address."]}`, w.Body.String())
	})
}

// Test MediaHandler
func TestMediaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(NewAuctionHandler(mockService))

	mockService.EXPECT().Image("/media/items/6_lamp.png").Return([]byte("png-bytes"), true)
	mockService.EXPECT().Image("/media/items/missing.png").Return(nil, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/items/6_lamp.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "png-bytes", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/items/missing.png", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
