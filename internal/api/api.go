package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"auction-client/internal/models"
	"auction-client/internal/transport"
)

// Doer is the transport every endpoint funnels through
type Doer interface {
	Do(ctx context.Context, req transport.Request, out any) error
}

// Client exposes one method per backend endpoint. Each method issues exactly
// one request: no retries, no caching, no pagination.
type Client struct {
	doer Doer
}

// NewClient creates an API client on top of a transport
func NewClient(doer Doer) *Client {
	return &Client{doer: doer}
}

// GetProfile handles GET /profile/
func (c *Client) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doer.Do(ctx, transport.Request{Path: "/profile/"}, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("api: get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile handles PUT /profile/ with a multipart body
func (c *Client) UpdateProfile(ctx context.Context, data models.ProfileUpdate) (models.UserProfile, error) {
	form := transport.NewForm().Field("email", data.Email)
	if data.DateOfBirth != nil && *data.DateOfBirth != "" {
		form.Field("date_of_birth", *data.DateOfBirth)
	}
	if data.ProfileImage != nil {
		form.File("profile_image", *data.ProfileImage)
	}

	var profile models.UserProfile
	req := transport.Request{Method: http.MethodPut, Path: "/profile/", Body: form}
	if err := c.doer.Do(ctx, req, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("api: update profile: %w", err)
	}
	return profile, nil
}

// GetItems handles GET /items/, appending ?search= when search is non-empty
func (c *Client) GetItems(ctx context.Context, search string) ([]models.Item, error) {
	path := "/items/"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}

	var items []models.Item
	if err := c.doer.Do(ctx, transport.Request{Path: path, Route: "/items/"}, &items); err != nil {
		return nil, fmt.Errorf("api: list items: %w", err)
	}
	return items, nil
}

// GetItem handles GET /items/{id}/
func (c *Client) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	req := transport.Request{Path: fmt.Sprintf("/items/%d/", id), Route: "/items/{id}/"}
	if err := c.doer.Do(ctx, req, &item); err != nil {
		return models.Item{}, fmt.Errorf("api: get item %d: %w", id, err)
	}
	return item, nil
}

// CreateItem handles POST /items/ with a multipart body carrying the image
func (c *Client) CreateItem(ctx context.Context, data models.ItemCreate) (models.Item, error) {
	form := transport.NewForm().
		Field("title", data.Title).
		Field("description", data.Description).
		Field("starting_price", data.StartingPrice).
		Field("end_date", data.EndDate.Format(time.RFC3339)).
		File("image", data.Image)

	var item models.Item
	req := transport.Request{Method: http.MethodPost, Path: "/items/", Body: form}
	if err := c.doer.Do(ctx, req, &item); err != nil {
		return models.Item{}, fmt.Errorf("api: create item: %w", err)
	}
	return item, nil
}

// PlaceBid handles POST /items/{id}/bid/
func (c *Client) PlaceBid(ctx context.Context, itemID int64, data models.BidCreate) (models.Bid, error) {
	var bid models.Bid
	req := transport.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/items/%d/bid/", itemID),
		Route:  "/items/{id}/bid/",
		Body:   data,
	}
	if err := c.doer.Do(ctx, req, &bid); err != nil {
		return models.Bid{}, fmt.Errorf("api: place bid on item %d: %w", itemID, err)
	}
	return bid, nil
}

// PostQuestion handles POST /items/{id}/question/
func (c *Client) PostQuestion(ctx context.Context, itemID int64, data models.QuestionCreate) (models.Question, error) {
	var q models.Question
	req := transport.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/items/%d/question/", itemID),
		Route:  "/items/{id}/question/",
		Body:   data,
	}
	if err := c.doer.Do(ctx, req, &q); err != nil {
		return models.Question{}, fmt.Errorf("api: post question on item %d: %w", itemID, err)
	}
	return q, nil
}

// ReplyQuestion handles PATCH /questions/{id}/reply/
func (c *Client) ReplyQuestion(ctx context.Context, questionID int64, data models.ReplyCreate) (models.Question, error) {
	var q models.Question
	req := transport.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/questions/%d/reply/", questionID),
		Route:  "/questions/{id}/reply/",
		Body:   data,
	}
	if err := c.doer.Do(ctx, req, &q); err != nil {
		return models.Question{}, fmt.Errorf("api: reply to question %d: %w", questionID, err)
	}
	return q, nil
}
