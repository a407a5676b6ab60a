package handler

import (
	"net/http"
	"strconv"
	"time"

	model "auction-client/internal/models"
	"auction-client/internal/stubapi"
	"auction-client/services/auction/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Profile(userID int64) (model.UserProfile, error)
	UpdateProfile(userID int64, email string, dateOfBirth *string, image *stubapi.Upload) (model.UserProfile, error)
	ListItems(search string) []model.Item
	GetItem(itemID int64) (model.Item, error)
	CreateItem(ownerID int64, in stubapi.NewItem) (model.Item, error)
	PlaceBid(itemID, bidderID int64, amount string) (model.Bid, error)
	PostQuestion(itemID, authorID int64, text string) (model.Question, error)
	ReplyQuestion(questionID, userID int64, text string) (model.Question, error)
	Image(path string) ([]byte, bool)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// GetProfileHandler handles GET /profile/
func (h *AuctionHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetInt64(helpers.UserIDKey)
	profile, err := h.service.Profile(userID)
	if err != nil {
		helpers.WriteError(c, "GetProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /profile/ (multipart)
func (h *AuctionHandler) UpdateProfileHandler(c *gin.Context) {
	userID := c.GetInt64(helpers.UserIDKey)

	var dateOfBirth *string
	if dob, ok := c.GetPostForm("date_of_birth"); ok && dob != "" {
		dateOfBirth = &dob
	}

	var image *stubapi.Upload
	upload, ok, err := helpers.ReadUpload(c, "profile_image")
	if err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}
	if ok {
		image = &upload
	}

	profile, err := h.service.UpdateProfile(userID, c.PostForm("email"), dateOfBirth, image)
	if err != nil {
		helpers.WriteError(c, "UpdateProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile)
	helpers.LogSuccess("UpdateProfileHandler", "profile updated", map[string]any{
		"user_id":   userID,
		"new_image": image != nil,
	})
}

// ListItemsHandler handles GET /items/?search=
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items := h.service.ListItems(c.Query("search"))
	utils.JSONResponse(c, http.StatusOK, items)
}

// GetItemHandler handles GET /items/:id/
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		helpers.WriteError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item)
}

// CreateItemHandler handles POST /items/ (multipart)
func (h *AuctionHandler) CreateItemHandler(c *gin.Context) {
	userID := c.GetInt64(helpers.UserIDKey)

	in := stubapi.NewItem{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		StartingPrice: c.PostForm("starting_price"),
	}
	if raw := c.PostForm("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"end_date": []string{"Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."},
			})
			return
		}
		in.EndDate = end
	}

	upload, _, err := helpers.ReadUpload(c, "image")
	if err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}
	in.Image = upload

	item, err := h.service.CreateItem(userID, in)
	if err != nil {
		helpers.WriteError(c, "CreateItemHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item)
	helpers.LogSuccess("CreateItemHandler", "item created", map[string]any{
		"item_id":  item.ID,
		"owner_id": userID,
		"image":    item.Image,
	})
}

// PlaceBidHandler handles POST /items/:id/bid/
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := c.GetInt64(helpers.UserIDKey)
	bid, err := h.service.PlaceBid(itemID, userID, req.Amount)
	if err != nil {
		helpers.WriteError(c, "PlaceBidHandler", err, map[string]any{
			"item_id": itemID,
			"user_id": userID,
			"amount":  req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid)
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.ID,
		"item_id": itemID,
		"user_id": userID,
		"amount":  bid.Amount,
	})
}

// PostQuestionHandler handles POST /items/:id/question/
func (h *AuctionHandler) PostQuestionHandler(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req helpers.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostQuestionHandler", err)
		return
	}

	userID := c.GetInt64(helpers.UserIDKey)
	q, err := h.service.PostQuestion(itemID, userID, req.QuestionText)
	if err != nil {
		helpers.WriteError(c, "PostQuestionHandler", err, map[string]any{"item_id": itemID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, q)
}

// ReplyQuestionHandler handles PATCH /questions/:id/reply/
func (h *AuctionHandler) ReplyQuestionHandler(c *gin.Context) {
	questionID, ok := pathID(c)
	if !ok {
		return
	}

	var req helpers.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReplyQuestionHandler", err)
		return
	}

	userID := c.GetInt64(helpers.UserIDKey)
	q, err := h.service.ReplyQuestion(questionID, userID, req.ReplyText)
	if err != nil {
		helpers.WriteError(c, "ReplyQuestionHandler", err, map[string]any{"question_id": questionID, "user_id": userID})
		return
	}

	// the backend's reply serializer only carries reply_text
	utils.JSONResponse(c, http.StatusOK, gin.H{"reply_text": q.ReplyText})
	helpers.LogSuccess("ReplyQuestionHandler", "question answered", map[string]any{
		"question_id": questionID,
		"item_id":     q.ItemID,
	})
}

// MediaHandler handles GET /media/*path
func (h *AuctionHandler) MediaHandler(c *gin.Context) {
	path := "/media" + c.Param("path")
	data, ok := h.service.Image(path)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, helpers.NotFoundMessage)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

// pathID parses the :id segment; a non-numeric id does not match any route
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusNotFound, helpers.NotFoundMessage)
		return 0, false
	}
	return id, true
}
