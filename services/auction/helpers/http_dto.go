package helpers

// Request DTOs for the JSON endpoints. Multipart endpoints read their fields
// straight from the form.
type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type QuestionRequest struct {
	QuestionText string `json:"question_text"`
}

type ReplyRequest struct {
	ReplyText string `json:"reply_text"`
}

// UserIDKey is the gin context key the session middleware stores the caller under
const UserIDKey = "user_id"
