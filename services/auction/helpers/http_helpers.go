package helpers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/stubapi"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// Messages the backend uses for its standard failures
const (
	NotFoundMessage       = "Not found."
	NotAuthenticated      = "Authentication credentials were not provided."
	CSRFFailedMessage     = "CSRF Failed: CSRF token missing or incorrect."
	ServerErrorMessage    = "A server error occurred."
	InvalidPayloadMessage = "JSON parse error - invalid request payload."
)

const maxUploadSize int64 = 10 << 20

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, InvalidPayloadMessage)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps service errors to an HTTP status and the body the
// backend would send. Rule violations on one field come back keyed by that
// field, other violations as a bare list of messages, everything else as
// {"detail": ...}.
func MapErrorToHTTP(err error) (int, any) {
	var rj *stubapi.Rejection
	switch {
	case errors.As(err, &rj) && errors.Is(err, auctionerrors.ErrNotItemOwner):
		return http.StatusForbidden, gin.H{"detail": rj.Detail}
	case errors.As(err, &rj) && rj.Field != "":
		return http.StatusBadRequest, gin.H{rj.Field: []string{rj.Detail}}
	case errors.As(err, &rj):
		return http.StatusBadRequest, []string{rj.Detail}
	case errors.Is(err, auctionerrors.ErrItemNotFound), errors.Is(err, auctionerrors.ErrQuestionNotFound):
		return http.StatusNotFound, gin.H{"detail": NotFoundMessage}
	default:
		return http.StatusInternalServerError, gin.H{"detail": ServerErrorMessage}
	}
}

// WriteError maps err, sends it and logs the failure
func WriteError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, body := MapErrorToHTTP(err)
	c.AbortWithStatusJSON(status, body)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["status"] = status
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// ReadUpload reads a multipart file field. ok is false when the field is absent.
func ReadUpload(c *gin.Context, field string) (upload stubapi.Upload, ok bool, err error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return stubapi.Upload{}, false, nil
	}
	if err != nil {
		return stubapi.Upload{}, false, err
	}
	data, err := readFileHeader(header)
	if err != nil {
		return stubapi.Upload{}, false, err
	}
	return stubapi.Upload{Name: header.Filename, Data: data}, true, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadSize))
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
