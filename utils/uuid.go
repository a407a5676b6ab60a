package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateToken returns a 32 character hex token, the shape of a csrftoken cookie value.
func GenerateToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
