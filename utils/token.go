package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewShareToken returns an opaque token for share links. UUIDs keep it
// collision-free without a retry loop; dashes are stripped for shorter URLs.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
