// utils/state.go
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewStateToken returns a random anti-forgery state token for the OAuth
// login handshake.
func NewStateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
