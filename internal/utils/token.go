package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateToken produces an opaque token for activation and password-reset
// links.
func GenerateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
