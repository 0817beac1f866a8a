package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUniqueCode returns prefix followed by a random uppercase hex
// segment of the given length, e.g. GenerateUniqueCode("AG-", 8).
func GenerateUniqueCode(prefix string, length int) string {
	segment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if length > len(segment) {
		length = len(segment)
	}
	return prefix + segment[:length]
}
