package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns prefix plus 8 uppercased hex characters, e.g. "ITN3FA91C02".
func GenerateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(hex[:8])
}

// InitialsCode builds a short provider code from the first letters of up to
// maxWords words, e.g. "Qatar Airways" -> "QA".
func InitialsCode(name string, maxWords int) string {
	var sb strings.Builder
	for i, word := range strings.Fields(name) {
		if maxWords > 0 && i >= maxWords {
			break
		}
		sb.WriteByte(word[0])
	}
	return strings.ToUpper(sb.String())
}
