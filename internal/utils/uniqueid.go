package utils

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity ID prefixes. Every stored id starts with the prefix of its kind.
const (
	PrefixWorkspace  = "w"
	PrefixBoard      = "b"
	PrefixList       = "l"
	PrefixCard       = "c"
	PrefixMember     = "m"
	PrefixComment    = "k"
	PrefixLabel      = "g"
	PrefixAttachment = "f"
	PrefixActivity   = "a"
)

// UniqueIDService provides ID generation functionality.
type UniqueIDService struct{}

// NewUniqueIDService creates a new UniqueIDService.
func NewUniqueIDService() *UniqueIDService {
	return &UniqueIDService{}
}

// GenerateID creates an ID with the following pattern:
//   - First character is the provided prefix (e.g. 'b' for board)
//   - Followed by 2 random digits [0-9]
//   - Followed by 9 random alphanumeric [0-9a-z]
//
// Example output with prefix 'b': B12ABC345XY
func (s *UniqueIDService) GenerateID(prefix string) (string, error) {
	digits := "0123456789"
	alnum := "0123456789abcdefghijklmnopqrstuvwxyz"

	twoDigits, err := gonanoid.Generate(digits, 2)
	if err != nil {
		return "", fmt.Errorf("failed to generate two digits: %w", err)
	}

	nineAlnum, err := gonanoid.Generate(alnum, 9)
	if err != nil {
		return "", fmt.Errorf("failed to generate alphanumeric part: %w", err)
	}

	return strings.ToUpper(prefix + twoDigits + nineAlnum), nil
}

// GenerateRandomColor creates a random 6-digit hex color code.
// Example output: "A1B2C3"
func (s *UniqueIDService) GenerateRandomColor() (string, error) {
	hexDigits := "0123456789abcdef"

	color, err := gonanoid.Generate(hexDigits, 6)
	if err != nil {
		return "", fmt.Errorf("failed to generate random color: %w", err)
	}

	return strings.ToUpper(color), nil
}
