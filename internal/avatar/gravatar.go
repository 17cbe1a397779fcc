// Package avatar derives avatar URLs from user email addresses.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	defaultSize   = 200
	defaultRating = "pg"
	defaultImage  = "mm"
)

// URL returns the Gravatar URL for the given email address. The hash is
// computed over the trimmed, lowercased address per the Gravatar contract.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf(
		"https://www.gravatar.com/avatar/%s?s=%d&r=%s&d=%s",
		hex.EncodeToString(sum[:]), defaultSize, defaultRating, defaultImage,
	)
}
