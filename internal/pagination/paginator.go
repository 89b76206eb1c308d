package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPaginationToken is returned when a pagination token cannot be decoded.
	ErrInvalidPaginationToken = errors.New("token is invalid")
)

const (
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
	maxPaginationLimit     = 100

	tokenPrefix = "after"
)

// Paginator is a cursor pointing just past the last product of the previous page.
type Paginator struct {
	LastID int64
}

// Encode encodes the paginator state into a URL-safe base64 token.
func (t Paginator) Encode() string {
	key := fmt.Sprintf("%s,%d", tokenPrefix, t.LastID)
	return base64.URLEncoding.EncodeToString([]byte(key))
}

// DecodePageToken decodes a base64-encoded pagination token into a Paginator.
func DecodePageToken(encodedToken string) (*Paginator, error) {
	bytes, err := base64.URLEncoding.DecodeString(encodedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 token: %w", err)
	}
	tokenParts := strings.Split(string(bytes), ",")
	expectedTokenParts := 2
	if len(tokenParts) != expectedTokenParts || tokenParts[0] != tokenPrefix {
		return nil, fmt.Errorf("invalid token format: %w", ErrInvalidPaginationToken)
	}

	id, err := strconv.ParseInt(tokenParts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ID: %w", err)
	}

	return &Paginator{LastID: id}, nil
}
