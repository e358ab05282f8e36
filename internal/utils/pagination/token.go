package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// timeFormat keeps nanosecond precision so cursor comparisons in SQL match
// the stored timestamps exactly.
const timeFormat = time.RFC3339Nano

// EncodeDateBasedToken builds an opaque cursor from a single timestamp.
func EncodeDateBasedToken(date time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat)))
}

// DecodeDateBasedToken parses a cursor produced by EncodeDateBasedToken.
func DecodeDateBasedToken(token string) (time.Time, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	date, err := time.Parse(timeFormat, string(decoded))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return date, nil
}

// EncodeCompositeToken builds a cursor from a timestamp plus a tiebreaker id
// for keyset pagination over non-unique timestamps.
func EncodeCompositeToken(date time.Time, id string) string {
	raw := date.Format(timeFormat) + "|" + id
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeCompositeToken parses a cursor produced by EncodeCompositeToken.
func DecodeCompositeToken(token string) (time.Time, string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}
	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return date, parts[1], nil
}
