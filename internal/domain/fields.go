package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fields holds the top-level members of a JSON request body without decoding
// their values, so handlers can tell an absent field from a zero value.
type Fields map[string]json.RawMessage

// Has reports whether key is present with a non-null value.
func (f Fields) Has(key string) bool {
	raw, ok := f[key]
	if !ok {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// VoteIncrement extracts the signed vote delta stored under key.
// It returns nil when the field is absent. JSON integers and strings holding a
// base-10 integer are accepted; anything else yields ErrInvalidVote.
func (f Fields) VoteIncrement(key string) (*int, error) {
	if !f.Has(key) {
		return nil, nil
	}
	raw := f[key]

	var n int32
	if err := json.Unmarshal(raw, &n); err == nil {
		inc := int(n)
		return &inc, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrInvalidVote
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return nil, ErrInvalidVote
	}
	inc := int(parsed)
	return &inc, nil
}

// Text extracts the string stored under key. The boolean result is false when
// the field is absent. A present value that is not a JSON string yields
// ErrIncompleteBody.
func (f Fields) Text(key string) (string, bool, error) {
	if !f.Has(key) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return "", true, ErrIncompleteBody
	}
	return s, true, nil
}

// Username extracts the username stored under key.
// Absent or empty usernames yield ErrIncompleteBody; numbers, numeric strings and
// other non-string values yield ErrInvalidUsername.
func (f Fields) Username(key string) (string, error) {
	if !f.Has(key) {
		return "", ErrIncompleteBody
	}
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return "", ErrInvalidUsername
	}
	if strings.TrimSpace(s) == "" {
		return "", ErrIncompleteBody
	}
	if IsNumeric(s) {
		return "", ErrInvalidUsername
	}
	return NormalizeUsername(s), nil
}

// ParseID converts a path segment to a surrogate key.
// Returns ErrInvalidID unless raw is a base-10 integer. Integers too large for
// a SERIAL column are still valid IDs; see FitsKey.
func ParseID(raw string) (int, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return int(id), nil
}

// FitsKey reports whether id is within the range of a SERIAL column. IDs
// outside it cannot match any row.
func FitsKey(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

// IsNumeric reports whether s reads as a number, which is never a valid
// username or category slug.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(n)
}
