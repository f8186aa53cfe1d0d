package shared

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// MaxBodyBytes bounds the size of any request body.
const MaxBodyBytes = 1 << 20

// DecodeFields reads a JSON object body into a field map without decoding the
// values. An empty or null body yields an empty map, so handlers report the
// missing fields themselves. Anything that is not a JSON object yields
// domain.ErrMalformedBody.
func DecodeFields(r *http.Request) (domain.Fields, error) {
	fields := domain.Fields{}
	if r.Body == nil {
		return fields, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil || len(body) > MaxBodyBytes {
		return nil, domain.ErrMalformedBody
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return fields, nil
	}

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, domain.ErrMalformedBody
	}
	if fields == nil {
		fields = domain.Fields{}
	}
	return fields, nil
}
