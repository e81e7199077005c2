package driven

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query holds the filter parameters for an upstream read. Values may be
// string, int, bool, []int, []string, *bool or *int. Zero-valued and nil
// entries are omitted entirely from the outgoing request: the upstream
// treats absent and empty parameters differently, so a key is either
// present with a real value or not sent at all.
type Query map[string]any

// Encode serializes the query into url.Values, omitting empty entries.
// Slices join as comma-separated values, matching the upstream's list
// parameter convention.
func (q Query) Encode() url.Values {
	values := url.Values{}
	for key, raw := range q {
		if s, ok := encodeQueryValue(raw); ok {
			values.Set(key, s)
		}
	}
	return values
}

// Canonical returns a deterministic string form of the query with keys
// sorted, used to build cache keys. Semantically identical queries always
// produce the same string and different filters never collide.
func (q Query) Canonical() string {
	encoded := q.Encode()
	keys := make([]string, 0, len(encoded))
	for key := range encoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteByte('|')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(encoded.Get(key))
	}
	return b.String()
}

func encodeQueryValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case int:
		if v == 0 {
			return "", false
		}
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	case *bool:
		if v == nil {
			return "", false
		}
		return strconv.FormatBool(*v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case []int:
		if len(v) == 0 {
			return "", false
		}
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ","), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return strings.Join(v, ","), true
	default:
		return fmt.Sprint(v), true
	}
}

// Gateway is the sole path to the upstream API. Implementations own
// authentication, header injection, retries and error normalization;
// callers only see decoded bodies or a typed error.
type Gateway interface {
	// Get issues a GET to path with the encoded query and decodes the
	// response body into out.
	Get(ctx context.Context, path string, query Query, out any) error

	// Post issues a POST to path with a JSON body and decodes the
	// response body into out. A nil out discards the body.
	Post(ctx context.Context, path string, body any, out any) error
}
