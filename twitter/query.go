package twitter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// QueryOptions is implemented by every options type. Values returns only
// the parameters whose value differs from the API default.
type QueryOptions interface {
	Values() (url.Values, error)
}

// TweetMode selects the JSON shape of returned tweets
type TweetMode string

const (
	// TweetModeCompatibility is the API default (truncated text, 140 chars)
	TweetModeCompatibility TweetMode = ""
	// TweetModeExtended returns full_text and display_text_range
	TweetModeExtended TweetMode = "extended"
)

// Bool returns a pointer to b, for the optional boolean fields of options
func Bool(b bool) *bool {
	return &b
}

// encodeValues runs the url struct tags of opts through go-querystring
func encodeValues(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return v, nil
}

// setFalse adds key=false when b is explicitly false. These parameters
// default to true on the API side, so true and nil are both left out.
func setFalse(v url.Values, key string, b *bool) {
	if b != nil && !*b {
		v.Set(key, "false")
	}
}

func setFloat(v url.Values, key string, f float64) {
	v.Set(key, strconv.FormatFloat(f, 'f', -1, 64))
}

func checkNotNegative(name string, n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidOptions, name)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
