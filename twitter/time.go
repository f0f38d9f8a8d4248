package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the layout of created_at values in v1.1 payloads
const TimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Time is a time.Time that reads and writes the v1.1 created_at format.
// A missing or null value decodes to the zero time.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("created_at must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("invalid created_at %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(TimeLayout))
}
