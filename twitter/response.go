package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Response is the raw result of a call to the API
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RateLimit  RateLimit
}

// RateLimit holds the x-rate-limit-* headers of a response.
// Fields are zero when the API did not send them.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// IsZero reports whether no rate limit headers were present
func (r RateLimit) IsZero() bool {
	return r.Limit == 0 && r.Remaining == 0 && r.Reset.IsZero()
}

func newResponse(resp *http.Response, body []byte) *Response {
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		RateLimit:  parseRateLimit(resp.Header),
	}
}

func parseRateLimit(h http.Header) RateLimit {
	var rl RateLimit
	if v, err := strconv.Atoi(h.Get("x-rate-limit-limit")); err == nil {
		rl.Limit = v
	}
	if v, err := strconv.Atoi(h.Get("x-rate-limit-remaining")); err == nil {
		rl.Remaining = v
	}
	if v, err := strconv.ParseInt(h.Get("x-rate-limit-reset"), 10, 64); err == nil && v > 0 {
		rl.Reset = time.Unix(v, 0)
	}
	return rl
}

// validateResponse returns an *APIError for anything but 200 OK
func validateResponse(resp *Response) error {
	if resp == nil {
		return ErrNilResponse
	}
	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}
	return nil
}

func decodeJSON(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty", ErrUnexpectedBody)
	}
	return json.Unmarshal(data, v)
}

// decodeObject is decodeJSON for responses that must be a JSON object.
// A null body would otherwise leave v at its zero value.
func decodeObject(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null", ErrUnexpectedBody)
	}
	return decodeJSON(data, v)
}

// StatusResponse is the parsed response of a call returning one status message
type StatusResponse struct {
	*Response
	Body *StatusMessage
}

// TimelineResponse is the parsed response of a call returning a list of status messages
type TimelineResponse struct {
	*Response
	Body []*StatusMessage
}

// ReverseGeocodeResponse is the parsed response of geo/reverse_geocode
type ReverseGeocodeResponse struct {
	*Response
	Body *ReverseGeocodeResults
}

// PlaceResponse is the parsed response of geo/id/:place_id
type PlaceResponse struct {
	*Response
	Body *Place
}

// ParseStatusResponse validates resp and decodes a single status message
func ParseStatusResponse(resp *Response) (*StatusResponse, error) {
	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	var status StatusMessage
	if err := decodeObject(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status message: %w", err)
	}

	return &StatusResponse{Response: resp, Body: &status}, nil
}

// ParseTimelineResponse validates resp and decodes an array of status messages
func ParseTimelineResponse(resp *Response) (*TimelineResponse, error) {
	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	var statuses []*StatusMessage
	if err := decodeJSON(resp.Body, &statuses); err != nil {
		return nil, fmt.Errorf("failed to parse timeline: %w", err)
	}
	if statuses == nil {
		statuses = []*StatusMessage{}
	}

	return &TimelineResponse{Response: resp, Body: statuses}, nil
}

// ParseReverseGeocodeResponse validates resp and decodes reverse geocode results
func ParseReverseGeocodeResponse(resp *Response) (*ReverseGeocodeResponse, error) {
	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	var results ReverseGeocodeResults
	if err := decodeObject(resp.Body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse reverse geocode results: %w", err)
	}

	return &ReverseGeocodeResponse{Response: resp, Body: &results}, nil
}

// ParsePlaceResponse validates resp and decodes a single place
func ParsePlaceResponse(resp *Response) (*PlaceResponse, error) {
	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	var place Place
	if err := decodeObject(resp.Body, &place); err != nil {
		return nil, fmt.Errorf("failed to parse place: %w", err)
	}

	return &PlaceResponse{Response: resp, Body: &place}, nil
}
