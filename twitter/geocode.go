package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ReverseGeocodeResults is the payload of geo/reverse_geocode
type ReverseGeocodeResults struct {
	Result *ReverseGeocodeResult `json:"result"`
	Query  *ReverseGeocodeQuery  `json:"query"`
}

// Places returns the places of the result, or nil when there is no result
func (r *ReverseGeocodeResults) Places() []*Place {
	if r == nil || r.Result == nil {
		return nil
	}
	return r.Result.Places
}

// ReverseGeocodeResult holds the places near the queried coordinates
type ReverseGeocodeResult struct {
	Places []*Place `json:"places"`
}

// ReverseGeocodeQuery echoes the query the API answered
type ReverseGeocodeQuery struct {
	URL    string                     `json:"url"`
	Type   string                     `json:"type"`
	Params *ReverseGeocodeQueryParams `json:"params"`
}

// ReverseGeocodeQueryParams are the normalized parameters of the query
type ReverseGeocodeQueryParams struct {
	Accuracy    Accuracy     `json:"accuracy"`
	Granularity Granularity  `json:"granularity"`
	Coordinates *Coordinates `json:"coordinates"`
}

// Accuracy is a search radius. The API echoes it as a number of meters but
// accepts strings such as "5ft" on input, so both forms decode to a string.
type Accuracy string

// UnmarshalJSON implements json.Unmarshaler
func (a *Accuracy) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Accuracy(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid accuracy %s: %w", data, err)
	}
	*a = Accuracy(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Granularity is the minimal place type a reverse geocode returns
type Granularity string

// Granularities accepted by geo/reverse_geocode
const (
	GranularityNeighborhood Granularity = "neighborhood"
	GranularityCity         Granularity = "city"
	GranularityAdmin        Granularity = "admin"
	GranularityCountry      Granularity = "country"
)

// IsValid checks if g is empty or one of the documented values
func (g Granularity) IsValid() bool {
	switch g {
	case "", GranularityNeighborhood, GranularityCity, GranularityAdmin, GranularityCountry:
		return true
	default:
		return false
	}
}
