package twitter

import (
	"fmt"
	"net/url"
)

// ReverseGeocodeOptions are the parameters of geo/reverse_geocode
type ReverseGeocodeOptions struct {
	// Latitude of the location, always sent
	Latitude float64 `url:"-"`
	// Longitude of the location, always sent
	Longitude float64 `url:"-"`
	// Accuracy is a search radius in meters, or with an "ft" suffix in feet
	Accuracy string `url:"accuracy,omitempty"`
	// Granularity is the minimal place type to return. Neighborhood is the default.
	Granularity Granularity `url:"granularity,omitempty"`
	// MaxResults is a hint on the number of places to return
	MaxResults int `url:"max_results,omitempty"`
}

// Values implements QueryOptions
func (o *ReverseGeocodeOptions) Values() (url.Values, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: coordinates", ErrMissingArgument)
	}
	if err := checkCoordinates(o.Latitude, o.Longitude); err != nil {
		return nil, err
	}
	if !o.Granularity.IsValid() {
		return nil, fmt.Errorf("%w: unknown granularity %q", ErrInvalidOptions, o.Granularity)
	}
	if err := checkNotNegative("max_results", int64(o.MaxResults)); err != nil {
		return nil, err
	}

	v, err := encodeValues(o)
	if err != nil {
		return nil, err
	}
	setFloat(v, "lat", o.Latitude)
	setFloat(v, "long", o.Longitude)
	if isBlank(o.Accuracy) {
		v.Del("accuracy")
	}
	if o.Granularity == GranularityNeighborhood {
		v.Del("granularity")
	}

	return v, nil
}
