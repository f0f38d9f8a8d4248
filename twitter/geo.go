package twitter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// GeocodeEndpoint calls the geo resource and parses the responses
type GeocodeEndpoint struct {
	// Raw is the underlying raw endpoint
	Raw    *GeocodeRawEndpoint
	logger zerolog.Logger
}

// ReverseGeocode finds places near the coordinates in opts
func (e *GeocodeEndpoint) ReverseGeocode(ctx context.Context, opts *ReverseGeocodeOptions) (*ReverseGeocodeResponse, error) {
	resp, err := e.Raw.ReverseGeocode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}

	parsed, err := ParseReverseGeocodeResponse(resp)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Float64("lat", opts.Latitude).
		Float64("long", opts.Longitude).
		Int("places", len(parsed.Body.Places())).
		Msg("Reverse geocoded coordinates")

	return parsed, nil
}

// ReverseGeocodeCoordinates is ReverseGeocode with only the required parameters
func (e *GeocodeEndpoint) ReverseGeocodeCoordinates(ctx context.Context, lat, long float64) (*ReverseGeocodeResponse, error) {
	return e.ReverseGeocode(ctx, &ReverseGeocodeOptions{Latitude: lat, Longitude: long})
}

// GetPlace gets the place with the given ID
func (e *GeocodeEndpoint) GetPlace(ctx context.Context, placeID string) (*PlaceResponse, error) {
	resp, err := e.Raw.GetPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get place %s: %w", placeID, err)
	}
	return ParsePlaceResponse(resp)
}
