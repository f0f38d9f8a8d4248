package twitter

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeEndpoint_ReverseGeocode(t *testing.T) {
	var last recordedRequest
	var hits int32
	service := newTestService(t, recordingHandler(t, http.StatusOK, reverseGeocodeFixture, &last, &hits))

	resp, err := service.Geocode.ReverseGeocodeCoordinates(context.Background(), 37.7821, -122.4093)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, last.method)
	assert.Equal(t, "/1.1/geo/reverse_geocode.json", last.path)
	assert.Equal(t, url.Values{"lat": {"37.7821"}, "long": {"-122.4093"}}, last.query)

	places := resp.Body.Places()
	require.Len(t, places, 1)
	assert.Equal(t, "San Francisco", places[0].Name)
	assert.Equal(t, PlaceTypeCity, places[0].PlaceType)

	_, err = service.Geocode.ReverseGeocode(context.Background(), &ReverseGeocodeOptions{
		Latitude:    51.5,
		Longitude:   -0.12,
		Accuracy:    "1000",
		Granularity: GranularityCountry,
		MaxResults:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"lat":         {"51.5"},
		"long":        {"-0.12"},
		"accuracy":    {"1000"},
		"granularity": {"country"},
		"max_results": {"1"},
	}, last.query)
}

func TestGeocodeEndpoint_ReverseGeocodeInvalid(t *testing.T) {
	var last recordedRequest
	var hits int32
	service := newTestService(t, recordingHandler(t, http.StatusOK, reverseGeocodeFixture, &last, &hits))

	_, err := service.Geocode.ReverseGeocode(context.Background(), nil)
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = service.Geocode.ReverseGeocodeCoordinates(context.Background(), 91, 0)
	require.ErrorIs(t, err, ErrInvalidOptions)

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGeocodeEndpoint_GetPlace(t *testing.T) {
	const place = `{"id": "df51dec6f4ee2b2c", "name": "Presidio", "full_name": "Presidio, San Francisco", "place_type": "neighborhood", "country_code": "US"}`

	var last recordedRequest
	var hits int32
	service := newTestService(t, recordingHandler(t, http.StatusOK, place, &last, &hits))

	resp, err := service.Geocode.GetPlace(context.Background(), "df51dec6f4ee2b2c")
	require.NoError(t, err)
	assert.Equal(t, "/1.1/geo/id/df51dec6f4ee2b2c.json", last.path)
	assert.Equal(t, "Presidio", resp.Body.Name)
	assert.Equal(t, PlaceTypeNeighborhood, resp.Body.PlaceType)
	assert.Nil(t, resp.Body.BoundingBox)

	_, err = service.Geocode.GetPlace(context.Background(), " ")
	require.ErrorIs(t, err, ErrMissingArgument)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestGeocodeEndpoint_GetPlaceNotFound(t *testing.T) {
	var last recordedRequest
	var hits int32
	service := newTestService(t, recordingHandler(t, http.StatusNotFound,
		`{"errors":[{"code":34,"message":"Sorry, that page does not exist."}]}`, &last, &hits))

	resp, err := service.Geocode.GetPlace(context.Background(), "nowhere")
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.True(t, apiErr.HasCode(34))
}
