package twitter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// StatusesRawEndpoint performs the HTTP calls of the statuses resource and
// returns unparsed responses
type StatusesRawEndpoint struct {
	client *Client
}

// GetStatusMessage calls statuses/show
func (e *StatusesRawEndpoint) GetStatusMessage(ctx context.Context, opts *GetStatusOptions) (*Response, error) {
	return e.getWith(ctx, "statuses/show.json", opts)
}

// PostStatusMessage calls statuses/update
func (e *StatusesRawEndpoint) PostStatusMessage(ctx context.Context, opts *PostStatusOptions) (*Response, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	return e.client.post(ctx, "statuses/update.json", params)
}

// GetUserTimeline calls statuses/user_timeline
func (e *StatusesRawEndpoint) GetUserTimeline(ctx context.Context, opts *UserTimelineOptions) (*Response, error) {
	return e.getWith(ctx, "statuses/user_timeline.json", opts)
}

// GetHomeTimeline calls statuses/home_timeline
func (e *StatusesRawEndpoint) GetHomeTimeline(ctx context.Context, opts *TimelineOptions) (*Response, error) {
	return e.getWith(ctx, "statuses/home_timeline.json", opts)
}

// GetMentionsTimeline calls statuses/mentions_timeline
func (e *StatusesRawEndpoint) GetMentionsTimeline(ctx context.Context, opts *TimelineOptions) (*Response, error) {
	return e.getWith(ctx, "statuses/mentions_timeline.json", opts)
}

// GetRetweetsOfMe calls statuses/retweets_of_me
func (e *StatusesRawEndpoint) GetRetweetsOfMe(ctx context.Context, opts *TimelineOptions) (*Response, error) {
	return e.getWith(ctx, "statuses/retweets_of_me.json", opts)
}

// Retweet calls statuses/retweet/:id
func (e *StatusesRawEndpoint) Retweet(ctx context.Context, opts *RetweetOptions) (*Response, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	return e.client.post(ctx, "statuses/retweet/"+strconv.FormatInt(opts.ID, 10)+".json", params)
}

// DestroyStatusMessage calls statuses/destroy/:id
func (e *StatusesRawEndpoint) DestroyStatusMessage(ctx context.Context, opts *DestroyStatusOptions) (*Response, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	return e.client.post(ctx, "statuses/destroy/"+strconv.FormatInt(opts.ID, 10)+".json", params)
}

func (e *StatusesRawEndpoint) getWith(ctx context.Context, path string, opts QueryOptions) (*Response, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	return e.client.get(ctx, path, params)
}

// GeocodeRawEndpoint performs the HTTP calls of the geo resource
type GeocodeRawEndpoint struct {
	client *Client
}

// ReverseGeocode calls geo/reverse_geocode
func (e *GeocodeRawEndpoint) ReverseGeocode(ctx context.Context, opts *ReverseGeocodeOptions) (*Response, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	return e.client.get(ctx, "geo/reverse_geocode.json", params)
}

// GetPlace calls geo/id/:place_id
func (e *GeocodeRawEndpoint) GetPlace(ctx context.Context, placeID string) (*Response, error) {
	if isBlank(placeID) {
		return nil, fmt.Errorf("%w: place id", ErrMissingArgument)
	}
	return e.client.get(ctx, "geo/id/"+url.PathEscape(placeID)+".json", nil)
}
