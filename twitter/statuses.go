package twitter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Service groups the endpoints of the API on top of a raw Client
type Service struct {
	Client *Client

	// Statuses covers tweets and timelines
	Statuses *StatusesEndpoint
	// Geocode covers places and reverse geocoding
	Geocode *GeocodeEndpoint
}

// NewService creates a Service backed by client
func NewService(client *Client) *Service {
	s := &Service{Client: client}
	s.Statuses = &StatusesEndpoint{Raw: client.Statuses, logger: client.logger}
	s.Geocode = &GeocodeEndpoint{Raw: client.Geocode, logger: client.logger}
	return s
}

// StatusesEndpoint calls the statuses resource and parses the responses
type StatusesEndpoint struct {
	// Raw is the underlying raw endpoint
	Raw    *StatusesRawEndpoint
	logger zerolog.Logger
}

// GetStatusMessage gets the status message with the given ID
func (e *StatusesEndpoint) GetStatusMessage(ctx context.Context, statusID int64) (*StatusResponse, error) {
	return e.GetStatusMessageWithOptions(ctx, &GetStatusOptions{ID: statusID})
}

// GetStatusMessageWithOptions gets the status message matching opts
func (e *StatusesEndpoint) GetStatusMessageWithOptions(ctx context.Context, opts *GetStatusOptions) (*StatusResponse, error) {
	resp, err := e.Raw.GetStatusMessage(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get status message: %w", err)
	}
	return ParseStatusResponse(resp)
}

// PostStatusMessage posts a new status message with the given text
func (e *StatusesEndpoint) PostStatusMessage(ctx context.Context, text string) (*StatusResponse, error) {
	return e.PostStatusMessageWithOptions(ctx, &PostStatusOptions{Status: text})
}

// PostStatusReply posts text as a reply to the status with ID replyTo
func (e *StatusesEndpoint) PostStatusReply(ctx context.Context, text string, replyTo int64) (*StatusResponse, error) {
	return e.PostStatusMessageWithOptions(ctx, &PostStatusOptions{
		Status:            text,
		InReplyToStatusID: replyTo,
	})
}

// PostStatusMessageWithOptions posts a status message described by opts
func (e *StatusesEndpoint) PostStatusMessageWithOptions(ctx context.Context, opts *PostStatusOptions) (*StatusResponse, error) {
	resp, err := e.Raw.PostStatusMessage(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to post status message: %w", err)
	}

	parsed, err := ParseStatusResponse(resp)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int64("status_id", parsed.Body.ID).Msg("Posted status message")
	return parsed, nil
}

// GetUserTimeline gets the timeline of the user described by opts
func (e *StatusesEndpoint) GetUserTimeline(ctx context.Context, opts *UserTimelineOptions) (*TimelineResponse, error) {
	resp, err := e.Raw.GetUserTimeline(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get user timeline: %w", err)
	}
	return e.parseTimeline(resp, "user")
}

// GetUserTimelineByID gets up to count tweets of the user with the given ID.
// A count of zero uses the API default.
func (e *StatusesEndpoint) GetUserTimelineByID(ctx context.Context, userID int64, count int) (*TimelineResponse, error) {
	return e.GetUserTimeline(ctx, &UserTimelineOptions{
		UserID:          userID,
		TimelineOptions: TimelineOptions{Count: count},
	})
}

// GetUserTimelineByScreenName gets up to count tweets of the user with the given screen name
func (e *StatusesEndpoint) GetUserTimelineByScreenName(ctx context.Context, screenName string, count int) (*TimelineResponse, error) {
	return e.GetUserTimeline(ctx, &UserTimelineOptions{
		ScreenName:      screenName,
		TimelineOptions: TimelineOptions{Count: count},
	})
}

// GetHomeTimeline gets the most recent tweets and retweets posted by the
// authenticating user and the users they follow. opts may be nil.
func (e *StatusesEndpoint) GetHomeTimeline(ctx context.Context, opts *TimelineOptions) (*TimelineResponse, error) {
	resp, err := e.Raw.GetHomeTimeline(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get home timeline: %w", err)
	}
	return e.parseTimeline(resp, "home")
}

// GetMentionsTimeline gets the most recent tweets mentioning the
// authenticating user. opts may be nil.
func (e *StatusesEndpoint) GetMentionsTimeline(ctx context.Context, opts *TimelineOptions) (*TimelineResponse, error) {
	resp, err := e.Raw.GetMentionsTimeline(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentions timeline: %w", err)
	}
	return e.parseTimeline(resp, "mentions")
}

// GetRetweetsOfMe gets the most recent tweets authored by the authenticating
// user that have been retweeted by others. opts may be nil.
func (e *StatusesEndpoint) GetRetweetsOfMe(ctx context.Context, opts *TimelineOptions) (*TimelineResponse, error) {
	resp, err := e.Raw.GetRetweetsOfMe(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get retweets of me: %w", err)
	}
	return e.parseTimeline(resp, "retweets_of_me")
}

// Retweet retweets the status with the given ID
func (e *StatusesEndpoint) Retweet(ctx context.Context, statusID int64, trimUser bool) (*StatusResponse, error) {
	resp, err := e.Raw.Retweet(ctx, &RetweetOptions{ID: statusID, TrimUser: trimUser})
	if err != nil {
		return nil, fmt.Errorf("failed to retweet status %d: %w", statusID, err)
	}
	return ParseStatusResponse(resp)
}

// RetweetStatus retweets status. A nil status fails without calling the API.
func (e *StatusesEndpoint) RetweetStatus(ctx context.Context, status *StatusMessage, trimUser bool) (*StatusResponse, error) {
	if status == nil {
		return nil, ErrNilStatus
	}
	return e.Retweet(ctx, status.ID, trimUser)
}

// DestroyStatusMessage deletes the status with the given ID. The
// authenticating user must be its author. The deleted status is returned.
func (e *StatusesEndpoint) DestroyStatusMessage(ctx context.Context, statusID int64, trimUser bool) (*StatusResponse, error) {
	resp, err := e.Raw.DestroyStatusMessage(ctx, &DestroyStatusOptions{ID: statusID, TrimUser: trimUser})
	if err != nil {
		return nil, fmt.Errorf("failed to destroy status %d: %w", statusID, err)
	}

	parsed, err := ParseStatusResponse(resp)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int64("status_id", statusID).Msg("Destroyed status message")
	return parsed, nil
}

// DestroyStatus deletes status. A nil status fails without calling the API.
func (e *StatusesEndpoint) DestroyStatus(ctx context.Context, status *StatusMessage, trimUser bool) (*StatusResponse, error) {
	if status == nil {
		return nil, ErrNilStatus
	}
	return e.DestroyStatusMessage(ctx, status.ID, trimUser)
}

func (e *StatusesEndpoint) parseTimeline(resp *Response, timeline string) (*TimelineResponse, error) {
	parsed, err := ParseTimelineResponse(resp)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("timeline", timeline).
		Int("count", len(parsed.Body)).
		Msg("Retrieved timeline")

	return parsed, nil
}
