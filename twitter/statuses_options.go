package twitter

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// TimelineOptions are the parameters shared by the home, mentions and
// retweets-of-me timelines. The zero value requests the API defaults.
type TimelineOptions struct {
	// SinceID returns results with an ID greater than (more recent than) this ID
	SinceID int64 `url:"since_id,omitempty"`
	// Count is the number of tweets to try and retrieve, up to 200
	Count int `url:"count,omitempty"`
	// MaxID returns results with an ID less than or equal to this ID
	MaxID int64 `url:"max_id,omitempty"`
	// TrimUser reduces each user object to the author's numerical ID
	TrimUser bool `url:"trim_user,omitempty"`
	// ExcludeReplies drops replies from the timeline
	ExcludeReplies bool `url:"exclude_replies,omitempty"`
	// ContributorDetails adds screen_name to the contributors element
	ContributorDetails bool `url:"contributor_details,omitempty"`
	// IncludeRetweets set to false strips native retweets. Nil keeps them.
	IncludeRetweets *bool `url:"-"`
	// TweetMode selects compatibility or extended payloads
	TweetMode TweetMode `url:"tweet_mode,omitempty"`
}

func (o *TimelineOptions) validate() error {
	if err := checkNotNegative("since_id", o.SinceID); err != nil {
		return err
	}
	if err := checkNotNegative("count", int64(o.Count)); err != nil {
		return err
	}
	return checkNotNegative("max_id", o.MaxID)
}

// Values implements QueryOptions
func (o *TimelineOptions) Values() (url.Values, error) {
	if o == nil {
		return url.Values{}, nil
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	v, err := encodeValues(o)
	if err != nil {
		return nil, err
	}
	setFalse(v, "include_rts", o.IncludeRetweets)

	return v, nil
}

// UserTimelineOptions are the parameters of statuses/user_timeline.
// Without UserID and ScreenName the API returns the authenticating user's timeline.
type UserTimelineOptions struct {
	UserID     int64  `url:"user_id,omitempty"`
	ScreenName string `url:"screen_name,omitempty"`
	TimelineOptions
}

// Values implements QueryOptions
func (o *UserTimelineOptions) Values() (url.Values, error) {
	if o == nil {
		return url.Values{}, nil
	}
	if err := checkNotNegative("user_id", o.UserID); err != nil {
		return nil, err
	}
	if err := o.TimelineOptions.validate(); err != nil {
		return nil, err
	}

	v, err := encodeValues(o)
	if err != nil {
		return nil, err
	}
	if isBlank(o.ScreenName) {
		v.Del("screen_name")
	}
	setFalse(v, "include_rts", o.IncludeRetweets)

	return v, nil
}

// GetStatusOptions are the parameters of statuses/show
type GetStatusOptions struct {
	// ID of the status message, required
	ID int64 `url:"id"`
	// TrimUser reduces the user object to the author's numerical ID
	TrimUser bool `url:"trim_user,omitempty"`
	// IncludeMyRetweet adds current_user_retweet when the authenticating user retweeted it
	IncludeMyRetweet bool `url:"include_my_retweet,omitempty"`
	// IncludeEntities set to false omits the entities node. Nil keeps it.
	IncludeEntities *bool `url:"-"`
	// IncludeExtAltText adds ext_alt_text to media entities
	IncludeExtAltText bool `url:"include_ext_alt_text,omitempty"`
	// IncludeCardURI adds card_uri when the tweet has an ads card attached
	IncludeCardURI bool `url:"include_card_uri,omitempty"`
	// TweetMode selects compatibility or extended payloads
	TweetMode TweetMode `url:"tweet_mode,omitempty"`
}

// Values implements QueryOptions
func (o *GetStatusOptions) Values() (url.Values, error) {
	if o == nil || o.ID <= 0 {
		return nil, fmt.Errorf("%w: status id", ErrMissingArgument)
	}

	v, err := encodeValues(o)
	if err != nil {
		return nil, err
	}
	setFalse(v, "include_entities", o.IncludeEntities)

	return v, nil
}

// PostStatusOptions are the parameters of statuses/update
type PostStatusOptions struct {
	// Status is the text of the status update, required
	Status string `url:"status"`
	// InReplyToStatusID is the status being replied to
	InReplyToStatusID int64 `url:"in_reply_to_status_id,omitempty"`
	// AutoPopulateReplyMetadata derives leading @mentions from the replied-to status
	AutoPopulateReplyMetadata bool `url:"auto_populate_reply_metadata,omitempty"`
	// ExcludeReplyUserIDs removes users from the auto-populated mentions
	ExcludeReplyUserIDs []int64 `url:"exclude_reply_user_ids,comma,omitempty"`
	// AttachmentURL is a tweet permalink or DM deep link to attach
	AttachmentURL string `url:"attachment_url,omitempty"`
	// MediaIDs are previously uploaded media to attach, up to 4
	MediaIDs []int64 `url:"media_ids,comma,omitempty"`
	// PossiblySensitive marks the attached media as sensitive
	PossiblySensitive bool `url:"possibly_sensitive,omitempty"`
	// Latitude and Longitude geotag the status; both or neither must be set
	Latitude  *float64 `url:"-"`
	Longitude *float64 `url:"-"`
	// PlaceID attaches a place from geo/reverse_geocode
	PlaceID string `url:"place_id,omitempty"`
	// DisplayCoordinates shows the exact coordinates on the tweet
	DisplayCoordinates bool `url:"display_coordinates,omitempty"`
	// TrimUser reduces the user object to the author's numerical ID
	TrimUser bool `url:"trim_user,omitempty"`
	// TweetMode selects compatibility or extended payloads
	TweetMode TweetMode `url:"tweet_mode,omitempty"`
}

// Values implements QueryOptions
func (o *PostStatusOptions) Values() (url.Values, error) {
	if o == nil || isBlank(o.Status) {
		return nil, fmt.Errorf("%w: status text", ErrMissingArgument)
	}
	if err := checkNotNegative("in_reply_to_status_id", o.InReplyToStatusID); err != nil {
		return nil, err
	}
	if (o.Latitude == nil) != (o.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidOptions)
	}
	if o.Latitude != nil {
		if err := checkCoordinates(*o.Latitude, *o.Longitude); err != nil {
			return nil, err
		}
	}

	v, err := encodeValues(o)
	if err != nil {
		return nil, err
	}
	if o.Latitude != nil {
		setFloat(v, "lat", *o.Latitude)
		setFloat(v, "long", *o.Longitude)
	}
	if isBlank(o.PlaceID) {
		v.Del("place_id")
	}

	return v, nil
}

// RetweetOptions are the parameters of statuses/retweet/:id
type RetweetOptions struct {
	// ID of the status to retweet, sent in the path
	ID int64 `url:"-"`
	// TrimUser reduces the user object to the author's numerical ID
	TrimUser bool `url:"trim_user,omitempty"`
}

// Values implements QueryOptions
func (o *RetweetOptions) Values() (url.Values, error) {
	if o == nil || o.ID <= 0 {
		return nil, fmt.Errorf("%w: status id", ErrMissingArgument)
	}
	return encodeValues(o)
}

// DestroyStatusOptions are the parameters of statuses/destroy/:id
type DestroyStatusOptions struct {
	// ID of the status to delete, sent in the path
	ID int64 `url:"-"`
	// TrimUser reduces the user object to the author's numerical ID
	TrimUser bool `url:"trim_user,omitempty"`
}

// Values implements QueryOptions
func (o *DestroyStatusOptions) Values() (url.Values, error) {
	if o == nil || o.ID <= 0 {
		return nil, fmt.Errorf("%w: status id", ErrMissingArgument)
	}
	return encodeValues(o)
}

func checkCoordinates(lat, long float64) error {
	if math.IsNaN(lat) || math.IsNaN(long) {
		return fmt.Errorf("%w: coordinates must be numbers", ErrInvalidOptions)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidOptions, lat)
	}
	if long < -180 || long > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidOptions, long)
	}
	return nil
}

// ParseTweetMode converts a user supplied mode name
func ParseTweetMode(s string) (TweetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compat", "compatibility":
		return TweetModeCompatibility, nil
	case "extended":
		return TweetModeExtended, nil
	default:
		return "", fmt.Errorf("%w: unknown tweet mode %q", ErrInvalidOptions, s)
	}
}
