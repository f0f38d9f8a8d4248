package twitter

import "strconv"

// StatusMessage represents a tweet as returned by the v1.1 API.
// Nullable fields in the payload are pointers and stay nil when absent.
type StatusMessage struct {
	ID                   int64             `json:"id"`
	IDStr                string            `json:"id_str"`
	CreatedAt            Time              `json:"created_at"`
	Text                 string            `json:"text,omitempty"`
	FullText             string            `json:"full_text,omitempty"`
	DisplayTextRange     *Indices          `json:"display_text_range,omitempty"`
	Source               string            `json:"source"`
	Truncated            bool              `json:"truncated"`
	InReplyToStatusID    *int64            `json:"in_reply_to_status_id"`
	InReplyToStatusIDStr *string           `json:"in_reply_to_status_id_str"`
	InReplyToUserID      *int64            `json:"in_reply_to_user_id"`
	InReplyToUserIDStr   *string           `json:"in_reply_to_user_id_str"`
	InReplyToScreenName  *string           `json:"in_reply_to_screen_name"`
	User                 *User             `json:"user"`
	Coordinates          *Coordinates      `json:"coordinates"`
	Place                *Place            `json:"place"`
	IsQuoteStatus        bool              `json:"is_quote_status"`
	QuotedStatusID       *int64            `json:"quoted_status_id,omitempty"`
	QuotedStatusIDStr    string            `json:"quoted_status_id_str,omitempty"`
	QuotedStatus         *StatusMessage    `json:"quoted_status,omitempty"`
	RetweetedStatus      *StatusMessage    `json:"retweeted_status,omitempty"`
	QuoteCount           int               `json:"quote_count"`
	ReplyCount           int               `json:"reply_count"`
	RetweetCount         int               `json:"retweet_count"`
	FavoriteCount        int               `json:"favorite_count"`
	Entities             *Entities         `json:"entities"`
	ExtendedEntities     *ExtendedEntities `json:"extended_entities,omitempty"`
	Favorited            bool              `json:"favorited"`
	Retweeted            bool              `json:"retweeted"`
	PossiblySensitive    *bool             `json:"possibly_sensitive,omitempty"`
	Lang                 *string           `json:"lang"`

	CurrentUserRetweet *CurrentUserRetweet `json:"current_user_retweet,omitempty"`
}

// CurrentUserRetweet is set when include_my_retweet was requested and the
// authenticating user retweeted the status
type CurrentUserRetweet struct {
	ID    int64  `json:"id"`
	IDStr string `json:"id_str"`
}

// DisplayText returns full_text in extended mode and text otherwise
func (s *StatusMessage) DisplayText() string {
	if s.FullText != "" {
		return s.FullText
	}
	return s.Text
}

// IsRetweet checks if the status is a native retweet
func (s *StatusMessage) IsRetweet() bool {
	return s.RetweetedStatus != nil
}

// IsReply checks if the status replies to another status
func (s *StatusMessage) IsReply() bool {
	return s.InReplyToStatusID != nil && *s.InReplyToStatusID > 0
}

// AuthorScreenName returns the author's screen name or an empty string for trimmed users
func (s *StatusMessage) AuthorScreenName() string {
	if s.User == nil {
		return ""
	}
	return s.User.ScreenName
}

// URL returns the canonical link to the status
func (s *StatusMessage) URL() string {
	name := s.AuthorScreenName()
	if name == "" {
		name = "i/web"
	}
	return "https://twitter.com/" + name + "/status/" + strconv.FormatInt(s.ID, 10)
}

// Media returns extended media when present and falls back to entity media
func (s *StatusMessage) Media() []MediaEntity {
	if s.ExtendedEntities != nil && len(s.ExtendedEntities.Media) > 0 {
		return s.ExtendedEntities.Media
	}
	if s.Entities != nil {
		return s.Entities.Media
	}
	return nil
}
