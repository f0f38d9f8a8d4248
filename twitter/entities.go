package twitter

// Indices is the [start, end) position of an entity within the status text
type Indices [2]int

// Start returns the first code point of the entity
func (i Indices) Start() int { return i[0] }

// End returns the position just after the entity
func (i Indices) End() int { return i[1] }

// Entities holds the entities parsed out of a status message's text
type Entities struct {
	Hashtags     []HashtagEntity     `json:"hashtags"`
	Symbols      []SymbolEntity      `json:"symbols"`
	URLs         []URLEntity         `json:"urls"`
	UserMentions []UserMentionEntity `json:"user_mentions"`
	Media        []MediaEntity       `json:"media,omitempty"`
}

// HashtagTexts returns the hashtags without the leading '#'
func (e *Entities) HashtagTexts() []string {
	if e == nil {
		return nil
	}
	tags := make([]string, 0, len(e.Hashtags))
	for _, h := range e.Hashtags {
		tags = append(tags, h.Text)
	}
	return tags
}

// MentionedScreenNames returns the screen names of all mentioned users
func (e *Entities) MentionedScreenNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.UserMentions))
	for _, m := range e.UserMentions {
		names = append(names, m.ScreenName)
	}
	return names
}

// ExtendedEntities holds every media item attached to a status message.
// Unlike Entities.Media it lists all photos of a multi-photo tweet, and
// videos and GIFs with their variants.
type ExtendedEntities struct {
	Media []MediaEntity `json:"media"`
}

// HashtagEntity is a #hashtag
type HashtagEntity struct {
	Text    string  `json:"text"`
	Indices Indices `json:"indices"`
}

// SymbolEntity is a $cashtag
type SymbolEntity struct {
	Text    string  `json:"text"`
	Indices Indices `json:"indices"`
}

// URLEntity is a t.co wrapped link
type URLEntity struct {
	URL         string  `json:"url"`
	ExpandedURL string  `json:"expanded_url"`
	DisplayURL  string  `json:"display_url"`
	Indices     Indices `json:"indices"`
}

// UserMentionEntity is an @mention
type UserMentionEntity struct {
	ID         int64   `json:"id"`
	IDStr      string  `json:"id_str"`
	ScreenName string  `json:"screen_name"`
	Name       string  `json:"name"`
	Indices    Indices `json:"indices"`
}

// MediaEntity is an uploaded photo, video or animated GIF
type MediaEntity struct {
	ID                int64          `json:"id"`
	IDStr             string         `json:"id_str"`
	Type              string         `json:"type"`
	MediaURL          string         `json:"media_url"`
	MediaURLHTTPS     string         `json:"media_url_https"`
	URL               string         `json:"url"`
	DisplayURL        string         `json:"display_url"`
	ExpandedURL       string         `json:"expanded_url"`
	ExtAltText        *string        `json:"ext_alt_text,omitempty"`
	SourceStatusID    *int64         `json:"source_status_id,omitempty"`
	SourceStatusIDStr string         `json:"source_status_id_str,omitempty"`
	Sizes             MediaSizes     `json:"sizes"`
	VideoInfo         *VideoInfo     `json:"video_info,omitempty"`
	Indices           Indices        `json:"indices"`
	AdditionalInfo    map[string]any `json:"additional_media_info,omitempty"`
}

// Media types
const (
	MediaTypePhoto       = "photo"
	MediaTypeVideo       = "video"
	MediaTypeAnimatedGIF = "animated_gif"
)

// IsVideo checks if the media is a video or animated GIF
func (m *MediaEntity) IsVideo() bool {
	return m.Type == MediaTypeVideo || m.Type == MediaTypeAnimatedGIF
}

// MediaSizes lists the available renditions of a media item
type MediaSizes struct {
	Thumb  *MediaSize `json:"thumb,omitempty"`
	Small  *MediaSize `json:"small,omitempty"`
	Medium *MediaSize `json:"medium,omitempty"`
	Large  *MediaSize `json:"large,omitempty"`
}

// MediaSize is a single rendition
type MediaSize struct {
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Resize string `json:"resize"`
}

// VideoInfo describes the encoded variants of a video or GIF
type VideoInfo struct {
	AspectRatio    [2]int         `json:"aspect_ratio"`
	DurationMillis int            `json:"duration_millis,omitempty"`
	Variants       []VideoVariant `json:"variants"`
}

// VideoVariant is one encoding of a video
type VideoVariant struct {
	Bitrate     int    `json:"bitrate,omitempty"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// BestVariant returns the mp4 variant with the highest bitrate, or nil
func (v *VideoInfo) BestVariant() *VideoVariant {
	if v == nil {
		return nil
	}
	var best *VideoVariant
	for i := range v.Variants {
		variant := &v.Variants[i]
		if variant.ContentType != "video/mp4" {
			continue
		}
		if best == nil || variant.Bitrate > best.Bitrate {
			best = variant
		}
	}
	return best
}
