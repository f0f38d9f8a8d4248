package twitter

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineOptions_Values(t *testing.T) {
	tests := []struct {
		name string
		opts *TimelineOptions
		want url.Values
	}{
		{
			name: "nil options",
			opts: nil,
			want: url.Values{},
		},
		{
			name: "zero value sends nothing",
			opts: &TimelineOptions{},
			want: url.Values{},
		},
		{
			name: "include retweets true is the default",
			opts: &TimelineOptions{IncludeRetweets: Bool(true)},
			want: url.Values{},
		},
		{
			name: "include retweets false",
			opts: &TimelineOptions{IncludeRetweets: Bool(false)},
			want: url.Values{"include_rts": {"false"}},
		},
		{
			name: "compatibility tweet mode is omitted",
			opts: &TimelineOptions{TweetMode: TweetModeCompatibility},
			want: url.Values{},
		},
		{
			name: "all fields set",
			opts: &TimelineOptions{
				SinceID:            100,
				Count:              50,
				MaxID:              200,
				TrimUser:           true,
				ExcludeReplies:     true,
				ContributorDetails: true,
				IncludeRetweets:    Bool(false),
				TweetMode:          TweetModeExtended,
			},
			want: url.Values{
				"since_id":            {"100"},
				"count":               {"50"},
				"max_id":              {"200"},
				"trim_user":           {"true"},
				"exclude_replies":     {"true"},
				"contributor_details": {"true"},
				"include_rts":         {"false"},
				"tweet_mode":          {"extended"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Values()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimelineOptions_RejectsNegative(t *testing.T) {
	tests := []struct {
		name string
		opts TimelineOptions
	}{
		{"since_id", TimelineOptions{SinceID: -1}},
		{"count", TimelineOptions{Count: -5}},
		{"max_id", TimelineOptions{MaxID: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Values()
			require.ErrorIs(t, err, ErrInvalidOptions)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestUserTimelineOptions_Values(t *testing.T) {
	tests := []struct {
		name string
		opts *UserTimelineOptions
		want url.Values
	}{
		{
			name: "zero value",
			opts: &UserTimelineOptions{},
			want: url.Values{},
		},
		{
			name: "user id",
			opts: &UserTimelineOptions{UserID: 783214},
			want: url.Values{"user_id": {"783214"}},
		},
		{
			name: "blank screen name is omitted",
			opts: &UserTimelineOptions{ScreenName: "   "},
			want: url.Values{},
		},
		{
			name: "screen name with embedded timeline options",
			opts: &UserTimelineOptions{
				ScreenName: "golang",
				TimelineOptions: TimelineOptions{
					Count:           10,
					MaxID:           999,
					ExcludeReplies:  true,
					IncludeRetweets: Bool(false),
				},
			},
			want: url.Values{
				"screen_name":     {"golang"},
				"count":           {"10"},
				"max_id":          {"999"},
				"exclude_replies": {"true"},
				"include_rts":     {"false"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Values()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("negative user id", func(t *testing.T) {
		_, err := (&UserTimelineOptions{UserID: -1}).Values()
		require.ErrorIs(t, err, ErrInvalidOptions)
	})
}

func TestGetStatusOptions_Values(t *testing.T) {
	t.Run("id only", func(t *testing.T) {
		got, err := (&GetStatusOptions{ID: 20}).Values()
		require.NoError(t, err)
		assert.Equal(t, url.Values{"id": {"20"}}, got)
	})

	t.Run("all fields", func(t *testing.T) {
		got, err := (&GetStatusOptions{
			ID:                20,
			TrimUser:          true,
			IncludeMyRetweet:  true,
			IncludeEntities:   Bool(false),
			IncludeExtAltText: true,
			IncludeCardURI:    true,
			TweetMode:         TweetModeExtended,
		}).Values()
		require.NoError(t, err)
		assert.Equal(t, url.Values{
			"id":                   {"20"},
			"trim_user":            {"true"},
			"include_my_retweet":   {"true"},
			"include_entities":     {"false"},
			"include_ext_alt_text": {"true"},
			"include_card_uri":     {"true"},
			"tweet_mode":           {"extended"},
		}, got)
	})

	t.Run("include entities true is the default", func(t *testing.T) {
		got, err := (&GetStatusOptions{ID: 1, IncludeEntities: Bool(true)}).Values()
		require.NoError(t, err)
		assert.Equal(t, url.Values{"id": {"1"}}, got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := (&GetStatusOptions{}).Values()
		require.ErrorIs(t, err, ErrMissingArgument)

		var nilOpts *GetStatusOptions
		_, err = nilOpts.Values()
		require.ErrorIs(t, err, ErrMissingArgument)
	})
}

func TestPostStatusOptions_Values(t *testing.T) {
	lat, long := 37.7821, -122.4093
	nan := math.NaN()

	tests := []struct {
		name    string
		opts    *PostStatusOptions
		want    url.Values
		wantErr error
	}{
		{
			name: "status only",
			opts: &PostStatusOptions{Status: "hello world"},
			want: url.Values{"status": {"hello world"}},
		},
		{
			name: "reply with media and coordinates",
			opts: &PostStatusOptions{
				Status:                    "look at this",
				InReplyToStatusID:         1050118621198921728,
				AutoPopulateReplyMetadata: true,
				ExcludeReplyUserIDs:       []int64{11, 12},
				MediaIDs:                  []int64{710511363345354753, 710511363345354754},
				PossiblySensitive:         true,
				Latitude:                  &lat,
				Longitude:                 &long,
				PlaceID:                   "5a110d312052166f",
				DisplayCoordinates:        true,
				TrimUser:                  true,
				TweetMode:                 TweetModeExtended,
			},
			want: url.Values{
				"status":                       {"look at this"},
				"in_reply_to_status_id":        {"1050118621198921728"},
				"auto_populate_reply_metadata": {"true"},
				"exclude_reply_user_ids":       {"11,12"},
				"media_ids":                    {"710511363345354753,710511363345354754"},
				"possibly_sensitive":           {"true"},
				"lat":                          {"37.7821"},
				"long":                         {"-122.4093"},
				"place_id":                     {"5a110d312052166f"},
				"display_coordinates":          {"true"},
				"trim_user":                    {"true"},
				"tweet_mode":                   {"extended"},
			},
		},
		{
			name: "blank place id is omitted",
			opts: &PostStatusOptions{Status: "x", PlaceID: " "},
			want: url.Values{"status": {"x"}},
		},
		{
			name:    "blank status",
			opts:    &PostStatusOptions{Status: "  "},
			wantErr: ErrMissingArgument,
		},
		{
			name:    "latitude without longitude",
			opts:    &PostStatusOptions{Status: "x", Latitude: &lat},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "latitude out of range",
			opts:    &PostStatusOptions{Status: "x", Latitude: &long, Longitude: &lat},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "NaN latitude",
			opts:    &PostStatusOptions{Status: "x", Latitude: &nan, Longitude: &long},
			wantErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Values()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetweetAndDestroyOptions_Values(t *testing.T) {
	got, err := (&RetweetOptions{ID: 5}).Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{}, got, "the id travels in the path")

	got, err = (&RetweetOptions{ID: 5, TrimUser: true}).Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{"trim_user": {"true"}}, got)

	got, err = (&DestroyStatusOptions{ID: 5, TrimUser: true}).Values()
	require.NoError(t, err)
	assert.Equal(t, url.Values{"trim_user": {"true"}}, got)

	_, err = (&RetweetOptions{}).Values()
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = (&DestroyStatusOptions{ID: -3}).Values()
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestReverseGeocodeOptions_Values(t *testing.T) {
	tests := []struct {
		name    string
		opts    *ReverseGeocodeOptions
		want    url.Values
		wantErr error
	}{
		{
			name: "coordinates are always sent",
			opts: &ReverseGeocodeOptions{},
			want: url.Values{"lat": {"0"}, "long": {"0"}},
		},
		{
			name: "neighborhood granularity is the default",
			opts: &ReverseGeocodeOptions{Latitude: 37.7821, Longitude: -122.4093, Granularity: GranularityNeighborhood},
			want: url.Values{"lat": {"37.7821"}, "long": {"-122.4093"}},
		},
		{
			name: "all fields",
			opts: &ReverseGeocodeOptions{
				Latitude:    37.7821,
				Longitude:   -122.4093,
				Accuracy:    "5ft",
				Granularity: GranularityCity,
				MaxResults:  3,
			},
			want: url.Values{
				"lat":         {"37.7821"},
				"long":        {"-122.4093"},
				"accuracy":    {"5ft"},
				"granularity": {"city"},
				"max_results": {"3"},
			},
		},
		{
			name: "small values are not written in exponent form",
			opts: &ReverseGeocodeOptions{Latitude: 0.00001, Longitude: -0.00002},
			want: url.Values{"lat": {"0.00001"}, "long": {"-0.00002"}},
		},
		{
			name:    "nil options",
			opts:    nil,
			wantErr: ErrMissingArgument,
		},
		{
			name:    "longitude out of range",
			opts:    &ReverseGeocodeOptions{Latitude: 10, Longitude: 181},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "NaN latitude",
			opts:    &ReverseGeocodeOptions{Latitude: math.NaN(), Longitude: 1},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "NaN longitude",
			opts:    &ReverseGeocodeOptions{Latitude: 1, Longitude: math.NaN()},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "unknown granularity",
			opts:    &ReverseGeocodeOptions{Granularity: "street"},
			wantErr: ErrInvalidOptions,
		},
		{
			name:    "negative max results",
			opts:    &ReverseGeocodeOptions{MaxResults: -1},
			wantErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Values()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTweetMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TweetMode
		wantErr bool
	}{
		{"", TweetModeCompatibility, false},
		{"compat", TweetModeCompatibility, false},
		{"Extended", TweetModeExtended, false},
		{"full", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTweetMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOptions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
