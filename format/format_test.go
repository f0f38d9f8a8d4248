package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/twitterctl/twitter"
)

func sampleStatus() *twitter.StatusMessage {
	replyName := "golang"
	replyID := int64(1049430620963926016)
	return &twitter.StatusMessage{
		ID:                  1050118621198921728,
		IDStr:               "1050118621198921728",
		CreatedAt:           twitter.Time{Time: time.Date(2018, 10, 10, 20, 19, 24, 0, time.UTC)},
		FullText:            "Go 1.22 is out!\n#golang",
		InReplyToStatusID:   &replyID,
		InReplyToScreenName: &replyName,
		RetweetCount:        161,
		FavoriteCount:       296,
		User:                &twitter.User{ScreenName: "TwitterDev"},
		Entities: &twitter.Entities{
			Hashtags:     []twitter.HashtagEntity{{Text: "golang"}},
			UserMentions: []twitter.UserMentionEntity{{ScreenName: "golang"}},
		},
		ExtendedEntities: &twitter.ExtendedEntities{
			Media: []twitter.MediaEntity{{
				Type:          twitter.MediaTypeVideo,
				MediaURLHTTPS: "https://pbs.twimg.com/thumb.jpg",
				VideoInfo: &twitter.VideoInfo{Variants: []twitter.VideoVariant{
					{Bitrate: 832000, ContentType: "video/mp4", URL: "https://video.twimg.com/640.mp4"},
				}},
			}},
		},
		Place: &twitter.Place{FullName: "San Francisco, CA"},
	}
}

func samplePlaces() []*twitter.Place {
	return []*twitter.Place{
		{
			ID:          "5a110d312052166f",
			Name:        "San Francisco",
			FullName:    "San Francisco, CA",
			PlaceType:   twitter.PlaceTypeCity,
			Country:     "United States",
			CountryCode: "US",
			BoundingBox: &twitter.BoundingBox{
				Type:        "Polygon",
				Coordinates: [][][2]float64{{{-122.5, 37.7}, {-122.3, 37.7}, {-122.3, 37.9}, {-122.5, 37.9}}},
			},
			ContainedWithin: []*twitter.Place{{FullName: "California, USA"}},
		},
		{ID: "fbd6d2f5a4e4a15e", Name: "California", PlaceType: twitter.PlaceTypeAdmin},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleFormatter_FormatTimeline(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No statuses found", f.FormatTimeline(nil, Options{}))

	second := &twitter.StatusMessage{
		ID:              2,
		Text:            "RT @golang: hello",
		RetweetedStatus: &twitter.StatusMessage{ID: 1, Text: "hello"},
	}

	out := f.FormatTimeline([]*twitter.StatusMessage{sampleStatus(), second}, Options{})
	assert.Contains(t, out, "Statuses (2):")
	assert.Contains(t, out, "├── @TwitterDev (1050118621198921728) [REPLY]\n│   Go 1.22 is out!\n│   #golang\n")
	assert.Contains(t, out, "╰── @unknown (2) [RETWEET]\n    hello\n")
	assert.NotContains(t, out, "RT |", "details are hidden by default")

	out = f.FormatTimeline([]*twitter.StatusMessage{second}, Options{})
	assert.Contains(t, out, "Status (1):")
}

func TestConsoleFormatter_FormatStatusDetails(t *testing.T) {
	out := NewConsoleFormatter().FormatStatus(sampleStatus(), Options{ShowDetails: true, ShowEntities: true})

	for _, want := range []string{
		"161 RT | 296 ♥",
		"In reply to: @golang (1049430620963926016)",
		"Place: San Francisco, CA",
		"By: @TwitterDev https://twitter.com/TwitterDev\n",
		"Hashtags: #golang",
		"Mentions: @golang",
		"Media: video https://video.twimg.com/640.mp4",
		"https://twitter.com/TwitterDev/status/1050118621198921728",
	} {
		assert.Contains(t, out, want)
	}

	assert.Empty(t, NewConsoleFormatter().FormatStatus(nil, Options{}))
}

func TestConsoleFormatter_FormatPlaces(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No places found", f.FormatPlaces(nil))

	out := f.FormatPlaces(samplePlaces())
	assert.Contains(t, out, "Places (2):")
	assert.Contains(t, out, "├── San Francisco, CA [city]\n│   ID: 5a110d312052166f\n")
	assert.Contains(t, out, "│   Country: United States (US)\n")
	assert.Contains(t, out, "│   Center: 37.8000, -122.4000\n")
	assert.Contains(t, out, "│   Within: California, USA\n")
	assert.Contains(t, out, "╰── California [admin]\n    ID: fbd6d2f5a4e4a15e\n")
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, Options{})

	require.NoError(t, p.PrintStatus(sampleStatus()))

	var decoded twitter.StatusMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, int64(1050118621198921728), decoded.ID)
	assert.Equal(t, "TwitterDev", decoded.AuthorScreenName())
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))

	buf.Reset()
	require.NoError(t, p.PrintTimeline(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML, Options{})

	require.NoError(t, p.PrintStatus(sampleStatus()))
	out := buf.String()

	assert.Contains(t, out, "id: 1050118621198921728\n")
	assert.Contains(t, out, "id_str: \"1050118621198921728\"\n", "numeric strings stay strings")
	assert.Contains(t, out, "retweet_count: 161\n")
	assert.NotContains(t, out, "{\"", "no flow style left over from json")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1050118621198921728", decoded["id_str"])
	assert.Equal(t, "Wed Oct 10 20:19:24 +0000 2018", decoded["created_at"])

	buf.Reset()
	require.NoError(t, p.PrintPlaces(&twitter.ReverseGeocodeResults{
		Result: &twitter.ReverseGeocodeResult{Places: samplePlaces()},
	}))
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, result["places"], 2)
}

func TestPrinter_Text(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText, Options{})

	require.NoError(t, p.PrintTimeline(nil))
	assert.Equal(t, "No statuses found\n", buf.String())

	buf.Reset()
	require.NoError(t, p.PrintPlace(samplePlaces()[1]))
	assert.Contains(t, buf.String(), "California [admin]")
}

func TestPrinter_PresetMatches(t *testing.T) {
	status := sampleStatus()
	matches := map[string][]*twitter.StatusMessage{
		"popular": {status},
		"golang":  {status, status},
		"quiet":   {},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatText, Options{}).PrintPresetMatches(matches, 3))
	assert.Equal(t, "\nPresets (3) over 3 statuses:\n\n├── golang: 2\n├── popular: 1\n╰── quiet: 0\n\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatJSON, Options{}).PrintPresetMatches(matches, 3))

	var decoded []PresetMatch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []PresetMatch{{"golang", 2}, {"popular", 1}, {"quiet", 0}}, decoded)

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatText, Options{}).PrintPresetMatches(nil, 0))
	assert.Equal(t, "No filter presets configured\n", buf.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Format("xml"), Options{})
	require.ErrorIs(t, p.PrintPlace(&twitter.Place{}), ErrUnknownFormat)
}
