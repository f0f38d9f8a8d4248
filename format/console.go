package format

import (
	"fmt"
	"strings"

	"github.com/s0up4200/twitterctl/twitter"
)

const dateLayout = "2006-01-02 15:04"

// Options controls how much of each item the console formatter shows
type Options struct {
	ShowDetails  bool
	ShowEntities bool
}

// ConsoleFormatter renders statuses and places as trees for a terminal
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatTimeline formats a list of statuses
func (f *ConsoleFormatter) FormatTimeline(statuses []*twitter.StatusMessage, options Options) string {
	if len(statuses) == 0 {
		return "No statuses found"
	}

	var sb strings.Builder

	sb.WriteString("\nStatus")
	if len(statuses) != 1 {
		sb.WriteString("es")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(statuses))

	for i, status := range statuses {
		isLast := i == len(statuses)-1
		f.formatStatus(&sb, status, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatStatus formats a single status with its details
func (f *ConsoleFormatter) FormatStatus(status *twitter.StatusMessage, options Options) string {
	if status == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	f.formatStatus(&sb, status, true, options)
	sb.WriteString("\n")
	return sb.String()
}

// FormatPlaces formats reverse geocode results
func (f *ConsoleFormatter) FormatPlaces(places []*twitter.Place) string {
	if len(places) == 0 {
		return "No places found"
	}

	var sb strings.Builder
	sb.WriteString("\nPlace")
	if len(places) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(places))

	for i, place := range places {
		isLast := i == len(places)-1
		f.formatPlace(&sb, place, isLast)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// PresetMatch is the number of statuses a named filter matched
type PresetMatch struct {
	Name    string `json:"name"`
	Matched int    `json:"matched"`
}

// FormatPresetMatches formats how many of total statuses each preset matched
func (f *ConsoleFormatter) FormatPresetMatches(matches []PresetMatch, total int) string {
	if len(matches) == 0 {
		return "No filter presets configured"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nPresets (%d) over %d statuses:\n\n", len(matches), total)
	for i, m := range matches {
		prefix, _ := branch(i == len(matches)-1)
		fmt.Fprintf(&sb, "%s── %s: %d\n", prefix, m.Name, m.Matched)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatPlace formats a single place
func (f *ConsoleFormatter) FormatPlace(place *twitter.Place) string {
	if place == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	f.formatPlace(&sb, place, true)
	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatStatus(sb *strings.Builder, status *twitter.StatusMessage, isLast bool, options Options) {
	prefix, indent := branch(isLast)

	author := status.AuthorScreenName()
	if author == "" {
		author = "unknown"
	}
	fmt.Fprintf(sb, "%s── @%s (%d)", prefix, author, status.ID)
	switch {
	case status.IsRetweet():
		sb.WriteString(" [RETWEET]")
	case status.IsReply():
		sb.WriteString(" [REPLY]")
	}
	sb.WriteString("\n")

	text := status.DisplayText()
	if status.IsRetweet() {
		text = status.RetweetedStatus.DisplayText()
	}
	for line := range strings.SplitSeq(text, "\n") {
		fmt.Fprintf(sb, "%s%s\n", indent, line)
	}

	if !options.ShowDetails {
		return
	}

	var parts []string
	if !status.CreatedAt.IsZero() {
		parts = append(parts, status.CreatedAt.Local().Format(dateLayout))
	}
	parts = append(parts,
		fmt.Sprintf("%d RT", status.RetweetCount),
		fmt.Sprintf("%d ♥", status.FavoriteCount),
	)
	if status.ReplyCount > 0 {
		parts = append(parts, fmt.Sprintf("%d replies", status.ReplyCount))
	}
	fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))

	if status.User != nil {
		if profile := status.User.ProfileURL(); profile != "" {
			name := status.User.Name
			if name == "" {
				name = "@" + status.User.ScreenName
			}
			fmt.Fprintf(sb, "%sBy: %s %s\n", indent, name, profile)
		}
	}
	if status.IsReply() && status.InReplyToScreenName != nil {
		fmt.Fprintf(sb, "%sIn reply to: @%s (%d)\n", indent, *status.InReplyToScreenName, *status.InReplyToStatusID)
	}
	if status.Place != nil {
		fmt.Fprintf(sb, "%sPlace: %s\n", indent, status.Place.FullName)
	} else if status.Coordinates != nil {
		fmt.Fprintf(sb, "%sCoordinates: %s, %s\n", indent,
			formatCoordinate(status.Coordinates.Latitude()), formatCoordinate(status.Coordinates.Longitude()))
	}

	if options.ShowEntities {
		if tags := status.Entities.HashtagTexts(); len(tags) > 0 {
			fmt.Fprintf(sb, "%sHashtags: #%s\n", indent, strings.Join(tags, ", #"))
		}
		if names := status.Entities.MentionedScreenNames(); len(names) > 0 {
			fmt.Fprintf(sb, "%sMentions: @%s\n", indent, strings.Join(names, ", @"))
		}
		for _, m := range status.Media() {
			url := m.MediaURLHTTPS
			if best := m.VideoInfo.BestVariant(); best != nil {
				url = best.URL
			}
			fmt.Fprintf(sb, "%sMedia: %s %s\n", indent, m.Type, url)
		}
	}

	fmt.Fprintf(sb, "%s%s\n", indent, status.URL())
}

func (f *ConsoleFormatter) formatPlace(sb *strings.Builder, place *twitter.Place, isLast bool) {
	prefix, indent := branch(isLast)

	name := place.FullName
	if name == "" {
		name = place.Name
	}
	fmt.Fprintf(sb, "%s── %s [%s]\n", prefix, name, place.PlaceType)
	fmt.Fprintf(sb, "%sID: %s\n", indent, place.ID)

	if place.Country != "" || place.CountryCode != "" {
		fmt.Fprintf(sb, "%sCountry: %s (%s)\n", indent, place.Country, place.CountryCode)
	}
	if lng, lat, ok := place.BoundingBox.Center(); ok {
		fmt.Fprintf(sb, "%sCenter: %s, %s\n", indent, formatCoordinate(lat), formatCoordinate(lng))
	}
	if len(place.ContainedWithin) > 0 {
		names := make([]string, 0, len(place.ContainedWithin))
		for _, parent := range place.ContainedWithin {
			names = append(names, parent.FullName)
		}
		fmt.Fprintf(sb, "%sWithin: %s\n", indent, strings.Join(names, ", "))
	}
}

// branch returns the tree prefix for an item and the indent for its lines
func branch(isLast bool) (string, string) {
	if isLast {
		return "╰", "    "
	}
	return "├", "│   "
}

func formatCoordinate(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
