package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/twitterctl/twitter"
)

// Format is an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses an output format name. An empty name is text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}

// Printer writes API results to out in the selected format
type Printer struct {
	out     io.Writer
	format  Format
	options Options
	console *ConsoleFormatter
}

// NewPrinter creates a printer. Options only affect the text format.
func NewPrinter(out io.Writer, format Format, options Options) *Printer {
	return &Printer{
		out:     out,
		format:  format,
		options: options,
		console: NewConsoleFormatter(),
	}
}

// PrintTimeline writes a list of statuses
func (p *Printer) PrintTimeline(statuses []*twitter.StatusMessage) error {
	if p.format == FormatText {
		return p.writeText(p.console.FormatTimeline(statuses, p.options))
	}
	if statuses == nil {
		statuses = []*twitter.StatusMessage{}
	}
	return p.encode(statuses)
}

// PrintStatus writes a single status
func (p *Printer) PrintStatus(status *twitter.StatusMessage) error {
	if p.format == FormatText {
		return p.writeText(p.console.FormatStatus(status, p.options))
	}
	return p.encode(status)
}

// PrintPlaces writes the places of a reverse geocode result
func (p *Printer) PrintPlaces(results *twitter.ReverseGeocodeResults) error {
	if p.format == FormatText {
		return p.writeText(p.console.FormatPlaces(results.Places()))
	}
	return p.encode(results)
}

// PrintPlace writes a single place
func (p *Printer) PrintPlace(place *twitter.Place) error {
	if p.format == FormatText {
		return p.writeText(p.console.FormatPlace(place))
	}
	return p.encode(place)
}

// PrintPresetMatches writes per preset match counts, sorted by name
func (p *Printer) PrintPresetMatches(matches map[string][]*twitter.StatusMessage, total int) error {
	summary := make([]PresetMatch, 0, len(matches))
	for _, name := range slices.Sorted(maps.Keys(matches)) {
		summary = append(summary, PresetMatch{Name: name, Matched: len(matches[name])})
	}

	if p.format == FormatText {
		return p.writeText(p.console.FormatPresetMatches(summary, total))
	}
	return p.encode(summary)
}

func (p *Printer) writeText(s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(p.out, s)
	return err
}

func (p *Printer) encode(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch p.format {
	case FormatJSON:
		data = append(data, '\n')
	case FormatYAML:
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, p.format)
	}

	_, err = p.out.Write(data)
	return err
}

// jsonToYAML re-encodes JSON as block style YAML. Going through the JSON
// encoding keeps the API field names and their order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert output to yaml: %w", err)
	}
	resetStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resetStyle drops the flow and quoting styles inherited from JSON
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}
