package legend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Format is the encoding of a host chart object.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "Unknown"
	}
}

// ParseFormat maps "json", "yaml" or "yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}

type decodedSeries struct {
	name    string
	visible bool
}

func (s decodedSeries) Name() string  { return s.name }
func (s decodedSeries) Visible() bool { return s.visible }

type decodedChart []SeriesLike

func (c decodedChart) Series() []SeriesLike { return c }

// Decode reads a host chart object such as {"series": [{"name": "A",
// "visible": true}]}. Keys match exactly in both formats. A document without a
// series key is rejected with ErrInvalidInput; a null or empty series list
// decodes to an empty chart. Series without a visible field are visible.
func Decode(data []byte, format Format) (ChartLike, error) {
	var (
		doc map[string]interface{}
		err error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s chart: %v: %w", format, err, ErrInvalidInput)
	}
	if doc == nil {
		return nil, fmt.Errorf("document is not an object: %w", ErrInvalidInput)
	}

	raw, ok := doc["series"]
	if !ok {
		return nil, fmt.Errorf("document has no series: %w", ErrInvalidInput)
	}
	if raw == nil {
		return decodedChart{}, nil
	}
	entries, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("series is a %T, not a list: %w", raw, ErrInvalidInput)
	}

	out := make(decodedChart, 0, len(entries))
	for i, entry := range entries {
		s, err := decodeSeries(entry)
		if err != nil {
			return nil, fmt.Errorf("series %d: %v: %w", i, err, ErrInvalidInput)
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeSeries reads one series entry. JSON objects arrive as
// map[string]interface{} and yaml.v2 mappings as map[interface{}]interface{}.
func decodeSeries(entry interface{}) (decodedSeries, error) {
	var name, visible interface{}
	var hasName bool
	switch m := entry.(type) {
	case map[string]interface{}:
		name, hasName = m["name"]
		visible = m["visible"]
	case map[interface{}]interface{}:
		name, hasName = m["name"]
		visible = m["visible"]
	default:
		return decodedSeries{}, fmt.Errorf("entry is a %T, not an object", entry)
	}

	if !hasName {
		return decodedSeries{}, errors.New("no name")
	}
	s, ok := name.(string)
	if !ok {
		return decodedSeries{}, fmt.Errorf("name is a %T, not a string", name)
	}
	out := decodedSeries{name: s, visible: true}
	if visible != nil {
		v, ok := visible.(bool)
		if !ok {
			return decodedSeries{}, fmt.Errorf("visible is a %T, not a boolean", visible)
		}
		out.visible = v
	}
	return out, nil
}
