package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
)

// Format represents command output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates format values.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", v)
	}
}

// coordinateView omits non-finite degrees, which JSON cannot carry. Text
// always has the full rendering.
type coordinateView struct {
	Latitude    *float64 `json:"latitude" yaml:"latitude"`
	Longitude   *float64 `json:"longitude" yaml:"longitude"`
	VersionCode int32    `json:"version_code" yaml:"version_code"`
	Text        string   `json:"text" yaml:"text"`
	Hash        int32    `json:"hash" yaml:"hash"`
}

type encodeView struct {
	Coordinate coordinateView `json:"coordinate" yaml:"coordinate"`
	Encoding   string         `json:"encoding" yaml:"encoding"`
	Payload    string         `json:"payload" yaml:"payload"`
}

type versionView struct {
	Version     string `json:"version" yaml:"version"`
	VersionCode int32  `json:"version_code" yaml:"version_code"`
}

func newCoordinateView(l valueobject.LatLng) coordinateView {
	return coordinateView{
		Latitude:    finite(l.Latitude()),
		Longitude:   finite(l.Longitude()),
		VersionCode: l.VersionCode(),
		Text:        l.String(),
		Hash:        l.HashCode(),
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// render writes v in the requested format; text is used verbatim for
// FormatText.
func render(w io.Writer, format Format, v any, text string) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = io.WriteString(w, string(out))
		return err
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
