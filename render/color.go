package render

import (
	"encoding/json"
	"fmt"
)

// Color represent (R, G, B) color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// NewColor construct new color.
func NewColor(R, G, B uint8) Color {
	return Color{R: R, G: G, B: B}
}

// ParseColor parses "#RRGGBB" hex string.
func ParseColor(hex string) (Color, error) {
	var c Color
	if len(hex) != 7 || hex[0] != '#' {
		return c, fmt.Errorf("invalid color %q", hex)
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %v", hex, err)
	}
	return c, nil
}

// MustParseColor is ParseColor, which panics on error.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns "#RRGGBB" representation used by renderer.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalJSON json.Marshaller implementation.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON json.Unmarshaller implementation.
func (c *Color) UnmarshalJSON(b []byte) error {
	var hex string
	if err := json.Unmarshal(b, &hex); err != nil {
		return err
	}
	parsed, err := ParseColor(hex)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var (
	// SourceMarker color of point source marker.
	SourceMarker = MustParseColor("#2EAFA4")
)
