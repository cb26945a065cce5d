// Package lobster provides the core types shared by the lobstr generator.
package lobster

import "fmt"

// Category names of the built-in catalog, in sampling order.
const (
	CategoryBackground = "Background"
	CategoryShell      = "Shell Color"
	CategoryClaw       = "Claw Size"
	CategoryEyes       = "Eyes"
	CategoryTail       = "Tail"
	CategoryAccessory  = "Accessory"
)

// Family groups accessory styles by the anchor they are drawn from.
type Family string

const (
	FamilyNone    Family = ""        // No accessory
	FamilyHead    Family = "head"    // Hats, crowns, helmets, halo
	FamilyFace    Family = "face"    // Eyewear, monocle, eye patch
	FamilyNeck    Family = "neck"    // Bow tie, chain, scarf, bandana
	FamilyAntenna Family = "antenna" // Antennae on the head rim
	FamilySpecial Family = "special" // Legendary items
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// RGB is shorthand for building a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Scale multiplies every channel by f, truncating toward zero.
func (c Color) Scale(f float64) Color {
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Lighten adds d to every channel, saturating at 255.
func (c Color) Lighten(d int) Color {
	add := func(v uint8) uint8 {
		n := int(v) + d
		if n > 255 {
			return 255
		}
		if n < 0 {
			return 0
		}
		return uint8(n)
	}
	return Color{R: add(c.R), G: add(c.G), B: add(c.B)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Payload is the rendering data carried by an option. Which fields are
// meaningful depends on the category.
type Payload struct {
	Color  Color   `yaml:"color,omitempty" json:"color"`             // Background, Shell Color
	Scale  float64 `yaml:"scale,omitempty" json:"scale,omitempty"`   // Claw Size multiplier
	Style  string  `yaml:"style,omitempty" json:"style,omitempty"`   // Eyes, Tail, Accessory recipe tag
	Family Family  `yaml:"family,omitempty" json:"family,omitempty"` // Accessory anchor family
}

// Option is one mutually exclusive value within a category.
type Option struct {
	Name    string  `yaml:"name" json:"name"`
	Weight  float64 `yaml:"weight" json:"weight"` // Higher weight, more common
	Payload Payload `yaml:",inline" json:"payload"`
}

// Category is a named axis of variation with an ordered option list.
type Category struct {
	Name    string   `yaml:"name" json:"name"`
	Options []Option `yaml:"options" json:"options"`
}

// Traits maps a category name to the selected option name.
// A Traits value is created once per token and never mutated afterwards.
type Traits map[string]string

// Clone returns an independent copy of t.
func (t Traits) Clone() Traits {
	out := make(Traits, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Attribute is a single (category, value) pair in token metadata.
type Attribute struct {
	TraitType string `json:"trait_type" jsonschema:"description=Trait category name"`
	Value     string `json:"value" jsonschema:"description=Selected option name"`
}

// Attributes lists t in the given category order. Categories missing from t
// are skipped.
func (t Traits) Attributes(order []string) []Attribute {
	out := make([]Attribute, 0, len(order))
	for _, name := range order {
		if v, ok := t[name]; ok {
			out = append(out, Attribute{TraitType: name, Value: v})
		}
	}
	return out
}

// Entry is one generated token in a collection. Rank and Percentile are
// zero until the whole collection has been ranked.
type Entry struct {
	TokenID    int     `json:"token_id"`
	Traits     Traits  `json:"traits"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
	ImagePath  string  `json:"image_path,omitempty"`
}
