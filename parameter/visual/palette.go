package visual

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/abyss/terminal"
)

// GlowLayer is a palette color carrying its own base opacity
type GlowLayer struct {
	Color terminal.RGB
	Alpha float64
}

// Palette is one named color scheme for every drawn element
type Palette struct {
	Name     string
	Tentacle terminal.RGB
	Glow     terminal.RGB

	// Orb glow stops from center outward
	OrbInner GlowLayer
	OrbMid   GlowLayer
	OrbOuter GlowLayer

	BackgroundTop    terminal.RGB
	BackgroundBottom terminal.RGB
	Star             terminal.RGB

	BridgeInner terminal.RGB
	BridgeOuter terminal.RGB

	Ripple terminal.RGB
}

// Palettes is the fixed cycle order, index wraps in both directions
var Palettes = []Palette{
	{
		Name:             "Neon Tide",
		Tentacle:         terminal.RGB{R: 0, G: 200, B: 255},
		Glow:             terminal.RGB{R: 0, G: 150, B: 255},
		OrbInner:         GlowLayer{terminal.RGB{R: 0, G: 190, B: 255}, 1.0},
		OrbMid:           GlowLayer{terminal.RGB{R: 0, G: 120, B: 245}, 0.8},
		OrbOuter:         GlowLayer{terminal.RGB{R: 0, G: 40, B: 110}, 0.0},
		BackgroundTop:    hex("#020916"),
		BackgroundBottom: hex("#000a14"),
		Star:             terminal.RGB{R: 120, G: 200, B: 255},
		BridgeInner:      terminal.RGB{R: 120, G: 225, B: 255},
		BridgeOuter:      terminal.RGB{R: 20, G: 140, B: 255},
		Ripple:           terminal.RGB{R: 0, G: 190, B: 255},
	},
	{
		Name:             "Solar Bloom",
		Tentacle:         terminal.RGB{R: 255, G: 150, B: 40},
		Glow:             terminal.RGB{R: 255, G: 80, B: 20},
		OrbInner:         GlowLayer{terminal.RGB{R: 255, G: 180, B: 70}, 1.0},
		OrbMid:           GlowLayer{terminal.RGB{R: 255, G: 90, B: 50}, 0.75},
		OrbOuter:         GlowLayer{terminal.RGB{R: 120, G: 30, B: 0}, 0.0},
		BackgroundTop:    hex("#1a0524"),
		BackgroundBottom: hex("#140310"),
		Star:             terminal.RGB{R: 255, G: 160, B: 90},
		BridgeInner:      terminal.RGB{R: 255, G: 200, B: 120},
		BridgeOuter:      terminal.RGB{R: 255, G: 90, B: 40},
		Ripple:           terminal.RGB{R: 255, G: 140, B: 70},
	},
	{
		Name:             "Abyss Warden",
		Tentacle:         terminal.RGB{R: 120, G: 90, B: 255},
		Glow:             terminal.RGB{R: 80, G: 60, B: 220},
		OrbInner:         GlowLayer{terminal.RGB{R: 190, G: 160, B: 255}, 1.0},
		OrbMid:           GlowLayer{terminal.RGB{R: 120, G: 90, B: 255}, 0.78},
		OrbOuter:         GlowLayer{terminal.RGB{R: 20, G: 0, B: 60}, 0.0},
		BackgroundTop:    hex("#06011a"),
		BackgroundBottom: hex("#04010f"),
		Star:             terminal.RGB{R: 160, G: 130, B: 255},
		BridgeInner:      terminal.RGB{R: 210, G: 190, B: 255},
		BridgeOuter:      terminal.RGB{R: 110, G: 80, B: 250},
		Ripple:           terminal.RGB{R: 170, G: 140, B: 255},
	},
}

// PaletteAt returns the palette for any index, wrapping negatives
func PaletteAt(index int) *Palette {
	n := len(Palettes)
	i := index % n
	if i < 0 {
		i += n
	}
	return &Palettes[i]
}

// ToColorful converts a terminal color for perceptual blending
func ToColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful clamps a blended color back to terminal space
func FromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

func hex(s string) terminal.RGB {
	return FromColorful(colorful.MustParseHex(s))
}

// Palette-independent UI colors
var (
	RgbHUDPanel = terminal.RGB{R: 10, G: 18, B: 42}
	RgbHUDTitle = terminal.RGB{R: 255, G: 255, B: 255}
)
