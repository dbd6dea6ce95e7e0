// Package palette assigns deterministic colors to output categories so the
// exporter and the terminal preview agree on what a district looks like.
package palette

import hsluv "github.com/hsluv/hsluv-go"

// categoryHues places each land-use category on the HSLuv hue wheel.
var categoryHues = map[string]float64{
	"residential": 35,  // warm orange
	"commercial":  265, // violet
	"industrial":  55,  // ochre
	"park":        130, // green
	"road":        0,
	"water":       240,
}

// RGB returns the 8-bit color for a category. Unknown categories get a
// neutral gray.
func RGB(category string) (uint8, uint8, uint8) {
	hue, ok := categoryHues[category]
	if !ok {
		return 128, 128, 128
	}
	sat, light := 70.0, 55.0
	switch category {
	case "road":
		sat, light = 0, 40
	case "water":
		sat, light = 80, 45
	case "park":
		light = 50
	}
	r, g, b := hsluv.HsluvToRGB(hue, sat, light)
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// Hex returns the CSS hex color for a category, for the JSON export legend.
func Hex(category string) string {
	hue, ok := categoryHues[category]
	if !ok {
		return "#808080"
	}
	return hsluv.HsluvToHex(hue, 70, 55)
}
