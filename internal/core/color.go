package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer and to RGB
// values in the window renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
)

// RGB is a plain 8-bit color triple, used for wall fills from config.
type RGB struct {
	R, G, B uint8
}

// palette holds approximate RGB values for the named colors.
var palette = []struct {
	c   Color
	rgb RGB
}{
	{ColorRed, RGB{205, 0, 0}},
	{ColorGreen, RGB{0, 205, 0}},
	{ColorYellow, RGB{205, 205, 0}},
	{ColorBlue, RGB{0, 0, 238}},
	{ColorMagenta, RGB{205, 0, 205}},
	{ColorCyan, RGB{0, 205, 205}},
	{ColorWhite, RGB{229, 229, 229}},
	{ColorBrightRed, RGB{255, 0, 0}},
	{ColorBrightGreen, RGB{0, 255, 0}},
	{ColorBrightYellow, RGB{255, 255, 0}},
	{ColorBrightBlue, RGB{92, 92, 255}},
	{ColorBrightMagenta, RGB{255, 0, 255}},
	{ColorBrightCyan, RGB{0, 255, 255}},
	{ColorBrightWhite, RGB{255, 255, 255}},
	{ColorOrange, RGB{255, 135, 0}},
	{ColorGray, RGB{128, 128, 128}},
	{ColorGold, RGB{255, 215, 0}},
}

// Nearest returns the named color closest to c.
func (c RGB) Nearest() Color {
	best, bestDist := ColorDefault, -1
	for _, p := range palette {
		dr := int(c.R) - int(p.rgb.R)
		dg := int(c.G) - int(p.rgb.G)
		db := int(c.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}

// RGBOf returns the approximate RGB value of a named color.
// ColorDefault maps to white.
func RGBOf(c Color) RGB {
	for _, p := range palette {
		if p.c == c {
			return p.rgb
		}
	}
	return RGB{229, 229, 229}
}
