package animation

// rainbowColors is the fixed palette a roll cycles through, one hue per
// frame. Catppuccin Macchiato accents.
var rainbowColors = [...]string{
	"#ed8796",
	"#f5a97f",
	"#eed49f",
	"#a6da95",
	"#8aadf4",
	"#c6a0f6",
}

// RainbowColorAt returns the palette color for the given frame offset.
// Safe for any offset, including negative.
func RainbowColorAt(offset int) string {
	i := offset % len(rainbowColors)
	if i < 0 {
		i += len(rainbowColors)
	}
	return rainbowColors[i]
}
