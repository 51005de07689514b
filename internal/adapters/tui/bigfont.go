package tui

import (
	"fmt"
	"strings"
)

// clockGlyphs maps each digit and the colon to a 5-line block
// representation. Digits are 4 cells wide, the colon 1.
var clockGlyphs = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"   █",
		"   █",
		"   █",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// renderClock renders remaining seconds as a big MM:SS block.
func renderClock(remainingSeconds int) string {
	text := fmt.Sprintf("%02d:%02d", remainingSeconds/60, remainingSeconds%60)

	var rows [5]strings.Builder
	for i, ch := range text {
		glyph, ok := clockGlyphs[ch]
		if !ok {
			continue
		}
		for row := 0; row < 5; row++ {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(glyph[row])
		}
	}

	lines := make([]string, 5)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
