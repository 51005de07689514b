package tui

// diceFaces maps each face value (1-6) to its pip art. Face value = slot
// index + 1, so the die doubles as the task-number display during a roll.
var diceFaces = map[int]string{
	1: "┌─────────┐\n" +
		"│         │\n" +
		"│    ●    │\n" +
		"│         │\n" +
		"└─────────┘",
	2: "┌─────────┐\n" +
		"│  ●      │\n" +
		"│         │\n" +
		"│      ●  │\n" +
		"└─────────┘",
	3: "┌─────────┐\n" +
		"│  ●      │\n" +
		"│    ●    │\n" +
		"│      ●  │\n" +
		"└─────────┘",
	4: "┌─────────┐\n" +
		"│  ●   ●  │\n" +
		"│         │\n" +
		"│  ●   ●  │\n" +
		"└─────────┘",
	5: "┌─────────┐\n" +
		"│  ●   ●  │\n" +
		"│    ●    │\n" +
		"│  ●   ●  │\n" +
		"└─────────┘",
	6: "┌─────────┐\n" +
		"│  ●   ●  │\n" +
		"│  ●   ●  │\n" +
		"│  ●   ●  │\n" +
		"└─────────┘",
}

// diceFace returns the pip art for a face value, defaulting to 1 for
// anything out of range.
func diceFace(value int) string {
	if face, ok := diceFaces[value]; ok {
		return face
	}
	return diceFaces[1]
}
