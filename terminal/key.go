package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyCtrlC

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)
