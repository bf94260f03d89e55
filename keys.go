package dropdown

import "strings"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
}

// keyAliases maps lower-cased names, including DOM KeyboardEvent.key
// values, to keys.
var keyAliases = map[string]Key{
	"tab":        KeyTab,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"pgup":       KeyPageUp,
	"pageup":     KeyPageUp,
	"pgdn":       KeyPageDown,
	"pagedown":   KeyPageDown,
	"home":       KeyHome,
	"end":        KeyEnd,
	"ins":        KeyInsert,
	"insert":     KeyInsert,
	"del":        KeyDelete,
	"delete":     KeyDelete,
	"backspace":  KeyBackspace,
	"space":      KeySpace,
	"spacebar":   KeySpace,
	" ":          KeySpace,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"esc":        KeyEscape,
	"escape":     KeyEscape,
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// String implements fmt.Stringer.
func (k Key) String() string { return KeyName(k) }

// ParseKey looks up a key by name. Matching is case-insensitive.
func ParseKey(name string) (Key, bool) {
	if name == " " {
		return KeySpace, true
	}
	k, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
