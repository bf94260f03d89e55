package dropdown

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MeasureText returns the size of a single line of text in the bitmap font.
// Wide runes (CJK, emoji) occupy two cells.
func MeasureText(text string, s Style) Vec2 {
	cells := runewidth.StringWidth(text)
	return Vec2{
		X: float32(cells) * s.CharWidth * s.FontScale,
		Y: s.lineHeight(),
	}
}

// TruncateText shortens text with a trailing "..." so it fits maxWidth.
func TruncateText(text string, maxWidth float32, s Style) string {
	cell := s.CharWidth * s.FontScale
	if cell <= 0 || maxWidth <= 0 {
		return ""
	}
	maxCells := int(maxWidth / cell)
	if runewidth.StringWidth(text) <= maxCells {
		return text
	}
	return runewidth.Truncate(text, maxCells, "...")
}

// foldAccents strips combining marks so accented Latin text ("Sélectionner")
// renders with the ASCII-only bitmap font.
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// cellText expands wide runes so each output rune maps to one bitmap cell.
func cellText(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range foldAccents(text) {
		out = append(out, r)
		if runewidth.RuneWidth(r) == 2 {
			out = append(out, ' ')
		}
	}
	return out
}
