package dropdown

import "github.com/imdario/mergo"

// Style defines the visual appearance of a dropdown.
// Zero fields are filled from DefaultStyle when a style is applied.
type Style struct {
	// Text
	TextColor        uint32
	PlaceholderColor uint32

	// Trigger button
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonOpenColor    uint32
	BorderColor        uint32
	ArrowColor         uint32

	// Floating menu
	MenuBgColor       uint32
	MenuBorderColor   uint32
	SelectedBgColor   uint32
	SelectedTextColor uint32
	FocusedBgColor    uint32
	FocusColor        uint32 // Outline around the focused trigger or item

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ButtonPadding float32
	ItemPadding   float32
	ItemSpacing   float32
	ArrowSize     float32
	MenuGap       float32
	MaxMenuHeight float32
	BorderSize    float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:        ColorWhite,
		PlaceholderColor: ColorGray,

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonOpenColor:    RGBA(90, 90, 90, 255),
		BorderColor:        RGBA(100, 100, 100, 255),
		ArrowColor:         RGBA(180, 180, 180, 255),

		MenuBgColor:       RGBA(25, 25, 25, 250),
		MenuBorderColor:   RGBA(100, 100, 100, 255),
		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		FocusedBgColor:    RGBA(60, 60, 60, 255),
		FocusColor:        ColorCyan,

		FontScale:     1.0,
		CharWidth:     7,
		CharHeight:    13,
		ButtonPadding: 6,
		ItemPadding:   4,
		ItemSpacing:   4,
		ArrowSize:     8,
		MenuGap:       2,
		MaxMenuHeight: 200,
		BorderSize:    1,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := Style{
		TextColor:        ColorWhite,
		PlaceholderColor: RGBA(128, 128, 128, 255),

		ButtonColor:        RGBA(40, 40, 40, 255),
		ButtonHoveredColor: RGBA(60, 80, 100, 255),
		ButtonOpenColor:    RGBA(0, 150, 200, 255),
		BorderColor:        RGBA(100, 100, 100, 255),
		ArrowColor:         RGBA(255, 200, 0, 255),

		MenuBgColor:       RGBA(0, 0, 0, 230),
		MenuBorderColor:   RGBA(0, 60, 90, 255),
		SelectedBgColor:   RGBA(0, 100, 150, 255),
		SelectedTextColor: RGBA(255, 200, 0, 255),
		FocusedBgColor:    RGBA(30, 50, 70, 255),
		FocusColor:        RGBA(255, 200, 0, 255),

		FontScale: 1.5,
	}
	return MergeStyle(s)
}

// MergeStyle fills every zero field of s from DefaultStyle.
func MergeStyle(s Style) Style {
	if err := mergo.Merge(&s, DefaultStyle()); err != nil {
		traceLog.WithError(err).Warn("style merge failed, using defaults")
		return DefaultStyle()
	}
	return s
}

// lineHeight returns the height of one line of text.
func (s Style) lineHeight() float32 {
	return s.CharHeight * s.FontScale
}
