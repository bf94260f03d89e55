package dropdown

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas is a single-channel glyph grid covering printable ASCII.
// Each glyph occupies one CellW x CellH cell, Cols cells per row.
type FontAtlas struct {
	Image        *image.Alpha
	CellW, CellH int
	Cols         int
	First, Last  rune
}

const (
	atlasFirst = ' '
	atlasLast  = '~'
	atlasCols  = 16
)

var (
	builtinOnce  sync.Once
	builtinAtlas *FontAtlas
)

// BuiltinFont returns the atlas rasterised from the 7x13 basic font.
func BuiltinFont() *FontAtlas {
	builtinOnce.Do(func() {
		builtinAtlas = NewFontAtlas(basicfont.Face7x13, 7, 13, 11)
	})
	return builtinAtlas
}

// NewFontAtlas rasterises the printable ASCII glyphs of face into a grid of
// cellW x cellH cells, with the baseline ascent pixels below each cell top.
func NewFontAtlas(face font.Face, cellW, cellH, ascent int) *FontAtlas {
	n := int(atlasLast-atlasFirst) + 1
	rows := (n + atlasCols - 1) / atlasCols
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, rows*cellH))

	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := atlasFirst; r <= atlasLast; r++ {
		i := int(r - atlasFirst)
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*cellW, row*cellH+ascent)
		d.DrawString(string(r))
	}

	return &FontAtlas{
		Image: img,
		CellW: cellW,
		CellH: cellH,
		Cols:  atlasCols,
		First: atlasFirst,
		Last:  atlasLast,
	}
}

// Has reports whether r has a cell in the atlas.
func (a *FontAtlas) Has(r rune) bool { return r >= a.First && r <= a.Last }

// UV returns the normalised texture coordinates of r's cell. Runes outside
// the atlas map to '?'.
func (a *FontAtlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if !a.Has(r) {
		r = '?'
	}
	i := int(r - a.First)
	col, row := i%a.Cols, i/a.Cols

	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1
}
