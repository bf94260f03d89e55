package dropdown

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Widget is anything that can add itself to a frame.
type Widget interface {
	Draw(dl *DrawList)
	DrawOverlay(dl *DrawList)
}

// RenderFrame draws widgets into a pooled DrawList and hands it to r.
// Every widget's base layer is drawn before any overlay.
func RenderFrame(r Renderer, widgets ...Widget) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTextureID = r.FontTextureID()
	for _, w := range widgets {
		w.Draw(dl)
	}
	for _, w := range widgets {
		w.DrawOverlay(dl)
	}
	dl.Finalize()
	return r.Render(dl)
}
