// Command gen renders the dropdown in a few states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured widget state.
type screenshot struct {
	name          string
	width, height int
	widget        func() *dropdown.Dropdown[string]
	bounds        dropdown.Rect
	// script drives the mounted widget into the state to capture.
	script func(s *dropdown.Surface, d *dropdown.Dropdown[string])
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("dropdown renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	surface := dropdown.NewSurface(dropdown.Vec2{X: float32(s.width), Y: float32(s.height)})
	d := s.widget()
	if err := d.Mount(surface.Root()); err != nil {
		return err
	}
	defer d.Unmount()
	d.SetBounds(s.bounds)
	if s.script != nil {
		s.script(surface, d)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := dropdown.RenderFrame(renderer, d); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	flipRows(pixels, s.width*4, s.height)

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// flipRows turns GL's bottom-up rows into image order.
func flipRows(pixels []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := pixels[y*rowLen : (y+1)*rowLen]
		bot := pixels[(rows-1-y)*rowLen : (rows-y)*rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

func openMenu(s *dropdown.Surface, d *dropdown.Dropdown[string]) {
	if n, ok := d.Trigger(); ok {
		s.Click(dropdown.Vec2{X: n.Bounds.X + 2, Y: n.Bounds.Y + 2})
	}
}

func buildScreenshots() []screenshot {
	colors := []string{"Red", "Green", "Blue"}
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	styled := func(opts ...dropdown.Option[string]) func() *dropdown.Dropdown[string] {
		return func() *dropdown.Dropdown[string] {
			return dropdown.New(append([]dropdown.Option[string]{dropdown.WithStyle[string](dropdown.GTAStyle())}, opts...)...)
		}
	}

	return []screenshot{
		{
			name: "placeholder", width: 300, height: 80,
			widget: styled(dropdown.WithOptions(colors...)),
			bounds: dropdown.Rect{X: 12, Y: 12},
		},
		{
			name: "selected", width: 300, height: 80,
			widget: styled(dropdown.WithOptions(colors...), dropdown.WithDefault("Green")),
			bounds: dropdown.Rect{X: 12, Y: 12},
		},
		{
			name: "open", width: 300, height: 200,
			widget: styled(dropdown.WithOptions(colors...), dropdown.WithDefault("Green")),
			bounds: dropdown.Rect{X: 12, Y: 12},
			script: func(s *dropdown.Surface, d *dropdown.Dropdown[string]) {
				openMenu(s, d)
				s.Press(dropdown.KeyDown)
			},
		},
		{
			name: "flipped", width: 300, height: 240,
			widget: styled(dropdown.WithOptions(colors...)),
			bounds: dropdown.Rect{X: 12, Y: 190},
			script: openMenu,
		},
		{
			name: "scrolled", width: 300, height: 320,
			widget: styled(dropdown.WithOptions(months...), dropdown.WithDefault("October")),
			bounds: dropdown.Rect{X: 12, Y: 12},
			script: openMenu,
		},
		{
			name: "localized", width: 300, height: 80,
			widget: styled(dropdown.WithOptions(colors...), dropdown.WithLanguage[string](language.French)),
			bounds: dropdown.Rect{X: 12, Y: 12},
		},
	}
}
