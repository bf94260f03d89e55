// Example opens a window with two dropdowns driven by a YAML config.
//
// Prerequisites:
//
//	devbox shell                                     # Go + OpenGL/X11 headers
//	go run ./example/ --config example/config.yaml   # run this example
//
// Tab moves between the dropdowns; arrows, Space, Enter and Escape work
// inside an open menu.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()
	var configPath string

	cmd := &cobra.Command{
		Use:           "example",
		Short:         "Show dropdown widgets in a GLFW window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.String("lang", "", "placeholder language (BCP 47)")
	f.BoolP("verbose", "v", false, "trace widget events")
	f.String("log-file", "", "write trace logs to a rotating file")

	_ = v.BindPFlag("language", f.Lookup("lang"))
	_ = v.BindPFlag("verbose", f.Lookup("verbose"))
	_ = v.BindPFlag("log_file", f.Lookup("log-file"))
	return cmd
}

func setupLogging(cfg Config) func() {
	dropdown.SetVerbose(cfg.Verbose)
	if cfg.LogFile == "" {
		return func() {}
	}
	out := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	dropdown.SetTraceOutput(out)
	return func() {
		dropdown.SetTraceOutput(os.Stderr)
		_ = out.Close()
	}
}

// newWidgets builds the configured dropdown and a fixed size picker.
func newWidgets(cfg Config, log *logrus.Entry) (*dropdown.Dropdown[any], *dropdown.Dropdown[string]) {
	opts := []dropdown.Option[any]{
		dropdown.WithOptions(cfg.Options...),
		dropdown.WithLanguage[any](cfg.Tag()),
		dropdown.WithPlaceholder[any](cfg.Placeholder),
		dropdown.WithLabelField[any](cfg.LabelField),
		dropdown.WithStyle[any](dropdown.GTAStyle()),
		dropdown.WithOnChange(func(opt any, index int) {
			log.WithField("index", index).Infof("selected %v", opt)
		}),
	}
	if cfg.Default != "" {
		labels := dropdown.ResolveLabelStrategy(&dropdown.Config[any]{LabelField: cfg.LabelField})
		for _, o := range cfg.Options {
			if labels.Label(o) == cfg.Default {
				opts = append(opts, dropdown.WithDefault[any](o))
				break
			}
		}
	}
	picker := dropdown.New(opts...)

	size := dropdown.NewFromConfig(dropdown.Config[string]{
		Options:  []string{"Small", "Medium", "Large"},
		Language: cfg.Tag(),
		Style:    dropdown.GTAStyle(),
		OnChange: func(s string, index int) {
			log.WithField("index", index).Infof("size %s", s)
		},
	})
	return picker, size
}

func run(cfg Config) error {
	closeLog := setupLogging(cfg)
	defer closeLog()
	log := logrus.NewEntry(dropdown.Logger()).WithField("app", "example")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("dropdown renderer: %w", err)
	}
	defer renderer.Delete()

	surface := dropdown.NewSurface(dropdown.Vec2{X: windowWidth, Y: windowHeight})
	input := opengl.NewGLFWInputAdapter(window, surface)

	colors, size := newWidgets(cfg, log)
	if err := colors.Mount(surface.Root()); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	defer colors.Unmount()
	if err := size.Mount(surface.Root()); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	defer size.Unmount()

	colors.SetBounds(dropdown.Rect{X: 40, Y: 40, W: float32(cfg.Width)})
	size.SetBounds(dropdown.Rect{X: 40, Y: 120})

	input.OnScroll = func(_, dy float32) {
		colors.Scroll(dy)
		size.Scroll(dy)
	}

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetSize()
		fbw, fbh := window.GetFramebufferSize()
		renderer.Resize(w, h)

		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := dropdown.RenderFrame(renderer, colors, size); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}
