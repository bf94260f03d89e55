/*
Package dropdown provides a single-selection dropdown widget for the
retained-mode Surface in this package, drawn through a pluggable Renderer.

# Overview

A Dropdown is a trigger button showing the selected option's label (or a
placeholder) and, while open, a floating menu listing every option. The
widget is generic over the option type:

	colors := dropdown.New(
	    dropdown.WithOptions("Red", "Green", "Blue"),
	    dropdown.WithOnChange(func(c string, i int) { apply(c) }),
	)

Options can be any type. Labels come from, in order of priority, a named
field (WithLabelField, for structs and maps), a function (WithLabelFunc),
or fmt.Sprint.

# Surface

A Surface owns a tree of Nodes, the focused node, and the process-wide key
and pointer listeners. Hosts feed it events:

	surface := dropdown.NewSurface(dropdown.Vec2{X: 800, Y: 600})
	if err := colors.Mount(surface.Root()); err != nil {
	    return err
	}
	defer colors.Unmount()

	surface.DispatchKey(dropdown.KeyEvent{Key: dropdown.KeySpace, Action: dropdown.KeyRelease})
	surface.Click(dropdown.Vec2{X: 10, Y: 10})

The backend/opengl package wires a GLFW window to a Surface.

# Keyboard

While the menu is open:

	Up / Down        Move focus (clamped, no wraparound)
	Space / Enter    Select the focused option and close
	Escape           Close, focus returns to the trigger
	Tab              Close, focus moves past the widget

On the closed trigger, Space (on release) and Enter toggle the menu.

# Rendering

Each frame, draw the widget layers and hand them to a Renderer:

	if err := dropdown.RenderFrame(renderer, colors, sizes); err != nil {
	    return err
	}

Menus are drawn in the overlay pass, above every widget's base layer.

# Logging

Widget events are traced through logrus at TraceLevel. SetVerbose(true)
enables them; SetTraceOutput redirects them.
*/
package dropdown
