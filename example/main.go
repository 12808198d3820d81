// Example demonstrates the overlay widget set: a menu bar with nested
// submenus, a searchable dropdown, a popover, a modal dialog, and a
// right-click context menu.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glyphstudio/ui"
	"github.com/glyphstudio/ui/backend/opengl"
)

const (
	windowWidth  = 960
	windowHeight = 640
	windowTitle  = "ui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appState holds the document-side state the menus act on.
type appState struct {
	gridVisible bool
	rulerShown  bool
	snapping    bool
	fontName    string
	status      string
	aboutOpen   bool
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
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
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	gui := ui.New(renderer, ui.WithStyle(ui.EditorStyle()))

	app := &appState{
		gridVisible: true,
		fontName:    "Inter",
		status:      "ready",
	}

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.13, 0.13, 0.15, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := ui.Vec2{X: float32(w), Y: float32(h)}
		ctx := gui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)
		ctx.SetWorkspaceBounds(ui.Rect{W: displaySize.X, H: displaySize.Y})

		drawFrame(ctx, app, displaySize)

		if err := gui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func drawFrame(ctx *ui.Context, app *appState, displaySize ui.Vec2) {
	ctx.MenuBar("main-menu", menuBarItems(app))

	ctx.SetCursorPos(ui.Vec2{X: 16, Y: 40})
	ctx.VStack(ui.Gap(10))(func() {
		ctx.Text("Right-click the canvas area for a context menu.")
		ctx.Spacing(4)

		ctx.HStack(ui.Gap(12))(func() {
			if entry, changed := ctx.Dropdown("Font", fontSections(), ui.Searchable(), ui.WithID("font-picker"), ui.WithMinWidth(180), ui.WithMaxHeight(320)); changed {
				app.fontName = entry.Label
				app.status = "font: " + entry.Label
			}

			ctx.PopoverButton("Export...", ui.WithID("export-popover"))(func() {
				ctx.Text("Export the current document")
				ctx.Spacing(4)
				if ctx.Button("PNG", ui.WithWidth(120)) {
					app.status = "exported PNG"
				}
				if ctx.Button("SVG", ui.WithWidth(120)) {
					app.status = "exported SVG"
				}
			})

			if ctx.Button("About", ui.WithTooltip("Version and license info")) {
				app.aboutOpen = true
			}
		})

		ctx.Spacing(8)
		ctx.Text("Active font: " + app.fontName)
		ctx.TextDisabled("Status: " + app.status)
	})

	// The rest of the window doubles as the canvas. A right click
	// anywhere below the toolbar opens the layer context menu.
	canvas := ui.Rect{Y: 160, W: displaySize.X, H: displaySize.Y - 160}
	if entry := ctx.ContextMenu("canvas-menu", canvasSections(app), canvas); entry != nil {
		app.status = "context: " + entry.Label
	}

	ctx.Dialog("About", &app.aboutOpen)(func() {
		ctx.Text("Overlay widget demo")
		ctx.Spacing(4)
		ctx.TextDisabled("Clicking outside does not close this dialog;")
		ctx.TextDisabled("press Escape or the button below.")
		ctx.Spacing(8)
		if ctx.Button("Close", ui.WithWidth(100)) {
			app.aboutOpen = false
		}
	})
}

func menuBarItems(app *appState) []ui.MenuBarItem {
	setStatus := func(s string) func() {
		return func() { app.status = s }
	}

	file := []ui.Section{
		{
			{Label: "New Document", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "N"}}, Action: setStatus("new document")},
			{Label: "Open...", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "O"}}, Action: setStatus("open")},
			{Label: "Open Recent", Children: []ui.Section{
				{
					{Label: "logo.glyph", Action: setStatus("open logo.glyph")},
					{Label: "poster.glyph", Action: setStatus("open poster.glyph")},
				},
				{
					{Label: "Clear List", Action: setStatus("recent cleared")},
				},
			}},
		},
		{
			{Label: "Save", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "S"}}, Action: setStatus("saved")},
			{Label: "Save As...", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "Shift", "S"}}, Action: setStatus("saved as")},
		},
		{
			{Label: "Close", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "W"}}, Action: setStatus("closed")},
		},
	}

	edit := []ui.Section{
		{
			{Label: "Undo", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "Z"}}, Action: setStatus("undo")},
			{Label: "Redo", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "Shift", "Z"}}, Action: setStatus("redo")},
		},
		{
			{Label: "Cut", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "X"}}, Disabled: true},
			{Label: "Copy", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "C"}}, Disabled: true},
			{Label: "Paste", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "V"}, RequiresLock: true}, Action: setStatus("paste")},
		},
	}

	view := []ui.Section{
		{
			{Label: "Show Grid", Checkbox: true, Checked: app.gridVisible, Action: func() { app.gridVisible = !app.gridVisible }},
			{Label: "Show Rulers", Checkbox: true, Checked: app.rulerShown, Action: func() { app.rulerShown = !app.rulerShown }},
			{Label: "Snapping", Checkbox: true, Checked: app.snapping, Action: func() { app.snapping = !app.snapping }},
		},
		{
			{Label: "Zoom", Children: []ui.Section{
				{
					{Label: "Zoom In", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "+"}}, Action: setStatus("zoom in")},
					{Label: "Zoom Out", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "-"}}, Action: setStatus("zoom out")},
					{Label: "Fit", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "0"}}, Action: setStatus("zoom fit")},
				},
			}},
		},
	}

	return []ui.MenuBarItem{
		{Label: "File", Sections: file},
		{Label: "Edit", Sections: edit},
		{Label: "View", Sections: view},
	}
}

func canvasSections(app *appState) []ui.Section {
	return []ui.Section{
		{
			{Label: "Duplicate Layer", Shortcut: &ui.Shortcut{Keys: []string{"Ctrl", "D"}}},
			{Label: "Delete Layer", Shortcut: &ui.Shortcut{Keys: []string{"Del"}}},
		},
		{
			{Label: "Arrange", Children: []ui.Section{
				{
					{Label: "Bring to Front"},
					{Label: "Raise"},
					{Label: "Lower"},
					{Label: "Send to Back"},
				},
			}},
			{Label: "Lock Layer", Checkbox: true},
		},
	}
}

// fontSections returns a long flat list so the dropdown exercises
// scrolling and fuzzy search.
func fontSections() []ui.Section {
	names := []string{
		"Archivo", "Arimo", "Barlow", "Bitter", "Cabin", "Caveat",
		"Chivo", "Cormorant", "DM Sans", "Dosis", "EB Garamond",
		"Exo 2", "Figtree", "Fira Code", "Fira Sans", "Heebo",
		"Hind", "IBM Plex Mono", "IBM Plex Sans", "Inconsolata",
		"Inter", "Josefin Sans", "Kanit", "Karla", "Lato", "Lexend",
		"Libre Baskerville", "Lora", "Manrope", "Merriweather",
		"Montserrat", "Mukta", "Mulish", "Noto Sans", "Noto Serif",
		"Nunito", "Open Sans", "Oswald", "Outfit", "Oxygen",
		"Playfair Display", "Poppins", "PT Sans", "PT Serif",
		"Quicksand", "Raleway", "Roboto", "Roboto Mono",
		"Roboto Slab", "Rubik", "Source Code Pro", "Source Sans 3",
		"Space Grotesk", "Space Mono", "Spectral", "Titillium Web",
		"Ubuntu", "Work Sans", "Zilla Slab",
	}
	sec := make(ui.Section, 0, len(names))
	for _, n := range names {
		sec = append(sec, &ui.Entry{Label: n, Value: n})
	}
	return []ui.Section{sec}
}
