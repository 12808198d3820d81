package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glyphstudio/ui"
)

// GLFWInputAdapter adapts GLFW input to ui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *ui.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  ui.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *ui.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *ui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	uiKey := glfwKeyToUIKey(key)
	if uiKey == ui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(uiKey, true)
	case glfw.Release:
		a.input.SetKey(uiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	uiButton := glfwMouseButtonToUI(button)
	if uiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(uiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(uiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToUIKey maps GLFW keys to the keys the menu system routes.
func glfwKeyToUIKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyPageUp:
		return ui.KeyPageUp
	case glfw.KeyPageDown:
		return ui.KeyPageDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeySpace:
		return ui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return ui.KeyEnter
	case glfw.KeyEscape:
		return ui.KeyEscape
	default:
		return ui.KeyNone
	}
}

// glfwMouseButtonToUI maps GLFW mouse buttons to ui mouse buttons.
func glfwMouseButtonToUI(button glfw.MouseButton) ui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return ui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return ui.MouseButtonMiddle
	default:
		return -1
	}
}
