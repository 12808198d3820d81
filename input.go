package ui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the menu system cares about.
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
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Position at the previous frame, used to detect pointer-move events
	// for the stray-distance and spawner hand-off heuristics.
	prevMouseX, prevMouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame the button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame the button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame the key was pressed
	keyUp      [KeyCount]bool // True on the frame the key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Text input (Unicode characters typed this frame), used by the
	// type-ahead filter in long menus.
	InputChars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the current mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{s.MouseX, s.MouseY}
}

// MouseMoved returns true if the pointer position changed since the
// previous frame. Dismissal heuristics only run on movement, matching
// pointer-move event semantics.
func (s *InputState) MouseMoved() bool {
	return s.MouseX != s.prevMouseX || s.MouseY != s.prevMouseY
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// SwallowClick consumes the pending click for a button so that widgets
// drawn later this frame do not see it. The click-outside dismissal
// heuristic uses this to stop a dismissing press from falling through
// and immediately reopening the same spawner.
func (s *InputState) SwallowClick(button MouseButton) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseClicked[button] = false
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// ConsumeKey clears the pressed flag for a key. Menu navigators consume
// the keys they handle so that keys routed into an open menu stack do
// not also reach widgets drawn later in the frame.
func (s *InputState) ConsumeKey(key Key) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.keyPressed[key] = false
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every
// KeyRepeatInterval. Use this for held-key actions like arrow navigation.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger when a repeat interval boundary was crossed this frame.
	// Approximate, assumes ~60fps for the previous frame.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears all typed characters for this frame.
// Call this after a menu consumed them for type-ahead filtering.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
