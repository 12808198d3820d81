/*
Package ui implements the interactive widget layer of a graphics-editor
front end: an immediate-mode GUI with a dedicated Context type, built
around a floating overlay and menu-navigation subsystem shared by every
dropdown, popover, context menu and submenu in the application.

# Overview

The UI is rebuilt every frame. Widgets return interaction results
directly instead of registering callbacks, and transient widget state
(open overlays, highlight paths, scroll offsets) lives in frame-keyed
stores that evict themselves when a widget stops being drawn.

Floating content goes through a two-phase lifecycle: on the frame an
overlay opens it is laid out invisibly to measure its natural size, and
from the next frame on it is placed against its anchor, flipped and
clamped to stay inside the workspace, and drawn to the foreground draw
list above all regular content.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	gui := ui.New(renderer, ui.WithStyle(ui.EditorStyle()))

	// Frame loop
	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx := gui.Begin(input, ui.Vec2{X: 1920, Y: 1080}, deltaTime)
	    ctx.SetWorkspaceBounds(ui.Rect{X: 0, Y: 24, W: 1920, H: 1056})

	    ctx.MenuBar("main-menu", menuItems)
	    if entry, changed := ctx.Dropdown("Font", fontSections, ui.Searchable()); changed {
	        apply(entry)
	    }

	    gui.End()
	    window.SwapBuffers()
	}

# Keyboard Navigation Reference

All open menus share one navigation model. Command menus (dropdowns,
context menus, menu-bar menus) wrap at the ends; interactive pickers
opened with Interactive() clamp instead.

Within an open menu:

	Down Arrow       Highlight next enabled entry (wraps / clamps)
	Up Arrow         Highlight previous enabled entry (wraps / clamps)
	Home             Highlight first enabled entry
	End              Highlight last enabled entry
	Right Arrow      Open highlighted submenu, highlight its first entry
	Left Arrow       Close the deepest submenu only
	Enter / Space    Commit the highlighted entry, close the whole chain
	Escape           Close the deepest open menu only
	Type characters  Type-ahead jump (buffer resets after a pause)

Disabled entries are skipped by all of the above and never commit.

# Dismissal Reference

Open overlays close themselves through a shared dispatcher:

	Click outside    Closes the overlay and swallows the click
	Pointer stray    Closes menus when the pointer moves far enough
	                 away from the overlay subtree (WithStrayDistance)
	Escape           Routed to the deepest overlay only
	Sibling hover    Hovering another spawner in the same group hands
	                 the open state over without a click (menu bars)

Dialogs opt out of pointer dismissal with KeepOpen() but still respond
to Escape.

# Complete Component List

## Text Components

	ctx.Text(text string)
	    Draws text at the current cursor position.

	ctx.TextColored(text string, color uint32)
	    Draws text with a specific color.

	ctx.TextDisabled(text string)
	    Draws text with the disabled color.

## Basic Widgets

	ctx.Button(label string, opts ...Option) bool
	    Clickable button. Returns true when clicked.
	    Options: WithID, WithDisabled, WithWidth, WithTooltip

	ctx.Checkbox(label string, value *bool, opts ...Option) bool
	    Checkbox with label. Returns true when toggled.

	ctx.Separator()
	    Horizontal separator line.

	ctx.Tooltip(anchor Rect, text string)
	    Floating tooltip placed against an anchor rectangle.

## Menu Spawners

	ctx.Dropdown(label string, sections []Section, opts ...Option) (*Entry, bool)
	    Labeled dropdown over an entry tree. Returns the active entry
	    and whether it changed this frame.
	    Options: WithID, WithMinWidth, WithMaxHeight, Searchable,
	             Interactive, WithActive, WithIcons, WithDisabled

	ctx.MenuBar(id string, items []MenuBarItem, opts ...Option)
	    Horizontal menu bar. Open state hands off between items on
	    hover.

	ctx.ContextMenu(id string, sections []Section, trigger Rect, opts ...Option) *Entry
	    Right-click menu anchored at the pointer within a trigger
	    region. Returns the committed entry, if any.

	ctx.PopoverButton(label string, opts ...Option) func(func())
	    Button that opens a tailed popover holding arbitrary content.
	    Options: WithDirection, WithEdgeMargin

	ctx.Dialog(title string, open *bool, opts ...Option) func(func())
	    Centered modal surface. Ignores outside clicks; Escape or
	    setting *open to false closes it.

## Layout Components

	ctx.VStack(opts ...LayoutOption) func(func())
	    Vertical container (items stack top to bottom).

	ctx.HStack(opts ...LayoutOption) func(func())
	    Horizontal container (items stack left to right).

# Widget Options Reference

	WithID(id string)              Explicit ID (use in loops)
	WithDisabled(disabled bool)    Disable widget interaction
	WithWidth(w float32)           Fixed widget width
	WithMinWidth(w float32)        Lower bound on spawner width
	WithHeight(h float32)          Fixed widget height
	WithDirection(dir Direction)   Preferred overlay direction
	WithMenuType(t MenuType)       Overlay surface kind
	WithEdgeMargin(px float32)     Workspace clamp margin
	WithStrayDistance(px float32)  Pointer-stray dismiss radius
	WithMaxHeight(h float32)       Cap menu height (virtual scroll)
	Searchable()                   Type-to-filter entry list
	Interactive()                  Picker semantics (clamp, restore)
	WithActive(e *Entry)           Seed a picker's initial choice
	WithIcons()                    Reserve an icon column
	WithTooltip(text string)       Hover tooltip
	KeepOpen()                     Ignore pointer dismissal

# Layout Options Reference

	Gap(pixels float32)            Space between children
	Padding(pixels float32)        Inner padding on all sides
	PaddingXY(x, y float32)        Separate X/Y padding
	Width(w float32)               Fixed width
	Height(h float32)              Fixed height

# Entry Trees

Menus are declared as []Section, each Section a slice of *Entry.
Sections render with separators between them. Entries carry a label,
optional icon and Shortcut, Disabled and Checkbox/Checked flags, an
Action func() to run on commit, and Children []Section for submenus.

# Performance Optimizations

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Per-frame text measurement cache
  - Virtual windowing for long entry lists (only visible rows draw)
  - Frame-keyed state stores evict state for widgets no longer drawn
*/
package ui
