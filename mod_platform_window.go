package orbfield

import (
	"reflect"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState wraps the single shared GLFW window. No GL context is created;
// the window is only an event source (pointer moves, clicks, resize) and a
// cursor target for the orb system.
type WindowState struct {
	windowGlfw     *glfw.Window
	handCursor     *glfw.Cursor
	arrowCursor    *glfw.Cursor
	callbacksBound bool
}

// PlatformWindowModule provides a shared WindowState resource and the system
// that pumps its events into the orb manager each tick.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Orbfield"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; !ok {
		app.addResources(createWindowState(m.Width, m.Height, m.Title))
	}

	app.UseSystem(
		System(windowSystem).
			InStage(PreUpdate),
	)
}

func createWindowState(width, height int, title string) *WindowState {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:  window,
		handCursor:  glfw.CreateStandardCursor(glfw.HandCursor),
		arrowCursor: glfw.CreateStandardCursor(glfw.ArrowCursor),
	}
}

// windowSystem delivers pointer events to the orb manager, mirrors the
// window size into the viewer, and reflects the hover-cursor signal.
func windowSystem(ws *WindowState, viewer *Viewer, mgr *OrbManager, cmd *Commands) {
	if !ws.callbacksBound {
		ws.windowGlfw.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
			mgr.PointerMoved(x, y)
		})
		ws.windowGlfw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
			if button == glfw.MouseButtonLeft && action == glfw.Press {
				x, y := w.GetCursorPos()
				mgr.Clicked(x, y)
			}
		})
		ws.callbacksBound = true
	}

	glfw.PollEvents()

	viewer.Width, viewer.Height = ws.windowGlfw.GetSize()

	if mgr.CursorHover {
		ws.windowGlfw.SetCursor(ws.handCursor)
	} else {
		ws.windowGlfw.SetCursor(ws.arrowCursor)
	}

	if ws.windowGlfw.ShouldClose() {
		cmd.Quit()
	}
}
