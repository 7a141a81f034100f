// Package platform owns the GLFW window and translates its events into the
// UI core's input feed.
package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tetric/muon"
)

// wheel ticks arrive in notches; the UI scrolls in pixels
const scrollStep = 30

// Window wraps a GLFW window with a current GL context.
type Window struct {
	w *glfw.Window
}

// NewWindow opens a window and makes its GL context current. Must be called
// on the main thread.
func NewWindow(title string, width, height int) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{w: win}, nil
}

// Attach routes this window's input events into ctx.
func (g *Window) Attach(ctx *muon.Context) {
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ctx.InputMouseMove(int(x), int(y))
	})
	g.w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn := translateButton(button)
		if btn == 0 {
			return
		}
		x, y := w.GetCursorPos()
		if action == glfw.Press {
			ctx.InputMouseDown(int(x), int(y), btn)
		} else if action == glfw.Release {
			ctx.InputMouseUp(int(x), int(y), btn)
		}
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		ctx.InputScroll(int(xoff*-scrollStep), int(yoff*-scrollStep))
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == 0 {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			ctx.InputKeyDown(k)
		case glfw.Release:
			ctx.InputKeyUp(k)
		}
	})
	g.w.SetCharCallback(func(_ *glfw.Window, ch rune) {
		ctx.InputText(string(ch))
	})
}

func (g *Window) PollEvents()                 { glfw.PollEvents() }
func (g *Window) SwapBuffers()                { g.w.SwapBuffers() }
func (g *Window) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *Window) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *Window) SetTitle(t string)           { g.w.SetTitle(t) }

// Terminate tears down GLFW; call after the window is done.
func (g *Window) Terminate() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateButton(b glfw.MouseButton) muon.Mouse {
	switch b {
	case glfw.MouseButtonLeft:
		return muon.MouseLeft
	case glfw.MouseButtonRight:
		return muon.MouseRight
	case glfw.MouseButtonMiddle:
		return muon.MouseMiddle
	default:
		return 0
	}
}

func translateKey(k glfw.Key) muon.Key {
	switch k {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return muon.KeyShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return muon.KeyCtrl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return muon.KeyAlt
	case glfw.KeyBackspace:
		return muon.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return muon.KeyReturn
	default:
		return 0
	}
}
