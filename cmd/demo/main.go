// The demo app: a couple of windows exercising most widgets, a log window
// with scroll-to-bottom, a popup, and a live style editor.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tetric/muon"
	"github.com/tetric/muon/backend/glrender"
	"github.com/tetric/muon/backend/platform"
	"github.com/tetric/muon/text"
)

var (
	logBuf     string
	logUpdated bool
	logInput   = muon.NewTextBuffer(128)
	bg         = [3]muon.Real{90, 95, 100}
	checks     = [3]bool{true, false, true}
)

func writeLog(text string) {
	if logBuf != "" {
		logBuf += "\n"
	}
	logBuf += text
	logUpdated = true
}

func testWindow(ctx *muon.Context) {
	if ctx.BeginWindow("Demo Window", muon.Rect{X: 40, Y: 40, W: 300, H: 450}) == 0 {
		return
	}
	win := ctx.CurrentContainer()
	win.Rect.W = max(win.Rect.W, 240)
	win.Rect.H = max(win.Rect.H, 300)

	// window info
	if ctx.Header("Window Info") != 0 {
		win := ctx.CurrentContainer()
		ctx.LayoutRow([]int{54, -1}, 0)
		ctx.Label("Position:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.X, win.Rect.Y))
		ctx.Label("Size:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.W, win.Rect.H))
	}

	// labels + buttons
	if ctx.HeaderEx("Test Buttons", muon.OptExpanded) != 0 {
		ctx.LayoutRow([]int{86, -110, -1}, 0)
		ctx.Label("Test buttons 1:")
		if ctx.Button("Button 1") != 0 {
			writeLog("Pressed button 1")
		}
		if ctx.Button("Button 2") != 0 {
			writeLog("Pressed button 2")
		}
		ctx.Label("Test buttons 2:")
		if ctx.Button("Button 3") != 0 {
			writeLog("Pressed button 3")
		}
		if ctx.Button("Popup") != 0 {
			ctx.OpenPopup("Test Popup")
		}
		if ctx.BeginPopup("Test Popup") != 0 {
			ctx.Button("Hello")
			ctx.Button("World")
			ctx.EndPopup()
		}
	}

	// tree
	if ctx.HeaderEx("Tree and Text", muon.OptExpanded) != 0 {
		ctx.LayoutRow([]int{140, -1}, 0)
		ctx.LayoutBeginColumn()
		if ctx.BeginTreenode("Test 1") != 0 {
			if ctx.BeginTreenode("Test 1a") != 0 {
				ctx.Label("Hello")
				ctx.Label("world")
				ctx.EndTreenode()
			}
			if ctx.BeginTreenode("Test 1b") != 0 {
				if ctx.Button("Button 1") != 0 {
					writeLog("Pressed button 1")
				}
				if ctx.Button("Button 2") != 0 {
					writeLog("Pressed button 2")
				}
				ctx.EndTreenode()
			}
			ctx.EndTreenode()
		}
		if ctx.BeginTreenode("Test 2") != 0 {
			ctx.LayoutRow([]int{54, 54}, 0)
			if ctx.Button("Button 3") != 0 {
				writeLog("Pressed button 3")
			}
			if ctx.Button("Button 4") != 0 {
				writeLog("Pressed button 4")
			}
			if ctx.Button("Button 5") != 0 {
				writeLog("Pressed button 5")
			}
			if ctx.Button("Button 6") != 0 {
				writeLog("Pressed button 6")
			}
			ctx.EndTreenode()
		}
		if ctx.BeginTreenode("Test 3") != 0 {
			ctx.Checkbox("Checkbox 1", &checks[0])
			ctx.Checkbox("Checkbox 2", &checks[1])
			ctx.Checkbox("Checkbox 3", &checks[2])
			ctx.EndTreenode()
		}
		ctx.LayoutEndColumn()

		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{-1}, 0)
		ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing " +
			"elit. Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus " +
			"ipsum, eu varius magna felis a nulla.")
		ctx.LayoutEndColumn()
	}

	// background color sliders
	if ctx.HeaderEx("Background Color", muon.OptExpanded) != 0 {
		ctx.LayoutRow([]int{-78, -1}, 74)
		// sliders
		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{46, -1}, 0)
		ctx.Label("Red:")
		ctx.Slider(&bg[0], 0, 255)
		ctx.Label("Green:")
		ctx.Slider(&bg[1], 0, 255)
		ctx.Label("Blue:")
		ctx.Slider(&bg[2], 0, 255)
		ctx.LayoutEndColumn()
		// color preview
		r := ctx.LayoutNext()
		ctx.DrawRect(r, muon.RGB(uint8(bg[0]), uint8(bg[1]), uint8(bg[2])))
		label := fmt.Sprintf("#%02X%02X%02X", int(bg[0]), int(bg[1]), int(bg[2]))
		ctx.DrawControlText(label, r, muon.ColorText, muon.OptAlignCenter)
	}

	ctx.EndWindow()
}

func logWindow(ctx *muon.Context) {
	if ctx.BeginWindow("Log Window", muon.Rect{X: 350, Y: 40, W: 300, H: 200}) == 0 {
		return
	}

	// output text panel
	ctx.LayoutRow([]int{-1}, -25)
	ctx.BeginPanel("Log Output")
	panel := ctx.CurrentContainer()
	ctx.LayoutRow([]int{-1}, -1)
	ctx.Text(logBuf)
	ctx.EndPanel()
	if logUpdated {
		panel.Scroll.Y = panel.ContentSize.Y
		logUpdated = false
	}

	// input textbox + submit button
	submitted := false
	ctx.LayoutRow([]int{-70, -1}, 0)
	if ctx.Textbox(&logInput)&muon.ResSubmit != 0 {
		ctx.SetFocus(ctx.LastID())
		submitted = true
	}
	if ctx.Button("Submit") != 0 {
		submitted = true
	}
	if submitted {
		writeLog(logInput.String())
		logInput.Clear()
	}

	ctx.EndWindow()
}

func uint8Slider(ctx *muon.Context, value *uint8, low, high int) muon.Result {
	ctx.PushIDString(fmt.Sprintf("%p", value))
	tmp := muon.Real(*value)
	res := ctx.SliderEx(&tmp, muon.Real(low), muon.Real(high), 0, "%.0f", muon.OptAlignCenter)
	*value = uint8(tmp)
	ctx.PopID()
	return res
}

var styleRoles = []struct {
	label string
	role  muon.ColorID
}{
	{"text:", muon.ColorText},
	{"border:", muon.ColorBorder},
	{"windowbg:", muon.ColorWindowBG},
	{"titlebg:", muon.ColorTitleBG},
	{"titletext:", muon.ColorTitleText},
	{"panelbg:", muon.ColorPanelBG},
	{"button:", muon.ColorButton},
	{"buttonhover:", muon.ColorButtonHover},
	{"buttonfocus:", muon.ColorButtonFocus},
	{"base:", muon.ColorBase},
	{"basehover:", muon.ColorBaseHover},
	{"basefocus:", muon.ColorBaseFocus},
	{"scrollbase:", muon.ColorScrollBase},
	{"scrollthumb:", muon.ColorScrollThumb},
}

func styleWindow(ctx *muon.Context) {
	if ctx.BeginWindow("Style Editor", muon.Rect{X: 350, Y: 250, W: 300, H: 240}) == 0 {
		return
	}
	sw := ctx.CurrentContainer().Body.W * 14 / 100
	ctx.LayoutRow([]int{80, sw, sw, sw, sw, -1}, 0)
	for _, entry := range styleRoles {
		ctx.Label(entry.label)
		c := &ctx.Style.Colors[entry.role]
		uint8Slider(ctx, &c.R, 0, 255)
		uint8Slider(ctx, &c.G, 0, 255)
		uint8Slider(ctx, &c.B, 0, 255)
		uint8Slider(ctx, &c.A, 0, 255)
		ctx.DrawRect(ctx.LayoutNext(), *c)
	}
	ctx.EndWindow()
}

func main() {
	win, err := platform.NewWindow("muon demo", 800, 600)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Terminate()

	font, err := text.Default(14)
	if err != nil {
		log.Fatal(err)
	}
	defer font.Close()

	rend, err := glrender.New(font, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer rend.Destroy()

	ctx := muon.New(muon.Config{})
	ctx.TextWidth = func(_ muon.Font, s string) int { return font.TextWidth(s) }
	ctx.TextHeight = func(_ muon.Font) int { return font.Height() }

	// optional theme overrides from theme.toml in the working directory
	if data, err := os.ReadFile("theme.toml"); err == nil {
		style, err := muon.LoadStyle(data)
		if err != nil {
			log.Fatal(err)
		}
		ctx.Style = style
	}

	win.Attach(ctx)

	for !win.ShouldClose() {
		win.PollEvents()

		ctx.Begin()
		testWindow(ctx)
		logWindow(ctx)
		styleWindow(ctx)
		ctx.End()

		w, h := win.FramebufferSize()
		rend.Begin(w, h, muon.RGB(uint8(bg[0]), uint8(bg[1]), uint8(bg[2])))
		rend.Draw(ctx)
		rend.End()
		win.SwapBuffers()
	}
}
