package muon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWordWrap(t *testing.T) {
	ctx := testContext()
	var ys []int
	ctx.Begin()
	if ctx.BeginWindow("T", Rect{0, 0, 300, 200}) != 0 {
		ctx.LayoutRow([]int{40}, 0)
		ctx.Text("hello world")
		ctx.EndWindow()
	}
	ctx.End()

	var lines []string
	var cmd Command
	for ctx.NextCommand(&cmd) {
		if cmd.Type == CommandText && string(cmd.Text.Str) != "T" {
			lines = append(lines, string(cmd.Text.Str))
			ys = append(ys, cmd.Text.Pos.Y)
		}
	}
	// at 6 px per char, "hello world" breaks into two lines in a 40 px cell
	require.Equal(t, []string{"hello", "world"}, lines)
	assert.Equal(t, ctx.TextHeight(0)+ctx.Style.Spacing, ys[1]-ys[0])
}

func TestTextHonorsNewlines(t *testing.T) {
	ctx := testContext()
	ctx.Begin()
	if ctx.BeginWindow("T", Rect{0, 0, 300, 200}) != 0 {
		ctx.LayoutRow([]int{-1}, 0)
		ctx.Text("one\ntwo")
		ctx.EndWindow()
	}
	ctx.End()

	var lines []string
	var cmd Command
	for ctx.NextCommand(&cmd) {
		if cmd.Type == CommandText && string(cmd.Text.Str) != "T" {
			lines = append(lines, string(cmd.Text.Str))
		}
	}
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestCheckboxToggles(t *testing.T) {
	ctx := testContext()
	state := false
	var res Result
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
			ctx.LayoutRow([]int{-1}, 0)
			res = ctx.Checkbox("check me", &state)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	ctx.InputMouseMove(50, 35)
	frame()
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	assert.NotZero(t, res&ResChange)
	assert.True(t, state)
	ctx.InputMouseUp(50, 35, MouseLeft)
	frame()
	assert.Zero(t, res)
	assert.True(t, state)

	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	assert.False(t, state)
	ctx.InputMouseUp(50, 35, MouseLeft)
}

func TestCheckboxDrawsCheckIconWhenSet(t *testing.T) {
	ctx := testContext()
	state := true
	ctx.Begin()
	if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
		ctx.LayoutRow([]int{-1}, 0)
		ctx.Checkbox("on", &state)
		ctx.EndWindow()
	}
	ctx.End()

	found := false
	var cmd Command
	for ctx.NextCommand(&cmd) {
		if cmd.Type == CommandIcon && cmd.Icon.ID == IconCheck {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSliderStepQuantization(t *testing.T) {
	ctx := testContext()
	var value Real
	var res Result
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 300, 100}) != 0 {
			ctx.LayoutRow([]int{100}, 0)
			res = ctx.SliderEx(&value, 0, 10, 2, sliderFormat, OptAlignCenter)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	// the slider base sits at x=5, 100 px wide; 30% along is x=35
	ctx.InputMouseMove(35, 35)
	frame()
	ctx.InputMouseDown(35, 35, MouseLeft)
	frame()
	// raw 3.0 rounds half-up to the next multiple of 2
	assert.Equal(t, Real(4), value)
	assert.NotZero(t, res&ResChange)

	// unchanged position -> no further change events
	frame()
	assert.Zero(t, res&ResChange)
	ctx.InputMouseUp(35, 35, MouseLeft)
}

func TestSliderClampsToRange(t *testing.T) {
	ctx := testContext()
	value := Real(5)
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 300, 100}) != 0 {
			ctx.LayoutRow([]int{100}, 0)
			ctx.Slider(&value, 0, 10)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	ctx.InputMouseMove(50, 35)
	frame()
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	// drag far past the right edge
	ctx.InputMouseMove(290, 35)
	frame()
	assert.Equal(t, Real(10), value)
	ctx.InputMouseUp(290, 35, MouseLeft)
}

func TestNumberDragByStep(t *testing.T) {
	ctx := testContext()
	value := Real(1)
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 300, 100}) != 0 {
			ctx.LayoutRow([]int{100}, 0)
			ctx.Number(&value, 0.5)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	ctx.InputMouseMove(50, 35)
	frame()
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	ctx.InputMouseMove(60, 35) // +10 px while held
	frame()
	assert.Equal(t, Real(6), value)
	ctx.InputMouseUp(60, 35, MouseLeft)
}

func TestNumberShiftClickEditsAsText(t *testing.T) {
	ctx := testContext()
	value := Real(5)
	var res Result
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 300, 100}) != 0 {
			ctx.LayoutRow([]int{100}, 0)
			res = ctx.Number(&value, 1)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	ctx.InputMouseMove(50, 35)
	frame()

	ctx.InputKeyDown(KeyShift)
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	assert.NotZero(t, ctx.numberEdit)
	assert.Equal(t, "5", ctx.numberEditBuf.String())
	ctx.InputMouseUp(50, 35, MouseLeft)
	ctx.InputKeyUp(KeyShift)

	ctx.InputKeyDown(KeyBackspace)
	frame()
	ctx.InputKeyUp(KeyBackspace)
	assert.Equal(t, "", ctx.numberEditBuf.String())

	ctx.InputText("7")
	frame()
	assert.Equal(t, "7", ctx.numberEditBuf.String())

	ctx.InputKeyDown(KeyReturn)
	frame()
	ctx.InputKeyUp(KeyReturn)
	assert.Equal(t, Real(7), value)
	assert.Zero(t, ctx.numberEdit)
	assert.NotZero(t, res&ResChange)
}

func TestTextboxTypingAndSubmit(t *testing.T) {
	ctx := testContext()
	tb := NewTextBuffer(32)
	var res Result
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
			ctx.LayoutRow([]int{-1}, 0)
			res = ctx.Textbox(&tb)
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	ctx.InputMouseMove(50, 35)
	frame()
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	ctx.InputMouseUp(50, 35, MouseLeft)

	ctx.InputText("hé")
	frame()
	assert.NotZero(t, res&ResChange)
	assert.Equal(t, "hé", tb.String())

	ctx.InputKeyDown(KeyBackspace)
	frame()
	ctx.InputKeyUp(KeyBackspace)
	assert.Equal(t, "h", tb.String()) // é removed as one rune

	ctx.InputKeyDown(KeyReturn)
	frame()
	ctx.InputKeyUp(KeyReturn)
	assert.NotZero(t, res&ResSubmit)
	assert.Zero(t, ctx.focus)
}

func TestHeaderTogglesOnClick(t *testing.T) {
	ctx := testContext()
	var res Result
	frame := func() {
		ctx.Begin()
		if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
			res = ctx.Header("section")
			ctx.EndWindow()
		}
		ctx.End()
	}

	frame()
	assert.Zero(t, res) // collapsed by default
	ctx.InputMouseMove(50, 35)
	frame()
	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	ctx.InputMouseUp(50, 35, MouseLeft)
	frame()
	assert.NotZero(t, res&ResActive) // expanded after the click

	ctx.InputMouseDown(50, 35, MouseLeft)
	frame()
	ctx.InputMouseUp(50, 35, MouseLeft)
	frame()
	assert.Zero(t, res) // collapsed again
}

func TestTreenodeExpandedOptionInvertsSense(t *testing.T) {
	ctx := testContext()
	var res Result
	ctx.Begin()
	if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
		res = ctx.BeginTreenodeEx("node", OptExpanded)
		if res&ResActive != 0 {
			ctx.Label("inner")
			ctx.EndTreenode()
		}
		ctx.EndWindow()
	}
	ctx.End()
	// no pool entry yet, so OptExpanded means open
	assert.NotZero(t, res&ResActive)
}

func TestTreenodeScopesNestedIDs(t *testing.T) {
	ctx := testContext()
	var inside, outside ID
	ctx.Begin()
	if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
		outside = ctx.GetIDString("leaf")
		if ctx.BeginTreenodeEx("node", OptExpanded)&ResActive != 0 {
			inside = ctx.GetIDString("leaf")
			ctx.EndTreenode()
		}
		ctx.EndWindow()
	}
	ctx.End()
	assert.NotZero(t, inside)
	assert.NotEqual(t, outside, inside)
}

func TestTreenodeIndentsContent(t *testing.T) {
	ctx := testContext()
	var plain, indented Rect
	ctx.Begin()
	if ctx.BeginWindow("W", Rect{0, 0, 200, 150}) != 0 {
		ctx.LayoutRow([]int{50}, 0)
		ctx.Label("plain")
		plain = ctx.LastRect()
		if ctx.BeginTreenodeEx("node", OptExpanded)&ResActive != 0 {
			ctx.LayoutRow([]int{50}, 0)
			ctx.Label("deep")
			indented = ctx.LastRect()
			ctx.EndTreenode()
		}
		ctx.EndWindow()
	}
	ctx.End()
	assert.Equal(t, plain.X+ctx.Style.Indentation, indented.X)
}

func TestButtonIconOnly(t *testing.T) {
	ctx := testContext()
	ctx.Begin()
	if ctx.BeginWindow("W", Rect{0, 0, 200, 100}) != 0 {
		ctx.LayoutRow([]int{30}, 0)
		ctx.ButtonEx("", IconCheck, 0)
		ctx.EndWindow()
	}
	ctx.End()

	found := false
	var cmd Command
	for ctx.NextCommand(&cmd) {
		if cmd.Type == CommandIcon && cmd.Icon.ID == IconCheck {
			found = true
		}
	}
	require.True(t, found)
}
