package muon

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Real is the value type of slider and number widgets.
type Real = float32

const (
	realFormat   = "%.3g"
	sliderFormat = "%.2f"
)

// Text lays out a word-wrapped paragraph in its own column, breaking lines
// on spaces and newlines.
func (ctx *Context) Text(text string) {
	font := ctx.Style.Font
	color := ctx.Style.Colors[ColorText]
	ctx.LayoutBeginColumn()
	ctx.LayoutRow([]int{-1}, ctx.TextHeight(font))
	p := 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += ctx.TextWidth(font, text[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += ctx.TextWidth(font, text[p:p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		ctx.DrawText(font, text[start:end], Vec2{r.X, r.Y}, color)
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	ctx.LayoutEndColumn()
}

// Label draws non-interactive text in the next layout cell.
func (ctx *Context) Label(text string) {
	ctx.DrawControlText(text, ctx.LayoutNext(), ColorText, 0)
}

// ButtonEx draws a push button with an optional label and/or icon; the
// identifier comes from the label when present, the icon value otherwise.
func (ctx *Context) ButtonEx(label string, icon Icon, opt Option) Result {
	var res Result
	var id ID
	if label != "" {
		id = ctx.GetIDString(label)
	} else {
		var seed [4]byte
		binary.LittleEndian.PutUint32(seed[:], uint32(icon))
		id = ctx.GetID(seed[:])
	}
	r := ctx.LayoutNext()
	ctx.UpdateControl(id, r, opt)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResSubmit
	}
	ctx.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		ctx.DrawControlText(label, r, ColorText, opt)
	}
	if icon != 0 {
		ctx.DrawIcon(icon, r, ctx.Style.Colors[ColorText])
	}
	return res
}

// Button draws a centered text button and reports ResSubmit on click.
func (ctx *Context) Button(label string) Result {
	return ctx.ButtonEx(label, 0, OptAlignCenter)
}

// Checkbox toggles state on click. The identifier is positional, derived
// from the state pointer.
func (ctx *Context) Checkbox(label string, state *bool) Result {
	var res Result
	id := ptrID(ctx, state)
	r := ctx.LayoutNext()
	box := Rect{r.X, r.Y, r.H, r.H}
	ctx.UpdateControl(id, r, 0)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResChange
		*state = !*state
	}
	ctx.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.Style.Colors[ColorText])
	}
	r = Rect{r.X + box.W, r.Y, r.W - box.W, r.H}
	ctx.DrawControlText(label, r, ColorText, 0)
	return res
}

// TextboxRaw is the textbox core for callers that manage their own
// identifier and rectangle. It holds focus until released elsewhere,
// consumes the frame's text input and backspaces whole UTF-8 runes.
func (ctx *Context) TextboxRaw(buf *TextBuffer, id ID, r Rect, opt Option) Result {
	var res Result
	ctx.UpdateControl(id, r, opt|OptHoldFocus)

	if ctx.focus == id {
		// text input
		if n := min(buf.available(), ctx.inputTextLen); n > 0 {
			buf.append(ctx.inputText[:n])
			res |= ResChange
		}
		// backspace
		if ctx.keyPressed&KeyBackspace != 0 && buf.Len() > 0 {
			buf.backspace()
			res |= ResChange
		}
		// return
		if ctx.keyPressed&KeyReturn != 0 {
			ctx.SetFocus(0)
			res |= ResSubmit
		}
	}

	ctx.DrawControlFrame(id, r, ColorBase, opt)
	if ctx.focus == id {
		color := ctx.Style.Colors[ColorText]
		font := ctx.Style.Font
		textw := ctx.TextWidth(font, buf.view())
		texth := ctx.TextHeight(font)
		// keep the caret in view by sliding the text left once it
		// outgrows the box
		ofx := r.W - ctx.Style.Padding - textw - 1
		textx := r.X + min(ofx, ctx.Style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClipRect(r)
		ctx.DrawText(font, buf.view(), Vec2{textx, texty}, color)
		ctx.DrawRect(Rect{textx + textw, texty, 1, texth}, color)
		ctx.PopClipRect()
	} else {
		ctx.DrawControlText(buf.view(), r, ColorText, opt)
	}

	return res
}

// TextboxEx draws a textbox in the next layout cell, identified by the
// buffer's address.
func (ctx *Context) TextboxEx(buf *TextBuffer, opt Option) Result {
	id := ptrID(ctx, buf)
	r := ctx.LayoutNext()
	return ctx.TextboxRaw(buf, id, r, opt)
}

// Textbox draws a textbox with default options.
func (ctx *Context) Textbox(buf *TextBuffer) Result {
	return ctx.TextboxEx(buf, 0)
}

// numberTextbox routes a slider or number widget through text editing while
// shift+click keeps it in edit mode. Reports whether editing is still in
// progress.
func (ctx *Context) numberTextbox(value *Real, r Rect, id ID) bool {
	if ctx.mousePressed == MouseLeft && ctx.keyDown&KeyShift != 0 && ctx.hover == id {
		ctx.numberEdit = id
		seed := fmt.Appendf(ctx.fmtBuf[:0], realFormat, *value)
		ctx.numberEditBuf.SetString(bstr(seed))
	}
	if ctx.numberEdit == id {
		res := ctx.TextboxRaw(&ctx.numberEditBuf, id, r, 0)
		if res&ResSubmit != 0 || ctx.focus != id {
			v, _ := strconv.ParseFloat(ctx.numberEditBuf.view(), 32)
			*value = Real(v)
			ctx.numberEdit = 0
		} else {
			return true
		}
	}
	return false
}

// SliderEx drags value across [low, high], optionally quantized to step
// (round-half-up). Shift+click switches to text editing.
func (ctx *Context) SliderEx(value *Real, low, high, step Real, format string, opt Option) Result {
	var res Result
	last := *value
	v := last
	id := ptrID(ctx, value)
	base := ctx.LayoutNext()

	// text input mode
	if ctx.numberTextbox(&v, base, id) {
		return res
	}

	// normal mode
	ctx.UpdateControl(id, base, opt)

	if ctx.focus == id && (ctx.mouseDown|ctx.mousePressed) == MouseLeft {
		v = low + Real(ctx.mousePos.X-base.X)*(high-low)/Real(base.W)
		if step != 0 {
			v = Real(int64((v+step/2)/step)) * step
		}
	}
	v = Clamp(v, low, high)
	*value = v
	if last != v {
		res |= ResChange
	}

	// draw base
	ctx.DrawControlFrame(id, base, ColorBase, opt)
	// draw thumb
	w := ctx.Style.ThumbSize
	x := int((v - low) * Real(base.W-w) / (high - low))
	thumb := Rect{base.X + x, base.Y, w, base.H}
	ctx.DrawControlFrame(id, thumb, ColorButton, opt)
	// draw value
	text := fmt.Appendf(ctx.fmtBuf[:0], format, v)
	ctx.DrawControlText(bstr(text), base, ColorText, opt)

	return res
}

// Slider is SliderEx with a continuous range and centered "%.2f" text.
func (ctx *Context) Slider(value *Real, low, high Real) Result {
	return ctx.SliderEx(value, low, high, 0, sliderFormat, OptAlignCenter)
}

// NumberEx adjusts value by the horizontal mouse drag times step.
// Shift+click switches to text editing.
func (ctx *Context) NumberEx(value *Real, step Real, format string, opt Option) Result {
	var res Result
	id := ptrID(ctx, value)
	base := ctx.LayoutNext()
	last := *value

	// text input mode
	if ctx.numberTextbox(value, base, id) {
		return res
	}

	// normal mode
	ctx.UpdateControl(id, base, opt)

	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		*value += Real(ctx.mouseDelta.X) * step
	}
	if *value != last {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	text := fmt.Appendf(ctx.fmtBuf[:0], format, *value)
	ctx.DrawControlText(bstr(text), base, ColorText, opt)

	return res
}

// Number is NumberEx with centered "%.2f" text.
func (ctx *Context) Number(value *Real, step Real) Result {
	return ctx.NumberEx(value, step, sliderFormat, OptAlignCenter)
}

// header powers both Header and BeginTreenode: the identifier's presence in
// the treenode pool means "expanded" (OptExpanded inverts the sense) and a
// click toggles the pool entry.
func (ctx *Context) header(label string, istreenode bool, opt Option) Result {
	id := ctx.GetIDString(label)
	idx := ctx.poolGet(ctx.treenodePool, id)
	ctx.LayoutRow([]int{-1}, 0)

	active := idx >= 0
	expanded := active
	if opt&OptExpanded != 0 {
		expanded = !active
	}
	r := ctx.LayoutNext()
	ctx.UpdateControl(id, r, 0)

	// toggle on click
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		active = !active
	}

	// update pool ref
	if idx >= 0 {
		if active {
			ctx.poolUpdate(ctx.treenodePool, idx)
		} else {
			ctx.treenodePool[idx] = poolItem{}
		}
	} else if active {
		ctx.poolInit(ctx.treenodePool, id)
	}

	// draw
	if istreenode {
		if ctx.hover == id {
			ctx.DrawFrame(ctx, r, ColorButtonHover)
		}
	} else {
		ctx.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{r.X, r.Y, r.H, r.H}, ctx.Style.Colors[ColorText])
	r.X += r.H - ctx.Style.Padding
	r.W -= r.H - ctx.Style.Padding
	ctx.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

// HeaderEx draws a full-width collapsible header row.
func (ctx *Context) HeaderEx(label string, opt Option) Result {
	return ctx.header(label, false, opt)
}

// Header draws a collapsed-by-default header row.
func (ctx *Context) Header(label string) Result {
	return ctx.HeaderEx(label, 0)
}

// BeginTreenodeEx opens a tree node; while expanded it indents subsequent
// rows and scopes nested identifiers under the node's own.
func (ctx *Context) BeginTreenodeEx(label string, opt Option) Result {
	res := ctx.header(label, true, opt)
	if res&ResActive != 0 {
		ctx.layoutTop().indentation += ctx.Style.Indentation
		pushStack(&ctx.idStack, ctx.lastID, "id")
	}
	return res
}

// BeginTreenode opens a collapsed-by-default tree node.
func (ctx *Context) BeginTreenode(label string) Result {
	return ctx.BeginTreenodeEx(label, 0)
}

// EndTreenode closes an expanded tree node.
func (ctx *Context) EndTreenode() {
	ctx.layoutTop().indentation -= ctx.Style.Indentation
	ctx.PopID()
}
