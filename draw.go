package muon

// unclippedRect is pushed when rendering must not be clipped; the renderer
// treats its 2^24 extent as "clip off".
var unclippedRect = Rect{0, 0, 0x1000000, 0x1000000}

// PushClipRect pushes the intersection of r with the current clip, so the
// stack only ever shrinks down any nesting path.
func (ctx *Context) PushClipRect(r Rect) {
	last := ctx.ClipRect()
	pushStack(&ctx.clipStack, r.intersect(last), "clip")
}

func (ctx *Context) PopClipRect() {
	popStack(&ctx.clipStack, "clip")
}

// ClipRect returns the current clip rectangle.
func (ctx *Context) ClipRect() Rect {
	expect(len(ctx.clipStack) > 0, "clip stack empty")
	return ctx.clipStack[len(ctx.clipStack)-1]
}

// CheckClip classifies r against the current clip: ClipAll when fully
// outside, ClipPart when straddling, 0 when fully inside.
func (ctx *Context) CheckClip(r Rect) int {
	cr := ctx.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X ||
		r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W &&
		r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return 0
	}
	return ClipPart
}

// SetClip emits a clip command without touching the clip stack.
func (ctx *Context) SetClip(r Rect) {
	off := ctx.pushCommand(CommandClip, clipCommandSize)
	putRect(ctx.cmdBuf[off:], 8, r)
}

// DrawRect fills r, pre-clipped against the current clip rectangle; a fully
// clipped rect emits nothing.
func (ctx *Context) DrawRect(r Rect, color Color) {
	r = r.intersect(ctx.ClipRect())
	if r.W > 0 && r.H > 0 {
		off := ctx.pushCommand(CommandRect, rectCommandSize)
		b := ctx.cmdBuf[off:]
		putRect(b, 8, r)
		putColor(b, 24, color)
	}
}

// DrawBox strokes a 1-pixel border along the inside of r.
func (ctx *Context) DrawBox(r Rect, color Color) {
	ctx.DrawRect(Rect{r.X + 1, r.Y, r.W - 2, 1}, color)
	ctx.DrawRect(Rect{r.X + 1, r.Y + r.H - 1, r.W - 2, 1}, color)
	ctx.DrawRect(Rect{r.X, r.Y, 1, r.H}, color)
	ctx.DrawRect(Rect{r.X + r.W - 1, r.Y, 1, r.H}, color)
}

// DrawText emits a text command carrying str inline. A partially visible
// string is wrapped in a clip command pair so the renderer's clip state
// stays consistent even across the z-order jump chain.
func (ctx *Context) DrawText(font Font, str string, pos Vec2, color Color) {
	r := Rect{pos.X, pos.Y, ctx.TextWidth(font, str), ctx.TextHeight(font)}
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	size := textCommandSize + len(str) + 1
	off := ctx.pushCommand(CommandText, size)
	b := ctx.cmdBuf[off:]
	putI32(b, 8, int32(font))
	putI32(b, 12, int32(pos.X))
	putI32(b, 16, int32(pos.Y))
	putColor(b, 20, color)
	copy(b[textCommandSize:], str)
	b[size-1] = 0
	if clipped != 0 {
		ctx.SetClip(unclippedRect)
	}
}

// DrawIcon emits an icon command, clip-wrapped the same way as DrawText.
func (ctx *Context) DrawIcon(id Icon, r Rect, color Color) {
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	off := ctx.pushCommand(CommandIcon, iconCommandSize)
	b := ctx.cmdBuf[off:]
	putI32(b, 8, int32(id))
	putRect(b, 12, r)
	putColor(b, 28, color)
	if clipped != 0 {
		ctx.SetClip(unclippedRect)
	}
}

// drawDefaultFrame is the default DrawFrame hook: fill plus a 1-pixel
// border for everything except the title bar and scrollbar roles.
func drawDefaultFrame(ctx *Context, r Rect, colorid ColorID) {
	ctx.DrawRect(r, ctx.Style.Colors[colorid])
	if colorid == ColorScrollBase || colorid == ColorScrollThumb || colorid == ColorTitleBG {
		return
	}
	if ctx.Style.Colors[ColorBorder].A != 0 {
		ctx.DrawBox(r.expand(1), ctx.Style.Colors[ColorBorder])
	}
}
