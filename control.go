package muon

// inHoverRoot reports whether the innermost root container on the stack is
// the hover root, which keeps widgets in background windows from stealing
// hover through a covering window.
func (ctx *Context) inHoverRoot() bool {
	for i := len(ctx.containerStack) - 1; i >= 0; i-- {
		if ctx.containerStack[i] == ctx.hoverRoot {
			return true
		}
		// only root containers have head set; stop once the current
		// root is reached
		if ctx.containerStack[i].head >= 0 {
			break
		}
	}
	return false
}

// DrawControlFrame draws widget chrome, shifting the color role by one for
// hover and two for focus.
func (ctx *Context) DrawControlFrame(id ID, r Rect, colorid ColorID, opt Option) {
	if opt&OptNoFrame != 0 {
		return
	}
	if ctx.focus == id {
		colorid += 2
	} else if ctx.hover == id {
		colorid++
	}
	ctx.DrawFrame(ctx, r, colorid)
}

// DrawControlText draws str clipped to r, vertically centered and aligned
// per the Align options.
func (ctx *Context) DrawControlText(str string, r Rect, colorid ColorID, opt Option) {
	font := ctx.Style.Font
	tw := ctx.TextWidth(font, str)
	ctx.PushClipRect(r)
	var pos Vec2
	pos.Y = r.Y + (r.H-ctx.TextHeight(font))/2
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = r.X + r.W - tw - ctx.Style.Padding
	default:
		pos.X = r.X + ctx.Style.Padding
	}
	ctx.DrawText(font, str, pos, ctx.Style.Colors[colorid])
	ctx.PopClipRect()
}

// MouseOver reports whether the mouse is inside r, inside the current clip
// rectangle and inside the hover-root container.
func (ctx *Context) MouseOver(r Rect) bool {
	return r.Contains(ctx.mousePos) &&
		ctx.ClipRect().Contains(ctx.mousePos) &&
		ctx.inHoverRoot()
}

// UpdateControl runs the per-frame hover/focus state machine for a widget.
// Focus is a lease: it survives only as long as the widget keeps calling
// this each frame, and End clears it otherwise.
func (ctx *Context) UpdateControl(id ID, r Rect, opt Option) {
	mouseover := ctx.MouseOver(r)

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if mouseover && ctx.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if ctx.mousePressed != 0 && !mouseover {
			ctx.SetFocus(0)
		}
		if ctx.mouseDown == 0 && opt&OptHoldFocus == 0 {
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		if ctx.mousePressed != 0 {
			ctx.SetFocus(id)
		} else if !mouseover {
			ctx.hover = 0
		}
	}
}
