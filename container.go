package muon

// Container is the retained per-identifier state of a window, panel or
// popup. Clients may mutate Rect, Scroll and Open between the container's
// end and the next frame's begin (the demo uses this for scroll-to-bottom
// and minimum window sizes).
type Container struct {
	Rect        Rect // outer bounds; user-movable/resizable for windows
	Body        Rect // content area after title bar and scrollbars
	ContentSize Vec2 // extent of widgets placed last frame
	Scroll      Vec2
	ZIndex      int
	Open        bool

	// head and tail locate this container's bracketing jump records in
	// the command buffer. Only root containers have them (-1 otherwise).
	head, tail int
}

// GetContainer returns the retained container for name, creating it
// open-and-fronted on first sight.
func (ctx *Context) GetContainer(name string) *Container {
	id := ctx.GetIDString(name)
	return ctx.getContainer(id, 0)
}

func (ctx *Context) getContainer(id ID, opt Option) *Container {
	// try to get existing container from pool
	idx := ctx.poolGet(ctx.containerPool, id)
	if idx >= 0 {
		if ctx.containers[idx].Open || opt&OptClosed == 0 {
			ctx.poolUpdate(ctx.containerPool, idx)
		}
		return &ctx.containers[idx]
	}
	if opt&OptClosed != 0 {
		return nil
	}
	// container not found in pool: init new container
	idx = ctx.poolInit(ctx.containerPool, id)
	cnt := &ctx.containers[idx]
	*cnt = Container{Open: true, head: -1, tail: -1}
	ctx.BringToFront(cnt)
	return cnt
}

// CurrentContainer returns the innermost open container.
func (ctx *Context) CurrentContainer() *Container {
	expect(len(ctx.containerStack) > 0, "no current container")
	return ctx.containerStack[len(ctx.containerStack)-1]
}

// BringToFront gives cnt the highest z-index.
func (ctx *Context) BringToFront(cnt *Container) {
	ctx.lastZIndex++
	cnt.ZIndex = ctx.lastZIndex
}

// popContainer records the measured content size, then unwinds the
// container, layout and id stacks together.
func (ctx *Context) popContainer() {
	cnt := ctx.CurrentContainer()
	lay := ctx.layoutTop()
	cnt.ContentSize.X = lay.max.X - lay.body.X
	cnt.ContentSize.Y = lay.max.Y - lay.body.Y
	popStack(&ctx.containerStack, "container")
	popStack(&ctx.layoutStack, "layout")
	ctx.PopID()
}

// The two scrollbars are mirror images: x/y and w/h swap throughout.

func (ctx *Context) scrollbarV(cnt *Container, b *Rect, cs Vec2) {
	maxscroll := cs.Y - b.H
	if maxscroll > 0 && b.H > 0 {
		id := ctx.GetIDString("!scrollbary")

		base := *b
		base.X = b.X + b.W
		base.W = ctx.Style.ScrollbarSize

		ctx.UpdateControl(id, base, 0)
		if ctx.focus == id && ctx.mouseDown == MouseLeft {
			cnt.Scroll.Y += ctx.mouseDelta.Y * cs.Y / base.H
		}
		cnt.Scroll.Y = Clamp(cnt.Scroll.Y, 0, maxscroll)

		ctx.DrawFrame(ctx, base, ColorScrollBase)
		thumb := base
		thumb.H = max(ctx.Style.ThumbSize, base.H*b.H/cs.Y)
		thumb.Y += cnt.Scroll.Y * (base.H - thumb.H) / maxscroll
		ctx.DrawFrame(ctx, thumb, ColorScrollThumb)

		// wheel events go to the container under the mouse
		if ctx.MouseOver(*b) {
			ctx.scrollTarget = cnt
		}
	} else {
		cnt.Scroll.Y = 0
	}
}

func (ctx *Context) scrollbarH(cnt *Container, b *Rect, cs Vec2) {
	maxscroll := cs.X - b.W
	if maxscroll > 0 && b.W > 0 {
		id := ctx.GetIDString("!scrollbarx")

		base := *b
		base.Y = b.Y + b.H
		base.H = ctx.Style.ScrollbarSize

		ctx.UpdateControl(id, base, 0)
		if ctx.focus == id && ctx.mouseDown == MouseLeft {
			cnt.Scroll.X += ctx.mouseDelta.X * cs.X / base.W
		}
		cnt.Scroll.X = Clamp(cnt.Scroll.X, 0, maxscroll)

		ctx.DrawFrame(ctx, base, ColorScrollBase)
		thumb := base
		thumb.W = max(ctx.Style.ThumbSize, base.W*b.W/cs.X)
		thumb.X += cnt.Scroll.X * (base.W - thumb.W) / maxscroll
		ctx.DrawFrame(ctx, thumb, ColorScrollThumb)

		if ctx.MouseOver(*b) {
			ctx.scrollTarget = cnt
		}
	} else {
		cnt.Scroll.X = 0
	}
}

// scrollbars shrinks body to make room on each overflowing axis, then runs
// both bars.
func (ctx *Context) scrollbars(cnt *Container, body *Rect) {
	sz := ctx.Style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += ctx.Style.Padding * 2
	cs.Y += ctx.Style.Padding * 2
	ctx.PushClipRect(*body)
	if cs.Y > cnt.Body.H {
		body.W -= sz
	}
	if cs.X > cnt.Body.W {
		body.H -= sz
	}
	ctx.scrollbarV(cnt, body, cs)
	ctx.scrollbarH(cnt, body, cs)
	ctx.PopClipRect()
}

func (ctx *Context) pushContainerBody(cnt *Container, body Rect, opt Option) {
	if opt&OptNoScroll == 0 {
		ctx.scrollbars(cnt, &body)
	}
	ctx.pushLayout(body.expand(-ctx.Style.Padding), cnt.Scroll)
	cnt.Body = body
}

func (ctx *Context) beginRootContainer(cnt *Container) {
	pushStack(&ctx.containerStack, cnt, "container")
	pushStack(&ctx.rootList, cnt, "root list")
	cnt.head = ctx.pushJump(-1)
	// set as hover root if the mouse overlaps this container and it sits
	// above the current hover root
	if cnt.Rect.Contains(ctx.mousePos) &&
		(ctx.nextHoverRoot == nil || cnt.ZIndex > ctx.nextHoverRoot.ZIndex) {
		ctx.nextHoverRoot = cnt
	}
	// clipping is reset here so a root container declared inside another
	// root's begin/end block isn't clipped to the outer one
	pushStack(&ctx.clipStack, unclippedRect, "clip")
}

func (ctx *Context) endRootContainer() {
	// the tail jump is patched in End once z-order is known; the head
	// jump skips this container's records during a linear walk
	cnt := ctx.CurrentContainer()
	cnt.tail = ctx.pushJump(-1)
	ctx.patchJump(cnt.head, ctx.cmdTail)
	ctx.PopClipRect()
	ctx.popContainer()
}

// BeginWindowEx opens a root container with a movable/resizable frame.
// It returns 0 when the window is closed, in which case the matching
// EndWindow call must be skipped.
func (ctx *Context) BeginWindowEx(title string, rect Rect, opt Option) Result {
	id := ctx.GetIDString(title)
	cnt := ctx.getContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return 0
	}
	pushStack(&ctx.idStack, id, "id")

	if cnt.Rect.W == 0 {
		cnt.Rect = rect
	}
	ctx.beginRootContainer(cnt)
	rect = cnt.Rect
	body := cnt.Rect

	// draw frame
	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, rect, ColorWindowBG)
	}

	// title bar
	if opt&OptNoTitle == 0 {
		tr := rect
		tr.H = ctx.Style.TitleHeight
		ctx.DrawFrame(ctx, tr, ColorTitleBG)

		// the title text doubles as the drag handle
		{
			id := ctx.GetIDString("!title")
			ctx.UpdateControl(id, tr, opt)
			ctx.DrawControlText(title, tr, ColorTitleText, opt)
			if id == ctx.focus && ctx.mouseDown == MouseLeft {
				cnt.Rect.X += ctx.mouseDelta.X
				cnt.Rect.Y += ctx.mouseDelta.Y
			}
			body.Y += tr.H
			body.H -= tr.H
		}

		// close button
		if opt&OptNoClose == 0 {
			id := ctx.GetIDString("!close")
			r := Rect{tr.X + tr.W - tr.H, tr.Y, tr.H, tr.H}
			tr.W -= r.W
			ctx.DrawIcon(IconClose, r, ctx.Style.Colors[ColorTitleText])
			ctx.UpdateControl(id, r, opt)
			if ctx.mousePressed == MouseLeft && id == ctx.focus {
				cnt.Open = false
			}
		}
	}

	ctx.pushContainerBody(cnt, body, opt)

	// resize handle
	if opt&OptNoResize == 0 {
		sz := ctx.Style.TitleHeight
		id := ctx.GetIDString("!resize")
		r := Rect{rect.X + rect.W - sz, rect.Y + rect.H - sz, sz, sz}
		ctx.UpdateControl(id, r, opt)
		if id == ctx.focus && ctx.mouseDown == MouseLeft {
			cnt.Rect.W = max(96, cnt.Rect.W+ctx.mouseDelta.X)
			cnt.Rect.H = max(64, cnt.Rect.H+ctx.mouseDelta.Y)
		}
	}

	// resize to content size; the rect trails content changes by a frame
	// because this frame's content is laid out in the old body
	if opt&OptAutoSize != 0 {
		r := ctx.layoutTop().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - r.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - r.H)
	}

	// close popups when anywhere else is clicked
	if opt&OptPopup != 0 && ctx.mousePressed != 0 && ctx.hoverRoot != cnt {
		cnt.Open = false
	}

	ctx.PushClipRect(cnt.Body)
	return ResActive
}

// BeginWindow opens a window with default options.
func (ctx *Context) BeginWindow(title string, rect Rect) Result {
	return ctx.BeginWindowEx(title, rect, 0)
}

func (ctx *Context) EndWindow() {
	ctx.PopClipRect()
	ctx.endRootContainer()
}

// OpenPopup places name's container at the mouse cursor, opens it and
// brings it to the front. Call BeginPopup each frame to draw it.
func (ctx *Context) OpenPopup(name string) {
	cnt := ctx.GetContainer(name)
	// set as hover root so the popup isn't dismissed by the very click
	// that opened it
	ctx.hoverRoot = cnt
	ctx.nextHoverRoot = cnt
	cnt.Rect = Rect{ctx.mousePos.X, ctx.mousePos.Y, 1, 1}
	cnt.Open = true
	ctx.BringToFront(cnt)
}

// BeginPopup draws an auto-sized window without a title bar that closes itself when
// a click lands anywhere else.
func (ctx *Context) BeginPopup(name string) Result {
	opt := OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed
	return ctx.BeginWindowEx(name, Rect{}, opt)
}

func (ctx *Context) EndPopup() {
	ctx.EndWindow()
}

// BeginPanelEx opens an inline sub-region with its own clip, layout and
// scroll state. Panels draw inside their parent's command region and do
// not participate in z-ordering.
func (ctx *Context) BeginPanelEx(name string, opt Option) {
	ctx.PushIDString(name)
	cnt := ctx.getContainer(ctx.lastID, opt)
	cnt.Rect = ctx.LayoutNext()
	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, cnt.Rect, ColorPanelBG)
	}
	pushStack(&ctx.containerStack, cnt, "container")
	ctx.pushContainerBody(cnt, cnt.Rect, opt)
	ctx.PushClipRect(cnt.Body)
}

// BeginPanel opens a panel with default options.
func (ctx *Context) BeginPanel(name string) {
	ctx.BeginPanelEx(name, 0)
}

func (ctx *Context) EndPanel() {
	ctx.PopClipRect()
	ctx.popContainer()
}
