package muon

// Input feed. All of these are non-blocking and may be called any number of
// times between frames; pressed masks and text accumulate until the next
// End resets them.

func (ctx *Context) InputMouseMove(x, y int) {
	ctx.mousePos = Vec2{x, y}
}

func (ctx *Context) InputMouseDown(x, y int, btn Mouse) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown |= btn
	ctx.mousePressed |= btn
}

func (ctx *Context) InputMouseUp(x, y int, btn Mouse) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown &^= btn
}

func (ctx *Context) InputScroll(x, y int) {
	ctx.scrollDelta.X += x
	ctx.scrollDelta.Y += y
}

func (ctx *Context) InputKeyDown(key Key) {
	ctx.keyPressed |= key
	ctx.keyDown |= key
}

func (ctx *Context) InputKeyUp(key Key) {
	ctx.keyDown &^= key
}

// InputText appends UTF-8 text typed since the last frame. The buffer holds
// 32 bytes; overflowing it is a programmer error.
func (ctx *Context) InputText(s string) {
	expect(ctx.inputTextLen+len(s) <= inputTextSize, "input text overflow")
	copy(ctx.inputText[ctx.inputTextLen:], s)
	ctx.inputTextLen += len(s)
}
