package muon

const (
	relativeNext = 1 + iota
	absoluteNext
)

// layout is one frame of the layout stack: a row/column cursor over a body
// rectangle. Positions are layout-local until LayoutNext translates them by
// the body origin.
type layout struct {
	body        Rect
	next        Rect
	position    Vec2
	size        Vec2
	max         Vec2
	widths      [MaxWidths]int
	items       int
	itemIndex   int
	nextType    int
	nextRow     int
	indentation int
}

func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	lay := layout{
		body: Rect{body.X - scroll.X, body.Y - scroll.Y, body.W, body.H},
		max:  Vec2{-0x1000000, -0x1000000},
	}
	pushStack(&ctx.layoutStack, lay, "layout")
	ctx.LayoutRow([]int{0}, 0)
}

func (ctx *Context) layoutTop() *layout {
	return &ctx.layoutStack[len(ctx.layoutStack)-1]
}

// LayoutBeginColumn opens a nested layout whose body is the next widget's
// rectangle.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn merges the column's cursor and extent back into the
// parent, coordinate-corrected through the difference in body origins, so
// the parent's next widget starts to the right of the column.
func (ctx *Context) LayoutEndColumn() {
	b := *ctx.layoutTop()
	popStack(&ctx.layoutStack, "layout")
	a := ctx.layoutTop()
	a.position.X = max(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// startRow begins a row; nil widths keeps the current column definition,
// which is how an exhausted row repeats table-like.
func (ctx *Context) startRow(lay *layout, items int, widths []int, height int) {
	if widths != nil {
		expect(items <= MaxWidths, "too many layout row columns")
		copy(lay.widths[:], widths[:items])
	}
	lay.items = items
	lay.position = Vec2{lay.indentation, lay.nextRow}
	lay.size.Y = height
	lay.itemIndex = 0
}

// LayoutRow begins a new row with one column per width. A width of 0 takes
// the style default, positive is exact, and a negative -k stretches the cell
// to k-1 pixels short of the right edge (-1 fills it exactly). Heights
// follow the same rules against the bottom edge.
func (ctx *Context) LayoutRow(widths []int, height int) {
	ctx.startRow(ctx.layoutTop(), len(widths), widths, height)
}

// LayoutWidth sets the default item width used when a row has no columns.
func (ctx *Context) LayoutWidth(width int) {
	ctx.layoutTop().size.X = width
}

// LayoutHeight sets the default item height.
func (ctx *Context) LayoutHeight(height int) {
	ctx.layoutTop().size.Y = height
}

// LayoutSetNext overrides the next widget's rectangle. A relative rect is
// offset by the layout body and advances the cursor; an absolute rect is
// used verbatim and leaves the cursor alone.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	lay := ctx.layoutTop()
	lay.next = r
	if relative {
		lay.nextType = relativeNext
	} else {
		lay.nextType = absoluteNext
	}
}

// LayoutNext computes and claims the next widget rectangle in screen
// coordinates.
func (ctx *Context) LayoutNext() Rect {
	lay := ctx.layoutTop()
	style := ctx.Style
	var res Rect

	if lay.nextType != 0 {
		// rect forced by LayoutSetNext
		typ := lay.nextType
		lay.nextType = 0
		res = lay.next
		if typ == absoluteNext {
			ctx.lastRect = res
			return res
		}
	} else {
		// wrap to a fresh row with the same columns
		if lay.itemIndex == lay.items {
			ctx.startRow(lay, lay.items, nil, lay.size.Y)
		}

		res.X = lay.position.X
		res.Y = lay.position.Y

		if lay.items > 0 {
			res.W = lay.widths[lay.itemIndex]
		} else {
			res.W = lay.size.X
		}
		res.H = lay.size.Y
		if res.W == 0 {
			res.W = style.Size.X + style.Padding*2
		}
		if res.H == 0 {
			res.H = style.Size.Y + style.Padding*2
		}
		if res.W < 0 {
			res.W += lay.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += lay.body.H - res.Y + 1
		}

		lay.itemIndex++
	}

	// advance the cursor
	lay.position.X += res.W + style.Spacing
	lay.nextRow = max(lay.nextRow, res.Y+res.H+style.Spacing)

	// translate into screen space
	res.X += lay.body.X
	res.Y += lay.body.Y

	lay.max.X = max(lay.max.X, res.X+res.W)
	lay.max.Y = max(lay.max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}
