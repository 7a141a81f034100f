package muon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// layoutScope opens a bare layout over body for direct layout-engine tests.
func layoutScope(ctx *Context, body Rect) (close func()) {
	ctx.Begin()
	pushStack(&ctx.clipStack, unclippedRect, "clip")
	ctx.pushLayout(body, Vec2{})
	return func() {
		popStack(&ctx.layoutStack, "layout")
		popStack(&ctx.clipStack, "clip")
		ctx.End()
	}
}

func TestLayoutFillWidth(t *testing.T) {
	ctx := testContext()
	done := layoutScope(ctx, Rect{10, 20, 100, 80})
	defer done()

	// a single -1 column fills the body exactly
	ctx.LayoutRow([]int{-1}, 0)
	r := ctx.LayoutNext()
	assert.Equal(t, Rect{10, 20, 100, 20}, r) // height 0 -> style default 10 + 2*5
	assert.Equal(t, r, ctx.LastRect())
}

func TestLayoutRowColumns(t *testing.T) {
	ctx := testContext()
	done := layoutScope(ctx, Rect{10, 20, 100, 80})
	defer done()

	ctx.LayoutRow([]int{30, -10, 0}, 25)
	assert.Equal(t, Rect{10, 20, 30, 25}, ctx.LayoutNext())
	// -10 fills from the right edge: -10 + 100 - 34 + 1
	assert.Equal(t, Rect{44, 20, 57, 25}, ctx.LayoutNext())
	// width 0 takes the style default 68 + 2*5
	assert.Equal(t, Rect{105, 20, 78, 25}, ctx.LayoutNext())

	// the exhausted row repeats with the same columns on the next line
	assert.Equal(t, Rect{10, 49, 30, 25}, ctx.LayoutNext())
}

func TestLayoutSetNext(t *testing.T) {
	ctx := testContext()
	done := layoutScope(ctx, Rect{10, 20, 100, 80})
	defer done()

	ctx.LayoutRow([]int{30}, 10)

	// absolute rects come back verbatim and leave the cursor alone
	ctx.LayoutSetNext(Rect{1, 2, 3, 4}, false)
	assert.Equal(t, Rect{1, 2, 3, 4}, ctx.LayoutNext())
	assert.Equal(t, Rect{10, 20, 30, 10}, ctx.LayoutNext())

	// relative rects get the body offset and advance the row
	ctx.LayoutSetNext(Rect{5, 5, 10, 40}, true)
	assert.Equal(t, Rect{15, 25, 10, 40}, ctx.LayoutNext())
	ctx.LayoutRow([]int{30}, 10)
	assert.Equal(t, 20+5+40+ctx.Style.Spacing, ctx.LayoutNext().Y)
}

func TestLayoutColumnMergesBack(t *testing.T) {
	ctx := testContext()
	done := layoutScope(ctx, Rect{10, 20, 100, 80})
	defer done()

	ctx.LayoutRow([]int{40, -1}, 0)
	ctx.LayoutBeginColumn()
	ctx.LayoutRow([]int{-1}, 10)
	assert.Equal(t, Rect{10, 20, 40, 10}, ctx.LayoutNext())
	assert.Equal(t, Rect{10, 34, 40, 10}, ctx.LayoutNext())
	ctx.LayoutEndColumn()

	// the parent's cursor continues to the right of the column
	assert.Equal(t, Rect{54, 20, 56, 20}, ctx.LayoutNext())

	// and the parent's next row clears the column's tallest point
	ctx.LayoutRow([]int{10}, 0)
	assert.Equal(t, Rect{10, 48, 10, 20}, ctx.LayoutNext())
}

func TestLayoutWidthHeightDefaults(t *testing.T) {
	ctx := testContext()
	done := layoutScope(ctx, Rect{0, 0, 100, 100})
	defer done()

	ctx.LayoutRow(nil, 0)
	ctx.LayoutWidth(33)
	ctx.LayoutHeight(44)
	r := ctx.LayoutNext()
	assert.Equal(t, 33, r.W)
	assert.Equal(t, 44, r.H)
}
