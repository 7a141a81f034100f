// Package muon is a tiny, portable, immediate-mode UI core. Client code
// declares the UI afresh each frame against a single long-lived Context and
// receives a linear stream of drawing commands to translate into pixels with
// its own graphics system. The core performs no rendering, no text
// rasterization and no input polling; text measurement comes from two
// client-supplied callbacks. Beyond the buffers allocated once in New,
// frames are allocation-free.
package muon

import "slices"

// Default capacities. A zero field in Config selects the matching value.
const (
	DefaultCommandListSize    = 256 * 1024
	DefaultRootListSize       = 32
	DefaultContainerStackSize = 32
	DefaultClipStackSize      = 32
	DefaultIDStackSize        = 32
	DefaultLayoutStackSize    = 16
	DefaultContainerPoolSize  = 48
	DefaultTreenodePoolSize   = 48
)

// MaxWidths is the column limit of a single layout row.
const MaxWidths = 16

// inputTextSize caps the text accumulated between two frames.
const inputTextSize = 32

// maxFormat bounds formatted value strings (sliders, number widgets).
const maxFormat = 127

// Config sizes the fixed-capacity buffers embedded in a Context. Every
// buffer is allocated once in New; exceeding a capacity at runtime is a
// programmer error and panics.
type Config struct {
	CommandListSize    int // bytes
	RootListSize       int
	ContainerStackSize int
	ClipStackSize      int
	IDStackSize        int
	LayoutStackSize    int
	ContainerPoolSize  int
	TreenodePoolSize   int
}

// Context aggregates all retained UI state: interaction identifiers, the
// command buffer, container pools and the per-frame stacks. A Context is
// single-threaded; whichever goroutine owns it must serialize input feeding
// with frame construction.
type Context struct {
	// TextWidth and TextHeight must be set before the first Begin. Both
	// must be pure functions of their arguments.
	TextWidth  func(font Font, s string) int
	TextHeight func(font Font) int

	// DrawFrame draws widget chrome and may be replaced by the client. The
	// default fills the rect and strokes a 1-pixel border for every role
	// except the title bar and scrollbar ones.
	DrawFrame func(ctx *Context, r Rect, colorid ColorID)

	// Style is a borrowed reference; the client may repoint it between
	// frames. It starts out pointing at an internal copy of DefaultStyle.
	Style *Style

	baseStyle Style

	// interaction state
	hover        ID
	focus        ID
	lastID       ID
	lastRect     Rect
	lastZIndex   int
	updatedFocus bool
	frame        int

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	numberEdit    ID
	numberEditBuf TextBuffer
	fmtBuf        [maxFormat + 1]byte

	// input state
	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2
	mouseDown    Mouse
	mousePressed Mouse
	keyDown      Key
	keyPressed   Key
	inputText    [inputTextSize]byte
	inputTextLen int

	// command buffer
	cmdBuf  []byte
	cmdTail int

	// stacks; fixed capacity, length is the live depth
	rootList       []*Container
	containerStack []*Container
	clipStack      []Rect
	idStack        []ID
	layoutStack    []layout

	// retained container state
	containers    []Container
	containerPool []poolItem
	treenodePool  []poolItem
}

// New creates a ready-to-use context. Zero Config fields take the package
// defaults; the result performs no further heap allocation per frame.
func New(cfg Config) *Context {
	pick := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	cmdSize := pick(cfg.CommandListSize, DefaultCommandListSize)
	poolSize := pick(cfg.ContainerPoolSize, DefaultContainerPoolSize)

	ctx := &Context{
		cmdBuf:         make([]byte, cmdSize),
		rootList:       make([]*Container, 0, pick(cfg.RootListSize, DefaultRootListSize)),
		containerStack: make([]*Container, 0, pick(cfg.ContainerStackSize, DefaultContainerStackSize)),
		clipStack:      make([]Rect, 0, pick(cfg.ClipStackSize, DefaultClipStackSize)),
		idStack:        make([]ID, 0, pick(cfg.IDStackSize, DefaultIDStackSize)),
		layoutStack:    make([]layout, 0, pick(cfg.LayoutStackSize, DefaultLayoutStackSize)),
		containers:     make([]Container, poolSize),
		containerPool:  make([]poolItem, poolSize),
		treenodePool:   make([]poolItem, pick(cfg.TreenodePoolSize, DefaultTreenodePoolSize)),
	}
	ctx.baseStyle = DefaultStyle()
	ctx.Style = &ctx.baseStyle
	ctx.DrawFrame = drawDefaultFrame
	ctx.numberEditBuf = NewTextBuffer(maxFormat)
	return ctx
}

// Begin starts a new frame. The command buffer and root list are cleared
// and the per-frame mouse delta is computed from the accumulated input.
func (ctx *Context) Begin() {
	expect(ctx.TextWidth != nil && ctx.TextHeight != nil, "text measurement callbacks not set")
	ctx.cmdTail = 0
	ctx.rootList = ctx.rootList[:0]
	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.mouseDelta = Vec2{ctx.mousePos.X - ctx.lastMousePos.X, ctx.mousePos.Y - ctx.lastMousePos.Y}
	ctx.frame++
}

// End finishes the frame: verifies the stacks drained, applies wheel
// scrolling, expires unasserted focus, re-fronts the container under a
// press, resets the per-frame input accumulators and finally threads the
// root containers' jump chain in ascending z-index order.
func (ctx *Context) End() {
	expect(len(ctx.containerStack) == 0, "container stack not empty at end of frame")
	expect(len(ctx.clipStack) == 0, "clip stack not empty at end of frame")
	expect(len(ctx.idStack) == 0, "id stack not empty at end of frame")
	expect(len(ctx.layoutStack) == 0, "layout stack not empty at end of frame")

	// handle scroll input
	if ctx.scrollTarget != nil {
		ctx.scrollTarget.Scroll.X += ctx.scrollDelta.X
		ctx.scrollTarget.Scroll.Y += ctx.scrollDelta.Y
	}

	// unset focus if the focus id was not touched this frame
	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false

	// bring hover root to front if the mouse was pressed
	if ctx.mousePressed != 0 && ctx.nextHoverRoot != nil &&
		ctx.nextHoverRoot.ZIndex < ctx.lastZIndex &&
		ctx.nextHoverRoot.ZIndex >= 0 {
		ctx.BringToFront(ctx.nextHoverRoot)
	}

	// reset input state
	ctx.keyPressed = 0
	ctx.inputTextLen = 0
	ctx.mousePressed = 0
	ctx.scrollDelta = Vec2{}
	ctx.lastMousePos = ctx.mousePos

	// sort root containers by zindex and thread the jump chain through
	// them; iteration via NextCommand then visits containers in z-order
	// without a single byte moving
	slices.SortFunc(ctx.rootList, func(a, b *Container) int {
		return a.ZIndex - b.ZIndex
	})
	n := len(ctx.rootList)
	for i, cnt := range ctx.rootList {
		// if this is the first container make the first command jump to
		// it, otherwise link the previous container's tail here
		if i == 0 {
			ctx.patchJump(0, cnt.head+jumpCommandSize)
		} else {
			prev := ctx.rootList[i-1]
			ctx.patchJump(prev.tail, cnt.head+jumpCommandSize)
		}
		if i == n-1 {
			ctx.patchJump(cnt.tail, ctx.cmdTail)
		}
	}
}

// SetFocus hands the input focus to id for as long as the widget keeps
// asserting itself each frame.
func (ctx *Context) SetFocus(id ID) {
	ctx.focus = id
	ctx.updatedFocus = true
}

// LastRect returns the screen rectangle given to the most recent widget.
func (ctx *Context) LastRect() Rect { return ctx.lastRect }

func expect(cond bool, what string) {
	if !cond {
		panic("muon: " + what)
	}
}

func pushStack[T any](s *[]T, v T, what string) {
	expect(len(*s) < cap(*s), what+" stack overflow")
	*s = append(*s, v)
}

func popStack[T any](s *[]T, what string) {
	expect(len(*s) > 0, what+" stack underflow")
	*s = (*s)[:len(*s)-1]
}
